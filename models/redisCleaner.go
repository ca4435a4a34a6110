package models

import "github.com/mmdatafocus/grange_backend/cache"

// RedisCleaner lists the lookaside keys a committed change makes stale.
type RedisCleaner interface {
	RedisKeys() []string
}

func (obj Shed) RedisKeys() []string {
	return []string{cache.Key("Shed", obj.ID)}
}

func (obj Pool) RedisKeys() []string {
	return []string{cache.Key("Pool", obj.ID)}
}

func (obj Cuy) RedisKeys() []string {
	return []string{cache.Key("Cuy", obj.ID)}
}
