package utils

import (
	"strings"
)

func NewTrue() *bool {
	b := true
	return &b
}

func NewFalse() *bool {
	b := false
	return &b
}

func DereferencePtr[T any](ptr *T, defaults ...T) T {
	if ptr != nil {
		return *ptr
	}
	var zero T
	if len(defaults) > 0 {
		return defaults[0]
	}
	return zero
}

func UniqueSlice[T comparable](slice []T) []T {
	seen := make(map[T]struct{}, len(slice))
	result := make([]T, 0, len(slice))
	for _, v := range slice {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

// Page is a normalized skip/limit window. Limit -1 means all rows.
type Page struct {
	Skip  int
	Limit int
}

func NormalizePage(skip *int, limit *int) Page {
	p := Page{Skip: DereferencePtr(skip), Limit: DereferencePtr(limit, -1)}
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit < 0 {
		p.Limit = -1
	}
	return p
}

func (p Page) All() bool { return p.Limit < 0 }

// UpperTrim normalizes free-text codes such as pool type and phase.
func UpperTrim(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func TrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
