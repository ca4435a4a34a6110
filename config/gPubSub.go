package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
)

// DomainEvent is published after a livestock mutation commits.
type DomainEvent struct {
	Type          string    `json:"type"`
	EntityType    string    `json:"entity_type"`
	EntityId      int       `json:"entity_id"`
	ShedId        int       `json:"shed_id,omitempty"`
	PoolId        int       `json:"pool_id,omitempty"`
	UserId        int       `json:"user_id,omitempty"`
	Operation     string    `json:"operation,omitempty"`
	CorrelationId string    `json:"correlation_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Close() error
}

// NopPublisher drops events; used when no topic is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, DomainEvent) error { return nil }
func (NopPublisher) Close() error                               { return nil }

type PubSubPublisher struct {
	client *pubsub.Client
	topic  *pubsub.Topic
}

// NewEventPublisher returns a Pub/Sub publisher when a project and topic are
// configured, NopPublisher otherwise.
func NewEventPublisher(ctx context.Context, cfg PubSubConfig) (EventPublisher, error) {
	if cfg.ProjectID == "" || cfg.Topic == "" {
		return NopPublisher{}, nil
	}
	var opts []option.ClientOption
	if cfg.CredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	}
	client, err := pubsub.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("pubsub client (project_id=%s): %w", cfg.ProjectID, err)
	}
	topic, err := createTopicIfNotExists(ctx, client, cfg.Topic)
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	return &PubSubPublisher{client: client, topic: topic}, nil
}

func createTopicIfNotExists(ctx context.Context, c *pubsub.Client, topic string) (*pubsub.Topic, error) {
	t := c.Topic(topic)
	ok, err := t.Exists(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		return t, nil
	}
	t, err = c.CreateTopic(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("create topic %q: %w", topic, err)
	}
	return t, nil
}

func (p *PubSubPublisher) Publish(ctx context.Context, event DomainEvent) error {
	if p == nil || p.topic == nil {
		return errors.New("pubsub publisher is not initialized")
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	result := p.topic.Publish(ctx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"type":        event.Type,
			"entity_type": event.EntityType,
		},
	})
	_, err = result.Get(ctx)
	return err
}

func (p *PubSubPublisher) Close() error {
	if p == nil {
		return nil
	}
	p.topic.Stop()
	return p.client.Close()
}
