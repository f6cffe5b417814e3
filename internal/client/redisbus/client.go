package redisbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/s21platform/staff-chat-service/internal/model"
)

// Client fans channel events out over Redis pub/sub for deployments
// that run their own socket gateway instead of Centrifugo.
type Client struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Client {
	return &Client{rdb: rdb}
}

func (c *Client) Publish(ctx context.Context, topic string, event model.ChannelEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := c.rdb.Publish(ctx, topic, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}

// Subscribe streams decoded events from topic until ctx is done.
// Undecodable payloads are skipped.
func (c *Client) Subscribe(ctx context.Context, topic string) (<-chan model.ChannelEvent, error) {
	pubsub := c.rdb.Subscribe(ctx, topic)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}

	events := make(chan model.ChannelEvent)
	go func() {
		defer close(events)
		defer pubsub.Close() //nolint:errcheck // .

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var event model.ChannelEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					continue
				}
				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, nil
}
