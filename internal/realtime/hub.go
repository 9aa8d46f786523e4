// Package realtime fans chat messages out to connected clients over redis
// pub/sub. Each room has its own channel, "<prefix><room id>".
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"academyhub.app/server/common/logger"
	"academyhub.app/server/internal/model"
	"github.com/redis/go-redis/v9"
)

const EventTypeMessage = "message"

type Event struct {
	Type    string            `json:"type"`
	RoomID  int64             `json:"room_id"`
	Message model.ChatMessage `json:"message"`
}

// Subscription is a live feed of one room's events.
type Subscription interface {
	Events() <-chan Event
	Close() error
}

type Hub struct {
	client *redis.Client
	prefix string
}

func NewHub(client *redis.Client, prefix string) *Hub {
	return &Hub{client: client, prefix: prefix}
}

func (h *Hub) Channel(roomID int64) string {
	return h.prefix + strconv.FormatInt(roomID, 10)
}

func (h *Hub) Publish(ctx context.Context, msg model.ChatMessage) error {
	payload, err := encodeEvent(Event{Type: EventTypeMessage, RoomID: msg.RoomID, Message: msg})
	if err != nil {
		return err
	}
	if err := h.client.Publish(ctx, h.Channel(msg.RoomID), payload).Err(); err != nil {
		return fmt.Errorf("publishing to %s: %w", h.Channel(msg.RoomID), err)
	}
	return nil
}

// Subscribe blocks until redis confirms the subscription, so no message
// published after it returns is missed.
func (h *Hub) Subscribe(ctx context.Context, roomID int64) (Subscription, error) {
	channel := h.Channel(roomID)
	ps := h.client.Subscribe(ctx, channel)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("subscribing to %s: %w", channel, err)
	}

	sub := &redisSubscription{
		ps:     ps,
		events: make(chan Event, 16),
	}
	go sub.pump(logger.WithLogFields(ctx, logger.LogFields{
		RoomID:    &roomID,
		Component: "academyhub.realtime",
	}))
	return sub, nil
}

type redisSubscription struct {
	ps     *redis.PubSub
	events chan Event
}

func (s *redisSubscription) Events() <-chan Event {
	return s.events
}

func (s *redisSubscription) Close() error {
	return s.ps.Close()
}

// pump ends when the pubsub is closed, which closes the redis channel.
func (s *redisSubscription) pump(ctx context.Context) {
	defer close(s.events)
	for msg := range s.ps.Channel() {
		event, err := decodeEvent(msg.Payload)
		if err != nil {
			slog.WarnContext(ctx, "dropping undecodable chat event", "error", err, "channel", msg.Channel)
			continue
		}
		select {
		case s.events <- event:
		case <-ctx.Done():
			return
		}
	}
}

func encodeEvent(e Event) (string, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("encoding chat event: %w", err)
	}
	return string(b), nil
}

func decodeEvent(payload string) (Event, error) {
	var e Event
	if err := json.Unmarshal([]byte(payload), &e); err != nil {
		return Event{}, fmt.Errorf("decoding chat event: %w", err)
	}
	if e.Type == "" || e.RoomID == 0 {
		return Event{}, fmt.Errorf("decoding chat event: missing type or room_id")
	}
	return e, nil
}
