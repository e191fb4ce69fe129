package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"portfolio_backend/internal/feature/contact/domain/entity"
)

// DefaultInboxKey is the Redis list contact requests are pushed onto.
const DefaultInboxKey = "contact:inbox"

// InboxMessage is the JSON document pushed for each contact request.
type InboxMessage struct {
	RequestID string    `json:"request_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func newInboxMessage(r *entity.ContactRequest) InboxMessage {
	return InboxMessage{
		RequestID: r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Message:   r.Message,
		CreatedAt: r.CreatedAt,
	}
}

// InboxRedis appends contact requests to a Redis list for an out-of-band mailer.
type InboxRedis struct {
	client *redis.Client
	key    string
}

// NewInboxRedis creates an InboxRedis pushing onto key.
func NewInboxRedis(client *redis.Client, key string) *InboxRedis {
	return &InboxRedis{client: client, key: key}
}

// Notify pushes r onto the inbox list.
func (n *InboxRedis) Notify(ctx context.Context, r *entity.ContactRequest) error {
	data, err := json.Marshal(newInboxMessage(r))
	if err != nil {
		return fmt.Errorf("failed to marshal contact request: %w", err)
	}
	if err := n.client.RPush(ctx, n.key, data).Err(); err != nil {
		return fmt.Errorf("failed to push contact request: %w", err)
	}
	return nil
}

// InboxLog records contact requests in the application log. Used when Redis is not configured.
type InboxLog struct{}

// Notify logs r.
func (InboxLog) Notify(_ context.Context, r *entity.ContactRequest) error {
	slog.Info("contact request received", "request_id", r.ID, "email", r.Email, "name", r.Name)
	return nil
}
