package outbox

import (
	c "accounts/internal/core/domain/common"
	"context"
	"time"
)

type ID int64

type Kind string

const KindActivationEmail Kind = "activation_email"

// Message is a notification staged for delivery. It is written in the same
// transaction as the state change it belongs to and published to the broker
// by the relay after commit.
type Message struct {
	ID          ID
	Kind        Kind
	Payload     []byte
	CreatedAt   time.Time
	PublishedAt c.Optional[time.Time]
	Attempts    int32
	LastError   c.Optional[string]
}

func (m *Message) IsPublished() bool {
	return m.PublishedAt.IsPresent
}

type EnqueueInput struct {
	Kind      Kind
	Payload   []byte
	CreatedAt time.Time
}

type Repository interface {
	Enqueue(ctx context.Context, input EnqueueInput) (Message, error)
	// LockPending returns up to limit unpublished messages locked for the
	// current transaction, skipping rows locked by concurrent relays.
	LockPending(ctx context.Context, limit int) ([]Message, error)
	MarkPublished(ctx context.Context, ids []ID, at time.Time) error
	MarkFailed(ctx context.Context, id ID, reason string) error
}

type Publisher interface {
	Publish(ctx context.Context, message Message) error
}
