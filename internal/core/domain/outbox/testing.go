package outbox

import (
	c "accounts/internal/core/domain/common"
	"context"
	"fmt"
	"sync"
	"time"
)

type FakeRepository struct {
	Messages    []Message
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Messages: make([]Message, 0, 10)}
}

func (r *FakeRepository) Enqueue(ctx context.Context, input EnqueueInput) (m Message, err error) {
	if r.ReturnError {
		return m, fmt.Errorf("could not enqueue outbox message %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	m = Message{
		ID:        ID(len(r.Messages) + 1),
		Kind:      input.Kind,
		Payload:   input.Payload,
		CreatedAt: input.CreatedAt,
	}
	r.Messages = append(r.Messages, m)
	return m, nil
}

func (r *FakeRepository) LockPending(ctx context.Context, limit int) ([]Message, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not lock pending outbox messages")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	pending := make([]Message, 0, limit)
	for _, m := range r.Messages {
		if len(pending) == limit {
			break
		}
		if !m.IsPublished() {
			pending = append(pending, m)
		}
	}
	return pending, nil
}

func (r *FakeRepository) MarkPublished(ctx context.Context, ids []ID, at time.Time) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, id := range ids {
		found := false
		for ix, m := range r.Messages {
			if m.ID == id {
				r.Messages[ix].PublishedAt = c.NewOptional(at, true)
				found = true
				break
			}
		}
		if !found {
			return ErrMessageDoesNotExist
		}
	}
	return nil
}

func (r *FakeRepository) MarkFailed(ctx context.Context, id ID, reason string) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, m := range r.Messages {
		if m.ID == id {
			r.Messages[ix].Attempts++
			r.Messages[ix].LastError = c.NewOptional(reason, true)
			return nil
		}
	}
	return ErrMessageDoesNotExist
}

func (r *FakeRepository) PendingCount() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	count := 0
	for _, m := range r.Messages {
		if !m.IsPublished() {
			count++
		}
	}
	return count
}

type FakePublisher struct {
	Published   []Message
	FailForIDs  map[ID]bool
	ReturnError bool
	lock        sync.Mutex
}

func NewFakePublisher() *FakePublisher {
	return &FakePublisher{FailForIDs: make(map[ID]bool)}
}

func (p *FakePublisher) Publish(ctx context.Context, message Message) error {
	if p.ReturnError || p.FailForIDs[message.ID] {
		return fmt.Errorf("could not publish outbox message %d", message.ID)
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Published = append(p.Published, message)
	return nil
}
