package outbox

import (
	c "accounts/internal/core/domain/common"
	"accounts/internal/core/domain/outbox"
	"accounts/internal/db"
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v4"
)

const messageColumns = `id, kind, payload, created_at, published_at, attempts, last_error`

type PgxOutboxRepository struct {
	db db.Querier
}

func NewPgxOutboxRepository(db db.Querier) *PgxOutboxRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxOutboxRepository{db: db}
}

func (r *PgxOutboxRepository) Enqueue(ctx context.Context, input outbox.EnqueueInput) (m outbox.Message, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO outbox_message (kind, payload, created_at)
		 VALUES ($1, $2::jsonb, $3)
		 RETURNING `+messageColumns,
		string(input.Kind),
		string(input.Payload),
		input.CreatedAt,
	)
	return decodeMessage(row)
}

func (r *PgxOutboxRepository) LockPending(ctx context.Context, limit int) ([]outbox.Message, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+messageColumns+` FROM outbox_message
		 WHERE published_at IS NULL
		 ORDER BY id
		 LIMIT $1
		 FOR UPDATE SKIP LOCKED`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]outbox.Message, 0)
	for rows.Next() {
		message, err := decodeMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, rows.Err()
}

func (r *PgxOutboxRepository) MarkPublished(ctx context.Context, ids []outbox.ID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	rawIDs := make([]int64, len(ids))
	for ix, id := range ids {
		rawIDs[ix] = int64(id)
	}
	_, err := r.db.Exec(
		ctx,
		`UPDATE outbox_message SET published_at = $2 WHERE id = ANY($1)`,
		rawIDs,
		at,
	)
	return err
}

func (r *PgxOutboxRepository) MarkFailed(ctx context.Context, id outbox.ID, reason string) error {
	commandTag, err := r.db.Exec(
		ctx,
		`UPDATE outbox_message SET attempts = attempts + 1, last_error = $2 WHERE id = $1`,
		int64(id),
		reason,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return outbox.ErrMessageDoesNotExist
	}
	return nil
}

func decodeMessage(row pgx.Row) (m outbox.Message, err error) {
	var (
		id          int64
		kind        string
		payload     []byte
		createdAt   time.Time
		publishedAt sql.NullTime
		attempts    int32
		lastError   sql.NullString
	)
	if err := row.Scan(&id, &kind, &payload, &createdAt, &publishedAt, &attempts, &lastError); err != nil {
		return m, err
	}
	m = outbox.Message{
		ID:        outbox.ID(id),
		Kind:      outbox.Kind(kind),
		Payload:   payload,
		CreatedAt: createdAt,
		Attempts:  attempts,
	}
	if publishedAt.Valid {
		m.PublishedAt = c.NewOptional(publishedAt.Time, true)
	}
	if lastError.Valid {
		m.LastError = c.NewOptional(lastError.String, true)
	}
	return m, nil
}
