package user

import (
	"accounts/internal/core/domain/user"
	"accounts/internal/db"
	"context"
	"errors"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const tokenColumns = `id, user_id, token, created_at`

type PgxActivationTokenRepository struct {
	db db.Querier
}

func NewPgxActivationTokenRepository(db db.Querier) *PgxActivationTokenRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxActivationTokenRepository{db: db}
}

func (r *PgxActivationTokenRepository) Create(
	ctx context.Context,
	input user.CreateActivationTokenInput,
) (t user.ActivationToken, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO activation_token (user_id, token, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING `+tokenColumns,
		int64(input.UserID),
		string(input.Token),
		input.CreatedAt,
	)
	t, err = decodeToken(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == PG_FOREIGN_KEY_CONSTRAINT_ERR_CODE {
		return t, user.ErrUserDoesNotExist
	}
	return t, err
}

func (r *PgxActivationTokenRepository) GetByID(
	ctx context.Context,
	id user.TokenID,
) (t user.ActivationToken, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+tokenColumns+` FROM activation_token WHERE id = $1`, int64(id))
	t, err = decodeToken(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return t, user.ErrActivationTokenDoesNotExist
	}
	return t, err
}

func (r *PgxActivationTokenRepository) List(ctx context.Context) ([]user.ActivationToken, error) {
	return r.list(ctx, `SELECT `+tokenColumns+` FROM activation_token ORDER BY id`)
}

func (r *PgxActivationTokenRepository) ListByUserID(
	ctx context.Context,
	userID user.ID,
) ([]user.ActivationToken, error) {
	return r.list(
		ctx,
		`SELECT `+tokenColumns+` FROM activation_token WHERE user_id = $1 ORDER BY id`,
		int64(userID),
	)
}

func (r *PgxActivationTokenRepository) Update(
	ctx context.Context,
	input user.UpdateActivationTokenInput,
) (t user.ActivationToken, err error) {
	if !input.DoTokenUpdate {
		return r.GetByID(ctx, input.ID)
	}

	row := r.db.QueryRow(
		ctx,
		`UPDATE activation_token SET token = $2 WHERE id = $1 RETURNING `+tokenColumns,
		int64(input.ID),
		string(input.Token),
	)
	t, err = decodeToken(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return t, user.ErrActivationTokenDoesNotExist
	}
	return t, err
}

func (r *PgxActivationTokenRepository) Delete(
	ctx context.Context,
	id user.TokenID,
) (t user.ActivationToken, err error) {
	row := r.db.QueryRow(
		ctx,
		`DELETE FROM activation_token WHERE id = $1 RETURNING `+tokenColumns,
		int64(id),
	)
	t, err = decodeToken(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return t, user.ErrActivationTokenDoesNotExist
	}
	return t, err
}

func (r *PgxActivationTokenRepository) list(
	ctx context.Context,
	sql string,
	args ...interface{},
) ([]user.ActivationToken, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tokens := make([]user.ActivationToken, 0)
	for rows.Next() {
		t, err := decodeToken(rows)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}

func decodeToken(row pgx.Row) (t user.ActivationToken, err error) {
	var (
		id        int64
		userID    int64
		token     string
		createdAt time.Time
	)
	if err := row.Scan(&id, &userID, &token, &createdAt); err != nil {
		return t, err
	}
	return user.ActivationToken{
		ID:        user.TokenID(id),
		UserID:    user.ID(userID),
		Token:     user.Token(token),
		CreatedAt: createdAt,
	}, nil
}
