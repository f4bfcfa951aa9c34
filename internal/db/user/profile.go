package user

import (
	"accounts/internal/core/domain/user"
	"accounts/internal/db"
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const profileColumns = `user_id, first_name, last_name, birth_date`

type PgxProfileRepository struct {
	db db.Querier
}

func NewPgxProfileRepository(db db.Querier) *PgxProfileRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxProfileRepository{db: db}
}

func (r *PgxProfileRepository) Set(ctx context.Context, input user.SetProfileInput) (p user.Profile, err error) {
	birthDate := &pgtype.Date{Time: input.BirthDate, Status: pgtype.Present}
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO profile (user_id, first_name, last_name, birth_date)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO UPDATE
		 SET first_name = EXCLUDED.first_name,
		     last_name = EXCLUDED.last_name,
		     birth_date = EXCLUDED.birth_date
		 RETURNING `+profileColumns,
		int64(input.UserID),
		input.FirstName,
		input.LastName,
		birthDate,
	)
	p, err = decodeProfile(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == PG_FOREIGN_KEY_CONSTRAINT_ERR_CODE {
		return p, user.ErrUserDoesNotExist
	}
	return p, err
}

func (r *PgxProfileRepository) GetByUserID(ctx context.Context, userID user.ID) (p user.Profile, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM profile WHERE user_id = $1`, int64(userID))
	p, err = decodeProfile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return p, user.ErrProfileDoesNotExist
	}
	return p, err
}

func decodeProfile(row pgx.Row) (p user.Profile, err error) {
	var (
		userID    int64
		firstName string
		lastName  string
		birthDate pgtype.Date
	)
	if err := row.Scan(&userID, &firstName, &lastName, &birthDate); err != nil {
		return p, err
	}
	return user.Profile{
		UserID:    user.ID(userID),
		FirstName: firstName,
		LastName:  lastName,
		BirthDate: birthDate.Time,
	}, nil
}
