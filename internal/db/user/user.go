package user

import (
	c "accounts/internal/core/domain/common"
	"accounts/internal/core/domain/user"
	"accounts/internal/db"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const PG_FOREIGN_KEY_CONSTRAINT_ERR_CODE = "23503"
const EMAIL_CONSTRAINT_NAME = "user_email_idx"

const userColumns = `id, email, is_admin, is_moderator, created_at, activated_at`

type PgxUserRepository struct {
	db db.Querier
}

func NewPgxRepository(db db.Querier) *PgxUserRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxUserRepository{db: db}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "user" (email, is_admin, is_moderator, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+userColumns,
		string(input.Email),
		input.Roles.IsAdmin,
		input.Roles.IsModerator,
		input.CreatedAt,
	)
	u, err = decodeUser(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return u, user.ErrEmailAlreadyExists
		}
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM "user" WHERE id = $1`, int64(id))
	u, err = decodeUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM "user" WHERE email = $1`, string(email))
	u, err = decodeUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM "user" ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		u, err := decodeUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PgxUserRepository) Update(ctx context.Context, input user.UpdateUserInput) (u user.User, err error) {
	if !input.DoRolesUpdate {
		return r.GetByID(ctx, input.ID)
	}

	row := r.db.QueryRow(
		ctx,
		`UPDATE "user" SET is_admin = $2, is_moderator = $3 WHERE id = $1
		 RETURNING `+userColumns,
		int64(input.ID),
		input.Roles.IsAdmin,
		input.Roles.IsModerator,
	)
	u, err = decodeUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	return u, err
}

func (r *PgxUserRepository) Activate(ctx context.Context, id user.ID, at time.Time) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE "user" SET activated_at = $2 WHERE id = $1 AND activated_at IS NULL
		 RETURNING `+userColumns,
		int64(id),
		at,
	)
	u, err = decodeUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return u, getErr
		}
		return u, user.ErrUserAlreadyActive
	}
	return u, err
}

func (r *PgxUserRepository) Delete(ctx context.Context, id user.ID) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`DELETE FROM "user" WHERE id = $1 RETURNING `+userColumns,
		int64(id),
	)
	u, err = decodeUser(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == PG_FOREIGN_KEY_CONSTRAINT_ERR_CODE {
		return u, user.ErrUserIsReferenced
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	return u, err
}

func decodeUser(row pgx.Row) (u user.User, err error) {
	var (
		id          int64
		email       string
		isAdmin     bool
		isModerator bool
		createdAt   time.Time
		activatedAt sql.NullTime
	)
	if err := row.Scan(&id, &email, &isAdmin, &isModerator, &createdAt, &activatedAt); err != nil {
		return u, err
	}
	return user.User{
		ID:          user.ID(id),
		Email:       c.Email(email),
		Roles:       user.Roles{IsAdmin: isAdmin, IsModerator: isModerator},
		CreatedAt:   createdAt,
		ActivatedAt: c.NewOptional(activatedAt.Time, activatedAt.Valid),
	}, nil
}
