package data

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fireproject/fire-engine-bridge/internal/data/pgxutil"
	"github.com/fireproject/fire-engine-bridge/internal/domain/model"
	apperrors "github.com/fireproject/fire-engine-bridge/internal/errors"
	"github.com/fireproject/fire-engine-bridge/internal/ports"
)

// UserRepo provides database operations for user accounts.
//
// Uniqueness of username and email is enforced by the users table's
// unique indexes, not by pre-checks: concurrent inserts race to the
// index and the losers surface as conflict errors.
type UserRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewUserRepo creates a new UserRepo with real time provider.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewUserRepoWithTimeProvider creates a new UserRepo with a custom time provider (useful for tests).
func NewUserRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *UserRepo {
	return &UserRepo{DB: db, timeProvider: tp}
}

const userColumns = `id, username, email, password_hash, created_at, updated_at`

// Create inserts a new user. Duplicate username or email maps to a
// conflict error naming the violated field.
func (r *UserRepo) Create(ctx context.Context, in ports.CreateUserInput) (model.User, error) {
	createdAt := r.timeProvider.Now().UTC()
	var out model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)
			RETURNING `+userColumns,
			uuid.NewString(),
			in.Username,
			in.Email,
			in.PasswordHash,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		return model.User{}, fmt.Errorf("create user: %w", apperrors.MapDBError(err))
	}
	return out, nil
}

// GetByUsername retrieves a user by exact username. The match is
// case-sensitive: "Root" and "root" are distinct accounts.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	return r.getBy(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

// GetByEmail retrieves a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return r.getBy(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepo) getBy(ctx context.Context, query, arg string) (model.User, error) {
	var out model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, arg)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		return model.User{}, fmt.Errorf("get user: %w", apperrors.MapDBError(err))
	}
	return out, nil
}
