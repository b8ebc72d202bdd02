package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound    = errors.New("user not found")
	ErrEmailExists = errors.New("user with this email already exists")
)

// Filter narrows List results. Zero values mean "all".
type Filter struct {
	Search   string
	Role     Role
	BranchID uuid.UUID
	Status   UserStatus
}

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f Filter) ([]User, error)
	SetStatus(ctx context.Context, ids []uuid.UUID, status UserStatus) error
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	Count(ctx context.Context) (int, error)
}

type postgresRepository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &postgresRepository{db: db}
}

const userColumns = `id, name, email, phone, role, branch_id, status, password_hash, last_login_at, created_at, updated_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Phone,
		&u.Role,
		&u.BranchID,
		&u.Status,
		&u.PasswordHash,
		&u.LastLoginAt,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *postgresRepository) Create(ctx context.Context, u *User) error {
	query := `
		INSERT INTO pos.users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query,
		u.ID,
		u.Name,
		u.Email,
		u.Phone,
		string(u.Role),
		u.BranchID,
		string(u.Status),
		u.PasswordHash,
		u.LastLoginAt,
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrEmailExists
		}
		return fmt.Errorf("repository: failed to insert user: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM pos.users WHERE id = $1`

	u, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to select user by id %s: %w", id, err)
	}
	return u, nil
}

func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM pos.users WHERE lower(email) = lower($1)`

	u, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to select user by email: %w", err)
	}
	return u, nil
}

func (r *postgresRepository) Update(ctx context.Context, u *User) error {
	query := `
		UPDATE pos.users
		SET name = $1, email = $2, phone = $3, role = $4, branch_id = $5,
		    status = $6, password_hash = $7, updated_at = $8
		WHERE id = $9
	`
	cmdTag, err := r.db.Exec(ctx, query,
		u.Name,
		u.Email,
		u.Phone,
		string(u.Role),
		u.BranchID,
		string(u.Status),
		u.PasswordHash,
		u.UpdatedAt,
		u.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrEmailExists
		}
		return fmt.Errorf("repository: failed to update user %s: %w", u.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM pos.users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete user %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context, f Filter) ([]User, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Search != "" {
		p := arg("%" + strings.ToLower(f.Search) + "%")
		conds = append(conds, fmt.Sprintf("(lower(name) LIKE %s OR lower(email) LIKE %s)", p, p))
	}
	if f.Role != "" {
		conds = append(conds, "role = "+arg(string(f.Role)))
	}
	if f.BranchID != uuid.Nil {
		conds = append(conds, "branch_id = "+arg(f.BranchID))
	}
	if f.Status != "" {
		conds = append(conds, "status = "+arg(string(f.Status)))
	}

	query := `SELECT ` + userColumns + ` FROM pos.users`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY name ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query users: %w", err)
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating users: %w", err)
	}
	return users, nil
}

func (r *postgresRepository) SetStatus(ctx context.Context, ids []uuid.UUID, status UserStatus) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE pos.users SET status = $1, updated_at = $2 WHERE id = ANY($3)`
	_, err := r.db.Exec(ctx, query, string(status), time.Now().UTC(), ids)
	if err != nil {
		return fmt.Errorf("repository: failed to set user status: %w", err)
	}
	return nil
}

func (r *postgresRepository) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE pos.users SET last_login_at = $1 WHERE id = $2`, at, id)
	if err != nil {
		return fmt.Errorf("repository: failed to touch last login for %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM pos.users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("repository: failed to count users: %w", err)
	}
	return n, nil
}
