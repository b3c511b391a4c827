package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `
	u.id, u.username, u.email, u.password_hash, u.roles,
	u.oauth_provider, u.oauth_provider_id, u.created_at, u.updated_at,
	e.id AS employee_id
`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	var roles []string
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&roles,
		&u.OAuthProvider,
		&u.OAuthProviderID,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.EmployeeID,
	)
	if err != nil {
		return user.User{}, err
	}
	u.Roles = user.ParseRoles(roles)
	return u, nil
}

func (r *userRepositoryImpl) collect(rows pgx.Rows) ([]user.User, error) {
	defer rows.Close()
	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO users (id, username, email, password_hash, roles, oauth_provider, oauth_provider_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		u.ID, u.Username, u.Email, u.PasswordHash, u.RoleStrings(), u.OAuthProvider, u.OAuthProviderID,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN employees e ON e.user_id = u.id
		WHERE u.id = $1
	`
	u, err := scanUser(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, user.ErrUserNotFound
	}
	return u, err
}

func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN employees e ON e.user_id = u.id
		WHERE LOWER(u.username) = LOWER($1)
	`
	u, err := scanUser(q.QueryRow(ctx, query, username))
	if errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, user.ErrUserNotFound
	}
	return u, err
}

func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN employees e ON e.user_id = u.id
		WHERE LOWER(u.email) = LOWER($1)
	`
	u, err := scanUser(q.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, user.ErrUserNotFound
	}
	return u, err
}

func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN employees e ON e.user_id = u.id
		ORDER BY u.username
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *userRepositoryImpl) ListUnlinked(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN employees e ON e.user_id = u.id
		WHERE e.id IS NULL
		ORDER BY u.username
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *userRepositoryImpl) LinkOAuthAccount(ctx context.Context, id, provider, providerID string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE users
		SET oauth_provider = $2, oauth_provider_id = $3, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, id, provider, providerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
