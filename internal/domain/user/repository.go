package user

import "context"

// UserRepository - interface for the users table
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	// ListUnlinked returns users no employee record points at. The
	// employee-create picker consumes this instead of synthesizing
	// placeholder employee rows.
	ListUnlinked(ctx context.Context) ([]User, error)
	LinkOAuthAccount(ctx context.Context, id, provider, providerID string) error
}
