package user

import (
	"context"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
)

type UserService struct {
	user.UserRepository
}

func NewUserService(userRepository user.UserRepository) *UserService {
	return &UserService{UserRepository: userRepository}
}

func (s *UserService) List(ctx context.Context) ([]user.User, error) {
	return s.UserRepository.List(ctx)
}

// ListUnlinked returns accounts no employee record points at, for the
// employee-create picker.
func (s *UserService) ListUnlinked(ctx context.Context) ([]user.User, error) {
	return s.UserRepository.ListUnlinked(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (user.User, error) {
	return s.UserRepository.GetByID(ctx, id)
}
