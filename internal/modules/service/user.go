package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/bizplatform/pmcore/internal/modules/repo"
	"github.com/bizplatform/pmcore/internal/pkg/i18n"
	"github.com/google/uuid"
)

type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*model.User, error)
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type userService struct {
	r repo.UserRepo
}

func NewUserService(r repo.UserRepo) UserService {
	return &userService{r: r}
}

type CreateUserInput struct {
	Username string
	Email    string
	Role     string
	JobRole  string
	Locale   string
}

func (s *userService) Create(ctx context.Context, in CreateUserInput) (*model.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, invalid("username", "must not be empty")
	}
	role := in.Role
	if role == "" {
		role = model.RoleMember
	}
	switch role {
	case model.RoleAdmin, model.RoleManager, model.RoleMember, model.RoleViewer:
	default:
		return nil, invalid("role", fmt.Sprintf("unknown role %q", role))
	}
	locale := i18n.Normalize(in.Locale)
	if locale == "" {
		locale = i18n.DefaultLocale
	}

	u := &model.User{
		Username: username,
		Email:    strings.TrimSpace(in.Email),
		Role:     role,
		JobRole:  strings.TrimSpace(in.JobRole),
		Locale:   locale,
	}
	if err := s.r.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.r.Get(ctx, id)
}
