package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/desk_booking_app/internal/apperrors"
	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	portsrepo "github.com/SscSPs/desk_booking_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/desk_booking_app/internal/core/ports/services"
	"github.com/SscSPs/desk_booking_app/internal/dto"
	"github.com/SscSPs/desk_booking_app/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	now      func() time.Time
}

// UserServiceOption is a functional option for configuring the user service
type UserServiceOption func(*userService)

// WithUserClock overrides the clock used for audit and login stamps.
func WithUserClock(now func() time.Time) UserServiceOption {
	return func(s *userService) {
		s.now = now
	}
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade, options ...UserServiceOption) portssvc.UserSvcFacade {
	svc := &userService{
		BaseService: BaseService{name: "user_service"},
		userRepo:    userRepo,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) stamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) requireUserAdmin(ctx context.Context, actor domain.Actor, action string) error {
	if actor.Role.CanManageUsers() {
		return nil
	}
	s.LogInfo(ctx, "User management denied",
		slog.String("user_id", actor.UserID),
		slog.String("action", action))
	return apperrors.NewForbiddenError(action + " requires an admin or company role")
}

// checkGrantable rejects role assignments the actor may not make.
func checkGrantable(actor domain.Actor, role domain.Role) error {
	if !role.IsValid() {
		return apperrors.NewValidationFailedError("unknown role " + string(role))
	}
	if role == domain.RoleAdmin && !actor.IsAdmin() {
		return apperrors.NewForbiddenError("only an admin can grant the admin role")
	}
	return nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewNotFoundError("user " + userID + " not found")
		}
		s.LogError(ctx, err, "Failed to get user", slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.User, error) {
	if err := s.requireUserAdmin(ctx, actor, "listing users"); err != nil {
		return nil, err
	}
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, err
	}
	return users, nil
}

func (s *userService) newUser(name, email, password string, role domain.Role, createdBy string) (domain.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return domain.User{}, apperrors.NewAppError(http.StatusInternalServerError, "failed to hash password", err)
	}
	return domain.User{
		UserID:       uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        normalizeEmail(email),
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		AuditFields:  domain.NewAuditFields(s.stamp(), createdBy),
	}, nil
}

func (s *userService) CreateUser(ctx context.Context, actor domain.Actor, req dto.CreateUserRequest) (*domain.User, error) {
	if err := s.requireUserAdmin(ctx, actor, "creating users"); err != nil {
		return nil, err
	}
	role := domain.RoleEmployee
	if req.Role != "" {
		role = domain.Role(req.Role)
	}
	if err := checkGrantable(actor, role); err != nil {
		return nil, err
	}

	user, err := s.newUser(req.Name, req.Email, req.Password, role, actor.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to prepare user")
		return nil, err
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewConflictError("email " + user.Email + " is already registered")
		}
		s.LogError(ctx, err, "Failed to save user")
		return nil, err
	}
	s.LogInfo(ctx, "User created", slog.String("new_user_id", user.UserID), slog.String("role", string(user.Role)))
	return &user, nil
}

func (s *userService) UpdateUser(ctx context.Context, actor domain.Actor, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	if err := s.requireUserAdmin(ctx, actor, "updating users"); err != nil {
		return nil, err
	}
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role == domain.RoleAdmin && !actor.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only an admin can modify an admin account")
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		user.Email = normalizeEmail(*req.Email)
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		if err := checkGrantable(actor, role); err != nil {
			return nil, err
		}
		user.Role = role
	}
	user.Touch(s.stamp(), actor.UserID)

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewConflictError("email " + user.Email + " is already registered")
		}
		s.LogError(ctx, err, "Failed to update user", slog.String("target_user_id", userID))
		return nil, err
	}
	return user, nil
}

func (s *userService) SetUserStatus(ctx context.Context, actor domain.Actor, userID string, isActive bool) (*domain.User, error) {
	if err := s.requireUserAdmin(ctx, actor, "changing account status"); err != nil {
		return nil, err
	}
	if userID == actor.UserID && !isActive {
		return nil, apperrors.NewValidationFailedError("you cannot deactivate your own account")
	}
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role == domain.RoleAdmin && !actor.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only an admin can modify an admin account")
	}
	if user.IsActive == isActive {
		return user, nil
	}
	user.IsActive = isActive
	user.Touch(s.stamp(), actor.UserID)
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user status", slog.String("target_user_id", userID))
		return nil, err
	}
	s.LogInfo(ctx, "User status changed",
		slog.String("target_user_id", userID),
		slog.Bool("is_active", isActive))
	return user, nil
}

func (s *userService) EnsureBootstrapAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	_, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err == nil {
		return nil
	}
	if !isNotFound(err) {
		return err
	}

	admin, err := s.newUser("Administrator", email, password, domain.RoleAdmin, SystemActorID)
	if err != nil {
		return err
	}
	if err := s.userRepo.SaveUser(ctx, admin); err != nil {
		// Another instance may have created it first.
		if errors.Is(err, apperrors.ErrConflict) {
			return nil
		}
		return err
	}
	s.LogInfo(ctx, "Bootstrap admin created", slog.String("email", admin.Email))
	return nil
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewUnauthorizedError("invalid email or password")
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}
	if !user.IsActive {
		return nil, apperrors.NewUnauthorizedError("account is deactivated")
	}

	now := s.stamp()
	if err := s.userRepo.RecordLogin(ctx, user.UserID, now); err != nil {
		s.LogError(ctx, err, "Failed to record login", slog.String("user_id", user.UserID))
		return nil, err
	}
	user.LastLoginAt = &now
	user.LoginCount++
	return user, nil
}
