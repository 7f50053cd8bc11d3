package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/desk_booking_app/internal/apperrors"
	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	portssvc "github.com/SscSPs/desk_booking_app/internal/core/ports/services"
	"github.com/SscSPs/desk_booking_app/internal/core/services"
	"github.com/SscSPs/desk_booking_app/internal/dto"
	"github.com/SscSPs/desk_booking_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	now          time.Time
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo, services.WithUserClock(func() time.Time { return suite.now }))
}

func (suite *UserServiceTestSuite) TearDownTest() {
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) storedUser(email, password string, role domain.Role) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       "user-a",
		Name:         "Asha",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		AuditFields:  domain.NewAuditFields(suite.now.Add(-time.Hour), "admin-1"),
	}
}

// --- CreateUser Tests ---
func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	req := dto.CreateUserRequest{Name: " Asha ", Email: "Asha@Example.com", Password: "password123"}

	suite.mockUserRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "asha@example.com" && u.Name == "Asha" && u.Role == domain.RoleEmployee &&
			u.IsActive && u.PasswordHash != "password123" && u.CreatedBy == admin.UserID
	})).Return(nil).Once()

	created, err := suite.service.CreateUser(suite.ctx, admin, req)

	suite.Require().NoError(err)
	suite.NotEmpty(created.UserID)
	suite.True(utils.CheckPasswordHash("password123", created.PasswordHash))
}

func (suite *UserServiceTestSuite) TestCreateUser_EmployeeForbidden() {
	_, err := suite.service.CreateUser(suite.ctx, employee, dto.CreateUserRequest{Name: "x", Email: "x@example.com", Password: "password123"})
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestCreateUser_CompanyCannotGrantAdmin() {
	_, err := suite.service.CreateUser(suite.ctx, company, dto.CreateUserRequest{
		Name: "x", Email: "x@example.com", Password: "password123", Role: string(domain.RoleAdmin),
	})
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	suite.mockUserRepo.On("SaveUser", suite.ctx, mock.Anything).Return(apperrors.ErrConflict).Once()

	_, err := suite.service.CreateUser(suite.ctx, admin, dto.CreateUserRequest{Name: "x", Email: "x@example.com", Password: "password123"})
	suite.ErrorIs(err, apperrors.ErrConflict)
}

// --- AuthenticateUser Tests ---
func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	user := suite.storedUser("asha@example.com", "password123", domain.RoleEmployee)
	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, "asha@example.com").Return(user, nil).Once()
	suite.mockUserRepo.On("RecordLogin", suite.ctx, "user-a", suite.now).Return(nil).Once()

	got, err := suite.service.AuthenticateUser(suite.ctx, "ASHA@example.com ", "password123")

	suite.Require().NoError(err)
	suite.Equal(1, got.LoginCount)
	suite.Require().NotNil(got.LastLoginAt)
	suite.Equal(suite.now, *got.LastLoginAt)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	user := suite.storedUser("asha@example.com", "password123", domain.RoleEmployee)
	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, "asha@example.com").Return(user, nil).Once()

	_, err := suite.service.AuthenticateUser(suite.ctx, "asha@example.com", "wrong-password")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmail() {
	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AuthenticateUser(suite.ctx, "ghost@example.com", "password123")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Deactivated() {
	user := suite.storedUser("asha@example.com", "password123", domain.RoleEmployee)
	user.IsActive = false
	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, "asha@example.com").Return(user, nil).Once()

	_, err := suite.service.AuthenticateUser(suite.ctx, "asha@example.com", "password123")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- Update / Status Tests ---
func (suite *UserServiceTestSuite) TestUpdateUser_ChangesRole() {
	user := suite.storedUser("asha@example.com", "password123", domain.RoleEmployee)
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "user-a").Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Role == domain.RoleExecutive && u.Version == 2 && u.LastUpdatedBy == company.UserID
	})).Return(nil).Once()

	role := string(domain.RoleExecutive)
	updated, err := suite.service.UpdateUser(suite.ctx, company, "user-a", dto.UpdateUserRequest{Role: &role})

	suite.Require().NoError(err)
	suite.Equal(domain.RoleExecutive, updated.Role)
}

func (suite *UserServiceTestSuite) TestSetUserStatus_CannotDeactivateSelf() {
	_, err := suite.service.SetUserStatus(suite.ctx, admin, admin.UserID, false)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestSetUserStatus_Deactivates() {
	user := suite.storedUser("asha@example.com", "password123", domain.RoleEmployee)
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "user-a").Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return !u.IsActive
	})).Return(nil).Once()

	updated, err := suite.service.SetUserStatus(suite.ctx, admin, "user-a", false)
	suite.Require().NoError(err)
	suite.False(updated.IsActive)
}

// --- Bootstrap ---
func (suite *UserServiceTestSuite) TestEnsureBootstrapAdmin_CreatesOnce() {
	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, "root@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Role == domain.RoleAdmin && u.Email == "root@example.com" && u.CreatedBy == services.SystemActorID
	})).Return(nil).Once()

	suite.NoError(suite.service.EnsureBootstrapAdmin(suite.ctx, "root@example.com", "changeme123"))
}

func (suite *UserServiceTestSuite) TestEnsureBootstrapAdmin_ExistingUser() {
	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, "root@example.com").
		Return(suite.storedUser("root@example.com", "x", domain.RoleAdmin), nil).Once()

	suite.NoError(suite.service.EnsureBootstrapAdmin(suite.ctx, "root@example.com", "changeme123"))
}

func (suite *UserServiceTestSuite) TestEnsureBootstrapAdmin_Disabled() {
	suite.NoError(suite.service.EnsureBootstrapAdmin(suite.ctx, "", ""))
}

// --- Run Test Suite ---
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
