package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"skiresort/internal/domain"
	"skiresort/internal/pkg/jwt"
	"skiresort/internal/repository"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil && user != nil {
		user.ID = 1 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func newTestService(users UserRepository) *Service {
	return NewService(users, jwt.New("test-secret", time.Hour))
}

func TestService_Register_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(mockUsers)

	user, err := service.Register(context.Background(), "alice", "s3cretX")

	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, domain.RoleUser, user.Role)
	// The hash must verify against the original password and never echo it.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cretX")))
	mockUsers.AssertExpectations(t)
}

func TestService_Register_RejectsBadCredentials(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := newTestService(mockUsers)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"reserved username", "admin", "s3cretX"},
		{"username too short", "ab", "s3cretX"},
		{"common password", "alice", "qwerty"},
		{"password equals username", "alice", "alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(context.Background(), tt.username, tt.password)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	mockUsers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Register_UsernameTaken(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("Create", mock.Anything, mock.Anything).Return(repository.ErrUsernameTaken)

	service := newTestService(mockUsers)

	_, err := service.Register(context.Background(), "alice", "s3cretX")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestService_Login_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cretX"), bcrypt.DefaultCost)
	stored := &domain.User{ID: 1, Username: "alice", PasswordHash: string(hash), Role: domain.RoleUser}

	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByUsername", mock.Anything, "alice").Return(stored, nil)

	service := newTestService(mockUsers)

	result, err := service.Login(context.Background(), "alice", "s3cretX")

	assert.NoError(t, err)
	assert.Equal(t, "alice", result.User.Username)
	assert.NotEmpty(t, result.Token)

	claims, err := jwt.New("test-secret", time.Hour).ValidateToken(result.Token)
	assert.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, string(domain.RoleUser), claims.Role)
}

func TestService_Login_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cretX"), bcrypt.DefaultCost)
	stored := &domain.User{ID: 1, Username: "alice", PasswordHash: string(hash), Role: domain.RoleUser}

	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByUsername", mock.Anything, "alice").Return(stored, nil)

	service := newTestService(mockUsers)

	_, err := service.Login(context.Background(), "alice", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownUser(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	service := newTestService(mockUsers)

	// Unknown usernames surface the same error as a wrong password.
	_, err := service.Login(context.Background(), "ghost", "s3cretX")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
