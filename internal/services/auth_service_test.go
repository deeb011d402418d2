package services_test

import (
	"fmt"
	"testing"

	"clothingshop/internal/models"
	"clothingshop/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test-secret")

	user := &models.User{Email: "shopper@example.com", Password: "password123", FirstName: "Asta", LastName: "Berg"}

	mockRepo.On("GetByEmail", "shopper@example.com").Return(nil, fmt.Errorf("user with email shopper@example.com not found")).Once()
	mockRepo.On("Create", user).Return(nil).Once()

	err := service.RegisterUser(user)

	assert.NoError(t, err)
	// The stored password is a bcrypt hash of the original.
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test-secret")

	existing := &models.User{ID: "u1", Email: "shopper@example.com"}
	mockRepo.On("GetByEmail", "shopper@example.com").Return(existing, nil).Once()

	err := service.RegisterUser(&models.User{Email: "shopper@example.com", Password: "password123"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_LoginAndValidate(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test-secret")

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	user := &models.User{ID: "u1", Email: "shopper@example.com", Password: string(hashed)}

	mockRepo.On("GetByEmail", "shopper@example.com").Return(user, nil)

	token, err := service.LoginUser("shopper@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "u1", claims["user_id"])
	assert.Equal(t, "shopper@example.com", claims["email"])

	// Wrong password fails without revealing which part was wrong.
	_, err = service.LoginUser("shopper@example.com", "wrong")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestAuthService_GetUserByID(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test-secret")

	mockRepo.On("GetByID", "u1").Return(&models.User{ID: "u1", Email: "shopper@example.com"}, nil).Once()
	mockRepo.On("GetByID", "ghost").Return(nil, fmt.Errorf("user with ID ghost not found")).Once()

	user, err := service.GetUserByID("u1")
	assert.NoError(t, err)
	assert.Equal(t, "shopper@example.com", user.Email)

	_, err = service.GetUserByID("ghost")
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken_Invalid(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test-secret")

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)

	// A token signed with a different secret is rejected.
	other := services.NewAuthService(mockRepo, "other-secret")
	hashed, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	mockRepo.On("GetByEmail", "a@b.com").Return(&models.User{ID: "u2", Email: "a@b.com", Password: string(hashed)}, nil)
	foreignToken, err := other.LoginUser("a@b.com", "pw")
	assert.NoError(t, err)

	_, err = service.ValidateToken(foreignToken)
	assert.Error(t, err)
}
