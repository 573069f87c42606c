package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"eshop/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Save(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsernameOrEmail(ctx context.Context, identifier string) (*model.User, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func TestUserService_Register(t *testing.T) {
	valid := RegisterInput{Username: "alice", Email: "a@x.com", Password: "secret1", FullName: "Alice A"}

	tests := []struct {
		name          string
		input         RegisterInput
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:  "successful registration",
			input: valid,
			setupMock: func(m *MockUserRepository) {
				m.On("ExistsByUsername", mock.Anything, "alice").Return(false, nil)
				m.On("ExistsByEmail", mock.Anything, "a@x.com").Return(false, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:  "taken username reported before taken email",
			input: RegisterInput{Username: "alice", Email: "b@x.com", Password: "secret1", FullName: "Alice A"},
			setupMock: func(m *MockUserRepository) {
				// Email is never checked once the username check fires.
				m.On("ExistsByUsername", mock.Anything, "alice").Return(true, nil)
			},
			expectedError: ErrUsernameTaken,
		},
		{
			name:  "taken email",
			input: RegisterInput{Username: "bob", Email: "a@x.com", Password: "secret1", FullName: "Bob B"},
			setupMock: func(m *MockUserRepository) {
				m.On("ExistsByUsername", mock.Anything, "bob").Return(false, nil)
				m.On("ExistsByEmail", mock.Anything, "a@x.com").Return(true, nil)
			},
			expectedError: ErrEmailTaken,
		},
		{
			name:  "blank username",
			input: RegisterInput{Username: "   ", Email: "c@x.com", Password: "secret1", FullName: "C"},
			setupMock: func(m *MockUserRepository) {
				m.On("ExistsByUsername", mock.Anything, "   ").Return(false, nil)
				m.On("ExistsByEmail", mock.Anything, "c@x.com").Return(false, nil)
			},
			expectedError: ErrUsernameBlank,
		},
		{
			name:  "blank email",
			input: RegisterInput{Username: "carol", Email: "", Password: "secret1", FullName: "C"},
			setupMock: func(m *MockUserRepository) {
				m.On("ExistsByUsername", mock.Anything, "carol").Return(false, nil)
				m.On("ExistsByEmail", mock.Anything, "").Return(false, nil)
			},
			expectedError: ErrEmailBlank,
		},
		{
			name:  "password of length 5 rejected",
			input: RegisterInput{Username: "dave", Email: "d@x.com", Password: "12345", FullName: "D"},
			setupMock: func(m *MockUserRepository) {
				m.On("ExistsByUsername", mock.Anything, "dave").Return(false, nil)
				m.On("ExistsByEmail", mock.Anything, "d@x.com").Return(false, nil)
			},
			expectedError: ErrPasswordTooShort,
		},
		{
			name:  "password of length 6 accepted",
			input: RegisterInput{Username: "dave", Email: "d@x.com", Password: "123456", FullName: "D"},
			setupMock: func(m *MockUserRepository) {
				m.On("ExistsByUsername", mock.Anything, "dave").Return(false, nil)
				m.On("ExistsByEmail", mock.Anything, "d@x.com").Return(false, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:  "blank full name",
			input: RegisterInput{Username: "erin", Email: "e@x.com", Password: "secret1", FullName: " "},
			setupMock: func(m *MockUserRepository) {
				m.On("ExistsByUsername", mock.Anything, "erin").Return(false, nil)
				m.On("ExistsByEmail", mock.Anything, "e@x.com").Return(false, nil)
			},
			expectedError: ErrFullNameBlank,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo)
			user, err := svc.Register(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.input.Username, user.Username)
				assert.Equal(t, model.RoleUser, user.Role)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.input.Password, user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Register_InsertFailureWrapped(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("ExistsByUsername", mock.Anything, "alice").Return(false, nil)
	mockRepo.On("ExistsByEmail", mock.Anything, "a@x.com").Return(false, nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Return(gorm.ErrDuplicatedKey)

	svc := NewUserService(mockRepo)
	user, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice", Email: "a@x.com", Password: "secret1", FullName: "Alice A",
	})

	assert.Nil(t, user)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Registration failed:")
}

func TestUserService_Login(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcryptCost)
	stored := &model.User{ID: 1, Username: "alice", Email: "a@x.com", PasswordHash: string(hash)}

	t.Run("exact password match returns the user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByUsernameOrEmail", mock.Anything, "alice").Return(stored, nil)

		svc := NewUserService(mockRepo)
		user, err := svc.Login(context.Background(), "alice", "secret1")

		assert.NoError(t, err)
		assert.Equal(t, stored, user)
	})

	t.Run("email works as identifier", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByUsernameOrEmail", mock.Anything, "a@x.com").Return(stored, nil)

		svc := NewUserService(mockRepo)
		user, err := svc.Login(context.Background(), "a@x.com", "secret1")

		assert.NoError(t, err)
		assert.NotNil(t, user)
	})

	t.Run("wrong password is no match, not an error", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByUsernameOrEmail", mock.Anything, "alice").Return(stored, nil)

		svc := NewUserService(mockRepo)
		user, err := svc.Login(context.Background(), "alice", "wrong")

		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("unknown identifier is no match, not an error", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByUsernameOrEmail", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(mockRepo)
		user, err := svc.Login(context.Background(), "ghost", "secret1")

		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	t.Run("missing id reports not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(mockRepo)
		err := svc.UpdateProfile(context.Background(), ProfileUpdate{ID: 42, Username: "x"})

		assert.Equal(t, ErrProfileNotFound, err)
	})

	t.Run("existing id is overwritten, hash kept without new password", func(t *testing.T) {
		stored := &model.User{ID: 1, Username: "alice", Email: "a@x.com", PasswordHash: "keep-me", FullName: "Alice A", Role: model.RoleUser}
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(stored, nil)
		mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Username == "alice2" && u.PasswordHash == "keep-me"
		})).Return(nil)

		svc := NewUserService(mockRepo)
		err := svc.UpdateProfile(context.Background(), ProfileUpdate{
			ID: 1, Username: "alice2", Email: "a@x.com", FullName: "Alice A",
		})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}
