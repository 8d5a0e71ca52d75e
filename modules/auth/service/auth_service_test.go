package service

import (
	"context"
	"testing"
	"time"

	"guestdesk/core/config"
	coreErrors "guestdesk/core/errors"
	"guestdesk/core/params"
	"guestdesk/core/utils"
	"guestdesk/modules/auth/dto"
	"guestdesk/modules/auth/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAuthRepository struct {
	CreateUserFunc     func(ctx context.Context, user *entity.User) (*entity.User, error)
	GetUserByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	GetUserByIDFunc    func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetUsersFunc       func(ctx context.Context, params params.QueryParams) (*entity.PaginatedUserEntity, error)
}

func (m *mockAuthRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, user)
	}
	created := *user
	created.ID = uuid.New()
	return &created, nil
}

func (m *mockAuthRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.GetUserByEmailFunc != nil {
		return m.GetUserByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockAuthRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.GetUserByIDFunc != nil {
		return m.GetUserByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAuthRepository) GetUsers(ctx context.Context, params params.QueryParams) (*entity.PaginatedUserEntity, error) {
	if m.GetUsersFunc != nil {
		return m.GetUsersFunc(ctx, params)
	}
	return &entity.PaginatedUserEntity{}, nil
}

type mockAuthCache struct {
	blacklisted map[string]bool
}

func newMockAuthCache() *mockAuthCache {
	return &mockAuthCache{blacklisted: make(map[string]bool)}
}

func (m *mockAuthCache) Get(ctx context.Context, key string) (string, error) { return "", nil }

func (m *mockAuthCache) Delete(ctx context.Context, key string) error { return nil }

func (m *mockAuthCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return nil
}

func (m *mockAuthCache) AddToTokenBlacklist(ctx context.Context, token string) error {
	m.blacklisted[token] = true
	return nil
}

func (m *mockAuthCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	return m.blacklisted[token], nil
}

func TestSignupHashesPasswordAndDefaultsRole(t *testing.T) {
	var stored *entity.User
	repo := &mockAuthRepository{
		CreateUserFunc: func(ctx context.Context, user *entity.User) (*entity.User, error) {
			stored = user
			created := *user
			created.ID = uuid.New()
			return &created, nil
		},
	}
	svc := NewAuthService(repo, newMockAuthCache())

	resp, appErr := svc.Signup(context.Background(), &dto.SignupRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "s3cret-phrase",
		Role:     "superuser",
	})

	require.Nil(t, appErr)
	assert.Equal(t, entity.RoleRegularUser, resp.Role)
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret-phrase", stored.Password)
	assert.True(t, utils.ComparePassword(stored.Password, "s3cret-phrase"))
}

func TestSignupDuplicateEmail(t *testing.T) {
	existing := &entity.User{Email: "ada@example.com"}
	existing.ID = uuid.New()

	repo := &mockAuthRepository{
		GetUserByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			return existing, nil
		},
	}
	svc := NewAuthService(repo, newMockAuthCache())

	_, appErr := svc.Signup(context.Background(), &dto.SignupRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "s3cret-phrase",
	})

	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrAlreadyExists, appErr.Code)
}

func TestLoginSuccess(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := config.Load()
	require.NoError(t, err)

	hashed, err := utils.HashPassword("s3cret-phrase")
	require.NoError(t, err)

	user := &entity.User{Name: "Ada", Email: "ada@example.com", Password: hashed, Role: entity.RoleAdmin}
	user.ID = uuid.New()

	repo := &mockAuthRepository{
		GetUserByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			return user, nil
		},
	}
	svc := NewAuthService(repo, newMockAuthCache())

	resp, appErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ada@example.com",
		Password: "s3cret-phrase",
	})

	require.Nil(t, appErr)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ada@example.com", resp.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	hashed, err := utils.HashPassword("s3cret-phrase")
	require.NoError(t, err)

	user := &entity.User{Email: "ada@example.com", Password: hashed}
	user.ID = uuid.New()

	repo := &mockAuthRepository{
		GetUserByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			return user, nil
		},
	}
	svc := NewAuthService(repo, newMockAuthCache())

	_, appErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong",
	})

	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrUnauthorized, appErr.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewAuthService(&mockAuthRepository{}, newMockAuthCache())

	_, appErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrUnauthorized, appErr.Code)
}

func TestLogoutBlacklistsToken(t *testing.T) {
	cache := newMockAuthCache()
	svc := NewAuthService(&mockAuthRepository{}, cache)

	appErr := svc.Logout(context.Background(), "some-token")

	require.Nil(t, appErr)
	blacklisted, err := cache.IsTokenBlacklisted(context.Background(), "some-token")
	require.NoError(t, err)
	assert.True(t, blacklisted)
}
