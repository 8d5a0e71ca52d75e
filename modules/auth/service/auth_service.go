package service

import (
	"context"
	"encoding/json"
	"net/http"

	"guestdesk/core/cache"
	"guestdesk/core/config"
	"guestdesk/core/constants"
	"guestdesk/core/errors"
	"guestdesk/core/logger"
	"guestdesk/core/params"
	"guestdesk/core/utils"
	"guestdesk/modules/auth/dto"
	"guestdesk/modules/auth/entity"
	"guestdesk/modules/auth/mapper"
	"guestdesk/modules/auth/repository"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type AuthServiceInterface interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError)
	Logout(ctx context.Context, token string) *errors.AppError
	GetUserById(ctx context.Context, id uuid.UUID) (*dto.UserResponse, *errors.AppError)
	GetUsers(ctx context.Context, params params.QueryParams) (*dto.PaginatedUserResponse, *errors.AppError)
	GoogleAuthURL(ctx context.Context) (*dto.GoogleAuthURLResponse, *errors.AppError)
	GoogleCallback(ctx context.Context, code string) (*dto.LoginResponse, *errors.AppError)
}

type AuthService struct {
	repo  repository.AuthRepositoryInterface
	cache cache.Cache
}

func NewAuthService(repo repository.AuthRepositoryInterface, cache cache.Cache) AuthServiceInterface {
	return &AuthService{repo: repo, cache: cache}
}

func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	existing, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "signup failed", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "email already in use", nil)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("AuthService:Signup:HashPassword", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "signup failed", err)
	}

	// Unknown roles are coerced, not rejected.
	role := req.Role
	if !entity.ValidRole(role) {
		role = entity.RoleRegularUser
	}

	user, err := s.repo.CreateUser(ctx, &entity.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     role,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create user failed", err)
	}

	return mapper.ToUserResponse(user), nil
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "login failed", err)
	}
	if user == nil || !utils.ComparePassword(user.Password, req.Password) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid credentials", nil)
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, constants.ScopeTokenAccess)
	if err != nil {
		logger.Error("AuthService:Login:GenerateToken", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "login failed", err)
	}

	return &dto.LoginResponse{
		Token: token,
		User:  *mapper.ToUserResponse(user),
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if err := s.cache.AddToTokenBlacklist(ctx, token); err != nil {
		logger.Error("AuthService:Logout:AddToTokenBlacklist", err)
		return errors.NewAppError(errors.ErrInternalServer, "logout failed", err)
	}
	return nil
}

func (s *AuthService) GetUserById(ctx context.Context, id uuid.UUID) (*dto.UserResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get user failed", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}
	return mapper.ToUserResponse(user), nil
}

func (s *AuthService) GetUsers(ctx context.Context, params params.QueryParams) (*dto.PaginatedUserResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	users, err := s.repo.GetUsers(ctx, params)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get users failed", err)
	}
	return mapper.ToUserPaginationResponse(users), nil
}

func (s *AuthService) googleOAuthConfig() (*oauth2.Config, *errors.AppError) {
	cfg, ok := config.GetSafe()
	if !ok {
		return nil, errors.NewAppError(errors.ErrInternalServer, "config not initialized", nil)
	}
	if cfg.GoogleAPI.ClientID == "" || cfg.GoogleAPI.ClientSecret == "" {
		return nil, errors.NewAppError(errors.ErrInternalServer, "google sign-in not configured", nil)
	}
	return &oauth2.Config{
		ClientID:     cfg.GoogleAPI.ClientID,
		ClientSecret: cfg.GoogleAPI.ClientSecret,
		RedirectURL:  cfg.GoogleAPI.RedirectURI,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}, nil
}

func (s *AuthService) GoogleAuthURL(ctx context.Context) (*dto.GoogleAuthURLResponse, *errors.AppError) {
	oauthConfig, appErr := s.googleOAuthConfig()
	if appErr != nil {
		return nil, appErr
	}

	state := utils.GenerateRandomString(32)
	authURL := oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	return &dto.GoogleAuthURLResponse{URL: authURL}, nil
}

type googleUserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (s *AuthService) GoogleCallback(ctx context.Context, code string) (*dto.LoginResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultTimeout)
	defer cancel()

	oauthConfig, appErr := s.googleOAuthConfig()
	if appErr != nil {
		return nil, appErr
	}

	token, err := oauthConfig.Exchange(ctx, code)
	if err != nil {
		logger.Error("AuthService:GoogleCallback:Exchange", err)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "code exchange failed", err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", "https://www.googleapis.com/oauth2/v2/userinfo", nil)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "google sign-in failed", err)
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		logger.Error("AuthService:GoogleCallback:UserInfo", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "google sign-in failed", err)
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil || info.Email == "" {
		logger.Error("AuthService:GoogleCallback:DecodeUserInfo", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "google sign-in failed", err)
	}

	user, err := s.repo.GetUserByEmail(ctx, info.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "google sign-in failed", err)
	}
	if user == nil {
		// First Google sign-in provisions a regular account with an unusable password.
		hashed, hashErr := utils.HashPassword(utils.GenerateRandomString(32))
		if hashErr != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "google sign-in failed", hashErr)
		}
		user, err = s.repo.CreateUser(ctx, &entity.User{
			Name:     info.Name,
			Email:    info.Email,
			Password: hashed,
			Role:     entity.RoleRegularUser,
		})
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCreateFailed, "google sign-in failed", err)
		}
	}

	jwtToken, err := utils.GenerateToken(user.ID, user.Email, user.Role, constants.ScopeTokenAccess)
	if err != nil {
		logger.Error("AuthService:GoogleCallback:GenerateToken", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "google sign-in failed", err)
	}

	return &dto.LoginResponse{
		Token: jwtToken,
		User:  *mapper.ToUserResponse(user),
	}, nil
}
