package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"guestdesk/core/database"
	"guestdesk/core/logger"
	"guestdesk/core/params"
	"guestdesk/modules/auth/entity"

	"github.com/google/uuid"
)

type AuthRepositoryInterface interface {
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetUsers(ctx context.Context, params params.QueryParams) (*entity.PaginatedUserEntity, error)
}

type AuthRepository struct {
	DB database.IDatabase
}

func NewAuthRepository(db database.IDatabase) AuthRepositoryInterface {
	return &AuthRepository{DB: db}
}

func (r *AuthRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (name, email, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, password, role, created_at, updated_at
	`
	var created entity.User
	err := r.DB.GetContext(ctx, &created, query, user.Name, user.Email, user.Password, user.Role)
	if err != nil {
		logger.Error("AuthRepository:CreateUser", err)
		return nil, err
	}
	return &created, nil
}

func (r *AuthRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	query := `
		SELECT id, name, email, password, role, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	err := r.DB.GetContext(ctx, &user, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AuthRepository:GetUserByEmail", err)
		return nil, err
	}
	return &user, nil
}

func (r *AuthRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	query := `
		SELECT id, name, email, password, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	err := r.DB.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AuthRepository:GetUserByID", err)
		return nil, err
	}
	return &user, nil
}

func (r *AuthRepository) GetUsers(ctx context.Context, params params.QueryParams) (*entity.PaginatedUserEntity, error) {
	offset := (params.PageNumber - 1) * params.PageSize

	baseQuery := `FROM users`

	var whereClause string
	var args []interface{}

	conditions := []string{}
	argIndex := 1

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+params.Search+"%")
		argIndex++
	}

	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) " + baseQuery + whereClause

	var totalItems int
	err := r.DB.GetContext(ctx, &totalItems, countQuery, args...)
	if err != nil {
		logger.Error("AuthRepository:GetUsers - Count", err)
		return nil, err
	}

	dataQuery := `
		SELECT id, name, email, password, role, created_at, updated_at
	` + baseQuery + whereClause + `
		ORDER BY created_at DESC
		LIMIT $` + fmt.Sprintf("%d", argIndex) + ` OFFSET $` + fmt.Sprintf("%d", argIndex+1)

	args = append(args, params.PageSize, offset)

	var users []entity.User
	err = r.DB.SelectContext(ctx, &users, dataQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			users = []entity.User{}
		} else {
			logger.Error("AuthRepository:GetUsers - Select", err)
			return nil, err
		}
	}

	return &entity.PaginatedUserEntity{
		Items:      users,
		TotalItems: totalItems,
		PageNumber: params.PageNumber,
		PageSize:   params.PageSize,
	}, nil
}
