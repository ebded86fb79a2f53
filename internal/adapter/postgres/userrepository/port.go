package userrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gitlab.com/pcv-2026.net/internal/core/ports/primary"
	"gitlab.com/pcv-2026.net/internal/core/ports/secondary"
	"gitlab.com/pcv-2026.net/internal/domain"
	querybuilder "gitlab.com/pcv-2026.net/internal/utils"
)

var _ secondary.UserPort = &userRepo{}

type userRepo struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

func New(db *sqlx.DB, logger primary.Logger, schema string) secondary.UserPort {
	return &userRepo{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

func (u userRepo) Create(ctx context.Context, user *domain.Users) error {
	userTbl := domain.GetUserTable()
	query, args := querybuilder.NewQueryBuilder(u.schema).Insert(
		userTbl.UserName, userTbl.Email, userTbl.PasswordHash,
		userTbl.DisplayName,
		userTbl.AuthProvider, userTbl.GoogleID,
	).
		Into(userTbl.GetTableName()).
		Values(
			user.UserName, user.Email, user.PasswordHash,
			user.DisplayName,
			user.AuthProvider, user.GoogleID,
		).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	_, err := u.db.ExecContext(ctx, query, args...)

	return err
}

func (u userRepo) GetByUserName(ctx context.Context, userName string) (*domain.Users, error) {
	return u.getOne(ctx, "user_name", userName)
}

func (u userRepo) GetByGoogleID(ctx context.Context, googleID string) (*domain.Users, error) {
	return u.getOne(ctx, "google_id", googleID)
}

func (u userRepo) getOne(ctx context.Context, column, value string) (*domain.Users, error) {
	query := fmt.Sprintf(`
		SELECT id, user_name, password_hash, display_name, email, auth_provider, google_id
		FROM %s.users
		WHERE %s = $1
	`, u.schema, column)

	var user domain.Users
	err := u.db.QueryRowxContext(ctx, query, value).StructScan(&user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		u.logger.Error("Failed to get user", "column", column, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
