package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pazarlabs/pazar/internal/domain"
	"github.com/pazarlabs/pazar/pkg/errs"
	"github.com/rs/zerolog/log"
)

type UserPostgresRepository struct {
	db *sqlx.DB
}

func CreateNewUserPostgresRepository(db *sqlx.DB) UserRepository {
	return &UserPostgresRepository{db: db}
}

func (r *UserPostgresRepository) GetUserByEmail(ctx context.Context, email string) (res domain.User, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM users WHERE email = $1", email)
	err = row.StructScan(&res)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, nil
		}
		log.Error().Err(err).Str("component", "GetUserByEmail").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

func (r *UserPostgresRepository) GetUserByUsername(ctx context.Context, username string) (res domain.User, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM users WHERE username = $1", username)
	err = row.StructScan(&res)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, nil
		}
		log.Error().Err(err).Str("component", "GetUserByUsername").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

func (r *UserPostgresRepository) GetUserByID(ctx context.Context, id int64) (res domain.User, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM users WHERE id = $1", id)
	err = row.StructScan(&res)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, nil
		}
		log.Error().Err(err).Str("component", "GetUserByID").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

func (r *UserPostgresRepository) AddUser(ctx context.Context, data domain.User) (id int64, err error) {
	data.CreatedAt = time.Now().UnixMilli()

	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO users(external_id, username, email, hashed_password, created_at) VALUES (:external_id, :username, :email, :hashed_password, :created_at) returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
		return
	}

	err = nstmt.GetContext(ctx, &id, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
		return
	}

	return
}
