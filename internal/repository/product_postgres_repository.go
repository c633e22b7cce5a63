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

type ProductPostgresRepository struct {
	db *sqlx.DB
}

func CreateNewProductPostgresRepository(db *sqlx.DB) ProductRepository {
	return &ProductPostgresRepository{db: db}
}

func (r *ProductPostgresRepository) GetProducts(ctx context.Context) (data []domain.Product, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM products ORDER BY id")
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

func (r *ProductPostgresRepository) GetProductByID(ctx context.Context, id int64) (res domain.Product, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM products WHERE id = $1", id)
	err = row.StructScan(&res)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, nil
		}
		log.Error().Err(err).Str("component", "GetProductByID").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

func (r *ProductPostgresRepository) AddProduct(ctx context.Context, data domain.Product) (id int64, err error) {
	data.CreatedAt = time.Now().UnixMilli()

	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO products(external_id, name, price, description, image, category, owner_id, created_at) VALUES (:external_id, :name, :price, :description, :image, :category, :owner_id, :created_at) returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	err = nstmt.GetContext(ctx, &id, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return
}

func (r *ProductPostgresRepository) DeleteProduct(ctx context.Context, id int64) (err error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return errs.ErrInternalServer
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return errs.ErrInternalServer
	}

	if affected == 0 {
		return errs.ErrNotFound
	}

	return nil
}
