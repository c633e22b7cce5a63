package repository

import (
	"context"

	"github.com/pazarlabs/pazar/internal/domain"
)

// Lookups return the zero value with a nil error when no record matches;
// callers decide whether absence is an error.
type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (res domain.User, err error)
	GetUserByUsername(ctx context.Context, username string) (res domain.User, err error)
	GetUserByID(ctx context.Context, id int64) (res domain.User, err error)
	AddUser(ctx context.Context, data domain.User) (id int64, err error)
}

type ProductRepository interface {
	GetProducts(ctx context.Context) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id int64) (res domain.Product, err error)
	AddProduct(ctx context.Context, data domain.Product) (id int64, err error)
	DeleteProduct(ctx context.Context, id int64) (err error)
}
