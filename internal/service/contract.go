package service

import (
	"context"

	"github.com/pazarlabs/pazar/internal/domain"
	"github.com/pazarlabs/pazar/internal/dto"
)

type IdentityService interface {
	Register(ctx context.Context, data dto.UserRequest) (err error)
	Login(ctx context.Context, payload dto.UserRequest) (respPayload dto.LoginResponse, err error)
	ResolvePrincipal(ctx context.Context, id int64) (principal domain.User, err error)
}

type CatalogService interface {
	GetProducts(ctx context.Context, filter dto.ProductFilter) (resp []dto.ProductResponse, err error)
	GetCategories(ctx context.Context) (categories []string, err error)
	GetProductByID(ctx context.Context, id int64) (resp dto.ProductResponse, err error)
	AddProduct(ctx context.Context, ownerID int64, data dto.ProductRequest) (resp dto.ProductResponse, err error)
	DeleteProduct(ctx context.Context, principalID int64, id int64) (err error)
}
