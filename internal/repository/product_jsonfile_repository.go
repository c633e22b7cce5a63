package repository

import (
	"context"
	"sync"
	"time"

	"github.com/pazarlabs/pazar/internal/domain"
	"github.com/pazarlabs/pazar/internal/infrastructure/database/jsonfile"
	"github.com/pazarlabs/pazar/pkg/errs"
)

const productsCollection = "products"

type ProductJSONFileRepository struct {
	store *jsonfile.Store
	mu    sync.Mutex
}

func CreateNewProductJSONFileRepository(store *jsonfile.Store) ProductRepository {
	return &ProductJSONFileRepository{store: store}
}

func (r *ProductJSONFileRepository) load() (products []domain.Product, err error) {
	err = r.store.Load(productsCollection, &products)
	return
}

// GetProducts returns the collection in stored (insertion) order.
func (r *ProductJSONFileRepository) GetProducts(ctx context.Context) (data []domain.Product, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

func (r *ProductJSONFileRepository) GetProductByID(ctx context.Context, id int64) (res domain.Product, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return
	}

	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}

	return
}

func (r *ProductJSONFileRepository) AddProduct(ctx context.Context, data domain.Product) (id int64, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return
	}

	for _, p := range products {
		if p.ID > id {
			id = p.ID
		}
	}
	id++

	data.ID = id
	data.CreatedAt = time.Now().UnixMilli()

	products = append(products, data)

	if err = r.store.Save(productsCollection, products); err != nil {
		return 0, err
	}

	return id, nil
}

// DeleteProduct removes one record; surviving records keep their ids.
func (r *ProductJSONFileRepository) DeleteProduct(ctx context.Context, id int64) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return
	}

	remaining := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}

	if len(remaining) == len(products) {
		return errs.ErrNotFound
	}

	return r.store.Save(productsCollection, remaining)
}
