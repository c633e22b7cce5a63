package repository_test

import (
	"context"
	"testing"

	"github.com/pazarlabs/pazar/internal/domain"
	"github.com/pazarlabs/pazar/internal/infrastructure/database/jsonfile"
	"github.com/pazarlabs/pazar/internal/repository"
	"github.com/pazarlabs/pazar/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductRepo(t *testing.T) repository.ProductRepository {
	t.Helper()

	store, err := jsonfile.CreateNewStore(t.TempDir())
	require.NoError(t, err)

	return repository.CreateNewProductJSONFileRepository(store)
}

func TestAddProductAssignsSequentialIDs(t *testing.T) {
	repo := newProductRepo(t)
	ctx := context.Background()

	for i, name := range []string{"Chair", "Lamp", "Desk"} {
		id, err := repo.AddProduct(ctx, domain.Product{Name: name, OwnerID: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), id)
	}
}

func TestDeleteProductKeepsSurvivorIDs(t *testing.T) {
	repo := newProductRepo(t)
	ctx := context.Background()

	for _, name := range []string{"Chair", "Lamp", "Desk"} {
		_, err := repo.AddProduct(ctx, domain.Product{Name: name, OwnerID: 1})
		require.NoError(t, err)
	}

	require.NoError(t, repo.DeleteProduct(ctx, 2))

	products, err := repo.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, int64(3), products[1].ID)
}

func TestAddAfterDeleteNeverCollidesWithSurvivors(t *testing.T) {
	repo := newProductRepo(t)
	ctx := context.Background()

	for _, name := range []string{"Chair", "Lamp", "Desk"} {
		_, err := repo.AddProduct(ctx, domain.Product{Name: name, OwnerID: 1})
		require.NoError(t, err)
	}

	// Length-based assignment would hand out id 3 here and collide with the
	// surviving desk; max-based assignment cannot.
	require.NoError(t, repo.DeleteProduct(ctx, 1))

	id, err := repo.AddProduct(ctx, domain.Product{Name: "Sofa", OwnerID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)

	products, err := repo.GetProducts(ctx)
	require.NoError(t, err)

	seen := make(map[int64]bool)
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}
}

func TestDeleteMissingProduct(t *testing.T) {
	repo := newProductRepo(t)

	err := repo.DeleteProduct(context.Background(), 42)

	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestGetProductByIDMissingReturnsZeroValue(t *testing.T) {
	repo := newProductRepo(t)

	product, err := repo.GetProductByID(context.Background(), 42)

	require.NoError(t, err)
	assert.Zero(t, product.ID)
}
