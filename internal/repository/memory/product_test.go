package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fasia-660710731/CatfoodStore-FinalProject/internal/apperr"
	"github.com/fasia-660710731/CatfoodStore-FinalProject/internal/repository"
	"github.com/fasia-660710731/CatfoodStore-FinalProject/internal/repository/memory"
	"github.com/fasia-660710731/CatfoodStore-FinalProject/pkg/ptr"
)

func TestProductRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductRepository()

	t.Run("Should assign sequential ids", func(t *testing.T) {
		var wg sync.WaitGroup
		for range 10 {
			wg.Go(func() {
				_, err := repo.CreateProduct(ctx, repository.ProductParams{Name: ptr.New("Kibble")})
				assert.NoError(t, err)
			})
		}
		wg.Wait()

		products, err := repo.ListProducts(ctx)
		require.NoError(t, err)
		require.Len(t, products, 10)
		for i, p := range products {
			assert.Equal(t, int64(i+1), p.ID)
		}
	})

	t.Run("Should replace all fields on update", func(t *testing.T) {
		p, err := repo.UpdateProduct(ctx, 1, repository.ProductParams{Category: ptr.New("wet")})
		require.NoError(t, err)
		assert.Nil(t, p.Name)
		assert.Equal(t, "wet", *p.Category)
	})

	t.Run("Should return not found for missing ids", func(t *testing.T) {
		_, err := repo.GetProduct(ctx, 42)
		assert.ErrorIs(t, err, apperr.ProductNotFoundErr)

		_, err = repo.UpdateProduct(ctx, 42, repository.ProductParams{})
		assert.ErrorIs(t, err, apperr.ProductNotFoundErr)

		_, err = repo.DeleteProduct(ctx, 42)
		assert.ErrorIs(t, err, apperr.ProductNotFoundErr)
	})

	t.Run("Should delete", func(t *testing.T) {
		p, err := repo.DeleteProduct(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(2), p.ID)

		_, err = repo.GetProduct(ctx, 2)
		assert.ErrorIs(t, err, apperr.ProductNotFoundErr)
	})
}
