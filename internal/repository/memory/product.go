package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/fasia-660710731/CatfoodStore-FinalProject/internal/apperr"
	"github.com/fasia-660710731/CatfoodStore-FinalProject/internal/model"
	"github.com/fasia-660710731/CatfoodStore-FinalProject/internal/repository"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository keeps products in a map. Ids are assigned sequentially
// starting at 1, like a serial column.
type ProductRepository struct {
	mu       sync.RWMutex
	lastID   int64
	products map[int64]model.Product
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products: make(map[int64]model.Product),
	}
}

func (r *ProductRepository) ListProducts(_ context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b model.Product) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return out, nil
}

func (r *ProductRepository) GetProduct(_ context.Context, id int64) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return model.Product{}, apperr.ProductNotFoundErr
	}
	return p, nil
}

func (r *ProductRepository) CreateProduct(_ context.Context, params repository.ProductParams) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	now := time.Now()
	p := model.Product{ID: r.lastID, CreatedAt: now, UpdatedAt: &now}
	apply(&p, params)
	r.products[p.ID] = p

	return p, nil
}

func (r *ProductRepository) UpdateProduct(_ context.Context, id int64, params repository.ProductParams) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return model.Product{}, apperr.ProductNotFoundErr
	}

	now := time.Now()
	p.UpdatedAt = &now
	apply(&p, params)
	r.products[id] = p

	return p, nil
}

func (r *ProductRepository) DeleteProduct(_ context.Context, id int64) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return model.Product{}, apperr.ProductNotFoundErr
	}
	delete(r.products, id)

	return p, nil
}

func apply(p *model.Product, params repository.ProductParams) {
	p.Name = params.Name
	p.Description = params.Description
	p.Price = params.Price
	p.Weight = params.Weight
	p.AgeGroup = params.AgeGroup
	p.BreedType = params.BreedType
	p.Category = params.Category
	p.ImageURL = params.ImageURL
}
