package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/fasia-660710731/CatfoodStore-FinalProject/internal/apperr"
	"github.com/fasia-660710731/CatfoodStore-FinalProject/internal/model"
	"github.com/fasia-660710731/CatfoodStore-FinalProject/internal/storage/db"
)

// ProductParams is the full set of caller supplied product attributes.
// Nil or invalid values are written as NULL.
type ProductParams struct {
	Name        *string
	Description *string
	Price       decimal.NullDecimal
	Weight      decimal.NullDecimal
	AgeGroup    *string
	BreedType   *string
	Category    *string
	ImageURL    *string
}

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id int64) (model.Product, error)
	CreateProduct(ctx context.Context, params ProductParams) (model.Product, error)
	UpdateProduct(ctx context.Context, id int64, params ProductParams) (model.Product, error)
	DeleteProduct(ctx context.Context, id int64) (model.Product, error)
}

const productColumns = `id, name, description, price, weight, age_group, breed_type, category, image_url, created_at, updated_at`

type productRepository struct {
	db db.DB
}

func NewProductRepository(db db.DB) ProductRepository {
	return &productRepository{
		db: db,
	}
}

func (r productRepository) ListProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}

	products, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Product])
	if err != nil {
		return nil, fmt.Errorf("collect products: %w", err)
	}

	return products, nil
}

func (r productRepository) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("query product: %w", err)
	}

	return collectProduct(rows)
}

func (r productRepository) CreateProduct(ctx context.Context, params ProductParams) (model.Product, error) {
	rows, err := r.db.Query(ctx, `
		INSERT INTO products
			(name, description, price, weight, age_group, breed_type, category, image_url)
		VALUES
			(@name, @description, @price, @weight, @age_group, @breed_type, @category, @image_url)
		RETURNING `+productColumns,
		params.namedArgs(),
	)
	if err != nil {
		return model.Product{}, fmt.Errorf("insert product: %w", err)
	}

	return collectProduct(rows)
}

func (r productRepository) UpdateProduct(ctx context.Context, id int64, params ProductParams) (model.Product, error) {
	args := params.namedArgs()
	args["id"] = id

	rows, err := r.db.Query(ctx, `
		UPDATE products SET
			name        = @name,
			description = @description,
			price       = @price,
			weight      = @weight,
			age_group   = @age_group,
			breed_type  = @breed_type,
			category    = @category,
			image_url   = @image_url,
			updated_at  = NOW()
		WHERE id = @id
		RETURNING `+productColumns,
		args,
	)
	if err != nil {
		return model.Product{}, fmt.Errorf("update product: %w", err)
	}

	return collectProduct(rows)
}

func (r productRepository) DeleteProduct(ctx context.Context, id int64) (model.Product, error) {
	rows, err := r.db.Query(ctx, `DELETE FROM products WHERE id = $1 RETURNING `+productColumns, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("delete product: %w", err)
	}

	return collectProduct(rows)
}

func (p ProductParams) namedArgs() pgx.NamedArgs {
	return pgx.NamedArgs{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"weight":      p.Weight,
		"age_group":   p.AgeGroup,
		"breed_type":  p.BreedType,
		"category":    p.Category,
		"image_url":   p.ImageURL,
	}
}

// collectProduct reads exactly one product, mapping an empty result to
// ProductNotFoundErr.
func collectProduct(rows pgx.Rows) (model.Product, error) {
	product, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Product])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, apperr.ProductNotFoundErr.WrapParent(err)
		}
		return model.Product{}, fmt.Errorf("collect product: %w", err)
	}

	return product, nil
}
