package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/fasia-660710731/CatfoodStore-FinalProject/internal/event"
	"github.com/fasia-660710731/CatfoodStore-FinalProject/internal/model"
	"github.com/fasia-660710731/CatfoodStore-FinalProject/internal/repository"
	"github.com/fasia-660710731/CatfoodStore-FinalProject/internal/storage/mq"
	"github.com/fasia-660710731/CatfoodStore-FinalProject/pkg/mqheader"
)

// ProductParams is the full field set accepted by create and update.
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

type ProductService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id int64) (model.Product, error)
	CreateProduct(ctx context.Context, params ProductParams) (model.Product, error)
	UpdateProduct(ctx context.Context, id int64, params ProductParams) (model.Product, error)
	DeleteProduct(ctx context.Context, id int64) (model.Product, error)
}

type productService struct {
	logger      *slog.Logger
	productRepo repository.ProductRepository
	mqProducer  mq.Producer
}

func NewProductService(
	logger *slog.Logger,
	productRepo repository.ProductRepository,
	mqProducer mq.Producer,
) ProductService {
	return &productService{
		logger:      logger.With(slog.String("service", "product")),
		productRepo: productRepo,
		mqProducer:  mqProducer,
	}
}

func (s *productService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("product repository list products: %w", err)
	}

	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	product, err := s.productRepo.GetProduct(ctx, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository get product: %w", err)
	}

	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, params ProductParams) (model.Product, error) {
	product, err := s.productRepo.CreateProduct(ctx, params.toRepository())
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository create product: %w", err)
	}

	s.publish(ctx, event.TopicProductCreated, product)

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, params ProductParams) (model.Product, error) {
	product, err := s.productRepo.UpdateProduct(ctx, id, params.toRepository())
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository update product: %w", err)
	}

	s.publish(ctx, event.TopicProductUpdated, product)

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) (model.Product, error) {
	product, err := s.productRepo.DeleteProduct(ctx, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository delete product: %w", err)
	}

	s.publish(ctx, event.TopicProductDeleted, product)

	return product, nil
}

// publish emits a product event. The row is already committed, so failures
// are only logged.
func (s *productService) publish(ctx context.Context, topic string, product model.Product) {
	payload, err := json.Marshal(event.ProductEvent{Type: topic, Product: product})
	if err != nil {
		s.logger.ErrorContext(ctx, "error marshalling product event",
			slog.String("topic", topic), slog.Any("error", err))
		return
	}

	key := strconv.FormatInt(product.ID, 10)
	if err := s.mqProducer.Produce(ctx, mq.ProduceMsg{
		Topic:        topic,
		Headers:      mqheader.BuildHeaders(ctx),
		Payload:      payload,
		PartitionKey: &key,
	}); err != nil {
		s.logger.WarnContext(ctx, "error publishing product event",
			slog.String("topic", topic),
			slog.Int64("product_id", product.ID),
			slog.Any("error", err),
		)
	}
}

func (p ProductParams) toRepository() repository.ProductParams {
	return repository.ProductParams{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Weight:      p.Weight,
		AgeGroup:    p.AgeGroup,
		BreedType:   p.BreedType,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
	}
}
