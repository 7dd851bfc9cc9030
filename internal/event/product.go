package event

import (
	"context"
	"log/slog"

	"github.com/fasia-660710731/CatfoodStore-FinalProject/internal/model"
)

const (
	TopicProductCreated = "product.created"
	TopicProductUpdated = "product.updated"
	TopicProductDeleted = "product.deleted"
)

// ProductTopics lists every topic carrying a ProductEvent.
var ProductTopics = []string{TopicProductCreated, TopicProductUpdated, TopicProductDeleted}

// ProductEvent is published after a product row has been written.
type ProductEvent struct {
	Type    string        `json:"type"`
	Product model.Product `json:"product"`
}

func (s *Service) handleProductEvent(ctx context.Context, ev ProductEvent) error {
	s.logger.InfoContext(ctx, "handling product event",
		slog.String("type", ev.Type),
		slog.Int64("product_id", ev.Product.ID),
	)
	return nil
}
