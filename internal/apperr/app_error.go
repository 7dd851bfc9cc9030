package apperr

import "github.com/fasia-660710731/CatfoodStore-FinalProject/pkg/zerror"

const (
	ProductNotFoundErrorCode = "PRODUCT_NOT_FOUND"
)

var (
	ProductNotFoundErr = zerror.NewNotFound(ProductNotFoundErrorCode, "Product not found")
)
