package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/shopspring/decimal"

	"github.com/fasia-660710731/CatfoodStore-FinalProject/internal/model"
	"github.com/fasia-660710731/CatfoodStore-FinalProject/internal/service"
)

// productRequest is the body of create and update. Every field is optional
// and an omitted field is stored as NULL.
type productRequest struct {
	Name        textValue           `json:"name"`
	Description textValue           `json:"description"`
	Price       decimal.NullDecimal `json:"price"`
	Weight      decimal.NullDecimal `json:"weight"`
	AgeGroup    textValue           `json:"age_group"`
	BreedType   textValue           `json:"breed_type"`
	Category    textValue           `json:"category"`
	ImageURL    textValue           `json:"image_url"`
}

// textValue is a text column value. Any JSON value is accepted: strings are
// unquoted, null stays NULL and everything else is kept as its JSON text,
// so 123 is stored as "123".
type textValue struct {
	v *string
}

func (t *textValue) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		t.v = nil
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		t.v = &s
		return nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return err
	}
	s := buf.String()
	t.v = &s
	return nil
}

type deleteProductResponse struct {
	Message string        `json:"message"`
	Product model.Product `json:"product"`
}

type productHandler struct {
	productSvc service.ProductService
}

func newProductHandler(productSvc service.ProductService) *productHandler {
	return &productHandler{
		productSvc: productSvc,
	}
}

func (h *productHandler) ListProducts(w http.ResponseWriter, r *http.Request) error {
	products, err := h.productSvc.ListProducts(r.Context())
	if err != nil {
		return fmt.Errorf("product service list products: %w", err)
	}

	if products == nil {
		products = []model.Product{}
	}

	return writeJSON(w, http.StatusOK, products)
}

func (h *productHandler) GetProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := productID(r)
	if err != nil {
		return err
	}

	product, err := h.productSvc.GetProduct(r.Context(), id)
	if err != nil {
		return fmt.Errorf("product service get product: %w", err)
	}

	return writeJSON(w, http.StatusOK, product)
}

func (h *productHandler) CreateProduct(w http.ResponseWriter, r *http.Request) error {
	body, err := decodeProductRequest(r)
	if err != nil {
		return err
	}

	product, err := h.productSvc.CreateProduct(r.Context(), body.toParams())
	if err != nil {
		return fmt.Errorf("product service create product: %w", err)
	}

	return writeJSON(w, http.StatusCreated, product)
}

func (h *productHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := productID(r)
	if err != nil {
		return err
	}

	body, err := decodeProductRequest(r)
	if err != nil {
		return err
	}

	product, err := h.productSvc.UpdateProduct(r.Context(), id, body.toParams())
	if err != nil {
		return fmt.Errorf("product service update product: %w", err)
	}

	return writeJSON(w, http.StatusOK, product)
}

func (h *productHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := productID(r)
	if err != nil {
		return err
	}

	product, err := h.productSvc.DeleteProduct(r.Context(), id)
	if err != nil {
		return fmt.Errorf("product service delete product: %w", err)
	}

	return writeJSON(w, http.StatusOK, deleteProductResponse{
		Message: "Deleted successfully",
		Product: product,
	})
}

func productID(r *http.Request) (int64, error) {
	var id int64
	if err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		}); err != nil {
		return 0, fmt.Errorf("bind id parameter: %w", err)
	}

	return id, nil
}

// decodeProductRequest treats an empty body as an empty object.
func decodeProductRequest(r *http.Request) (productRequest, error) {
	var body productRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return productRequest{}, fmt.Errorf("decode request body: %w", err)
	}

	return body, nil
}

func (b productRequest) toParams() service.ProductParams {
	return service.ProductParams{
		Name:        b.Name.v,
		Description: b.Description.v,
		Price:       b.Price,
		Weight:      b.Weight,
		AgeGroup:    b.AgeGroup.v,
		BreedType:   b.BreedType.v,
		Category:    b.Category.v,
		ImageURL:    b.ImageURL.v,
	}
}
