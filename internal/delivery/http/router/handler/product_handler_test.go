package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gsale/internal/delivery/http/validator"
	"gsale/internal/domain/entity"
	"gsale/internal/domain/valueobject"
	"gsale/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProductUsecase overrides only the methods a test exercises. Calls to
// anything else panic through the embedded nil interface.
type stubProductUsecase struct {
	usecase.ProductUsecase

	getFn    func(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	searchFn func(ctx context.Context, input usecase.SearchProductsInput) (*usecase.ProductPage, error)
}

func (s *stubProductUsecase) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductUsecase) SearchProducts(ctx context.Context, input usecase.SearchProductsInput) (*usecase.ProductPage, error) {
	return s.searchFn(ctx, input)
}

func newTestProduct(t *testing.T) *entity.Product {
	t.Helper()

	price, err := valueobject.NewMoney(decimal.NewFromFloat(149.90), valueobject.CurrencyBRL)
	require.NoError(t, err)

	product, err := entity.NewProduct(entity.NewProductParams{
		Name:        "Used mountain bike",
		Description: "Aro 29 mountain bike, lightly used, recently serviced",
		Price:       price,
		SellerID:    uuid.New(),
		Category:    entity.CategorySports,
		Quantity:    1,
	})
	require.NoError(t, err)

	return product
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func TestProductHandler_Get(t *testing.T) {
	product := newTestProduct(t)
	h := &ProductHandler{productUsecase: &stubProductUsecase{
		getFn: func(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
			assert.Equal(t, product.ID(), id)

			return product, nil
		},
	}}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(product.ID().String())

	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Used mountain bike")
	assert.Contains(t, body, `"amount":"149.90"`)
	assert.Contains(t, body, `"currency":"BRL"`)
	assert.Contains(t, body, `"status":"available"`)
}

func TestProductHandler_Get_InvalidID(t *testing.T) {
	h := &ProductHandler{productUsecase: &stubProductUsecase{}}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_PRODUCT_ID")
}

func TestProductHandler_Search(t *testing.T) {
	product := newTestProduct(t)
	h := &ProductHandler{productUsecase: &stubProductUsecase{
		searchFn: func(ctx context.Context, input usecase.SearchProductsInput) (*usecase.ProductPage, error) {
			assert.Equal(t, "bike", input.Query)
			assert.Equal(t, "sports", input.Category)
			assert.Equal(t, 2, input.Page)
			assert.Equal(t, 5, input.PageSize)

			return &usecase.ProductPage{
				Products: []*entity.Product{product},
				Total:    1,
				Page:     2,
				PageSize: 5,
			}, nil
		},
	}}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/?q=bike&category=sports&page=2&page_size=5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Search(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"total":1`)
	assert.Contains(t, body, `"page":2`)
	assert.Contains(t, body, "Used mountain bike")
}

func TestProductHandler_ScanQR_MissingData(t *testing.T) {
	h := &ProductHandler{productUsecase: &stubProductUsecase{}}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ScanQR(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
