package handler

import (
	"net/http"
	"strconv"

	"gsale/internal/delivery/http/middleware"
	"gsale/internal/delivery/http/response"
	"gsale/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandler handles catalog and trading endpoints.
type ProductHandler struct {
	productUsecase usecase.ProductUsecase
}

// ProductHandlerParams defines the dependencies for the product handler.
type ProductHandlerParams struct {
	fx.In

	ProductUsecase usecase.ProductUsecase
}

// NewProductHandler creates a new product handler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{productUsecase: params.ProductUsecase}
}

func productIDParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

type createProductRequest struct {
	Name        string   `json:"name" validate:"required,min=3,max=200"`
	Description string   `json:"description" validate:"required,min=10,max=2000"`
	Price       string   `json:"price" validate:"required"`
	Currency    string   `json:"currency" validate:"omitempty,len=3"`
	Category    string   `json:"category" validate:"required"`
	Quantity    int      `json:"quantity" validate:"omitempty,min=1"`
	Images      []string `json:"images" validate:"omitempty,max=5,dive,url"`
}

// Create lists a new product for the authenticated seller.
func (h *ProductHandler) Create(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request payload")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.productUsecase.CreateProduct(c.Request().Context(), sellerID, usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		Category:    req.Category,
		Quantity:    req.Quantity,
		Images:      req.Images,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product))
}

// Get returns a single product and counts the view.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := productIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_PRODUCT_ID", "Product ID must be a valid UUID")
	}

	product, err := h.productUsecase.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

type productPageResponse struct {
	Products []*ProductResponse `json:"products"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// Search filters the public catalog by text, category and price range.
func (h *ProductHandler) Search(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))

	out, err := h.productUsecase.SearchProducts(c.Request().Context(), usecase.SearchProductsInput{
		Query:    c.QueryParam("q"),
		Category: c.QueryParam("category"),
		MinPrice: c.QueryParam("min_price"),
		MaxPrice: c.QueryParam("max_price"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, productPageResponse{
		Products: toProductResponses(out.Products),
		Total:    out.Total,
		Page:     out.Page,
		PageSize: out.PageSize,
	})
}

// ListMine returns every product listed by the authenticated seller.
func (h *ProductHandler) ListMine(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	products, err := h.productUsecase.ListMyProducts(c.Request().Context(), sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products))
}

type updateProductRequest struct {
	Name        *string   `json:"name" validate:"omitempty,min=3,max=200"`
	Description *string   `json:"description" validate:"omitempty,min=10,max=2000"`
	Price       *string   `json:"price"`
	Category    *string   `json:"category"`
	Quantity    *int      `json:"quantity" validate:"omitempty,min=1"`
	Images      *[]string `json:"images" validate:"omitempty,max=5,dive,url"`
}

// Update edits the seller's own listing.
func (h *ProductHandler) Update(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	id, err := productIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_PRODUCT_ID", "Product ID must be a valid UUID")
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request payload")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.productUsecase.UpdateProduct(c.Request().Context(), sellerID, id, usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Quantity:    req.Quantity,
		Images:      req.Images,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// Delete removes the seller's own listing. Sold listings cannot be deleted.
func (h *ProductHandler) Delete(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	id, err := productIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_PRODUCT_ID", "Product ID must be a valid UUID")
	}

	if err := h.productUsecase.DeleteProduct(c.Request().Context(), sellerID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "product deleted"})
}

// Deactivate hides the seller's own listing from the catalog.
func (h *ProductHandler) Deactivate(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	id, err := productIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_PRODUCT_ID", "Product ID must be a valid UUID")
	}

	if err := h.productUsecase.DeactivateProduct(c.Request().Context(), sellerID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "product deactivated"})
}

// Activate returns a deactivated listing to the catalog.
func (h *ProductHandler) Activate(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	id, err := productIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_PRODUCT_ID", "Product ID must be a valid UUID")
	}

	if err := h.productUsecase.ActivateProduct(c.Request().Context(), sellerID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "product activated"})
}

type applyDiscountRequest struct {
	Percentage string `json:"percentage" validate:"required"`
}

// ApplyDiscount reduces the listing price by a percentage.
func (h *ProductHandler) ApplyDiscount(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	id, err := productIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_PRODUCT_ID", "Product ID must be a valid UUID")
	}

	var req applyDiscountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request payload")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.productUsecase.ApplyDiscount(c.Request().Context(), sellerID, id, usecase.ApplyDiscountInput{
		Percentage: req.Percentage,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// Reserve holds an available product for the authenticated buyer.
func (h *ProductHandler) Reserve(c echo.Context) error {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	id, err := productIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_PRODUCT_ID", "Product ID must be a valid UUID")
	}

	if err := h.productUsecase.ReserveProduct(c.Request().Context(), buyerID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "product reserved"})
}

// Release frees a reservation held by the buyer or cancelled by the seller.
func (h *ProductHandler) Release(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	id, err := productIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_PRODUCT_ID", "Product ID must be a valid UUID")
	}

	if err := h.productUsecase.ReleaseReservation(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "reservation released"})
}

// Purchase completes the sale of a product to the authenticated buyer.
func (h *ProductHandler) Purchase(c echo.Context) error {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	id, err := productIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_PRODUCT_ID", "Product ID must be a valid UUID")
	}

	sale, err := h.productUsecase.PurchaseProduct(c.Request().Context(), buyerID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toSaleResponse(sale))
}

type productQRResponse struct {
	Data     string `json:"data"`
	ImageURL string `json:"image_url"`
}

// GenerateQR creates and stores the QR code for the seller's listing.
func (h *ProductHandler) GenerateQR(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	id, err := productIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_PRODUCT_ID", "Product ID must be a valid UUID")
	}

	out, err := h.productUsecase.GenerateProductQR(c.Request().Context(), sellerID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, productQRResponse{
		Data:     out.Data,
		ImageURL: out.ImageURL,
	})
}

type scanQRRequest struct {
	Data string `json:"data" validate:"required"`
}

type sellerContactResponse struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	WhatsAppLink string `json:"whatsapp_link"`
}

type scanQRResponse struct {
	Product *ProductResponse       `json:"product"`
	Seller  *sellerContactResponse `json:"seller"`
}

// ScanQR resolves scanned QR payload to its product and seller contact.
func (h *ProductHandler) ScanQR(c echo.Context) error {
	var req scanQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request payload")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.productUsecase.ScanProductQR(c.Request().Context(), req.Data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, scanQRResponse{
		Product: toProductResponse(out.Product),
		Seller: &sellerContactResponse{
			Name:         out.Seller.Name(),
			Phone:        out.Seller.Phone().Formatted(),
			WhatsAppLink: out.Seller.Phone().WhatsAppLink(),
		},
	})
}
