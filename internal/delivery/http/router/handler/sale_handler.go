package handler

import (
	"net/http"

	"gsale/internal/delivery/http/middleware"
	"gsale/internal/delivery/http/response"
	"gsale/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SaleHandler handles sale history and settlement endpoints.
type SaleHandler struct {
	saleUsecase usecase.SaleUsecase
}

// SaleHandlerParams defines the dependencies for the sale handler.
type SaleHandlerParams struct {
	fx.In

	SaleUsecase usecase.SaleUsecase
}

// NewSaleHandler creates a new sale handler.
func NewSaleHandler(params SaleHandlerParams) *SaleHandler {
	return &SaleHandler{saleUsecase: params.SaleUsecase}
}

// ListPurchases returns the authenticated user's purchases.
func (h *SaleHandler) ListPurchases(c echo.Context) error {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	sales, err := h.saleUsecase.ListPurchases(c.Request().Context(), buyerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSaleResponses(sales))
}

// ListSales returns the sales of the authenticated seller.
func (h *SaleHandler) ListSales(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	sales, err := h.saleUsecase.ListSales(c.Request().Context(), sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSaleResponses(sales))
}

type refundRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

// Refund reverses one of the seller's completed sales.
func (h *SaleHandler) Refund(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	saleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_SALE_ID", "Sale ID must be a valid UUID")
	}

	// The reason body is optional; an empty body refunds without a note.
	var req refundRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request payload")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	sale, err := h.saleUsecase.RefundSale(c.Request().Context(), sellerID, saleID, usecase.RefundSaleInput{
		Reason: req.Reason,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSaleResponse(sale))
}
