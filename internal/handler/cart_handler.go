package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "shopfront/internal/errors"
	"shopfront/internal/service"
)

// CartHandler handles cart endpoints.
type CartHandler struct {
	cartService service.CartService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// AddCartItemRequest represents an add-to-cart request.
type AddCartItemRequest struct {
	ProductID uint `json:"productId" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,min=1"`
}

// SetCartItemRequest sets the absolute quantity for a cart line.
type SetCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// AddItem godoc
// @Summary Add an item to the cart, merging with an existing line
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddCartItemRequest true "Item data"
// @Success 200 {object} service.CartView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cart [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cart, err := h.cartService.AddItem(c.Request().Context(), claims.UserID, req.ProductID, req.Quantity)
	if err != nil {
		if err == apperrors.ErrProductNotFound {
			return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrorResponse{
				Error: err.Error(),
				Code:  "PRODUCT_NOT_FOUND",
			})
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, cart)
}

// GetCart godoc
// @Summary Get the caller's cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.CartView
// @Failure 401 {object} errors.ErrorResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	cart, err := h.cartService.GetCart(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, cart)
}

// UpdateItem godoc
// @Summary Set the quantity of a cart line; zero removes it
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productId path int true "Product ID"
// @Param request body SetCartItemRequest true "New quantity"
// @Success 200 {object} service.CartView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cart/{productId} [put]
func (h *CartHandler) UpdateItem(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	productID, err := parseID(c.Param("productId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	var req SetCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cart, err := h.cartService.SetItemQuantity(c.Request().Context(), claims.UserID, productID, *req.Quantity)
	if err != nil {
		if err == apperrors.ErrProductNotFound {
			return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrorResponse{
				Error: err.Error(),
				Code:  "PRODUCT_NOT_FOUND",
			})
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, cart)
}

// RemoveItem godoc
// @Summary Remove a cart line
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param productId path int true "Product ID"
// @Success 200 {object} service.CartView
// @Failure 404 {object} errors.ErrorResponse
// @Router /cart/{productId} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	productID, err := parseID(c.Param("productId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	cart, err := h.cartService.RemoveItem(c.Request().Context(), claims.UserID, productID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, cart)
}
