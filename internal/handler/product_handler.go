package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "shopfront/internal/errors"
	"shopfront/internal/repository"
	"shopfront/internal/service"
)

// ProductHandler handles catalog endpoints.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProductRequest represents a product creation request.
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       string   `json:"price" validate:"required"`
	CostPrice   string   `json:"costPrice"`
	Quantity    *int     `json:"quantity" validate:"required,min=0"`
	SupplierID  *uint    `json:"supplierId"`
	Images      []string `json:"images"`
}

// UpdateProductRequest represents a partial product update.
type UpdateProductRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       *string  `json:"price"`
	CostPrice   *string  `json:"costPrice"`
	Quantity    *int     `json:"quantity" validate:"omitempty,min=0"`
	SupplierID  *uint    `json:"supplierId"`
	Images      []string `json:"images"`
}

// Create godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateProductRequest true "Product data"
// @Success 201 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid price",
			Code:  "INVALID_PRICE",
		})
	}
	costPrice := decimal.Zero
	if req.CostPrice != "" {
		costPrice, err = decimal.NewFromString(req.CostPrice)
		if err != nil || costPrice.IsNegative() {
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
				Error: "invalid costPrice",
				Code:  "INVALID_PRICE",
			})
		}
	}

	product, err := h.productService.Create(c.Request().Context(), claims.UserID, service.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		CostPrice:   costPrice,
		Quantity:    *req.Quantity,
		SupplierID:  req.SupplierID,
		ImageURLs:   req.Images,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, product)
}

// Get godoc
// @Summary Get a product by id
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.Product
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	product, err := h.productService.Get(c.Request().Context(), id)
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

	return c.JSON(http.StatusOK, product)
}

// List godoc
// @Summary List products with optional filters
// @Tags products
// @Produce json
// @Param name query string false "Substring name filter"
// @Param price query string false "Exact price filter"
// @Param quantity query int false "Exact quantity filter"
// @Success 200 {array} model.Product
// @Router /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	filter := repository.ProductFilter{Name: c.QueryParam("name")}

	if raw := c.QueryParam("price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
				Error: "invalid price filter",
				Code:  "INVALID_PRICE",
			})
		}
		filter.Price = &price
	}
	if raw := c.QueryParam("quantity"); raw != "" {
		qty, err := parseID(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
				Error: "invalid quantity filter",
				Code:  "INVALID_QUANTITY",
			})
		}
		q := int(qty)
		filter.Quantity = &q
	}

	products, err := h.productService.List(c.Request().Context(), filter)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, products)
}

// Update godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body UpdateProductRequest true "Product fields"
// @Success 200 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := service.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		SupplierID:  req.SupplierID,
		ImageURLs:   req.Images,
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil || price.IsNegative() {
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
				Error: "invalid price",
				Code:  "INVALID_PRICE",
			})
		}
		in.Price = &price
	}
	if req.CostPrice != nil {
		costPrice, err := decimal.NewFromString(*req.CostPrice)
		if err != nil || costPrice.IsNegative() {
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
				Error: "invalid costPrice",
				Code:  "INVALID_PRICE",
			})
		}
		in.CostPrice = &costPrice
	}

	product, err := h.productService.Update(c.Request().Context(), claims.UserID, id, in)
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

	return c.JSON(http.StatusOK, product)
}

// Delete godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]uint
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	if err := h.productService.Delete(c.Request().Context(), id); err != nil {
		if err == apperrors.ErrProductNotFound {
			return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrorResponse{
				Error: err.Error(),
				Code:  "PRODUCT_NOT_FOUND",
			})
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]uint{"deletedID": id})
}
