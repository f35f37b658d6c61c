package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "shopfront/internal/errors"
	"shopfront/internal/repository"
	"shopfront/internal/service"
)

// SupplierHandler handles vendor management endpoints.
type SupplierHandler struct {
	supplierService service.SupplierService
}

// NewSupplierHandler creates a new supplier handler.
func NewSupplierHandler(supplierService service.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// SupplierRequest represents supplier create and update payloads.
type SupplierRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	CNPJ    string `json:"cnpj" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Website string `json:"website" validate:"omitempty,url"`
}

// Create godoc
// @Summary Create a supplier (admin)
// @Tags suppliers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SupplierRequest true "Supplier data"
// @Success 201 {object} model.Supplier
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /suppliers [post]
func (h *SupplierHandler) Create(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	supplier, err := h.supplierService.Create(c.Request().Context(), claims.UserID, service.SupplierInput{
		Name:    req.Name,
		Email:   req.Email,
		CNPJ:    req.CNPJ,
		Phone:   req.Phone,
		Website: req.Website,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, supplier)
}

// List godoc
// @Summary List suppliers, paginated (admin)
// @Tags suppliers
// @Produce json
// @Security BearerAuth
// @Param name query string false "Substring name filter"
// @Param cnpj query string false "Exact CNPJ filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} service.SupplierPage
// @Failure 403 {object} errors.ErrorResponse
// @Router /suppliers [get]
func (h *SupplierHandler) List(c echo.Context) error {
	filter := repository.SupplierFilter{
		Name: c.QueryParam("name"),
		CNPJ: c.QueryParam("cnpj"),
	}
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.supplierService.List(c.Request().Context(), filter, page, limit)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, result)
}

// Get godoc
// @Summary Get a supplier by id (admin)
// @Tags suppliers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Supplier ID"
// @Success 200 {object} model.Supplier
// @Failure 404 {object} errors.ErrorResponse
// @Router /suppliers/{id} [get]
func (h *SupplierHandler) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid supplier id")
	}

	supplier, err := h.supplierService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, supplier)
}

// Update godoc
// @Summary Update a supplier (admin)
// @Tags suppliers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Supplier ID"
// @Param request body SupplierRequest true "Supplier data"
// @Success 200 {object} model.Supplier
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /suppliers/{id} [put]
func (h *SupplierHandler) Update(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid supplier id")
	}

	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	supplier, err := h.supplierService.Update(c.Request().Context(), claims.UserID, id, service.SupplierInput{
		Name:    req.Name,
		Email:   req.Email,
		CNPJ:    req.CNPJ,
		Phone:   req.Phone,
		Website: req.Website,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, supplier)
}

// Delete godoc
// @Summary Delete a supplier (admin)
// @Tags suppliers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Supplier ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid supplier id")
	}

	if err := h.supplierService.Delete(c.Request().Context(), id); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "supplier deleted"})
}
