package handler

import (
	"log/slog"
	"net/http"

	"audiotour/internal/delivery/api/response"
	"audiotour/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouteHandlerParams holds dependencies for RouteHandler, injected by Fx.
type RouteHandlerParams struct {
	fx.In

	TourUC usecase.TourUsecase
	Logger *slog.Logger
}

// RouteHandler serves the read-only route catalog.
type RouteHandler struct {
	tourUC usecase.TourUsecase
	logger *slog.Logger
}

// NewRouteHandler is the constructor for RouteHandler
func NewRouteHandler(params RouteHandlerParams) *RouteHandler {
	return &RouteHandler{
		tourUC: params.TourUC,
		logger: params.Logger,
	}
}

// ListRoutes handles listing the catalog
func (h *RouteHandler) ListRoutes(c echo.Context) error {
	routes, err := h.tourUC.ListRoutes(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newRouteSummaries(routes))
}

// GetRoute handles retrieving one route with its stops
func (h *RouteHandler) GetRoute(c echo.Context) error {
	route, err := h.tourUC.GetRoute(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, route)
}

// SuggestOptimization handles the "optimize this route from here?" check
func (h *RouteHandler) SuggestOptimization(c echo.Context) error {
	var req CoordinateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	suggestion, err := h.tourUC.SuggestOptimization(c.Request().Context(), c.Param("id"), req.toEntity())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOptimizationResponse(suggestion))
}
