package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"audiotour/internal/delivery/api/response"
	"audiotour/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TourHandlerParams holds dependencies for TourHandler, injected by Fx.
type TourHandlerParams struct {
	fx.In

	TourUC usecase.TourUsecase
	Logger *slog.Logger
}

// TourHandler drives the active route session.
type TourHandler struct {
	tourUC usecase.TourUsecase
	logger *slog.Logger
	now    func() time.Time
}

// NewTourHandler is the constructor for TourHandler
func NewTourHandler(params TourHandlerParams) *TourHandler {
	return &TourHandler{
		tourUC: params.TourUC,
		logger: params.Logger,
		now:    time.Now,
	}
}

// StartTour handles starting a route
func (h *TourHandler) StartTour(c echo.Context) error {
	var req StartTourRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid tour input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	input := usecase.StartTourInput{
		RouteID:  req.RouteID,
		Optimize: req.Optimize,
	}
	if req.StartLocation != nil {
		location := req.StartLocation.toEntity()
		input.StartLocation = &location
	}

	status, err := h.tourUC.StartTour(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, status)
}

// GetStatus handles reading the active route's progress
func (h *TourHandler) GetStatus(c echo.Context) error {
	status, err := h.tourUC.Status(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

// EndTour handles ending the active route
func (h *TourHandler) EndTour(c echo.Context) error {
	if err := h.tourUC.EndTour(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Tour ended"})
}

// GetResumeCandidate handles checking for a resumable route
func (h *TourHandler) GetResumeCandidate(c echo.Context) error {
	candidate, err := h.tourUC.ResumeCandidate(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newResumeCandidateResponse(candidate))
}

// ResumeTour handles rebuilding the persisted route
func (h *TourHandler) ResumeTour(c echo.Context) error {
	out, err := h.tourUC.ResumeTour(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newResumeResponse(out))
}

// DiscardResume handles dropping the persisted route
func (h *TourHandler) DiscardResume(c echo.Context) error {
	if err := h.tourUC.DiscardResume(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Resume discarded"})
}

// UpdateLocation handles one location sample
func (h *TourHandler) UpdateLocation(c echo.Context) error {
	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	out, err := h.tourUC.UpdateLocation(c.Request().Context(), req.toEntity(h.now()))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newLocationResponse(out))
}

// RegionEntered handles a native region wake-up for one stop
func (h *TourHandler) RegionEntered(c echo.Context) error {
	stopID := c.Param("stopId")

	triggered, err := h.tourUC.RegionEntered(c.Request().Context(), stopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, RegionEnteredResponse{StopID: stopID, Triggered: triggered})
}

// MonitoredRegions handles listing the regions the client should register
func (h *TourHandler) MonitoredRegions(c echo.Context) error {
	regions, err := h.tourUC.MonitoredRegions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, regions)
}

// SkipNarration handles skipping to the next queued narration
func (h *TourHandler) SkipNarration(c echo.Context) error {
	return h.narration(c, h.tourUC.SkipNarration)
}

// PauseNarration handles pausing the current narration
func (h *TourHandler) PauseNarration(c echo.Context) error {
	return h.narration(c, h.tourUC.PauseNarration)
}

// ResumeNarration handles resuming a paused narration
func (h *TourHandler) ResumeNarration(c echo.Context) error {
	return h.narration(c, h.tourUC.ResumeNarration)
}

// StopNarration handles stopping playback without clearing the queue
func (h *TourHandler) StopNarration(c echo.Context) error {
	return h.narration(c, h.tourUC.StopNarration)
}

// narration runs a playback control and answers with the resulting playback state.
func (h *TourHandler) narration(c echo.Context, action func(context.Context) error) error {
	ctx := c.Request().Context()
	if err := action(ctx); err != nil {
		return response.HandleAppError(c, err)
	}

	status, err := h.tourUC.Status(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status.Playback)
}
