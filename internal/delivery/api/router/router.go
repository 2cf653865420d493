// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"audiotour/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RouteHandler *handler.RouteHandler
	TourHandler  *handler.TourHandler
	EventHandler *handler.EventHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	routeHandler *handler.RouteHandler
	tourHandler  *handler.TourHandler
	eventHandler *handler.EventHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		routeHandler: params.RouteHandler,
		tourHandler:  params.TourHandler,
		eventHandler: params.EventHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Catalog routes
	routesGroup := e.Group("/routes")
	{
		routesGroup.GET("", r.routeHandler.ListRoutes)
		routesGroup.GET("/:id", r.routeHandler.GetRoute)
		routesGroup.POST("/:id/optimization", r.routeHandler.SuggestOptimization)
	}

	// Active route session
	tourGroup := e.Group("/tour")
	{
		tourGroup.POST("", r.tourHandler.StartTour)
		tourGroup.GET("", r.tourHandler.GetStatus)
		tourGroup.DELETE("", r.tourHandler.EndTour)

		tourGroup.GET("/resume", r.tourHandler.GetResumeCandidate)
		tourGroup.POST("/resume", r.tourHandler.ResumeTour)
		tourGroup.DELETE("/resume", r.tourHandler.DiscardResume)

		tourGroup.POST("/location", r.tourHandler.UpdateLocation)
		tourGroup.GET("/regions", r.tourHandler.MonitoredRegions)
		tourGroup.POST("/regions/:stopId/enter", r.tourHandler.RegionEntered)

		narrationGroup := tourGroup.Group("/narration")
		narrationGroup.POST("/skip", r.tourHandler.SkipNarration)
		narrationGroup.POST("/pause", r.tourHandler.PauseNarration)
		narrationGroup.POST("/resume", r.tourHandler.ResumeNarration)
		narrationGroup.POST("/stop", r.tourHandler.StopNarration)

		tourGroup.GET("/events", r.eventHandler.StreamEvents)
	}
}
