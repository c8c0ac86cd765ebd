// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"arklane/internal/delivery/http/middleware"
	"arklane/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	VendorHandler       *handler.VendorHandler
	QuoteHandler        *handler.QuoteHandler
	ReportHandler       *handler.ReportHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	vendorHandler       *handler.VendorHandler
	quoteHandler        *handler.QuoteHandler
	reportHandler       *handler.ReportHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		vendorHandler:       params.VendorHandler,
		quoteHandler:        params.QuoteHandler,
		reportHandler:       params.ReportHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	e.Use(r.requestIDMiddleware.Process)

	// Vendor registry
	vendorGroup := e.Group("/vendors")
	{
		vendorGroup.POST("", r.vendorHandler.AddVendor)
		vendorGroup.GET("", r.vendorHandler.ListVendors)
		vendorGroup.GET("/:id", r.vendorHandler.GetVendor)
		vendorGroup.PATCH("/:id", r.vendorHandler.UpdateVendor)
		vendorGroup.DELETE("/:id", r.vendorHandler.DeleteVendor)
		vendorGroup.POST("/:id/pricing", r.vendorHandler.AddPricing)
		vendorGroup.PUT("/:id/performance", r.vendorHandler.UpdatePerformance)

		// Quoting, selection and reporting
		vendorGroup.POST("/:id/quote", r.quoteHandler.GetQuote)
		vendorGroup.POST("/best", r.quoteHandler.FindBestVendor)
		vendorGroup.GET("/:id/report", r.reportHandler.GetPerformanceReport)
	}

	quoteGroup := e.Group("/quotes")
	{
		quoteGroup.POST("/compare", r.quoteHandler.CompareQuotes)
	}
}
