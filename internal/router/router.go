// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/experience-booking/internal/handler"
)

// RegisterRoutes registers routes that carry no business logic on the
// provided Echo instance.  Currently that is only the health check,
// used by load balancers and monitoring to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterCatalog registers the read-only catalog endpoints.  Each
// route is exposed under /v1 and additionally at the bare path the
// legacy frontend calls, so existing clients keep working while new
// ones use the versioned prefix.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler) {
	e.GET("/v1/experiences", h.List)
	e.GET("/v1/experiences/:id", h.Get)

	e.GET("/experiences", h.List)
	e.GET("/experiences/:id", h.Get)
}

// RegisterBooking registers the booking flow: reservation creation and
// lookup, promo validation and the server-side price quote.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, p *handler.PromoHandler, q *handler.QuoteHandler) {
	g := e.Group("/v1")
	g.POST("/bookings", b.Create)
	g.GET("/bookings/:id", b.Get)
	g.POST("/promo/validate", p.Validate)
	g.POST("/quote", q.Quote)

	// Legacy paths without the version prefix.
	e.POST("/bookings", b.Create)
	e.POST("/promo/validate", p.Validate)
}
