package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/medical-camp-registration/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/medical-camp-registration/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// Handlers bundles every handler the API mounts.  Stores are injected into
// the handlers at startup; nothing route-scoped captures a store handle.
type Handlers struct {
	Auth          *handler.AuthHandler
	Users         *handler.UserHandler
	Camps         *handler.CampHandler
	Registrations *handler.RegistrationHandler
	Payments      *handler.PaymentHandler
	Reviews       *handler.ReviewHandler
	Donors        *handler.DonorHandler
}

// RegisterRoutes registers the unauthenticated liveness endpoints.
func RegisterRoutes(e *echo.Echo) {
	// GET / answers the bare "running" probe; /healthz serves load
	// balancers and monitoring.
	e.GET("/", handler.Root)
	e.GET("/healthz", handler.Health)
}

// RegisterAPI mounts the full REST surface.  Gates compose per route:
// requireAuth verifies the bearer token, requireAdmin re-queries the user
// store for the admin role on every request, and RequireSelf pins a route's
// :email parameter to the verified token.  The cache middleware wraps only
// the public list endpoints.
func RegisterAPI(e *echo.Echo, h Handlers, jwtSecret string, roles middleware.RoleLookup, cache echo.MiddlewareFunc) {
	requireAuth := middleware.JWTAuth(jwtSecret)
	requireAdmin := middleware.RequireAdmin(roles)

	// Token issuing: the body's identity claims come back signed.
	e.POST("/jwt", h.Auth.IssueToken)

	// User accounts.  GET /users/:email and POST /users stay open so the
	// client's first-sign-in flow can probe and create accounts.
	e.GET("/users/:email", h.Users.GetUser)
	e.GET("/users/admin/:email", h.Users.IsAdmin, requireAuth, requireAdmin, middleware.RequireSelf("email"))
	e.POST("/users", h.Users.CreateUser)
	e.PATCH("/users/:id", h.Users.UpdateUser)

	// Camps.  Listing is public and cached; mutations of an existing camp
	// are admin-only.
	e.GET("/camps", h.Camps.ListCamps, cache)
	e.POST("/camps", h.Camps.CreateCamp)
	e.GET("/camps/:id", h.Camps.GetCamp)
	e.PATCH("/camps/:id", h.Camps.UpdateCamp, requireAuth, requireAdmin)
	e.DELETE("/camps/:id", h.Camps.DeleteCamp, requireAuth, requireAdmin)

	// Registration lifecycle: join -> pay -> confirm, cancel at any point.
	e.POST("/joinCamp", h.Registrations.Join)
	e.GET("/regCamps", h.Registrations.ListAll, requireAuth, requireAdmin)
	e.GET("/regCamps/:email", h.Registrations.ListByEmail, requireAuth, middleware.RequireSelf("email"))
	e.GET("/regCamp/:id", h.Registrations.Get)
	e.PATCH("/regCamps/:id", h.Registrations.MarkPaid, requireAuth)
	e.PATCH("/regCamp/:id", h.Registrations.Confirm, requireAuth, requireAdmin)
	e.DELETE("/regCamps/:id", h.Registrations.Cancel, requireAuth)

	// Payments.  Intent creation and recording are called by the checkout
	// flow; reading a participant's history is pinned to their token.
	e.POST("/create-payment-intent", h.Payments.CreateIntent)
	e.POST("/payments", h.Payments.Record)
	e.GET("/payments/:email", h.Payments.ListByEmail, requireAuth, middleware.RequireSelf("email"))

	// Append-only side records.
	e.GET("/reviews", h.Reviews.List, cache)
	e.POST("/reviews", h.Reviews.Create)
	e.GET("/donate", h.Donors.List, cache)
	e.POST("/donate", h.Donors.Create)
}
