package http

import (
	"log/slog"
	"net/http"

	"eventticketing/internal/delivery/http/controllers"
	"eventticketing/internal/delivery/http/helpers"
	"eventticketing/internal/delivery/http/middleware"
	"eventticketing/internal/domain"

	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterDeps holds what NewRouter needs to mount the API.
type RouterDeps struct {
	Logger   *slog.Logger
	Verifier domain.TokenVerifier
	Limiter  domain.RateLimiter
	// TrustedProxies may set X-Forwarded-For for rate limit keys.
	TrustedProxies []string
	Events         *controllers.EventController
	Invitees       *controllers.InviteeController
	Attendees      *controllers.AttendeeController
}

// NewRouter initializes the HTTP router with all application routes.
// Routes that accept invite tokens are rate limited per client.
func NewRouter(d RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(d.Verifier, d.Logger)
	optionalAuth := middleware.OptionalAuth(d.Verifier, d.Logger)
	rateLimit := middleware.RateLimit(d.Limiter, d.TrustedProxies, d.Logger)
	gate := func(h http.HandlerFunc) http.HandlerFunc { return rateLimit(optionalAuth(h)) }

	// Events
	mux.HandleFunc("POST /events", requireAuth(d.Events.CreateEvent))
	mux.HandleFunc("GET /events/me", requireAuth(d.Events.ListMyEvents))
	mux.HandleFunc("GET /events/{eventID}/public", d.Events.GetPublicEvent)
	mux.HandleFunc("GET /events/{eventID}/private", gate(d.Events.GetPrivateEvent))
	mux.HandleFunc("GET /events/{eventID}/view", gate(d.Events.ViewEvent))

	// Invitees (owner only)
	mux.HandleFunc("POST /events/{eventID}/invitees", requireAuth(d.Invitees.Invite))
	mux.HandleFunc("GET /events/{eventID}/invitees", requireAuth(d.Invitees.ListInvitees))
	mux.HandleFunc("DELETE /events/{eventID}/invitees", requireAuth(d.Invitees.RemoveInvitees))
	mux.HandleFunc("PATCH /events/{eventID}/invitees", requireAuth(d.Invitees.ResendInvitations))

	// Registrations
	mux.HandleFunc("POST /events/{eventID}/registrations", gate(d.Attendees.RegisterForEvent))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router with the global middleware chain.
func NewHandler(d RouterDeps, allowedOrigins []string) http.Handler {
	return middleware.RequestID(
		middleware.LoggingMiddleware(d.Logger,
			middleware.Recover(d.Logger,
				middleware.CORS(allowedOrigins, NewRouter(d)))))
}
