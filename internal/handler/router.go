/*
Package handler provides the HTTP handlers and routing setup for the PingRoom server.

This file defines the main Router, applying middleware like logging, CORS, and
IP-based rate limiting before delegating requests to specific handlers.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"pingroom/internal/pkg/auth/jwt"
	"pingroom/internal/pkg/limiter"
	"pingroom/internal/pkg/logx"
	"pingroom/internal/pkg/resp"
)

const (
	CreateRoomRate  = 0.05
	CreateRoomBurst = 2
	AuthRate        = 0.2
	AuthBurst       = 5
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
// It initializes IP-based rate limiters, configures CORS, and applies global and
// per-route middleware. The Groq relay route is intentionally left out of rate
// limiting: its observed contract has none.
func Router(deps *AppDeps) http.Handler {
	createLimiter := limiter.NewIPRateLimiter(rate.Limit(CreateRoomRate), CreateRoomBurst)
	authLimiter := limiter.NewIPRateLimiter(rate.Limit(AuthRate), AuthBurst)

	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.Environment == "development" {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		data := map[string]string{
			"status":  "ok",
			"service": "PingRoom Server",
		}
		resp.RespondSuccess(w, r, data)
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(jwt.IdentityExtractorMiddleware(deps.Config.JWTSecret))

		api.Route("/auth", func(auth chi.Router) {
			auth.Use(authLimiter.Middleware)
			auth.Post("/login", HandleLogin(deps))
			auth.Post("/signup", HandleSignup(deps))
		})

		api.Get("/session", HandleGetSession(deps))

		rateLimitedCreateHandler := createLimiter.Middleware(HandleCreateRoom(deps))
		api.Post("/rooms", http.HandlerFunc(rateLimitedCreateHandler.ServeHTTP))
		api.Post("/rooms/select", HandleSelectRoom(deps))
		api.Post("/rooms/end", HandleEndRoom(deps))
		api.Post("/rooms/rename", HandleRenameRoom(deps))

		api.Get("/messages", HandleListMessages(deps))
		api.Post("/messages", HandleSendMessage(deps))
		api.Post("/messages/edit", HandleEditMessage(deps))
		api.Post("/messages/delete", HandleDeleteMessage(deps))
		api.Post("/messages/react", HandleReactMessage(deps))

		api.Post("/groq", HandleGroqRelay(deps))
		api.Post("/chat/ask", HandleAskBot(deps))
	})

	return r
}
