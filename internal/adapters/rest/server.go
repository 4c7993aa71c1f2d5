package rest

import (
	"context"
	"net/http"

	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

// ServerConfig - настройки HTTP-сервера.
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

func NewServer(
	cfg ServerConfig,
	propertyHandler *PropertyHandler,
	blogHandler *BlogHandler,
	careerHandler *CareerHandler,
	leadHandler *LeadHandler,
	authHandler *AuthHandler,
	uploadHandler *UploadHandler,
	authMiddleware *AuthMiddleware,
	baseLogger port.LoggerPort,
) *Server {

	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		// AllowedOrigins - список доменов, с которых разрешены запросы
		AllowedOrigins: cfg.AllowedOrigins,

		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},

		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Trace-ID"},

		// AllowCredentials - разрешает отправку cookies и Authorization хедера
		AllowCredentials: true,

		// MaxAge - сколько секунд браузер может кэшировать preflight-ответ
		MaxAge: 300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		// --- Публичные маршруты ---
		r.Group(func(r chi.Router) {
			r.Post("/auth/register", authHandler.Register)
			r.Post("/auth/login", authHandler.Login)

			r.Get("/properties", propertyHandler.FindProperties)
			r.Get("/properties/{propertyID}", propertyHandler.GetPropertyDetails)
			r.Get("/properties/{propertyID}/similar", propertyHandler.FindSimilar)

			r.Get("/blog", blogHandler.ListPosts)
			r.Get("/blog/{slug}", blogHandler.GetPostBySlug)

			r.Get("/careers", careerHandler.ListPostings)
			r.Post("/careers/{postingID}/apply", careerHandler.SubmitApplication)

			r.Post("/viewing-requests", leadHandler.SubmitViewingRequest)
			r.Post("/contact-requests", leadHandler.SubmitContactRequest)
			r.Get("/viewing-slots", leadHandler.GetViewingSlots)
		})

		// --- Приватные маршруты (для всех авторизованных) ---
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/auth/me", authHandler.Me)
			r.Get("/viewing-requests/prefill", leadHandler.GetPrefill)
		})

		// --- Админские маршруты ---
		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(authMiddleware.RequireRole(domain.RoleAdmin))

			r.Get("/properties", propertyHandler.AdminFindProperties)
			r.Post("/properties", propertyHandler.CreateProperty)
			r.Put("/properties/{propertyID}", propertyHandler.UpdateProperty)
			r.Patch("/properties/{propertyID}/status", propertyHandler.SetPropertyStatus)

			r.Get("/blog", blogHandler.AdminListPosts)
			r.Post("/blog", blogHandler.CreatePost)
			r.Put("/blog/{postID}", blogHandler.UpdatePost)
			r.Delete("/blog/{postID}", blogHandler.DeletePost)

			r.Get("/careers", careerHandler.AdminListPostings)
			r.Post("/careers", careerHandler.CreatePosting)
			r.Put("/careers/{postingID}", careerHandler.UpdatePosting)
			r.Get("/careers/{postingID}/applications", careerHandler.ListApplications)

			r.Get("/leads/viewing-requests", leadHandler.AdminListViewingRequests)
			r.Get("/leads/contact-requests", leadHandler.AdminListContactRequests)

			r.Post("/uploads", uploadHandler.UploadImage)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
