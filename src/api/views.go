package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"timevalue/src/api/controllers"
	"timevalue/src/api/handlers"
	"timevalue/src/clients/wechat"
	"timevalue/src/config"
	"timevalue/src/schemas"
	"timevalue/src/utils"
	"timevalue/src/utils/requests"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lestrrat-go/jwx/jwt"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	redis_utils "timevalue/src/utils/redis"
)

type Server struct {
	Router     *chi.Mux
	Handler    *handlers.Handler
	Controller *controllers.Controller
	cfg        *config.Config
}

func NewServer(db *pgxpool.Pool, redisHandler *redis_utils.RedisHandler, cfg *config.Config, logger *logrus.Logger) *Server {
	wechatClient := wechat.NewService(requests.NewExternalAPIService(), cfg.WeChat)
	controller := controllers.NewController(db, redisHandler, wechatClient, cfg)

	server := &Server{
		Router:     chi.NewRouter(),
		Handler:    handlers.NewHandler(controller),
		Controller: controller,
		cfg:        cfg,
	}
	server.InitRoutes(logger)
	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes(logger *logrus.Logger) {
	s.Router.Use(utils.RequestLogger(logger))
	s.Router.Use(cors.New(cors.Options{
		AllowedOrigins:   s.allowedOrigins(),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler)

	s.Router.Get("/alive", handlers.Healthcheck)

	// Public surface: credentials and WeChat login flows.
	s.Router.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", s.Handler.Register)
		r.Post("/login", s.Handler.Login)
	})
	s.Router.Route("/api/wechat", func(r chi.Router) {
		r.Get("/oauth/url", s.Handler.GetWeChatAuthorizeURL)
		r.Post("/oauth/callback", s.Handler.WeChatCallback)
		r.Get("/jssdk", s.Handler.GetJSSDKConfig)
		r.Route("/qrcode", func(r chi.Router) {
			r.Post("/", s.Handler.CreateQRSession)
			r.Get("/{sceneId}", s.Handler.GetQRStatus)
			r.Post("/{sceneId}/scan", s.Handler.ScanQRSession)
			r.Post("/{sceneId}/confirm", s.Handler.ConfirmQRSession)
			r.Post("/{sceneId}/cancel", s.Handler.CancelQRSession)
		})
	})

	// Everything else requires a bearer token.
	s.Router.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(s.Controller.Auth.TokenAuth()))
		r.Use(authenticator)

		r.Get("/api/auth/me", s.Handler.GetUserInfo)

		r.Route("/api/assets", func(r chi.Router) {
			r.Get("/expiring", s.Handler.GetExpiringAssets)

			r.Route("/virtual", func(r chi.Router) {
				r.Get("/", s.Handler.GetAllVirtualAssets)
				r.Post("/", s.Handler.CreateVirtualAsset)
				r.Get("/{id}", s.Handler.GetVirtualAsset)
				r.Put("/{id}", s.Handler.UpdateVirtualAsset)
				r.Delete("/{id}", s.Handler.DeleteVirtualAsset)
			})
			r.Route("/fixed", func(r chi.Router) {
				r.Get("/", s.Handler.GetAllFixedAssets)
				r.Post("/", s.Handler.CreateFixedAsset)
				r.Get("/{id}", s.Handler.GetFixedAsset)
				r.Put("/{id}", s.Handler.UpdateFixedAsset)
				r.Delete("/{id}", s.Handler.DeleteFixedAsset)
				r.Get("/{id}/expenses", s.Handler.GetAssetExpenses)
				r.Post("/{id}/expenses", s.Handler.CreateExpense)
				r.Delete("/{id}/expenses/{expenseId}", s.Handler.DeleteExpense)
			})
		})

		r.Route("/api/categories", func(r chi.Router) {
			r.Get("/", s.Handler.GetAllCategories)
			r.Post("/", s.Handler.CreateCategory)
			r.Put("/{id}", s.Handler.UpdateCategory)
			r.Delete("/{id}", s.Handler.DeleteCategory)
		})
		r.Route("/api/projects", func(r chi.Router) {
			r.Get("/", s.Handler.GetAllProjects)
			r.Post("/", s.Handler.CreateProject)
			r.Put("/{id}", s.Handler.UpdateProject)
			r.Delete("/{id}", s.Handler.DeleteProject)
		})

		r.Route("/api/reports", func(r chi.Router) {
			r.Get("/yearly", s.Handler.GetYearlyReport)
			r.Get("/monthly-trend", s.Handler.GetMonthlyTrend)
			r.Get("/export/xlsx", s.Handler.ExportXLSXReport)
			r.Get("/export/pdf", s.Handler.ExportPDFReport)
		})
		r.Get("/api/analytics/dashboard", s.Handler.GetDashboard)

		r.Route("/api/notification-settings", func(r chi.Router) {
			r.Get("/", s.Handler.GetNotificationSetting)
			r.Put("/", s.Handler.UpdateNotificationSetting)
		})
		r.Route("/api/preferences", func(r chi.Router) {
			r.Get("/", s.Handler.GetPreference)
			r.Put("/", s.Handler.UpdatePreference)
		})
		r.Route("/api/notifications", func(r chi.Router) {
			r.Get("/", s.Handler.GetNotifications)
			r.Post("/{id}/read", s.Handler.MarkNotificationRead)
		})
	})
}

func (s *Server) allowedOrigins() []string {
	if s.cfg.Auth.AllowedOrigins == "" {
		return []string{"*"}
	}
	return strings.Split(s.cfg.Auth.AllowedOrigins, ",")
}

// authenticator rejects missing or invalid tokens with the envelope the rest
// of the API speaks, instead of jwtauth's plain-text default.
func authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil || jwt.Validate(token) != nil {
			res, _ := json.Marshal(schemas.Response{
				Code:    http.StatusUnauthorized,
				Message: "invalid or missing token",
			})
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write(res)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func NewHTTPServer(server *Server, port string) *http.Server {
	if port == "" {
		port = "8000"
	}
	return &http.Server{
		Addr:         ":" + port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		Handler:      server,
	}
}
