package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/xavierca1/pix-checkout/internal/infra/http/middleware"
)

type RouterConfig struct {
	AllowedOrigins []string
	Logger         *zap.Logger

	Pix          *PixHandler
	CheckPayment *CheckPaymentHandler
	Webhook      *WebhookHandler
	Health       *HealthHandler
}

func NewRouter(cfg RouterConfig) http.Handler {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Método não permitido", "Método "+r.Method+" não suportado nesta rota")
	})

	r.Route("/api", func(r chi.Router) {
		r.Options("/pix", preflight)
		r.Post("/pix", cfg.Pix.Handle)

		r.Options("/check-payment", preflight)
		r.Get("/check-payment", cfg.CheckPayment.Handle)

		r.Options("/webhook", preflight)
		r.Post("/webhook", cfg.Webhook.Handle)
	})

	if cfg.Health != nil {
		r.Get("/health", cfg.Health.Handle)
	}
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
