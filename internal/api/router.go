package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Cheertaboi/coupon-feed-service/internal/api/handlers"
	"github.com/Cheertaboi/coupon-feed-service/internal/api/middleware"
	"github.com/Cheertaboi/coupon-feed-service/internal/observability"
	"github.com/Cheertaboi/coupon-feed-service/internal/service"
)

// Options carries everything the router wires together.
type Options struct {
	Feed    *service.FeedService
	Tables  *service.TableService
	Pages   handlers.PageRenderer
	Metrics *observability.Metrics

	KeyParam       string
	TriggerParam   string
	TriggerValue   string
	PageTitle      string
	MetricsEnabled bool
}

// NewRouter builds the HTTP router for the coupon feed service
func NewRouter(o Options) http.Handler {
	r := chi.NewRouter()

	feedHandler := handlers.NewFeedHandler(o.Feed, o.Metrics, o.KeyParam)
	tableHandler := handlers.NewTableHandler(o.Tables, o.Pages, o.Metrics, o.PageTitle)

	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)
	// the producer pushes to any page URL carrying the trigger parameter
	r.Use(middleware.IngestTrigger(o.TriggerParam, o.TriggerValue, http.HandlerFunc(feedHandler.Ingest)))

	r.Route("/coupons", func(r chi.Router) {
		r.Post("/feed", feedHandler.Ingest)
		r.Get("/table", tableHandler.Fragment)
		r.Get("/page", tableHandler.Page)
	})

	if o.MetricsEnabled {
		r.Method(http.MethodGet, "/metrics", o.Metrics.Handler())
	}

	// health
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
