package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/glowmart/cosmetics-backend/api/controllers"
	"github.com/glowmart/cosmetics-backend/api/middleware"
	"github.com/glowmart/cosmetics-backend/internal/auth"
	"github.com/glowmart/cosmetics-backend/internal/catalog"
	"github.com/glowmart/cosmetics-backend/pkg/config"
	"github.com/glowmart/cosmetics-backend/pkg/db"
	"github.com/glowmart/cosmetics-backend/pkg/logger"
	"github.com/glowmart/cosmetics-backend/pkg/metrics"
	"github.com/glowmart/cosmetics-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	cache redis.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	authService *auth.Service,
	catalogService *catalog.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, cache))
	})

	r.Handle("/metrics", promhttp.Handler())

	// Public storefront reads. No auth, no writes.
	r.Route("/api/v1/cosmetics", func(r chi.Router) {
		r.Get("/brands", controllers.BrandList(catalogService, logg))
		r.Get("/brands/all", controllers.BrandListAll(catalogService, logg))
		r.Get("/brands/{brandId}/products", controllers.BrandProducts(catalogService, logg))
		r.Get("/products", controllers.ProductList(catalogService, logg))
		r.Get("/products/{productId}", controllers.ProductDetail(catalogService, logg))
		r.Get("/hot-products", controllers.HotProductList(catalogService, logg))
	})

	r.Route("/admin/api/v1", func(r chi.Router) {
		r.Post("/auth/login", controllers.AuthLogin(authService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))

			r.Route("/auth", func(r chi.Router) {
				r.Get("/me", controllers.AuthMe(authService, logg))
				r.Post("/operators", controllers.AuthCreateOperator(authService, logg))
				r.Post("/password", controllers.AuthChangePassword(authService, logg))
			})

			r.Route("/brands", func(r chi.Router) {
				r.Get("/", controllers.BrandList(catalogService, logg))
				r.Post("/", controllers.BrandCreate(catalogService, logg))
				r.Post("/reorder", controllers.BrandReorder(catalogService, logg))
				r.Put("/{brandId}", controllers.BrandUpdate(catalogService, logg))
				r.Delete("/{brandId}", controllers.BrandDelete(catalogService, logg))
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", controllers.ProductList(catalogService, logg))
				r.Post("/", controllers.ProductCreate(catalogService, logg))
				r.Get("/{productId}", controllers.ProductDetail(catalogService, logg))
				r.Put("/{productId}", controllers.ProductUpdate(catalogService, logg))
				r.Delete("/{productId}", controllers.ProductDelete(catalogService, logg))
			})

			r.Route("/hot-products", func(r chi.Router) {
				r.Get("/", controllers.HotProductList(catalogService, logg))
				r.Put("/", controllers.HotProductReplace(catalogService, logg))
			})
		})
	})

	return r
}
