package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mvsaqua/aquastore-backend/api/controllers"
	"github.com/mvsaqua/aquastore-backend/api/middleware"
	assistantsvc "github.com/mvsaqua/aquastore-backend/internal/assistant"
	authsvc "github.com/mvsaqua/aquastore-backend/internal/auth"
	"github.com/mvsaqua/aquastore-backend/internal/state"
	"github.com/mvsaqua/aquastore-backend/pkg/config"
	"github.com/mvsaqua/aquastore-backend/pkg/enums"
	"github.com/mvsaqua/aquastore-backend/pkg/logger"
	"github.com/mvsaqua/aquastore-backend/pkg/metrics"
)

// RouterParams bundles everything the HTTP surface depends on.
type RouterParams struct {
	Config    *config.Config
	Logger    *logger.Logger
	State     *state.Holder
	Auth      authsvc.Service
	Assistant assistantsvc.Service
	Metrics   *metrics.HTTPMetrics
	Registry  *prometheus.Registry
}

func NewRouter(p RouterParams) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(p.Logger),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger),
		middleware.Metrics(p.Metrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(p.Config))
		r.Get("/ready", controllers.HealthReady(p.Config, p.State.Ready))
	})

	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/store", controllers.StoreInfo(p.Config.Store))
		r.Get("/products", controllers.ListProducts(p.State, p.Logger))
		r.Get("/products/{productId}", controllers.GetProduct(p.State, p.Logger))
		r.Post("/assistant/advice", controllers.Advice(p.Assistant, p.Logger))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(p.State, p.Logger))
			r.Delete("/", controllers.ClearCart(p.State, p.Logger))
			r.Post("/items", controllers.AddCartItem(p.State, p.Logger))
			r.Patch("/items/{productId}", controllers.UpdateCartItem(p.State, p.Logger))
			r.Delete("/items/{productId}", controllers.RemoveCartItem(p.State, p.Logger))
		})

		r.Post("/checkout", controllers.Checkout(p.State, p.Logger))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", controllers.Login(p.Auth, p.Logger))
			r.Post("/logout", controllers.Logout(p.Auth, p.Logger))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(
			middleware.Auth(p.Config.JWT, p.Logger),
			middleware.RequireRole(enums.RoleAdmin.String(), p.Logger),
		)

		r.Post("/products", controllers.AdminCreateProduct(p.State, p.Logger))
		r.Put("/products/{productId}", controllers.AdminUpdateProduct(p.State, p.Logger))
		r.Delete("/products/{productId}", controllers.AdminDeleteProduct(p.State, p.Logger))

		r.Get("/orders", controllers.AdminListOrders(p.State, p.Logger))
		r.Get("/orders/{orderId}", controllers.AdminGetOrder(p.State, p.Logger))
		r.Patch("/orders/{orderId}/status", controllers.AdminUpdateOrderStatus(p.State, p.Logger))
	})

	return r
}
