package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"themesjet/internal/admin"
	"themesjet/internal/auth"
	"themesjet/internal/catalog"
	"themesjet/internal/checkout"
	"themesjet/internal/insights"
	"themesjet/internal/review"
	"themesjet/internal/servicerequest"
	"themesjet/internal/user"
)

type Controllers struct {
	Checkout *checkout.Module
	Catalog  *catalog.Controller
	User     *user.Controller
	Review   *review.Controller
	Insights *insights.Controller
	Requests *servicerequest.Controller
	Admin    *admin.Controller
}

func NewRouter(ctrl Controllers, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(auth.Middleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Storefront surface.
	r.Get("/products", ctrl.Catalog.HandleSearch)
	r.Get("/products/{productId}", ctrl.Catalog.HandleGet)
	r.Get("/products/{productId}/reviews", ctrl.Review.HandleListApproved)
	r.Post("/products/{productId}/reviews", ctrl.Review.HandleCreate)

	r.Get("/insights", ctrl.Insights.HandleListPublished)
	r.Get("/insights/{slug}", ctrl.Insights.HandleGetBySlug)

	r.Post("/users", ctrl.User.HandleRegister)
	r.Post("/service-requests", ctrl.Requests.HandleSubmit)

	// Checkout and payment confirmation.
	r.Post("/checkout", ctrl.Checkout.Checkout.Checkout)
	r.Get("/checkout/success/{orderId}", ctrl.Checkout.Checkout.Success)
	r.Post("/payments/webhook", ctrl.Checkout.Webhook.HandleWebhook)

	// Admin surface. Handlers enforce capabilities themselves so an
	// unauthorized caller gets the same envelope everywhere.
	r.Route("/admin", func(r chi.Router) {
		r.Get("/stats", ctrl.Admin.HandleRevenueStats)
		r.Get("/notifications", ctrl.Admin.HandleNotifications)

		r.Get("/orders", ctrl.Checkout.Checkout.ListOrders)
		r.Get("/orders/{orderId}", ctrl.Checkout.Checkout.GetOrder)

		r.Post("/products", ctrl.Catalog.HandleCreate)
		r.Put("/products/{productId}", ctrl.Catalog.HandleUpdate)
		r.Delete("/products/{productId}", ctrl.Catalog.HandleDelete)

		r.Get("/reviews", ctrl.Review.HandleListAll)
		r.Post("/reviews/{reviewId}/approve", ctrl.Review.HandleApprove)
		r.Delete("/reviews/{reviewId}", ctrl.Review.HandleDelete)

		r.Get("/posts", ctrl.Insights.HandleListAll)
		r.Post("/posts", ctrl.Insights.HandleCreate)
		r.Put("/posts/{postId}", ctrl.Insights.HandleUpdate)
		r.Delete("/posts/{postId}", ctrl.Insights.HandleDelete)

		r.Get("/requests", ctrl.Requests.HandleList)
		r.Post("/requests/{requestId}/handle", ctrl.Requests.HandleMarkHandled)
	})

	logger.Info("router configured")

	return r
}
