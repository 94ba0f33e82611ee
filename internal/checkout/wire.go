package checkout

import (
	"database/sql"

	"go.uber.org/zap"

	"themesjet/internal/auth"
	"themesjet/internal/checkout/controller"
	"themesjet/internal/checkout/repository"
	"themesjet/internal/checkout/usecase"
	"themesjet/internal/config"
	"themesjet/internal/payment"
)

type Module struct {
	Checkout *controller.CheckoutController
	Webhook  *controller.WebhookController
}

func NewModule(db *sql.DB, cfg *config.Config, authorizer auth.Authorizer, logger *zap.Logger) *Module {
	orderRepo := repository.NewMySQLOrderRepository(db)
	payments := payment.NewClient(cfg.Payment)

	createUC := usecase.NewCreateCheckoutUseCase(orderRepo, payments, cfg.Payment, logger)
	completeUC := usecase.NewCompleteOrderUseCase(orderRepo, logger)
	listUC := usecase.NewListOrdersUseCase(orderRepo, authorizer)

	return &Module{
		Checkout: controller.NewCheckoutController(createUC, completeUC, listUC, logger),
		Webhook:  controller.NewWebhookController(completeUC, cfg.Payment.WebhookSecret, logger),
	}
}
