package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"themesjet/internal/auth"
	"themesjet/internal/checkout/dto"
	"themesjet/internal/checkout/usecase"
	"themesjet/internal/domain"
	apperrors "themesjet/internal/errors"
)

type CheckoutUseCase interface {
	Checkout(ctx context.Context, identity auth.Identity, items []dto.CartItem) (*usecase.CheckoutResult, error)
}

type SuccessUseCase interface {
	ViewSuccess(ctx context.Context, identity auth.Identity, orderID uint) (*domain.Order, error)
}

type AdminOrdersUseCase interface {
	ListOrders(ctx context.Context, identity auth.Identity) ([]domain.Order, error)
	GetOrder(ctx context.Context, identity auth.Identity, id uint) (*domain.Order, error)
}

type CheckoutController struct {
	checkoutUC CheckoutUseCase
	successUC  SuccessUseCase
	adminUC    AdminOrdersUseCase
	logger     *zap.Logger
}

func NewCheckoutController(
	checkoutUC CheckoutUseCase,
	successUC SuccessUseCase,
	adminUC AdminOrdersUseCase,
	logger *zap.Logger,
) *CheckoutController {
	return &CheckoutController{
		checkoutUC: checkoutUC,
		successUC:  successUC,
		adminUC:    adminUC,
		logger:     logger,
	}
}

func (c *CheckoutController) Checkout(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		writeValidationError(w, logger, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if validationErr := validateCheckoutRequest(req); validationErr != nil {
		ve, _ := apperrors.IsValidationError(validationErr)
		writeValidationError(w, logger, ve.Message, ve.Details...)
		return
	}

	identity := auth.FromContext(r.Context())

	result, err := c.checkoutUC.Checkout(r.Context(), identity, req.Items)
	if err != nil {
		writeError(w, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusCreated, dto.CheckoutResponse{
		TraceID:     traceID,
		OrderID:     result.OrderID,
		RedirectURL: result.RedirectURL,
		Timestamp:   time.Now().UTC(),
	})
}

func (c *CheckoutController) Success(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseOrderID(r)
	if err != nil {
		writeValidationError(w, c.logger, "invalid orderId", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId must be a positive integer",
		})
		return
	}

	identity := auth.FromContext(r.Context())

	order, err := c.successUC.ViewSuccess(r.Context(), identity, orderID)
	if err != nil {
		writeError(w, c.logger, err)
		return
	}

	writeJSON(w, c.logger, http.StatusOK, toConfirmation(order))
}

func (c *CheckoutController) ListOrders(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())

	orders, err := c.adminUC.ListOrders(r.Context(), identity)
	if err != nil {
		writeError(w, c.logger, err)
		return
	}

	summaries := make([]dto.OrderSummaryDTO, 0, len(orders))
	for _, order := range orders {
		summaries = append(summaries, toSummary(order))
	}

	writeJSON(w, c.logger, http.StatusOK, summaries)
}

func (c *CheckoutController) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseOrderID(r)
	if err != nil {
		writeValidationError(w, c.logger, "invalid orderId", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId must be a positive integer",
		})
		return
	}

	identity := auth.FromContext(r.Context())

	order, err := c.adminUC.GetOrder(r.Context(), identity, orderID)
	if err != nil {
		writeError(w, c.logger, err)
		return
	}

	detail := dto.OrderDetailDTO{
		OrderSummaryDTO: toSummary(*order),
		Items:           toItemDTOs(order.Items),
	}

	writeJSON(w, c.logger, http.StatusOK, detail)
}

func validateCheckoutRequest(req dto.CheckoutRequest) error {
	var details []apperrors.ValidationDetail

	if len(req.Items) > 100 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items exceeds maximum of 100",
		})
	}

	for idx, item := range req.Items {
		if item.ProductID == 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].id",
				Message: "each item must reference a product",
			})
		}

		if item.Name == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].name",
				Message: "each item must carry its display name",
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func parseOrderID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "orderId")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid orderId %q", raw)
	}
	return uint(id), nil
}

func toConfirmation(order *domain.Order) dto.ConfirmationResponse {
	return dto.ConfirmationResponse{
		OrderID:   order.ID,
		Status:    order.Status,
		Total:     formatPrice(order.Total),
		CreatedAt: order.CreatedAt,
		Items:     toItemDTOs(order.Items),
	}
}

func toSummary(order domain.Order) dto.OrderSummaryDTO {
	return dto.OrderSummaryDTO{
		ID:        order.ID,
		UserID:    order.UserID,
		Total:     formatPrice(order.Total),
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
	}
}

func toItemDTOs(items []domain.OrderItem) []dto.OrderItemDTO {
	dtos := make([]dto.OrderItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, dto.OrderItemDTO{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     formatPrice(item.Price),
			Image:     item.Image,
		})
	}
	return dtos
}

// Display formatting only; stored totals keep their full precision.
func formatPrice(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
