package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	kafkax "github.com/afterclass/courses-api/internal/kafka"
	"github.com/afterclass/courses-api/internal/orders"
	"github.com/afterclass/courses-api/internal/redisx"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
)

// OrderStore is what the handlers need from the order repository.
type OrderStore interface {
	Create(ctx context.Context, o orders.Order) (string, error)
	AdjustSpaces(ctx context.Context, items []orders.SpaceAdjustment) ([]orders.AdjustmentResult, error)
}

type OrdersHandler struct {
	Store    OrderStore
	Producer *kafkax.Producer // optional; order-created events
	Redis    *redis.Client    // optional; catalog cache invalidation
	Service  string
}

// Courses arrives as loose objects on purpose: entries without a
// numeric id must be dropped during normalization, not rejected at
// decode time.
type CreateOrderReq struct {
	Name    string           `json:"name"`
	Phone   string           `json:"phone"`
	Courses []map[string]any `json:"courses"`
}

type CreateOrderResp struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

type UpdateSpacesReq struct {
	Lessons []orders.SpaceAdjustment `json:"lessons"`
}

type UpdateSpacesResp struct {
	Message string                    `json:"message"`
	Results []orders.AdjustmentResult `json:"results"`
}

func (h *OrdersHandler) Register(r *chi.Mux) {
	r.Post("/collections/orders", h.createOrder)
	r.Put("/collections/products/updateSpace", h.updateSpaces)
}

func (h *OrdersHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	// Courses == nil covers both absent and non-array values; an empty
	// array is an order with no line items and passes through.
	if req.Name == "" || req.Phone == "" || req.Courses == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name, phone and courses are required"})
		return
	}

	order := orders.Order{
		Name:    req.Name,
		Phone:   req.Phone,
		Courses: orders.Normalize(req.Courses),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	orderID, err := h.Store.Create(ctx, order)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create order"})
		return
	}

	if h.Producer != nil {
		ev := orders.Envelope{
			EventID:      uuid.NewString(),
			EventType:    orders.EventOrderCreated,
			EventVersion: 1,
			OccurredAt:   time.Now().UTC(),
			Producer:     h.Service,
			TraceID:      r.Header.Get("X-Request-Id"),
			Payload: kafkax.MustMarshal(orders.OrderCreatedPayload{
				OrderID: orderID,
				Name:    order.Name,
				Phone:   order.Phone,
				Courses: order.Courses,
			}),
		}
		h.Producer.Publish(orders.PartitionKey(orderID), kafkax.MustMarshal(ev),
			kafkago.Header{Key: "x-event-type", Value: []byte(orders.EventOrderCreated)},
			kafkago.Header{Key: "x-event-version", Value: []byte("1")},
		)
	}

	writeJSON(w, http.StatusCreated, CreateOrderResp{
		Message: "order created successfully",
		OrderID: orderID,
	})
}

func (h *OrdersHandler) updateSpaces(w http.ResponseWriter, r *http.Request) {
	var req UpdateSpacesReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if req.Lessons == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lessons must be a list"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	results, err := h.Store.AdjustSpaces(ctx, req.Lessons)
	if err != nil {
		if errors.Is(err, orders.ErrInvalidRequest) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update spaces"})
		return
	}

	// Spaces changed, the cached listing is stale.
	if h.Redis != nil {
		_ = h.Redis.Del(ctx, redisx.KeyCatalog).Err()
	}

	writeJSON(w, http.StatusOK, UpdateSpacesResp{
		Message: "spaces updated successfully",
		Results: results,
	})
}
