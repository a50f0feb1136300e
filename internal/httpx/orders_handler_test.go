package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/afterclass/courses-api/internal/orders"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderStore struct {
	createCalls int
	createdID   string
	createErr   error
	gotOrder    orders.Order

	adjustCalls int
	adjustRes   []orders.AdjustmentResult
	adjustErr   error
	gotItems    []orders.SpaceAdjustment
}

func (s *stubOrderStore) Create(ctx context.Context, o orders.Order) (string, error) {
	s.createCalls++
	s.gotOrder = o
	if s.createErr != nil {
		return "", s.createErr
	}
	return s.createdID, nil
}

func (s *stubOrderStore) AdjustSpaces(ctx context.Context, items []orders.SpaceAdjustment) ([]orders.AdjustmentResult, error) {
	s.adjustCalls++
	s.gotItems = items
	return s.adjustRes, s.adjustErr
}

func newOrdersRouter(store *stubOrderStore) *chi.Mux {
	r := chi.NewRouter()
	h := &OrdersHandler{Store: store, Service: "test"}
	h.Register(r)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateOrder_Success(t *testing.T) {
	store := &stubOrderStore{createdID: "65a1b2c3d4e5f60718293a4b"}
	r := newOrdersRouter(store)

	body := `{"name":"Ana","phone":"0770000000","courses":[{"id":1},{"id":1},{"id":2}]}`
	rec := doJSON(t, r, http.MethodPost, "/collections/orders", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, store.createCalls)
	assert.Equal(t, "Ana", store.gotOrder.Name)
	assert.Equal(t, "0770000000", store.gotOrder.Phone)
	assert.Equal(t, []orders.LineItem{{ID: 1, Count: 2}, {ID: 2, Count: 1}}, store.gotOrder.Courses)

	var resp CreateOrderResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "65a1b2c3d4e5f60718293a4b", resp.OrderID)
	assert.NotEmpty(t, resp.Message)
}

func TestCreateOrder_MissingFieldsNeverTouchTheStore(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no name", `{"phone":"077","courses":[{"id":1}]}`},
		{"no phone", `{"name":"Ana","courses":[{"id":1}]}`},
		{"no courses", `{"name":"Ana","phone":"077"}`},
		{"courses is a scalar", `{"name":"Ana","phone":"077","courses":"yoga"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &stubOrderStore{createdID: "x"}
			r := newOrdersRouter(store)

			rec := doJSON(t, r, http.MethodPost, "/collections/orders", tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, 0, store.createCalls)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}

func TestCreateOrder_StoreFailureReturnsGeneric500(t *testing.T) {
	store := &stubOrderStore{createErr: fmt.Errorf("connection reset by peer at 10.0.0.3:27017")}
	r := newOrdersRouter(store)

	body := `{"name":"Ana","phone":"077","courses":[{"id":1}]}`
	rec := doJSON(t, r, http.MethodPost, "/collections/orders", body)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "failed to create order", resp["error"])
	assert.NotContains(t, rec.Body.String(), "10.0.0.3")
}

func TestUpdateSpaces_ReportsPerItemResults(t *testing.T) {
	store := &stubOrderStore{adjustRes: []orders.AdjustmentResult{
		{Title: "Yoga", Status: orders.AdjustUpdated},
		{Title: "Ghost", Status: orders.AdjustNotFound},
	}}
	r := newOrdersRouter(store)

	body := `{"lessons":[{"title":"Yoga","quantity":3},{"title":"Ghost","quantity":1}]}`
	rec := doJSON(t, r, http.MethodPut, "/collections/products/updateSpace", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []orders.SpaceAdjustment{
		{Title: "Yoga", Quantity: 3},
		{Title: "Ghost", Quantity: 1},
	}, store.gotItems)

	var resp UpdateSpacesResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, store.adjustRes, resp.Results)
}

func TestUpdateSpaces_MissingLessonsIsBadRequest(t *testing.T) {
	store := &stubOrderStore{}
	r := newOrdersRouter(store)

	rec := doJSON(t, r, http.MethodPut, "/collections/products/updateSpace", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, store.adjustCalls)
}

func TestUpdateSpaces_InvalidItemIsBadRequest(t *testing.T) {
	store := &stubOrderStore{adjustErr: fmt.Errorf("%w: lesson 1 must have a title and a quantity", orders.ErrInvalidRequest)}
	r := newOrdersRouter(store)

	body := `{"lessons":[{"title":"Yoga","quantity":3},{"quantity":2}]}`
	rec := doJSON(t, r, http.MethodPut, "/collections/products/updateSpace", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "lesson 1")
}

func TestUpdateSpaces_StoreFailureReturnsGeneric500(t *testing.T) {
	store := &stubOrderStore{adjustErr: errors.New("socket closed")}
	r := newOrdersRouter(store)

	body := `{"lessons":[{"title":"Yoga","quantity":3}]}`
	rec := doJSON(t, r, http.MethodPut, "/collections/products/updateSpace", body)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "failed to update spaces", resp["error"])
}
