package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/auth"
	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/handler"
	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/order"
	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/user"
)

// stubVerifier maps tokens straight to roles so handler tests can exercise
// role gating without real JWTs.
type stubVerifier struct{}

func (stubVerifier) Verify(token string) (*auth.Claims, error) {
	role, err := user.ParseRole(token)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}
	return &auth.Claims{UserID: uuid.Must(uuid.NewV4()), Role: role}, nil
}

func pendingOrder() *order.Order {
	return &order.Order{
		ID:            uuid.Must(uuid.NewV4()),
		OrderNumber:   "ORD-2025-001",
		CustomerName:  "María García",
		Status:        order.StatusPending,
		OrderType:     order.TypeDelivery,
		PaymentMethod: order.PaymentCard,
		PaymentStatus: order.PaymentPaid,
		Priority:      order.PriorityNormal,
		Total:         24.50,
		DeliveryFee:   2.50,
		CreatedAt:     time.Now().Add(-15 * time.Minute),
		Items: []order.LineItem{
			{ID: uuid.Must(uuid.NewV4()), Name: "Paella Valenciana", Price: 18.00, Quantity: 1},
			{ID: uuid.Must(uuid.NewV4()), Name: "Sangría (1L)", Price: 8.00, Quantity: 1},
		},
	}
}

func newOrderRouter(t *testing.T, orders ...*order.Order) *chi.Mux {
	t.Helper()
	store := order.NewStore()
	for _, o := range orders {
		require.NoError(t, store.Add(o))
	}
	svc := order.NewService(store, nil, 0.21)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(handler.Authenticate(stubVerifier{}))
		handler.NewOrderHandler(svc).RegisterRoutes(r)
	})
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestOrderHandler_Authentication(t *testing.T) {
	router := newOrderRouter(t, pendingOrder())

	tests := []struct {
		name           string
		token          string
		expectedStatus int
	}{
		{name: "missing_token", token: "", expectedStatus: http.StatusUnauthorized},
		{name: "invalid_token", token: "nonsense", expectedStatus: http.StatusUnauthorized},
		{name: "valid_token", token: "cashier", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodGet, "/orders", tt.token, "")
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestOrderHandler_ListOrders_Filtering(t *testing.T) {
	router := newOrderRouter(t, pendingOrder())

	w := doJSON(t, router, http.MethodGet, "/orders?search=garc%C3%ADa&status=pending", "admin", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []struct {
		OrderNumber    string `json:"order_number"`
		ElapsedMinutes int    `json:"elapsed_minutes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "ORD-2025-001", got[0].OrderNumber)
	assert.Equal(t, 15, got[0].ElapsedMinutes)

	w = doJSON(t, router, http.MethodGet, "/orders?status=completed", "admin", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Empty(t, got)
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	o := pendingOrder()

	tests := []struct {
		name           string
		orderID        string
		token          string
		body           string
		expectedStatus int
	}{
		{name: "cashier_confirms", orderID: o.ID.String(), token: "cashier", body: `{"status":"preparing"}`, expectedStatus: http.StatusOK},
		{name: "kitchen_cannot_confirm", orderID: o.ID.String(), token: "kitchen", body: `{"status":"preparing"}`, expectedStatus: http.StatusForbidden},
		{name: "skip_ahead_conflicts", orderID: o.ID.String(), token: "admin", body: `{"status":"completed"}`, expectedStatus: http.StatusConflict},
		{name: "unknown_status_value", orderID: o.ID.String(), token: "admin", body: `{"status":"cancelled"}`, expectedStatus: http.StatusBadRequest},
		{name: "malformed_body", orderID: o.ID.String(), token: "admin", body: `{not json}`, expectedStatus: http.StatusBadRequest},
		{name: "invalid_order_id", orderID: "not-a-uuid", token: "admin", body: `{"status":"preparing"}`, expectedStatus: http.StatusBadRequest},
		{name: "unknown_order", orderID: uuid.Must(uuid.NewV4()).String(), token: "admin", body: `{"status":"preparing"}`, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newOrderRouter(t, pendingOrder(), o)

			w := doJSON(t, router, http.MethodPatch, "/orders/"+tt.orderID+"/status", tt.token, tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var got struct {
					Status      string     `json:"status"`
					PreparingAt *time.Time `json:"preparing_at"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, "preparing", got.Status)
				assert.NotNil(t, got.PreparingAt)
			}
		})
	}
}

func TestOrderHandler_UpdateItemQuantity(t *testing.T) {
	o := pendingOrder()
	router := newOrderRouter(t, o)

	path := "/orders/" + o.ID.String() + "/items/" + o.Items[0].ID.String()

	w := doJSON(t, router, http.MethodPatch, path, "cashier", `{"quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Total float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.InDelta(t, 55.74, got.Total, 0.001)

	w = doJSON(t, router, http.MethodPatch, path, "cashier", `{"quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderHandler_RemoveItem(t *testing.T) {
	o := pendingOrder()
	router := newOrderRouter(t, o)

	path := "/orders/" + o.ID.String() + "/items/" + o.Items[1].ID.String()
	w := doJSON(t, router, http.MethodDelete, path, "cashier", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Items []json.RawMessage `json:"items"`
		Total float64           `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got.Items, 1)
	assert.InDelta(t, 24.28, got.Total, 0.001)
}
