package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/clients"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/models"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeCartClient struct {
	cart      *models.Cart
	getErr    error
	updateErr error
	removals  []string
	updates   []string
}

func (f *fakeCartClient) GetCart(ctx context.Context, session models.Session) (*models.Cart, error) {
	return f.cart, f.getErr
}

func (f *fakeCartClient) UpdateQuantity(ctx context.Context, session models.Session, cartItemID string, quantity int) error {
	f.updates = append(f.updates, cartItemID)
	return f.updateErr
}

func (f *fakeCartClient) RemoveItem(ctx context.Context, session models.Session, cartItemID string) error {
	f.removals = append(f.removals, cartItemID)
	return nil
}

type fakeOrderClient struct {
	orders  []models.Order
	listErr error
}

func (f *fakeOrderClient) ListUserOrders(ctx context.Context, session models.Session) ([]models.Order, error) {
	return f.orders, f.listErr
}

func (f *fakeOrderClient) GetOrderItems(ctx context.Context, session models.Session, orderID string) ([]models.OrderLine, error) {
	return []models.OrderLine{}, nil
}

type fakePaymentClient struct {
	result *models.VerificationResult
	err    error
}

func (f *fakePaymentClient) VerifyMomo(ctx context.Context, session models.Session, orderID string) (*models.VerificationResult, error) {
	return f.result, f.err
}

func (f *fakePaymentClient) VerifyStripe(ctx context.Context, session models.Session, success, orderID string) (*models.VerificationResult, error) {
	return f.result, f.err
}

type fakeSnapshotCache struct {
	orders map[string][]models.Order
}

func newFakeSnapshotCache() *fakeSnapshotCache {
	return &fakeSnapshotCache{orders: make(map[string][]models.Order)}
}

func (f *fakeSnapshotCache) GetOrders(ctx context.Context, key string) ([]models.Order, error) {
	return f.orders[key], nil
}

func (f *fakeSnapshotCache) SetOrders(ctx context.Context, key string, orders []models.Order) error {
	f.orders[key] = orders
	return nil
}

func (f *fakeSnapshotCache) SetCart(ctx context.Context, key string, cart *models.Cart) error {
	return nil
}

func (f *fakeSnapshotCache) ClearCart(ctx context.Context, key string) error {
	return nil
}

type fakeVerificationStore struct{}

func (fakeVerificationStore) MarkVerified(ctx context.Context, orderID, provider string) (bool, error) {
	return true, nil
}

func (fakeVerificationStore) RecordAttempt(ctx context.Context, orderID, provider, outcome, message string) error {
	return nil
}

type fakeEventPublisher struct{}

func (fakeEventPublisher) PublishPaymentVerified(ctx context.Context, orderID, provider string) error {
	return nil
}

func (fakeEventPublisher) PublishCartCleared(ctx context.Context, orderID string) error {
	return nil
}

type handlerFixture struct {
	cartClient    *fakeCartClient
	orderClient   *fakeOrderClient
	paymentClient *fakePaymentClient
	snapshots     *fakeSnapshotCache
	router        *gin.Engine
}

func newHandlerFixture() *handlerFixture {
	f := &handlerFixture{
		cartClient:    &fakeCartClient{cart: &models.Cart{ID: "cart_1", Items: []models.CartItem{}}},
		orderClient:   &fakeOrderClient{orders: []models.Order{}},
		paymentClient: &fakePaymentClient{result: &models.VerificationResult{Success: true}},
		snapshots:     newFakeSnapshotCache(),
	}

	logger := zap.NewNop()
	cfg := &config.Config{
		Commerce: config.CommerceConfig{
			BaseURL:       "http://backend:3000",
			UploadBaseURL: "http://backend:3000/uploads",
		},
		Features: config.FeatureFlags{EnableCheckoutEvents: true, EnableOrderSnapshots: true},
	}
	rewriter := service.NewImageRewriter(cfg.Commerce)

	cartSvc := service.NewCartService(f.cartClient, f.snapshots, rewriter, logger)
	orderSvc := service.NewOrderService(f.orderClient, f.snapshots, rewriter, cfg.Features, logger)
	paymentSvc := service.NewPaymentService(f.paymentClient, f.snapshots, fakeVerificationStore{}, fakeEventPublisher{}, cfg.Features, logger)
	reviewSvc := service.NewReviewService(nil, logger)

	h := NewHandlers(cartSvc, orderSvc, paymentSvc, reviewSvc, nil, nil, cfg, logger)

	router := gin.New()
	router.GET("/health", h.Health)
	router.GET("/version", h.Version)
	router.GET("/payments/verify", h.VerifyPayment)
	router.GET("/api/v1/cart", h.GetCart)
	router.PUT("/api/v1/cart/items/:id/quantity", h.UpdateCartQuantity)
	router.GET("/api/v1/orders", h.GetOrders)
	f.router = router
	return f
}

func (f *handlerFixture) do(method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set(clients.HeaderToken, token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	f := newHandlerFixture()

	w := f.do(http.MethodGet, "/health", "", "")
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["status"] != "healthy" || resp["service"] != "storefront-service" {
		t.Errorf("Unexpected body: %v", resp)
	}
}

func TestVersionEndpoint(t *testing.T) {
	f := newHandlerFixture()

	w := f.do(http.MethodGet, "/version", "", "")
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
}

func TestVerifyPaymentSuccessRedirectsToOrders(t *testing.T) {
	f := newHandlerFixture()

	w := f.do(http.MethodGet, "/payments/verify?orderId=5&resultCode=0", "tok", "")
	if w.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d", w.Code)
	}
	loc := w.Header().Get("Location")
	if !strings.HasPrefix(loc, "/orders") {
		t.Errorf("Expected redirect to /orders, got %s", loc)
	}
}

func TestVerifyPaymentWithoutTokenRedirectsToLogin(t *testing.T) {
	f := newHandlerFixture()

	w := f.do(http.MethodGet, "/payments/verify?orderId=5&resultCode=0", "", "")
	if w.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); !strings.HasPrefix(loc, "/login") {
		t.Errorf("Expected redirect to /login, got %s", loc)
	}
}

func TestVerifyPaymentInvalidRedirectsToCart(t *testing.T) {
	f := newHandlerFixture()

	w := f.do(http.MethodGet, "/payments/verify?orderId=5", "tok", "")
	if w.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); !strings.HasPrefix(loc, "/cart") {
		t.Errorf("Expected redirect to /cart, got %s", loc)
	}
}

func TestGetCartRequiresToken(t *testing.T) {
	f := newHandlerFixture()

	w := f.do(http.MethodGet, "/api/v1/cart", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
}

func TestGetCartReturnsEmptyItems(t *testing.T) {
	f := newHandlerFixture()

	w := f.do(http.MethodGet, "/api/v1/cart", "tok", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var resp struct {
		Items []models.CartLine `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Bad response body: %v", err)
	}
	if resp.Items == nil {
		t.Error("Expected items to be an empty array, not null")
	}
}

func TestUpdateCartQuantityAccepted(t *testing.T) {
	f := newHandlerFixture()

	w := f.do(http.MethodPut, "/api/v1/cart/items/ci_1/quantity", "tok", `{"quantity":"3"}`)
	if w.Code != http.StatusAccepted {
		t.Errorf("Expected 202, got %d: %s", w.Code, w.Body.String())
	}
	if len(f.cartClient.updates) != 1 {
		t.Errorf("Expected one update, got %d", len(f.cartClient.updates))
	}
}

func TestUpdateCartQuantityZeroRemoves(t *testing.T) {
	f := newHandlerFixture()

	w := f.do(http.MethodPut, "/api/v1/cart/items/ci_1/quantity", "tok", `{"quantity":"0"}`)
	if w.Code != http.StatusAccepted {
		t.Errorf("Expected 202, got %d", w.Code)
	}
	if len(f.cartClient.removals) != 1 || f.cartClient.removals[0] != "ci_1" {
		t.Errorf("Expected removal of ci_1, got %v", f.cartClient.removals)
	}
}

func TestUpdateCartQuantityInvalidInput(t *testing.T) {
	f := newHandlerFixture()

	w := f.do(http.MethodPut, "/api/v1/cart/items/ci_1/quantity", "tok", `{"quantity":"abc"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["field"] != "quantity" {
		t.Errorf("Expected field quantity in response, got %v", resp)
	}
}

func TestGetOrdersFallsBackToSnapshot(t *testing.T) {
	f := newHandlerFixture()
	session := models.Session{Token: "tok"}
	f.snapshots.orders[session.CacheKey()] = []models.Order{{ID: "ord_stale"}}
	f.orderClient.listErr = context.DeadlineExceeded

	w := f.do(http.MethodGet, "/api/v1/orders", "tok", "")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("Expected 502, got %d", w.Code)
	}

	var resp struct {
		Stale  bool           `json:"stale"`
		Orders []models.Order `json:"orders"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Bad response body: %v", err)
	}
	if !resp.Stale {
		t.Error("Expected stale flag")
	}
	if len(resp.Orders) != 1 || resp.Orders[0].ID != "ord_stale" {
		t.Errorf("Expected stale snapshot in response, got %v", resp.Orders)
	}
}
