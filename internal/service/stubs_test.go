package service

import (
	"context"
	"errors"
	"sync"

	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/models"
)

var errUpstream = errors.New("upstream unavailable")

type stubCartClient struct {
	cart        *models.Cart
	getErr      error
	updateErr   error
	removeErr   error
	getCalls    int
	updateCalls []struct {
		cartItemID string
		quantity   int
	}
	removeCalls []string
}

func (s *stubCartClient) GetCart(ctx context.Context, session models.Session) (*models.Cart, error) {
	s.getCalls++
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.cart, nil
}

func (s *stubCartClient) UpdateQuantity(ctx context.Context, session models.Session, cartItemID string, quantity int) error {
	s.updateCalls = append(s.updateCalls, struct {
		cartItemID string
		quantity   int
	}{cartItemID, quantity})
	return s.updateErr
}

func (s *stubCartClient) RemoveItem(ctx context.Context, session models.Session, cartItemID string) error {
	s.removeCalls = append(s.removeCalls, cartItemID)
	return s.removeErr
}

// stubOrderClient is called concurrently by the aggregator's fan-out, so
// its call recording is mutex-guarded.
type stubOrderClient struct {
	mu        sync.Mutex
	orders    []models.Order
	items     map[string][]models.OrderLine
	listErr   error
	itemsErr  map[string]error
	listCalls int
	itemCalls []string
}

func (s *stubOrderClient) ListUserOrders(ctx context.Context, session models.Session) ([]models.Order, error) {
	s.mu.Lock()
	s.listCalls++
	s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.orders, nil
}

func (s *stubOrderClient) GetOrderItems(ctx context.Context, session models.Session, orderID string) ([]models.OrderLine, error) {
	s.mu.Lock()
	s.itemCalls = append(s.itemCalls, orderID)
	s.mu.Unlock()
	if err, ok := s.itemsErr[orderID]; ok {
		return nil, err
	}
	return s.items[orderID], nil
}

func (s *stubOrderClient) listCallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listCalls
}

func (s *stubOrderClient) itemCallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.itemCalls)
}

type stubPaymentClient struct {
	result      *models.VerificationResult
	err         error
	momoCalls   []string
	stripeCalls []struct {
		success string
		orderID string
	}
}

func (s *stubPaymentClient) VerifyMomo(ctx context.Context, session models.Session, orderID string) (*models.VerificationResult, error) {
	s.momoCalls = append(s.momoCalls, orderID)
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubPaymentClient) VerifyStripe(ctx context.Context, session models.Session, success, orderID string) (*models.VerificationResult, error) {
	s.stripeCalls = append(s.stripeCalls, struct {
		success string
		orderID string
	}{success, orderID})
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubReviewClient struct {
	createErr   error
	createCalls []models.ReviewDraft
	reviews     []models.Review
	total       int
	listCalls   []models.ReviewListQuery
}

func (s *stubReviewClient) CreateReview(ctx context.Context, session models.Session, draft models.ReviewDraft) error {
	s.createCalls = append(s.createCalls, draft)
	return s.createErr
}

func (s *stubReviewClient) ListReviews(ctx context.Context, query models.ReviewListQuery) ([]models.Review, int, error) {
	s.listCalls = append(s.listCalls, query)
	return s.reviews, s.total, nil
}

type stubSnapshotCache struct {
	orders        map[string][]models.Order
	carts         map[string]*models.Cart
	setOrderCalls int
	setCartCalls  int
	clearCalls    int
	setErr        error
	clearErr      error
}

func newStubSnapshotCache() *stubSnapshotCache {
	return &stubSnapshotCache{
		orders: make(map[string][]models.Order),
		carts:  make(map[string]*models.Cart),
	}
}

func (s *stubSnapshotCache) GetOrders(ctx context.Context, key string) ([]models.Order, error) {
	return s.orders[key], nil
}

func (s *stubSnapshotCache) SetOrders(ctx context.Context, key string, orders []models.Order) error {
	s.setOrderCalls++
	if s.setErr != nil {
		return s.setErr
	}
	s.orders[key] = orders
	return nil
}

func (s *stubSnapshotCache) SetCart(ctx context.Context, key string, cart *models.Cart) error {
	s.setCartCalls++
	if s.setErr != nil {
		return s.setErr
	}
	s.carts[key] = cart
	return nil
}

func (s *stubSnapshotCache) ClearCart(ctx context.Context, key string) error {
	s.clearCalls++
	if s.clearErr != nil {
		return s.clearErr
	}
	s.carts[key] = &models.Cart{Items: []models.CartItem{}}
	return nil
}

type stubVerificationStore struct {
	verified     map[string]string
	markErr      error
	attemptCalls []struct {
		orderID string
		outcome string
	}
}

func newStubVerificationStore() *stubVerificationStore {
	return &stubVerificationStore{verified: make(map[string]string)}
}

func (s *stubVerificationStore) MarkVerified(ctx context.Context, orderID, provider string) (bool, error) {
	if s.markErr != nil {
		return false, s.markErr
	}
	if _, ok := s.verified[orderID]; ok {
		return false, nil
	}
	s.verified[orderID] = provider
	return true, nil
}

func (s *stubVerificationStore) RecordAttempt(ctx context.Context, orderID, provider, outcome, message string) error {
	s.attemptCalls = append(s.attemptCalls, struct {
		orderID string
		outcome string
	}{orderID, outcome})
	return nil
}

type stubCatalogClient struct {
	product *models.Product
	err     error
	calls   []string
}

func (s *stubCatalogClient) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	s.calls = append(s.calls, productID)
	if s.err != nil {
		return nil, s.err
	}
	return s.product, nil
}

type stubUserClient struct {
	profile     *models.UserProfile
	getErr      error
	updateErr   error
	updateCalls []*models.UpdateProfileRequest
}

func (s *stubUserClient) GetProfile(ctx context.Context, session models.Session) (*models.UserProfile, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.profile, nil
}

func (s *stubUserClient) UpdateProfile(ctx context.Context, session models.Session, req *models.UpdateProfileRequest) (*models.UserProfile, error) {
	s.updateCalls = append(s.updateCalls, req)
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return s.profile, nil
}

type stubEventPublisher struct {
	verifiedCalls []string
	clearedCalls  []string
}

func (s *stubEventPublisher) PublishPaymentVerified(ctx context.Context, orderID, provider string) error {
	s.verifiedCalls = append(s.verifiedCalls, orderID)
	return nil
}

func (s *stubEventPublisher) PublishCartCleared(ctx context.Context, orderID string) error {
	s.clearedCalls = append(s.clearedCalls, orderID)
	return nil
}
