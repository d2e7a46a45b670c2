package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Mathdino/mb-cardapionline/internal/catalog"
	"github.com/Mathdino/mb-cardapionline/internal/core"
	"github.com/Mathdino/mb-cardapionline/internal/coupon"
	"github.com/Mathdino/mb-cardapionline/internal/order"
)

// --------------------------------------------------
// mocks
// --------------------------------------------------

type mockCatalog struct {
	products map[string]*catalog.Product
}

func (m *mockCatalog) GetProduct(ctx context.Context, productID string) (*catalog.Product, error) {
	p, ok := m.products[productID]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	return p, nil
}

type mockCoupons struct {
	coupon   *coupon.Coupon
	err      error
	redeemed []string
}

func (m *mockCoupons) Validate(ctx context.Context, code, companyID string) (*coupon.Coupon, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.coupon, nil
}

func (m *mockCoupons) Redeem(ctx context.Context, couponID string) error {
	m.redeemed = append(m.redeemed, couponID)
	return nil
}

type mockCheckout struct {
	err error
}

func (m *mockCheckout) Checkout(ctx context.Context, payload *order.Order) (*order.Order, string, error) {
	if m.err != nil {
		return nil, "", m.err
	}
	payload.ID = "order-1"
	return payload, "https://wa.me/5511999990000?text=pedido", nil
}

// --------------------------------------------------
// harness
// --------------------------------------------------

type harness struct {
	router   *gin.Engine
	store    *Store
	coupons  *mockCoupons
	checkout *mockCheckout
}

func newHarness(products ...*catalog.Product) *harness {
	gin.SetMode(gin.TestMode)

	byID := make(map[string]*catalog.Product)
	for _, p := range products {
		byID[p.ID] = p
	}

	h := &harness{
		store:    NewStore(),
		coupons:  &mockCoupons{},
		checkout: &mockCheckout{},
	}

	handler := NewHandler(h.store, &mockCatalog{products: byID}, h.coupons, h.checkout)

	r := gin.New()
	r.POST("/carts", handler.CreateCart)
	r.GET("/carts/:id", handler.GetCart)
	r.POST("/carts/:id/items", handler.AddItem)
	r.PATCH("/carts/:id/items/:itemId", handler.UpdateQuantity)
	r.DELETE("/carts/:id/items/:itemId", handler.RemoveItem)
	r.POST("/carts/:id/coupon", handler.ApplyCoupon)
	r.DELETE("/carts/:id/coupon", handler.RemoveCoupon)
	r.POST("/carts/:id/checkout", handler.Checkout)
	h.router = r
	return h
}

func (h *harness) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func (h *harness) newCart(t *testing.T) string {
	t.Helper()
	w := h.do(t, http.MethodPost, "/carts", gin.H{"company_id": "company-1"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create cart: status %d", w.Code)
	}
	var resp struct {
		CartID string `json:"cart_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.CartID
}

// --------------------------------------------------
// tests
// --------------------------------------------------

func TestHandler_AddItemAndGetCart(t *testing.T) {
	h := newHarness(simpleProduct())
	cartID := h.newCart(t)

	w := h.do(t, http.MethodPost, "/carts/"+cartID+"/items", gin.H{
		"product_id": "p-xsalada",
		"quantity":   2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = h.do(t, http.MethodGet, "/carts/"+cartID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Totals Totals `json:"totals"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Totals.Subtotal != 36.0 || resp.Totals.ItemCount != 2 {
		t.Errorf("unexpected totals %+v", resp.Totals)
	}
}

func TestHandler_AddItemUnknownProductIs404(t *testing.T) {
	h := newHarness()
	cartID := h.newCart(t)

	w := h.do(t, http.MethodPost, "/carts/"+cartID+"/items", gin.H{
		"product_id": "p-nope",
		"quantity":   1,
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestHandler_IncompleteFlavorSelectionIs422(t *testing.T) {
	h := newHarness(flavorProduct())
	cartID := h.newCart(t)

	w := h.do(t, http.MethodPost, "/carts/"+cartID+"/items", gin.H{
		"product_id": "p-pizza",
		"quantity":   1,
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHandler_UnknownFlavorIdIs500(t *testing.T) {
	h := newHarness(flavorProduct())
	cartID := h.newCart(t)

	// An id outside the declared options is a catalog configuration bug
	w := h.do(t, http.MethodPost, "/carts/"+cartID+"/items", gin.H{
		"product_id": "p-pizza",
		"quantity":   1,
		"flavor_ids": []string{"f-fantasma"},
	})
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHandler_ApplyCouponRejectionIs422(t *testing.T) {
	h := newHarness(simpleProduct())
	h.coupons.err = coupon.ErrExpiredCoupon
	cartID := h.newCart(t)

	w := h.do(t, http.MethodPost, "/carts/"+cartID+"/coupon", gin.H{"code": "VELHO"})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
}

func TestHandler_ApplyCouponLookupFailureIs502(t *testing.T) {
	h := newHarness(simpleProduct())
	h.coupons.err = errors.New("connection reset")
	cartID := h.newCart(t)

	w := h.do(t, http.MethodPost, "/carts/"+cartID+"/coupon", gin.H{"code": "DEZOFF"})
	if w.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHandler_ComboLineQuantityPatchIs422(t *testing.T) {
	h := newHarness(comboProduct())
	cartID := h.newCart(t)

	w := h.do(t, http.MethodPost, "/carts/"+cartID+"/items", gin.H{
		"product_id": "p-combo",
		"quantity":   1,
		"combo_selections": []gin.H{
			{"group_id": "g-itens", "item_id": "o-lanche", "quantity": 1},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add combo: status %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Item struct {
			ID string `json:"id"`
		} `json:"item"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	w = h.do(t, http.MethodPatch, "/carts/"+cartID+"/items/"+resp.Item.ID, gin.H{
		"quantity": 3,
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}

	cart, err := h.store.Get(cartID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cart.Items()[0].Quantity; got != 1 {
		t.Errorf("combo line quantity = %d, want 1", got)
	}
}

func TestHandler_CheckoutSuccessRedeemsAndClears(t *testing.T) {
	h := newHarness(simpleProduct())
	h.coupons.coupon = flatCoupon(5.0)
	cartID := h.newCart(t)

	h.do(t, http.MethodPost, "/carts/"+cartID+"/items", gin.H{
		"product_id": "p-xsalada",
		"quantity":   2,
	})
	h.do(t, http.MethodPost, "/carts/"+cartID+"/coupon", gin.H{"code": "DEZOFF"})

	w := h.do(t, http.MethodPost, "/carts/"+cartID+"/checkout", gin.H{
		"name":           "Maria",
		"phone":          "11 98888-7777",
		"delivery_type":  "pickup",
		"payment_method": "pix",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	if len(h.coupons.redeemed) != 1 || h.coupons.redeemed[0] != "c-1" {
		t.Errorf("expected coupon c-1 redeemed, got %v", h.coupons.redeemed)
	}

	cart, err := h.store.Get(cartID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Items()) != 0 || cart.Coupon() != nil {
		t.Error("cart should be cleared after checkout")
	}
}

func TestHandler_CheckoutValidationFailureIs422(t *testing.T) {
	h := newHarness(simpleProduct())
	h.checkout.err = core.Invalid("o restaurante está fechado no momento")
	cartID := h.newCart(t)

	h.do(t, http.MethodPost, "/carts/"+cartID+"/items", gin.H{
		"product_id": "p-xsalada",
		"quantity":   1,
	})

	w := h.do(t, http.MethodPost, "/carts/"+cartID+"/checkout", gin.H{
		"name": "Maria", "phone": "1", "delivery_type": "pickup", "payment_method": "pix",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
}

func TestHandler_CheckoutExternalFailurePreservesCart(t *testing.T) {
	h := newHarness(simpleProduct())
	h.checkout.err = errors.New("connection reset")
	cartID := h.newCart(t)

	h.do(t, http.MethodPost, "/carts/"+cartID+"/items", gin.H{
		"product_id": "p-xsalada",
		"quantity":   1,
	})

	w := h.do(t, http.MethodPost, "/carts/"+cartID+"/checkout", gin.H{
		"name": "Maria", "phone": "1", "delivery_type": "pickup", "payment_method": "pix",
	})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}

	cart, err := h.store.Get(cartID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Items()) != 1 {
		t.Error("cart must survive an external checkout failure")
	}
	if len(h.coupons.redeemed) != 0 {
		t.Error("coupon must not be redeemed on failure")
	}
}

func TestHandler_UnknownCartIs404(t *testing.T) {
	h := newHarness()

	w := h.do(t, http.MethodGet, "/carts/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
