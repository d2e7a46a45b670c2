package cart

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mathdino/mb-cardapionline/internal/catalog"
	"github.com/Mathdino/mb-cardapionline/internal/core"
	"github.com/Mathdino/mb-cardapionline/internal/coupon"
	"github.com/Mathdino/mb-cardapionline/internal/order"
	"github.com/Mathdino/mb-cardapionline/internal/selection"
)

// CatalogReader is the slice of the catalog service the cart needs.
type CatalogReader interface {
	GetProduct(ctx context.Context, productID string) (*catalog.Product, error)
}

// CouponValidator validates a code against a company scope.
type CouponValidator interface {
	Validate(ctx context.Context, code, companyID string) (*coupon.Coupon, error)
	Redeem(ctx context.Context, couponID string) error
}

// CheckoutService persists the flattened order and renders the WhatsApp
// handoff.
type CheckoutService interface {
	Checkout(ctx context.Context, payload *order.Order) (*order.Order, string, error)
}

type Handler struct {
	store    *Store
	catalog  CatalogReader
	coupons  CouponValidator
	checkout CheckoutService
}

func NewHandler(
	store *Store,
	catalogReader CatalogReader,
	coupons CouponValidator,
	checkout CheckoutService,
) *Handler {
	return &Handler{
		store:    store,
		catalog:  catalogReader,
		coupons:  coupons,
		checkout: checkout,
	}
}

// catalogResolver adapts the catalog reader to the combo engine's resolver,
// carrying the request context through.
type catalogResolver struct {
	ctx     context.Context
	catalog CatalogReader
}

func (r *catalogResolver) ProductByID(id string) (*catalog.Product, bool) {
	product, err := r.catalog.GetProduct(r.ctx, id)
	if err != nil {
		return nil, false
	}
	return product, true
}

// --------------------------------------------------
// POST /carts (PUBLIC)
// --------------------------------------------------
func (h *Handler) CreateCart(c *gin.Context) {
	var req struct {
		CompanyID string `json:"company_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.CompanyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company_id is required"})
		return
	}

	cartID, cart := h.store.Create(req.CompanyID)
	c.JSON(http.StatusCreated, gin.H{
		"cart_id": cartID,
		"totals":  cart.Totals(),
	})
}

// --------------------------------------------------
// GET /carts/:id (PUBLIC)
// --------------------------------------------------
func (h *Handler) GetCart(c *gin.Context) {
	cart, ok := h.cart(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":  cart.Items(),
		"coupon": cart.Coupon(),
		"totals": cart.Totals(),
	})
}

// --------------------------------------------------
// POST /carts/:id/items (PUBLIC)
// --------------------------------------------------

type addItemRequest struct {
	ProductID          string           `json:"product_id"`
	Quantity           int              `json:"quantity"`
	FlavorIDs          []string         `json:"flavor_ids"`
	ComboSelections    []comboSelection `json:"combo_selections"`
	RemovedIngredients []string         `json:"removed_ingredients"`
}

type comboSelection struct {
	GroupID  string `json:"group_id"`
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

func (h *Handler) AddItem(c *gin.Context) {
	cart, ok := h.cart(c)
	if !ok {
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "produto não encontrado"})
		return
	}

	sel, err := h.buildSelection(c.Request.Context(), product, req)
	if err != nil {
		h.selectionError(c, err)
		return
	}

	item, totals, err := cart.AddItem(product, req.Quantity, sel)
	if err != nil {
		h.selectionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item, "totals": totals})
}

// buildSelection replays the customer's choices through the engines so every
// rule (cardinality, group caps, unknown ids) is enforced server-side.
func (h *Handler) buildSelection(
	ctx context.Context,
	product *catalog.Product,
	req addItemRequest,
) (Selection, error) {

	sel := Selection{RemovedIngredients: req.RemovedIngredients}

	if product.ProductType == catalog.TypeFlavors {
		picker := selection.NewFlavorPicker(product)
		for _, id := range req.FlavorIDs {
			if err := picker.Toggle(id); err != nil {
				return sel, err
			}
		}
		sel.Flavors = picker
	}

	if product.ProductType == catalog.TypeCombo {
		builder := selection.NewComboBuilder(
			product,
			&catalogResolver{ctx: ctx, catalog: h.catalog},
		)
		for _, cs := range req.ComboSelections {
			if err := builder.Adjust(cs.GroupID, cs.ItemID, cs.Quantity); err != nil {
				return sel, err
			}
		}
		sel.Combo = builder
	}

	return sel, nil
}

// --------------------------------------------------
// PATCH /carts/:id/items/:itemId (PUBLIC)
// --------------------------------------------------
func (h *Handler) UpdateQuantity(c *gin.Context) {
	cart, ok := h.cart(c)
	if !ok {
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	totals, err := cart.UpdateQuantity(c.Param("itemId"), req.Quantity)
	if err != nil {
		h.selectionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"totals": totals})
}

// --------------------------------------------------
// DELETE /carts/:id/items/:itemId (PUBLIC)
// --------------------------------------------------
func (h *Handler) RemoveItem(c *gin.Context) {
	cart, ok := h.cart(c)
	if !ok {
		return
	}
	totals := cart.RemoveItem(c.Param("itemId"))
	c.JSON(http.StatusOK, gin.H{"totals": totals})
}

// --------------------------------------------------
// DELETE /carts/:id/items (PUBLIC)
// --------------------------------------------------
func (h *Handler) ClearCart(c *gin.Context) {
	cart, ok := h.cart(c)
	if !ok {
		return
	}
	totals := cart.Clear()
	c.JSON(http.StatusOK, gin.H{"totals": totals})
}

// --------------------------------------------------
// POST /carts/:id/coupon (PUBLIC)
// --------------------------------------------------
func (h *Handler) ApplyCoupon(c *gin.Context) {
	cart, ok := h.cart(c)
	if !ok {
		return
	}

	var req struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cp, err := h.coupons.Validate(c.Request.Context(), req.Code, cart.CompanyID())
	if err != nil {
		if isCouponRejection(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"success": false,
				"message": err.Error(),
			})
			return
		}
		log.Printf("❌ coupon validation failed for %q: %v", req.Code, err)
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"message": "não foi possível validar o cupom, tente novamente",
		})
		return
	}

	totals := cart.ApplyCoupon(cp)
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"discount": totals.Discount,
		"totals":   totals,
	})
}

// --------------------------------------------------
// DELETE /carts/:id/coupon (PUBLIC)
// --------------------------------------------------
func (h *Handler) RemoveCoupon(c *gin.Context) {
	cart, ok := h.cart(c)
	if !ok {
		return
	}
	totals := cart.RemoveCoupon()
	c.JSON(http.StatusOK, gin.H{"totals": totals})
}

// --------------------------------------------------
// POST /carts/:id/checkout (PUBLIC)
// --------------------------------------------------
func (h *Handler) Checkout(c *gin.Context) {
	cart, ok := h.cart(c)
	if !ok {
		return
	}

	var customer Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	payload := cart.OrderPayload(customer)

	created, whatsappURL, err := h.checkout.Checkout(c.Request.Context(), payload)
	if err != nil {
		if core.IsValidationFailure(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		// Cart is untouched so the customer can retry.
		c.JSON(http.StatusBadGateway, gin.H{"error": "não foi possível registrar o pedido, tente novamente"})
		return
	}

	if cp := cart.Coupon(); cp != nil {
		if err := h.coupons.Redeem(c.Request.Context(), cp.ID); err != nil {
			log.Printf("coupon redemption failed for %s: %v", cp.Code, err)
		}
	}

	cart.Clear()

	c.JSON(http.StatusCreated, gin.H{
		"order":        created,
		"whatsapp_url": whatsappURL,
	})
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func (h *Handler) cart(c *gin.Context) (*Cart, bool) {
	cart, err := h.store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "carrinho não encontrado"})
		return nil, false
	}
	return cart, true
}

// isCouponRejection reports whether the error is a coupon rule rejection the
// customer can act on, as opposed to a lookup failure.
func isCouponRejection(err error) bool {
	return errors.Is(err, coupon.ErrInvalidCoupon) ||
		errors.Is(err, coupon.ErrExpiredCoupon) ||
		errors.Is(err, coupon.ErrWrongCompany)
}

// selectionError maps engine errors: configuration errors are catalog bugs
// and logged loudly, validation failures go back to the customer.
func (h *Handler) selectionError(c *gin.Context, err error) {
	var confErr *selection.ConfigurationError
	if errors.As(err, &confErr) {
		log.Printf("❌ catalog configuration error: %v", confErr)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "configuração do produto inválida"})
		return
	}
	if core.IsValidationFailure(err) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
