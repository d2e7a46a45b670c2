package cart

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Mathdino/mb-cardapionline/internal/catalog"
	"github.com/Mathdino/mb-cardapionline/internal/core"
	"github.com/Mathdino/mb-cardapionline/internal/coupon"
	"github.com/Mathdino/mb-cardapionline/internal/order"
	"github.com/Mathdino/mb-cardapionline/internal/pricing"
	"github.com/Mathdino/mb-cardapionline/internal/selection"
)

// Selection carries the customer's configuration for one product, already
// built through the flavor/combo engines.
type Selection struct {
	Flavors            *selection.FlavorPicker
	Combo              *selection.ComboBuilder
	RemovedIngredients []string
}

// Totals is returned by every mutation so callers never depend on implicit
// side effects to learn the new cart state.
type Totals struct {
	Subtotal     float64 `json:"subtotal"`
	PromoSavings float64 `json:"promo_savings"`
	Discount     float64 `json:"discount"`
	Total        float64 `json:"total"`
	ItemCount    int     `json:"item_count"`
}

// Cart is the ordered collection of lines for one company session. Sessions
// live server-side and handlers share them, so every mutation and derived
// read serializes on the cart's own mutex.
type Cart struct {
	mu        sync.Mutex
	companyID string
	items     []*Item
	coupon    *coupon.Coupon
}

func New(companyID string) *Cart {
	return &Cart{companyID: companyID}
}

func (c *Cart) CompanyID() string { return c.companyID }

// --------------------------------------------------
// Mutations
// --------------------------------------------------

// AddItem validates the selection against the product's configuration,
// freezes the unit price and appends (or merges into) a cart line.
func (c *Cart) AddItem(
	product *catalog.Product,
	quantity int,
	sel Selection,
) (*Item, Totals, error) {

	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity < 1 {
		return nil, c.totals(), core.Invalid("quantidade deve ser pelo menos 1")
	}
	if !product.IsAvailable {
		return nil, c.totals(), core.Invalid("produto indisponível")
	}
	if err := checkRemovedIngredients(product, sel.RemovedIngredients); err != nil {
		return nil, c.totals(), err
	}

	unitPrice := pricing.BaseContribution(product)
	var flavors []catalog.ProductFlavor
	var comboItems []selection.SelectedComboItem

	switch product.ProductType {
	case catalog.TypeFlavors:
		if sel.Flavors == nil || !sel.Flavors.Valid() {
			return nil, c.totals(), core.Invalid("seleção de sabores incompleta")
		}
		unitPrice += sel.Flavors.PriceContribution()
		flavors = sel.Flavors.Chosen()

	case catalog.TypeCombo:
		if sel.Combo == nil || !sel.Combo.Valid() {
			return nil, c.totals(), core.Invalid("seleção do combo incompleta")
		}
		// A combo line is always one configured unit; ordering another
		// means configuring again.
		if quantity != 1 {
			return nil, c.totals(), core.Invalid("combos são adicionados um por vez")
		}
		contribution, err := sel.Combo.UnitPriceContribution()
		if err != nil {
			return nil, c.totals(), err
		}
		unitPrice += contribution

		comboItems, err = sel.Combo.Flatten()
		if err != nil {
			return nil, c.totals(), err
		}
	}

	item := &Item{
		ID:                 uuid.New().String(),
		Product:            *product,
		Quantity:           quantity,
		UnitPrice:          unitPrice,
		SelectedFlavors:    flavors,
		ComboItems:         comboItems,
		RemovedIngredients: sel.RemovedIngredients,
		Subtotal:           unitPrice * float64(quantity),
	}

	// Combo lines never merge: each add is its own configured unit.
	if product.ProductType != catalog.TypeCombo {
		key := item.configKey()
		for _, existing := range c.items {
			if existing.configKey() == key {
				existing.Quantity += quantity
				existing.Subtotal = existing.UnitPrice * float64(existing.Quantity)
				return existing, c.totals(), nil
			}
		}
	}

	c.items = append(c.items, item)
	return item, c.totals(), nil
}

// UpdateQuantity rescales a line's subtotal from its frozen unit price.
// A quantity of zero or less removes the line. Combo lines are always one
// configured unit, so any other quantity is refused.
func (c *Cart) UpdateQuantity(cartItemID string, quantity int) (Totals, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		return c.removeItem(cartItemID), nil
	}
	for _, item := range c.items {
		if item.ID == cartItemID {
			if item.Product.ProductType == catalog.TypeCombo && quantity != 1 {
				return c.totals(), core.Invalid("combos são adicionados um por vez")
			}
			item.Quantity = quantity
			item.Subtotal = item.UnitPrice * float64(quantity)
			break
		}
	}
	return c.totals(), nil
}

func (c *Cart) RemoveItem(cartItemID string) Totals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeItem(cartItemID)
}

func (c *Cart) removeItem(cartItemID string) Totals {
	for idx, item := range c.items {
		if item.ID == cartItemID {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			break
		}
	}
	return c.totals()
}

func (c *Cart) Clear() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.coupon = nil
	return c.totals()
}

// ApplyCoupon stores the coupon on the cart. Only one coupon is active at a
// time; applying a second code replaces the first. The discount is derived
// on read, so reapplying the same code always yields the same result.
func (c *Cart) ApplyCoupon(cp *coupon.Coupon) Totals {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.coupon = cp
	return c.totals()
}

func (c *Cart) RemoveCoupon() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.coupon = nil
	return c.totals()
}

// --------------------------------------------------
// Derived reads
// --------------------------------------------------

// Items returns a snapshot of the cart lines.
func (c *Cart) Items() []*Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]*Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) Coupon() *coupon.Coupon {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.coupon
}

func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subtotal()
}

func (c *Cart) PromoSavings() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.promoSavings()
}

func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.itemCount()
}

func (c *Cart) Discount() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.discount()
}

func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total()
}

func (c *Cart) Totals() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totals()
}

// Unlocked counterparts, called with c.mu held.

// subtotal sums the frozen line subtotals, which already reflect per-item
// promotional prices.
func (c *Cart) subtotal() float64 {
	var sum float64
	for _, item := range c.items {
		sum += item.Subtotal
	}
	return sum
}

// promoSavings is the display value "you saved X": the list-vs-promotional
// difference across lines whose frozen product carried an active promotion.
func (c *Cart) promoSavings() float64 {
	var savings float64
	for _, item := range c.items {
		savings += pricing.PromoSavingsPerUnit(&item.Product) * float64(item.Quantity)
	}
	return savings
}

func (c *Cart) itemCount() int {
	var count int
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) discount() float64 {
	if c.coupon == nil {
		return 0
	}
	return c.coupon.DiscountFor(c.subtotal())
}

// total never goes negative: the coupon discount is capped at the subtotal.
func (c *Cart) total() float64 {
	total := c.subtotal() - c.discount()
	if total < 0 {
		total = 0
	}
	return total
}

func (c *Cart) totals() Totals {
	return Totals{
		Subtotal:     c.subtotal(),
		PromoSavings: c.promoSavings(),
		Discount:     c.discount(),
		Total:        c.total(),
		ItemCount:    c.itemCount(),
	}
}

// --------------------------------------------------
// Order payload
// --------------------------------------------------

// Customer carries checkout contact data collected by the UI.
type Customer struct {
	Name          string              `json:"name"`
	Phone         string              `json:"phone"`
	DeliveryType  order.DeliveryType  `json:"delivery_type"`
	Address       *order.Address      `json:"address,omitempty"`
	PaymentMethod order.PaymentMethod `json:"payment_method"`
	Notes         string              `json:"notes,omitempty"`
}

// OrderPayload flattens the cart into the persisted order shape: names
// instead of ids, option names as strings. The cart itself is untouched so a
// failed order creation leaves it intact for retry.
func (c *Cart) OrderPayload(customer Customer) *order.Order {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]order.OrderItem, 0, len(c.items))
	for _, item := range c.items {
		oi := order.OrderItem{
			ProductID:          item.Product.ID,
			ProductName:        item.Product.Name,
			Quantity:           item.Quantity,
			UnitPrice:          item.UnitPrice,
			RemovedIngredients: item.RemovedIngredients,
			Subtotal:           item.Subtotal,
		}
		for _, f := range item.SelectedFlavors {
			oi.SelectedFlavors = append(oi.SelectedFlavors, f.Name)
		}
		for _, ci := range item.ComboItems {
			oi.ComboItems = append(
				oi.ComboItems,
				fmt.Sprintf("%dx %s", ci.Quantity, ci.Name),
			)
		}
		items = append(items, oi)
	}

	o := &order.Order{
		CompanyID:     c.companyID,
		CustomerName:  customer.Name,
		CustomerPhone: customer.Phone,
		DeliveryType:  customer.DeliveryType,
		Address:       customer.Address,
		Items:         items,
		Subtotal:      c.subtotal(),
		Discount:      c.discount(),
		Total:         c.total(),
		Status:        order.StatusPending,
		PaymentMethod: customer.PaymentMethod,
		Notes:         customer.Notes,
	}
	if c.coupon != nil {
		o.CouponCode = c.coupon.Code
	}
	return o
}

func checkRemovedIngredients(product *catalog.Product, removed []string) error {
	for _, ingredient := range removed {
		found := false
		for _, declared := range product.Ingredients {
			if declared == ingredient {
				found = true
				break
			}
		}
		if !found {
			return core.Invalid(
				fmt.Sprintf("ingrediente %q não pertence ao produto", ingredient),
			)
		}
	}
	return nil
}
