package cart

import (
	"sync"
	"testing"
	"time"

	"github.com/Mathdino/mb-cardapionline/internal/catalog"
	"github.com/Mathdino/mb-cardapionline/internal/core"
	"github.com/Mathdino/mb-cardapionline/internal/coupon"
	"github.com/Mathdino/mb-cardapionline/internal/order"
	"github.com/Mathdino/mb-cardapionline/internal/selection"
)

// --------------------------------------------------
// fixtures
// --------------------------------------------------

func simpleProduct() *catalog.Product {
	return &catalog.Product{
		ID:          "p-xsalada",
		CompanyID:   "company-1",
		Name:        "X-Salada",
		Price:       18.0,
		ProductType: catalog.TypeSimple,
		Ingredients: []string{"alface", "tomate", "queijo"},
		IsAvailable: true,
	}
}

func promoProduct() *catalog.Product {
	return &catalog.Product{
		ID:               "p-promo",
		CompanyID:        "company-1",
		Name:             "X-Bacon",
		Price:            20.0,
		PromotionalPrice: 15.0,
		IsPromotion:      true,
		ProductType:      catalog.TypeSimple,
		IsAvailable:      true,
	}
}

func flavorProduct() *catalog.Product {
	return &catalog.Product{
		ID:          "p-pizza",
		CompanyID:   "company-1",
		Name:        "Pizza Grande",
		Price:       40.0,
		ProductType: catalog.TypeFlavors,
		IsAvailable: true,
		Flavors: &catalog.FlavorConfig{
			Min: 1,
			Max: 2,
			Options: []catalog.ProductFlavor{
				{ID: "f-calabresa", Name: "Calabresa", PriceModifier: 0},
				{ID: "f-frango", Name: "Frango", PriceModifier: 2.0},
			},
		},
	}
}

func comboProduct() *catalog.Product {
	return &catalog.Product{
		ID:          "p-combo",
		CompanyID:   "company-1",
		Name:        "Combo Duplo",
		Price:       30.0,
		ProductType: catalog.TypeCombo,
		IsAvailable: true,
		ComboConfig: &catalog.ComboConfig{
			Groups: []catalog.ComboGroup{{
				ID:    "g-itens",
				Title: "Itens",
				Type:  catalog.GroupCustom,
				Min:   1,
				Max:   2,
				Options: []catalog.ComboItem{
					{ID: "o-lanche", Name: "Lanche", PriceModifier: 14.0},
					{ID: "o-refri", Name: "Refrigerante", PriceModifier: 5.0},
				},
			}},
		},
	}
}

func validCombo(t *testing.T, product *catalog.Product, picks map[string]int) *selection.ComboBuilder {
	t.Helper()
	builder := selection.NewComboBuilder(product, nil)
	for id, qty := range picks {
		if err := builder.Adjust("g-itens", id, qty); err != nil {
			t.Fatalf("combo fixture: %v", err)
		}
	}
	return builder
}

func flatCoupon(value float64) *coupon.Coupon {
	return &coupon.Coupon{
		ID:         "c-1",
		Code:       "DEZOFF",
		Type:       coupon.TypeFlat,
		Value:      value,
		ValidFrom:  time.Now().Add(-time.Hour),
		ValidUntil: time.Now().Add(time.Hour),
		IsActive:   true,
	}
}

// --------------------------------------------------
// adding and merging
// --------------------------------------------------

func TestAddItem_FreezesUnitPrice(t *testing.T) {
	c := New("company-1")
	product := promoProduct()

	item, totals, err := c.AddItem(product, 2, Selection{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.UnitPrice != 15.0 {
		t.Errorf("expected frozen promotional price 15.0, got %.2f", item.UnitPrice)
	}
	if totals.Subtotal != 30.0 {
		t.Errorf("expected subtotal 30.0, got %.2f", totals.Subtotal)
	}
	if totals.PromoSavings != 10.0 {
		t.Errorf("expected promo savings 10.0, got %.2f", totals.PromoSavings)
	}

	// The catalog changing afterwards must not affect the line
	product.Price = 99.0
	product.PromotionalPrice = 99.0
	if got := c.Totals().Subtotal; got != 30.0 {
		t.Errorf("expected subtotal to stay 30.0, got %.2f", got)
	}
}

func TestAddItem_MergesIdenticalConfiguration(t *testing.T) {
	c := New("company-1")
	product := simpleProduct()

	c.AddItem(product, 1, Selection{})
	_, totals, err := c.AddItem(product, 1, Selection{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(c.Items()) != 1 {
		t.Fatalf("expected 1 merged line, got %d", len(c.Items()))
	}
	if c.Items()[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", c.Items()[0].Quantity)
	}
	if totals.Subtotal != 36.0 {
		t.Errorf("expected subtotal 36.0, got %.2f", totals.Subtotal)
	}
}

func TestAddItem_DifferentRemovedIngredientsKeepSeparateLines(t *testing.T) {
	c := New("company-1")
	product := simpleProduct()

	c.AddItem(product, 1, Selection{})
	c.AddItem(product, 1, Selection{RemovedIngredients: []string{"tomate"}})

	if len(c.Items()) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(c.Items()))
	}
}

func TestAddItem_RejectsUndeclaredRemovedIngredient(t *testing.T) {
	c := New("company-1")

	_, _, err := c.AddItem(simpleProduct(), 1, Selection{
		RemovedIngredients: []string{"picles"},
	})
	if !core.IsValidationFailure(err) {
		t.Fatalf("expected validation failure, got %v", err)
	}
}

func TestAddItem_RejectsUnavailableProduct(t *testing.T) {
	c := New("company-1")
	product := simpleProduct()
	product.IsAvailable = false

	_, _, err := c.AddItem(product, 1, Selection{})
	if !core.IsValidationFailure(err) {
		t.Fatalf("expected validation failure, got %v", err)
	}
}

func TestAddItem_FlavorPriceModifiersSumIntoUnitPrice(t *testing.T) {
	c := New("company-1")
	product := flavorProduct()

	picker := selection.NewFlavorPicker(product)
	picker.Toggle("f-calabresa")
	picker.Toggle("f-frango")

	item, _, err := c.AddItem(product, 1, Selection{Flavors: picker})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.UnitPrice != 42.0 {
		t.Errorf("expected 42.0 (40 base + 2 modifier), got %.2f", item.UnitPrice)
	}
}

func TestAddItem_RejectsIncompleteFlavorSelection(t *testing.T) {
	c := New("company-1")
	product := flavorProduct()

	_, _, err := c.AddItem(product, 1, Selection{
		Flavors: selection.NewFlavorPicker(product),
	})
	if !core.IsValidationFailure(err) {
		t.Fatalf("expected validation failure, got %v", err)
	}
}

func TestAddItem_ComboPricedFromSelectionOnly(t *testing.T) {
	c := New("company-1")
	product := comboProduct()
	builder := validCombo(t, product, map[string]int{"o-lanche": 1, "o-refri": 1})

	item, _, err := c.AddItem(product, 1, Selection{Combo: builder})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The combo's own price (30.0) contributes nothing
	if item.UnitPrice != 19.0 {
		t.Errorf("expected 19.0, got %.2f", item.UnitPrice)
	}
}

func TestAddItem_ComboLinesNeverMerge(t *testing.T) {
	c := New("company-1")
	product := comboProduct()

	first := validCombo(t, product, map[string]int{"o-lanche": 1})
	second := validCombo(t, product, map[string]int{"o-lanche": 1})

	c.AddItem(product, 1, Selection{Combo: first})
	c.AddItem(product, 1, Selection{Combo: second})

	if len(c.Items()) != 2 {
		t.Fatalf("expected 2 combo lines, got %d", len(c.Items()))
	}
}

func TestAddItem_ComboQuantityMustBeOne(t *testing.T) {
	c := New("company-1")
	product := comboProduct()
	builder := validCombo(t, product, map[string]int{"o-lanche": 1})

	_, _, err := c.AddItem(product, 2, Selection{Combo: builder})
	if !core.IsValidationFailure(err) {
		t.Fatalf("expected validation failure, got %v", err)
	}
}

// --------------------------------------------------
// quantity updates
// --------------------------------------------------

func TestUpdateQuantity_RescalesFromFrozenPrice(t *testing.T) {
	c := New("company-1")
	product := promoProduct()

	item, _, _ := c.AddItem(product, 1, Selection{})

	// Promotion ends; the line keeps its frozen price
	product.IsPromotion = false

	totals, err := c.UpdateQuantity(item.ID, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals.Subtotal != 45.0 {
		t.Errorf("expected subtotal 45.0 from frozen 15.0, got %.2f", totals.Subtotal)
	}
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	c := New("company-1")
	item, _, _ := c.AddItem(simpleProduct(), 2, Selection{})

	totals, err := c.UpdateQuantity(item.ID, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Items()) != 0 {
		t.Errorf("expected empty cart, got %d lines", len(c.Items()))
	}
	if totals.Subtotal != 0 {
		t.Errorf("expected zero subtotal, got %.2f", totals.Subtotal)
	}
}

func TestUpdateQuantity_ComboLineStaysOneUnit(t *testing.T) {
	c := New("company-1")
	product := comboProduct()
	builder := validCombo(t, product, map[string]int{"o-lanche": 1})

	item, _, err := c.AddItem(product, 1, Selection{Combo: builder})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = c.UpdateQuantity(item.ID, 3)
	if !core.IsValidationFailure(err) {
		t.Fatalf("expected validation failure, got %v", err)
	}
	if got := c.Items()[0].Quantity; got != 1 {
		t.Errorf("combo line quantity = %d, want 1", got)
	}
}

// --------------------------------------------------
// coupons
// --------------------------------------------------

func TestApplyCoupon_FlatDiscount(t *testing.T) {
	c := New("company-1")
	c.AddItem(simpleProduct(), 2, Selection{}) // 36.00

	totals := c.ApplyCoupon(flatCoupon(10.0))
	if totals.Discount != 10.0 {
		t.Errorf("expected discount 10.0, got %.2f", totals.Discount)
	}
	if totals.Total != 26.0 {
		t.Errorf("expected total 26.0, got %.2f", totals.Total)
	}
}

func TestApplyCoupon_PercentageDiscount(t *testing.T) {
	c := New("company-1")
	c.AddItem(simpleProduct(), 2, Selection{}) // 36.00

	cp := flatCoupon(0)
	cp.Type = coupon.TypePercentage
	cp.Value = 50.0

	totals := c.ApplyCoupon(cp)
	if totals.Discount != 18.0 {
		t.Errorf("expected discount 18.0, got %.2f", totals.Discount)
	}
}

func TestApplyCoupon_IsIdempotent(t *testing.T) {
	c := New("company-1")
	c.AddItem(simpleProduct(), 1, Selection{}) // 18.00

	cp := flatCoupon(5.0)
	first := c.ApplyCoupon(cp)
	second := c.ApplyCoupon(cp)

	if first != second {
		t.Errorf("reapplying the same coupon changed totals: %+v vs %+v", first, second)
	}

	removed := c.RemoveCoupon()
	if removed.Discount != 0 {
		t.Errorf("expected zero discount after removal, got %.2f", removed.Discount)
	}

	reapplied := c.ApplyCoupon(cp)
	if reapplied != first {
		t.Errorf("remove/reapply changed totals: %+v vs %+v", reapplied, first)
	}
}

func TestTotal_NeverGoesNegative(t *testing.T) {
	c := New("company-1")
	c.AddItem(simpleProduct(), 1, Selection{}) // 18.00

	totals := c.ApplyCoupon(flatCoupon(100.0))
	if totals.Total != 0 {
		t.Errorf("expected total floored at 0, got %.2f", totals.Total)
	}
	if totals.Discount != 18.0 {
		t.Errorf("expected discount capped at subtotal, got %.2f", totals.Discount)
	}
}

// --------------------------------------------------
// order payload
// --------------------------------------------------

func TestOrderPayload_FlattensHumanReadableSnapshot(t *testing.T) {
	c := New("company-1")

	pizza := flavorProduct()
	picker := selection.NewFlavorPicker(pizza)
	picker.Toggle("f-calabresa")
	c.AddItem(pizza, 1, Selection{Flavors: picker})

	combo := comboProduct()
	builder := validCombo(t, combo, map[string]int{"o-lanche": 2})
	c.AddItem(combo, 1, Selection{Combo: builder})

	c.ApplyCoupon(flatCoupon(5.0))

	payload := c.OrderPayload(Customer{
		Name:          "Maria",
		Phone:         "11 99999-0000",
		DeliveryType:  order.DeliveryPickup,
		PaymentMethod: order.PaymentPix,
	})

	if payload.CompanyID != "company-1" {
		t.Errorf("unexpected company id %q", payload.CompanyID)
	}
	if len(payload.Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(payload.Items))
	}
	if payload.Items[0].SelectedFlavors[0] != "Calabresa" {
		t.Errorf("expected flavor name, got %q", payload.Items[0].SelectedFlavors[0])
	}
	if payload.Items[1].ComboItems[0] != "2x Lanche" {
		t.Errorf("expected \"2x Lanche\", got %q", payload.Items[1].ComboItems[0])
	}
	if payload.CouponCode != "DEZOFF" {
		t.Errorf("expected coupon code, got %q", payload.CouponCode)
	}
	if payload.Status != order.StatusPending {
		t.Errorf("expected pending status, got %q", payload.Status)
	}

	// Building the payload must not consume the cart
	if len(c.Items()) != 2 || c.Coupon() == nil {
		t.Error("payload construction mutated the cart")
	}
}

// --------------------------------------------------
// store
// --------------------------------------------------

func TestStore_CreateGetDelete(t *testing.T) {
	store := NewStore()

	id, created := store.Create("company-1")
	got, err := store.Get(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != created {
		t.Error("expected same cart instance")
	}

	store.Delete(id)
	if _, err := store.Get(id); err != ErrCartNotFound {
		t.Errorf("expected ErrCartNotFound, got %v", err)
	}
}

// --------------------------------------------------
// concurrency
// --------------------------------------------------

// Handlers share the cart across requests; mutations from parallel
// goroutines must serialize on the cart's mutex (run with -race).
func TestCart_ConcurrentMutationsSerialize(t *testing.T) {
	c := New("company-1")
	product := simpleProduct()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, _, err := c.AddItem(product, 1, Selection{}); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			c.Totals()
		}()
	}
	wg.Wait()

	if got := c.ItemCount(); got != workers {
		t.Errorf("item count = %d, want %d", got, workers)
	}
	if len(c.Items()) != 1 {
		t.Errorf("identical configurations must merge into one line, got %d", len(c.Items()))
	}
}
