// Package pricing holds the pure price primitives shared by the selection
// engines and the cart.
package pricing

import "github.com/Mathdino/mb-cardapionline/internal/catalog"

// EffectiveUnitPrice returns the promotional price when the promotion is in
// effect and carries a positive value, otherwise the list price.
func EffectiveUnitPrice(p *catalog.Product) float64 {
	if p.IsPromotion && p.PromotionalPrice > 0 {
		return p.PromotionalPrice
	}
	return p.Price
}

// BaseContribution is the product's own share of a cart line's unit price.
// Combos are priced entirely from their selected group items; their own
// price fields only feed the "a partir de" label.
func BaseContribution(p *catalog.Product) float64 {
	if p.ProductType == catalog.TypeCombo {
		return 0
	}
	return EffectiveUnitPrice(p)
}

// PromoSavingsPerUnit is the per-unit difference between list and promotional
// price while a promotion is in effect. Used for the cart's savings line.
func PromoSavingsPerUnit(p *catalog.Product) float64 {
	if !p.IsPromotion || p.PromotionalPrice <= 0 {
		return 0
	}
	if diff := p.Price - p.PromotionalPrice; diff > 0 {
		return diff
	}
	return 0
}
