package selection

import (
	"github.com/Mathdino/mb-cardapionline/internal/catalog"
	"github.com/Mathdino/mb-cardapionline/internal/pricing"
)

// ProductResolver looks up sibling catalog products referenced by
// "products"-type combo groups. Resolution happens at configuration time, so
// promotions on referenced products apply at the moment of selection.
type ProductResolver interface {
	ProductByID(id string) (*catalog.Product, bool)
}

// SelectedComboItem is a price-and-name snapshot of one chosen combo entry.
// Later catalog changes must not alter an already-placed order, so nothing
// here references live catalog state.
type SelectedComboItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// ComboBuilder accumulates per-group quantities for a combo product.
type ComboBuilder struct {
	productID string
	groups    []catalog.ComboGroup
	resolver  ProductResolver

	// groupID -> itemID -> quantity; zero quantities are pruned, never stored.
	quantities map[string]map[string]int
}

func NewComboBuilder(product *catalog.Product, resolver ProductResolver) *ComboBuilder {
	builder := &ComboBuilder{
		productID:  product.ID,
		resolver:   resolver,
		quantities: make(map[string]map[string]int),
	}
	if product.ComboConfig != nil {
		builder.groups = product.ComboConfig.Groups
	}
	return builder
}

// Adjust changes an item's quantity by delta, clamped at zero. Increments
// that would push the group past its max are refused silently; decrements
// always go through.
func (cb *ComboBuilder) Adjust(groupID, itemID string, delta int) error {
	group := cb.group(groupID)
	if group == nil {
		return &ConfigurationError{
			ProductID: cb.productID,
			Kind:      "group",
			ID:        groupID,
		}
	}

	if err := cb.checkItem(group, itemID); err != nil {
		return err
	}

	current := cb.quantities[groupID][itemID]
	next := current + delta
	if next < 0 {
		next = 0
	}

	if next > current && cb.GroupTotal(groupID)+(next-current) > group.Max {
		return nil
	}

	if next == 0 {
		delete(cb.quantities[groupID], itemID)
		return nil
	}
	if cb.quantities[groupID] == nil {
		cb.quantities[groupID] = make(map[string]int)
	}
	cb.quantities[groupID][itemID] = next
	return nil
}

// GroupTotal sums the selected quantities in one group.
func (cb *ComboBuilder) GroupTotal(groupID string) int {
	var total int
	for _, qty := range cb.quantities[groupID] {
		total += qty
	}
	return total
}

// Valid reports whether every group independently satisfies its cardinality.
// There is no cross-group trade-off.
func (cb *ComboBuilder) Valid() bool {
	for _, group := range cb.groups {
		total := cb.GroupTotal(group.ID)
		if total < group.Min || total > group.Max {
			return false
		}
	}
	return true
}

// UnitPriceContribution prices the current selection: referenced products at
// their effective price (promotions included), custom options at their
// modifier.
func (cb *ComboBuilder) UnitPriceContribution() (float64, error) {
	var sum float64
	err := cb.eachSelected(func(item SelectedComboItem) {
		sum += item.UnitPrice * float64(item.Quantity)
	})
	return sum, err
}

// Flatten produces the snapshot list persisted with the cart line, one entry
// per selected (group, item) pair. Entries with quantity <= 0 never appear.
func (cb *ComboBuilder) Flatten() ([]SelectedComboItem, error) {
	var items []SelectedComboItem
	err := cb.eachSelected(func(item SelectedComboItem) {
		items = append(items, item)
	})
	return items, err
}

// eachSelected walks groups and items in declaration order so output is
// deterministic regardless of map iteration.
func (cb *ComboBuilder) eachSelected(fn func(SelectedComboItem)) error {
	for _, group := range cb.groups {
		selected := cb.quantities[group.ID]
		if len(selected) == 0 {
			continue
		}

		switch group.Type {
		case catalog.GroupProducts:
			for _, productID := range group.ProductIDs {
				qty := selected[productID]
				if qty <= 0 {
					continue
				}
				product, ok := cb.resolver.ProductByID(productID)
				if !ok {
					return &ConfigurationError{
						ProductID: cb.productID,
						Kind:      "combo product",
						ID:        productID,
					}
				}
				fn(SelectedComboItem{
					ID:        productID,
					Name:      product.Name,
					UnitPrice: pricing.EffectiveUnitPrice(product),
					Quantity:  qty,
				})
			}

		case catalog.GroupCustom:
			for _, option := range group.Options {
				qty := selected[option.ID]
				if qty <= 0 {
					continue
				}
				fn(SelectedComboItem{
					ID:        option.ID,
					Name:      option.Name,
					UnitPrice: option.PriceModifier,
					Quantity:  qty,
				})
			}
		}
	}
	return nil
}

func (cb *ComboBuilder) group(groupID string) *catalog.ComboGroup {
	for i := range cb.groups {
		if cb.groups[i].ID == groupID {
			return &cb.groups[i]
		}
	}
	return nil
}

// checkItem verifies the item belongs to the group's declared pool and, for
// product references, that the catalog can resolve it.
func (cb *ComboBuilder) checkItem(group *catalog.ComboGroup, itemID string) error {
	switch group.Type {
	case catalog.GroupProducts:
		for _, id := range group.ProductIDs {
			if id == itemID {
				if _, ok := cb.resolver.ProductByID(itemID); !ok {
					return &ConfigurationError{
						ProductID: cb.productID,
						Kind:      "combo product",
						ID:        itemID,
					}
				}
				return nil
			}
		}
	case catalog.GroupCustom:
		if _, ok := group.Option(itemID); ok {
			return nil
		}
	}
	return &ConfigurationError{
		ProductID: cb.productID,
		Kind:      "combo item",
		ID:        itemID,
	}
}
