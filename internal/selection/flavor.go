package selection

import "github.com/Mathdino/mb-cardapionline/internal/catalog"

// FlavorPicker tracks an in-progress flavor selection against the product's
// canonical flavor config. Insertion order is preserved so the checkout
// message lists flavors in the order the customer picked them.
type FlavorPicker struct {
	productID string
	config    catalog.FlavorConfig
	chosen    []string
}

func NewFlavorPicker(product *catalog.Product) *FlavorPicker {
	picker := &FlavorPicker{productID: product.ID}
	if product.Flavors != nil {
		picker.config = *product.Flavors
	}
	return picker
}

// Toggle selects or deselects a flavor.
//
// With max == 1 a new pick replaces the current one (radio semantics), and
// re-picking the selected flavor deselects it only when min == 0. With
// max > 1 a pick toggles membership; picks beyond max are refused silently.
func (fp *FlavorPicker) Toggle(flavorID string) error {
	if _, ok := fp.config.Option(flavorID); !ok {
		return &ConfigurationError{
			ProductID: fp.productID,
			Kind:      "flavor",
			ID:        flavorID,
		}
	}

	if fp.config.Max == 1 {
		if len(fp.chosen) == 1 && fp.chosen[0] == flavorID {
			if fp.config.Min == 0 {
				fp.chosen = nil
			}
			return nil
		}
		fp.chosen = []string{flavorID}
		return nil
	}

	if idx := fp.indexOf(flavorID); idx >= 0 {
		fp.chosen = append(fp.chosen[:idx], fp.chosen[idx+1:]...)
		return nil
	}

	if len(fp.chosen) >= fp.config.Max {
		return nil
	}
	fp.chosen = append(fp.chosen, flavorID)
	return nil
}

// Valid reports whether the selection satisfies the declared cardinality.
func (fp *FlavorPicker) Valid() bool {
	return len(fp.chosen) >= fp.config.Min && len(fp.chosen) <= fp.config.Max
}

// PriceContribution sums the modifiers of every chosen flavor.
func (fp *FlavorPicker) PriceContribution() float64 {
	var sum float64
	for _, id := range fp.chosen {
		if opt, ok := fp.config.Option(id); ok {
			sum += opt.PriceModifier
		}
	}
	return sum
}

// Chosen returns the selected flavors in pick order.
func (fp *FlavorPicker) Chosen() []catalog.ProductFlavor {
	flavors := make([]catalog.ProductFlavor, 0, len(fp.chosen))
	for _, id := range fp.chosen {
		if opt, ok := fp.config.Option(id); ok {
			flavors = append(flavors, opt)
		}
	}
	return flavors
}

func (fp *FlavorPicker) indexOf(flavorID string) int {
	for i, id := range fp.chosen {
		if id == flavorID {
			return i
		}
	}
	return -1
}
