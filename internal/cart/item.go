package cart

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Mathdino/mb-cardapionline/internal/catalog"
	"github.com/Mathdino/mb-cardapionline/internal/selection"
)

// Item is one cart line: a frozen copy of the product plus the validated
// selection and the unit price computed at add time. The unit price is never
// recomputed from live catalog state; quantity changes only rescale the
// subtotal.
type Item struct {
	ID                 string                        `json:"id"`
	Product            catalog.Product               `json:"product"`
	Quantity           int                           `json:"quantity"`
	UnitPrice          float64                       `json:"unit_price"`
	SelectedFlavors    []catalog.ProductFlavor       `json:"selected_flavors,omitempty"`
	ComboItems         []selection.SelectedComboItem `json:"combo_items,omitempty"`
	RemovedIngredients []string                      `json:"removed_ingredients,omitempty"`
	Subtotal           float64                       `json:"subtotal"`
}

// configKey identifies a line's full configuration. Two lines merge only
// when their keys are equal: same product, same flavor set, same combo
// multiset, same removed ingredients.
func (i *Item) configKey() string {
	flavorIDs := make([]string, len(i.SelectedFlavors))
	for idx, f := range i.SelectedFlavors {
		flavorIDs[idx] = f.ID
	}
	sort.Strings(flavorIDs)

	comboParts := make([]string, len(i.ComboItems))
	for idx, ci := range i.ComboItems {
		comboParts[idx] = fmt.Sprintf("%s:%d", ci.ID, ci.Quantity)
	}
	sort.Strings(comboParts)

	removed := append([]string(nil), i.RemovedIngredients...)
	sort.Strings(removed)

	return strings.Join([]string{
		i.Product.ID,
		strings.Join(flavorIDs, ","),
		strings.Join(comboParts, ","),
		strings.Join(removed, ","),
	}, "|")
}
