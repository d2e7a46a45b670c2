package selection

import "fmt"

// ConfigurationError reports a selection that references an id the product's
// own configuration never declared. That is a catalog bug, not user input:
// callers must fail loudly instead of pricing the item at zero.
type ConfigurationError struct {
	ProductID string
	Kind      string // "flavor", "group", "combo item", "combo product"
	ID        string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf(
		"product %s: unknown %s id %q",
		e.ProductID, e.Kind, e.ID,
	)
}
