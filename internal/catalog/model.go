package catalog

import (
	"encoding/json"
	"fmt"
)

// ProductType selects which configuration payload a product carries.
type ProductType string

const (
	TypeSimple  ProductType = "simple"
	TypeFlavors ProductType = "flavors"
	TypeCombo   ProductType = "combo"
)

// --------------------------------------------------
// CATEGORY
// --------------------------------------------------

type Category struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Order     int    `json:"order"`
}

// --------------------------------------------------
// PRODUCT
// --------------------------------------------------

type Product struct {
	ID               string      `json:"id"`
	CompanyID        string      `json:"company_id"`
	CategoryID       string      `json:"category_id"`
	Name             string      `json:"name"`
	Description      string      `json:"description"`
	Image            string      `json:"image"`
	Price            float64     `json:"price"`
	PromotionalPrice float64     `json:"promotional_price,omitempty"`
	IsPromotion      bool        `json:"is_promotion"`
	ProductType      ProductType `json:"product_type"`

	// Exactly one of these is set, matching ProductType.
	Flavors     *FlavorConfig `json:"flavors,omitempty"`
	ComboConfig *ComboConfig  `json:"combo_config,omitempty"`

	Ingredients []string `json:"ingredients,omitempty"`
	IsAvailable bool     `json:"is_available"`
}

type ProductFlavor struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	PriceModifier float64 `json:"price_modifier"`
}

// FlavorConfig is the canonical flavor payload. Older products stored a bare
// flavor list; UnmarshalJSON folds that shape into min=max=1 so nothing
// downstream ever branches on it again.
type FlavorConfig struct {
	Min     int             `json:"min"`
	Max     int             `json:"max"`
	Options []ProductFlavor `json:"options"`
}

func (fc *FlavorConfig) UnmarshalJSON(data []byte) error {
	var flat []ProductFlavor
	if err := json.Unmarshal(data, &flat); err == nil {
		fc.Min = 1
		fc.Max = 1
		fc.Options = flat
		return nil
	}

	type alias FlavorConfig
	var structured alias
	if err := json.Unmarshal(data, &structured); err != nil {
		return fmt.Errorf("invalid flavor config: %w", err)
	}
	*fc = FlavorConfig(structured)
	return nil
}

// Option returns the flavor with the given id, if declared.
func (fc *FlavorConfig) Option(id string) (ProductFlavor, bool) {
	for _, opt := range fc.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return ProductFlavor{}, false
}

// --------------------------------------------------
// COMBO
// --------------------------------------------------

type GroupType string

const (
	GroupProducts GroupType = "products"
	GroupCustom   GroupType = "custom"
)

type ComboItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PriceModifier float64 `json:"price_modifier"`
}

type ComboGroup struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Type       GroupType   `json:"type"`
	Min        int         `json:"min"`
	Max        int         `json:"max"`
	ProductIDs []string    `json:"product_ids,omitempty"`
	Options    []ComboItem `json:"options,omitempty"`
}

// Option returns the custom option with the given id, if declared.
func (g *ComboGroup) Option(id string) (ComboItem, bool) {
	for _, opt := range g.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return ComboItem{}, false
}

// ComboConfig always exposes Groups. Products created before groups existed
// carried a flat option list capped by MaxItems; UnmarshalJSON rewrites that
// shape into a single custom group with min=max=MaxItems.
type ComboConfig struct {
	MaxItems int          `json:"max_items,omitempty"`
	Groups   []ComboGroup `json:"groups"`
}

func (cc *ComboConfig) UnmarshalJSON(data []byte) error {
	var raw struct {
		MaxItems int          `json:"max_items"`
		Options  []ComboItem  `json:"options"`
		Groups   []ComboGroup `json:"groups"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid combo config: %w", err)
	}

	cc.MaxItems = raw.MaxItems
	cc.Groups = raw.Groups

	if len(cc.Groups) == 0 && len(raw.Options) > 0 {
		cc.Groups = []ComboGroup{{
			ID:      "combo-items",
			Title:   "Itens do Combo",
			Type:    GroupCustom,
			Min:     raw.MaxItems,
			Max:     raw.MaxItems,
			Options: raw.Options,
		}}
	}

	return nil
}

// Group returns the group with the given id, if declared.
func (cc *ComboConfig) Group(id string) (*ComboGroup, bool) {
	for i := range cc.Groups {
		if cc.Groups[i].ID == id {
			return &cc.Groups[i], true
		}
	}
	return nil, false
}
