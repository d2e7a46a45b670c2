package catalog

import (
	"encoding/json"
	"testing"
)

func TestFlavorConfig_UnmarshalLegacyFlatList(t *testing.T) {
	raw := []byte(`[
		{"id": "f-1", "name": "Calabresa", "price_modifier": 0},
		{"id": "f-2", "name": "Frango", "price_modifier": 2.0}
	]`)

	var config FlavorConfig
	if err := json.Unmarshal(raw, &config); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.Min != 1 || config.Max != 1 {
		t.Errorf("legacy list should normalize to min=max=1, got min=%d max=%d",
			config.Min, config.Max)
	}
	if len(config.Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(config.Options))
	}
}

func TestFlavorConfig_UnmarshalStructured(t *testing.T) {
	raw := []byte(`{
		"min": 1,
		"max": 2,
		"options": [{"id": "f-1", "name": "Calabresa", "price_modifier": 0}]
	}`)

	var config FlavorConfig
	if err := json.Unmarshal(raw, &config); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.Min != 1 || config.Max != 2 {
		t.Errorf("expected min=1 max=2, got min=%d max=%d", config.Min, config.Max)
	}
}

func TestComboConfig_UnmarshalLegacyOptions(t *testing.T) {
	raw := []byte(`{
		"max_items": 3,
		"options": [
			{"id": "o-1", "name": "Item A", "price_modifier": 10.0}
		]
	}`)

	var config ComboConfig
	if err := json.Unmarshal(raw, &config); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(config.Groups) != 1 {
		t.Fatalf("expected 1 implicit group, got %d", len(config.Groups))
	}

	group := config.Groups[0]
	if group.ID != "combo-items" {
		t.Errorf("unexpected group id %q", group.ID)
	}
	if group.Type != GroupCustom {
		t.Errorf("expected custom group, got %q", group.Type)
	}
	if group.Min != 3 || group.Max != 3 {
		t.Errorf("expected min=max=3, got min=%d max=%d", group.Min, group.Max)
	}
	if len(group.Options) != 1 {
		t.Errorf("expected 1 option, got %d", len(group.Options))
	}
}

func TestComboConfig_UnmarshalGroupedKeepsGroups(t *testing.T) {
	raw := []byte(`{
		"groups": [
			{
				"id": "g-1",
				"title": "Lanches",
				"type": "products",
				"min": 2,
				"max": 2,
				"product_ids": ["p-1", "p-2"]
			}
		]
	}`)

	var config ComboConfig
	if err := json.Unmarshal(raw, &config); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(config.Groups) != 1 || config.Groups[0].ID != "g-1" {
		t.Fatalf("expected declared group to survive, got %+v", config.Groups)
	}
	if config.Groups[0].Type != GroupProducts {
		t.Errorf("expected products group, got %q", config.Groups[0].Type)
	}
}
