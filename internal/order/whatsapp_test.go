package order

import (
	"strings"
	"testing"
)

func messageOrder() *Order {
	return &Order{
		CustomerName:  "Maria",
		CustomerPhone: "11 98888-7777",
		DeliveryType:  DeliveryDelivery,
		Address: &Address{
			Street:       "Rua das Flores",
			Number:       "120",
			Complement:   "ap 32",
			Neighborhood: "Centro",
		},
		Items: []OrderItem{
			{
				ProductName:     "Pizza Grande",
				Quantity:        1,
				SelectedFlavors: []string{"Calabresa", "Frango"},
				Subtotal:        42.0,
			},
			{
				ProductName:        "Combo Duplo",
				Quantity:           1,
				ComboItems:         []string{"2x Lanche", "1x Refrigerante"},
				RemovedIngredients: []string{"cebola"},
				Subtotal:           33.0,
			},
		},
		Subtotal:      75.0,
		CouponCode:    "DEZOFF",
		Discount:      10.0,
		Total:         65.0,
		PaymentMethod: PaymentPix,
		Notes:         "sem canudo",
	}
}

func TestWhatsAppMessage(t *testing.T) {
	msg := WhatsAppMessage(messageOrder(), "Pizzaria do Zé")

	wants := []string{
		"*Novo Pedido* - Pizzaria do Zé",
		"*Cliente:* Maria",
		"*Telefone:* 11 98888-7777",
		"*Endereço:* Rua das Flores, 120, ap 32 - Centro",
		"1x Pizza Grande (Calabresa, Frango) - R$ 42,00",
		"  - 2x Lanche",
		"  - 1x Refrigerante",
		"  - Sem: cebola",
		"*Cupom:* DEZOFF",
		"*Desconto:* -R$ 10,00",
		"*Total:* R$ 65,00",
		"*Pagamento:* Pix",
		"*Obs:* sem canudo",
	}
	for _, want := range wants {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q\n%s", want, msg)
		}
	}
}

func TestWhatsAppMessage_PickupOmitsAddress(t *testing.T) {
	o := messageOrder()
	o.DeliveryType = DeliveryPickup

	msg := WhatsAppMessage(o, "Pizzaria do Zé")
	if !strings.Contains(msg, "*Tipo:* Retirada no Local") {
		t.Error("expected pickup line")
	}
	if strings.Contains(msg, "*Endereço:*") {
		t.Error("pickup orders must not render an address")
	}
}

func TestWhatsAppMessage_NoCouponOmitsDiscountLines(t *testing.T) {
	o := messageOrder()
	o.CouponCode = ""

	msg := WhatsAppMessage(o, "Pizzaria do Zé")
	if strings.Contains(msg, "*Cupom:*") || strings.Contains(msg, "*Desconto:*") {
		t.Error("coupon lines should be omitted without a coupon")
	}
}

func TestWhatsAppURL_KeepsDigitsOnlyAndEscapes(t *testing.T) {
	url := WhatsAppURL(messageOrder(), "Pizzaria do Zé", "+55 (11) 99999-0000")

	if !strings.HasPrefix(url, "https://wa.me/5511999990000?text=") {
		t.Errorf("unexpected url prefix: %q", url)
	}
	if strings.Contains(url, " ") || strings.Contains(url, "\n") {
		t.Error("url must be fully escaped")
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{12.5, "R$ 12,50"},
		{0, "R$ 0,00"},
		{1234.9, "R$ 1234,90"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.value); got != tt.want {
			t.Errorf("FormatCurrency(%.2f) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
