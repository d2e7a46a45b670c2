package order

import (
	"fmt"
	"net/url"
	"strings"
)

// WhatsAppMessage renders the handoff text the customer sends to the
// restaurant: customer info, itemized lines with flavor/combo/removed
// ingredient annotations, coupon line, total, payment method and notes.
func WhatsAppMessage(o *Order, companyName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*Novo Pedido* - %s\n\n", companyName)
	fmt.Fprintf(&b, "*Cliente:* %s\n", o.CustomerName)
	fmt.Fprintf(&b, "*Telefone:* %s\n", o.CustomerPhone)

	if o.DeliveryType == DeliveryDelivery && o.Address != nil {
		addr := fmt.Sprintf("%s, %s", o.Address.Street, o.Address.Number)
		if o.Address.Complement != "" {
			addr += ", " + o.Address.Complement
		}
		if o.Address.Neighborhood != "" {
			addr += " - " + o.Address.Neighborhood
		}
		fmt.Fprintf(&b, "*Endereço:* %s\n\n", addr)
	} else {
		b.WriteString("*Tipo:* Retirada no Local\n\n")
	}

	b.WriteString("*Itens:*\n")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "%dx %s", item.Quantity, item.ProductName)
		if len(item.SelectedFlavors) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(item.SelectedFlavors, ", "))
		}
		fmt.Fprintf(&b, " - %s\n", FormatCurrency(item.Subtotal))

		for _, ci := range item.ComboItems {
			fmt.Fprintf(&b, "  - %s\n", ci)
		}
		if len(item.RemovedIngredients) > 0 {
			fmt.Fprintf(&b, "  - Sem: %s\n", strings.Join(item.RemovedIngredients, ", "))
		}
	}

	if o.CouponCode != "" {
		fmt.Fprintf(&b, "\n*Cupom:* %s", o.CouponCode)
		fmt.Fprintf(&b, "\n*Desconto:* -%s", FormatCurrency(o.Discount))
	}

	fmt.Fprintf(&b, "\n*Total:* %s\n", FormatCurrency(o.Total))
	fmt.Fprintf(&b, "*Pagamento:* %s\n", paymentLabel(o.PaymentMethod))
	if o.Notes != "" {
		fmt.Fprintf(&b, "*Obs:* %s\n", o.Notes)
	}

	return b.String()
}

// WhatsAppURL builds the wa.me link with the rendered message, keeping only
// digits from the company's contact number.
func WhatsAppURL(o *Order, companyName, companyWhatsApp string) string {
	var digits strings.Builder
	for _, r := range companyWhatsApp {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return fmt.Sprintf(
		"https://wa.me/%s?text=%s",
		digits.String(),
		url.QueryEscape(WhatsAppMessage(o, companyName)),
	)
}

// FormatCurrency renders a value as Brazilian reais, e.g. "R$ 12,50".
func FormatCurrency(value float64) string {
	return strings.Replace(fmt.Sprintf("R$ %.2f", value), ".", ",", 1)
}

func paymentLabel(method PaymentMethod) string {
	if label, ok := PaymentMethodLabels[method]; ok {
		return label
	}
	return string(method)
}
