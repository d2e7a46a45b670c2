package order

import "time"

type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "cash"
	PaymentCredit      PaymentMethod = "credit"
	PaymentDebit       PaymentMethod = "debit"
	PaymentPix         PaymentMethod = "pix"
	PaymentMealVoucher PaymentMethod = "meal_voucher"
)

// PaymentMethodLabels are the customer-facing names used on the WhatsApp
// handoff message.
var PaymentMethodLabels = map[PaymentMethod]string{
	PaymentCash:        "Dinheiro",
	PaymentCredit:      "Cartão de Crédito",
	PaymentDebit:       "Cartão de Débito",
	PaymentPix:         "Pix",
	PaymentMealVoucher: "Vale Refeição",
}

type DeliveryType string

const (
	DeliveryDelivery DeliveryType = "delivery"
	DeliveryPickup   DeliveryType = "pickup"
)

type Address struct {
	CEP          string `json:"cep,omitempty"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
}

// OrderItem is the human-readable snapshot of one cart line: names instead of
// ids, so the dashboard and the WhatsApp message never re-derive catalog
// state.
type OrderItem struct {
	ProductID          string   `json:"product_id"`
	ProductName        string   `json:"product_name"`
	Quantity           int      `json:"quantity"`
	UnitPrice          float64  `json:"unit_price"`
	SelectedFlavors    []string `json:"selected_flavors,omitempty"`
	ComboItems         []string `json:"combo_items,omitempty"` // "2x Batata Média"
	RemovedIngredients []string `json:"removed_ingredients,omitempty"`
	Subtotal           float64  `json:"subtotal"`
}

type Order struct {
	ID            string        `json:"id"`
	CompanyID     string        `json:"company_id"`
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone"`
	DeliveryType  DeliveryType  `json:"delivery_type"`
	Address       *Address      `json:"address,omitempty"`
	Items         []OrderItem   `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	CouponCode    string        `json:"coupon_code,omitempty"`
	Discount      float64       `json:"discount"`
	Total         float64       `json:"total"`
	Status        Status        `json:"status"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}
