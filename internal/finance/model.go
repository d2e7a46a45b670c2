package finance

// TopProduct ranks a product by revenue over the reporting window.
type TopProduct struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Revenue     float64 `json:"revenue"`
}

// Summary aggregates a company's delivered orders for the dashboard.
type Summary struct {
	TotalOrders       int          `json:"total_orders"`
	TotalRevenue      float64      `json:"total_revenue"`
	AverageOrderValue float64      `json:"average_order_value"`
	TopProducts       []TopProduct `json:"top_products"`
}
