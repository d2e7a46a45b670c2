package promotion

import "time"

type Promotion struct {
	ID               string    `json:"id"`
	CompanyID        string    `json:"company_id"`
	ProductID        string    `json:"product_id"`
	OriginalPrice    float64   `json:"original_price"`
	PromotionalPrice float64   `json:"promotional_price"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}

// InEffect reports whether the promotion prices the product right now.
func (p *Promotion) InEffect(now time.Time) bool {
	return p.IsActive && !now.Before(p.StartDate) && !now.After(p.EndDate)
}

// Winner picks the promotion that drives a product's denormalized price
// fields: among in-effect promotions, the most recently created one wins.
func Winner(promotions []*Promotion, now time.Time) *Promotion {
	var winner *Promotion
	for _, p := range promotions {
		if !p.InEffect(now) {
			continue
		}
		if winner == nil || p.CreatedAt.After(winner.CreatedAt) {
			winner = p
		}
	}
	return winner
}
