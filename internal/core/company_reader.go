package core

import "context"

// CheckoutInfo is the company state evaluated immediately before an order is
// persisted (check-then-act; the small race window is acceptable here).
type CheckoutInfo struct {
	Name         string
	WhatsApp     string
	MinimumOrder float64
	IsOpen       bool
}

// CompanyReader is the read-only view of a company that checkout depends on.
type CompanyReader interface {
	IsOwner(ctx context.Context, companyID string, userID string) (bool, error)

	GetCheckoutInfo(
		ctx context.Context,
		companyID string,
	) (*CheckoutInfo, error)
}
