package auth

// User is the dashboard account: platform admins manage companies, company
// users manage their own catalog, promotions, coupons and orders.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	Role      string // ADMIN | COMPANY
	CompanyID string // set for COMPANY users
}

const (
	RoleAdmin   = "ADMIN"
	RoleCompany = "COMPANY"
)
