package company

import (
	"fmt"
	"time"
)

type Address struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// BusinessHours declares one weekday's opening window; 0 = Sunday.
type BusinessHours struct {
	DayOfWeek int    `json:"day_of_week"`
	IsOpen    bool   `json:"is_open"`
	OpenTime  string `json:"open_time"`  // "HH:MM"
	CloseTime string `json:"close_time"` // "HH:MM"
}

type Company struct {
	ID             string          `json:"id"`
	OwnerID        string          `json:"owner_id"`
	Name           string          `json:"name"`
	Slug           string          `json:"slug"`
	Description    string          `json:"description"`
	ProfileImage   string          `json:"profile_image"`
	BannerImage    string          `json:"banner_image"`
	Phone          []string        `json:"phone"`
	WhatsApp       string          `json:"whatsapp"`
	MinimumOrder   float64         `json:"minimum_order"`
	Address        Address         `json:"address"`
	BusinessHours  []BusinessHours `json:"business_hours"`
	PaymentMethods []string        `json:"payment_methods"`
	IsOpen         bool            `json:"is_open"`
	AllowsDelivery bool            `json:"allows_delivery"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// OpenAt combines the manual open flag with the declared business hours:
// the restaurant is taking orders only when the flag is on and, if hours are
// declared for the weekday, the clock falls inside them.
func (c *Company) OpenAt(now time.Time) bool {
	if !c.IsOpen {
		return false
	}
	if len(c.BusinessHours) == 0 {
		return true
	}

	day := int(now.Weekday())
	clock := fmt.Sprintf("%02d:%02d", now.Hour(), now.Minute())

	for _, h := range c.BusinessHours {
		if h.DayOfWeek != day {
			continue
		}
		if !h.IsOpen {
			return false
		}
		return clock >= h.OpenTime && clock <= h.CloseTime
	}
	return false
}
