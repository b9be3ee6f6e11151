package ds

import "time"

type User struct {
	ID            uint       `json:"id"`
	Email         string     `json:"email"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Address       string     `json:"address,omitempty"`
	PhoneNumber   string     `json:"phone_number,omitempty"`
	IsStaff       bool       `json:"is_staff"`
	EmailVerified bool       `json:"email_verified"`
	DateJoined    *time.Time `json:"date_joined,omitempty"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
}

// Session is what the storefront keeps per logged-in browser.
type Session struct {
	ID        string        `json:"id"`
	User      User          `json:"user"`
	Backend   BackendTokens `json:"backend"`
	CreatedAt time.Time     `json:"created_at"`
	ClientIP  string        `json:"client_ip,omitempty"`
}

type CartItem struct {
	PlanID   uint `json:"plan_id"`
	Quantity int  `json:"quantity"`
}

type Cart struct {
	UserID    uint       `json:"user_id"`
	Items     []CartItem `json:"items"`
	ItemCount int        `json:"item_count"`
}
