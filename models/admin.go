package models

// AdminLogin is the admin credentials payload. No route accepts it yet.
type AdminLogin struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
