package models

import "time"

// AdminUser represents an administrator account for the admin panel
type AdminUser struct {
	ID           int       `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Email        string    `json:"email" db:"email"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// LoginRequest is the admin login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token pair
type LoginResponse struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
	User         *AdminUser `json:"user"`
}

// DashboardStats aggregates row counts for the admin dashboard
type DashboardStats struct {
	Projects       int `json:"projects"`
	Services       int `json:"services"`
	FAQs           int `json:"faqs"`
	Reports        int `json:"reports"`
	ProcessItems   int `json:"process_items"`
	Contacts       int `json:"contacts"`
	UnreadContacts int `json:"unread_contacts"`
	MediaAssets    int `json:"media_assets"`
}
