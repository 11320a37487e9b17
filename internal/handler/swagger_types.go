package handler

import (
	"time"

	"heatwatch/internal/domain"
)

// Swagger type definitions for API documentation.

// --- Request Types ---

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"awa.diop@example.sn"`
	Password string `json:"password" binding:"required" example:"motdepasse123"`
}

// RegisterRequest represents the sign-up request body.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required" example:"awa.diop@example.sn"`
	Password    string `json:"password" binding:"required" example:"motdepasse123"`
	LastName    string `json:"last_name" binding:"required" example:"Diop"`
	FirstName   string `json:"first_name" example:"Awa"`
	PhoneNumber string `json:"phone_number" binding:"required" example:"+221770000000"`
	Role        string `json:"role" example:"client" enums:"agent,expert,client"`
}

// ResidentRequest names the user to add to a zone.
type ResidentRequest struct {
	UserID string `json:"user_id" binding:"required" example:"3f8a2c9e-1b7d-4e5f-a6c0-9d8e7f6a5b4c"`
}

// --- Response Types ---

// LoginResponse represents the login response.
type LoginResponse struct {
	Token     string      `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt time.Time   `json:"expires_at" example:"2026-07-01T10:30:00Z"`
	User      domain.User `json:"user"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// NearestResponse holds the nearest region to a point; nearest is null when
// no region is configured.
type NearestResponse struct {
	Latitude  float64     `json:"latitude" example:"14.7"`
	Longitude float64     `json:"longitude" example:"-17.4"`
	Nearest   interface{} `json:"nearest"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
