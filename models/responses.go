package models

// MessageResponse is the success body of the write endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed API request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginResponse is the success body of /api/login.
type LoginResponse struct {
	Message string      `json:"message"`
	User    StudentView `json:"user"`
}
