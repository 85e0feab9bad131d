// Package dto defines request and response shapes for the v1 API.
package dto

// IDResponse is the standard response carrying a created entity id.
type IDResponse struct {
	ID string `json:"id"`
}

// SuccessResponse is the standard acknowledgement response.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
