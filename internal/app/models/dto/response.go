package dto

import "net/http"

// MessageSuccess is the envelope message of every successful call.
const MessageSuccess = "success"

// APIResponse is the envelope shared by every JSON endpoint except the health check.
// Data is omitted on errors.
type APIResponse struct {
	Code    int         `json:"code" example:"200"`
	Message string      `json:"message" example:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccessResponse wraps data in a 200 envelope.
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{Code: http.StatusOK, Message: MessageSuccess, Data: data}
}

// NewErrorResponse builds an envelope without data.
func NewErrorResponse(code int, message string) APIResponse {
	return APIResponse{Code: code, Message: message}
}

// HealthResponse is the bare liveness payload.
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message" example:"Contractor Management System API is running"`
}
