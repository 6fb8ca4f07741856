package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement
// Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// MessagePayload is the inner message body for the order message endpoints.
type MessagePayload struct {
	Text      string `json:"text" validate:"required"`
	CreatedAt string `json:"createdAt" validate:"required"`
}

// BuyerMessageRequest is the DTO for POST /api/orders/:id/message.
type BuyerMessageRequest struct {
	BuyerLatestMessage *MessagePayload `json:"buyerLatestMessage" validate:"required"`
}

// SellerMessageRequest is the DTO for POST /api/orders/:id/savesellermsg.
type SellerMessageRequest struct {
	SellerLatestMessage *MessagePayload `json:"sellerLatestMessage" validate:"required"`
}
