package models

import (
	"time"

	"github.com/google/uuid"
)

type ContactInquiry struct {
	ID         string    `bson:"id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email" json:"email"`
	Message    string    `bson:"message" json:"message"`
	PropertyID *string   `bson:"property_id" json:"property_id"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// ContactInquiryCreate is the client payload for submitting an inquiry.
// property_id is an unchecked reference: the property it names may not exist.
type ContactInquiryCreate struct {
	Name       string  `json:"name" validate:"required"`
	Email      string  `json:"email" validate:"required"`
	Message    string  `json:"message" validate:"required"`
	PropertyID *string `json:"property_id"`
}

func NewContactInquiry(c ContactInquiryCreate, now time.Time) ContactInquiry {
	return ContactInquiry{
		ID:         uuid.NewString(),
		Name:       c.Name,
		Email:      c.Email,
		Message:    c.Message,
		PropertyID: c.PropertyID,
		CreatedAt:  now,
	}
}
