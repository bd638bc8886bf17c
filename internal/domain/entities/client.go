package entities

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a business partner (거래처)
type Client struct {
	ID            uuid.UUID `json:"id"`
	ClientCode    string    `json:"clientCode"`
	ClientName    string    `json:"clientName"`
	BusinessType  string    `json:"businessType"`
	Country       string    `json:"country"`
	ContactPerson string    `json:"contactPerson"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CreateClientInput represents the new-client form
type CreateClientInput struct {
	ClientCode    string `json:"clientCode"`
	ClientName    string `json:"clientName"`
	BusinessType  string `json:"businessType"`
	Country       string `json:"country"`
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

// NewClient builds a Client from form input
func NewClient(in *CreateClientInput) *Client {
	return &Client{
		ID:            uuid.New(),
		ClientCode:    in.ClientCode,
		ClientName:    in.ClientName,
		BusinessType:  in.BusinessType,
		Country:       in.Country,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
		CreatedAt:     time.Now(),
	}
}
