package entities

import (
	"time"

	"github.com/google/uuid"
)

// PaymentState tracks whether a sale or purchase has been settled
type PaymentState string

const (
	PaymentUnpaid  PaymentState = "unpaid"
	PaymentPartial PaymentState = "partial"
	PaymentPaid    PaymentState = "paid"
)

// SalesRecord represents one sale. ClientCode is a soft FK and not checked
// on write. Amount = Quantity x UnitPrice, derived once at entry.
type SalesRecord struct {
	ID            uuid.UUID    `json:"id"`
	SalesNo       string       `json:"salesNo"`
	SalesDate     string       `json:"salesDate"`
	ClientCode    string       `json:"clientCode"`
	ProductName   string       `json:"productName"`
	Quantity      float64      `json:"quantity"`
	UnitPrice     float64      `json:"unitPrice"`
	Amount        float64      `json:"amount"`
	Currency      string       `json:"currency"`
	PaymentStatus PaymentState `json:"paymentStatus"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// CreateSalesInput represents the sales entry form
type CreateSalesInput struct {
	SalesNo       string  `json:"salesNo"`
	SalesDate     string  `json:"salesDate"`
	ClientCode    string  `json:"clientCode"`
	ProductName   string  `json:"productName"`
	Quantity      float64 `json:"quantity"`
	UnitPrice     float64 `json:"unitPrice"`
	Currency      string  `json:"currency"`
	PaymentStatus string  `json:"paymentStatus" binding:"omitempty,oneof=unpaid partial paid"`
}

// NewSalesRecord builds a SalesRecord with the amount derived from the form
func NewSalesRecord(in *CreateSalesInput) *SalesRecord {
	status := PaymentState(in.PaymentStatus)
	if status == "" {
		status = PaymentUnpaid
	}
	return &SalesRecord{
		ID:            uuid.New(),
		SalesNo:       in.SalesNo,
		SalesDate:     in.SalesDate,
		ClientCode:    in.ClientCode,
		ProductName:   in.ProductName,
		Quantity:      in.Quantity,
		UnitPrice:     in.UnitPrice,
		Amount:        in.Quantity * in.UnitPrice,
		Currency:      in.Currency,
		PaymentStatus: status,
		CreatedAt:     time.Now(),
	}
}
