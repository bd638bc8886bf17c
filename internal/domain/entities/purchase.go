package entities

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseRecord represents one purchase from a supplier. SupplierCode is a
// soft FK into clients. Amount = Quantity x UnitPrice, derived once at entry.
type PurchaseRecord struct {
	ID            uuid.UUID    `json:"id"`
	PurchaseNo    string       `json:"purchaseNo"`
	PurchaseDate  string       `json:"purchaseDate"`
	SupplierCode  string       `json:"supplierCode"`
	ProductName   string       `json:"productName"`
	Quantity      float64      `json:"quantity"`
	UnitPrice     float64      `json:"unitPrice"`
	Amount        float64      `json:"amount"`
	Currency      string       `json:"currency"`
	PaymentStatus PaymentState `json:"paymentStatus"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// CreatePurchaseInput represents the purchase entry form
type CreatePurchaseInput struct {
	PurchaseNo    string  `json:"purchaseNo"`
	PurchaseDate  string  `json:"purchaseDate"`
	SupplierCode  string  `json:"supplierCode"`
	ProductName   string  `json:"productName"`
	Quantity      float64 `json:"quantity"`
	UnitPrice     float64 `json:"unitPrice"`
	Currency      string  `json:"currency"`
	PaymentStatus string  `json:"paymentStatus" binding:"omitempty,oneof=unpaid partial paid"`
}

// NewPurchaseRecord builds a PurchaseRecord with the amount derived from the form
func NewPurchaseRecord(in *CreatePurchaseInput) *PurchaseRecord {
	status := PaymentState(in.PaymentStatus)
	if status == "" {
		status = PaymentUnpaid
	}
	return &PurchaseRecord{
		ID:            uuid.New(),
		PurchaseNo:    in.PurchaseNo,
		PurchaseDate:  in.PurchaseDate,
		SupplierCode:  in.SupplierCode,
		ProductName:   in.ProductName,
		Quantity:      in.Quantity,
		UnitPrice:     in.UnitPrice,
		Amount:        in.Quantity * in.UnitPrice,
		Currency:      in.Currency,
		PaymentStatus: status,
		CreatedAt:     time.Now(),
	}
}
