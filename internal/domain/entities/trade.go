package entities

import (
	"time"

	"github.com/google/uuid"
)

// TradeType distinguishes export and import transactions
type TradeType string

const (
	TradeExport TradeType = "export"
	TradeImport TradeType = "import"
)

// CustomsStatus tracks clearance progress for a trade transaction
type CustomsStatus string

const (
	CustomsPending  CustomsStatus = "pending"
	CustomsCleared  CustomsStatus = "cleared"
	CustomsHeld     CustomsStatus = "held"
	CustomsReleased CustomsStatus = "released"
)

// TradeTransaction represents one export or import deal. Amount and KRWAmount
// are derived once at entry: Amount = Quantity x UnitPrice and
// KRWAmount = Amount x ExchangeRate.
type TradeTransaction struct {
	ID              uuid.UUID     `json:"id"`
	TransactionNo   string        `json:"transactionNo"`
	TransactionType TradeType     `json:"transactionType"`
	TransactionDate string        `json:"transactionDate"`
	ClientCode      string        `json:"clientCode"`
	ProductName     string        `json:"productName"`
	Quantity        float64       `json:"quantity"`
	UnitPrice       float64       `json:"unitPrice"`
	Amount          float64       `json:"amount"`
	Currency        string        `json:"currency"`
	ExchangeRate    float64       `json:"exchangeRate"`
	KRWAmount       float64       `json:"krwAmount"`
	CustomsStatus   CustomsStatus `json:"customsStatus"`
	BLNo            string        `json:"blNo"`
	Remarks         string        `json:"remarks"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// CreateTradeInput represents the trade entry form
type CreateTradeInput struct {
	TransactionNo   string  `json:"transactionNo"`
	TransactionType string  `json:"transactionType" binding:"omitempty,oneof=export import"`
	TransactionDate string  `json:"transactionDate"`
	ClientCode      string  `json:"clientCode"`
	ProductName     string  `json:"productName"`
	Quantity        float64 `json:"quantity"`
	UnitPrice       float64 `json:"unitPrice"`
	Currency        string  `json:"currency"`
	ExchangeRate    float64 `json:"exchangeRate"`
	CustomsStatus   string  `json:"customsStatus" binding:"omitempty,oneof=pending cleared held released"`
	BLNo            string  `json:"blNo"`
	Remarks         string  `json:"remarks"`
}

// NewTradeTransaction builds a TradeTransaction with both derived amounts
// computed from the form values
func NewTradeTransaction(in *CreateTradeInput) *TradeTransaction {
	tradeType := TradeType(in.TransactionType)
	if tradeType == "" {
		tradeType = TradeExport
	}
	customs := CustomsStatus(in.CustomsStatus)
	if customs == "" {
		customs = CustomsPending
	}
	amount := in.Quantity * in.UnitPrice
	return &TradeTransaction{
		ID:              uuid.New(),
		TransactionNo:   in.TransactionNo,
		TransactionType: tradeType,
		TransactionDate: in.TransactionDate,
		ClientCode:      in.ClientCode,
		ProductName:     in.ProductName,
		Quantity:        in.Quantity,
		UnitPrice:       in.UnitPrice,
		Amount:          amount,
		Currency:        in.Currency,
		ExchangeRate:    in.ExchangeRate,
		KRWAmount:       amount * in.ExchangeRate,
		CustomsStatus:   customs,
		BLNo:            in.BLNo,
		Remarks:         in.Remarks,
		CreatedAt:       time.Now(),
	}
}
