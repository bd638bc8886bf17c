package usecases

import (
	"context"

	"hr-ledger.backend/internal/domain/entities"
	domainerrors "hr-ledger.backend/internal/domain/errors"
	"hr-ledger.backend/internal/domain/repositories"
)

// TradeFilter narrows the trade transaction list view
type TradeFilter struct {
	TransactionNo   string `form:"transactionNo"`
	TransactionType string `form:"transactionType"`
	ClientCode      string `form:"clientCode"`
	ProductName     string `form:"productName"`
	CustomsStatus   string `form:"customsStatus"`
}

// TradeUsecase handles trade transaction entry and listing
type TradeUsecase struct {
	repo repositories.TradeRepository
}

// NewTradeUsecase creates a new trade usecase
func NewTradeUsecase(repo repositories.TradeRepository) *TradeUsecase {
	return &TradeUsecase{repo: repo}
}

// Create validates the form and inserts one trade transaction. Both the
// foreign-currency amount and its KRW conversion are derived here.
func (u *TradeUsecase) Create(ctx context.Context, input *entities.CreateTradeInput) (*entities.TradeTransaction, error) {
	var blank []string
	if input.TransactionNo == "" {
		blank = append(blank, "transaction_no")
	}
	if input.ProductName == "" {
		blank = append(blank, "product_name")
	}
	if len(blank) > 0 {
		return nil, domainerrors.NewValidationError(blank...)
	}

	tx := entities.NewTradeTransaction(input)
	if err := u.repo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// List fetches every trade transaction and applies the filter in memory
func (u *TradeUsecase) List(ctx context.Context, filter *TradeFilter) ([]*entities.TradeTransaction, error) {
	txs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		return txs, nil
	}
	result := make([]*entities.TradeTransaction, 0, len(txs))
	for _, tx := range txs {
		if !substringMatch(tx.TransactionNo, filter.TransactionNo) {
			continue
		}
		if !exactMatch(string(tx.TransactionType), filter.TransactionType) {
			continue
		}
		if !substringMatch(tx.ClientCode, filter.ClientCode) {
			continue
		}
		if !substringMatch(tx.ProductName, filter.ProductName) {
			continue
		}
		if !exactMatch(string(tx.CustomsStatus), filter.CustomsStatus) {
			continue
		}
		result = append(result, tx)
	}
	return result, nil
}

// ExportCSV renders the filtered trade list as a spreadsheet
func (u *TradeUsecase) ExportCSV(ctx context.Context, filter *TradeFilter) ([]byte, error) {
	txs, err := u.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{
			tx.TransactionNo, string(tx.TransactionType), tx.TransactionDate,
			tx.ClientCode, tx.ProductName,
			formatFloat(tx.Quantity), formatFloat(tx.UnitPrice), formatFloat(tx.Amount),
			tx.Currency, formatFloat(tx.ExchangeRate), formatFloat(tx.KRWAmount),
			string(tx.CustomsStatus), tx.BLNo, tx.Remarks,
		})
	}
	return writeCSV([]string{
		"transaction_no", "transaction_type", "transaction_date",
		"client_code", "product_name",
		"quantity", "unit_price", "amount",
		"currency", "exchange_rate", "krw_amount",
		"customs_status", "bl_no", "remarks",
	}, rows)
}
