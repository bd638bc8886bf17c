package usecases

import (
	"context"

	"hr-ledger.backend/internal/domain/entities"
	domainerrors "hr-ledger.backend/internal/domain/errors"
	"hr-ledger.backend/internal/domain/repositories"
)

// SalesFilter narrows the sales list view
type SalesFilter struct {
	SalesNo       string `form:"salesNo"`
	ClientCode    string `form:"clientCode"`
	ProductName   string `form:"productName"`
	PaymentStatus string `form:"paymentStatus"`
}

// SalesUsecase handles sales entry and listing
type SalesUsecase struct {
	repo repositories.SalesRepository
}

// NewSalesUsecase creates a new sales usecase
func NewSalesUsecase(repo repositories.SalesRepository) *SalesUsecase {
	return &SalesUsecase{repo: repo}
}

// Create validates the form and inserts one sales record. The amount is
// derived here and never recomputed afterwards.
func (u *SalesUsecase) Create(ctx context.Context, input *entities.CreateSalesInput) (*entities.SalesRecord, error) {
	var blank []string
	if input.SalesNo == "" {
		blank = append(blank, "sales_no")
	}
	if input.ProductName == "" {
		blank = append(blank, "product_name")
	}
	if len(blank) > 0 {
		return nil, domainerrors.NewValidationError(blank...)
	}

	record := entities.NewSalesRecord(input)
	if err := u.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// List fetches every sales record and applies the filter in memory
func (u *SalesUsecase) List(ctx context.Context, filter *SalesFilter) ([]*entities.SalesRecord, error) {
	records, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		return records, nil
	}
	result := make([]*entities.SalesRecord, 0, len(records))
	for _, r := range records {
		if !substringMatch(r.SalesNo, filter.SalesNo) {
			continue
		}
		if !substringMatch(r.ClientCode, filter.ClientCode) {
			continue
		}
		if !substringMatch(r.ProductName, filter.ProductName) {
			continue
		}
		if !exactMatch(string(r.PaymentStatus), filter.PaymentStatus) {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

// ExportCSV renders the filtered sales list as a spreadsheet
func (u *SalesUsecase) ExportCSV(ctx context.Context, filter *SalesFilter) ([]byte, error) {
	records, err := u.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.SalesNo, r.SalesDate, r.ClientCode, r.ProductName,
			formatFloat(r.Quantity), formatFloat(r.UnitPrice), formatFloat(r.Amount),
			r.Currency, string(r.PaymentStatus),
		})
	}
	return writeCSV([]string{
		"sales_no", "sales_date", "client_code", "product_name",
		"quantity", "unit_price", "amount", "currency", "payment_status",
	}, rows)
}
