package usecases

import (
	"context"

	"hr-ledger.backend/internal/domain/entities"
	domainerrors "hr-ledger.backend/internal/domain/errors"
	"hr-ledger.backend/internal/domain/repositories"
)

// PurchaseFilter narrows the purchase list view
type PurchaseFilter struct {
	PurchaseNo    string `form:"purchaseNo"`
	SupplierCode  string `form:"supplierCode"`
	ProductName   string `form:"productName"`
	PaymentStatus string `form:"paymentStatus"`
}

// PurchaseUsecase handles purchase entry and listing
type PurchaseUsecase struct {
	repo repositories.PurchaseRepository
}

// NewPurchaseUsecase creates a new purchase usecase
func NewPurchaseUsecase(repo repositories.PurchaseRepository) *PurchaseUsecase {
	return &PurchaseUsecase{repo: repo}
}

// Create validates the form and inserts one purchase record
func (u *PurchaseUsecase) Create(ctx context.Context, input *entities.CreatePurchaseInput) (*entities.PurchaseRecord, error) {
	var blank []string
	if input.PurchaseNo == "" {
		blank = append(blank, "purchase_no")
	}
	if input.ProductName == "" {
		blank = append(blank, "product_name")
	}
	if len(blank) > 0 {
		return nil, domainerrors.NewValidationError(blank...)
	}

	record := entities.NewPurchaseRecord(input)
	if err := u.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// List fetches every purchase record and applies the filter in memory
func (u *PurchaseUsecase) List(ctx context.Context, filter *PurchaseFilter) ([]*entities.PurchaseRecord, error) {
	records, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		return records, nil
	}
	result := make([]*entities.PurchaseRecord, 0, len(records))
	for _, r := range records {
		if !substringMatch(r.PurchaseNo, filter.PurchaseNo) {
			continue
		}
		if !substringMatch(r.SupplierCode, filter.SupplierCode) {
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

// ExportCSV renders the filtered purchase list as a spreadsheet
func (u *PurchaseUsecase) ExportCSV(ctx context.Context, filter *PurchaseFilter) ([]byte, error) {
	records, err := u.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.PurchaseNo, r.PurchaseDate, r.SupplierCode, r.ProductName,
			formatFloat(r.Quantity), formatFloat(r.UnitPrice), formatFloat(r.Amount),
			r.Currency, string(r.PaymentStatus),
		})
	}
	return writeCSV([]string{
		"purchase_no", "purchase_date", "supplier_code", "product_name",
		"quantity", "unit_price", "amount", "currency", "payment_status",
	}, rows)
}
