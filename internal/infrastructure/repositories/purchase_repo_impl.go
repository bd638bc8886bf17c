package repositories

import (
	"context"

	"gorm.io/gorm"
	"hr-ledger.backend/internal/domain/entities"
	"hr-ledger.backend/internal/infrastructure/models"
)

// PurchaseRepository implements purchase data operations
type PurchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

// Create creates a new purchase record
func (r *PurchaseRepository) Create(ctx context.Context, record *entities.PurchaseRecord) error {
	m := &models.PurchaseRecord{
		ID:            record.ID,
		PurchaseNo:    record.PurchaseNo,
		PurchaseDate:  record.PurchaseDate,
		SupplierCode:  record.SupplierCode,
		ProductName:   record.ProductName,
		Quantity:      record.Quantity,
		UnitPrice:     record.UnitPrice,
		Amount:        record.Amount,
		Currency:      record.Currency,
		PaymentStatus: string(record.PaymentStatus),
		CreatedAt:     record.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// List returns every purchase record, newest purchase first
func (r *PurchaseRepository) List(ctx context.Context) ([]*entities.PurchaseRecord, error) {
	var recordModels []models.PurchaseRecord
	if err := r.db.WithContext(ctx).Order("purchase_date DESC").Find(&recordModels).Error; err != nil {
		return nil, err
	}
	records := make([]*entities.PurchaseRecord, 0, len(recordModels))
	for i := range recordModels {
		m := &recordModels[i]
		records = append(records, &entities.PurchaseRecord{
			ID:            m.ID,
			PurchaseNo:    m.PurchaseNo,
			PurchaseDate:  m.PurchaseDate,
			SupplierCode:  m.SupplierCode,
			ProductName:   m.ProductName,
			Quantity:      m.Quantity,
			UnitPrice:     m.UnitPrice,
			Amount:        m.Amount,
			Currency:      m.Currency,
			PaymentStatus: entities.PaymentState(m.PaymentStatus),
			CreatedAt:     m.CreatedAt,
		})
	}
	return records, nil
}

// SumAmount totals the amount column across all purchases
func (r *PurchaseRepository) SumAmount(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.PurchaseRecord{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
