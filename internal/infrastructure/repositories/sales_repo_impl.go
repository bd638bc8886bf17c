package repositories

import (
	"context"

	"gorm.io/gorm"
	"hr-ledger.backend/internal/domain/entities"
	"hr-ledger.backend/internal/infrastructure/models"
)

// SalesRepository implements sales data operations
type SalesRepository struct {
	db *gorm.DB
}

// NewSalesRepository creates a new sales repository
func NewSalesRepository(db *gorm.DB) *SalesRepository {
	return &SalesRepository{db: db}
}

// Create creates a new sales record
func (r *SalesRepository) Create(ctx context.Context, record *entities.SalesRecord) error {
	m := &models.SalesRecord{
		ID:            record.ID,
		SalesNo:       record.SalesNo,
		SalesDate:     record.SalesDate,
		ClientCode:    record.ClientCode,
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

// List returns every sales record, newest sale first
func (r *SalesRepository) List(ctx context.Context) ([]*entities.SalesRecord, error) {
	var recordModels []models.SalesRecord
	if err := r.db.WithContext(ctx).Order("sales_date DESC").Find(&recordModels).Error; err != nil {
		return nil, err
	}
	records := make([]*entities.SalesRecord, 0, len(recordModels))
	for i := range recordModels {
		m := &recordModels[i]
		records = append(records, &entities.SalesRecord{
			ID:            m.ID,
			SalesNo:       m.SalesNo,
			SalesDate:     m.SalesDate,
			ClientCode:    m.ClientCode,
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

// SumAmount totals the amount column across all sales
func (r *SalesRepository) SumAmount(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.SalesRecord{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
