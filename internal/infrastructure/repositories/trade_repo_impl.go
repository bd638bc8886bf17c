package repositories

import (
	"context"

	"gorm.io/gorm"
	"hr-ledger.backend/internal/domain/entities"
	"hr-ledger.backend/internal/infrastructure/models"
)

// TradeRepository implements trade transaction data operations
type TradeRepository struct {
	db *gorm.DB
}

// NewTradeRepository creates a new trade repository
func NewTradeRepository(db *gorm.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

// Create creates a new trade transaction
func (r *TradeRepository) Create(ctx context.Context, tx *entities.TradeTransaction) error {
	m := &models.TradeTransaction{
		ID:              tx.ID,
		TransactionNo:   tx.TransactionNo,
		TransactionType: string(tx.TransactionType),
		TransactionDate: tx.TransactionDate,
		ClientCode:      tx.ClientCode,
		ProductName:     tx.ProductName,
		Quantity:        tx.Quantity,
		UnitPrice:       tx.UnitPrice,
		Amount:          tx.Amount,
		Currency:        tx.Currency,
		ExchangeRate:    tx.ExchangeRate,
		KRWAmount:       tx.KRWAmount,
		CustomsStatus:   string(tx.CustomsStatus),
		BLNo:            tx.BLNo,
		Remarks:         tx.Remarks,
		CreatedAt:       tx.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// List returns every trade transaction, newest first
func (r *TradeRepository) List(ctx context.Context) ([]*entities.TradeTransaction, error) {
	var txModels []models.TradeTransaction
	if err := r.db.WithContext(ctx).Order("transaction_date DESC").Find(&txModels).Error; err != nil {
		return nil, err
	}
	txs := make([]*entities.TradeTransaction, 0, len(txModels))
	for i := range txModels {
		m := &txModels[i]
		txs = append(txs, &entities.TradeTransaction{
			ID:              m.ID,
			TransactionNo:   m.TransactionNo,
			TransactionType: entities.TradeType(m.TransactionType),
			TransactionDate: m.TransactionDate,
			ClientCode:      m.ClientCode,
			ProductName:     m.ProductName,
			Quantity:        m.Quantity,
			UnitPrice:       m.UnitPrice,
			Amount:          m.Amount,
			Currency:        m.Currency,
			ExchangeRate:    m.ExchangeRate,
			KRWAmount:       m.KRWAmount,
			CustomsStatus:   entities.CustomsStatus(m.CustomsStatus),
			BLNo:            m.BLNo,
			Remarks:         m.Remarks,
			CreatedAt:       m.CreatedAt,
		})
	}
	return txs, nil
}
