package repositories

import (
	"context"

	"gorm.io/gorm"
	"hr-ledger.backend/internal/domain/entities"
	"hr-ledger.backend/internal/infrastructure/models"
)

// ClientRepository implements client data operations
type ClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// Create creates a new client
func (r *ClientRepository) Create(ctx context.Context, client *entities.Client) error {
	m := &models.Client{
		ID:            client.ID,
		ClientCode:    client.ClientCode,
		ClientName:    client.ClientName,
		BusinessType:  client.BusinessType,
		Country:       client.Country,
		ContactPerson: client.ContactPerson,
		Phone:         client.Phone,
		Email:         client.Email,
		Address:       client.Address,
		CreatedAt:     client.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// List returns every client, newest first
func (r *ClientRepository) List(ctx context.Context) ([]*entities.Client, error) {
	var clientModels []models.Client
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&clientModels).Error; err != nil {
		return nil, err
	}
	clients := make([]*entities.Client, 0, len(clientModels))
	for i := range clientModels {
		m := &clientModels[i]
		clients = append(clients, &entities.Client{
			ID:            m.ID,
			ClientCode:    m.ClientCode,
			ClientName:    m.ClientName,
			BusinessType:  m.BusinessType,
			Country:       m.Country,
			ContactPerson: m.ContactPerson,
			Phone:         m.Phone,
			Email:         m.Email,
			Address:       m.Address,
			CreatedAt:     m.CreatedAt,
		})
	}
	return clients, nil
}

// Count returns the number of client rows
func (r *ClientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Client{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
