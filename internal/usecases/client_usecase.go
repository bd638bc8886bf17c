package usecases

import (
	"context"

	"hr-ledger.backend/internal/domain/entities"
	domainerrors "hr-ledger.backend/internal/domain/errors"
	"hr-ledger.backend/internal/domain/repositories"
)

// ClientFilter narrows the client list view
type ClientFilter struct {
	ClientName   string `form:"clientName"`
	Country      string `form:"country"`
	BusinessType string `form:"businessType"`
}

// ClientUsecase handles client registration and listing
type ClientUsecase struct {
	repo repositories.ClientRepository
}

// NewClientUsecase creates a new client usecase
func NewClientUsecase(repo repositories.ClientRepository) *ClientUsecase {
	return &ClientUsecase{repo: repo}
}

// Create validates the form and inserts one client
func (u *ClientUsecase) Create(ctx context.Context, input *entities.CreateClientInput) (*entities.Client, error) {
	var blank []string
	if input.ClientCode == "" {
		blank = append(blank, "client_code")
	}
	if input.ClientName == "" {
		blank = append(blank, "client_name")
	}
	if len(blank) > 0 {
		return nil, domainerrors.NewValidationError(blank...)
	}

	client := entities.NewClient(input)
	if err := u.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// List fetches every client and applies the filter in memory
func (u *ClientUsecase) List(ctx context.Context, filter *ClientFilter) ([]*entities.Client, error) {
	clients, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		return clients, nil
	}
	result := make([]*entities.Client, 0, len(clients))
	for _, c := range clients {
		if !substringMatch(c.ClientName, filter.ClientName) {
			continue
		}
		if !substringMatch(c.Country, filter.Country) {
			continue
		}
		if !substringMatch(c.BusinessType, filter.BusinessType) {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

// ExportCSV renders the filtered client list as a spreadsheet
func (u *ClientUsecase) ExportCSV(ctx context.Context, filter *ClientFilter) ([]byte, error) {
	clients, err := u.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []string{
			c.ClientCode, c.ClientName, c.BusinessType, c.Country,
			c.ContactPerson, c.Phone, c.Email, c.Address,
		})
	}
	return writeCSV([]string{
		"client_code", "client_name", "business_type", "country",
		"contact_person", "phone", "email", "address",
	}, rows)
}
