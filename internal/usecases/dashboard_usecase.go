package usecases

import (
	"context"

	"hr-ledger.backend/internal/domain/repositories"
)

// DashboardStats is the landing-screen summary
type DashboardStats struct {
	EmployeeCount int64   `json:"employeeCount"`
	ClientCount   int64   `json:"clientCount"`
	SalesTotal    float64 `json:"salesTotal"`
	PurchaseTotal float64 `json:"purchaseTotal"`
}

// DashboardUsecase aggregates headline numbers across entities
type DashboardUsecase struct {
	employeeRepo repositories.EmployeeRepository
	clientRepo   repositories.ClientRepository
	salesRepo    repositories.SalesRepository
	purchaseRepo repositories.PurchaseRepository
}

// NewDashboardUsecase creates a new dashboard usecase
func NewDashboardUsecase(
	employeeRepo repositories.EmployeeRepository,
	clientRepo repositories.ClientRepository,
	salesRepo repositories.SalesRepository,
	purchaseRepo repositories.PurchaseRepository,
) *DashboardUsecase {
	return &DashboardUsecase{
		employeeRepo: employeeRepo,
		clientRepo:   clientRepo,
		salesRepo:    salesRepo,
		purchaseRepo: purchaseRepo,
	}
}

// Stats collects the counts and totals shown on the landing screen
func (u *DashboardUsecase) Stats(ctx context.Context) (*DashboardStats, error) {
	employees, err := u.employeeRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := u.clientRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	salesTotal, err := u.salesRepo.SumAmount(ctx)
	if err != nil {
		return nil, err
	}
	purchaseTotal, err := u.purchaseRepo.SumAmount(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{
		EmployeeCount: employees,
		ClientCount:   clients,
		SalesTotal:    salesTotal,
		PurchaseTotal: purchaseTotal,
	}, nil
}
