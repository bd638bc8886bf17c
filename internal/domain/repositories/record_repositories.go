package repositories

import (
	"context"

	"hr-ledger.backend/internal/domain/entities"
)

// EmployeeRepository defines employee data operations. Listing always returns
// every row; search narrowing happens in memory at the usecase layer.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entities.Employee) error
	List(ctx context.Context) ([]*entities.Employee, error)
	Count(ctx context.Context) (int64, error)
}

// PayrollRepository defines payroll data operations
type PayrollRepository interface {
	Create(ctx context.Context, record *entities.PayrollRecord) error
	List(ctx context.Context) ([]*entities.PayrollRecord, error)
}

// ClientRepository defines client data operations
type ClientRepository interface {
	Create(ctx context.Context, client *entities.Client) error
	List(ctx context.Context) ([]*entities.Client, error)
	Count(ctx context.Context) (int64, error)
}

// SalesRepository defines sales data operations
type SalesRepository interface {
	Create(ctx context.Context, record *entities.SalesRecord) error
	List(ctx context.Context) ([]*entities.SalesRecord, error)
	SumAmount(ctx context.Context) (float64, error)
}

// PurchaseRepository defines purchase data operations
type PurchaseRepository interface {
	Create(ctx context.Context, record *entities.PurchaseRecord) error
	List(ctx context.Context) ([]*entities.PurchaseRecord, error)
	SumAmount(ctx context.Context) (float64, error)
}

// TradeRepository defines trade transaction data operations
type TradeRepository interface {
	Create(ctx context.Context, tx *entities.TradeTransaction) error
	List(ctx context.Context) ([]*entities.TradeTransaction, error)
}
