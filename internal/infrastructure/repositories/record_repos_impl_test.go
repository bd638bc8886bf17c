package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"hr-ledger.backend/internal/domain/entities"
)

func TestEmployeeRepository_CreateListCount(t *testing.T) {
	db := newTestDB(t)
	createEmployeeTable(t, db)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	e := entities.NewEmployee(&entities.CreateEmployeeInput{
		EmployeeCode: "EMP001",
		Name:         "Kim Minsoo",
		Department:   "Sales",
		Position:     "Manager",
		HireDate:     "2020-03-01",
		Salary:       4500000,
	})
	require.NoError(t, repo.Create(ctx, e))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "EMP001", items[0].EmployeeCode)
	require.Equal(t, entities.EmployeeActive, items[0].Status)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestPayrollRepository_CreateList(t *testing.T) {
	db := newTestDB(t)
	createPayrollTable(t, db)
	repo := NewPayrollRepository(db)
	ctx := context.Background()

	rec := entities.NewPayrollRecord(&entities.CreatePayrollInput{
		EmployeeCode: "EMP001",
		PaymentDate:  "2025-01-25",
		BaseSalary:   4500000,
		Bonus:        500000,
		Deduction:    300000,
	})
	require.NoError(t, repo.Create(ctx, rec))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.EqualValues(t, 4700000, items[0].NetSalary)
}

func TestClientRepository_CreateListCount(t *testing.T) {
	db := newTestDB(t)
	createClientTable(t, db)
	repo := NewClientRepository(db)
	ctx := context.Background()

	c := entities.NewClient(&entities.CreateClientInput{
		ClientCode: "CL001",
		ClientName: "Hanjin Trading",
		Country:    "KR",
	})
	require.NoError(t, repo.Create(ctx, c))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Hanjin Trading", items[0].ClientName)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestSalesRepository_CreateListSum(t *testing.T) {
	db := newTestDB(t)
	createSalesTable(t, db)
	repo := NewSalesRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, entities.NewSalesRecord(&entities.CreateSalesInput{
		SalesNo: "S-001", SalesDate: "2025-02-01", ProductName: "Widget", Quantity: 10, UnitPrice: 2.5, Currency: "USD",
	})))
	require.NoError(t, repo.Create(ctx, entities.NewSalesRecord(&entities.CreateSalesInput{
		SalesNo: "S-002", SalesDate: "2025-02-02", ProductName: "Gadget", Quantity: 4, UnitPrice: 10, Currency: "USD",
	})))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "S-002", items[0].SalesNo)

	total, err := repo.SumAmount(ctx)
	require.NoError(t, err)
	require.InDelta(t, 65.0, total, 1e-9)
}

func TestPurchaseRepository_CreateListSum(t *testing.T) {
	db := newTestDB(t)
	createPurchaseTable(t, db)
	repo := NewPurchaseRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, entities.NewPurchaseRecord(&entities.CreatePurchaseInput{
		PurchaseNo: "P-001", PurchaseDate: "2025-02-03", SupplierCode: "CL009",
		ProductName: "Raw Material", Quantity: 100, UnitPrice: 1.2, Currency: "USD",
	})))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, entities.PaymentUnpaid, items[0].PaymentStatus)

	total, err := repo.SumAmount(ctx)
	require.NoError(t, err)
	require.InDelta(t, 120.0, total, 1e-9)
}

func TestTradeRepository_CreateList(t *testing.T) {
	db := newTestDB(t)
	createTradeTable(t, db)
	repo := NewTradeRepository(db)
	ctx := context.Background()

	tx := entities.NewTradeTransaction(&entities.CreateTradeInput{
		TransactionNo:   "T-001",
		TransactionType: "import",
		TransactionDate: "2025-03-01",
		ProductName:     "Machinery",
		Quantity:        2,
		UnitPrice:       15000,
		Currency:        "USD",
		ExchangeRate:    1350.5,
		BLNo:            "BL-2025-0001",
	})
	require.NoError(t, repo.Create(ctx, tx))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, entities.TradeImport, items[0].TransactionType)
	require.InDelta(t, 30000.0, items[0].Amount, 1e-9)
	require.InDelta(t, 30000.0*1350.5, items[0].KRWAmount, 1e-6)
}
