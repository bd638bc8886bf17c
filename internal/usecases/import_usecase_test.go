package usecases_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	domainerrors "hr-ledger.backend/internal/domain/errors"
	"hr-ledger.backend/internal/usecases"
)

func TestImportUsecase_KoreanHeadersAndDates(t *testing.T) {
	gateway := new(MockTableGateway)
	uc := usecases.NewImportUsecase(gateway)
	ctx := context.Background()

	var rows []map[string]any
	gateway.On("Insert", ctx, "employees", mock.AnythingOfType("map[string]interface {}")).
		Run(func(args mock.Arguments) {
			rows = append(rows, args.Get(2).(map[string]any))
		}).Return(nil)

	csvData := "사번,이름,부서,입사일\n" +
		"EMP001,Kim Minsoo,Sales,2020/03/01\n" +
		"EMP002,Lee Jiyeon,HR,2021-07-15\n"

	result, err := uc.ImportCSV(ctx, "employees", strings.NewReader(csvData))
	require.NoError(t, err)
	require.Equal(t, 2, result.Total)
	require.Equal(t, 2, result.Succeeded)

	require.Len(t, rows, 2)
	require.Equal(t, "EMP001", rows[0]["employee_code"])
	require.Equal(t, "2020-03-01", rows[0]["hire_date"])
	require.Equal(t, "2021-07-15", rows[1]["hire_date"])
	require.NotEmpty(t, rows[0]["id"])
}

func TestImportUsecase_ShortRowsAreBlanked(t *testing.T) {
	gateway := new(MockTableGateway)
	uc := usecases.NewImportUsecase(gateway)
	ctx := context.Background()

	var row map[string]any
	gateway.On("Insert", ctx, "clients", mock.Anything).
		Run(func(args mock.Arguments) { row = args.Get(2).(map[string]any) }).Return(nil)

	csvData := "client_code,client_name,country\nCL001,Hanjin Trading\n"
	result, err := uc.ImportCSV(ctx, "clients", strings.NewReader(csvData))
	require.NoError(t, err)
	require.Equal(t, 1, result.Succeeded)
	require.Equal(t, "", row["country"])
}

func TestImportUsecase_FailedRowsAreSkippedNotFatal(t *testing.T) {
	gateway := new(MockTableGateway)
	uc := usecases.NewImportUsecase(gateway)
	ctx := context.Background()

	gateway.On("Insert", ctx, "employees", mock.MatchedBy(func(r map[string]any) bool {
		return r["employee_code"] == "EMP002"
	})).Return(errors.New("duplicate key"))
	gateway.On("Insert", ctx, "employees", mock.Anything).Return(nil)

	csvData := "employee_code,name\nEMP001,Kim\nEMP002,Lee\nEMP003,Park\n"
	result, err := uc.ImportCSV(ctx, "employees", strings.NewReader(csvData))
	require.NoError(t, err)
	require.Equal(t, 3, result.Total)
	require.Equal(t, 2, result.Succeeded)
}

func TestImportUsecase_MissingRequiredColumns(t *testing.T) {
	gateway := new(MockTableGateway)
	uc := usecases.NewImportUsecase(gateway)
	ctx := context.Background()

	_, err := uc.ImportCSV(ctx, "employees", strings.NewReader("name,department\nKim,Sales\n"))
	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{"employee_code"}, verr.Fields)
	gateway.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestImportUsecase_RejectsUnknownTargets(t *testing.T) {
	gateway := new(MockTableGateway)
	uc := usecases.NewImportUsecase(gateway)
	ctx := context.Background()

	_, err := uc.ImportCSV(ctx, "users", strings.NewReader("email\nx@y.z\n"))
	require.Error(t, err)

	_, err = uc.ImportCSV(ctx, "employees", strings.NewReader("employee_code,name,password\nE,K,p\n"))
	require.Error(t, err)

	_, err = uc.ImportCSV(ctx, "employees", strings.NewReader(""))
	require.Error(t, err)
}

func TestImportUsecase_UnparsableDatesKeptVerbatim(t *testing.T) {
	gateway := new(MockTableGateway)
	uc := usecases.NewImportUsecase(gateway)
	ctx := context.Background()

	var row map[string]any
	gateway.On("Insert", ctx, "payroll", mock.Anything).
		Run(func(args mock.Arguments) { row = args.Get(2).(map[string]any) }).Return(nil)

	csvData := "employee_code,payment_date\nEMP001,January 25th\n"
	result, err := uc.ImportCSV(ctx, "payroll", strings.NewReader(csvData))
	require.NoError(t, err)
	require.Equal(t, 1, result.Succeeded)
	require.Equal(t, "January 25th", row["payment_date"])
}
