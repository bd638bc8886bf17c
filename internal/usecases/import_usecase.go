package usecases

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	domainerrors "hr-ledger.backend/internal/domain/errors"
	"hr-ledger.backend/internal/domain/repositories"
	"hr-ledger.backend/pkg/logger"
)

// importSpec describes how a spreadsheet maps onto one entity's table
type importSpec struct {
	table string
	// renames maps legacy spreadsheet headers (including Korean ones from the
	// earlier panel) onto column names. Headers already in column form pass
	// through untouched.
	renames  map[string]string
	columns  map[string]bool
	required []string
}

var importSpecs = map[string]importSpec{
	"employees": {
		table: "employees",
		renames: map[string]string{
			"사번": "employee_code", "이름": "name", "부서": "department",
			"직급": "position", "입사일": "hire_date", "급여": "salary",
			"전화번호": "phone", "이메일": "email", "상태": "status",
		},
		columns: map[string]bool{
			"employee_code": true, "name": true, "department": true, "position": true,
			"hire_date": true, "salary": true, "phone": true, "email": true, "status": true,
		},
		required: []string{"employee_code", "name"},
	},
	"payroll": {
		table: "payroll",
		renames: map[string]string{
			"사번": "employee_code", "지급일": "payment_date", "기본급": "base_salary",
			"상여금": "bonus", "공제액": "deduction", "실수령액": "net_salary", "비고": "remarks",
		},
		columns: map[string]bool{
			"employee_code": true, "payment_date": true, "base_salary": true,
			"bonus": true, "deduction": true, "net_salary": true, "remarks": true,
		},
		required: []string{"employee_code", "payment_date"},
	},
	"clients": {
		table: "clients",
		renames: map[string]string{
			"거래처코드": "client_code", "거래처명": "client_name", "업종": "business_type",
			"국가": "country", "담당자": "contact_person", "전화번호": "phone",
			"이메일": "email", "주소": "address",
		},
		columns: map[string]bool{
			"client_code": true, "client_name": true, "business_type": true, "country": true,
			"contact_person": true, "phone": true, "email": true, "address": true,
		},
		required: []string{"client_code", "client_name"},
	},
	"sales": {
		table: "sales",
		renames: map[string]string{
			"매출번호": "sales_no", "매출일": "sales_date", "거래처코드": "client_code",
			"품목명": "product_name", "수량": "quantity", "단가": "unit_price",
			"금액": "amount", "통화": "currency", "결제상태": "payment_status",
		},
		columns: map[string]bool{
			"sales_no": true, "sales_date": true, "client_code": true, "product_name": true,
			"quantity": true, "unit_price": true, "amount": true, "currency": true,
			"payment_status": true,
		},
		required: []string{"sales_no", "product_name"},
	},
	"purchases": {
		table: "purchases",
		renames: map[string]string{
			"매입번호": "purchase_no", "매입일": "purchase_date", "공급처코드": "supplier_code",
			"품목명": "product_name", "수량": "quantity", "단가": "unit_price",
			"금액": "amount", "통화": "currency", "결제상태": "payment_status",
		},
		columns: map[string]bool{
			"purchase_no": true, "purchase_date": true, "supplier_code": true,
			"product_name": true, "quantity": true, "unit_price": true, "amount": true,
			"currency": true, "payment_status": true,
		},
		required: []string{"purchase_no", "product_name"},
	},
	"trade_transactions": {
		table: "trade_transactions",
		renames: map[string]string{
			"거래번호": "transaction_no", "거래유형": "transaction_type", "거래일": "transaction_date",
			"거래처코드": "client_code", "품목명": "product_name", "수량": "quantity",
			"단가": "unit_price", "금액": "amount", "통화": "currency",
			"환율": "exchange_rate", "원화금액": "krw_amount", "통관상태": "customs_status",
			"선하증권번호": "bl_no", "비고": "remarks",
		},
		columns: map[string]bool{
			"transaction_no": true, "transaction_type": true, "transaction_date": true,
			"client_code": true, "product_name": true, "quantity": true, "unit_price": true,
			"amount": true, "currency": true, "exchange_rate": true, "krw_amount": true,
			"customs_status": true, "bl_no": true, "remarks": true,
		},
		required: []string{"transaction_no", "product_name"},
	},
}

// dateLayouts are the input formats accepted for *date* columns. All are
// normalized to YYYY-MM-DD.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// ImportResult reports how many spreadsheet rows made it into the table
type ImportResult struct {
	Succeeded int `json:"succeeded"`
	Total     int `json:"total"`
}

// ImportUsecase loads spreadsheet files into entity tables, one insert per row
type ImportUsecase struct {
	gateway repositories.TableGateway
}

// NewImportUsecase creates a new import usecase
func NewImportUsecase(gateway repositories.TableGateway) *ImportUsecase {
	return &ImportUsecase{gateway: gateway}
}

// ImportCSV reads a spreadsheet (first row = header), renames headers onto
// column names, normalizes date columns, blanks missing cells and inserts the
// rows sequentially. Rows that fail to insert are skipped, not rolled back.
func (u *ImportUsecase) ImportCSV(ctx context.Context, entity string, r io.Reader) (*ImportResult, error) {
	spec, ok := importSpecs[entity]
	if !ok {
		return nil, domainerrors.BadRequest(fmt.Sprintf("unknown import target: %s", entity))
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, domainerrors.BadRequest("spreadsheet is empty or unreadable")
	}

	cols := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if renamed, ok := spec.renames[name]; ok {
			name = renamed
		}
		if !spec.columns[name] {
			return nil, domainerrors.BadRequest(fmt.Sprintf("unknown column in header: %s", h))
		}
		cols[i] = name
		seen[name] = true
	}
	var missing []string
	for _, req := range spec.required {
		if !seen[req] {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return nil, domainerrors.NewValidationError(missing...)
	}

	result := &ImportResult{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, domainerrors.BadRequest(fmt.Sprintf("malformed row after %d rows", result.Total))
		}
		result.Total++

		row := map[string]any{
			"id":         uuid.New().String(),
			"created_at": time.Now(),
		}
		for i, col := range cols {
			value := ""
			if i < len(record) {
				value = strings.TrimSpace(record[i])
			}
			if strings.Contains(col, "date") {
				value = normalizeDate(value)
			}
			row[col] = value
		}

		if err := u.gateway.Insert(ctx, spec.table, row); err != nil {
			logger.Warn(ctx, "import row skipped",
				zap.String("entity", entity),
				zap.Int("row", result.Total),
				zap.Error(err))
			continue
		}
		result.Succeeded++
	}

	return result, nil
}

// normalizeDate reformats a cell to YYYY-MM-DD. Values that fit no known
// layout are kept as-is rather than failing the whole file.
func normalizeDate(value string) string {
	if value == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return value
}
