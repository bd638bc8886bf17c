package tablestore

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	domainerrors "hr-ledger.backend/internal/domain/errors"
)

// managedTables is the set of tables the gateway may touch. Anything else is
// rejected before SQL is built.
var managedTables = map[string]bool{
	"employees":          true,
	"payroll":            true,
	"clients":            true,
	"sales":              true,
	"purchases":          true,
	"trade_transactions": true,
}

var identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Gateway provides generic row access by table name with conjunctive equality
// filters. Update and Delete refuse to run without at least one filter.
type Gateway struct {
	db *gorm.DB
}

// NewGateway creates a new table gateway
func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

// Select returns all rows matching the filters. An empty filter map returns
// the whole table.
func (g *Gateway) Select(ctx context.Context, table string, filters map[string]any) ([]map[string]any, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}
	where, args, err := buildWhere(filters)
	if err != nil {
		return nil, err
	}
	var rows []map[string]any
	q := fmt.Sprintf("SELECT * FROM %s%s", table, where)
	if err := g.db.WithContext(ctx).Raw(q, args...).Scan(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	return rows, nil
}

// Insert adds one row
func (g *Gateway) Insert(ctx context.Context, table string, row map[string]any) error {
	if err := checkTable(table); err != nil {
		return err
	}
	if len(row) == 0 {
		return domainerrors.ErrInvalidInput
	}
	cols := sortedKeys(row)
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, c := range cols {
		if err := checkColumn(c); err != nil {
			return err
		}
		placeholders[i] = "?"
		args[i] = row[c]
	}
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))
	if err := g.db.WithContext(ctx).Exec(q, args...).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update sets the given values on rows matching the filters and returns the
// number of rows changed. At least one filter is required.
func (g *Gateway) Update(ctx context.Context, table string, values map[string]any, filters map[string]any) (int64, error) {
	if err := checkTable(table); err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, domainerrors.ErrInvalidInput
	}
	if len(filters) == 0 {
		return 0, domainerrors.ErrMissingFilter
	}
	setCols := sortedKeys(values)
	sets := make([]string, len(setCols))
	args := make([]any, 0, len(values)+len(filters))
	for i, c := range setCols {
		if err := checkColumn(c); err != nil {
			return 0, err
		}
		sets[i] = c + " = ?"
		args = append(args, values[c])
	}
	where, whereArgs, err := buildWhere(filters)
	if err != nil {
		return 0, err
	}
	args = append(args, whereArgs...)
	q := fmt.Sprintf("UPDATE %s SET %s%s", table, strings.Join(sets, ", "), where)
	result := g.db.WithContext(ctx).Exec(q, args...)
	if result.Error != nil {
		return 0, translateError(result.Error)
	}
	return result.RowsAffected, nil
}

// Delete removes rows matching the filters and returns the number removed.
// At least one filter is required.
func (g *Gateway) Delete(ctx context.Context, table string, filters map[string]any) (int64, error) {
	if err := checkTable(table); err != nil {
		return 0, err
	}
	if len(filters) == 0 {
		return 0, domainerrors.ErrMissingFilter
	}
	where, args, err := buildWhere(filters)
	if err != nil {
		return 0, err
	}
	q := fmt.Sprintf("DELETE FROM %s%s", table, where)
	result := g.db.WithContext(ctx).Exec(q, args...)
	if result.Error != nil {
		return 0, translateError(result.Error)
	}
	return result.RowsAffected, nil
}

func checkTable(table string) error {
	if !managedTables[table] {
		return domainerrors.BadRequest(fmt.Sprintf("unknown table: %s", table))
	}
	return nil
}

func checkColumn(col string) error {
	if !identifierPattern.MatchString(col) {
		return domainerrors.BadRequest(fmt.Sprintf("invalid column name: %s", col))
	}
	return nil
}

func buildWhere(filters map[string]any) (string, []any, error) {
	if len(filters) == 0 {
		return "", nil, nil
	}
	cols := sortedKeys(filters)
	conds := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, c := range cols {
		if err := checkColumn(c); err != nil {
			return "", nil, err
		}
		conds[i] = c + " = ?"
		args[i] = filters[c]
	}
	return " WHERE " + strings.Join(conds, " AND "), args, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// translateError maps a recursive row-level policy failure to the domain
// policy error so handlers can return remediation guidance instead of a bare
// server error. SQLSTATE 42P17 is checked structurally first, with a message
// match as fallback for drivers that flatten the error.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "42P17" {
		return domainerrors.PolicyError(err)
	}
	if strings.Contains(err.Error(), "infinite recursion") {
		return domainerrors.PolicyError(err)
	}
	return err
}
