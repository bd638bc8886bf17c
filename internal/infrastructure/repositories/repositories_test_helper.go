package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE,
		name TEXT,
		password_hash TEXT,
		role TEXT,
		status TEXT,
		email_verified BOOLEAN,
		verification_code TEXT,
		verification_expires_at DATETIME,
		verification_attempts INTEGER DEFAULT 0,
		approved_at DATETIME,
		last_login DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createEmployeeTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE employees (
		id TEXT PRIMARY KEY,
		employee_code TEXT NOT NULL,
		name TEXT NOT NULL,
		department TEXT,
		position TEXT,
		hire_date TEXT,
		salary INTEGER DEFAULT 0,
		phone TEXT,
		email TEXT,
		status TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createPayrollTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE payroll (
		id TEXT PRIMARY KEY,
		employee_code TEXT NOT NULL,
		payment_date TEXT NOT NULL,
		base_salary INTEGER DEFAULT 0,
		bonus INTEGER DEFAULT 0,
		deduction INTEGER DEFAULT 0,
		net_salary INTEGER DEFAULT 0,
		remarks TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createClientTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE clients (
		id TEXT PRIMARY KEY,
		client_code TEXT NOT NULL,
		client_name TEXT NOT NULL,
		business_type TEXT,
		country TEXT,
		contact_person TEXT,
		phone TEXT,
		email TEXT,
		address TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createSalesTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE sales (
		id TEXT PRIMARY KEY,
		sales_no TEXT NOT NULL,
		sales_date TEXT,
		client_code TEXT,
		product_name TEXT NOT NULL,
		quantity REAL DEFAULT 0,
		unit_price REAL DEFAULT 0,
		amount REAL DEFAULT 0,
		currency TEXT,
		payment_status TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createPurchaseTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE purchases (
		id TEXT PRIMARY KEY,
		purchase_no TEXT NOT NULL,
		purchase_date TEXT,
		supplier_code TEXT,
		product_name TEXT NOT NULL,
		quantity REAL DEFAULT 0,
		unit_price REAL DEFAULT 0,
		amount REAL DEFAULT 0,
		currency TEXT,
		payment_status TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createTradeTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE trade_transactions (
		id TEXT PRIMARY KEY,
		transaction_no TEXT NOT NULL,
		transaction_type TEXT,
		transaction_date TEXT,
		client_code TEXT,
		product_name TEXT NOT NULL,
		quantity REAL DEFAULT 0,
		unit_price REAL DEFAULT 0,
		amount REAL DEFAULT 0,
		currency TEXT,
		exchange_rate REAL DEFAULT 0,
		krw_amount REAL DEFAULT 0,
		customs_status TEXT,
		bl_no TEXT,
		remarks TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
