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

	// A single connection serializes concurrent writers the way postgres
	// row locks do, without tripping sqlite's table-lock errors.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func recordTableDDL(name string) string {
	return `CREATE TABLE ` + name + ` (
		id TEXT PRIMARY KEY,
		number TEXT NOT NULL UNIQUE,
		payment_id TEXT NOT NULL UNIQUE,
		merchant_id TEXT NOT NULL,
		status TEXT NOT NULL,
		required_amount_usd TEXT NOT NULL,
		display_amount TEXT NOT NULL,
		display_currency TEXT NOT NULL,
		required_token TEXT NOT NULL,
		merchant_chain_id TEXT NOT NULL,
		merchant_address TEXT NOT NULL,
		callback_payload TEXT,
		source_txn_hash TEXT,
		source_chain_name TEXT,
		source_token_address TEXT,
		source_token_amount TEXT,
		expired_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`
}

func createOrderTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, recordTableDDL("orders"))
}

func createDepositTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, recordTableDDL("deposits"))
}

func createMerchantTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE merchants (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		business_name TEXT NOT NULL,
		status TEXT NOT NULL,
		default_chain_id TEXT,
		default_address TEXT,
		default_token TEXT,
		pin_hash TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}
