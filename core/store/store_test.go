package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	gomysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// tagRow mirrors the shared tags lookup table, the smallest real user of
// the primitive.
type tagRow struct {
	ID   uint   `gorm:"column:id;primaryKey"`
	Code string `gorm:"column:code"`
}

func (tagRow) TableName() string { return "tags" }

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	// The primitive always runs inside the orchestrator's transaction, so
	// the per-statement default transaction is disabled here as it is there.
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestFindOrCreate_Inserts(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM `tags`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code"}))
	mock.ExpectExec("INSERT INTO `tags`").
		WithArgs("carrier").
		WillReturnResult(sqlmock.NewResult(7, 1))

	row := tagRow{Code: "carrier"}
	inserted, err := FindOrCreate(db, &row, map[string]any{"code": "carrier"})
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, uint(7), row.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOrCreate_FindsExisting(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM `tags`").
		WithArgs("carrier", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code"}).AddRow(3, "carrier"))

	row := tagRow{Code: "carrier"}
	inserted, err := FindOrCreate(db, &row, map[string]any{"code": "carrier"})
	require.NoError(t, err)

	// Pre-existing state must be observed, never altered.
	assert.False(t, inserted)
	assert.Equal(t, uint(3), row.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOrCreate_DuplicateKeyBackstop(t *testing.T) {
	db, mock := setupMockDB(t)

	// First lookup sees nothing, the insert loses the race, the re-fetch
	// resolves to the row the other writer created.
	mock.ExpectQuery("SELECT \\* FROM `tags`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code"}))
	mock.ExpectExec("INSERT INTO `tags`").
		WillReturnError(&gomysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectQuery("SELECT \\* FROM `tags`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code"}).AddRow(9, "carrier"))

	row := tagRow{Code: "carrier"}
	inserted, err := FindOrCreate(db, &row, map[string]any{"code": "carrier"})
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.Equal(t, uint(9), row.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOrCreate_NoDefiniteResult(t *testing.T) {
	db, mock := setupMockDB(t)

	// Duplicate key reported but the re-fetch finds nothing: fail loudly
	// rather than return a partial result.
	mock.ExpectQuery("SELECT \\* FROM `tags`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code"}))
	mock.ExpectExec("INSERT INTO `tags`").
		WillReturnError(&gomysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectQuery("SELECT \\* FROM `tags`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code"}))

	row := tagRow{Code: "carrier"}
	_, err := FindOrCreate(db, &row, map[string]any{"code": "carrier"})
	assert.ErrorIs(t, err, ErrNoDefiniteResult)
}

func TestFindOrCreate_EmptyKey(t *testing.T) {
	db, _ := setupMockDB(t)

	row := tagRow{Code: "carrier"}
	_, err := FindOrCreate(db, &row, nil)
	assert.ErrorIs(t, err, ErrNoDefiniteResult)
}

func TestFindOrCreate_Projection(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT `id`,`code` FROM `tags`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code"}).AddRow(4, "carrier"))

	row := tagRow{Code: "carrier"}
	inserted, err := FindOrCreate(db, &row, map[string]any{"code": "carrier"}, WithReturning("id", "code"))
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.Equal(t, uint(4), row.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
