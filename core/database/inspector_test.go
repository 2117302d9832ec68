package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestGetTableColumns_MySQL(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	rows.AddRow("ID", "VARCHAR(36)", "NO", "PRI", nil, "")
	rows.AddRow("Word", "varchar(255)", "NO", "MUL", nil, "")
	rows.AddRow("Version", "INT(11)", "NO", "", "0", "")

	mock.ExpectQuery("SHOW COLUMNS FROM `words`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "words")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	// Field and type names are normalized to lowercase.
	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "varchar(36)", columns[0].Type)
	assert.Equal(t, "version", columns[2].Field)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTableColumns_SQLite(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)

	type probe struct {
		ID   string `gorm:"primaryKey"`
		Name string
	}
	assert.NoError(t, Migrate(db, &probe{}))

	columns, err := GetTableColumns(db, "probes")
	assert.NoError(t, err)

	fields := make([]string, 0, len(columns))
	for _, col := range columns {
		fields = append(fields, col.Field)
	}
	assert.Contains(t, fields, "id")
	assert.Contains(t, fields, "name")
}

func TestGetTableColumns_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SHOW COLUMNS FROM `missing`").WillReturnError(assert.AnError)

	_, err := GetTableColumns(db, "missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}
