package persistence

import (
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/assignment"
	"github.com/assettrack/backend/internal/domain/employee"
	"github.com/assettrack/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupSQLiteDB opens an isolated in-memory database with every table migrated.
// A single connection keeps the shared-cache database alive and serializes writers.
func setupSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.UserModel{},
		&models.AssetModel{},
		&models.MaintenanceRecordModel{},
		&models.EmployeeModel{},
		&models.AssignmentModel{},
		&models.AssignmentAuditLogModel{},
		&models.SequenceCounterModel{},
	))
	require.NoError(t, db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_assignments_active_asset ON assignments (asset_id) WHERE status = 'Active'`,
	).Error)

	return db
}

// newMockGormDB wires GORM's postgres dialector to sqlmock
func newMockGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

var testDay = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestAsset(t *testing.T, assetID, serial string) *asset.Asset {
	t.Helper()
	a, err := asset.NewAsset(asset.NewAssetInput{
		AssetID:      assetID,
		Name:         "Laptop " + assetID,
		Category:     "Laptop",
		SerialNumber: serial,
		PurchaseDate: testDay.AddDate(-1, 0, 0),
		Department:   "Engineering",
	})
	require.NoError(t, err)
	return a
}

func newTestEmployee(t *testing.T, employeeID, email string) *employee.Employee {
	t.Helper()
	e, err := employee.NewEmployee(employee.NewEmployeeInput{
		EmployeeID: employeeID,
		Name:       "Employee " + employeeID,
		Email:      email,
		Phone:      "555-0100",
		Department: "Engineering",
		Position:   "Engineer",
		HireDate:   testDay.AddDate(-2, 0, 0),
	})
	require.NoError(t, err)
	return e
}

func newTestAssignment(t *testing.T, assetID, employeeID uuid.UUID, assignedAt time.Time, accessories ...assignment.Accessory) *assignment.Assignment {
	t.Helper()
	a, err := assignment.NewAssignment(assignment.NewAssignmentInput{
		AssetID:     assetID,
		EmployeeID:  employeeID,
		AssignedBy:  uuid.New(),
		Accessories: assignment.NewAccessorySet(accessories...),
	}, assignedAt)
	require.NoError(t, err)
	return a
}
