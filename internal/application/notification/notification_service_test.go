package notification

import (
	"context"
	"testing"
	"time"

	ledger "github.com/assettrack/backend/internal/application/assignment"
	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/assignment"
	"github.com/assettrack/backend/internal/domain/employee"
	"github.com/assettrack/backend/internal/domain/identity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func returnedAssignment(t *testing.T, assetID, employeeID uuid.UUID, at time.Time, issued []assignment.Accessory, back ...assignment.Accessory) *assignment.Assignment {
	t.Helper()
	a, err := assignment.NewAssignment(assignment.NewAssignmentInput{
		AssetID:     assetID,
		EmployeeID:  employeeID,
		AssignedBy:  uuid.New(),
		Accessories: issued,
	}, at.Add(-24*time.Hour))
	require.NoError(t, err)
	require.NoError(t, a.Return(assignment.ReturnInput{
		Condition:           assignment.ConditionGood,
		ReturnedAccessories: back,
	}, at))
	return a
}

func TestNotificationService_PendingAccessories(t *testing.T) {
	ctx := context.Background()
	assets := new(MockAssetRepository)
	employees := new(MockEmployeeRepository)
	assignments := new(MockAssignmentRepository)
	users := new(MockUserRepository)
	svc := NewNotificationService(assignments, ledger.NewSummaryLoader(assets, employees, users), nil)

	laptop, err := asset.NewAsset(asset.NewAssetInput{
		AssetID:      "AST-010",
		Name:         "MacBook Pro",
		Category:     "Laptop",
		SerialNumber: "C02",
		PurchaseDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	holder, err := employee.NewEmployee(employee.NewEmployeeInput{
		EmployeeID: "EMP-010",
		Name:       "Arjun Rao",
		Email:      "arjun@example.com",
		Phone:      "555",
		Department: "Sales",
		Position:   "Lead",
		HireDate:   time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	later := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	pending := returnedAssignment(t, laptop.ID, holder.ID, later,
		[]assignment.Accessory{assignment.AccessoryCharger, assignment.AccessoryMouse, assignment.AccessoryMonitor},
		assignment.AccessoryMouse)
	complete := returnedAssignment(t, laptop.ID, holder.ID, earlier,
		[]assignment.Accessory{assignment.AccessoryCharger}, assignment.AccessoryCharger)
	orphan := returnedAssignment(t, uuid.New(), holder.ID, earlier,
		[]assignment.Accessory{assignment.AccessoryHeadphones})

	assignments.On("FindReturned", ctx).Return([]*assignment.Assignment{pending, complete, orphan}, nil)
	assets.On("FindByIDs", ctx, mock.Anything).Return([]*asset.Asset{laptop}, nil)
	employees.On("FindByIDs", ctx, mock.Anything).Return([]*employee.Employee{holder}, nil)
	users.On("FindByIDs", ctx, mock.Anything).Return([]*identity.User{}, nil)

	got, err := svc.PendingAccessories(ctx)

	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, pending.ID, got[0].AssignmentID)
	assert.Equal(t, "Charger", got[0].Accessory)
	assert.Equal(t, "Monitor", got[1].Accessory)
	assert.Equal(t, later, got[0].ReturnedAt)
	require.NotNil(t, got[0].Asset)
	assert.Equal(t, "AST-010", got[0].Asset.AssetID)
	assert.Empty(t, got[0].Asset.Category)
	require.NotNil(t, got[0].Employee)
	assert.Equal(t, "Sales", got[0].Employee.Department)
	assert.Empty(t, got[0].Employee.Email)

	assert.Equal(t, orphan.ID, got[2].AssignmentID)
	assert.Nil(t, got[2].Asset)
	assert.Equal(t, "Headphones", got[2].Accessory)
}

func TestNotificationService_NothingPending(t *testing.T) {
	ctx := context.Background()
	assignments := new(MockAssignmentRepository)
	svc := NewNotificationService(assignments, ledger.NewSummaryLoader(new(MockAssetRepository), new(MockEmployeeRepository), nil), nil)

	assignments.On("FindReturned", ctx).Return([]*assignment.Assignment{}, nil)

	got, err := svc.PendingAccessories(ctx)

	require.NoError(t, err)
	assert.Empty(t, got)
}
