package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/assignment"
	"github.com/assettrack/backend/internal/domain/employee"
)

// LifecycleSnapshot is one reading of the inventory and ledger totals
type LifecycleSnapshot struct {
	CollectedAt        time.Time
	AssetsByStatus     map[asset.Status]int64
	ActiveAssignments  int64
	OverdueAssignments int64
	PendingAccessories int64
	ActiveEmployees    int64
}

// SnapshotSource produces snapshots
type SnapshotSource interface {
	Snapshot(ctx context.Context, now time.Time) (*LifecycleSnapshot, error)
}

// SnapshotSink consumes snapshots
type SnapshotSink interface {
	Observe(ctx context.Context, snap *LifecycleSnapshot)
}

// RepositorySource reads a snapshot straight from the repositories
type RepositorySource struct {
	assets      asset.AssetRepository
	employees   employee.EmployeeRepository
	assignments assignment.AssignmentRepository
}

// NewRepositorySource creates a new RepositorySource
func NewRepositorySource(
	assets asset.AssetRepository,
	employees employee.EmployeeRepository,
	assignments assignment.AssignmentRepository,
) *RepositorySource {
	return &RepositorySource{assets: assets, employees: employees, assignments: assignments}
}

// Snapshot counts every gauge; every status appears even when zero
func (s *RepositorySource) Snapshot(ctx context.Context, now time.Time) (*LifecycleSnapshot, error) {
	byStatus, err := s.assets.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count assets: %w", err)
	}
	snap := &LifecycleSnapshot{CollectedAt: now, AssetsByStatus: make(map[asset.Status]int64)}
	for _, st := range asset.AllStatuses() {
		snap.AssetsByStatus[st] = byStatus[st]
	}

	if snap.ActiveEmployees, err = s.employees.CountByStatus(ctx, employee.StatusActive); err != nil {
		return nil, fmt.Errorf("count employees: %w", err)
	}
	if snap.ActiveAssignments, err = s.assignments.CountActive(ctx); err != nil {
		return nil, fmt.Errorf("count active assignments: %w", err)
	}
	if snap.OverdueAssignments, err = s.assignments.CountOverdue(ctx, now); err != nil {
		return nil, fmt.Errorf("count overdue assignments: %w", err)
	}

	returned, err := s.assignments.FindReturned(ctx)
	if err != nil {
		return nil, fmt.Errorf("load returned assignments: %w", err)
	}
	for _, a := range returned {
		snap.PendingAccessories += int64(len(a.PendingAccessories()))
	}
	return snap, nil
}
