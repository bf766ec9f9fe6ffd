package assignment

import (
	"context"

	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/assignment"
	"github.com/assettrack/backend/internal/domain/employee"
	"github.com/assettrack/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// Summaries holds the projections referenced by a batch of assignments
type Summaries struct {
	assets    map[uuid.UUID]*AssetSummary
	employees map[uuid.UUID]*EmployeeSummary
	users     map[uuid.UUID]*UserSummary
}

// Asset returns the summary for id, or nil
func (s *Summaries) Asset(id uuid.UUID) *AssetSummary { return s.assets[id] }

// Employee returns the summary for id, or nil
func (s *Summaries) Employee(id uuid.UUID) *EmployeeSummary { return s.employees[id] }

// User returns the summary for id, or nil
func (s *Summaries) User(id uuid.UUID) *UserSummary { return s.users[id] }

// SummaryLoader batch-loads the asset, employee and user rows a list of
// assignments points at, one query per table.
type SummaryLoader struct {
	assetRepo    asset.AssetRepository
	employeeRepo employee.EmployeeRepository
	userRepo     identity.UserRepository
}

// NewSummaryLoader creates a new SummaryLoader
func NewSummaryLoader(
	assetRepo asset.AssetRepository,
	employeeRepo employee.EmployeeRepository,
	userRepo identity.UserRepository,
) *SummaryLoader {
	return &SummaryLoader{
		assetRepo:    assetRepo,
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
	}
}

// Load resolves the summaries for every reference in assignments
func (l *SummaryLoader) Load(ctx context.Context, assignments []*assignment.Assignment) (*Summaries, error) {
	s := &Summaries{
		assets:    make(map[uuid.UUID]*AssetSummary),
		employees: make(map[uuid.UUID]*EmployeeSummary),
		users:     make(map[uuid.UUID]*UserSummary),
	}
	if len(assignments) == 0 {
		return s, nil
	}

	var assetIDs, employeeIDs, userIDs []uuid.UUID
	seen := make(map[uuid.UUID]struct{})
	collect := func(dst *[]uuid.UUID, id uuid.UUID) {
		if _, ok := seen[id]; ok || id == uuid.Nil {
			return
		}
		seen[id] = struct{}{}
		*dst = append(*dst, id)
	}
	for _, a := range assignments {
		collect(&assetIDs, a.AssetID)
		collect(&employeeIDs, a.EmployeeID)
		collect(&userIDs, a.AssignedBy)
	}

	assets, err := l.assetRepo.FindByIDs(ctx, assetIDs)
	if err != nil {
		return nil, err
	}
	for _, a := range assets {
		s.assets[a.ID] = &AssetSummary{
			ID:           a.ID,
			AssetID:      a.AssetID,
			Name:         a.Name,
			Category:     a.Category,
			SerialNumber: a.SerialNumber,
			Status:       string(a.Status),
		}
	}

	employees, err := l.employeeRepo.FindByIDs(ctx, employeeIDs)
	if err != nil {
		return nil, err
	}
	for _, e := range employees {
		s.employees[e.ID] = &EmployeeSummary{
			ID:         e.ID,
			EmployeeID: e.EmployeeID,
			Name:       e.Name,
			Email:      e.Email,
			Department: e.Department,
		}
	}

	if l.userRepo != nil {
		users, err := l.userRepo.FindByIDs(ctx, userIDs)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			s.users[u.ID] = &UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
		}
	}
	return s, nil
}
