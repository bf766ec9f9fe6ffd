// Package dashboard computes point-in-time inventory statistics.
package dashboard

import (
	"context"
	"time"

	ledger "github.com/assettrack/backend/internal/application/assignment"
	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/assignment"
	"github.com/assettrack/backend/internal/domain/employee"
	"go.uber.org/zap"
)

// RecentAssignmentsLimit is how many active assignments the dashboard shows
const RecentAssignmentsLimit = 10

// Stats is the dashboard payload
type Stats struct {
	TotalAssets       int64                       `json:"totalAssets"`
	AvailableAssets   int64                       `json:"availableAssets"`
	AssignedAssets    int64                       `json:"assignedAssets"`
	AssetsInRepair    int64                       `json:"assetsInRepair"`
	TotalEmployees    int64                       `json:"totalEmployees"`
	ActiveAssignments int64                       `json:"activeAssignments"`
	OverdueAssets     int64                       `json:"overdueAssets"`
	RecentAssignments []ledger.AssignmentResponse `json:"recentAssignments"`
}

// DashboardService aggregates counts across the registries and the ledger
type DashboardService struct {
	assetRepo      asset.AssetRepository
	employeeRepo   employee.EmployeeRepository
	assignmentRepo assignment.AssignmentRepository
	summaries      *ledger.SummaryLoader
	clock          func() time.Time
	logger         *zap.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	assetRepo asset.AssetRepository,
	employeeRepo employee.EmployeeRepository,
	assignmentRepo assignment.AssignmentRepository,
	summaries *ledger.SummaryLoader,
	logger *zap.Logger,
) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		assetRepo:      assetRepo,
		employeeRepo:   employeeRepo,
		assignmentRepo: assignmentRepo,
		summaries:      summaries,
		clock:          time.Now,
		logger:         logger,
	}
}

// SetClock replaces the time source
func (s *DashboardService) SetClock(clock func() time.Time) {
	s.clock = clock
}

// Stats recomputes every figure; nothing is cached
func (s *DashboardService) Stats(ctx context.Context) (*Stats, error) {
	now := s.clock()

	byStatus, err := s.assetRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	var total int64
	for _, n := range byStatus {
		total += n
	}

	activeEmployees, err := s.employeeRepo.CountByStatus(ctx, employee.StatusActive)
	if err != nil {
		return nil, err
	}
	active, err := s.assignmentRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	overdue, err := s.assignmentRepo.CountOverdue(ctx, now)
	if err != nil {
		return nil, err
	}

	recent, err := s.assignmentRepo.FindRecentActive(ctx, RecentAssignmentsLimit)
	if err != nil {
		return nil, err
	}
	summaries, err := s.summaries.Load(ctx, recent)
	if err != nil {
		return nil, err
	}
	items := make([]ledger.AssignmentResponse, len(recent))
	for i, a := range recent {
		items[i] = ledger.RenderAssignment(a, summaries, now)
	}

	return &Stats{
		TotalAssets:       total,
		AvailableAssets:   byStatus[asset.StatusAvailable],
		AssignedAssets:    byStatus[asset.StatusAssigned],
		AssetsInRepair:    byStatus[asset.StatusInRepair],
		TotalEmployees:    activeEmployees,
		ActiveAssignments: active,
		OverdueAssets:     overdue,
		RecentAssignments: items,
	}, nil
}
