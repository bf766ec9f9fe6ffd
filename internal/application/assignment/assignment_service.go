package assignment

import (
	"context"
	"time"

	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/assignment"
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AssignmentService runs the asset ledger state machine.
// Every mutation and the asset status change it implies commit together;
// domain events are published only after the commit.
type AssignmentService struct {
	assignmentRepo assignment.AssignmentRepository
	summaries      *SummaryLoader
	txScope        TransactionScope
	eventPublisher shared.EventPublisher
	clock          func() time.Time
	logger         *zap.Logger
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(
	assignmentRepo assignment.AssignmentRepository,
	summaries *SummaryLoader,
	txScope TransactionScope,
	logger *zap.Logger,
) *AssignmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		summaries:      summaries,
		txScope:        txScope,
		clock:          time.Now,
		logger:         logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *AssignmentService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetClock replaces the time source
func (s *AssignmentService) SetClock(clock func() time.Time) {
	s.clock = clock
}

// Create opens an Active assignment and marks the asset Assigned
func (s *AssignmentService) Create(ctx context.Context, actor uuid.UUID, req CreateAssignmentRequest) (*AssignmentResponse, error) {
	accessories, err := parseIssuedAccessories(req.Accessories, req.AccessoriesIssued)
	if err != nil {
		return nil, err
	}
	now := s.clock()

	var (
		created *assignment.Assignment
		held    *asset.Asset
	)
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		a, err := repos.AssetRepo().FindByIDForUpdate(ctx, req.AssetID)
		if err != nil {
			return err
		}
		active, err := repos.AssignmentRepo().ExistsActiveForAsset(ctx, a.ID)
		if err != nil {
			return err
		}
		if active {
			return assignment.ErrAlreadyAssigned
		}
		if !a.IsAvailable() {
			return asset.ErrAssetNotAvailable
		}
		if _, err := repos.EmployeeRepo().FindByID(ctx, req.EmployeeID); err != nil {
			return err
		}

		entry, err := assignment.NewAssignment(assignment.NewAssignmentInput{
			AssetID:      a.ID,
			EmployeeID:   req.EmployeeID,
			AssignedBy:   actor,
			AssignedDate: req.AssignedDate,
			DueDate:      req.DueDate,
			Notes:        req.Notes,
			Accessories:  accessories,
		}, now)
		if err != nil {
			return err
		}
		if err := a.AssignTo(req.EmployeeID); err != nil {
			return err
		}
		if err := repos.AssignmentRepo().Save(ctx, entry); err != nil {
			return err
		}
		if err := repos.AssetRepo().Save(ctx, a); err != nil {
			return err
		}
		created, held = entry, a
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publishDomainEvents(ctx, created, held)

	s.logger.Info("Asset assigned",
		zap.String("assignment_id", created.ID.String()),
		zap.String("asset", held.AssetID),
		zap.String("employee_id", req.EmployeeID.String()))

	return s.render(ctx, created)
}

// Return closes an Active assignment with a condition. The asset becomes
// Available when GOOD and In Repair when DAMAGED.
func (s *AssignmentService) Return(ctx context.Context, id uuid.UUID, req ReturnRequest) (*AssignmentResponse, error) {
	condition, err := assignment.ParseCondition(req.Condition)
	if err != nil {
		return nil, err
	}
	returned, err := assignment.ParseAccessorySet(req.ReturnedAccessories)
	if err != nil {
		return nil, err
	}
	now := s.clock()

	closed, released, err := s.close(ctx, id, func(entry *assignment.Assignment) (asset.Status, error) {
		err := entry.Return(assignment.ReturnInput{
			Condition:           condition,
			Remarks:             req.Remarks,
			ReturnedAccessories: returned,
		}, now)
		return condition.AssetStatusAfterReturn(), err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Asset returned",
		zap.String("assignment_id", closed.ID.String()),
		zap.String("asset", released.AssetID),
		zap.String("condition", string(condition)))

	return s.render(ctx, closed)
}

// ReturnLegacy closes an assignment with an explicit return date; the asset becomes Available
func (s *AssignmentService) ReturnLegacy(ctx context.Context, req LegacyReturnRequest) (*AssignmentResponse, error) {
	now := s.clock()
	closed, _, err := s.close(ctx, req.AssignmentID, func(entry *assignment.Assignment) (asset.Status, error) {
		return asset.StatusAvailable, entry.ReturnLegacy(req.ReturnDate, req.Notes, now)
	})
	if err != nil {
		return nil, err
	}
	return s.render(ctx, closed)
}

// close runs a return transition and releases the asset in one transaction
func (s *AssignmentService) close(
	ctx context.Context,
	id uuid.UUID,
	transition func(*assignment.Assignment) (asset.Status, error),
) (*assignment.Assignment, *asset.Asset, error) {
	var (
		closed   *assignment.Assignment
		released *asset.Asset
	)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		entry, err := repos.AssignmentRepo().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		next, err := transition(entry)
		if err != nil {
			return err
		}
		a, err := repos.AssetRepo().FindByIDForUpdate(ctx, entry.AssetID)
		if err != nil {
			return err
		}
		if err := a.Release(next); err != nil {
			return err
		}
		if err := repos.AssignmentRepo().Save(ctx, entry); err != nil {
			return err
		}
		if err := repos.AssetRepo().Save(ctx, a); err != nil {
			return err
		}
		closed, released = entry, a
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	s.publishDomainEvents(ctx, closed, released)
	return closed, released, nil
}

// Update edits an Active assignment, or reconciles returned accessories on a
// Returned one when ReturnedAccessories is present.
func (s *AssignmentService) Update(ctx context.Context, id uuid.UUID, req UpdateAssignmentRequest) (*AssignmentResponse, error) {
	if err := assignment.CheckPatchKeys(req.Keys); err != nil {
		return nil, err
	}
	patch, err := buildPatch(req)
	if err != nil {
		return nil, err
	}
	now := s.clock()

	var updated *assignment.Assignment
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		entry, err := repos.AssignmentRepo().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := entry.Update(patch, now); err != nil {
			return err
		}
		if err := repos.AssignmentRepo().Save(ctx, entry); err != nil {
			return err
		}
		updated = entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publishDomainEvents(ctx, updated)

	return s.render(ctx, updated)
}

// GetByID returns one summary-populated ledger entry
func (s *AssignmentService) GetByID(ctx context.Context, id uuid.UUID) (*AssignmentResponse, error) {
	entry, err := s.assignmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, entry)
}

// List returns ledger entries newest-assigned first
func (s *AssignmentService) List(ctx context.Context, filter ListAssignmentsFilter) ([]AssignmentResponse, error) {
	domainFilter := assignment.Filter{
		EmployeeID: filter.EmployeeID,
		AssetID:    filter.AssetID,
	}
	if filter.Status != "" {
		status := assignment.Status(filter.Status)
		if !status.IsValid() {
			return nil, shared.NewFieldError("status", "Status must be either Active or Returned")
		}
		domainFilter.Status = status
	}
	entries, err := s.assignmentRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	return s.renderAll(ctx, entries)
}

// History is the full audit trail for an asset and/or employee, across every status
func (s *AssignmentService) History(ctx context.Context, assetID, employeeID *uuid.UUID) ([]AssignmentResponse, error) {
	return s.List(ctx, ListAssignmentsFilter{AssetID: assetID, EmployeeID: employeeID})
}

func (s *AssignmentService) render(ctx context.Context, entry *assignment.Assignment) (*AssignmentResponse, error) {
	items, err := s.renderAll(ctx, []*assignment.Assignment{entry})
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

func (s *AssignmentService) renderAll(ctx context.Context, entries []*assignment.Assignment) ([]AssignmentResponse, error) {
	summaries, err := s.summaries.Load(ctx, entries)
	if err != nil {
		return nil, err
	}
	now := s.clock()
	out := make([]AssignmentResponse, len(entries))
	for i, e := range entries {
		out[i] = RenderAssignment(e, summaries, now)
	}
	return out, nil
}

func (s *AssignmentService) publishDomainEvents(ctx context.Context, roots ...shared.AggregateRoot) {
	var events []shared.DomainEvent
	for _, r := range roots {
		events = append(events, r.PendingEvents()...)
		r.ClearEvents()
	}
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish ledger events", zap.Error(err))
	}
}

// parseIssuedAccessories reads the label form, falling back to the legacy enum form
func parseIssuedAccessories(labels, legacy []string) (assignment.AccessorySet, error) {
	if labels != nil {
		return assignment.ParseAccessorySet(labels)
	}
	if legacy != nil {
		return assignment.ParseLegacyAccessorySet(legacy)
	}
	return assignment.AccessorySet{}, nil
}

func buildPatch(req UpdateAssignmentRequest) (assignment.Patch, error) {
	patch := assignment.Patch{
		DueDate: req.DueDate,
		Notes:   req.Notes,
	}
	if req.Accessories != nil || req.AccessoriesIssued != nil {
		var labels, legacy []string
		if req.Accessories != nil {
			labels = *req.Accessories
		} else {
			legacy = *req.AccessoriesIssued
		}
		set, err := parseIssuedAccessories(labels, legacy)
		if err != nil {
			return patch, err
		}
		patch.Accessories = &set
	}
	if req.Condition != nil {
		c, err := assignment.ParseCondition(*req.Condition)
		if err != nil {
			return patch, err
		}
		patch.Condition = &c
	}
	if req.ReturnedAccessories != nil {
		set, err := assignment.ParseAccessorySet(*req.ReturnedAccessories)
		if err != nil {
			return patch, err
		}
		patch.ReturnedAccessories = &set
	}
	return patch, nil
}
