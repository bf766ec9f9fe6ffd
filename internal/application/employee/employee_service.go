package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/assettrack/backend/internal/domain/assignment"
	"github.com/assettrack/backend/internal/domain/employee"
	"github.com/assettrack/backend/internal/domain/identity"
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxIDAttempts bounds how many generated IDs are skipped when legacy rows already use them
const maxIDAttempts = 50

// EmployeeService handles the employee registry and the account cascade
type EmployeeService struct {
	employeeRepo   employee.EmployeeRepository
	assignmentRepo assignment.AssignmentRepository
	sequencer      shared.Sequencer
	txScope        TransactionScope
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	assignmentRepo assignment.AssignmentRepository,
	sequencer shared.Sequencer,
	txScope TransactionScope,
	logger *zap.Logger,
) *EmployeeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmployeeService{
		employeeRepo:   employeeRepo,
		assignmentRepo: assignmentRepo,
		sequencer:      sequencer,
		txScope:        txScope,
		logger:         logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *EmployeeService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create registers a new employee
func (s *EmployeeService) Create(ctx context.Context, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	company := employee.Company(strings.TrimSpace(req.Company))

	employeeID, err := s.resolveEmployeeID(ctx, req.EmployeeID, company)
	if err != nil {
		return nil, err
	}

	emailTaken, err := s.employeeRepo.ExistsByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)), nil)
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, employee.ErrDuplicateEmail
	}

	var status employee.Status
	if req.Status != "" {
		status = employee.NormalizeStatus(req.Status)
	}

	e, err := employee.NewEmployee(employee.NewEmployeeInput{
		EmployeeID: employeeID,
		Company:    company,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
		Position:   req.Position,
		Status:     status,
		HireDate:   req.HireDate,
		ExitDate:   req.ExitDate,
		UserID:     req.UserID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Save(ctx, e); err != nil {
		return nil, err
	}
	s.publishDomainEvents(ctx, e)

	s.logger.Info("Employee created",
		zap.String("employee_id", e.EmployeeID),
		zap.String("id", e.ID.String()))

	resp := ToEmployeeResponse(e, 0)
	return &resp, nil
}

// resolveEmployeeID validates a supplied ID or derives the next one from company
func (s *EmployeeService) resolveEmployeeID(ctx context.Context, supplied string, company employee.Company) (string, error) {
	if supplied != "" {
		id := employee.NormalizeEmployeeID(supplied)
		if err := employee.ValidateEmployeeID(id); err != nil {
			return "", err
		}
		taken, err := s.employeeRepo.ExistsByEmployeeID(ctx, id)
		if err != nil {
			return "", err
		}
		if taken {
			return "", employee.ErrDuplicateEmployeeID
		}
		if name, value, ok := employee.SequenceOf(id); ok {
			if err := s.sequencer.EnsureAtLeast(ctx, name, value); err != nil {
				return "", err
			}
		}
		return id, nil
	}

	name, floor, format, err := s.sequenceFor(ctx, company)
	if err != nil {
		return "", err
	}
	for range maxIDAttempts {
		seq, err := s.sequencer.NextValue(ctx, name, floor)
		if err != nil {
			return "", err
		}
		id := format(seq)
		taken, err := s.employeeRepo.ExistsByEmployeeID(ctx, id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
		s.logger.Warn("Skipping generated employee ID already in use", zap.String("employee_id", id))
	}
	return "", fmt.Errorf("no free employee ID after %d attempts", maxIDAttempts)
}

// sequenceFor picks the counter, its floor and the ID format for a company.
// Company counters are floored at the historical maximum so pre-existing IDs are never reissued.
func (s *EmployeeService) sequenceFor(ctx context.Context, company employee.Company) (string, int64, func(int64) string, error) {
	if company == "" {
		return employee.LegacySequenceName, 0, employee.FormatLegacyEmployeeID, nil
	}
	prefix, err := company.Prefix()
	if err != nil {
		return "", 0, nil, err
	}
	historical, err := s.employeeRepo.MaxCompanySequence(ctx, prefix)
	if err != nil {
		return "", 0, nil, err
	}
	floor := max(int64(employee.CompanyIDFloor), historical)
	format := func(seq int64) string { return employee.FormatCompanyEmployeeID(prefix, seq) }
	return employee.CompanySequenceName(prefix), floor, format, nil
}

// GetByID retrieves an employee with the number of assets they hold
func (s *EmployeeService) GetByID(ctx context.Context, id uuid.UUID) (*EmployeeResponse, error) {
	e, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := s.assignmentRepo.CountActiveByEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToEmployeeResponse(e, count)
	return &resp, nil
}

// List returns employees newest-first with their active asset counts
func (s *EmployeeService) List(ctx context.Context, filter ListEmployeesFilter) (*EmployeeListResult, error) {
	domainFilter := employee.Filter{
		ListFilter: shared.ListFilter{Search: filter.Search},
		Department: filter.Department,
	}
	if filter.Status != "" {
		domainFilter.Status = employee.NormalizeStatus(filter.Status)
	}
	var page shared.PageRequest
	if filter.Paginate {
		page = shared.NewPageRequest(filter.Page, filter.Limit)
		domainFilter.Page = &page
	}

	employees, total, err := s.employeeRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(employees))
	for i, e := range employees {
		ids[i] = e.ID
	}
	counts, err := s.assignmentRepo.CountActiveByEmployees(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		items[i] = ToEmployeeResponse(e, counts[e.ID])
	}
	return &EmployeeListResult{
		Items: items,
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
	}, nil
}

// Update applies a partial update. A status change cascades to the linked user.
func (s *EmployeeService) Update(ctx context.Context, id uuid.UUID, req UpdateEmployeeRequest) (*EmployeeResponse, error) {
	var (
		updated *employee.Employee
		count   int64
	)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		e, err := repos.EmployeeRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		count, err = repos.AssignmentRepo().CountActiveByEmployee(ctx, id)
		if err != nil {
			return err
		}

		patch := employee.Patch{
			Name:       req.Name,
			Email:      req.Email,
			Phone:      req.Phone,
			Department: req.Department,
			Position:   req.Position,
			HireDate:   req.HireDate,
			ExitDate:   req.ExitDate,
		}
		if req.Status != nil {
			status := employee.NormalizeStatus(*req.Status)
			patch.Status = &status
			if status == employee.StatusRelieved && !e.IsRelieved() {
				if err := e.CanRelieve(count); err != nil {
					return err
				}
			}
		}
		if req.Email != nil {
			taken, err := repos.EmployeeRepo().ExistsByEmail(ctx, strings.ToLower(strings.TrimSpace(*req.Email)), &e.ID)
			if err != nil {
				return err
			}
			if taken {
				return employee.ErrDuplicateEmail
			}
		}

		oldStatus := e.Status
		if err := e.Apply(patch); err != nil {
			return err
		}
		if err := repos.EmployeeRepo().Save(ctx, e); err != nil {
			return err
		}
		if e.Status != oldStatus {
			if err := s.cascadeAccountStatus(ctx, repos, e); err != nil {
				return err
			}
		}
		updated = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publishDomainEvents(ctx, updated)

	resp := ToEmployeeResponse(updated, count)
	return &resp, nil
}

// Deactivate relieves an employee who holds no assets
func (s *EmployeeService) Deactivate(ctx context.Context, id uuid.UUID) (*EmployeeResponse, error) {
	var relieved *employee.Employee
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		e, err := repos.EmployeeRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		count, err := repos.AssignmentRepo().CountActiveByEmployee(ctx, id)
		if err != nil {
			return err
		}
		if err := e.Relieve(time.Now(), count); err != nil {
			return err
		}
		if err := repos.EmployeeRepo().Save(ctx, e); err != nil {
			return err
		}
		if err := s.cascadeAccountStatus(ctx, repos, e); err != nil {
			return err
		}
		relieved = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publishDomainEvents(ctx, relieved)

	s.logger.Info("Employee relieved", zap.String("employee_id", relieved.EmployeeID))

	resp := ToEmployeeResponse(relieved, 0)
	return &resp, nil
}

// UpdateStatus sets ACTIVE or INACTIVE and clears any exit date
func (s *EmployeeService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*EmployeeResponse, error) {
	var (
		updated *employee.Employee
		count   int64
	)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		e, err := repos.EmployeeRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := e.SetStatus(employee.NormalizeStatus(status)); err != nil {
			return err
		}
		if err := repos.EmployeeRepo().Save(ctx, e); err != nil {
			return err
		}
		if err := s.cascadeAccountStatus(ctx, repos, e); err != nil {
			return err
		}
		count, err = repos.AssignmentRepo().CountActiveByEmployee(ctx, id)
		if err != nil {
			return err
		}
		updated = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publishDomainEvents(ctx, updated)

	resp := ToEmployeeResponse(updated, count)
	return &resp, nil
}

// ActiveAssignmentCount returns how many Active assignments the employee holds
func (s *EmployeeService) ActiveAssignmentCount(ctx context.Context, id uuid.UUID) (*ActiveAssignmentCountResponse, error) {
	if _, err := s.employeeRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	count, err := s.assignmentRepo.CountActiveByEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ActiveAssignmentCountResponse{EmployeeID: id, ActiveCount: count}, nil
}

// NextEmployeeID previews the next generated ID for company without consuming it
func (s *EmployeeService) NextEmployeeID(ctx context.Context, company string) (*NextIDResponse, error) {
	name, floor, format, err := s.sequenceFor(ctx, employee.Company(strings.TrimSpace(company)))
	if err != nil {
		return nil, err
	}
	seq, err := s.sequencer.Peek(ctx, name, floor)
	if err != nil {
		return nil, err
	}
	return &NextIDResponse{NextID: format(seq)}, nil
}

// cascadeAccountStatus mirrors the employee status onto the linked login account.
// A dangling user link is logged and skipped.
func (s *EmployeeService) cascadeAccountStatus(ctx context.Context, repos TransactionalRepositories, e *employee.Employee) error {
	if e.UserID == nil {
		return nil
	}
	err := repos.UserRepo().UpdateStatus(ctx, *e.UserID, identity.UserStatus(e.AccountStatus()))
	if errors.Is(err, identity.ErrUserNotFound) {
		s.logger.Warn("Linked user not found during status cascade",
			zap.String("employee_id", e.EmployeeID),
			zap.String("user_id", e.UserID.String()))
		return nil
	}
	return err
}

func (s *EmployeeService) publishDomainEvents(ctx context.Context, e *employee.Employee) {
	events := e.PendingEvents()
	if s.eventPublisher == nil || len(events) == 0 {
		e.ClearEvents()
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish employee events", zap.Error(err))
	}
	e.ClearEvents()
}
