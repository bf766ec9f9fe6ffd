package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	assignmentapp "github.com/assettrack/backend/internal/application/assignment"
	eventapp "github.com/assettrack/backend/internal/application/event"
	"github.com/assettrack/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

// AssignmentHandler handles the assignment ledger endpoints
type AssignmentHandler struct {
	BaseHandler
	assignmentService *assignmentapp.AssignmentService
	auditService      *eventapp.AuditService
}

// NewAssignmentHandler creates a new AssignmentHandler
func NewAssignmentHandler(assignmentService *assignmentapp.AssignmentService, auditService *eventapp.AuditService) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
		auditService:      auditService,
	}
}

// CreateAssignmentRequest hands an asset to an employee
//
//	@Description	accessories takes precedence over the legacy accessoriesIssued enum form
type CreateAssignmentRequest struct {
	AssetID           string   `json:"assetId" binding:"required,uuid" example:"5f0c6a8e-3c1f-4c59-9a57-2b1c7d0e9a11"`
	EmployeeID        string   `json:"employeeId" binding:"required,uuid" example:"0b7e3d52-8d7a-4c0e-9a0a-6a3c1f2b4d55"`
	AssignedDate      *Date    `json:"assignedDate" swaggertype:"string" example:"2024-02-01"`
	DueDate           *Date    `json:"dueDate" swaggertype:"string" example:"2024-08-01"`
	Notes             string   `json:"notes" binding:"max=2000"`
	Accessories       []string `json:"accessories" binding:"omitempty,dive,accessory" example:"Charger,Mouse"`
	AccessoriesIssued []string `json:"accessoriesIssued" binding:"omitempty,dive,legacy_accessory" example:"CHARGER"`
}

// ReturnAssignmentRequest closes an assignment
//
//	@Description	condition must be GOOD or DAMAGED; returnedAccessories must be a subset of the issued set
type ReturnAssignmentRequest struct {
	Condition           string   `json:"condition" example:"GOOD"`
	Remarks             string   `json:"remarks" binding:"max=2000"`
	ReturnedAccessories []string `json:"returnedAccessories" binding:"omitempty,dive,accessory"`
}

// LegacyReturnRequest closes an assignment with a business return date
//
//	@Description	Older return shape kept for existing clients
type LegacyReturnRequest struct {
	AssignmentID string  `json:"assignmentId" binding:"required,uuid"`
	ReturnDate   *Date   `json:"returnDate" binding:"required" swaggertype:"string" example:"2024-03-01"`
	Notes        *string `json:"notes" binding:"omitempty,max=2000"`
}

// UpdateAssignmentRequest is a partial ledger update.
// Unknown keys are checked against the forbidden list before binding.
//
//	@Description	Only dueDate, notes, accessories and condition may change while Active; returnedAccessories reconciles a Returned entry
type UpdateAssignmentRequest struct {
	DueDate             *Date     `json:"dueDate" swaggertype:"string"`
	Notes               *string   `json:"notes" binding:"omitempty,max=2000"`
	Accessories         *[]string `json:"accessories" binding:"omitempty,dive,accessory"`
	AccessoriesIssued   *[]string `json:"accessoriesIssued" binding:"omitempty,dive,legacy_accessory"`
	Condition           *string   `json:"condition" example:"DAMAGED"`
	ReturnedAccessories *[]string `json:"returnedAccessories" binding:"omitempty,dive,accessory"`
}

// Create godoc
// @ID           createAssignment
// @Summary      Assign an asset to an employee
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        request body CreateAssignmentRequest true "Assignment"
// @Success      201 {object} APIResponse[assignmentapp.AssignmentResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /assignments [post]
func (h *AssignmentHandler) Create(c *gin.Context) {
	actor, ok := h.currentUserID(c)
	if !ok {
		return
	}
	var req CreateAssignmentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.assignmentService.Create(c.Request.Context(), actor, assignmentapp.CreateAssignmentRequest{
		AssetID:           uuid.MustParse(req.AssetID),
		EmployeeID:        uuid.MustParse(req.EmployeeID),
		AssignedDate:      req.AssignedDate.ptr(),
		DueDate:           req.DueDate.ptr(),
		Notes:             req.Notes,
		Accessories:       req.Accessories,
		AccessoriesIssued: req.AccessoriesIssued,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Return godoc
// @ID           returnAssignment
// @Summary      Return an assigned asset
// @Description  GOOD returns the asset to Available, DAMAGED sends it to In Repair
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        id      path string                  true "Assignment UUID"
// @Param        request body ReturnAssignmentRequest true "Return details"
// @Success      200 {object} APIResponse[assignmentapp.AssignmentResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /assignments/{id}/return [post]
func (h *AssignmentHandler) Return(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req ReturnAssignmentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.assignmentService.Return(c.Request.Context(), id, assignmentapp.ReturnRequest{
		Condition:           req.Condition,
		Remarks:             req.Remarks,
		ReturnedAccessories: req.ReturnedAccessories,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ReturnLegacy godoc
// @ID           returnAssignmentLegacy
// @Summary      Return an assigned asset (legacy shape)
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        request body LegacyReturnRequest true "Return details"
// @Success      200 {object} APIResponse[assignmentapp.AssignmentResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /assignments/return [patch]
func (h *AssignmentHandler) ReturnLegacy(c *gin.Context) {
	var req LegacyReturnRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.assignmentService.ReturnLegacy(c.Request.Context(), assignmentapp.LegacyReturnRequest{
		AssignmentID: uuid.MustParse(req.AssignmentID),
		ReturnDate:   req.ReturnDate.Time,
		Notes:        req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update godoc
// @ID           updateAssignment
// @Summary      Update an assignment
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        id      path string                  true "Assignment UUID"
// @Param        request body UpdateAssignmentRequest true "Fields to change"
// @Success      200 {object} APIResponse[assignmentapp.AssignmentResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /assignments/{id} [patch]
func (h *AssignmentHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	body, err := c.GetRawData()
	if err != nil {
		h.handleBindError(c, err)
		return
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		h.handleBindError(c, err)
		return
	}
	if raw == nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Request body must be a JSON object")
		return
	}
	var req UpdateAssignmentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.handleBindError(c, err)
		return
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	resp, err := h.assignmentService.Update(c.Request.Context(), id, assignmentapp.UpdateAssignmentRequest{
		Keys:                keys,
		DueDate:             req.DueDate.ptr(),
		Notes:               req.Notes,
		Accessories:         req.Accessories,
		AccessoriesIssued:   req.AccessoriesIssued,
		Condition:           req.Condition,
		ReturnedAccessories: req.ReturnedAccessories,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetByID godoc
// @ID           getAssignment
// @Summary      Get an assignment
// @Tags         assignments
// @Produce      json
// @Param        id path string true "Assignment UUID"
// @Success      200 {object} APIResponse[assignmentapp.AssignmentResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /assignments/{id} [get]
func (h *AssignmentHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.assignmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List godoc
// @ID           listAssignments
// @Summary      List assignments
// @Tags         assignments
// @Produce      json
// @Param        employeeId query string false "Employee UUID"
// @Param        assetId    query string false "Asset UUID"
// @Param        status     query string false "Active or Returned"
// @Success      200 {object} APIResponse[[]assignmentapp.AssignmentResponse]
// @Security     BearerAuth
// @Router       /assignments [get]
func (h *AssignmentHandler) List(c *gin.Context) {
	filter, ok := h.readFilter(c)
	if !ok {
		return
	}
	filter.Status = c.Query("status")
	resp, err := h.assignmentService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// History godoc
// @ID           assignmentHistory
// @Summary      Assignment history for an asset or employee
// @Tags         assignments
// @Produce      json
// @Param        employeeId query string false "Employee UUID"
// @Param        assetId    query string false "Asset UUID"
// @Success      200 {object} APIResponse[[]assignmentapp.AssignmentResponse]
// @Security     BearerAuth
// @Router       /assignments/history [get]
func (h *AssignmentHandler) History(c *gin.Context) {
	filter, ok := h.readFilter(c)
	if !ok {
		return
	}
	resp, err := h.assignmentService.History(c.Request.Context(), filter.AssetID, filter.EmployeeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Audit godoc
// @ID           assignmentAudit
// @Summary      Audit trail of an assignment
// @Tags         assignments
// @Produce      json
// @Param        id path string true "Assignment UUID"
// @Success      200 {object} APIResponse[[]eventapp.AuditEntryResponse]
// @Security     BearerAuth
// @Router       /assignments/{id}/audit [get]
func (h *AssignmentHandler) Audit(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	if h.auditService == nil {
		h.HandleError(c, errors.New("audit trail not configured"))
		return
	}
	resp, err := h.auditService.Trail(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

func (h *AssignmentHandler) readFilter(c *gin.Context) (assignmentapp.ListAssignmentsFilter, bool) {
	var filter assignmentapp.ListAssignmentsFilter
	employeeID, ok := h.queryID(c, "employeeId")
	if !ok {
		return filter, false
	}
	assetID, ok := h.queryID(c, "assetId")
	if !ok {
		return filter, false
	}
	filter.EmployeeID = employeeID
	filter.AssetID = assetID
	return filter, true
}
