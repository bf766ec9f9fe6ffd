package handler

import (
	"strings"

	employeeapp "github.com/assettrack/backend/internal/application/employee"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EmployeeHandler handles employee registry endpoints
type EmployeeHandler struct {
	BaseHandler
	employeeService *employeeapp.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeService *employeeapp.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// CreateEmployeeRequest is the body for registering an employee
//
//	@Description	employeeId is derived from company when omitted
type CreateEmployeeRequest struct {
	EmployeeID string     `json:"employeeId" binding:"omitempty,max=20" example:"VA1001"`
	Company    string     `json:"company" binding:"omitempty,max=20" example:"V-Accel"`
	Name       string     `json:"name" binding:"required,min=1,max=200" example:"Priya Sharma"`
	Email      string     `json:"email" binding:"required,email,max=200" example:"priya@example.com"`
	Phone      string     `json:"phone" binding:"required,min=1,max=50" example:"+91 98765 43210"`
	Department string     `json:"department" binding:"required,min=1,max=100" example:"Engineering"`
	Position   string     `json:"position" binding:"required,min=1,max=100" example:"Backend Engineer"`
	Status     string     `json:"status" binding:"omitempty,max=20" example:"ACTIVE"`
	HireDate   *Date      `json:"hireDate" binding:"required" swaggertype:"string" example:"2023-04-01"`
	ExitDate   *Date      `json:"exitDate" swaggertype:"string"`
	UserID     *uuid.UUID `json:"userId" swaggertype:"string"`
}

// UpdateEmployeeRequest is a partial employee update; employeeId cannot change
//
//	@Description	Request body for updating an employee
type UpdateEmployeeRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1,max=200"`
	Email      *string `json:"email" binding:"omitempty,email,max=200"`
	Phone      *string `json:"phone" binding:"omitempty,max=50"`
	Department *string `json:"department" binding:"omitempty,min=1,max=100"`
	Position   *string `json:"position" binding:"omitempty,max=100"`
	Status     *string `json:"status" binding:"omitempty,max=20" example:"Relieved"`
	HireDate   *Date   `json:"hireDate" swaggertype:"string"`
	ExitDate   *Date   `json:"exitDate" swaggertype:"string"`
}

// UpdateEmployeeStatusRequest sets an employee ACTIVE or INACTIVE
//
//	@Description	Only ACTIVE and INACTIVE are accepted
type UpdateEmployeeStatusRequest struct {
	Status string `json:"status" binding:"required" example:"INACTIVE"`
}

// Create godoc
// @ID           createEmployee
// @Summary      Register an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        request body CreateEmployeeRequest true "Employee"
// @Success      201 {object} APIResponse[employeeapp.EmployeeResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.employeeService.Create(c.Request.Context(), employeeapp.CreateEmployeeRequest{
		EmployeeID: req.EmployeeID,
		Company:    req.Company,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
		Position:   req.Position,
		Status:     req.Status,
		HireDate:   req.HireDate.Time,
		ExitDate:   req.ExitDate.ptr(),
		UserID:     req.UserID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List godoc
// @ID           listEmployees
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Param        status     query string false "Status filter"
// @Param        department query string false "Department filter"
// @Param        search     query string false "Substring over employeeId, name, email, department"
// @Param        page       query int    false "Page (>=1)"
// @Param        limit      query int    false "Page size (1-50)"
// @Success      200 {object} APIResponse[[]employeeapp.EmployeeResponse]
// @Security     BearerAuth
// @Router       /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	p := readPagination(c)
	result, err := h.employeeService.List(c.Request.Context(), employeeapp.ListEmployeesFilter{
		Status:     c.Query("status"),
		Department: c.Query("department"),
		Search:     p.Search,
		Page:       p.Page,
		Limit:      p.Limit,
		Paginate:   p.Paginate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if p.Paginate {
		h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.Limit)
		return
	}
	h.Success(c, result.Items)
}

// GetByID godoc
// @ID           getEmployee
// @Summary      Get an employee
// @Tags         employees
// @Produce      json
// @Param        id path string true "Employee UUID"
// @Success      200 {object} APIResponse[employeeapp.EmployeeResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.employeeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update godoc
// @ID           updateEmployee
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id      path string                true "Employee UUID"
// @Param        request body UpdateEmployeeRequest true "Fields to change"
// @Success      200 {object} APIResponse[employeeapp.EmployeeResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateEmployeeRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.employeeService.Update(c.Request.Context(), id, employeeapp.UpdateEmployeeRequest{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
		Position:   req.Position,
		Status:     req.Status,
		HireDate:   req.HireDate.ptr(),
		ExitDate:   req.ExitDate.ptr(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateStatus godoc
// @ID           updateEmployeeStatus
// @Summary      Set an employee ACTIVE or INACTIVE
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id      path string                      true "Employee UUID"
// @Param        request body UpdateEmployeeStatusRequest true "New status"
// @Success      200 {object} APIResponse[employeeapp.EmployeeResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /employees/{id}/status [patch]
func (h *EmployeeHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateEmployeeStatusRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.employeeService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Deactivate godoc
// @ID           deactivateEmployee
// @Summary      Relieve an employee
// @Description  Rejected while the employee still holds assets
// @Tags         employees
// @Produce      json
// @Param        id path string true "Employee UUID"
// @Success      200 {object} APIResponse[employeeapp.EmployeeResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /employees/{id}/deactivate [patch]
func (h *EmployeeHandler) Deactivate(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.employeeService.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ActiveAssignments godoc
// @ID           employeeActiveAssignments
// @Summary      Count the assets an employee currently holds
// @Tags         employees
// @Produce      json
// @Param        id path string true "Employee UUID"
// @Success      200 {object} APIResponse[employeeapp.ActiveAssignmentCountResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /employees/{id}/active-assignments [get]
func (h *EmployeeHandler) ActiveAssignments(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.employeeService.ActiveAssignmentCount(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// NextID godoc
// @ID           nextEmployeeID
// @Summary      Preview the next generated employee ID
// @Tags         employees
// @Produce      json
// @Param        company query string false "Company (V-Accel or Axess Technology); empty for the EMP- sequence"
// @Success      200 {object} APIResponse[employeeapp.NextIDResponse]
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /employees/next-id [get]
func (h *EmployeeHandler) NextID(c *gin.Context) {
	resp, err := h.employeeService.NextEmployeeID(c.Request.Context(), strings.TrimSpace(c.Query("company")))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
