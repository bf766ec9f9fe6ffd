package handler

import (
	assetapp "github.com/assettrack/backend/internal/application/asset"
	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AssetHandler handles asset registry endpoints
type AssetHandler struct {
	BaseHandler
	assetService *assetapp.AssetService
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(assetService *assetapp.AssetService) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// CreateAssetRequest is the body for registering an asset
//
//	@Description	Request body for creating an asset. assetId is generated when omitted.
type CreateAssetRequest struct {
	AssetID            string `json:"assetId" binding:"omitempty,asset_id" example:"AST-001"`
	Name               string `json:"name" binding:"required,min=1,max=200" example:"MacBook Pro 14"`
	Category           string `json:"category" binding:"required,min=1,max=100" example:"Laptop"`
	SerialNumber       string `json:"serialNumber" binding:"required,min=1,max=100" example:"C02XK1JHJG5H"`
	Status             string `json:"status" binding:"omitempty,max=20" example:"Available"`
	PurchaseDate       *Date  `json:"purchaseDate" binding:"required" swaggertype:"string" example:"2024-01-15"`
	WarrantyExpiration *Date  `json:"warrantyExpiration" swaggertype:"string" example:"2027-01-15"`
	Department         string `json:"department" binding:"max=100" example:"Engineering"`
}

// MaintenanceRecordRequest is one maintenance entry
//
//	@Description	A maintenance record appended to an asset's history
type MaintenanceRecordRequest struct {
	Date        *Date           `json:"date" binding:"required" swaggertype:"string" example:"2024-06-01"`
	Type        string          `json:"type" binding:"required,min=1,max=100" example:"Battery replacement"`
	Description string          `json:"description" binding:"required,min=1,max=1000" example:"Replaced swollen battery"`
	Cost        decimal.Decimal `json:"cost" swaggertype:"number" example:"129.99"`
	PerformedBy string          `json:"performedBy" binding:"required,min=1,max=200" example:"Apple Store"`
}

// UpdateAssetRequest is a partial asset update
//
//	@Description	Request body for updating an asset; omitted fields are unchanged
type UpdateAssetRequest struct {
	AssetID            *string                    `json:"assetId" binding:"omitempty,asset_id" example:"AST-002"`
	Name               *string                    `json:"name" binding:"omitempty,min=1,max=200"`
	Category           *string                    `json:"category" binding:"omitempty,min=1,max=100"`
	SerialNumber       *string                    `json:"serialNumber" binding:"omitempty,min=1,max=100"`
	Status             *string                    `json:"status" binding:"omitempty,max=20" example:"In Repair"`
	PurchaseDate       *Date                      `json:"purchaseDate" swaggertype:"string"`
	WarrantyExpiration *Date                      `json:"warrantyExpiration" swaggertype:"string"`
	Department         *string                    `json:"department" binding:"omitempty,max=100"`
	MaintenanceRecords []MaintenanceRecordRequest `json:"maintenanceRecords" binding:"omitempty,dive"`
}

func (r MaintenanceRecordRequest) toInput() assetapp.MaintenanceRecordInput {
	return assetapp.MaintenanceRecordInput{
		Date:        r.Date.Time,
		Type:        r.Type,
		Description: r.Description,
		Cost:        r.Cost,
		PerformedBy: r.PerformedBy,
	}
}

// Create godoc
// @ID           createAsset
// @Summary      Register an asset
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        request body CreateAssetRequest true "Asset"
// @Success      201 {object} APIResponse[assetapp.AssetResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /assets [post]
func (h *AssetHandler) Create(c *gin.Context) {
	var req CreateAssetRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.assetService.Create(c.Request.Context(), assetapp.CreateAssetRequest{
		AssetID:            req.AssetID,
		Name:               req.Name,
		Category:           req.Category,
		SerialNumber:       req.SerialNumber,
		Status:             asset.Status(req.Status),
		PurchaseDate:       req.PurchaseDate.Time,
		WarrantyExpiration: req.WarrantyExpiration.ptr(),
		Department:         req.Department,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List godoc
// @ID           listAssets
// @Summary      List assets
// @Description  Without page, limit or search every match is returned newest-first
// @Tags         assets
// @Produce      json
// @Param        status   query string false "Status filter"
// @Param        category query string false "Category filter"
// @Param        search   query string false "Substring over name, assetId, serialNumber, category"
// @Param        page     query int    false "Page (>=1)"
// @Param        limit    query int    false "Page size (1-50)"
// @Success      200 {object} APIResponse[[]assetapp.AssetResponse]
// @Security     BearerAuth
// @Router       /assets [get]
func (h *AssetHandler) List(c *gin.Context) {
	p := readPagination(c)
	result, err := h.assetService.List(c.Request.Context(), assetapp.ListAssetsFilter{
		Status:   asset.Status(c.Query("status")),
		Category: c.Query("category"),
		Search:   p.Search,
		Page:     p.Page,
		Limit:    p.Limit,
		Paginate: p.Paginate,
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
// @ID           getAsset
// @Summary      Get an asset
// @Tags         assets
// @Produce      json
// @Param        id path string true "Asset UUID"
// @Success      200 {object} APIResponse[assetapp.AssetResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /assets/{id} [get]
func (h *AssetHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.assetService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update godoc
// @ID           updateAsset
// @Summary      Update an asset
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        id      path string             true "Asset UUID"
// @Param        request body UpdateAssetRequest true "Fields to change"
// @Success      200 {object} APIResponse[assetapp.AssetResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /assets/{id} [put]
func (h *AssetHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateAssetRequest
	if !h.bindJSON(c, &req) {
		return
	}

	appReq := assetapp.UpdateAssetRequest{
		AssetID:            req.AssetID,
		Name:               req.Name,
		Category:           req.Category,
		SerialNumber:       req.SerialNumber,
		PurchaseDate:       req.PurchaseDate.ptr(),
		WarrantyExpiration: req.WarrantyExpiration.ptr(),
		Department:         req.Department,
	}
	if req.Status != nil {
		status := asset.Status(*req.Status)
		appReq.Status = &status
	}
	for _, rec := range req.MaintenanceRecords {
		appReq.MaintenanceRecords = append(appReq.MaintenanceRecords, rec.toInput())
	}

	resp, err := h.assetService.Update(c.Request.Context(), id, appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// AddMaintenance godoc
// @ID           addAssetMaintenance
// @Summary      Append a maintenance record
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        id      path string                   true "Asset UUID"
// @Param        request body MaintenanceRecordRequest true "Maintenance record"
// @Success      201 {object} APIResponse[assetapp.AssetResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /assets/{id}/maintenance [post]
func (h *AssetHandler) AddMaintenance(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req MaintenanceRecordRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.assetService.AddMaintenance(c.Request.Context(), id, req.toInput())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Delete godoc
// @ID           deleteAsset
// @Summary      Delete an asset
// @Tags         assets
// @Produce      json
// @Param        id path string true "Asset UUID"
// @Success      200 {object} SuccessResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /assets/{id} [delete]
func (h *AssetHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	if err := h.assetService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, MessageData{Message: "Asset deleted successfully"})
}

// NextID godoc
// @ID           nextAssetID
// @Summary      Preview the next generated asset ID
// @Tags         assets
// @Produce      json
// @Success      200 {object} APIResponse[assetapp.NextIDResponse]
// @Security     BearerAuth
// @Router       /assets/next-id [get]
func (h *AssetHandler) NextID(c *gin.Context) {
	resp, err := h.assetService.NextAssetID(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
