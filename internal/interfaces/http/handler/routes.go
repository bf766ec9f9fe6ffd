package handler

import (
	"github.com/assettrack/backend/internal/domain/identity"
	"github.com/assettrack/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
)

var (
	writers = []identity.Role{identity.RoleAdmin, identity.RoleManager}
	admins  = []identity.Role{identity.RoleAdmin}
)

// Handlers bundles every API handler
type Handlers struct {
	Auth       *AuthHandler
	User       *UserHandler
	Asset      *AssetHandler
	Employee   *EmployeeHandler
	Assignment *AssignmentHandler
	Dashboard  *DashboardHandler
}

// RouteMiddleware is the per-group middleware the API needs.
// AuthRateLimit may be nil.
type RouteMiddleware struct {
	Authenticate  gin.HandlerFunc
	AuthRateLimit gin.HandlerFunc
}

// Groups builds the /api/v1 route table
func (h Handlers) Groups(mw RouteMiddleware) []*router.DomainGroup {
	public := router.NewDomainGroup("auth-public", "/auth")
	if mw.AuthRateLimit != nil {
		public.Use(mw.AuthRateLimit)
	}
	public.POST("/login", h.Auth.Login).
		POST("/refresh", h.Auth.Refresh)

	session := router.NewDomainGroup("auth", "/auth").Use(mw.Authenticate).
		POST("/logout", h.Auth.Logout).
		POST("/change-password", h.Auth.ChangePassword).
		POST("/update-email", h.Auth.UpdateEmail)

	users := router.NewDomainGroup("users", "/users").Use(mw.Authenticate).
		GET("/me", h.User.Me).
		PATCH("/profile", h.User.UpdateProfile).
		POST("/profile-image", h.User.UploadProfileImage).
		DELETE("/profile-image", h.User.DeleteProfileImage)

	assets := router.NewDomainGroup("assets", "/assets").Use(mw.Authenticate).
		GET("", h.Asset.List).
		GET("/next-id", h.Asset.NextID).
		GET("/:id", h.Asset.GetByID).
		POST("", h.Asset.Create, writers...).
		PUT("/:id", h.Asset.Update, writers...).
		POST("/:id/maintenance", h.Asset.AddMaintenance, writers...).
		DELETE("/:id", h.Asset.Delete, admins...)

	employees := router.NewDomainGroup("employees", "/employees").Use(mw.Authenticate).
		GET("", h.Employee.List).
		GET("/next-id", h.Employee.NextID).
		GET("/:id", h.Employee.GetByID).
		GET("/:id/active-assignments", h.Employee.ActiveAssignments).
		POST("", h.Employee.Create, writers...).
		PUT("/:id", h.Employee.Update, writers...).
		PATCH("/:id/status", h.Employee.UpdateStatus, writers...).
		PATCH("/:id/deactivate", h.Employee.Deactivate, writers...)

	assignments := router.NewDomainGroup("assignments", "/assignments").Use(mw.Authenticate).
		GET("", h.Assignment.List).
		GET("/history", h.Assignment.History).
		GET("/:id", h.Assignment.GetByID).
		GET("/:id/audit", h.Assignment.Audit).
		POST("", h.Assignment.Create, writers...).
		PATCH("/return", h.Assignment.ReturnLegacy, writers...).
		POST("/:id/return", h.Assignment.Return, writers...).
		PATCH("/:id", h.Assignment.Update, writers...)

	notifications := router.NewDomainGroup("notifications", "/notifications").Use(mw.Authenticate).
		GET("/pending-accessories", h.Dashboard.PendingAccessories)

	dashboard := router.NewDomainGroup("dashboard", "/dashboard").Use(mw.Authenticate).
		GET("/stats", h.Dashboard.Stats)

	return []*router.DomainGroup{public, session, users, assets, employees, assignments, notifications, dashboard}
}

// RegisterRoutes adds the route table to r
func (h Handlers) RegisterRoutes(r *router.Router, mw RouteMiddleware) {
	for _, group := range h.Groups(mw) {
		r.Register(group)
	}
}
