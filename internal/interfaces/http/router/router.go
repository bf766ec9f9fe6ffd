// Package router groups API routes by domain and mounts them under a
// versioned prefix.
package router

import (
	"net/http"
	"path"

	"github.com/assettrack/backend/internal/domain/identity"
	"github.com/assettrack/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router manages HTTP route registration
type Router struct {
	engine     *gin.Engine
	apiVersion string
	registrars []RouteRegistrar
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix (e.g., "v1", "v2")
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		apiVersion: "v1",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a RouteRegistrar to be registered later
func (r *Router) Register(registrars ...RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrars...)
	return r
}

// Setup mounts every registrar under /api/<version>
func (r *Router) Setup() {
	api := r.engine.Group("/api/" + r.apiVersion)
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}
}

// RouteInfo describes one registered endpoint
type RouteInfo struct {
	Method string
	Path   string
	Roles  []identity.Role
}

type routeDefinition struct {
	method  string
	path    string
	handler gin.HandlerFunc
	roles   []identity.Role
}

// DomainGroup collects the routes of one domain under a common prefix.
// Group middleware (typically JWT auth) runs before any role check.
type DomainGroup struct {
	name       string
	prefix     string
	routes     []routeDefinition
	middleware []gin.HandlerFunc
}

// NewDomainGroup creates a new domain-specific route group
func NewDomainGroup(name, prefix string) *DomainGroup {
	return &DomainGroup{name: name, prefix: prefix}
}

// Use adds middleware to this group
func (dg *DomainGroup) Use(middleware ...gin.HandlerFunc) *DomainGroup {
	dg.middleware = append(dg.middleware, middleware...)
	return dg
}

// Handle registers a route. A non-empty roles list restricts it to those roles.
func (dg *DomainGroup) Handle(method, relativePath string, handler gin.HandlerFunc, roles ...identity.Role) *DomainGroup {
	dg.routes = append(dg.routes, routeDefinition{
		method:  method,
		path:    relativePath,
		handler: handler,
		roles:   roles,
	})
	return dg
}

// GET registers a GET route
func (dg *DomainGroup) GET(relativePath string, handler gin.HandlerFunc, roles ...identity.Role) *DomainGroup {
	return dg.Handle(http.MethodGet, relativePath, handler, roles...)
}

// POST registers a POST route
func (dg *DomainGroup) POST(relativePath string, handler gin.HandlerFunc, roles ...identity.Role) *DomainGroup {
	return dg.Handle(http.MethodPost, relativePath, handler, roles...)
}

// PUT registers a PUT route
func (dg *DomainGroup) PUT(relativePath string, handler gin.HandlerFunc, roles ...identity.Role) *DomainGroup {
	return dg.Handle(http.MethodPut, relativePath, handler, roles...)
}

// PATCH registers a PATCH route
func (dg *DomainGroup) PATCH(relativePath string, handler gin.HandlerFunc, roles ...identity.Role) *DomainGroup {
	return dg.Handle(http.MethodPatch, relativePath, handler, roles...)
}

// DELETE registers a DELETE route
func (dg *DomainGroup) DELETE(relativePath string, handler gin.HandlerFunc, roles ...identity.Role) *DomainGroup {
	return dg.Handle(http.MethodDelete, relativePath, handler, roles...)
}

// RegisterRoutes implements RouteRegistrar
func (dg *DomainGroup) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group(dg.prefix)
	if len(dg.middleware) > 0 {
		group.Use(dg.middleware...)
	}

	for _, route := range dg.routes {
		chain := make([]gin.HandlerFunc, 0, 2)
		if len(route.roles) > 0 {
			chain = append(chain, middleware.RequireRoles(route.roles...))
		}
		chain = append(chain, route.handler)
		group.Handle(route.method, route.path, chain...)
	}
}

// Routes lists the group's endpoints with their full relative paths
func (dg *DomainGroup) Routes() []RouteInfo {
	out := make([]RouteInfo, len(dg.routes))
	for i, route := range dg.routes {
		out[i] = RouteInfo{
			Method: route.method,
			Path:   joinPath(dg.prefix, route.path),
			Roles:  route.roles,
		}
	}
	return out
}

// Name returns the group name
func (dg *DomainGroup) Name() string {
	return dg.name
}

// Prefix returns the group prefix
func (dg *DomainGroup) Prefix() string {
	return dg.prefix
}

func joinPath(prefix, relative string) string {
	if relative == "" {
		return prefix
	}
	joined := path.Join(prefix, relative)
	if relative[len(relative)-1] == '/' && joined[len(joined)-1] != '/' {
		joined += "/"
	}
	return joined
}
