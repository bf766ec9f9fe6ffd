package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	assetapp "github.com/assettrack/backend/internal/application/asset"
	assignmentapp "github.com/assettrack/backend/internal/application/assignment"
	dashboardapp "github.com/assettrack/backend/internal/application/dashboard"
	employeeapp "github.com/assettrack/backend/internal/application/employee"
	eventapp "github.com/assettrack/backend/internal/application/event"
	identityapp "github.com/assettrack/backend/internal/application/identity"
	notificationapp "github.com/assettrack/backend/internal/application/notification"
	"github.com/assettrack/backend/internal/domain/identity"
	"github.com/assettrack/backend/internal/infrastructure/auth"
	"github.com/assettrack/backend/internal/infrastructure/cache"
	"github.com/assettrack/backend/internal/infrastructure/config"
	"github.com/assettrack/backend/internal/infrastructure/event"
	"github.com/assettrack/backend/internal/infrastructure/persistence"
	"github.com/assettrack/backend/internal/infrastructure/storage"
	"github.com/assettrack/backend/internal/interfaces/http/handler"
	"github.com/assettrack/backend/internal/interfaces/http/middleware"
	"github.com/assettrack/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// APITestServer is the full HTTP stack over Postgres and Redis
type APITestServer struct {
	DB     *TestDB
	Engine *gin.Engine
	Users  *persistence.GormUserRepository
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

// NewAPITestServer wires every handler the way the server binary does
func NewAPITestServer(t *testing.T) *APITestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, middleware.SetupValidator())

	testDB := NewTestDB(t)
	redisCfg := NewTestRedis(t)
	log := zaptest.NewLogger(t)
	ctx := context.Background()

	backend, err := cache.OpenBackend(ctx, redisCfg, cache.WithLogger(log), cache.WithInMemoryFallback(false))
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })
	require.True(t, backend.UsesRedis())

	db := testDB.DB
	userRepo := persistence.NewGormUserRepository(db)
	assetRepo := persistence.NewGormAssetRepository(db)
	employeeRepo := persistence.NewGormEmployeeRepository(db)
	assignmentRepo := persistence.NewGormAssignmentRepository(db)
	auditRepo := persistence.NewGormAuditLogRepository(db)
	sequences := persistence.NewGormSequenceRepository(db)

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "integration-secret-key-at-least-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "asset-tracker-test",
	})

	serializer := event.NewSerializer()
	event.RegisterDomainEvents(serializer)
	bus := event.NewBus(log)
	bus.Subscribe(event.NewIdempotentHandler(
		eventapp.NewAuditLogHandler(auditRepo, serializer, log),
		cache.NewIdempotencyStore(backend.KeySet(cache.PrefixEventIdempotency)),
		log,
	))
	require.NoError(t, bus.Start(ctx))
	t.Cleanup(func() { _ = bus.Stop(context.Background()) })

	summaries := assignmentapp.NewSummaryLoader(assetRepo, employeeRepo, userRepo)
	authService := identityapp.NewAuthService(userRepo, jwtService,
		auth.NewTokenBlacklist(backend.KeySet(cache.PrefixRevokedTokens)), log)
	assignmentService := assignmentapp.NewAssignmentService(assignmentRepo, summaries,
		persistence.NewGormAssignmentTransactionScope(db), log)
	assignmentService.SetEventPublisher(bus)

	handlers := handler.Handlers{
		Auth: handler.NewAuthHandler(authService),
		User: handler.NewUserHandler(identityapp.NewProfileService(userRepo, storage.NewMemoryObjectStorage(), 1<<20, log)),
		Asset: handler.NewAssetHandler(assetapp.NewAssetService(assetRepo, sequences, log)),
		Employee: handler.NewEmployeeHandler(employeeapp.NewEmployeeService(employeeRepo, assignmentRepo, sequences,
			persistence.NewGormEmployeeTransactionScope(db), log)),
		Assignment: handler.NewAssignmentHandler(assignmentService, eventapp.NewAuditService(auditRepo)),
		Dashboard: handler.NewDashboardHandler(
			dashboardapp.NewDashboardService(assetRepo, employeeRepo, assignmentRepo, summaries, log),
			notificationapp.NewNotificationService(assignmentRepo, summaries, log),
		),
	}

	engine := gin.New()
	engine.Use(middleware.RequestID(log))
	r := router.NewRouter(engine)
	handlers.RegisterRoutes(r, handler.RouteMiddleware{
		Authenticate: middleware.JWTAuth(middleware.JWTMiddlewareConfig{
			JWTService:  jwtService,
			Revocations: authService,
			Logger:      log,
		}),
	})
	r.Setup()

	return &APITestServer{DB: testDB, Engine: engine, Users: userRepo}
}

// Request makes an HTTP request to the test server
func (ts *APITestServer) Request(t *testing.T, method, path string, body any, token string) (*httptest.ResponseRecorder, apiEnvelope) {
	t.Helper()
	reqBody := bytes.NewBuffer(nil)
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.Engine.ServeHTTP(w, req)

	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

// CreateUser stores an active user with role
func (ts *APITestServer) CreateUser(t *testing.T, email, password string, role identity.Role) *identity.User {
	t.Helper()
	u, err := identity.NewUser(email, password, role)
	require.NoError(t, err)
	u.SetName(string(role) + " Tester")
	require.NoError(t, ts.Users.Create(context.Background(), u))
	return u
}

// Login returns an access token
func (ts *APITestServer) Login(t *testing.T, email, password string) string {
	t.Helper()
	w, env := ts.Request(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": email, "password": password,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var tokens identityapp.TokenResponse
	require.NoError(t, json.Unmarshal(env.Data, &tokens))
	require.NotEmpty(t, tokens.AccessToken)
	return tokens.AccessToken
}

func TestAPI_LogoutRevokesTokenInRedis(t *testing.T) {
	ts := NewAPITestServer(t)
	ts.CreateUser(t, "admin@example.com", "admin-pass-123", identity.RoleAdmin)
	token := ts.Login(t, "admin@example.com", "admin-pass-123")

	w, _ := ts.Request(t, http.MethodGet, "/api/v1/users/me", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = ts.Request(t, http.MethodPost, "/api/v1/auth/logout", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, env := ts.Request(t, http.MethodGet, "/api/v1/users/me", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "TOKEN_REVOKED", env.Error.Code)
}

func TestAPI_AssignmentLifecycleOnPostgres(t *testing.T) {
	ts := NewAPITestServer(t)
	ts.CreateUser(t, "manager@example.com", "manager-pass-123", identity.RoleManager)
	token := ts.Login(t, "manager@example.com", "manager-pass-123")

	w, env := ts.Request(t, http.MethodPost, "/api/v1/assets", map[string]any{
		"name":         "MacBook Pro 14",
		"category":     "Laptop",
		"serialNumber": "C02-INT-001",
		"purchaseDate": "2024-05-20",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created assetapp.AssetResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))

	w, env = ts.Request(t, http.MethodPost, "/api/v1/employees", map[string]any{
		"name":       "Meera Iyer",
		"email":      "meera@example.com",
		"company":    "V-Accel",
		"department": "Design",
		"phone":      "+91 99860 44010",
		"position":   "Product Designer",
		"hireDate":   "2023-02-01",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var hired employeeapp.EmployeeResponse
	require.NoError(t, json.Unmarshal(env.Data, &hired))
	assert.Equal(t, "VA1000", hired.EmployeeID)

	w, env = ts.Request(t, http.MethodPost, "/api/v1/assignments", map[string]any{
		"assetId":     created.ID.String(),
		"employeeId":  hired.ID.String(),
		"accessories": []string{"Charger", "Monitor"},
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var opened assignmentapp.AssignmentResponse
	require.NoError(t, json.Unmarshal(env.Data, &opened))

	w, env = ts.Request(t, http.MethodPost, "/api/v1/assignments", map[string]any{
		"assetId":    created.ID.String(),
		"employeeId": hired.ID.String(),
	}, token)
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ALREADY_ASSIGNED", env.Error.Code)

	w, env = ts.Request(t, http.MethodPost, "/api/v1/assignments/"+opened.ID.String()+"/return", map[string]any{
		"condition":           "DAMAGED",
		"remarks":             "Cracked hinge",
		"returnedAccessories": []string{"Charger", "Monitor"},
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var closed assignmentapp.AssignmentResponse
	require.NoError(t, json.Unmarshal(env.Data, &closed))
	assert.Empty(t, closed.PendingAccessories)

	w, env = ts.Request(t, http.MethodGet, "/api/v1/assets/"+created.ID.String(), nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var repaired assetapp.AssetResponse
	require.NoError(t, json.Unmarshal(env.Data, &repaired))
	assert.Equal(t, "In Repair", string(repaired.Status))

	w, env = ts.Request(t, http.MethodGet, "/api/v1/assignments/"+opened.ID.String()+"/audit", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var trail []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &trail))
	assert.Len(t, trail, 2)
}
