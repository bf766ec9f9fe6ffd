package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
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
	"github.com/assettrack/backend/internal/infrastructure/config"
	"github.com/assettrack/backend/internal/infrastructure/event"
	"github.com/assettrack/backend/internal/infrastructure/persistence"
	"github.com/assettrack/backend/internal/infrastructure/persistence/models"
	"github.com/assettrack/backend/internal/infrastructure/storage"
	"github.com/assettrack/backend/internal/interfaces/http/dto"
	"github.com/assettrack/backend/internal/interfaces/http/middleware"
	"github.com/assettrack/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPassword = "s3cret-pass"

func init() {
	gin.SetMode(gin.TestMode)
	if err := middleware.SetupValidator(); err != nil {
		panic(err)
	}
}

// apiHarness is the full HTTP stack over an in-memory sqlite database
type apiHarness struct {
	t       *testing.T
	engine  *gin.Engine
	db      *gorm.DB
	storage *storage.MemoryObjectStorage
	tokens  map[identity.Role]string
	users   map[identity.Role]*identity.User
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *dto.ErrorInfo  `json:"error"`
	Meta    *dto.Meta       `json:"meta"`
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.UserModel{},
		&models.AssetModel{},
		&models.MaintenanceRecordModel{},
		&models.EmployeeModel{},
		&models.AssignmentModel{},
		&models.AssignmentAuditLogModel{},
		&models.SequenceCounterModel{},
	))
	require.NoError(t, db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_assignments_active_asset ON assignments (asset_id) WHERE status = 'Active'`,
	).Error)
	return db
}

func newAPIHarness(t *testing.T) *apiHarness {
	t.Helper()
	db := openTestDB(t)

	userRepo := persistence.NewGormUserRepository(db)
	assetRepo := persistence.NewGormAssetRepository(db)
	employeeRepo := persistence.NewGormEmployeeRepository(db)
	assignmentRepo := persistence.NewGormAssignmentRepository(db)
	auditRepo := persistence.NewGormAuditLogRepository(db)
	sequences := persistence.NewGormSequenceRepository(db)

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "handler-test-secret-at-least-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "asset-tracker-test",
	})
	blacklist := auth.NewInMemoryTokenBlacklist()
	objects := storage.NewMemoryObjectStorage()

	serializer := event.NewSerializer()
	event.RegisterDomainEvents(serializer)
	bus := event.NewBus(nil)
	bus.Subscribe(eventapp.NewAuditLogHandler(auditRepo, serializer, nil))
	require.NoError(t, bus.Start(context.Background()))

	summaries := assignmentapp.NewSummaryLoader(assetRepo, employeeRepo, userRepo)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, nil)
	profileService := identityapp.NewProfileService(userRepo, objects, 1<<20, nil)
	assetService := assetapp.NewAssetService(assetRepo, sequences, nil)
	employeeService := employeeapp.NewEmployeeService(employeeRepo, assignmentRepo, sequences,
		persistence.NewGormEmployeeTransactionScope(db), nil)
	assignmentService := assignmentapp.NewAssignmentService(assignmentRepo, summaries,
		persistence.NewGormAssignmentTransactionScope(db), nil)
	assignmentService.SetEventPublisher(bus)

	handlers := Handlers{
		Auth:       NewAuthHandler(authService),
		User:       NewUserHandler(profileService),
		Asset:      NewAssetHandler(assetService),
		Employee:   NewEmployeeHandler(employeeService),
		Assignment: NewAssignmentHandler(assignmentService, eventapp.NewAuditService(auditRepo)),
		Dashboard: NewDashboardHandler(
			dashboardapp.NewDashboardService(assetRepo, employeeRepo, assignmentRepo, summaries, nil),
			notificationapp.NewNotificationService(assignmentRepo, summaries, nil),
		),
	}

	engine := gin.New()
	engine.Use(middleware.RequestID(nil))
	r := router.NewRouter(engine)
	handlers.RegisterRoutes(r, RouteMiddleware{
		Authenticate: middleware.JWTAuth(middleware.JWTMiddlewareConfig{
			JWTService:  jwtService,
			Revocations: authService,
		}),
	})
	r.Setup()
	engine.GET("/health", NewHealthHandler(HealthCheck{
		Name:     "database",
		Required: true,
		Ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}).Health)

	h := &apiHarness{
		t:       t,
		engine:  engine,
		db:      db,
		storage: objects,
		tokens:  map[identity.Role]string{},
		users:   map[identity.Role]*identity.User{},
	}
	for _, role := range []identity.Role{identity.RoleAdmin, identity.RoleManager, identity.RoleEmployee} {
		u, err := identity.NewUser(strings.ToLower(string(role))+"@example.com", testPassword, role)
		require.NoError(t, err)
		u.SetName(string(role) + " User")
		require.NoError(t, userRepo.Create(context.Background(), u))
		h.users[role] = u
		h.tokens[role] = h.login(u.Email, testPassword)
	}
	return h
}

func (h *apiHarness) login(email, password string) string {
	h.t.Helper()
	w := h.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(h.t, http.StatusOK, w.Code, w.Body.String())
	var tokens identityapp.TokenResponse
	h.decode(w, &tokens)
	return tokens.AccessToken
}

func (h *apiHarness) do(method, path, token string, body any) *httptest.ResponseRecorder {
	h.t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(h.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return h.serve(req, token)
}

func (h *apiHarness) serve(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.engine.ServeHTTP(w, req)
	return w
}

func (h *apiHarness) as(role identity.Role, method, path string, body any) *httptest.ResponseRecorder {
	h.t.Helper()
	return h.do(method, path, h.tokens[role], body)
}

// decode unwraps a success envelope into out and returns the envelope
func (h *apiHarness) decode(w *httptest.ResponseRecorder, out any) envelope {
	h.t.Helper()
	var env envelope
	require.NoError(h.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if out != nil {
		require.True(h.t, env.Success, w.Body.String())
		require.NoError(h.t, json.Unmarshal(env.Data, out))
	}
	return env
}

// errorOf asserts a failure envelope with status and returns its error block
func (h *apiHarness) errorOf(w *httptest.ResponseRecorder, status int) *dto.ErrorInfo {
	h.t.Helper()
	require.Equal(h.t, status, w.Code, w.Body.String())
	env := h.decode(w, nil)
	require.False(h.t, env.Success)
	require.NotNil(h.t, env.Error)
	return env.Error
}

func (h *apiHarness) createAsset(serial string) assetapp.AssetResponse {
	h.t.Helper()
	w := h.as(identity.RoleManager, http.MethodPost, "/api/v1/assets", map[string]any{
		"name":         "ThinkPad " + serial,
		"category":     "Laptop",
		"serialNumber": serial,
		"purchaseDate": "2024-01-15",
		"department":   "Engineering",
	})
	require.Equal(h.t, http.StatusCreated, w.Code, w.Body.String())
	var out assetapp.AssetResponse
	h.decode(w, &out)
	return out
}

func (h *apiHarness) createEmployee(email string) employeeapp.EmployeeResponse {
	h.t.Helper()
	w := h.as(identity.RoleManager, http.MethodPost, "/api/v1/employees", map[string]any{
		"name":       "Priya " + email,
		"email":      email,
		"company":    "V-Accel",
		"department": "Engineering",
		"phone":      "+91 98450 12345",
		"position":   "Backend Engineer",
		"hireDate":   "2023-04-01",
	})
	require.Equal(h.t, http.StatusCreated, w.Code, w.Body.String())
	var out employeeapp.EmployeeResponse
	h.decode(w, &out)
	return out
}

func (h *apiHarness) assign(assetID, employeeID string, accessories ...string) assignmentapp.AssignmentResponse {
	h.t.Helper()
	body := map[string]any{"assetId": assetID, "employeeId": employeeID}
	if len(accessories) > 0 {
		body["accessories"] = accessories
	}
	w := h.as(identity.RoleManager, http.MethodPost, "/api/v1/assignments", body)
	require.Equal(h.t, http.StatusCreated, w.Code, w.Body.String())
	var out assignmentapp.AssignmentResponse
	h.decode(w, &out)
	return out
}
