package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	assetapp "github.com/assettrack/backend/internal/application/asset"
	assignmentapp "github.com/assettrack/backend/internal/application/assignment"
	dashboardapp "github.com/assettrack/backend/internal/application/dashboard"
	employeeapp "github.com/assettrack/backend/internal/application/employee"
	eventapp "github.com/assettrack/backend/internal/application/event"
	identityapp "github.com/assettrack/backend/internal/application/identity"
	notificationapp "github.com/assettrack/backend/internal/application/notification"
	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/assignment"
	"github.com/assettrack/backend/internal/domain/identity"
	"github.com/assettrack/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detailFields(info *dto.ErrorInfo) []string {
	fields := make([]string, 0, len(info.Details))
	for _, d := range info.Details {
		fields = append(fields, d.Field)
	}
	return fields
}

func TestAuth_LoginAndRevocation(t *testing.T) {
	h := newAPIHarness(t)

	t.Run("wrong password", func(t *testing.T) {
		w := h.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"email": "admin@example.com", "password": "nope-nope",
		})
		info := h.errorOf(w, http.StatusUnauthorized)
		assert.Equal(t, "INVALID_CREDENTIALS", info.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		info := h.errorOf(h.do(http.MethodGet, "/api/v1/assets", "", nil), http.StatusUnauthorized)
		assert.Equal(t, dto.ErrCodeInvalidToken, info.Code)
	})

	t.Run("logout revokes the access token", func(t *testing.T) {
		token := h.login("employee@example.com", testPassword)

		w := h.do(http.MethodGet, "/api/v1/users/me", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var me identityapp.UserResponse
		h.decode(w, &me)
		assert.Equal(t, "Employee User", me.Name)

		require.Equal(t, http.StatusOK, h.do(http.MethodPost, "/api/v1/auth/logout", token, nil).Code)
		info := h.errorOf(h.do(http.MethodGet, "/api/v1/users/me", token, nil), http.StatusUnauthorized)
		assert.Equal(t, dto.ErrCodeTokenRevoked, info.Code)
	})
}

func TestAssets_RoleGate(t *testing.T) {
	h := newAPIHarness(t)
	body := map[string]any{
		"name": "Dell XPS", "category": "Laptop", "serialNumber": "SN-RBAC", "purchaseDate": "2024-01-15",
	}

	info := h.errorOf(h.as(identity.RoleEmployee, http.MethodPost, "/api/v1/assets", body), http.StatusForbidden)
	assert.Equal(t, dto.ErrCodeForbidden, info.Code)

	created := h.createAsset("SN-GATE")
	path := "/api/v1/assets/" + created.ID.String()
	h.errorOf(h.as(identity.RoleManager, http.MethodDelete, path, nil), http.StatusForbidden)

	require.Equal(t, http.StatusOK, h.as(identity.RoleEmployee, http.MethodGet, path, nil).Code)
	require.Equal(t, http.StatusOK, h.as(identity.RoleAdmin, http.MethodDelete, path, nil).Code)
	h.errorOf(h.as(identity.RoleAdmin, http.MethodGet, path, nil), http.StatusNotFound)
}

func TestAssets_CreateListAndErrors(t *testing.T) {
	h := newAPIHarness(t)

	first := h.createAsset("SN-0001")
	assert.NotEmpty(t, first.AssetID)
	assert.Equal(t, asset.StatusAvailable, first.Status)
	h.createAsset("SN-0002")
	h.createAsset("SN-0003")

	t.Run("duplicate serial", func(t *testing.T) {
		w := h.as(identity.RoleManager, http.MethodPost, "/api/v1/assets", map[string]any{
			"name": "Copy", "category": "Laptop", "serialNumber": "SN-0001", "purchaseDate": "2024-01-15",
		})
		info := h.errorOf(w, http.StatusConflict)
		assert.Equal(t, "DUPLICATE_SERIAL", info.Code)
	})

	t.Run("validation details", func(t *testing.T) {
		w := h.as(identity.RoleManager, http.MethodPost, "/api/v1/assets", map[string]any{
			"category": "Laptop", "purchaseDate": "2024-01-15",
		})
		info := h.errorOf(w, http.StatusBadRequest)
		assert.Equal(t, dto.ErrCodeValidation, info.Code)
		assert.ElementsMatch(t, []string{"name", "serialNumber"}, detailFields(info))
	})

	t.Run("bad date names the field", func(t *testing.T) {
		w := h.as(identity.RoleManager, http.MethodPost, "/api/v1/assets", map[string]any{
			"name": "X", "category": "Laptop", "serialNumber": "SN-X", "purchaseDate": "15/01/2024",
		})
		info := h.errorOf(w, http.StatusBadRequest)
		assert.Contains(t, detailFields(info), "purchaseDate")
	})

	t.Run("malformed json", func(t *testing.T) {
		info := h.errorOf(h.as(identity.RoleManager, http.MethodPost, "/api/v1/assets", `{"name":`), http.StatusBadRequest)
		assert.Equal(t, dto.ErrCodeInvalidJSON, info.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		info := h.errorOf(h.as(identity.RoleEmployee, http.MethodGet, "/api/v1/assets/not-a-uuid", nil), http.StatusBadRequest)
		assert.Equal(t, "INVALID_ID", info.Code)
	})

	t.Run("plain list", func(t *testing.T) {
		w := h.as(identity.RoleEmployee, http.MethodGet, "/api/v1/assets", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var items []assetapp.AssetResponse
		env := h.decode(w, &items)
		assert.Len(t, items, 3)
		assert.Nil(t, env.Meta)
	})

	t.Run("paginated list", func(t *testing.T) {
		w := h.as(identity.RoleEmployee, http.MethodGet, "/api/v1/assets?page=1&limit=2", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var items []assetapp.AssetResponse
		env := h.decode(w, &items)
		assert.Len(t, items, 2)
		require.NotNil(t, env.Meta)
		assert.Equal(t, int64(3), env.Meta.Total)
		assert.Equal(t, 2, env.Meta.TotalPages)
	})

	t.Run("maintenance", func(t *testing.T) {
		w := h.as(identity.RoleManager, http.MethodPost, "/api/v1/assets/"+first.ID.String()+"/maintenance", map[string]any{
			"date": "2024-06-01", "type": "Battery replacement", "cost": 129.5,
			"description": "Replaced swollen battery", "performedBy": "IT Desk",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var updated assetapp.AssetResponse
		h.decode(w, &updated)
		require.Len(t, updated.MaintenanceHistory, 1)
		assert.Equal(t, "129.5", updated.TotalMaintenanceCost.String())
	})
}

func TestEmployees_CreateAndActiveAssignments(t *testing.T) {
	h := newAPIHarness(t)

	e := h.createEmployee("priya@example.com")
	assert.Equal(t, "VA1000", e.EmployeeID)

	info := h.errorOf(h.as(identity.RoleManager, http.MethodPost, "/api/v1/employees", map[string]any{
		"name": "Dup", "email": "PRIYA@example.com", "company": "V-Accel", "department": "Ops",
		"phone": "+91 90000 00001", "position": "Analyst", "hireDate": "2023-04-01",
	}), http.StatusConflict)
	assert.Equal(t, "DUPLICATE_EMAIL", info.Code)

	a := h.createAsset("SN-EMP")
	h.assign(a.ID.String(), e.ID.String())

	w := h.as(identity.RoleEmployee, http.MethodGet, "/api/v1/employees/"+e.ID.String()+"/active-assignments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var count employeeapp.ActiveAssignmentCountResponse
	h.decode(w, &count)
	assert.Equal(t, int64(1), count.ActiveCount)
}

func TestAssignments_Lifecycle(t *testing.T) {
	h := newAPIHarness(t)
	laptop := h.createAsset("SN-LIFE-1")
	e := h.createEmployee("ravi@example.com")

	created := h.assign(laptop.ID.String(), e.ID.String(), "Charger", "Mouse")
	assert.Equal(t, assignment.StatusActive, created.Status)
	require.NotNil(t, created.AssignedBy)
	assert.Equal(t, "Manager User", created.AssignedBy.Name)
	assert.ElementsMatch(t, []string{"Charger", "Mouse"}, created.IssuedAccessories)

	t.Run("asset cannot be assigned twice", func(t *testing.T) {
		w := h.as(identity.RoleManager, http.MethodPost, "/api/v1/assignments", map[string]any{
			"assetId": laptop.ID.String(), "employeeId": e.ID.String(),
		})
		h.errorOf(w, http.StatusConflict)
	})

	t.Run("forbidden update keys", func(t *testing.T) {
		w := h.as(identity.RoleManager, http.MethodPatch, "/api/v1/assignments/"+created.ID.String(), map[string]any{
			"status": "Returned",
		})
		info := h.errorOf(w, http.StatusBadRequest)
		assert.Equal(t, dto.ErrCodeValidation, info.Code)
	})

	t.Run("notes update", func(t *testing.T) {
		w := h.as(identity.RoleManager, http.MethodPatch, "/api/v1/assignments/"+created.ID.String(), map[string]any{
			"notes": "Handle with care",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var updated assignmentapp.AssignmentResponse
		h.decode(w, &updated)
		assert.Equal(t, "Handle with care", updated.Notes)
	})

	t.Run("return damaged", func(t *testing.T) {
		w := h.as(identity.RoleManager, http.MethodPost, "/api/v1/assignments/"+created.ID.String()+"/return", map[string]any{
			"condition":           "DAMAGED",
			"remarks":             "Cracked screen",
			"returnedAccessories": []string{"Charger"},
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var returned assignmentapp.AssignmentResponse
		h.decode(w, &returned)
		assert.Equal(t, assignment.StatusReturned, returned.Status)
		assert.Equal(t, []string{"Mouse"}, returned.PendingAccessories)

		var a assetapp.AssetResponse
		h.decode(h.as(identity.RoleEmployee, http.MethodGet, "/api/v1/assets/"+laptop.ID.String(), nil), &a)
		assert.Equal(t, asset.StatusInRepair, a.Status)
		assert.Nil(t, a.CurrentHolder)
	})

	t.Run("second return conflicts", func(t *testing.T) {
		w := h.as(identity.RoleManager, http.MethodPost, "/api/v1/assignments/"+created.ID.String()+"/return", map[string]any{
			"condition": "GOOD",
		})
		info := h.errorOf(w, http.StatusConflict)
		assert.Equal(t, dto.ErrCodeAlreadyReturned, info.Code)
	})

	t.Run("pending accessories", func(t *testing.T) {
		w := h.as(identity.RoleEmployee, http.MethodGet, "/api/v1/notifications/pending-accessories", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var pending []notificationapp.PendingAccessory
		h.decode(w, &pending)
		require.Len(t, pending, 1)
		assert.Equal(t, "Mouse", pending[0].Accessory)
		assert.Equal(t, created.ID, pending[0].AssignmentID)
	})

	t.Run("reconcile returned accessories", func(t *testing.T) {
		w := h.as(identity.RoleManager, http.MethodPatch, "/api/v1/assignments/"+created.ID.String(), map[string]any{
			"returnedAccessories": []string{"Mouse"},
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var reconciled assignmentapp.AssignmentResponse
		h.decode(w, &reconciled)
		assert.Empty(t, reconciled.PendingAccessories)

		var pending []notificationapp.PendingAccessory
		h.decode(h.as(identity.RoleEmployee, http.MethodGet, "/api/v1/notifications/pending-accessories", nil), &pending)
		assert.Empty(t, pending)
	})

	t.Run("audit trail", func(t *testing.T) {
		w := h.as(identity.RoleEmployee, http.MethodGet, "/api/v1/assignments/"+created.ID.String()+"/audit", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var trail []eventapp.AuditEntryResponse
		h.decode(w, &trail)
		assert.Len(t, trail, 4)
	})

	t.Run("history by asset", func(t *testing.T) {
		w := h.as(identity.RoleEmployee, http.MethodGet, "/api/v1/assignments/history?assetId="+laptop.ID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var history []assignmentapp.AssignmentResponse
		h.decode(w, &history)
		assert.Len(t, history, 1)
	})

	t.Run("bad query id", func(t *testing.T) {
		info := h.errorOf(h.as(identity.RoleEmployee, http.MethodGet, "/api/v1/assignments?employeeId=xyz", nil), http.StatusBadRequest)
		assert.Equal(t, "INVALID_ID", info.Code)
	})
}

func TestAssignments_LegacyReturn(t *testing.T) {
	h := newAPIHarness(t)
	a := h.createAsset("SN-LEGACY")
	e := h.createEmployee("meera@example.com")
	created := h.assign(a.ID.String(), e.ID.String())

	w := h.as(identity.RoleManager, http.MethodPatch, "/api/v1/assignments/return", map[string]any{
		"assignmentId": created.ID.String(),
		"returnDate":   "2025-02-01",
		"notes":        "Returned at front desk",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var returned assignmentapp.AssignmentResponse
	h.decode(w, &returned)
	assert.Equal(t, assignment.StatusReturned, returned.Status)
	require.NotNil(t, returned.ReturnDate)
	assert.Equal(t, "2025-02-01", returned.ReturnDate.Format("2006-01-02"))
	assert.Equal(t, "Returned at front desk", returned.Notes)

	var after assetapp.AssetResponse
	h.decode(h.as(identity.RoleEmployee, http.MethodGet, "/api/v1/assets/"+a.ID.String(), nil), &after)
	assert.Equal(t, asset.StatusAvailable, after.Status)
}

func TestDashboard_Stats(t *testing.T) {
	h := newAPIHarness(t)
	a := h.createAsset("SN-DASH-1")
	h.createAsset("SN-DASH-2")
	e := h.createEmployee("dash@example.com")
	h.assign(a.ID.String(), e.ID.String())

	w := h.as(identity.RoleEmployee, http.MethodGet, "/api/v1/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats dashboardapp.Stats
	h.decode(w, &stats)
	assert.Equal(t, int64(2), stats.TotalAssets)
	assert.Equal(t, int64(1), stats.AvailableAssets)
	assert.Equal(t, int64(1), stats.AssignedAssets)
	assert.Equal(t, int64(1), stats.TotalEmployees)
	assert.Equal(t, int64(1), stats.ActiveAssignments)
	assert.Len(t, stats.RecentAssignments, 1)
}

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func multipartImage(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+ProfileFormField+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUsers_ProfileImage(t *testing.T) {
	h := newAPIHarness(t)
	token := h.tokens[identity.RoleEmployee]

	t.Run("upload png", func(t *testing.T) {
		body, ct := multipartImage(t, "me.png", "image/png", pngHeader)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/users/profile-image", body)
		req.Header.Set("Content-Type", ct)
		w := h.serve(req, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me identityapp.UserResponse
		h.decode(w, &me)
		require.NotNil(t, me.ProfileImage)
		assert.Equal(t, 1, h.storage.Len())
	})

	t.Run("rejects disguised file", func(t *testing.T) {
		body, ct := multipartImage(t, "me.png", "image/png", []byte("plain text, not an image"))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/users/profile-image", body)
		req.Header.Set("Content-Type", ct)
		info := h.errorOf(h.serve(req, token), http.StatusBadRequest)
		assert.Contains(t, detailFields(info), "image")
	})

	t.Run("missing file", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("note", "nothing here"))
		require.NoError(t, mw.Close())
		req := httptest.NewRequest(http.MethodPost, "/api/v1/users/profile-image", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		info := h.errorOf(h.serve(req, token), http.StatusBadRequest)
		require.Len(t, info.Details, 1)
		assert.Equal(t, "No file uploaded", info.Details[0].Message)
	})

	t.Run("delete", func(t *testing.T) {
		w := h.do(http.MethodDelete, "/api/v1/users/profile-image", token, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var me identityapp.UserResponse
		h.decode(w, &me)
		assert.Nil(t, me.ProfileImage)
		assert.Equal(t, 0, h.storage.Len())
	})
}

func TestHealth(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}

func TestGroups_RouteTable(t *testing.T) {
	groups := Handlers{
		Auth: &AuthHandler{}, User: &UserHandler{}, Asset: &AssetHandler{},
		Employee: &EmployeeHandler{}, Assignment: &AssignmentHandler{}, Dashboard: &DashboardHandler{},
	}.Groups(RouteMiddleware{})

	routes := map[string][]identity.Role{}
	for _, g := range groups {
		for _, r := range g.Routes() {
			routes[r.Method+" "+r.Path] = r.Roles
		}
	}

	assert.Len(t, routes, 34)
	assert.Empty(t, routes["POST /auth/login"])
	assert.Empty(t, routes["GET /assets"])
	assert.Equal(t, []identity.Role{identity.RoleAdmin}, routes["DELETE /assets/:id"])
	assert.Equal(t, []identity.Role{identity.RoleAdmin, identity.RoleManager}, routes["POST /assignments"])
	assert.Contains(t, routes, "GET /employees/:id/active-assignments")
}

func TestAssets_StatusOwnedByLedger(t *testing.T) {
	h := newAPIHarness(t)

	t.Run("create as assigned", func(t *testing.T) {
		w := h.as(identity.RoleManager, http.MethodPost, "/api/v1/assets", map[string]any{
			"name": "Dell Latitude", "category": "Laptop", "serialNumber": "SN-PRE-ASSIGNED",
			"purchaseDate": "2024-01-15", "status": "Assigned",
		})
		info := h.errorOf(w, http.StatusBadRequest)
		assert.Equal(t, dto.ErrCodeValidation, info.Code)
		assert.Contains(t, detailFields(info), "status")
	})

	laptop := h.createAsset("SN-HELD")
	e := h.createEmployee("kiran@example.com")
	h.assign(laptop.ID.String(), e.ID.String())
	path := "/api/v1/assets/" + laptop.ID.String()

	t.Run("held asset keeps its status", func(t *testing.T) {
		info := h.errorOf(h.as(identity.RoleManager, http.MethodPut, path, map[string]any{"status": "Available"}), http.StatusBadRequest)
		assert.Contains(t, detailFields(info), "status")

		var a assetapp.AssetResponse
		h.decode(h.as(identity.RoleEmployee, http.MethodGet, path, nil), &a)
		assert.Equal(t, asset.StatusAssigned, a.Status)
		require.NotNil(t, a.CurrentHolder)
		assert.Equal(t, e.ID, *a.CurrentHolder)
	})

	t.Run("other fields of a held asset can change", func(t *testing.T) {
		w := h.as(identity.RoleManager, http.MethodPut, path, map[string]any{"department": "Finance", "status": "Assigned"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var a assetapp.AssetResponse
		h.decode(w, &a)
		assert.Equal(t, "Finance", a.Department)
		assert.Equal(t, asset.StatusAssigned, a.Status)
	})

	t.Run("maintenance needs description and performer", func(t *testing.T) {
		w := h.as(identity.RoleManager, http.MethodPost, path+"/maintenance", map[string]any{
			"date": "2024-06-01", "type": "Keyboard",
		})
		info := h.errorOf(w, http.StatusBadRequest)
		assert.ElementsMatch(t, []string{"description", "performedBy"}, detailFields(info))
	})
}
