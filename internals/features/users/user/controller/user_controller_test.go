package controller_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"

	"manrelbdg_backend/internals/constants"
	"manrelbdg_backend/internals/features/users/user/model"
	"manrelbdg_backend/internals/features/users/user/service"
	"manrelbdg_backend/internals/testutil"
)

func TestUserListAdminOnly(t *testing.T) {
	env := testutil.NewEnv(t)
	admin := env.Login("admin@manrel.id", constants.RoleAdmin)
	user := env.Login("user@manrel.id", constants.RoleUser)
	testutil.CreateUser(t, env.DB, "viewer@manrel.id", constants.RoleViewer, true)

	resp, body := env.Do(http.MethodGet, "/api/users", nil, user)
	if resp.StatusCode != http.StatusForbidden || body.Error != constants.MsgInsufficientPermissions {
		t.Fatalf("USER list: status=%d body=%+v", resp.StatusCode, body)
	}
	resp, body = env.Do(http.MethodGet, "/api/users", nil, "")
	if resp.StatusCode != http.StatusUnauthorized || body.Error != constants.MsgNoToken {
		t.Fatalf("anon list: status=%d body=%+v", resp.StatusCode, body)
	}

	resp, body = env.Do(http.MethodGet, "/api/users", nil, admin)
	if resp.StatusCode != http.StatusOK || body.Pagination == nil || body.Pagination.Total != 3 {
		t.Fatalf("admin list: status=%d body=%+v", resp.StatusCode, body)
	}
	var rows []map[string]any
	testutil.Decode(t, body, &rows)
	for _, r := range rows {
		if _, ok := r["password"]; ok {
			t.Fatal("password ikut terkirim")
		}
	}

	_, body = env.Do(http.MethodGet, "/api/users?role=viewer", nil, admin)
	var viewers []model.UserModel
	testutil.Decode(t, body, &viewers)
	if len(viewers) != 1 || viewers[0].Email != "viewer@manrel.id" {
		t.Fatalf("viewers = %+v", viewers)
	}
}

func TestUserUpdateStatus(t *testing.T) {
	env := testutil.NewEnv(t)
	adminUser := testutil.CreateUser(t, env.DB, "admin@manrel.id", constants.RoleAdmin, true)
	admin := testutil.Token(t, env.Cfg, adminUser)
	target := testutil.CreateUser(t, env.DB, "user@manrel.id", constants.RoleUser, true)
	targetToken := testutil.Token(t, env.Cfg, target)

	resp, body := env.Do(http.MethodPatch, "/api/users/"+target.ID.String()+"/status", map[string]any{"isActive": false}, admin)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("deactivate: status=%d body=%+v", resp.StatusCode, body)
	}
	var got model.UserModel
	testutil.Decode(t, body, &got)
	if got.IsActive {
		t.Fatal("user masih aktif")
	}

	// token lama langsung ditolak
	resp, body = env.Do(http.MethodGet, "/api/dapil", nil, targetToken)
	if resp.StatusCode != http.StatusUnauthorized || body.Error != constants.MsgUserInactive {
		t.Fatalf("token user nonaktif: status=%d body=%+v", resp.StatusCode, body)
	}

	resp, body = env.Do(http.MethodPatch, "/api/users/"+adminUser.ID.String()+"/status", map[string]any{"isActive": false}, admin)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("self deactivate: status=%d body=%+v", resp.StatusCode, body)
	}
	resp, body = env.Do(http.MethodPatch, "/api/users/"+uuid.NewString()+"/status", map[string]any{"isActive": true}, admin)
	if resp.StatusCode != http.StatusNotFound || body.Error != service.MsgUserNotFound {
		t.Fatalf("unknown user: status=%d body=%+v", resp.StatusCode, body)
	}
	resp, _ = env.Do(http.MethodPatch, "/api/users/bukan-uuid/status", map[string]any{"isActive": true}, admin)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("invalid uuid: status=%d", resp.StatusCode)
	}
	resp, _ = env.Do(http.MethodPatch, "/api/users/"+target.ID.String()+"/status", map[string]any{}, admin)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing isActive: status=%d", resp.StatusCode)
	}
}
