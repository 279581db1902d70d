package handlers

import (
	"net/url"
	"testing"

	"github.com/rrparlour/parlour-booking/internal/middleware"
	"github.com/rrparlour/parlour-booking/internal/models"
	"github.com/rrparlour/parlour-booking/internal/security"
	"github.com/rrparlour/parlour-booking/internal/session"
)

func seededAdmin(t *testing.T, env *testEnv) models.Admin {
	t.Helper()
	var admin models.Admin
	if err := env.db.First(&admin).Error; err != nil {
		t.Fatalf("seeded admin missing: %v", err)
	}
	return admin
}

// The status field is stored verbatim; the admin form is trusted with the
// vocabulary and the catalog treats anything but active as hidden.
func TestOwnerStatusStoresArbitraryValue(t *testing.T) {
	env := newTestEnv(t, idleSearchClient(t))

	admin := seededAdmin(t, env)
	owner := seedOwner(t, env.db, "Fade Factory", models.OwnerStatusPending)
	token := sessionFor(t, env.sessions, middleware.RoleAdmin, admin.ID)

	for _, status := range []string{models.OwnerStatusActive, models.OwnerStatusRejected, "banana"} {
		w := postForm(t, env.router, "/admin/owner_status", token, url.Values{
			"owner_id": {formatID(owner.ID)},
			"status":   {status},
		})
		assertRedirect(t, w, "/admin/dashboard")

		var updated models.ShopOwner
		env.db.First(&updated, owner.ID)
		if updated.Status != status {
			t.Fatalf("expected status %q, got %q", status, updated.Status)
		}
	}

	assertFlash(t, stateFor(t, env.sessions, token),
		"Owner status set to banana", session.FlashSuccess)
}

func TestOwnerStatusInvalidID(t *testing.T) {
	env := newTestEnv(t, idleSearchClient(t))

	admin := seededAdmin(t, env)
	token := sessionFor(t, env.sessions, middleware.RoleAdmin, admin.ID)

	w := postForm(t, env.router, "/admin/owner_status", token, url.Values{
		"owner_id": {"abc"},
		"status":   {models.OwnerStatusActive},
	})
	assertRedirect(t, w, "/admin/dashboard")
	assertFlash(t, stateFor(t, env.sessions, token),
		"Invalid owner id.", session.FlashWarning)
}

func TestTaglineUpdate(t *testing.T) {
	env := newTestEnv(t, idleSearchClient(t))

	admin := seededAdmin(t, env)
	token := sessionFor(t, env.sessions, middleware.RoleAdmin, admin.ID)

	w := postForm(t, env.router, "/admin/tagline", token, url.Values{
		"tagline": {"  Sharp cuts daily  "},
	})
	assertRedirect(t, w, "/admin/dashboard")
	assertFlash(t, stateFor(t, env.sessions, token), "Tagline updated!", session.FlashSuccess)

	var setting models.Setting
	env.db.First(&setting, models.SettingsRowID)
	if setting.Tagline != "Sharp cuts daily" {
		t.Fatalf("expected trimmed tagline, got %q", setting.Tagline)
	}
}

func TestAdminUpdateProfileKeepsPasswordWhenBlank(t *testing.T) {
	env := newTestEnv(t, idleSearchClient(t))

	admin := seededAdmin(t, env)
	token := sessionFor(t, env.sessions, middleware.RoleAdmin, admin.ID)

	w := postForm(t, env.router, "/admin/update_profile", token, url.Values{
		"name":     {"New Admin Name"},
		"login_id": {"newadmin"},
		"password": {""},
	})
	assertRedirect(t, w, "/admin/dashboard")

	var updated models.Admin
	env.db.First(&updated, admin.ID)
	if updated.Name != "New Admin Name" || updated.LoginID != "newadmin" {
		t.Fatalf("profile fields not updated: %+v", updated)
	}
	if updated.PasswordHash != admin.PasswordHash {
		t.Fatalf("blank password must leave the hash untouched")
	}
}

func TestAdminUpdateProfileRehashesNewPassword(t *testing.T) {
	env := newTestEnv(t, idleSearchClient(t))

	admin := seededAdmin(t, env)
	token := sessionFor(t, env.sessions, middleware.RoleAdmin, admin.ID)

	postForm(t, env.router, "/admin/update_profile", token, url.Values{
		"name":     {admin.Name},
		"login_id": {admin.LoginID},
		"password": {"brand-new"},
	})

	var updated models.Admin
	env.db.First(&updated, admin.ID)
	if !security.CheckPassword("brand-new", updated.PasswordHash) {
		t.Fatalf("new password does not verify")
	}
}

func TestAdminRoutesRejectOtherRoles(t *testing.T) {
	env := newTestEnv(t, idleSearchClient(t))

	customer := seedCustomer(t, env.db, "Ravi", "9990001111")
	token := sessionFor(t, env.sessions, middleware.RoleCustomer, customer.ID)

	w := postForm(t, env.router, "/admin/tagline", token, url.Values{
		"tagline": {"hijacked"},
	})
	assertRedirect(t, w, "/")

	var setting models.Setting
	env.db.First(&setting, models.SettingsRowID)
	if setting.Tagline == "hijacked" {
		t.Fatalf("customer session must not reach admin routes")
	}
	if len(stateFor(t, env.sessions, token).Flashes) != 0 {
		t.Fatalf("role rejection is silent, no notice expected")
	}
}
