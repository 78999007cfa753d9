package rbac

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testCatalog = []Permission{
	{ID: 1, Name: "tools.view", Category: "tools"},
	{ID: 2, Name: "tools.edit", Category: "tools"},
	{ID: 3, Name: "chemicals.view", Category: "chemicals"},
	{ID: 4, Name: "chemicals.issue", Category: "chemicals"},
}

func TestDenyOverrideBeatsRoleGrant(t *testing.T) {
	roles := []Role{{ID: 1, Name: "Mechanic", Permissions: []string{"tools.view", "tools.edit"}}}
	overrides := []Override{{PermissionID: 2, PermissionName: "tools.edit", Type: OverrideDeny}}

	granted := Effective(false, roles, overrides, testCatalog, time.Now())
	require.Contains(t, granted, "tools.view")
	require.NotContains(t, granted, "tools.edit")
}

func TestGrantOverrideBeatsAbsence(t *testing.T) {
	roles := []Role{{ID: 1, Name: "Viewer", Permissions: []string{"tools.view"}}}
	overrides := []Override{{PermissionID: 4, PermissionName: "chemicals.issue", Type: OverrideGrant}}

	granted := Effective(false, roles, overrides, testCatalog, time.Now())
	require.Contains(t, granted, "chemicals.issue")
}

func TestExpiredOverrideHasNoEffect(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	roles := []Role{{ID: 1, Name: "Mechanic", Permissions: []string{"tools.view"}}}
	overrides := []Override{
		{PermissionName: "chemicals.issue", Type: OverrideGrant, ExpiresAt: &past},
		{PermissionName: "tools.view", Type: OverrideDeny, ExpiresAt: &past},
		{PermissionName: "chemicals.view", Type: OverrideGrant, ExpiresAt: &future},
	}

	granted := Effective(false, roles, overrides, testCatalog, now)
	require.NotContains(t, granted, "chemicals.issue", "expired grant must be ignored")
	require.Contains(t, granted, "tools.view", "expired deny must be ignored")
	require.Contains(t, granted, "chemicals.view", "unexpired grant must apply")
}

func TestExpiryComparedInUTC(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	now := time.Date(2026, time.March, 1, 19, 0, 0, 0, loc) // 12:00 UTC
	expiry := time.Date(2026, time.March, 1, 12, 30, 0, 0, time.UTC)

	overrides := []Override{{PermissionName: "tools.view", Type: OverrideGrant, ExpiresAt: &expiry}}
	granted := Effective(false, nil, overrides, testCatalog, now)
	require.Contains(t, granted, "tools.view")
}

func TestAdminGetsFullCatalog(t *testing.T) {
	roles := []Role{{ID: 1, Name: "Viewer", Permissions: []string{"tools.view"}}}
	overrides := []Override{{PermissionName: "tools.view", Type: OverrideDeny}}

	granted := Effective(true, roles, overrides, testCatalog, time.Now())
	require.Equal(t, []string{"chemicals.issue", "chemicals.view", "tools.edit", "tools.view"}, granted)
}

func TestUnknownPermissionNamesAreHarmless(t *testing.T) {
	roles := []Role{{ID: 1, Name: "Viewer", Permissions: []string{"tools.view"}}}
	overrides := []Override{
		{PermissionName: "bogus.grant", Type: OverrideGrant},
		{PermissionName: "bogus.deny", Type: OverrideDeny},
	}

	granted := Effective(false, roles, overrides, testCatalog, time.Now())
	require.Contains(t, granted, "tools.view")
	require.Contains(t, granted, "bogus.grant")
	require.NotContains(t, granted, "bogus.deny")
}

func TestEffectiveOutputSortedAndDeduplicated(t *testing.T) {
	roles := []Role{
		{ID: 1, Permissions: []string{"tools.view", "chemicals.view"}},
		{ID: 2, Permissions: []string{"tools.view"}},
	}
	granted := Effective(false, roles, nil, testCatalog, time.Now())
	require.Equal(t, []string{"chemicals.view", "tools.view"}, granted)
}

func TestPermissionSetHelpers(t *testing.T) {
	granted := []string{"tools.view", "chemicals.view"}
	require.True(t, HasPermission(granted, "tools.view"))
	require.False(t, HasPermission(granted, "tools.edit"))
	require.True(t, HasAnyPermission(granted, "tools.edit", "chemicals.view"))
	require.False(t, HasAnyPermission(granted, "tools.edit"))
	require.True(t, HasAllPermissions(granted, "tools.view", "chemicals.view"))
	require.False(t, HasAllPermissions(granted, "tools.view", "tools.edit"))
	require.True(t, HasAnyPermission(granted))
}
