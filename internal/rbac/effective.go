package rbac

import (
	"sort"
	"strings"
	"time"
)

// Effective computes the permission names currently in effect. Role
// permission sets are unioned, then active overrides are applied on top:
// grant adds, deny removes, so a deny always beats a role grant and a grant
// always beats absence. Administrators short-circuit to the full catalog and
// ignore roles and overrides entirely. Unknown permission names pass through
// additively or subtractively with no effect.
func Effective(isAdmin bool, roles []Role, overrides []Override, catalog []Permission, now time.Time) []string {
	if isAdmin {
		set := make(map[string]struct{}, len(catalog))
		for _, perm := range catalog {
			if name := strings.TrimSpace(perm.Name); name != "" {
				set[name] = struct{}{}
			}
		}
		return setToSorted(set)
	}
	set := make(map[string]struct{})
	for _, role := range roles {
		for _, name := range role.Permissions {
			if name = strings.TrimSpace(name); name != "" {
				set[name] = struct{}{}
			}
		}
	}
	now = now.UTC()
	for _, override := range overrides {
		if !override.ActiveAt(now) {
			continue
		}
		name := strings.TrimSpace(override.PermissionName)
		if name == "" {
			continue
		}
		switch override.Type {
		case OverrideGrant:
			set[name] = struct{}{}
		case OverrideDeny:
			delete(set, name)
		}
	}
	return setToSorted(set)
}

// HasPermission reports whether name is present in the granted set.
func HasPermission(granted []string, name string) bool {
	for _, perm := range granted {
		if perm == name {
			return true
		}
	}
	return false
}

// HasAnyPermission reports whether at least one required permission is
// granted. An empty requirement always passes.
func HasAnyPermission(granted []string, required ...string) bool {
	if len(required) == 0 {
		return true
	}
	set := make(map[string]struct{}, len(granted))
	for _, perm := range granted {
		set[perm] = struct{}{}
	}
	for _, req := range required {
		if _, ok := set[req]; ok {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether every required permission is granted.
func HasAllPermissions(granted []string, required ...string) bool {
	if len(required) == 0 {
		return true
	}
	set := make(map[string]struct{}, len(granted))
	for _, perm := range granted {
		set[perm] = struct{}{}
	}
	for _, req := range required {
		if _, ok := set[req]; !ok {
			return false
		}
	}
	return true
}

func setToSorted(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
