package shared

// Cache tags. Queries register under these and mutations invalidate them so
// cached results are dropped and subscribers re-query.
const (
	TagUsers         = "users"
	TagRoles         = "roles"
	TagPermissions   = "permissions"
	TagOverrides     = "user-overrides"
	TagDepartments   = "departments"
	TagAnnouncements = "announcements"
	TagAircraft      = "aircraft-types"
	TagChemicals     = "chemicals"
	TagIssuances     = "chemical-issuances"
	TagTools         = "tools"
	TagWarehouses    = "warehouses"
	TagKits          = "kits"
	TagOrders        = "orders"
	TagReports       = "reports"
	TagStats         = "admin-stats"
	TagSecurity      = "security-settings"
)
