package shared

// Core platform permissions.
const (
	PermUsersView = "users.view"
	PermUsersEdit = "users.edit"

	PermRolesView = "roles.view"
	PermRolesEdit = "roles.edit"

	PermPermissionsView = "permissions.view"
	PermPermissionsEdit = "permissions.edit"

	PermDepartmentsView = "departments.view"
	PermDepartmentsEdit = "departments.edit"

	PermAnnouncementsManage = "announcements.manage"

	PermChemicalsView  = "chemicals.view"
	PermChemicalsEdit  = "chemicals.edit"
	PermChemicalsIssue = "chemicals.issue"

	PermToolsView      = "tools.view"
	PermToolsEdit      = "tools.edit"
	PermToolsCalibrate = "tools.calibrate"

	PermWarehousesView = "warehouses.view"
	PermWarehousesEdit = "warehouses.edit"

	PermKitsView = "kits.view"
	PermKitsEdit = "kits.edit"

	PermOrdersView = "orders.view"
	PermOrdersEdit = "orders.edit"

	PermReportsView = "reports.view"

	PermSecurityManage = "security.manage"
	PermAdminDashboard = "admin.dashboard"
)

// CoreScopes lists all permissions related to the core platform.
func CoreScopes() []string {
	return []string{
		PermUsersView,
		PermUsersEdit,
		PermRolesView,
		PermRolesEdit,
		PermPermissionsView,
		PermPermissionsEdit,
		PermDepartmentsView,
		PermDepartmentsEdit,
		PermAnnouncementsManage,
		PermChemicalsView,
		PermChemicalsEdit,
		PermChemicalsIssue,
		PermToolsView,
		PermToolsEdit,
		PermToolsCalibrate,
		PermWarehousesView,
		PermWarehousesEdit,
		PermKitsView,
		PermKitsEdit,
		PermOrdersView,
		PermOrdersEdit,
		PermReportsView,
		PermSecurityManage,
		PermAdminDashboard,
	}
}
