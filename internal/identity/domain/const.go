package domain

// Builtin permission codes for the department portal. Loaded by the
// seed-permissions command; administrators can add more at runtime.
const (
	PermUsersCreate   = "users.create"
	PermUsersUpdate   = "users.update"
	PermUsersDelete   = "users.delete"
	PermUsersView     = "users.view"
	PermReportsCreate = "reports.create"
	PermReportsView   = "reports.view"
	PermReportsDelete = "reports.delete"
	PermFinesCreate   = "fines.create"
	PermFinesView     = "fines.view"
	PermVehiclesView  = "vehicles.view"
	PermBolosManage   = "bolos.manage"
	PermRolesManage   = "roles.manage"
)

// BuiltinPermissionCodes lists every builtin code in seed order.
var BuiltinPermissionCodes = []string{
	PermUsersCreate,
	PermUsersUpdate,
	PermUsersDelete,
	PermUsersView,
	PermReportsCreate,
	PermReportsView,
	PermReportsDelete,
	PermFinesCreate,
	PermFinesView,
	PermVehiclesView,
	PermBolosManage,
	PermRolesManage,
}
