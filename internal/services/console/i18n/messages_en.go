package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.AmericanEnglish

	// Layout
	message.SetString(lang, "app.name", "Staffdesk")
	message.SetString(lang, "title.page", "%s | Staffdesk")
	message.SetString(lang, "nav.home", "Home")
	message.SetString(lang, "nav.employees", "Employees")
	message.SetString(lang, "nav.projects", "Projects")
	message.SetString(lang, "state.loading", "Loading...")

	// Home
	message.SetString(lang, "home.heading", "Staff console")
	message.SetString(lang, "home.subtitle", "Manage employees, projects, and who works on what.")
	message.SetString(lang, "home.employees_link", "View employees")
	message.SetString(lang, "home.projects_link", "View projects")

	// Employees
	message.SetString(lang, "employees.heading", "Employees")
	message.SetString(lang, "employees.add", "Add Employee")
	message.SetString(lang, "employees.empty", "No employees found.")
	message.SetString(lang, "employees.error", "Error loading employees")
	message.SetString(lang, "employees.col.name", "Name")
	message.SetString(lang, "employees.col.email", "Email")
	message.SetString(lang, "employees.col.positions", "Positions")
	message.SetString(lang, "employees.col.start_date", "Start date")
	message.SetString(lang, "employees.col.status", "Status")
	message.SetString(lang, "employees.status.active", "Active")
	message.SetString(lang, "employees.status.former", "Former")
	message.SetString(lang, "employee.back", "Back to employees")
	message.SetString(lang, "employee.edit", "Edit")
	message.SetString(lang, "employee.delete", "Delete")
	message.SetString(lang, "employee.assign", "Assign to Project")
	message.SetString(lang, "employee.error", "Error loading employee")
	message.SetString(lang, "employee.not_found", "Employee not found")
	message.SetString(lang, "employee.projects", "Projects")
	message.SetString(lang, "employee.projects_error", "Error loading assignments")
	message.SetString(lang, "employee.no_projects", "Not assigned to any project.")
	message.SetString(lang, "employee.started", "Started %s")
	message.SetString(lang, "employee.ended", "Ended %s")

	// Projects
	message.SetString(lang, "projects.heading", "Projects")
	message.SetString(lang, "projects.add", "Add Project")
	message.SetString(lang, "projects.empty", "No projects found.")
	message.SetString(lang, "projects.error", "Error loading projects")
	message.SetString(lang, "projects.col.name", "Name")
	message.SetString(lang, "projects.col.description", "Description")
	message.SetString(lang, "projects.col.tech_stack", "Tech stack")
	message.SetString(lang, "projects.col.start_date", "Start date")
	message.SetString(lang, "project.back", "Back to projects")
	message.SetString(lang, "project.edit", "Edit")
	message.SetString(lang, "project.delete", "Delete")
	message.SetString(lang, "project.assign", "Add Employee")
	message.SetString(lang, "project.error", "Error loading project")
	message.SetString(lang, "project.not_found", "Project not found")
	message.SetString(lang, "project.employees", "Team")
	message.SetString(lang, "project.employees_error", "Error loading team")
	message.SetString(lang, "project.no_employees", "No employees assigned.")
	message.SetString(lang, "project.dates", "%s to %s")
	message.SetString(lang, "project.ongoing", "ongoing")

	// Assignments
	message.SetString(lang, "assignment.since", "Since %s")
	message.SetString(lang, "assignment.remove", "Remove")

	// Form fields
	message.SetString(lang, "field.name", "Name")
	message.SetString(lang, "field.email", "Email")
	message.SetString(lang, "field.description", "Description")
	message.SetString(lang, "field.start_date", "Start date")
	message.SetString(lang, "field.end_date", "End date")
	message.SetString(lang, "field.positions", "Positions")
	message.SetString(lang, "field.tech_stack", "Tech stack")
	message.SetString(lang, "field.list_hint", "Comma-separated")
	message.SetString(lang, "field.project", "Project")
	message.SetString(lang, "field.employee", "Employee")
	message.SetString(lang, "field.role", "Role")
	message.SetString(lang, "field.select", "Select...")

	// Modals
	message.SetString(lang, "modal.close", "Close")
	message.SetString(lang, "modal.cancel", "Cancel")
	message.SetString(lang, "modal.options_error", "Could not load options.")
	message.SetString(lang, "modal.create_employee.title", "Add Employee")
	message.SetString(lang, "modal.create_employee.submit", "Create")
	message.SetString(lang, "modal.create_employee.busy", "Creating...")
	message.SetString(lang, "modal.update_employee.title", "Update Employee")
	message.SetString(lang, "modal.update_employee.submit", "Update")
	message.SetString(lang, "modal.update_employee.busy", "Updating...")
	message.SetString(lang, "modal.delete_employee.title", "Delete Employee")
	message.SetString(lang, "modal.delete_employee.confirm", "Are you sure you want to delete %s? This action cannot be undone.")
	message.SetString(lang, "modal.delete_employee.submit", "Delete")
	message.SetString(lang, "modal.delete_employee.busy", "Deleting...")
	message.SetString(lang, "modal.create_project.title", "Add Project")
	message.SetString(lang, "modal.create_project.submit", "Create")
	message.SetString(lang, "modal.create_project.busy", "Creating...")
	message.SetString(lang, "modal.update_project.title", "Update Project")
	message.SetString(lang, "modal.update_project.submit", "Update")
	message.SetString(lang, "modal.update_project.busy", "Updating...")
	message.SetString(lang, "modal.delete_project.title", "Delete Project")
	message.SetString(lang, "modal.delete_project.confirm", "Are you sure you want to delete %s? This action cannot be undone.")
	message.SetString(lang, "modal.delete_project.submit", "Delete")
	message.SetString(lang, "modal.delete_project.busy", "Deleting...")
	message.SetString(lang, "modal.assign_employee_to_project.title", "Assign to Project")
	message.SetString(lang, "modal.assign_employee_to_project.submit", "Assign")
	message.SetString(lang, "modal.assign_employee_to_project.busy", "Assigning...")
	message.SetString(lang, "modal.assign_project_to_employee.title", "Add Employee to Project")
	message.SetString(lang, "modal.assign_project_to_employee.submit", "Add")
	message.SetString(lang, "modal.assign_project_to_employee.busy", "Adding...")
	message.SetString(lang, "modal.unassign_employee.title", "Remove Assignment")
	message.SetString(lang, "modal.unassign_employee.confirm", "Remove %s from %s?")
	message.SetString(lang, "modal.unassign_employee.submit", "Remove")
	message.SetString(lang, "modal.unassign_employee.busy", "Removing...")
	message.SetString(lang, "modal.unassign_project.title", "Remove Assignment")
	message.SetString(lang, "modal.unassign_project.confirm", "Remove %s from %s?")
	message.SetString(lang, "modal.unassign_project.submit", "Remove")
	message.SetString(lang, "modal.unassign_project.busy", "Removing...")

	// Notices
	message.SetString(lang, "notice.employee_created", "Employee created successfully")
	message.SetString(lang, "notice.employee_create_failed", "Failed to create employee")
	message.SetString(lang, "notice.employee_updated", "Employee updated successfully")
	message.SetString(lang, "notice.employee_update_failed", "Failed to update employee")
	message.SetString(lang, "notice.employee_deleted", "Employee deleted")
	message.SetString(lang, "notice.employee_delete_failed", "Failed to delete employee")
	message.SetString(lang, "notice.project_created", "Project created successfully")
	message.SetString(lang, "notice.project_create_failed", "Failed to create project")
	message.SetString(lang, "notice.project_updated", "Project updated successfully")
	message.SetString(lang, "notice.project_update_failed", "Failed to update project")
	message.SetString(lang, "notice.project_deleted", "Project deleted")
	message.SetString(lang, "notice.project_delete_failed", "Failed to delete project")
	message.SetString(lang, "notice.employee_assigned", "Employee assigned to project")
	message.SetString(lang, "notice.employee_assign_failed", "Failed to assign employee")
	message.SetString(lang, "notice.employee_added", "Employee added to project")
	message.SetString(lang, "notice.employee_add_failed", "Failed to add employee")
	message.SetString(lang, "notice.assignment_removed", "Assignment removed successfully")
	message.SetString(lang, "notice.assignment_remove_failed", "Failed to remove assignment")
	message.SetString(lang, "notice.saved", "Saved")
	message.SetString(lang, "notice.save_failed", "Failed to save changes")
	message.SetString(lang, "notice.busy", "Already saving, please wait")
	message.SetString(lang, "notice.modal_expired", "This dialog is no longer open")

	// Validation
	message.SetString(lang, "validation.required", "This field is required.")
	message.SetString(lang, "validation.date", "Use the format YYYY-MM-DD.")
	message.SetString(lang, "validation.email", "Enter a valid email address.")
	message.SetString(lang, "validation.invalid", "This value is invalid.")

	// Errors
	message.SetString(lang, "error.title", "Something went wrong")
	message.SetString(lang, "error.not_found", "Page not found")
	message.SetString(lang, "error.unavailable", "The staff service is unavailable. Please try again.")
	message.SetString(lang, "error.forbidden", "This request was rejected.")
	message.SetString(lang, "error.invalid_request", "The request could not be understood.")
	message.SetString(lang, "error.back_home", "Back to home")
}
