package constants

import "fmt"

// Role names as stored on users.role
const (
	RoleStudent = "student"
	RoleFaculty = "faculty"
	RoleAdmin   = "admin"
)

// Error message templates per role gate
const (
	ErrOnlyFacultyCanAccess = "Only faculty or admin may access %s."
	ErrOnlyAdminsCanAccess  = "Only admins may access %s."
)

func RoleErrorFaculty(feature string) string {
	return fmt.Sprintf(ErrOnlyFacultyCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleFaculty,
		RoleAdmin,
	}

	// Roles allowed to organize events (create/update/delete their own)
	OrganizerRoles = []string{
		RoleStudent,
		RoleFaculty,
		RoleAdmin,
	}

	FacultyAndAbove = []string{
		RoleFaculty,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
