package models

// Role defines the possible profile roles.
type Role string

const (
	RoleStudent   Role = "student"
	RoleClinician Role = "clinician"
	RoleAdmin     Role = "admin"
)

// ValidRole reports whether s is a known profile role.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleStudent, RoleClinician, RoleAdmin:
		return true
	}
	return false
}

// Gender defines the accepted patient gender values.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ValidGender reports whether s is a known gender value.
func ValidGender(s string) bool {
	switch Gender(s) {
	case Male, Female:
		return true
	}
	return false
}
