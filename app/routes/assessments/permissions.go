package assessments

import "github.com/izzatredzuan/imu-chiropractic-form/app/models"

// canView reports whether the caller may read the assessment. Students see
// only their own records; clinicians and admins see everything.
func canView(profile *models.Profile, a *models.Assessment) bool {
	switch profile.Role {
	case models.RoleAdmin, models.RoleClinician:
		return true
	case models.RoleStudent:
		return a.StudentID != nil && *a.StudentID == profile.ID
	}
	return false
}

// canEdit reports whether the caller may change the assessment's content.
// A clinician who is not the assigned evaluator may read but never mutate.
func canEdit(profile *models.Profile, a *models.Assessment) bool {
	switch profile.Role {
	case models.RoleAdmin:
		return true
	case models.RoleClinician:
		return a.EvaluatorID != nil && *a.EvaluatorID == profile.ID
	case models.RoleStudent:
		return a.StudentID != nil && *a.StudentID == profile.ID
	}
	return false
}

// canSignOff reports whether the caller may attest sections of the
// assessment: admins always, clinicians only on records they evaluate.
func canSignOff(profile *models.Profile, a *models.Assessment) bool {
	switch profile.Role {
	case models.RoleAdmin:
		return true
	case models.RoleClinician:
		return a.EvaluatorID != nil && *a.EvaluatorID == profile.ID
	}
	return false
}
