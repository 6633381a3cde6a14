package assessments

import (
	"errors"
	"fmt"
	"time"

	"github.com/izzatredzuan/imu-chiropractic-form/app/models"
)

// Action is the workflow verb carried on an update request.
type Action string

const (
	ActionSave Action = "save"

	ActionSaveSection1      Action = "save_section_1"
	ActionSaveSection2      Action = "save_section_2"
	ActionSaveSection3      Action = "save_section_3"
	ActionSaveSection4      Action = "save_section_4"
	ActionSaveTreatmentPlan Action = "save_treatment_plan"

	ActionSignOffSection1      Action = "sign_off_section_1"
	ActionSignOffSection2      Action = "sign_off_section_2"
	ActionSignOffSection3      Action = "sign_off_section_3"
	ActionSignOffSection4      Action = "sign_off_section_4"
	ActionSignOffTreatmentPlan Action = "sign_off_treatment_plan"

	ActionSignConsent Action = "sign_consent"
	ActionDischarge   Action = "discharge"
)

// Error kinds the update handler maps onto HTTP status codes.
var (
	ErrForbidden     = errors.New("forbidden")
	ErrInvalidState  = errors.New("invalid state")
	ErrUnknownAction = errors.New("unknown action")
)

var saveSections = map[Action]models.Section{
	ActionSaveSection1:      models.Section1,
	ActionSaveSection2:      models.Section2,
	ActionSaveSection3:      models.Section3,
	ActionSaveSection4:      models.Section4,
	ActionSaveTreatmentPlan: models.TreatmentPlan,
}

var signOffSections = map[Action]models.Section{
	ActionSignOffSection1:      models.Section1,
	ActionSignOffSection2:      models.Section2,
	ActionSignOffSection3:      models.Section3,
	ActionSignOffSection4:      models.Section4,
	ActionSignOffTreatmentPlan: models.TreatmentPlan,
}

// SaveSection returns the section a save action addresses.
func (a Action) SaveSection() (models.Section, bool) {
	s, ok := saveSections[a]
	return s, ok
}

// SignOffSection returns the section a sign-off action addresses.
func (a Action) SignOffSection() (models.Section, bool) {
	s, ok := signOffSections[a]
	return s, ok
}

// Transition validates the requested action against the caller and the
// current sign-off state and applies the resulting sign-off changes to the
// assessment value. Field changes are applied by the caller beforehand;
// nothing is persisted here, so a returned error leaves the stored record
// untouched.
//
// Rules:
//   - any save resets the edited section's sign-off and cascades the reset
//     through every later section, so no signature ever attests to content
//     that changed after it was given
//   - sign-off requires clinician or admin role, and a clinician must be
//     the assigned evaluator
//   - section N can only be signed while section N-1 is signed; the
//     treatment plan sign-off carries no ordering precondition
//   - a discharged assessment accepts no further actions
func Transition(a *models.Assessment, action Action, caller *models.Profile, now time.Time) error {
	if a.IsDischarged {
		return fmt.Errorf("%w: assessment is discharged", ErrInvalidState)
	}

	switch {
	case action == ActionSave:
		// Plain field update, sign-off state untouched.
		if !canEdit(caller, a) {
			return fmt.Errorf("%w: you cannot edit this assessment", ErrForbidden)
		}
		return nil

	case action == ActionSignConsent:
		if !canEdit(caller, a) {
			return fmt.Errorf("%w: you cannot edit this assessment", ErrForbidden)
		}
		a.IsConsentSigned = true
		a.ConsentSignedBy = a.PatientName
		at := now
		a.ConsentSignedAt = &at
		return nil

	case action == ActionDischarge:
		if !canSignOff(caller, a) {
			return fmt.Errorf("%w: only the assigned clinician or an admin can discharge", ErrForbidden)
		}
		if !a.IsSigned(models.TreatmentPlan) {
			return fmt.Errorf("%w: treatment plan must be signed before discharge", ErrInvalidState)
		}
		a.IsDischarged = true
		return nil
	}

	if section, ok := action.SaveSection(); ok {
		if !canEdit(caller, a) {
			return fmt.Errorf("%w: you cannot edit this assessment", ErrForbidden)
		}
		a.ResetSignoffsFrom(section)
		return nil
	}

	if section, ok := action.SignOffSection(); ok {
		if !canSignOff(caller, a) {
			return fmt.Errorf("%w: only the assigned clinician or an admin can sign off", ErrForbidden)
		}
		if pred := section.Predecessor(); pred != "" && section != models.TreatmentPlan && !a.IsSigned(pred) {
			return fmt.Errorf("%w: %s must be signed before %s", ErrInvalidState, sectionLabel(pred), sectionLabel(section))
		}
		a.SetSignoff(section, caller.ID, now)
		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownAction, string(action))
}

func sectionLabel(s models.Section) string {
	switch s {
	case models.Section1:
		return "section 1"
	case models.Section2:
		return "section 2"
	case models.Section3:
		return "section 3"
	case models.Section4:
		return "section 4"
	case models.TreatmentPlan:
		return "treatment plan"
	}
	return string(s)
}
