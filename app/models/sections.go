package models

import (
	"strings"
	"time"
)

// Section identifies one independently editable, independently signable
// group of fields on an assessment.
type Section string

const (
	Section1      Section = "section_1"
	Section2      Section = "section_2"
	Section3      Section = "section_3"
	Section4      Section = "section_4"
	TreatmentPlan Section = "treatment_plan"
)

// SectionOrder is the clinical document order. Sign-off walks it forward;
// an edit to any section resets the sign-off of that section and every
// section after it.
var SectionOrder = []Section{Section1, Section2, Section3, Section4, TreatmentPlan}

// Predecessor returns the section that must be signed before s can be,
// or "" for the first section.
func (s Section) Predecessor() Section {
	for i, sec := range SectionOrder {
		if sec == s {
			if i == 0 {
				return ""
			}
			return SectionOrder[i-1]
		}
	}
	return ""
}

// From returns s and every section ordered after it.
func (s Section) From() []Section {
	for i, sec := range SectionOrder {
		if sec == s {
			return SectionOrder[i:]
		}
	}
	return nil
}

// IsSigned reports the sign-off flag for the given section.
func (a *Assessment) IsSigned(s Section) bool {
	switch s {
	case Section1:
		return a.IsSection1Signed
	case Section2:
		return a.IsSection2Signed
	case Section3:
		return a.IsSection3Signed
	case Section4:
		return a.IsSection4Signed
	case TreatmentPlan:
		return a.IsTreatmentPlanSigned
	}
	return false
}

// SetSignoff stamps the section's sign-off triple with the signer and time.
func (a *Assessment) SetSignoff(s Section, signedBy string, at time.Time) {
	by := signedBy
	switch s {
	case Section1:
		a.IsSection1Signed = true
		a.Section1SignedByID = &by
		a.Section1SignedAt = &at
	case Section2:
		a.IsSection2Signed = true
		a.Section2SignedByID = &by
		a.Section2SignedAt = &at
	case Section3:
		a.IsSection3Signed = true
		a.Section3SignedByID = &by
		a.Section3SignedAt = &at
	case Section4:
		a.IsSection4Signed = true
		a.Section4SignedByID = &by
		a.Section4SignedAt = &at
	case TreatmentPlan:
		a.IsTreatmentPlanSigned = true
		a.TreatmentPlanSignedByID = &by
		a.TreatmentPlanSignedAt = &at
	}
}

// ResetSignoff clears the section's sign-off triple back to unsigned.
func (a *Assessment) ResetSignoff(s Section) {
	switch s {
	case Section1:
		a.IsSection1Signed = false
		a.Section1SignedByID = nil
		a.Section1SignedAt = nil
	case Section2:
		a.IsSection2Signed = false
		a.Section2SignedByID = nil
		a.Section2SignedAt = nil
	case Section3:
		a.IsSection3Signed = false
		a.Section3SignedByID = nil
		a.Section3SignedAt = nil
	case Section4:
		a.IsSection4Signed = false
		a.Section4SignedByID = nil
		a.Section4SignedAt = nil
	case TreatmentPlan:
		a.IsTreatmentPlanSigned = false
		a.TreatmentPlanSignedByID = nil
		a.TreatmentPlanSignedAt = nil
	}
}

// ResetSignoffsFrom clears the sign-off of s and every section after it.
func (a *Assessment) ResetSignoffsFrom(s Section) {
	for _, sec := range s.From() {
		a.ResetSignoff(sec)
	}
}

// SectionComplete reports whether every required field of the section is
// present and non-blank. Completeness is about content only; it ignores the
// sign-off flags entirely.
func (a *Assessment) SectionComplete(s Section) bool {
	switch s {
	case Section1:
		return allFilled(a.PatientName, string(a.Gender), a.Summary, a.SpecialDirection) &&
			a.DateOfBirth != nil &&
			a.Pulse > 0 && a.Respiratory > 0 && a.SystolicBP > 0 && a.DiastolicBP > 0
	case Section2:
		return allFilled(
			a.ChiefComplaint, a.HistoryOfCondition, a.Pain,
			a.AggravatingFactors, a.RelievingFactors, a.AssociatedSymptoms,
			a.HealthHxReview, a.PastIllnesses, a.FamilyHx, a.PsychoSocialHx,
			a.Occupational, a.Diet, a.SystemReview, a.DifferentialDiagnosis,
		)
	case Section3:
		return allFilled(
			a.InspectionPosture, a.InspectionGait, a.InspectionRegional,
			a.Palpation, a.Percussion, a.Instrumentation,
			a.RomActive, a.RomPassive, a.RomResisted,
			a.FurtherDiagnosticProcedures, a.PTT, a.ChiropracticNotes,
			a.CranialNerves, a.Cerebellar, a.SpinalCord, a.NerveRoot,
			a.Peripheral, a.Pathological, a.OrthopedicAssessment,
			a.Imaging, a.Lab, a.WorkingDiagnosis,
		)
	case Section4:
		return allFilled(a.Diagnosis) && a.DiagnosisDate != nil
	case TreatmentPlan:
		return allFilled(a.Phase1, a.Phase2, a.Phase3, a.TreatmentRemarks)
	}
	return false
}

func allFilled(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// CurrentStage returns the first unsigned section in document order, or ""
// when every section is signed.
func (a *Assessment) CurrentStage() Section {
	for _, s := range SectionOrder {
		if !a.IsSigned(s) {
			return s
		}
	}
	return ""
}

// ProgressPercent is the share of signed sections, 0-100.
func (a *Assessment) ProgressPercent() int {
	signed := 0
	for _, s := range SectionOrder {
		if a.IsSigned(s) {
			signed++
		}
	}
	return signed * 100 / len(SectionOrder)
}
