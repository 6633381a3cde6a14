package assessments

import (
	"testing"
	"time"

	"github.com/izzatredzuan/imu-chiropractic-form/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	studentP = &models.Profile{
		ID: "11111111-1111-1111-1111-111111111111", MemberID: "S001",
		OfficialName: "Aisha Rahman", Role: models.RoleStudent,
	}
	evaluatorP = &models.Profile{
		ID: "22222222-2222-2222-2222-222222222222", MemberID: "C001",
		OfficialName: "Dr. Tan Wei", Role: models.RoleClinician,
	}
	otherClinicianP = &models.Profile{
		ID: "33333333-3333-3333-3333-333333333333", MemberID: "C002",
		OfficialName: "Dr. Lim Hui", Role: models.RoleClinician,
	}
	adminP = &models.Profile{
		ID: "44444444-4444-4444-4444-444444444444", MemberID: "A001",
		OfficialName: "Admin One", Role: models.RoleAdmin,
	}
)

func newAssessment() *models.Assessment {
	student := studentP.ID
	evaluator := evaluatorP.ID
	dob := time.Date(1999, 4, 12, 0, 0, 0, 0, time.UTC)
	return &models.Assessment{
		ID:          "aaaaaaaa-0000-0000-0000-000000000001",
		StudentID:   &student,
		EvaluatorID: &evaluator,
		PatientName: "Jane Doe",
		Gender:      models.Female,
		DateOfBirth: &dob,
		Pulse:       72,
		Respiratory: 16,
		SystolicBP:  120,
		DiastolicBP: 80,
	}
}

// assertTripleCoherent checks that for every section the signed flag and
// the signer/timestamp pair agree: unsigned means both nil.
func assertTripleCoherent(t *testing.T, a *models.Assessment) {
	t.Helper()
	triples := []struct {
		signed bool
		by     *string
		at     *time.Time
	}{
		{a.IsSection1Signed, a.Section1SignedByID, a.Section1SignedAt},
		{a.IsSection2Signed, a.Section2SignedByID, a.Section2SignedAt},
		{a.IsSection3Signed, a.Section3SignedByID, a.Section3SignedAt},
		{a.IsSection4Signed, a.Section4SignedByID, a.Section4SignedAt},
		{a.IsTreatmentPlanSigned, a.TreatmentPlanSignedByID, a.TreatmentPlanSignedAt},
	}
	for i, tr := range triples {
		if tr.signed {
			assert.NotNil(t, tr.by, "triple %d signed but signer nil", i)
			assert.NotNil(t, tr.at, "triple %d signed but timestamp nil", i)
		} else {
			assert.Nil(t, tr.by, "triple %d unsigned but signer set", i)
			assert.Nil(t, tr.at, "triple %d unsigned but timestamp set", i)
		}
	}
}

func TestSaveSection1ResetsDownstreamSignoffs(t *testing.T) {
	now := time.Now()
	a := newAssessment()
	a.SetSignoff(models.Section1, evaluatorP.ID, now)
	a.SetSignoff(models.Section2, evaluatorP.ID, now)

	err := Transition(a, ActionSaveSection1, studentP, now)
	require.NoError(t, err)

	assert.False(t, a.IsSection1Signed)
	assert.False(t, a.IsSection2Signed)
	assert.Nil(t, a.Section1SignedByID)
	assert.Nil(t, a.Section1SignedAt)
	assert.Nil(t, a.Section2SignedByID)
	assert.Nil(t, a.Section2SignedAt)
	assertTripleCoherent(t, a)
}

func TestSaveSection1ResetsThroughTreatmentPlan(t *testing.T) {
	now := time.Now()
	a := newAssessment()
	for _, s := range models.SectionOrder {
		a.SetSignoff(s, evaluatorP.ID, now)
	}

	require.NoError(t, Transition(a, ActionSaveSection1, adminP, now))

	for _, s := range models.SectionOrder {
		assert.False(t, a.IsSigned(s), "section %s should be unsigned after upstream edit", s)
	}
	assertTripleCoherent(t, a)
}

func TestSaveMiddleSectionKeepsUpstreamSignoffs(t *testing.T) {
	now := time.Now()
	a := newAssessment()
	a.SetSignoff(models.Section1, evaluatorP.ID, now)
	a.SetSignoff(models.Section2, evaluatorP.ID, now)
	a.SetSignoff(models.Section3, evaluatorP.ID, now)

	require.NoError(t, Transition(a, ActionSaveSection2, studentP, now))

	assert.True(t, a.IsSection1Signed, "upstream sign-off must survive")
	assert.False(t, a.IsSection2Signed)
	assert.False(t, a.IsSection3Signed)
	assertTripleCoherent(t, a)
}

func TestSignOffRequiresPredecessorSigned(t *testing.T) {
	now := time.Now()
	a := newAssessment()

	err := Transition(a, ActionSignOffSection2, evaluatorP, now)
	require.ErrorIs(t, err, ErrInvalidState)
	assert.False(t, a.IsSection2Signed)

	require.NoError(t, Transition(a, ActionSignOffSection1, evaluatorP, now))
	require.NoError(t, Transition(a, ActionSignOffSection2, evaluatorP, now))
	assert.True(t, a.IsSection2Signed)
	assert.Equal(t, evaluatorP.ID, *a.Section2SignedByID)
}

func TestSignOffChainThroughSection4(t *testing.T) {
	now := time.Now()
	a := newAssessment()
	a.SetSignoff(models.Section1, evaluatorP.ID, now)
	a.SetSignoff(models.Section2, evaluatorP.ID, now)

	err := Transition(a, ActionSignOffSection4, evaluatorP, now)
	require.ErrorIs(t, err, ErrInvalidState)

	require.NoError(t, Transition(a, ActionSignOffSection3, evaluatorP, now))
	require.NoError(t, Transition(a, ActionSignOffSection4, evaluatorP, now))
	assert.True(t, a.IsSection4Signed)
}

func TestTreatmentPlanSignOffHasNoOrderingGate(t *testing.T) {
	a := newAssessment()

	require.NoError(t, Transition(a, ActionSignOffTreatmentPlan, evaluatorP, time.Now()))
	assert.True(t, a.IsTreatmentPlanSigned)
	assert.Equal(t, evaluatorP.ID, *a.TreatmentPlanSignedByID)
}

func TestStudentCannotSignOff(t *testing.T) {
	a := newAssessment()

	err := Transition(a, ActionSignOffSection1, studentP, time.Now())
	require.ErrorIs(t, err, ErrForbidden)
	assert.False(t, a.IsSection1Signed)
	assertTripleCoherent(t, a)
}

func TestUnassignedClinicianCannotSignOrEdit(t *testing.T) {
	a := newAssessment()

	err := Transition(a, ActionSignOffSection1, otherClinicianP, time.Now())
	require.ErrorIs(t, err, ErrForbidden)

	err = Transition(a, ActionSaveSection2, otherClinicianP, time.Now())
	require.ErrorIs(t, err, ErrForbidden)
}

func TestAssignedClinicianCanEditSections(t *testing.T) {
	a := newAssessment()
	require.NoError(t, Transition(a, ActionSaveSection3, evaluatorP, time.Now()))
}

func TestStudentCannotEditForeignAssessment(t *testing.T) {
	a := newAssessment()
	foreign := &models.Profile{ID: "55555555-5555-5555-5555-555555555555", Role: models.RoleStudent}

	err := Transition(a, ActionSaveSection1, foreign, time.Now())
	require.ErrorIs(t, err, ErrForbidden)
}

func TestPlainSaveLeavesSignoffsAlone(t *testing.T) {
	now := time.Now()
	a := newAssessment()
	a.SetSignoff(models.Section1, evaluatorP.ID, now)

	require.NoError(t, Transition(a, ActionSave, studentP, now))
	assert.True(t, a.IsSection1Signed)
}

func TestSignConsentStampsTriple(t *testing.T) {
	now := time.Now()
	a := newAssessment()

	require.NoError(t, Transition(a, ActionSignConsent, studentP, now))
	assert.True(t, a.IsConsentSigned)
	assert.Equal(t, "Jane Doe", a.ConsentSignedBy)
	require.NotNil(t, a.ConsentSignedAt)
	assert.Equal(t, now, *a.ConsentSignedAt)
}

func TestDischargeRequiresSignedTreatmentPlan(t *testing.T) {
	now := time.Now()
	a := newAssessment()

	err := Transition(a, ActionDischarge, evaluatorP, now)
	require.ErrorIs(t, err, ErrInvalidState)

	a.SetSignoff(models.TreatmentPlan, evaluatorP.ID, now)
	require.NoError(t, Transition(a, ActionDischarge, evaluatorP, now))
	assert.True(t, a.IsDischarged)
}

func TestDischargedAssessmentRejectsEverything(t *testing.T) {
	now := time.Now()
	a := newAssessment()
	a.IsDischarged = true

	for _, action := range []Action{
		ActionSave, ActionSaveSection1, ActionSignOffSection1,
		ActionSaveTreatmentPlan, ActionSignOffTreatmentPlan, ActionDischarge,
	} {
		err := Transition(a, action, adminP, now)
		assert.ErrorIs(t, err, ErrInvalidState, "action %s on discharged record", action)
	}
}

func TestUnknownActionIsRejected(t *testing.T) {
	a := newAssessment()
	err := Transition(a, Action("sign_off_section_9"), adminP, time.Now())
	require.ErrorIs(t, err, ErrUnknownAction)
}

// Full walkthrough of the create → sign → edit → reset scenario.
func TestSignOffLifecycleScenario(t *testing.T) {
	now := time.Now()
	a := newAssessment()

	// Fresh record: nothing signed.
	for _, s := range models.SectionOrder {
		require.False(t, a.IsSigned(s))
	}
	assert.Equal(t, models.Section1, a.CurrentStage())
	assert.Equal(t, 0, a.ProgressPercent())

	// Evaluator signs section 1.
	require.NoError(t, Transition(a, ActionSignOffSection1, evaluatorP, now))
	assert.True(t, a.IsSection1Signed)
	assert.Equal(t, evaluatorP.ID, *a.Section1SignedByID)
	assert.Equal(t, models.Section2, a.CurrentStage())
	assert.Equal(t, 20, a.ProgressPercent())

	// Student edits section 1: the signature no longer attests to the
	// stored vitals, so it must fall.
	require.NoError(t, Transition(a, ActionSaveSection1, studentP, now.Add(time.Minute)))
	assert.False(t, a.IsSection1Signed)
	assert.Nil(t, a.Section1SignedByID)
	assert.Nil(t, a.Section1SignedAt)
	assert.Equal(t, models.Section1, a.CurrentStage())
	assertTripleCoherent(t, a)
}
