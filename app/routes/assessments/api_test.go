package assessments

import (
	"bytes"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/izzatredzuan/imu-chiropractic-form/app/models"
	"github.com/izzatredzuan/imu-chiropractic-form/app/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp wires the assessment handlers behind a middleware that injects
// the caller's profile, standing in for the JWT middleware. The returned
// directory is where the signature store writes its images.
func newTestApp(t *testing.T, profile *models.Profile, db *sql.DB) (*fiber.App, string) {
	t.Helper()
	mediaDir := t.TempDir()
	store := storage.NewDiskStore(mediaDir)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("profile", profile)
		return c.Next()
	})
	app.Get("/api/assessments", func(c *fiber.Ctx) error { return GetAssessmentsAPI(c, db) })
	app.Post("/api/assessments", func(c *fiber.Ctx) error { return CreateAssessmentAPI(c, db, store) })
	app.Put("/api/assessments", func(c *fiber.Ctx) error { return UpdateAssessmentAPI(c, db, store) })
	app.Get("/api/assessments/:id", func(c *fiber.Ctx) error { return GetAssessmentAPI(c, db) })
	return app, mediaDir
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	payload := map[string]interface{}{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &payload))
	}
	return resp.StatusCode, payload
}

func strv(p *string) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func timev(p *time.Time) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

var assessmentTestColumns = []string{
	"id", "student_id", "evaluator_id",
	"is_consent_signed", "consent_signed_by", "consent_signed_at", "consent_signature_path",
	"marketing_consent", "education_consent", "research_consent",
	"patient_name", "gender", "date_of_birth", "pulse", "respiratory",
	"systolic_bp", "diastolic_bp", "summary", "special_direction",
	"is_section_1_signed", "section_1_signed_by", "section_1_signed_at",
	"chief_complaint", "history_of_condition", "pain", "aggravating_factors",
	"relieving_factors", "associated_symptoms", "health_hx_review", "past_illnesses",
	"family_hx", "psycho_social_hx", "occupational", "diet", "system_review",
	"differential_diagnosis", "special_examination_instruction",
	"is_section_2_signed", "section_2_signed_by", "section_2_signed_at",
	"inspection_posture", "inspection_gait", "inspection_regional", "palpation",
	"percussion", "instrumentation", "rom_active", "rom_passive", "rom_resisted",
	"further_diagnostic_procedures", "ptt", "cranial_nerves", "cerebellar",
	"spinal_cord", "nerve_root", "peripheral", "pathological",
	"orthopedic_assessment", "chiropractic_notes", "imaging", "lab",
	"working_diagnosis",
	"is_section_3_signed", "section_3_signed_by", "section_3_signed_at",
	"diagnosis", "diagnosis_date",
	"is_section_4_signed", "section_4_signed_by", "section_4_signed_at",
	"phase_1", "phase_2", "phase_3", "treatment_remarks",
	"is_treatment_plan_signed", "treatment_plan_signed_by", "treatment_plan_signed_at",
	"is_discharged",
	"created_at", "created_by", "updated_at", "updated_by",
	"student_member_id", "student_official_name", "evaluator_member_id", "evaluator_official_name",
}

// assessmentMockRows renders an assessment as a full result row in the same
// order as the select list in db.go.
func assessmentMockRows(a *models.Assessment) *sqlmock.Rows {
	var studentMember, studentName, evalMember, evalName interface{}
	if a.Student != nil {
		studentMember, studentName = a.Student.MemberID, a.Student.OfficialName
	}
	if a.Evaluator != nil {
		evalMember, evalName = a.Evaluator.MemberID, a.Evaluator.OfficialName
	}

	return sqlmock.NewRows(assessmentTestColumns).AddRow(
		a.ID, strv(a.StudentID), strv(a.EvaluatorID),
		a.IsConsentSigned, a.ConsentSignedBy, timev(a.ConsentSignedAt), a.ConsentSignaturePath,
		a.MarketingConsent, a.EducationConsent, a.ResearchConsent,
		a.PatientName, string(a.Gender), timev(a.DateOfBirth), a.Pulse, a.Respiratory,
		a.SystolicBP, a.DiastolicBP, a.Summary, a.SpecialDirection,
		a.IsSection1Signed, strv(a.Section1SignedByID), timev(a.Section1SignedAt),
		a.ChiefComplaint, a.HistoryOfCondition, a.Pain, a.AggravatingFactors,
		a.RelievingFactors, a.AssociatedSymptoms, a.HealthHxReview, a.PastIllnesses,
		a.FamilyHx, a.PsychoSocialHx, a.Occupational, a.Diet, a.SystemReview,
		a.DifferentialDiagnosis, a.SpecialExaminationInstruction,
		a.IsSection2Signed, strv(a.Section2SignedByID), timev(a.Section2SignedAt),
		a.InspectionPosture, a.InspectionGait, a.InspectionRegional, a.Palpation,
		a.Percussion, a.Instrumentation, a.RomActive, a.RomPassive, a.RomResisted,
		a.FurtherDiagnosticProcedures, a.PTT, a.CranialNerves, a.Cerebellar,
		a.SpinalCord, a.NerveRoot, a.Peripheral, a.Pathological,
		a.OrthopedicAssessment, a.ChiropracticNotes, a.Imaging, a.Lab,
		a.WorkingDiagnosis,
		a.IsSection3Signed, strv(a.Section3SignedByID), timev(a.Section3SignedAt),
		a.Diagnosis, timev(a.DiagnosisDate),
		a.IsSection4Signed, strv(a.Section4SignedByID), timev(a.Section4SignedAt),
		a.Phase1, a.Phase2, a.Phase3, a.TreatmentRemarks,
		a.IsTreatmentPlanSigned, strv(a.TreatmentPlanSignedByID), timev(a.TreatmentPlanSignedAt),
		a.IsDischarged,
		a.CreatedAt, strv(a.CreatedByID), a.UpdatedAt, strv(a.UpdatedByID),
		studentMember, studentName, evalMember, evalName,
	)
}

func TestUpdateRequiresAssessmentID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	app, _ := newTestApp(t, studentP, db)
	status, body := doJSON(t, app, "PUT", "/api/assessments", fiber.Map{
		"action": "save_section_1",
	})

	assert.Equal(t, 400, status)
	assert.Equal(t, "Assessment ID is required", body["assessment_id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUnknownAssessmentIs404(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnError(sql.ErrNoRows)

	app, _ := newTestApp(t, studentP, db)
	status, body := doJSON(t, app, "PUT", "/api/assessments", fiber.Map{
		"assessment_id": "aaaaaaaa-0000-0000-0000-00000000dead",
		"action":        "save_section_1",
	})

	assert.Equal(t, 404, status)
	assert.Equal(t, "Assessment not found", body["detail"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentSignOffOverHTTPIsForbidden(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	a := newAssessment()
	mock.ExpectQuery("SELECT").WillReturnRows(assessmentMockRows(a))

	app, _ := newTestApp(t, studentP, db)
	status, body := doJSON(t, app, "PUT", "/api/assessments", fiber.Map{
		"assessment_id": a.ID,
		"action":        "sign_off_section_1",
	})

	assert.Equal(t, 403, status)
	assert.Contains(t, body["detail"], "sign off")
	assert.NoError(t, mock.ExpectationsWereMet(), "no write may happen on a forbidden action")
}

func TestForeignStudentCannotSeeAssessment(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	a := newAssessment()
	mock.ExpectQuery("SELECT").WillReturnRows(assessmentMockRows(a))

	foreign := &models.Profile{ID: "99999999-9999-9999-9999-999999999999", Role: models.RoleStudent}
	app, _ := newTestApp(t, foreign, db)
	status, body := doJSON(t, app, "GET", "/api/assessments/"+a.ID, nil)

	assert.Equal(t, 403, status)
	assert.Equal(t, "You cannot view this assessment", body["detail"])
}

func TestCreateAsStudentRequiresEvaluator(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	app, _ := newTestApp(t, studentP, db)
	status, body := doJSON(t, app, "POST", "/api/assessments", fiber.Map{
		"patient_name":  "Jane Doe",
		"gender":        "female",
		"date_of_birth": "1999-04-12",
		"pulse":         72,
		"respiratory":   16,
		"systolic_bp":   120,
		"diastolic_bp":  80,
	})

	assert.Equal(t, 400, status)
	assert.Equal(t, "Evaluator is required", body["evaluator"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAsAdminRequiresStudent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	app, _ := newTestApp(t, adminP, db)
	status, body := doJSON(t, app, "POST", "/api/assessments", fiber.Map{
		"evaluator_id": evaluatorP.ID,
		"patient_name": "Jane Doe",
	})

	assert.Equal(t, 400, status)
	assert.Equal(t, "Student is required", body["student"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSignOffPersistsTransactionally(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	a := newAssessment()
	mock.ExpectQuery("SELECT").WillReturnRows(assessmentMockRows(a))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE assessments").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	app, _ := newTestApp(t, evaluatorP, db)
	status, body := doJSON(t, app, "PUT", "/api/assessments", fiber.Map{
		"assessment_id": a.ID,
		"action":        "sign_off_section_1",
	})

	assert.Equal(t, 200, status)
	assert.Equal(t, "Section 1 signed off.", body["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRejectedConsentRequestStoresNoSignature(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	a := newAssessment()
	mock.ExpectQuery("SELECT").WillReturnRows(assessmentMockRows(a))

	app, mediaDir := newTestApp(t, otherClinicianP, db)
	payload := base64.StdEncoding.EncodeToString([]byte{0x89, 'P', 'N', 'G'})
	status, body := doJSON(t, app, "PUT", "/api/assessments", fiber.Map{
		"assessment_id":  a.ID,
		"action":         "sign_consent",
		"signature_data": payload,
	})

	assert.Equal(t, 403, status)
	assert.Contains(t, body["detail"], "edit")
	assert.NoError(t, mock.ExpectationsWereMet())

	err = filepath.Walk(mediaDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		require.True(t, info.IsDir(), "rejected request left %s behind", path)
		return nil
	})
	require.NoError(t, err)
}

func TestPlainSaveLeavesSectionContentAlone(t *testing.T) {
	a := newAssessment()
	name := "Changed Name"
	marketing := true
	req := &updateRequest{PatientName: &name, MarketingConsent: &marketing}

	field, msg := applyFields(a, req, ActionSave)
	require.Empty(t, field)
	require.Empty(t, msg)

	assert.Equal(t, "Jane Doe", a.PatientName, "section content requires an explicit section save")
	assert.True(t, a.MarketingConsent)
}
