package assessments

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/izzatredzuan/imu-chiropractic-form/app/models"

	"github.com/google/uuid"
)

// assessmentColumns is the full row selection shared by the get and list
// queries, joined with the student and evaluator display fields.
const assessmentColumns = `
	a.id, a.student_id, a.evaluator_id,
	a.is_consent_signed, a.consent_signed_by, a.consent_signed_at, a.consent_signature_path,
	a.marketing_consent, a.education_consent, a.research_consent,
	a.patient_name, a.gender, a.date_of_birth, a.pulse, a.respiratory,
	a.systolic_bp, a.diastolic_bp, a.summary, a.special_direction,
	a.is_section_1_signed, a.section_1_signed_by, a.section_1_signed_at,
	a.chief_complaint, a.history_of_condition, a.pain, a.aggravating_factors,
	a.relieving_factors, a.associated_symptoms, a.health_hx_review, a.past_illnesses,
	a.family_hx, a.psycho_social_hx, a.occupational, a.diet, a.system_review,
	a.differential_diagnosis, a.special_examination_instruction,
	a.is_section_2_signed, a.section_2_signed_by, a.section_2_signed_at,
	a.inspection_posture, a.inspection_gait, a.inspection_regional, a.palpation,
	a.percussion, a.instrumentation, a.rom_active, a.rom_passive, a.rom_resisted,
	a.further_diagnostic_procedures, a.ptt, a.cranial_nerves, a.cerebellar,
	a.spinal_cord, a.nerve_root, a.peripheral, a.pathological,
	a.orthopedic_assessment, a.chiropractic_notes, a.imaging, a.lab,
	a.working_diagnosis,
	a.is_section_3_signed, a.section_3_signed_by, a.section_3_signed_at,
	a.diagnosis, a.diagnosis_date,
	a.is_section_4_signed, a.section_4_signed_by, a.section_4_signed_at,
	a.phase_1, a.phase_2, a.phase_3, a.treatment_remarks,
	a.is_treatment_plan_signed, a.treatment_plan_signed_by, a.treatment_plan_signed_at,
	a.is_discharged,
	a.created_at, a.created_by, a.updated_at, a.updated_by,
	s.member_id, s.official_name, e.member_id, e.official_name`

const assessmentJoins = `
	FROM assessments a
	LEFT JOIN profiles s ON a.student_id = s.id
	LEFT JOIN profiles e ON a.evaluator_id = e.id`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAssessment(row rowScanner) (*models.Assessment, error) {
	a := &models.Assessment{}
	var (
		studentID, evaluatorID                           sql.NullString
		consentSignedAt                                  sql.NullTime
		dateOfBirth, diagnosisDate                       sql.NullTime
		s1By, s2By, s3By, s4By, tpBy                     sql.NullString
		s1At, s2At, s3At, s4At, tpAt                     sql.NullTime
		createdBy, updatedBy                             sql.NullString
		studentMember, studentName, evalMember, evalName sql.NullString
	)

	err := row.Scan(
		&a.ID, &studentID, &evaluatorID,
		&a.IsConsentSigned, &a.ConsentSignedBy, &consentSignedAt, &a.ConsentSignaturePath,
		&a.MarketingConsent, &a.EducationConsent, &a.ResearchConsent,
		&a.PatientName, &a.Gender, &dateOfBirth, &a.Pulse, &a.Respiratory,
		&a.SystolicBP, &a.DiastolicBP, &a.Summary, &a.SpecialDirection,
		&a.IsSection1Signed, &s1By, &s1At,
		&a.ChiefComplaint, &a.HistoryOfCondition, &a.Pain, &a.AggravatingFactors,
		&a.RelievingFactors, &a.AssociatedSymptoms, &a.HealthHxReview, &a.PastIllnesses,
		&a.FamilyHx, &a.PsychoSocialHx, &a.Occupational, &a.Diet, &a.SystemReview,
		&a.DifferentialDiagnosis, &a.SpecialExaminationInstruction,
		&a.IsSection2Signed, &s2By, &s2At,
		&a.InspectionPosture, &a.InspectionGait, &a.InspectionRegional, &a.Palpation,
		&a.Percussion, &a.Instrumentation, &a.RomActive, &a.RomPassive, &a.RomResisted,
		&a.FurtherDiagnosticProcedures, &a.PTT, &a.CranialNerves, &a.Cerebellar,
		&a.SpinalCord, &a.NerveRoot, &a.Peripheral, &a.Pathological,
		&a.OrthopedicAssessment, &a.ChiropracticNotes, &a.Imaging, &a.Lab,
		&a.WorkingDiagnosis,
		&a.IsSection3Signed, &s3By, &s3At,
		&a.Diagnosis, &diagnosisDate,
		&a.IsSection4Signed, &s4By, &s4At,
		&a.Phase1, &a.Phase2, &a.Phase3, &a.TreatmentRemarks,
		&a.IsTreatmentPlanSigned, &tpBy, &tpAt,
		&a.IsDischarged,
		&a.CreatedAt, &createdBy, &a.UpdatedAt, &updatedBy,
		&studentMember, &studentName, &evalMember, &evalName,
	)
	if err != nil {
		return nil, err
	}

	a.StudentID = nullableString(studentID)
	a.EvaluatorID = nullableString(evaluatorID)
	a.ConsentSignedAt = nullableTime(consentSignedAt)
	a.DateOfBirth = nullableTime(dateOfBirth)
	a.DiagnosisDate = nullableTime(diagnosisDate)
	a.Section1SignedByID = nullableString(s1By)
	a.Section1SignedAt = nullableTime(s1At)
	a.Section2SignedByID = nullableString(s2By)
	a.Section2SignedAt = nullableTime(s2At)
	a.Section3SignedByID = nullableString(s3By)
	a.Section3SignedAt = nullableTime(s3At)
	a.Section4SignedByID = nullableString(s4By)
	a.Section4SignedAt = nullableTime(s4At)
	a.TreatmentPlanSignedByID = nullableString(tpBy)
	a.TreatmentPlanSignedAt = nullableTime(tpAt)
	a.CreatedByID = nullableString(createdBy)
	a.UpdatedByID = nullableString(updatedBy)

	if a.StudentID != nil && studentName.Valid {
		a.Student = &models.Profile{
			ID:           *a.StudentID,
			MemberID:     studentMember.String,
			OfficialName: studentName.String,
			Role:         models.RoleStudent,
		}
	}
	if a.EvaluatorID != nil && evalName.Valid {
		a.Evaluator = &models.Profile{
			ID:           *a.EvaluatorID,
			MemberID:     evalMember.String,
			OfficialName: evalName.String,
			Role:         models.RoleClinician,
		}
	}
	return a, nil
}

func nullableString(v sql.NullString) *string {
	if v.Valid {
		s := v.String
		return &s
	}
	return nil
}

func nullableTime(v sql.NullTime) *time.Time {
	if v.Valid {
		t := v.Time
		return &t
	}
	return nil
}

// GetAssessmentByID fetches one assessment with its assignment display
// fields. Returns sql.ErrNoRows when the id is unknown.
func GetAssessmentByID(db *sql.DB, assessmentID string) (*models.Assessment, error) {
	query := "SELECT" + assessmentColumns + assessmentJoins + " WHERE a.id = $1"
	return scanAssessment(db.QueryRow(query, assessmentID))
}

// ListAssessments fetches assessments, optionally filtered by assigned
// student and/or evaluator. Nil filters match everything.
func ListAssessments(db *sql.DB, studentID, evaluatorID *string) ([]*models.Assessment, error) {
	query := "SELECT" + assessmentColumns + assessmentJoins + `
	WHERE ($1::uuid IS NULL OR a.student_id = $1)
	AND ($2::uuid IS NULL OR a.evaluator_id = $2)
	ORDER BY a.updated_at DESC`

	rows, err := db.Query(query, studentID, evaluatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assessments: %w", err)
	}
	defer rows.Close()

	var list []*models.Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assessment: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// CreateAssessment inserts a new assessment row. The id is generated here
// so the consent signature blob can be keyed to it before the insert.
func CreateAssessment(db *sql.DB, a *models.Assessment) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	query := `
		INSERT INTO assessments (
			id, student_id, evaluator_id,
			is_consent_signed, consent_signed_by, consent_signed_at, consent_signature_path,
			marketing_consent, education_consent, research_consent,
			patient_name, gender, date_of_birth, pulse, respiratory,
			systolic_bp, diastolic_bp, summary, special_direction,
			chief_complaint, history_of_condition, pain, aggravating_factors,
			relieving_factors, associated_symptoms, health_hx_review, past_illnesses,
			family_hx, psycho_social_hx, occupational, diet, system_review,
			differential_diagnosis, special_examination_instruction,
			created_by, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
			$31, $32, $33, $34, $35, $36
		)
		RETURNING created_at, updated_at`

	err := db.QueryRow(query,
		a.ID, a.StudentID, a.EvaluatorID,
		a.IsConsentSigned, a.ConsentSignedBy, a.ConsentSignedAt, a.ConsentSignaturePath,
		a.MarketingConsent, a.EducationConsent, a.ResearchConsent,
		a.PatientName, a.Gender, a.DateOfBirth, a.Pulse, a.Respiratory,
		a.SystolicBP, a.DiastolicBP, a.Summary, a.SpecialDirection,
		a.ChiefComplaint, a.HistoryOfCondition, a.Pain, a.AggravatingFactors,
		a.RelievingFactors, a.AssociatedSymptoms, a.HealthHxReview, a.PastIllnesses,
		a.FamilyHx, a.PsychoSocialHx, a.Occupational, a.Diet, a.SystemReview,
		a.DifferentialDiagnosis, a.SpecialExaminationInstruction,
		a.CreatedByID, a.UpdatedByID,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create assessment: %w", err)
	}
	return nil
}

// UpdateAssessment persists the assessment's content, sign-off state and
// audit stamp inside one transaction, so field changes and the sign-off
// transition they triggered are never observable separately. Assignment
// columns (student_id, evaluator_id) are deliberately not written: the
// subject of a record never changes after creation.
func UpdateAssessment(db *sql.DB, a *models.Assessment) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE assessments SET
			is_consent_signed = $2, consent_signed_by = $3, consent_signed_at = $4,
			consent_signature_path = $5, marketing_consent = $6, education_consent = $7,
			research_consent = $8,
			patient_name = $9, gender = $10, date_of_birth = $11, pulse = $12,
			respiratory = $13, systolic_bp = $14, diastolic_bp = $15, summary = $16,
			special_direction = $17,
			is_section_1_signed = $18, section_1_signed_by = $19, section_1_signed_at = $20,
			chief_complaint = $21, history_of_condition = $22, pain = $23,
			aggravating_factors = $24, relieving_factors = $25, associated_symptoms = $26,
			health_hx_review = $27, past_illnesses = $28, family_hx = $29,
			psycho_social_hx = $30, occupational = $31, diet = $32, system_review = $33,
			differential_diagnosis = $34, special_examination_instruction = $35,
			is_section_2_signed = $36, section_2_signed_by = $37, section_2_signed_at = $38,
			inspection_posture = $39, inspection_gait = $40, inspection_regional = $41,
			palpation = $42, percussion = $43, instrumentation = $44, rom_active = $45,
			rom_passive = $46, rom_resisted = $47, further_diagnostic_procedures = $48,
			ptt = $49, cranial_nerves = $50, cerebellar = $51, spinal_cord = $52,
			nerve_root = $53, peripheral = $54, pathological = $55,
			orthopedic_assessment = $56, chiropractic_notes = $57, imaging = $58,
			lab = $59, working_diagnosis = $60,
			is_section_3_signed = $61, section_3_signed_by = $62, section_3_signed_at = $63,
			diagnosis = $64, diagnosis_date = $65,
			is_section_4_signed = $66, section_4_signed_by = $67, section_4_signed_at = $68,
			phase_1 = $69, phase_2 = $70, phase_3 = $71, treatment_remarks = $72,
			is_treatment_plan_signed = $73, treatment_plan_signed_by = $74,
			treatment_plan_signed_at = $75,
			is_discharged = $76,
			updated_by = $77, updated_at = NOW()
		WHERE id = $1`

	result, err := tx.Exec(query,
		a.ID,
		a.IsConsentSigned, a.ConsentSignedBy, a.ConsentSignedAt,
		a.ConsentSignaturePath, a.MarketingConsent, a.EducationConsent,
		a.ResearchConsent,
		a.PatientName, a.Gender, a.DateOfBirth, a.Pulse,
		a.Respiratory, a.SystolicBP, a.DiastolicBP, a.Summary,
		a.SpecialDirection,
		a.IsSection1Signed, a.Section1SignedByID, a.Section1SignedAt,
		a.ChiefComplaint, a.HistoryOfCondition, a.Pain,
		a.AggravatingFactors, a.RelievingFactors, a.AssociatedSymptoms,
		a.HealthHxReview, a.PastIllnesses, a.FamilyHx,
		a.PsychoSocialHx, a.Occupational, a.Diet, a.SystemReview,
		a.DifferentialDiagnosis, a.SpecialExaminationInstruction,
		a.IsSection2Signed, a.Section2SignedByID, a.Section2SignedAt,
		a.InspectionPosture, a.InspectionGait, a.InspectionRegional,
		a.Palpation, a.Percussion, a.Instrumentation, a.RomActive,
		a.RomPassive, a.RomResisted, a.FurtherDiagnosticProcedures,
		a.PTT, a.CranialNerves, a.Cerebellar, a.SpinalCord,
		a.NerveRoot, a.Peripheral, a.Pathological,
		a.OrthopedicAssessment, a.ChiropracticNotes, a.Imaging,
		a.Lab, a.WorkingDiagnosis,
		a.IsSection3Signed, a.Section3SignedByID, a.Section3SignedAt,
		a.Diagnosis, a.DiagnosisDate,
		a.IsSection4Signed, a.Section4SignedByID, a.Section4SignedAt,
		a.Phase1, a.Phase2, a.Phase3, a.TreatmentRemarks,
		a.IsTreatmentPlanSigned, a.TreatmentPlanSignedByID,
		a.TreatmentPlanSignedAt,
		a.IsDischarged,
		a.UpdatedByID,
	)
	if err != nil {
		return fmt.Errorf("failed to update assessment: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit assessment update: %w", err)
	}
	return nil
}
