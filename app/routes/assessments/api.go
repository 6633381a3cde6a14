package assessments

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/izzatredzuan/imu-chiropractic-form/app/database"
	"github.com/izzatredzuan/imu-chiropractic-form/app/models"
	"github.com/izzatredzuan/imu-chiropractic-form/app/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// assessmentSummary is one row of the role-scoped list view.
type assessmentSummary struct {
	ID          string `json:"id"`
	PatientName string `json:"patient_name"`
	Student     string `json:"student"`
	Clinician   string `json:"clinician"`

	IsConsentSigned       bool `json:"is_consent_signed"`
	IsSection1Signed      bool `json:"is_section_1_signed"`
	Section1Complete      bool `json:"section_1_complete"`
	IsSection2Signed      bool `json:"is_section_2_signed"`
	Section2Complete      bool `json:"section_2_complete"`
	IsSection3Signed      bool `json:"is_section_3_signed"`
	Section3Complete      bool `json:"section_3_complete"`
	IsSection4Signed      bool `json:"is_section_4_signed"`
	Section4Complete      bool `json:"section_4_complete"`
	IsTreatmentPlanSigned bool `json:"is_treatment_plan_signed"`
	TreatmentPlanComplete bool `json:"treatment_plan_complete"`
	IsDischarged          bool `json:"is_discharged"`

	CurrentStage    string    `json:"current_stage"`
	ProgressPercent int       `json:"progress_percent"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func summarize(a *models.Assessment) assessmentSummary {
	s := assessmentSummary{
		ID:          a.ID,
		PatientName: a.PatientName,

		IsConsentSigned:       a.IsConsentSigned,
		IsSection1Signed:      a.IsSection1Signed,
		Section1Complete:      a.SectionComplete(models.Section1),
		IsSection2Signed:      a.IsSection2Signed,
		Section2Complete:      a.SectionComplete(models.Section2),
		IsSection3Signed:      a.IsSection3Signed,
		Section3Complete:      a.SectionComplete(models.Section3),
		IsSection4Signed:      a.IsSection4Signed,
		Section4Complete:      a.SectionComplete(models.Section4),
		IsTreatmentPlanSigned: a.IsTreatmentPlanSigned,
		TreatmentPlanComplete: a.SectionComplete(models.TreatmentPlan),
		IsDischarged:          a.IsDischarged,

		CurrentStage:    string(a.CurrentStage()),
		ProgressPercent: a.ProgressPercent(),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	if a.Student != nil {
		s.Student = a.Student.OfficialName
	}
	if a.Evaluator != nil {
		s.Clinician = a.Evaluator.OfficialName
	}
	return s
}

// listScope maps the caller's role onto list filters: students see their own
// records, clinicians see everything unless they ask for assigned-only,
// admins see everything.
func listScope(profile *models.Profile, assignedOnly bool) (studentID, evaluatorID *string) {
	switch profile.Role {
	case models.RoleStudent:
		id := profile.ID
		return &id, nil
	case models.RoleClinician:
		if assignedOnly {
			id := profile.ID
			return nil, &id
		}
		return nil, nil
	case models.RoleAdmin:
		return nil, nil
	}
	// Unknown role sees nothing; force an impossible filter.
	none := uuid.Nil.String()
	return &none, &none
}

// GetAssessmentsAPI returns the role-scoped assessment list.
func GetAssessmentsAPI(c *fiber.Ctx, db *sql.DB) error {
	profile := c.Locals("profile").(*models.Profile)
	assignedOnly := c.Query("assigned_only") == "true"

	studentID, evaluatorID := listScope(profile, assignedOnly)
	list, err := ListAssessments(db, studentID, evaluatorID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch assessments"})
	}

	summaries := make([]assessmentSummary, 0, len(list))
	for _, a := range list {
		summaries = append(summaries, summarize(a))
	}
	return c.JSON(summaries)
}

// GetAssessmentAPI returns the full assessment detail, permission-checked.
func GetAssessmentAPI(c *fiber.Ctx, db *sql.DB) error {
	profile := c.Locals("profile").(*models.Profile)
	assessmentID := c.Params("id")

	a, err := GetAssessmentByID(db, assessmentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"detail": "Assessment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch assessment"})
	}

	if !canView(profile, a) {
		return c.Status(403).JSON(fiber.Map{"detail": "You cannot view this assessment"})
	}

	return c.JSON(fiber.Map{
		"assessment":       a,
		"read_only":        !canEdit(profile, a),
		"current_stage":    string(a.CurrentStage()),
		"progress_percent": a.ProgressPercent(),
		"sections": fiber.Map{
			"section_1":      sectionState(a, models.Section1),
			"section_2":      sectionState(a, models.Section2),
			"section_3":      sectionState(a, models.Section3),
			"section_4":      sectionState(a, models.Section4),
			"treatment_plan": sectionState(a, models.TreatmentPlan),
		},
	})
}

func sectionState(a *models.Assessment, s models.Section) fiber.Map {
	return fiber.Map{
		"signed":   a.IsSigned(s),
		"complete": a.SectionComplete(s),
	}
}

type createRequest struct {
	StudentID   string `json:"student_id"`
	EvaluatorID string `json:"evaluator_id"`

	SignatureData    string `json:"signature_data"`
	MarketingConsent bool   `json:"marketing_consent"`
	EducationConsent bool   `json:"education_consent"`
	ResearchConsent  bool   `json:"research_consent"`

	PatientName      string `json:"patient_name"`
	Gender           string `json:"gender"`
	DateOfBirth      string `json:"date_of_birth"`
	Pulse            int    `json:"pulse"`
	Respiratory      int    `json:"respiratory"`
	SystolicBP       int    `json:"systolic_bp"`
	DiastolicBP      int    `json:"diastolic_bp"`
	Summary          string `json:"summary"`
	SpecialDirection string `json:"special_direction"`

	ChiefComplaint        string `json:"chief_complaint"`
	HistoryOfCondition    string `json:"history_of_condition"`
	Pain                  string `json:"pain"`
	AggravatingFactors    string `json:"aggravating_factors"`
	RelievingFactors      string `json:"relieving_factors"`
	AssociatedSymptoms    string `json:"associated_symptoms"`
	HealthHxReview        string `json:"health_hx_review"`
	PastIllnesses         string `json:"past_illnesses"`
	FamilyHx              string `json:"family_hx"`
	PsychoSocialHx        string `json:"psycho_social_hx"`
	Occupational          string `json:"occupational"`
	Diet                  string `json:"diet"`
	SystemReview          string `json:"system_review"`
	DifferentialDiagnosis string `json:"differential_diagnosis"`
}

// CreateAssessmentAPI creates a new assessment. Students create for
// themselves; clinicians and admins must name the student. The evaluator is
// always required and must hold the clinician role.
func CreateAssessmentAPI(c *fiber.Ctx, db *sql.DB, store storage.SignatureStore) error {
	profile := c.Locals("profile").(*models.Profile)

	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	// Role-based assignment
	var studentID string
	switch profile.Role {
	case models.RoleStudent:
		studentID = profile.ID
	case models.RoleClinician, models.RoleAdmin:
		if req.StudentID == "" {
			return c.Status(400).JSON(fiber.Map{"student": "Student is required"})
		}
		studentID = req.StudentID
	default:
		return c.Status(403).JSON(fiber.Map{"detail": "You are not allowed to create assessments"})
	}

	if req.EvaluatorID == "" {
		return c.Status(400).JSON(fiber.Map{"evaluator": "Evaluator is required"})
	}

	evaluator, err := database.GetProfileByID(db, req.EvaluatorID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(400).JSON(fiber.Map{"evaluator": "Unknown evaluator"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if evaluator.Role != models.RoleClinician {
		return c.Status(400).JSON(fiber.Map{"evaluator": "Evaluator must be a clinician"})
	}

	if studentID != profile.ID {
		student, err := database.GetProfileByID(db, studentID)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Status(400).JSON(fiber.Map{"student": "Unknown student"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		if student.Role != models.RoleStudent {
			return c.Status(400).JSON(fiber.Map{"student": "Student must hold the student role"})
		}
	}

	// Section 1 required fields
	if strings.TrimSpace(req.PatientName) == "" {
		return c.Status(400).JSON(fiber.Map{"patient_name": "Patient name is required"})
	}
	if !models.ValidGender(req.Gender) {
		return c.Status(400).JSON(fiber.Map{"gender": "Gender must be male or female"})
	}
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"date_of_birth": "Date of birth must be YYYY-MM-DD"})
	}
	if req.Pulse <= 0 || req.Respiratory <= 0 || req.SystolicBP <= 0 || req.DiastolicBP <= 0 {
		return c.Status(400).JSON(fiber.Map{"vitals": "Pulse, respiratory and blood pressure readings are required"})
	}

	a := &models.Assessment{
		ID:          uuid.New().String(),
		StudentID:   &studentID,
		EvaluatorID: &evaluator.ID,

		MarketingConsent: req.MarketingConsent,
		EducationConsent: req.EducationConsent,
		ResearchConsent:  req.ResearchConsent,

		PatientName:      strings.TrimSpace(req.PatientName),
		Gender:           models.Gender(req.Gender),
		DateOfBirth:      &dob,
		Pulse:            req.Pulse,
		Respiratory:      req.Respiratory,
		SystolicBP:       req.SystolicBP,
		DiastolicBP:      req.DiastolicBP,
		Summary:          req.Summary,
		SpecialDirection: req.SpecialDirection,

		ChiefComplaint:        req.ChiefComplaint,
		HistoryOfCondition:    req.HistoryOfCondition,
		Pain:                  req.Pain,
		AggravatingFactors:    req.AggravatingFactors,
		RelievingFactors:      req.RelievingFactors,
		AssociatedSymptoms:    req.AssociatedSymptoms,
		HealthHxReview:        req.HealthHxReview,
		PastIllnesses:         req.PastIllnesses,
		FamilyHx:              req.FamilyHx,
		PsychoSocialHx:        req.PsychoSocialHx,
		Occupational:          req.Occupational,
		Diet:                  req.Diet,
		SystemReview:          req.SystemReview,
		DifferentialDiagnosis: req.DifferentialDiagnosis,

		CreatedByID: &profile.ID,
		UpdatedByID: &profile.ID,
	}

	// Optional consent signature captured at intake
	if req.SignatureData != "" {
		data, err := storage.DecodeSignature(req.SignatureData)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"signature_data": "Invalid base64 image data"})
		}
		path, err := store.Save(a.ID, data)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to store signature image"})
		}
		now := time.Now()
		a.IsConsentSigned = true
		a.ConsentSignedBy = a.PatientName
		a.ConsentSignedAt = &now
		a.ConsentSignaturePath = path
	}

	if err := CreateAssessment(db, a); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create assessment"})
	}

	return c.Status(201).JSON(fiber.Map{
		"id":      a.ID,
		"message": "Assessment created successfully",
	})
}

type updateRequest struct {
	AssessmentID string `json:"assessment_id"`
	Action       string `json:"action"`

	SignatureData    *string `json:"signature_data,omitempty"`
	MarketingConsent *bool   `json:"marketing_consent,omitempty"`
	EducationConsent *bool   `json:"education_consent,omitempty"`
	ResearchConsent  *bool   `json:"research_consent,omitempty"`

	PatientName      *string `json:"patient_name,omitempty"`
	Gender           *string `json:"gender,omitempty"`
	DateOfBirth      *string `json:"date_of_birth,omitempty"`
	Pulse            *int    `json:"pulse,omitempty"`
	Respiratory      *int    `json:"respiratory,omitempty"`
	SystolicBP       *int    `json:"systolic_bp,omitempty"`
	DiastolicBP      *int    `json:"diastolic_bp,omitempty"`
	Summary          *string `json:"summary,omitempty"`
	SpecialDirection *string `json:"special_direction,omitempty"`

	ChiefComplaint                *string `json:"chief_complaint,omitempty"`
	HistoryOfCondition            *string `json:"history_of_condition,omitempty"`
	Pain                          *string `json:"pain,omitempty"`
	AggravatingFactors            *string `json:"aggravating_factors,omitempty"`
	RelievingFactors              *string `json:"relieving_factors,omitempty"`
	AssociatedSymptoms            *string `json:"associated_symptoms,omitempty"`
	HealthHxReview                *string `json:"health_hx_review,omitempty"`
	PastIllnesses                 *string `json:"past_illnesses,omitempty"`
	FamilyHx                      *string `json:"family_hx,omitempty"`
	PsychoSocialHx                *string `json:"psycho_social_hx,omitempty"`
	Occupational                  *string `json:"occupational,omitempty"`
	Diet                          *string `json:"diet,omitempty"`
	SystemReview                  *string `json:"system_review,omitempty"`
	DifferentialDiagnosis         *string `json:"differential_diagnosis,omitempty"`
	SpecialExaminationInstruction *string `json:"special_examination_instruction,omitempty"`

	InspectionPosture           *string `json:"inspection_posture,omitempty"`
	InspectionGait              *string `json:"inspection_gait,omitempty"`
	InspectionRegional          *string `json:"inspection_regional,omitempty"`
	Palpation                   *string `json:"palpation,omitempty"`
	Percussion                  *string `json:"percussion,omitempty"`
	Instrumentation             *string `json:"instrumentation,omitempty"`
	RomActive                   *string `json:"rom_active,omitempty"`
	RomPassive                  *string `json:"rom_passive,omitempty"`
	RomResisted                 *string `json:"rom_resisted,omitempty"`
	FurtherDiagnosticProcedures *string `json:"further_diagnostic_procedures,omitempty"`
	PTT                         *string `json:"ptt,omitempty"`
	CranialNerves               *string `json:"cranial_nerves,omitempty"`
	Cerebellar                  *string `json:"cerebellar,omitempty"`
	SpinalCord                  *string `json:"spinal_cord,omitempty"`
	NerveRoot                   *string `json:"nerve_root,omitempty"`
	Peripheral                  *string `json:"peripheral,omitempty"`
	Pathological                *string `json:"pathological,omitempty"`
	OrthopedicAssessment        *string `json:"orthopedic_assessment,omitempty"`
	ChiropracticNotes           *string `json:"chiropractic_notes,omitempty"`
	Imaging                     *string `json:"imaging,omitempty"`
	Lab                         *string `json:"lab,omitempty"`
	WorkingDiagnosis            *string `json:"working_diagnosis,omitempty"`

	Diagnosis     *string `json:"diagnosis,omitempty"`
	DiagnosisDate *string `json:"diagnosis_date,omitempty"`

	Phase1           *string `json:"phase_1,omitempty"`
	Phase2           *string `json:"phase_2,omitempty"`
	Phase3           *string `json:"phase_3,omitempty"`
	TreatmentRemarks *string `json:"treatment_remarks,omitempty"`
}

// UpdateAssessmentAPI applies field changes and dispatches the requested
// action to the sign-off transition. All checks run before anything is
// written; the write itself is one transaction.
func UpdateAssessmentAPI(c *fiber.Ctx, db *sql.DB, store storage.SignatureStore) error {
	profile := c.Locals("profile").(*models.Profile)

	var req updateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.AssessmentID == "" {
		return c.Status(400).JSON(fiber.Map{"assessment_id": "Assessment ID is required"})
	}

	current, err := GetAssessmentByID(db, req.AssessmentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"detail": "Assessment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch assessment"})
	}

	if !canView(profile, current) {
		return c.Status(403).JSON(fiber.Map{"detail": "You cannot view this assessment"})
	}

	action := Action(req.Action)
	if req.Action == "" {
		action = ActionSave
	}

	// Work on a copy; the stored record is only replaced after the
	// transition succeeds.
	updated := *current

	if field, msg := applyFields(&updated, &req, action); field != "" {
		return c.Status(400).JSON(fiber.Map{field: msg})
	}

	if err := Transition(&updated, action, profile, time.Now()); err != nil {
		switch {
		case errors.Is(err, ErrForbidden):
			return c.Status(403).JSON(fiber.Map{"detail": errDetail(err)})
		case errors.Is(err, ErrInvalidState):
			return c.Status(400).JSON(fiber.Map{"detail": errDetail(err)})
		case errors.Is(err, ErrUnknownAction):
			return c.Status(400).JSON(fiber.Map{"action": "Unknown action"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to apply action"})
	}

	// The signature blob is written only after the transition has accepted
	// the action, so a rejected request leaves no file behind.
	if action == ActionSignConsent && req.SignatureData != nil {
		data, err := storage.DecodeSignature(*req.SignatureData)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"signature_data": "Invalid base64 image data"})
		}
		path, err := store.Save(updated.ID, data)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to store signature image"})
		}
		updated.ConsentSignaturePath = path
	}

	updated.UpdatedByID = &profile.ID
	if err := UpdateAssessment(db, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"detail": "Assessment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update assessment"})
	}

	return c.JSON(fiber.Map{"message": successMessage(action)})
}

// applyFields copies the request fields addressed by the action onto the
// assessment. A non-empty field name signals a validation failure.
// Section content changes only under the matching save_section action, so
// every content change triggers its cascade reset; the plain save carries
// the consent booleans alone.
func applyFields(a *models.Assessment, req *updateRequest, action Action) (field, msg string) {
	section, isSave := action.SaveSection()

	applySection := func(s models.Section) bool {
		return isSave && section == s
	}

	if action == ActionSignConsent || action == ActionSave {
		if req.MarketingConsent != nil {
			a.MarketingConsent = *req.MarketingConsent
		}
		if req.EducationConsent != nil {
			a.EducationConsent = *req.EducationConsent
		}
		if req.ResearchConsent != nil {
			a.ResearchConsent = *req.ResearchConsent
		}
	}

	if applySection(models.Section1) {
		if req.PatientName != nil {
			if strings.TrimSpace(*req.PatientName) == "" {
				return "patient_name", "Patient name cannot be blank"
			}
			a.PatientName = strings.TrimSpace(*req.PatientName)
		}
		if req.Gender != nil {
			if !models.ValidGender(*req.Gender) {
				return "gender", "Gender must be male or female"
			}
			a.Gender = models.Gender(*req.Gender)
		}
		if req.DateOfBirth != nil {
			dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
			if err != nil {
				return "date_of_birth", "Date of birth must be YYYY-MM-DD"
			}
			a.DateOfBirth = &dob
		}
		if req.Pulse != nil {
			if *req.Pulse <= 0 {
				return "pulse", "Pulse must be positive"
			}
			a.Pulse = *req.Pulse
		}
		if req.Respiratory != nil {
			if *req.Respiratory <= 0 {
				return "respiratory", "Respiratory rate must be positive"
			}
			a.Respiratory = *req.Respiratory
		}
		if req.SystolicBP != nil {
			if *req.SystolicBP <= 0 {
				return "systolic_bp", "Systolic BP must be positive"
			}
			a.SystolicBP = *req.SystolicBP
		}
		if req.DiastolicBP != nil {
			if *req.DiastolicBP <= 0 {
				return "diastolic_bp", "Diastolic BP must be positive"
			}
			a.DiastolicBP = *req.DiastolicBP
		}
		setString(&a.Summary, req.Summary)
		setString(&a.SpecialDirection, req.SpecialDirection)
	}

	if applySection(models.Section2) {
		setString(&a.ChiefComplaint, req.ChiefComplaint)
		setString(&a.HistoryOfCondition, req.HistoryOfCondition)
		setString(&a.Pain, req.Pain)
		setString(&a.AggravatingFactors, req.AggravatingFactors)
		setString(&a.RelievingFactors, req.RelievingFactors)
		setString(&a.AssociatedSymptoms, req.AssociatedSymptoms)
		setString(&a.HealthHxReview, req.HealthHxReview)
		setString(&a.PastIllnesses, req.PastIllnesses)
		setString(&a.FamilyHx, req.FamilyHx)
		setString(&a.PsychoSocialHx, req.PsychoSocialHx)
		setString(&a.Occupational, req.Occupational)
		setString(&a.Diet, req.Diet)
		setString(&a.SystemReview, req.SystemReview)
		setString(&a.DifferentialDiagnosis, req.DifferentialDiagnosis)
		setString(&a.SpecialExaminationInstruction, req.SpecialExaminationInstruction)
	}

	if applySection(models.Section3) {
		setString(&a.InspectionPosture, req.InspectionPosture)
		setString(&a.InspectionGait, req.InspectionGait)
		setString(&a.InspectionRegional, req.InspectionRegional)
		setString(&a.Palpation, req.Palpation)
		setString(&a.Percussion, req.Percussion)
		setString(&a.Instrumentation, req.Instrumentation)
		setString(&a.RomActive, req.RomActive)
		setString(&a.RomPassive, req.RomPassive)
		setString(&a.RomResisted, req.RomResisted)
		setString(&a.FurtherDiagnosticProcedures, req.FurtherDiagnosticProcedures)
		setString(&a.PTT, req.PTT)
		setString(&a.CranialNerves, req.CranialNerves)
		setString(&a.Cerebellar, req.Cerebellar)
		setString(&a.SpinalCord, req.SpinalCord)
		setString(&a.NerveRoot, req.NerveRoot)
		setString(&a.Peripheral, req.Peripheral)
		setString(&a.Pathological, req.Pathological)
		setString(&a.OrthopedicAssessment, req.OrthopedicAssessment)
		setString(&a.ChiropracticNotes, req.ChiropracticNotes)
		setString(&a.Imaging, req.Imaging)
		setString(&a.Lab, req.Lab)
		setString(&a.WorkingDiagnosis, req.WorkingDiagnosis)
	}

	if applySection(models.Section4) {
		setString(&a.Diagnosis, req.Diagnosis)
		if req.DiagnosisDate != nil {
			d, err := time.Parse("2006-01-02", *req.DiagnosisDate)
			if err != nil {
				return "diagnosis_date", "Diagnosis date must be YYYY-MM-DD"
			}
			a.DiagnosisDate = &d
		}
	}

	if applySection(models.TreatmentPlan) {
		setString(&a.Phase1, req.Phase1)
		setString(&a.Phase2, req.Phase2)
		setString(&a.Phase3, req.Phase3)
		setString(&a.TreatmentRemarks, req.TreatmentRemarks)
	}

	return "", ""
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// errDetail strips the error-kind prefix, leaving the human-readable part.
func errDetail(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}

func successMessage(action Action) string {
	if section, ok := action.SaveSection(); ok {
		return upperFirst(sectionLabel(section)) + " updated. Downstream sign-offs reset."
	}
	if section, ok := action.SignOffSection(); ok {
		return upperFirst(sectionLabel(section)) + " signed off."
	}
	switch action {
	case ActionSignConsent:
		return "Patient consent recorded."
	case ActionDischarge:
		return "Patient discharged."
	}
	return "Assessment updated."
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
