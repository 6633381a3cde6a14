package models

import "time"

// Assessment is one patient assessment form. All sections live inline on the
// row; each clinical section carries its own sign-off triple
// (is_X_signed / X_signed_by / X_signed_at) stamped by the reviewing
// clinician and cleared whenever upstream content changes.
type Assessment struct {
	ID string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`

	// Assignment
	StudentID   *string  `json:"student_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	EvaluatorID *string  `json:"evaluator_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	Student     *Profile `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Evaluator   *Profile `json:"evaluator,omitempty" gorm:"foreignKey:EvaluatorID;references:ID"`

	// Initial patient consent
	IsConsentSigned      bool       `json:"is_consent_signed" gorm:"default:false"`
	ConsentSignedBy      string     `json:"consent_signed_by,omitempty"`
	ConsentSignedAt      *time.Time `json:"consent_signed_at,omitempty"`
	ConsentSignaturePath string     `json:"consent_signature_path,omitempty"`
	MarketingConsent     bool       `json:"marketing_consent" gorm:"default:false"`
	EducationConsent     bool       `json:"education_consent" gorm:"default:false"`
	ResearchConsent      bool       `json:"research_consent" gorm:"default:false"`

	// Section 1 – Initial Assessment
	PatientName      string     `json:"patient_name" gorm:"not null" validate:"required"`
	Gender           Gender     `json:"gender" gorm:"not null" validate:"required"`
	DateOfBirth      *time.Time `json:"date_of_birth" validate:"required"`
	Pulse            int        `json:"pulse" validate:"gte=0"`
	Respiratory      int        `json:"respiratory" validate:"gte=0"`
	SystolicBP       int        `json:"systolic_bp" validate:"gte=0"`
	DiastolicBP      int        `json:"diastolic_bp" validate:"gte=0"`
	Summary          string     `json:"summary,omitempty"`
	SpecialDirection string     `json:"special_direction,omitempty"`

	IsSection1Signed   bool       `json:"is_section_1_signed" gorm:"default:false"`
	Section1SignedByID *string    `json:"section_1_signed_by,omitempty" gorm:"type:uuid"`
	Section1SignedAt   *time.Time `json:"section_1_signed_at,omitempty"`

	// Section 2 – Presenting Complaint
	ChiefComplaint                string `json:"chief_complaint,omitempty"`
	HistoryOfCondition            string `json:"history_of_condition,omitempty"`
	Pain                          string `json:"pain,omitempty"`
	AggravatingFactors            string `json:"aggravating_factors,omitempty"`
	RelievingFactors              string `json:"relieving_factors,omitempty"`
	AssociatedSymptoms            string `json:"associated_symptoms,omitempty"`
	HealthHxReview                string `json:"health_hx_review,omitempty"`
	PastIllnesses                 string `json:"past_illnesses,omitempty"`
	FamilyHx                      string `json:"family_hx,omitempty"`
	PsychoSocialHx                string `json:"psycho_social_hx,omitempty"`
	Occupational                  string `json:"occupational,omitempty"`
	Diet                          string `json:"diet,omitempty"`
	SystemReview                  string `json:"system_review,omitempty"`
	DifferentialDiagnosis         string `json:"differential_diagnosis,omitempty"`
	SpecialExaminationInstruction string `json:"special_examination_instruction,omitempty"`

	IsSection2Signed   bool       `json:"is_section_2_signed" gorm:"default:false"`
	Section2SignedByID *string    `json:"section_2_signed_by,omitempty" gorm:"type:uuid"`
	Section2SignedAt   *time.Time `json:"section_2_signed_at,omitempty"`

	// Section 3 – Physical & Neurological Examination
	InspectionPosture           string `json:"inspection_posture,omitempty"`
	InspectionGait              string `json:"inspection_gait,omitempty"`
	InspectionRegional          string `json:"inspection_regional,omitempty"`
	Palpation                   string `json:"palpation,omitempty"`
	Percussion                  string `json:"percussion,omitempty"`
	Instrumentation             string `json:"instrumentation,omitempty"`
	RomActive                   string `json:"rom_active,omitempty"`
	RomPassive                  string `json:"rom_passive,omitempty"`
	RomResisted                 string `json:"rom_resisted,omitempty"`
	FurtherDiagnosticProcedures string `json:"further_diagnostic_procedures,omitempty"`
	PTT                         string `json:"ptt,omitempty"`
	CranialNerves               string `json:"cranial_nerves,omitempty"`
	Cerebellar                  string `json:"cerebellar,omitempty"`
	SpinalCord                  string `json:"spinal_cord,omitempty"`
	NerveRoot                   string `json:"nerve_root,omitempty"`
	Peripheral                  string `json:"peripheral,omitempty"`
	Pathological                string `json:"pathological,omitempty"`
	OrthopedicAssessment        string `json:"orthopedic_assessment,omitempty"`
	ChiropracticNotes           string `json:"chiropractic_notes,omitempty"`
	Imaging                     string `json:"imaging,omitempty"`
	Lab                         string `json:"lab,omitempty"`
	WorkingDiagnosis            string `json:"working_diagnosis,omitempty"`

	IsSection3Signed   bool       `json:"is_section_3_signed" gorm:"default:false"`
	Section3SignedByID *string    `json:"section_3_signed_by,omitempty" gorm:"type:uuid"`
	Section3SignedAt   *time.Time `json:"section_3_signed_at,omitempty"`

	// Section 4 – Problem & Interventions
	Diagnosis     string     `json:"diagnosis,omitempty"`
	DiagnosisDate *time.Time `json:"diagnosis_date,omitempty"`

	IsSection4Signed   bool       `json:"is_section_4_signed" gorm:"default:false"`
	Section4SignedByID *string    `json:"section_4_signed_by,omitempty" gorm:"type:uuid"`
	Section4SignedAt   *time.Time `json:"section_4_signed_at,omitempty"`

	// Section 5 – Treatment Plan
	Phase1           string `json:"phase_1,omitempty"`
	Phase2           string `json:"phase_2,omitempty"`
	Phase3           string `json:"phase_3,omitempty"`
	TreatmentRemarks string `json:"treatment_remarks,omitempty"`

	IsTreatmentPlanSigned   bool       `json:"is_treatment_plan_signed" gorm:"default:false"`
	TreatmentPlanSignedByID *string    `json:"treatment_plan_signed_by,omitempty" gorm:"type:uuid"`
	TreatmentPlanSignedAt   *time.Time `json:"treatment_plan_signed_at,omitempty"`

	IsDischarged bool `json:"is_discharged" gorm:"default:false"`

	// Meta
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	CreatedByID *string   `json:"created_by,omitempty" gorm:"type:uuid"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
	UpdatedByID *string   `json:"updated_by,omitempty" gorm:"type:uuid"`
}
