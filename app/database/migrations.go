package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if missing and applies column updates.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := createUsersTable(db); err != nil {
		return err
	}
	if err := createProfilesTable(db); err != nil {
		return err
	}
	if err := createAssessmentsTable(db); err != nil {
		return err
	}
	if err := addTreatmentRemarksColumn(db); err != nil {
		return err
	}
	if err := addDischargeColumn(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createUsersTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		);
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to create users table: %v", err)
		return err
	}
	return nil
}

func createProfilesTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS profiles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
			member_id TEXT NOT NULL UNIQUE,
			official_name TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'student',
			phone VARCHAR(20),
			is_locked BOOLEAN NOT NULL DEFAULT false,
			profile_log TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to create profiles table: %v", err)
		return err
	}
	return nil
}

func createAssessmentsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS assessments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),

			student_id UUID REFERENCES profiles(id) ON DELETE SET NULL,
			evaluator_id UUID REFERENCES profiles(id) ON DELETE SET NULL,

			is_consent_signed BOOLEAN NOT NULL DEFAULT false,
			consent_signed_by TEXT NOT NULL DEFAULT '',
			consent_signed_at TIMESTAMPTZ,
			consent_signature_path TEXT NOT NULL DEFAULT '',
			marketing_consent BOOLEAN NOT NULL DEFAULT false,
			education_consent BOOLEAN NOT NULL DEFAULT false,
			research_consent BOOLEAN NOT NULL DEFAULT false,

			patient_name TEXT NOT NULL,
			gender TEXT NOT NULL,
			date_of_birth DATE,
			pulse SMALLINT NOT NULL DEFAULT 0,
			respiratory SMALLINT NOT NULL DEFAULT 0,
			systolic_bp SMALLINT NOT NULL DEFAULT 0,
			diastolic_bp SMALLINT NOT NULL DEFAULT 0,
			summary TEXT NOT NULL DEFAULT '',
			special_direction TEXT NOT NULL DEFAULT '',
			is_section_1_signed BOOLEAN NOT NULL DEFAULT false,
			section_1_signed_by UUID REFERENCES profiles(id) ON DELETE SET NULL,
			section_1_signed_at TIMESTAMPTZ,

			chief_complaint TEXT NOT NULL DEFAULT '',
			history_of_condition TEXT NOT NULL DEFAULT '',
			pain TEXT NOT NULL DEFAULT '',
			aggravating_factors TEXT NOT NULL DEFAULT '',
			relieving_factors TEXT NOT NULL DEFAULT '',
			associated_symptoms TEXT NOT NULL DEFAULT '',
			health_hx_review TEXT NOT NULL DEFAULT '',
			past_illnesses TEXT NOT NULL DEFAULT '',
			family_hx TEXT NOT NULL DEFAULT '',
			psycho_social_hx TEXT NOT NULL DEFAULT '',
			occupational TEXT NOT NULL DEFAULT '',
			diet TEXT NOT NULL DEFAULT '',
			system_review TEXT NOT NULL DEFAULT '',
			differential_diagnosis TEXT NOT NULL DEFAULT '',
			special_examination_instruction TEXT NOT NULL DEFAULT '',
			is_section_2_signed BOOLEAN NOT NULL DEFAULT false,
			section_2_signed_by UUID REFERENCES profiles(id) ON DELETE SET NULL,
			section_2_signed_at TIMESTAMPTZ,

			inspection_posture TEXT NOT NULL DEFAULT '',
			inspection_gait TEXT NOT NULL DEFAULT '',
			inspection_regional TEXT NOT NULL DEFAULT '',
			palpation TEXT NOT NULL DEFAULT '',
			percussion TEXT NOT NULL DEFAULT '',
			instrumentation TEXT NOT NULL DEFAULT '',
			rom_active TEXT NOT NULL DEFAULT '',
			rom_passive TEXT NOT NULL DEFAULT '',
			rom_resisted TEXT NOT NULL DEFAULT '',
			further_diagnostic_procedures TEXT NOT NULL DEFAULT '',
			ptt TEXT NOT NULL DEFAULT '',
			cranial_nerves TEXT NOT NULL DEFAULT '',
			cerebellar TEXT NOT NULL DEFAULT '',
			spinal_cord TEXT NOT NULL DEFAULT '',
			nerve_root TEXT NOT NULL DEFAULT '',
			peripheral TEXT NOT NULL DEFAULT '',
			pathological TEXT NOT NULL DEFAULT '',
			orthopedic_assessment TEXT NOT NULL DEFAULT '',
			chiropractic_notes TEXT NOT NULL DEFAULT '',
			imaging TEXT NOT NULL DEFAULT '',
			lab TEXT NOT NULL DEFAULT '',
			working_diagnosis TEXT NOT NULL DEFAULT '',
			is_section_3_signed BOOLEAN NOT NULL DEFAULT false,
			section_3_signed_by UUID REFERENCES profiles(id) ON DELETE SET NULL,
			section_3_signed_at TIMESTAMPTZ,

			diagnosis TEXT NOT NULL DEFAULT '',
			diagnosis_date DATE,
			is_section_4_signed BOOLEAN NOT NULL DEFAULT false,
			section_4_signed_by UUID REFERENCES profiles(id) ON DELETE SET NULL,
			section_4_signed_at TIMESTAMPTZ,

			phase_1 TEXT NOT NULL DEFAULT '',
			phase_2 TEXT NOT NULL DEFAULT '',
			phase_3 TEXT NOT NULL DEFAULT '',
			is_treatment_plan_signed BOOLEAN NOT NULL DEFAULT false,
			treatment_plan_signed_by UUID REFERENCES profiles(id) ON DELETE SET NULL,
			treatment_plan_signed_at TIMESTAMPTZ,

			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			created_by UUID REFERENCES profiles(id) ON DELETE SET NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_by UUID REFERENCES profiles(id) ON DELETE SET NULL
		);
		CREATE INDEX IF NOT EXISTS idx_assessments_student ON assessments(student_id);
		CREATE INDEX IF NOT EXISTS idx_assessments_evaluator ON assessments(evaluator_id);
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to create assessments table: %v", err)
		return err
	}
	return nil
}

func addTreatmentRemarksColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'assessments'
				AND column_name = 'treatment_remarks'
			) THEN
				ALTER TABLE assessments ADD COLUMN treatment_remarks TEXT NOT NULL DEFAULT '';
				RAISE NOTICE 'Added treatment_remarks column to assessments';
			END IF;
		END $$;
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to run migration for treatment_remarks column: %v", err)
		return err
	}
	return nil
}

func addDischargeColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'assessments'
				AND column_name = 'is_discharged'
			) THEN
				ALTER TABLE assessments ADD COLUMN is_discharged BOOLEAN NOT NULL DEFAULT false;
				RAISE NOTICE 'Added is_discharged column to assessments';
			END IF;
		END $$;
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to run migration for is_discharged column: %v", err)
		return err
	}
	return nil
}
