package migrations

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pragati-coe/facultyhub/internal/pkg/logger"
)

// migration is one versioned schema step. Statements run inside a single
// transaction and are recorded in schema_migrations once applied.
type migration struct {
	version string
	name    string
	sql     string
}

var migrationSet = []migration{
	{
		version: "001",
		name:    "users",
		sql: `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	username VARCHAR(100) NOT NULL,
	email VARCHAR(255) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(50) NOT NULL DEFAULT 'Faculty',
	approved BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	last_login TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS idx_users_username ON users (username);
`,
	},
	{
		version: "002",
		name:    "faculty",
		sql: `
CREATE TABLE IF NOT EXISTS faculty (
	id BIGSERIAL PRIMARY KEY,
	employee_id VARCHAR(50) NOT NULL UNIQUE,
	name VARCHAR(255) NOT NULL,
	name_change BOOLEAN NOT NULL DEFAULT FALSE,
	name_change_proof TEXT NOT NULL DEFAULT '',
	dob DATE NOT NULL,
	gender VARCHAR(20) NOT NULL,
	blood_group VARCHAR(10) NOT NULL DEFAULT '',
	marital_status VARCHAR(30) NOT NULL DEFAULT '',
	father_name VARCHAR(255) NOT NULL DEFAULT '',
	present_address TEXT NOT NULL DEFAULT '',
	permanent_address TEXT NOT NULL DEFAULT '',
	email VARCHAR(255) NOT NULL UNIQUE,
	mobile_no VARCHAR(20) NOT NULL DEFAULT '',
	alternative_mobile VARCHAR(20) NOT NULL DEFAULT '',
	department VARCHAR(100) NOT NULL,
	designation VARCHAR(100) NOT NULL,
	date_of_joining DATE NOT NULL,
	appointment_type VARCHAR(50) NOT NULL,
	aadhaar_number VARCHAR(20) NOT NULL DEFAULT '',
	pan_number VARCHAR(20) NOT NULL DEFAULT '',
	bank_name VARCHAR(100) NOT NULL DEFAULT '',
	bank_account_no VARCHAR(30) NOT NULL DEFAULT '',
	ifsc_code VARCHAR(20) NOT NULL DEFAULT '',
	photo_path TEXT NOT NULL DEFAULT '',
	caste VARCHAR(50) NOT NULL DEFAULT '',
	subcaste VARCHAR(50) NOT NULL DEFAULT '',
	ratified VARCHAR(10) NOT NULL DEFAULT 'No',
	ratified_designation VARCHAR(100) NOT NULL DEFAULT '',
	ratification_date DATE,
	prev_employment_date DATE,
	resignation_date DATE,
	teaching_exp_pragati DOUBLE PRECISION NOT NULL DEFAULT 0,
	teaching_exp_other DOUBLE PRECISION NOT NULL DEFAULT 0,
	industrial_exp DOUBLE PRECISION NOT NULL DEFAULT 0,
	overall_exp DOUBLE PRECISION NOT NULL DEFAULT 0,
	experience_category VARCHAR(10) NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_faculty_department ON faculty (department);
CREATE INDEX IF NOT EXISTS idx_faculty_name ON faculty (name);
`,
	},
	{
		version: "003",
		name:    "qualifications",
		sql: `
CREATE TABLE IF NOT EXISTS qualifications (
	id BIGSERIAL PRIMARY KEY,
	faculty_id BIGINT NOT NULL REFERENCES faculty(id) ON DELETE RESTRICT,
	qualification_type VARCHAR(100) NOT NULL,
	specialization VARCHAR(255) NOT NULL DEFAULT '',
	percentage VARCHAR(20) NOT NULL DEFAULT '',
	year_of_passing INTEGER NOT NULL DEFAULT 0,
	institution VARCHAR(255) NOT NULL DEFAULT '',
	highest_degree BOOLEAN NOT NULL DEFAULT FALSE,
	pursuing BOOLEAN NOT NULL DEFAULT FALSE
);
CREATE INDEX IF NOT EXISTS idx_qualifications_faculty ON qualifications (faculty_id);
`,
	},
	{
		version: "004",
		name:    "journal_publications",
		sql: `
CREATE TABLE IF NOT EXISTS journal_publications (
	id BIGSERIAL PRIMARY KEY,
	faculty_id BIGINT NOT NULL REFERENCES faculty(id) ON DELETE RESTRICT,
	department VARCHAR(100) NOT NULL DEFAULT '',
	first_author VARCHAR(255) NOT NULL DEFAULT '',
	corresponding_author VARCHAR(255) NOT NULL DEFAULT '',
	other_authors TEXT NOT NULL DEFAULT '',
	author_position VARCHAR(50) NOT NULL DEFAULT '',
	paper_title TEXT NOT NULL,
	journal_name VARCHAR(255) NOT NULL,
	volume_issue VARCHAR(100) NOT NULL DEFAULT '',
	page_numbers VARCHAR(50) NOT NULL DEFAULT '',
	issn VARCHAR(30) NOT NULL DEFAULT '',
	doi VARCHAR(255) NOT NULL DEFAULT '',
	year INTEGER NOT NULL,
	indexing VARCHAR(100) NOT NULL DEFAULT '',
	quartile VARCHAR(10) NOT NULL DEFAULT '',
	impact_factor DOUBLE PRECISION NOT NULL DEFAULT 0,
	journal_link TEXT NOT NULL DEFAULT '',
	publisher VARCHAR(255) NOT NULL DEFAULT '',
	funding_agency VARCHAR(255) NOT NULL DEFAULT '',
	remarks TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_journal_publications_faculty ON journal_publications (faculty_id);
CREATE INDEX IF NOT EXISTS idx_journal_publications_year ON journal_publications (year);
`,
	},
	{
		version: "005",
		name:    "conference_publications",
		sql: `
CREATE TABLE IF NOT EXISTS conference_publications (
	id BIGSERIAL PRIMARY KEY,
	faculty_id BIGINT NOT NULL REFERENCES faculty(id) ON DELETE RESTRICT,
	department VARCHAR(100) NOT NULL DEFAULT '',
	paper_title TEXT NOT NULL,
	authors TEXT NOT NULL DEFAULT '',
	corresponding_author VARCHAR(255) NOT NULL DEFAULT '',
	author_position VARCHAR(50) NOT NULL DEFAULT '',
	conference_name VARCHAR(255) NOT NULL,
	venue VARCHAR(255) NOT NULL DEFAULT '',
	dates VARCHAR(100) NOT NULL DEFAULT '',
	proceedings_title TEXT NOT NULL DEFAULT '',
	isbn_issn VARCHAR(30) NOT NULL DEFAULT '',
	doi VARCHAR(255) NOT NULL DEFAULT '',
	year INTEGER NOT NULL,
	indexing VARCHAR(100) NOT NULL DEFAULT '',
	publisher VARCHAR(255) NOT NULL DEFAULT '',
	link TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_conference_publications_faculty ON conference_publications (faculty_id);
`,
	},
	{
		version: "006",
		name:    "book_chapters",
		sql: `
CREATE TABLE IF NOT EXISTS book_chapters (
	id BIGSERIAL PRIMARY KEY,
	faculty_id BIGINT NOT NULL REFERENCES faculty(id) ON DELETE RESTRICT,
	department VARCHAR(100) NOT NULL DEFAULT '',
	chapter_title TEXT NOT NULL,
	book_title TEXT NOT NULL,
	authors TEXT NOT NULL DEFAULT '',
	author_position VARCHAR(50) NOT NULL DEFAULT '',
	corresponding_author VARCHAR(255) NOT NULL DEFAULT '',
	publisher VARCHAR(255) NOT NULL DEFAULT '',
	isbn VARCHAR(30) NOT NULL DEFAULT '',
	doi VARCHAR(255) NOT NULL DEFAULT '',
	year INTEGER NOT NULL,
	indexing VARCHAR(100) NOT NULL DEFAULT '',
	quartile VARCHAR(10) NOT NULL DEFAULT '',
	impact_factor DOUBLE PRECISION NOT NULL DEFAULT 0,
	link TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_book_chapters_faculty ON book_chapters (faculty_id);
`,
	},
	{
		version: "007",
		name:    "patents",
		sql: `
CREATE TABLE IF NOT EXISTS patents (
	id BIGSERIAL PRIMARY KEY,
	faculty_id BIGINT NOT NULL REFERENCES faculty(id) ON DELETE RESTRICT,
	department VARCHAR(100) NOT NULL DEFAULT '',
	title TEXT NOT NULL,
	inventors TEXT NOT NULL DEFAULT '',
	corresponding_applicant VARCHAR(255) NOT NULL DEFAULT '',
	author_position VARCHAR(50) NOT NULL DEFAULT '',
	application_number VARCHAR(100) NOT NULL DEFAULT '',
	filing_date DATE,
	publication_date DATE,
	grant_date DATE,
	patent_office VARCHAR(100) NOT NULL DEFAULT '',
	status VARCHAR(50) NOT NULL DEFAULT '',
	patent_type VARCHAR(50) NOT NULL DEFAULT '',
	patent_link TEXT NOT NULL DEFAULT '',
	certificate_link TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_patents_faculty ON patents (faculty_id);
`,
	},
}

// Migrator manages database migrations
type Migrator struct {
	db *pgxpool.Pool
}

// NewMigrator creates a new migrator
func NewMigrator(db *pgxpool.Pool) *Migrator {
	return &Migrator{
		db: db,
	}
}

func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	_, err := m.db.Exec(ctx, createTableSQL)
	if err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1);`
	err := m.db.QueryRow(ctx, query, version).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

func (m *Migrator) recordMigration(ctx context.Context, version string) error {
	_, err := m.db.Exec(ctx, `INSERT INTO schema_migrations (version, applied_at) VALUES ($1, $2)`,
		version, time.Now())
	if err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}
	return nil
}

// Migrate applies every pending schema step in order.
func (m *Migrator) Migrate(ctx context.Context) error {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return err
	}

	for _, mig := range migrationSet {
		applied, err := m.isMigrationApplied(ctx, mig.version)
		if err != nil {
			return err
		}
		if applied {
			logger.Debug().Str("version", mig.version).Str("name", mig.name).Msg("Migration already applied, skipping")
			continue
		}

		tx, err := m.db.Begin(ctx)
		if err != nil {
			return fmt.Errorf("failed to start transaction for migration %s: %w", mig.version, err)
		}

		if _, err := tx.Exec(ctx, mig.sql); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("migration %s (%s) failed: %w", mig.version, mig.name, err)
		}

		if err := m.recordMigration(ctx, mig.version); err != nil {
			_ = tx.Rollback(ctx)
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("failed to commit migration %s: %w", mig.version, err)
		}

		logger.Info().Str("version", mig.version).Str("name", mig.name).Msg("Migration applied")
	}

	return nil
}
