package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pragati-coe/facultyhub/internal/app/models"
	"github.com/pragati-coe/facultyhub/internal/pkg/apperrors"
	"github.com/pragati-coe/facultyhub/internal/pkg/dberrors"
	"github.com/pragati-coe/facultyhub/internal/pkg/logger"
)

// facultyColumns is the full column list in scan order.
var facultyColumns = []string{
	"id", "employee_id", "name", "name_change", "name_change_proof",
	"dob", "gender", "blood_group", "marital_status", "father_name",
	"present_address", "permanent_address", "email", "mobile_no",
	"alternative_mobile", "department", "designation", "date_of_joining",
	"appointment_type", "aadhaar_number", "pan_number", "bank_name",
	"bank_account_no", "ifsc_code", "photo_path", "caste", "subcaste",
	"ratified", "ratified_designation", "ratification_date",
	"prev_employment_date", "resignation_date", "teaching_exp_pragati",
	"teaching_exp_other", "industrial_exp", "overall_exp",
	"experience_category",
}

// FacultyRepository handles faculty profile database operations.
type FacultyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanFaculty(row pgx.Row) (*models.Faculty, error) {
	f := &models.Faculty{}
	err := row.Scan(
		&f.ID, &f.EmployeeID, &f.Name, &f.NameChange, &f.NameChangeProof,
		&f.DOB, &f.Gender, &f.BloodGroup, &f.MaritalStatus, &f.FatherName,
		&f.PresentAddress, &f.PermanentAddress, &f.Email, &f.MobileNo,
		&f.AlternativeMobile, &f.Department, &f.Designation, &f.DateOfJoining,
		&f.AppointmentType, &f.AadhaarNumber, &f.PANNumber, &f.BankName,
		&f.BankAccountNo, &f.IFSCCode, &f.PhotoPath, &f.Caste, &f.Subcaste,
		&f.Ratified, &f.RatifiedDesignation, &f.RatificationDate,
		&f.PrevEmploymentDate, &f.ResignationDate, &f.TeachingExpPragati,
		&f.TeachingExpOther, &f.IndustrialExp, &f.OverallExp,
		&f.ExperienceCategory,
	)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func facultyValues(f *models.Faculty) []interface{} {
	return []interface{}{
		f.EmployeeID, f.Name, f.NameChange, f.NameChangeProof,
		f.DOB, f.Gender, f.BloodGroup, f.MaritalStatus, f.FatherName,
		f.PresentAddress, f.PermanentAddress, f.Email, f.MobileNo,
		f.AlternativeMobile, f.Department, f.Designation, f.DateOfJoining,
		f.AppointmentType, f.AadhaarNumber, f.PANNumber, f.BankName,
		f.BankAccountNo, f.IFSCCode, f.PhotoPath, f.Caste, f.Subcaste,
		f.Ratified, f.RatifiedDesignation, f.RatificationDate,
		f.PrevEmploymentDate, f.ResignationDate, f.TeachingExpPragati,
		f.TeachingExpOther, f.IndustrialExp, f.OverallExp,
		f.ExperienceCategory,
	}
}

// Create inserts a new faculty profile and returns its id.
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) (int64, error) {
	sql, args, err := r.sb.Insert("faculty").
		Columns(facultyColumns[1:]...).
		Values(facultyValues(faculty)...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create faculty SQL")
		return 0, fmt.Errorf("failed to build create faculty query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrDuplicateKey
		}
		logger.Error().Err(err).Msg("Error executing create faculty query")
		return 0, fmt.Errorf("error creating faculty: %w", err)
	}

	return id, nil
}

// GetByID retrieves a faculty profile by ID
func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	sql, args, err := r.sb.Select(facultyColumns...).
		From("faculty").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	faculty, err := scanFaculty(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error scanning faculty row")
		return nil, fmt.Errorf("error getting faculty by ID: %w", err)
	}

	return faculty, nil
}

// GetByEmployeeID retrieves a faculty profile by employee id.
func (r *FacultyRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*models.Faculty, error) {
	sql, args, err := r.sb.Select(facultyColumns...).
		From("faculty").
		Where(squirrel.Eq{"employee_id": employeeID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	faculty, err := scanFaculty(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error getting faculty by employee id: %w", err)
	}

	return faculty, nil
}

// GetByEmail retrieves a faculty profile by email.
func (r *FacultyRepository) GetByEmail(ctx context.Context, email string) (*models.Faculty, error) {
	sql, args, err := r.sb.Select(facultyColumns...).
		From("faculty").
		Where("LOWER(email) = LOWER(?)", email).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	faculty, err := scanFaculty(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error getting faculty by email: %w", err)
	}

	return faculty, nil
}

// List retrieves faculty profiles matching the filter, ordered by name.
func (r *FacultyRepository) List(ctx context.Context, filter FacultyFilter) ([]*models.Faculty, error) {
	q := filter.Apply(r.sb.Select(facultyColumns...).From("faculty")).
		OrderBy("name ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list faculty SQL")
		return nil, fmt.Errorf("failed to build list faculty query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list faculty query")
		return nil, fmt.Errorf("error querying faculty: %w", err)
	}
	defer rows.Close()

	faculty := []*models.Faculty{}
	for rows.Next() {
		f, err := scanFaculty(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning faculty row: %w", err)
		}
		faculty = append(faculty, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faculty rows: %w", err)
	}

	return faculty, nil
}

// Update replaces every mutable column of a faculty profile.
func (r *FacultyRepository) Update(ctx context.Context, faculty *models.Faculty) error {
	values := facultyValues(faculty)
	q := r.sb.Update("faculty")
	for i, col := range facultyColumns[1:] {
		q = q.Set(col, values[i])
	}

	sql, args, err := q.Where(squirrel.Eq{"id": faculty.ID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update faculty query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDuplicateKey
		}
		logger.Error().Err(err).Int64("facultyID", faculty.ID).Msg("Error executing update faculty query")
		return fmt.Errorf("error updating faculty: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}

// UpdatePhotoPath stores the path of an uploaded profile photo.
func (r *FacultyRepository) UpdatePhotoPath(ctx context.Context, facultyID int64, path string) error {
	sql, args, err := r.sb.Update("faculty").
		Set("photo_path", path).
		Where(squirrel.Eq{"id": facultyID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update photo query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating faculty photo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}
	return nil
}

// Delete removes a faculty profile. Child rows block the delete through
// foreign keys, surfaced as ErrFacultyHasRelations.
func (r *FacultyRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("faculty").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete faculty query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrFacultyHasRelations
		}
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error executing delete faculty query")
		return fmt.Errorf("error deleting faculty: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}
