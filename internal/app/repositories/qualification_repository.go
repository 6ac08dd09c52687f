package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pragati-coe/facultyhub/internal/app/models"
	"github.com/pragati-coe/facultyhub/internal/db"
	"github.com/pragati-coe/facultyhub/internal/pkg/apperrors"
	"github.com/pragati-coe/facultyhub/internal/pkg/logger"
)

var qualificationColumns = []string{
	"id", "faculty_id", "qualification_type", "specialization", "percentage",
	"year_of_passing", "institution", "highest_degree", "pursuing",
}

// QualificationRepository handles qualification database operations. It keeps
// the store handle alongside the pool because full-set replacement runs
// inside a transaction.
type QualificationRepository struct {
	db    *pgxpool.Pool
	store *db.PostgresDB
	sb    squirrel.StatementBuilderType
}

// NewQualificationRepository creates a new QualificationRepository
func NewQualificationRepository(store *db.PostgresDB) *QualificationRepository {
	return &QualificationRepository{
		db:    store.Pool,
		store: store,
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanQualification(row pgx.Row) (*models.Qualification, error) {
	q := &models.Qualification{}
	err := row.Scan(&q.ID, &q.FacultyID, &q.Type, &q.Specialization,
		&q.Percentage, &q.YearOfPassing, &q.Institution, &q.HighestDegree,
		&q.Pursuing)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// ListByFaculty retrieves a faculty member's qualifications, most recent first.
func (r *QualificationRepository) ListByFaculty(ctx context.Context, facultyID int64) ([]*models.Qualification, error) {
	sql, args, err := r.sb.Select(qualificationColumns...).
		From("qualifications").
		Where(squirrel.Eq{"faculty_id": facultyID}).
		OrderBy("year_of_passing DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list qualifications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", facultyID).Msg("Error executing list qualifications query")
		return nil, fmt.Errorf("error querying qualifications: %w", err)
	}
	defer rows.Close()

	quals := []*models.Qualification{}
	for rows.Next() {
		q, err := scanQualification(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning qualification row: %w", err)
		}
		quals = append(quals, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating qualification rows: %w", err)
	}

	return quals, nil
}

// GetByID retrieves a qualification by ID
func (r *QualificationRepository) GetByID(ctx context.Context, id int64) (*models.Qualification, error) {
	sql, args, err := r.sb.Select(qualificationColumns...).
		From("qualifications").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get qualification query: %w", err)
	}

	q, err := scanQualification(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrQualificationNotFound
		}
		return nil, fmt.Errorf("error getting qualification by ID: %w", err)
	}

	return q, nil
}

// Create inserts a new qualification and returns its id.
func (r *QualificationRepository) Create(ctx context.Context, q *models.Qualification) (int64, error) {
	sql, args, err := r.sb.Insert("qualifications").
		Columns(qualificationColumns[1:]...).
		Values(q.FacultyID, q.Type, q.Specialization, q.Percentage,
			q.YearOfPassing, q.Institution, q.HighestDegree, q.Pursuing).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create qualification query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create qualification query")
		return 0, fmt.Errorf("error creating qualification: %w", err)
	}

	return id, nil
}

// Update replaces a qualification's fields.
func (r *QualificationRepository) Update(ctx context.Context, q *models.Qualification) error {
	sql, args, err := r.sb.Update("qualifications").
		Set("qualification_type", q.Type).
		Set("specialization", q.Specialization).
		Set("percentage", q.Percentage).
		Set("year_of_passing", q.YearOfPassing).
		Set("institution", q.Institution).
		Set("highest_degree", q.HighestDegree).
		Set("pursuing", q.Pursuing).
		Where(squirrel.Eq{"id": q.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update qualification query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating qualification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrQualificationNotFound
	}

	return nil
}

// Delete removes a qualification.
func (r *QualificationRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("qualifications").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete qualification query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting qualification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrQualificationNotFound
	}

	return nil
}

// CountFacultyWithHighestDegree counts distinct faculty whose flagged highest
// degree is one of the given qualification types.
func (r *QualificationRepository) CountFacultyWithHighestDegree(ctx context.Context, types []string) (int, error) {
	sql, args, err := r.sb.Select("COUNT(DISTINCT faculty_id)").
		From("qualifications").
		Where(squirrel.Eq{"qualification_type": types}).
		Where(squirrel.Eq{"highest_degree": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build degree count query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting degree holders: %w", err)
	}
	return count, nil
}

// ReplaceForFaculty swaps the full qualification set of a faculty member in
// one transaction.
func (r *QualificationRepository) ReplaceForFaculty(ctx context.Context, facultyID int64, quals []*models.Qualification) error {
	return r.store.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		delSQL, delArgs, err := r.sb.Delete("qualifications").
			Where(squirrel.Eq{"faculty_id": facultyID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete qualifications query: %w", err)
		}
		if _, err := tx.Exec(ctx, delSQL, delArgs...); err != nil {
			return fmt.Errorf("error clearing qualifications: %w", err)
		}

		for _, q := range quals {
			insSQL, insArgs, err := r.sb.Insert("qualifications").
				Columns(qualificationColumns[1:]...).
				Values(facultyID, q.Type, q.Specialization, q.Percentage,
					q.YearOfPassing, q.Institution, q.HighestDegree, q.Pursuing).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build insert qualification query: %w", err)
			}
			if _, err := tx.Exec(ctx, insSQL, insArgs...); err != nil {
				return fmt.Errorf("error inserting qualification: %w", err)
			}
		}

		return nil
	})
}
