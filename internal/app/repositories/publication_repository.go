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
	"github.com/pragati-coe/facultyhub/internal/pkg/logger"
)

var (
	journalColumns = []string{
		"id", "faculty_id", "department", "first_author",
		"corresponding_author", "other_authors", "author_position",
		"paper_title", "journal_name", "volume_issue", "page_numbers",
		"issn", "doi", "year", "indexing", "quartile", "impact_factor",
		"journal_link", "publisher", "funding_agency", "remarks",
	}
	conferenceColumns = []string{
		"id", "faculty_id", "department", "paper_title", "authors",
		"corresponding_author", "author_position", "conference_name",
		"venue", "dates", "proceedings_title", "isbn_issn", "doi", "year",
		"indexing", "publisher", "link",
	}
	bookChapterColumns = []string{
		"id", "faculty_id", "department", "chapter_title", "book_title",
		"authors", "author_position", "corresponding_author", "publisher",
		"isbn", "doi", "year", "indexing", "quartile", "impact_factor",
		"link",
	}
	patentColumns = []string{
		"id", "faculty_id", "department", "title", "inventors",
		"corresponding_applicant", "author_position", "application_number",
		"filing_date", "publication_date", "grant_date", "patent_office",
		"status", "patent_type", "patent_link", "certificate_link",
	}
)

// PubQuery filters campus-wide publication listings. Zero values mean no
// restriction. Year matches the publication year, or the filing year for
// patents; Status only applies to patents and Indexing only to journals.
type PubQuery struct {
	Department string
	Year       int
	Indexing   string
	Status     string
}

// PublicationCounts carries aggregate totals for the dashboard. Books counts
// distinct book titles across chapter rows.
type PublicationCounts struct {
	Journals     int
	Conferences  int
	BookChapters int
	Patents      int
	Books        int
}

// JournalRow is a journal publication joined with its owner for exports.
type JournalRow struct {
	models.JournalPublication
	FacultyName       string
	FacultyEmployeeID string
}

// ConferenceRow is a conference publication joined with its owner.
type ConferenceRow struct {
	models.ConferencePublication
	FacultyName       string
	FacultyEmployeeID string
}

// BookChapterRow is a book chapter joined with its owner.
type BookChapterRow struct {
	models.BookChapter
	FacultyName       string
	FacultyEmployeeID string
}

// PatentRow is a patent joined with its owner.
type PatentRow struct {
	models.Patent
	FacultyName       string
	FacultyEmployeeID string
}

// PublicationRepository handles the four research output tables.
type PublicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPublicationRepository creates a new PublicationRepository
func NewPublicationRepository(db *pgxpool.Pool) *PublicationRepository {
	return &PublicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanJournal(row pgx.Row, j *models.JournalPublication, extra ...interface{}) error {
	dest := []interface{}{
		&j.ID, &j.FacultyID, &j.Department, &j.FirstAuthor,
		&j.CorrespondingAuthor, &j.OtherAuthors, &j.AuthorPosition,
		&j.PaperTitle, &j.JournalName, &j.VolumeIssue, &j.PageNumbers,
		&j.ISSN, &j.DOI, &j.Year, &j.Indexing, &j.Quartile, &j.ImpactFactor,
		&j.JournalLink, &j.Publisher, &j.FundingAgency, &j.Remarks,
	}
	return row.Scan(append(dest, extra...)...)
}

func journalValues(j *models.JournalPublication) []interface{} {
	return []interface{}{
		j.FacultyID, j.Department, j.FirstAuthor, j.CorrespondingAuthor,
		j.OtherAuthors, j.AuthorPosition, j.PaperTitle, j.JournalName,
		j.VolumeIssue, j.PageNumbers, j.ISSN, j.DOI, j.Year, j.Indexing,
		j.Quartile, j.ImpactFactor, j.JournalLink, j.Publisher,
		j.FundingAgency, j.Remarks,
	}
}

func scanConference(row pgx.Row, c *models.ConferencePublication, extra ...interface{}) error {
	dest := []interface{}{
		&c.ID, &c.FacultyID, &c.Department, &c.PaperTitle, &c.Authors,
		&c.CorrespondingAuthor, &c.AuthorPosition, &c.ConferenceName,
		&c.Venue, &c.Dates, &c.ProceedingsTitle, &c.ISBNISSN, &c.DOI,
		&c.Year, &c.Indexing, &c.Publisher, &c.Link,
	}
	return row.Scan(append(dest, extra...)...)
}

func conferenceValues(c *models.ConferencePublication) []interface{} {
	return []interface{}{
		c.FacultyID, c.Department, c.PaperTitle, c.Authors,
		c.CorrespondingAuthor, c.AuthorPosition, c.ConferenceName, c.Venue,
		c.Dates, c.ProceedingsTitle, c.ISBNISSN, c.DOI, c.Year, c.Indexing,
		c.Publisher, c.Link,
	}
}

func scanBookChapter(row pgx.Row, b *models.BookChapter, extra ...interface{}) error {
	dest := []interface{}{
		&b.ID, &b.FacultyID, &b.Department, &b.ChapterTitle, &b.BookTitle,
		&b.Authors, &b.AuthorPosition, &b.CorrespondingAuthor, &b.Publisher,
		&b.ISBN, &b.DOI, &b.Year, &b.Indexing, &b.Quartile, &b.ImpactFactor,
		&b.Link,
	}
	return row.Scan(append(dest, extra...)...)
}

func bookChapterValues(b *models.BookChapter) []interface{} {
	return []interface{}{
		b.FacultyID, b.Department, b.ChapterTitle, b.BookTitle, b.Authors,
		b.AuthorPosition, b.CorrespondingAuthor, b.Publisher, b.ISBN, b.DOI,
		b.Year, b.Indexing, b.Quartile, b.ImpactFactor, b.Link,
	}
}

func scanPatent(row pgx.Row, p *models.Patent, extra ...interface{}) error {
	dest := []interface{}{
		&p.ID, &p.FacultyID, &p.Department, &p.Title, &p.Inventors,
		&p.CorrespondingApplicant, &p.AuthorPosition, &p.ApplicationNumber,
		&p.FilingDate, &p.PublicationDate, &p.GrantDate, &p.PatentOffice,
		&p.Status, &p.PatentType, &p.PatentLink, &p.CertificateLink,
	}
	return row.Scan(append(dest, extra...)...)
}

func patentValues(p *models.Patent) []interface{} {
	return []interface{}{
		p.FacultyID, p.Department, p.Title, p.Inventors,
		p.CorrespondingApplicant, p.AuthorPosition, p.ApplicationNumber,
		p.FilingDate, p.PublicationDate, p.GrantDate, p.PatentOffice,
		p.Status, p.PatentType, p.PatentLink, p.CertificateLink,
	}
}

func prefixColumns(alias string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return out
}

// ListJournalsByFaculty returns a faculty member's journal papers, newest first.
func (r *PublicationRepository) ListJournalsByFaculty(ctx context.Context, facultyID int64) ([]*models.JournalPublication, error) {
	sql, args, err := r.sb.Select(journalColumns...).
		From("journal_publications").
		Where(squirrel.Eq{"faculty_id": facultyID}).
		OrderBy("year DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list journals query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying journal publications: %w", err)
	}
	defer rows.Close()

	journals := []*models.JournalPublication{}
	for rows.Next() {
		j := &models.JournalPublication{}
		if err := scanJournal(rows, j); err != nil {
			return nil, fmt.Errorf("error scanning journal row: %w", err)
		}
		journals = append(journals, j)
	}
	return journals, rows.Err()
}

// ListJournals returns journal papers across all faculty matching the query.
func (r *PublicationRepository) ListJournals(ctx context.Context, q PubQuery) ([]*JournalRow, error) {
	builder := r.sb.Select(append(prefixColumns("j", journalColumns), "f.name", "f.employee_id")...).
		From("journal_publications j").
		Join("faculty f ON j.faculty_id = f.id")
	if q.Department != "" {
		builder = builder.Where(squirrel.Eq{"j.department": q.Department})
	}
	if q.Year != 0 {
		builder = builder.Where(squirrel.Eq{"j.year": q.Year})
	}
	if q.Indexing != "" {
		builder = builder.Where(squirrel.Eq{"j.indexing": q.Indexing})
	}
	sql, args, err := builder.OrderBy("j.year DESC", "j.department").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list journals query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing campus journal listing")
		return nil, fmt.Errorf("error querying journal publications: %w", err)
	}
	defer rows.Close()

	out := []*JournalRow{}
	for rows.Next() {
		row := &JournalRow{}
		if err := scanJournal(rows, &row.JournalPublication, &row.FacultyName, &row.FacultyEmployeeID); err != nil {
			return nil, fmt.Errorf("error scanning journal row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetJournalByID retrieves a journal publication by ID
func (r *PublicationRepository) GetJournalByID(ctx context.Context, id int64) (*models.JournalPublication, error) {
	sql, args, err := r.sb.Select(journalColumns...).
		From("journal_publications").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get journal query: %w", err)
	}

	j := &models.JournalPublication{}
	if err := scanJournal(r.db.QueryRow(ctx, sql, args...), j); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPublicationNotFound
		}
		return nil, fmt.Errorf("error getting journal publication: %w", err)
	}
	return j, nil
}

// CreateJournal inserts a journal publication and returns its id.
func (r *PublicationRepository) CreateJournal(ctx context.Context, j *models.JournalPublication) (int64, error) {
	sql, args, err := r.sb.Insert("journal_publications").
		Columns(journalColumns[1:]...).
		Values(journalValues(j)...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create journal query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create journal query")
		return 0, fmt.Errorf("error creating journal publication: %w", err)
	}
	return id, nil
}

// UpdateJournal replaces a journal publication's fields.
func (r *PublicationRepository) UpdateJournal(ctx context.Context, j *models.JournalPublication) error {
	values := journalValues(j)
	q := r.sb.Update("journal_publications")
	for i, col := range journalColumns[1:] {
		q = q.Set(col, values[i])
	}
	sql, args, err := q.Where(squirrel.Eq{"id": j.ID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update journal query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating journal publication: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPublicationNotFound
	}
	return nil
}

// DeleteJournal removes a journal publication.
func (r *PublicationRepository) DeleteJournal(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "journal_publications", id)
}

// ListConferencesByFaculty returns a faculty member's conference papers, newest first.
func (r *PublicationRepository) ListConferencesByFaculty(ctx context.Context, facultyID int64) ([]*models.ConferencePublication, error) {
	sql, args, err := r.sb.Select(conferenceColumns...).
		From("conference_publications").
		Where(squirrel.Eq{"faculty_id": facultyID}).
		OrderBy("year DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list conferences query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying conference publications: %w", err)
	}
	defer rows.Close()

	conferences := []*models.ConferencePublication{}
	for rows.Next() {
		c := &models.ConferencePublication{}
		if err := scanConference(rows, c); err != nil {
			return nil, fmt.Errorf("error scanning conference row: %w", err)
		}
		conferences = append(conferences, c)
	}
	return conferences, rows.Err()
}

// ListConferences returns conference papers across all faculty matching the query.
func (r *PublicationRepository) ListConferences(ctx context.Context, q PubQuery) ([]*ConferenceRow, error) {
	builder := r.sb.Select(append(prefixColumns("c", conferenceColumns), "f.name", "f.employee_id")...).
		From("conference_publications c").
		Join("faculty f ON c.faculty_id = f.id")
	if q.Department != "" {
		builder = builder.Where(squirrel.Eq{"c.department": q.Department})
	}
	if q.Year != 0 {
		builder = builder.Where(squirrel.Eq{"c.year": q.Year})
	}
	sql, args, err := builder.OrderBy("c.year DESC", "c.department").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list conferences query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing campus conference listing")
		return nil, fmt.Errorf("error querying conference publications: %w", err)
	}
	defer rows.Close()

	out := []*ConferenceRow{}
	for rows.Next() {
		row := &ConferenceRow{}
		if err := scanConference(rows, &row.ConferencePublication, &row.FacultyName, &row.FacultyEmployeeID); err != nil {
			return nil, fmt.Errorf("error scanning conference row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetConferenceByID retrieves a conference publication by ID
func (r *PublicationRepository) GetConferenceByID(ctx context.Context, id int64) (*models.ConferencePublication, error) {
	sql, args, err := r.sb.Select(conferenceColumns...).
		From("conference_publications").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get conference query: %w", err)
	}

	c := &models.ConferencePublication{}
	if err := scanConference(r.db.QueryRow(ctx, sql, args...), c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPublicationNotFound
		}
		return nil, fmt.Errorf("error getting conference publication: %w", err)
	}
	return c, nil
}

// CreateConference inserts a conference publication and returns its id.
func (r *PublicationRepository) CreateConference(ctx context.Context, c *models.ConferencePublication) (int64, error) {
	sql, args, err := r.sb.Insert("conference_publications").
		Columns(conferenceColumns[1:]...).
		Values(conferenceValues(c)...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create conference query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create conference query")
		return 0, fmt.Errorf("error creating conference publication: %w", err)
	}
	return id, nil
}

// UpdateConference replaces a conference publication's fields.
func (r *PublicationRepository) UpdateConference(ctx context.Context, c *models.ConferencePublication) error {
	values := conferenceValues(c)
	q := r.sb.Update("conference_publications")
	for i, col := range conferenceColumns[1:] {
		q = q.Set(col, values[i])
	}
	sql, args, err := q.Where(squirrel.Eq{"id": c.ID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update conference query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating conference publication: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPublicationNotFound
	}
	return nil
}

// DeleteConference removes a conference publication.
func (r *PublicationRepository) DeleteConference(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "conference_publications", id)
}

// ListBookChaptersByFaculty returns a faculty member's book chapters, newest first.
func (r *PublicationRepository) ListBookChaptersByFaculty(ctx context.Context, facultyID int64) ([]*models.BookChapter, error) {
	sql, args, err := r.sb.Select(bookChapterColumns...).
		From("book_chapters").
		Where(squirrel.Eq{"faculty_id": facultyID}).
		OrderBy("year DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list book chapters query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying book chapters: %w", err)
	}
	defer rows.Close()

	chapters := []*models.BookChapter{}
	for rows.Next() {
		b := &models.BookChapter{}
		if err := scanBookChapter(rows, b); err != nil {
			return nil, fmt.Errorf("error scanning book chapter row: %w", err)
		}
		chapters = append(chapters, b)
	}
	return chapters, rows.Err()
}

// ListBookChapters returns book chapters across all faculty matching the query.
func (r *PublicationRepository) ListBookChapters(ctx context.Context, q PubQuery) ([]*BookChapterRow, error) {
	builder := r.sb.Select(append(prefixColumns("b", bookChapterColumns), "f.name", "f.employee_id")...).
		From("book_chapters b").
		Join("faculty f ON b.faculty_id = f.id")
	if q.Department != "" {
		builder = builder.Where(squirrel.Eq{"b.department": q.Department})
	}
	if q.Year != 0 {
		builder = builder.Where(squirrel.Eq{"b.year": q.Year})
	}
	sql, args, err := builder.OrderBy("b.year DESC", "b.department").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list book chapters query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing campus book chapter listing")
		return nil, fmt.Errorf("error querying book chapters: %w", err)
	}
	defer rows.Close()

	out := []*BookChapterRow{}
	for rows.Next() {
		row := &BookChapterRow{}
		if err := scanBookChapter(rows, &row.BookChapter, &row.FacultyName, &row.FacultyEmployeeID); err != nil {
			return nil, fmt.Errorf("error scanning book chapter row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetBookChapterByID retrieves a book chapter by ID
func (r *PublicationRepository) GetBookChapterByID(ctx context.Context, id int64) (*models.BookChapter, error) {
	sql, args, err := r.sb.Select(bookChapterColumns...).
		From("book_chapters").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get book chapter query: %w", err)
	}

	b := &models.BookChapter{}
	if err := scanBookChapter(r.db.QueryRow(ctx, sql, args...), b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPublicationNotFound
		}
		return nil, fmt.Errorf("error getting book chapter: %w", err)
	}
	return b, nil
}

// CreateBookChapter inserts a book chapter and returns its id.
func (r *PublicationRepository) CreateBookChapter(ctx context.Context, b *models.BookChapter) (int64, error) {
	sql, args, err := r.sb.Insert("book_chapters").
		Columns(bookChapterColumns[1:]...).
		Values(bookChapterValues(b)...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create book chapter query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create book chapter query")
		return 0, fmt.Errorf("error creating book chapter: %w", err)
	}
	return id, nil
}

// UpdateBookChapter replaces a book chapter's fields.
func (r *PublicationRepository) UpdateBookChapter(ctx context.Context, b *models.BookChapter) error {
	values := bookChapterValues(b)
	q := r.sb.Update("book_chapters")
	for i, col := range bookChapterColumns[1:] {
		q = q.Set(col, values[i])
	}
	sql, args, err := q.Where(squirrel.Eq{"id": b.ID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update book chapter query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating book chapter: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPublicationNotFound
	}
	return nil
}

// DeleteBookChapter removes a book chapter.
func (r *PublicationRepository) DeleteBookChapter(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "book_chapters", id)
}

// ListPatentsByFaculty returns a faculty member's patents, latest filing first.
func (r *PublicationRepository) ListPatentsByFaculty(ctx context.Context, facultyID int64) ([]*models.Patent, error) {
	sql, args, err := r.sb.Select(patentColumns...).
		From("patents").
		Where(squirrel.Eq{"faculty_id": facultyID}).
		OrderBy("filing_date DESC NULLS LAST").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list patents query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying patents: %w", err)
	}
	defer rows.Close()

	patents := []*models.Patent{}
	for rows.Next() {
		p := &models.Patent{}
		if err := scanPatent(rows, p); err != nil {
			return nil, fmt.Errorf("error scanning patent row: %w", err)
		}
		patents = append(patents, p)
	}
	return patents, rows.Err()
}

// ListPatents returns patents across all faculty matching the query.
func (r *PublicationRepository) ListPatents(ctx context.Context, q PubQuery) ([]*PatentRow, error) {
	builder := r.sb.Select(append(prefixColumns("p", patentColumns), "f.name", "f.employee_id")...).
		From("patents p").
		Join("faculty f ON p.faculty_id = f.id")
	if q.Department != "" {
		builder = builder.Where(squirrel.Eq{"p.department": q.Department})
	}
	if q.Year != 0 {
		builder = builder.Where("EXTRACT(YEAR FROM p.filing_date) = ?", q.Year)
	}
	if q.Status != "" {
		builder = builder.Where(squirrel.Eq{"p.status": q.Status})
	}
	sql, args, err := builder.OrderBy("p.filing_date DESC NULLS LAST", "p.department").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list patents query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing campus patent listing")
		return nil, fmt.Errorf("error querying patents: %w", err)
	}
	defer rows.Close()

	out := []*PatentRow{}
	for rows.Next() {
		row := &PatentRow{}
		if err := scanPatent(rows, &row.Patent, &row.FacultyName, &row.FacultyEmployeeID); err != nil {
			return nil, fmt.Errorf("error scanning patent row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetPatentByID retrieves a patent by ID
func (r *PublicationRepository) GetPatentByID(ctx context.Context, id int64) (*models.Patent, error) {
	sql, args, err := r.sb.Select(patentColumns...).
		From("patents").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get patent query: %w", err)
	}

	p := &models.Patent{}
	if err := scanPatent(r.db.QueryRow(ctx, sql, args...), p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPublicationNotFound
		}
		return nil, fmt.Errorf("error getting patent: %w", err)
	}
	return p, nil
}

// CreatePatent inserts a patent and returns its id.
func (r *PublicationRepository) CreatePatent(ctx context.Context, p *models.Patent) (int64, error) {
	sql, args, err := r.sb.Insert("patents").
		Columns(patentColumns[1:]...).
		Values(patentValues(p)...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create patent query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create patent query")
		return 0, fmt.Errorf("error creating patent: %w", err)
	}
	return id, nil
}

// UpdatePatent replaces a patent's fields.
func (r *PublicationRepository) UpdatePatent(ctx context.Context, p *models.Patent) error {
	values := patentValues(p)
	q := r.sb.Update("patents")
	for i, col := range patentColumns[1:] {
		q = q.Set(col, values[i])
	}
	sql, args, err := q.Where(squirrel.Eq{"id": p.ID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update patent query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating patent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPublicationNotFound
	}
	return nil
}

// DeletePatent removes a patent.
func (r *PublicationRepository) DeletePatent(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "patents", id)
}

func (r *PublicationRepository) deleteByID(ctx context.Context, table string, id int64) error {
	sql, args, err := r.sb.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting from %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPublicationNotFound
	}
	return nil
}

// Counts returns aggregate publication totals for the dashboard.
func (r *PublicationRepository) Counts(ctx context.Context) (*PublicationCounts, error) {
	const sql = `SELECT
		(SELECT COUNT(*) FROM journal_publications),
		(SELECT COUNT(*) FROM conference_publications),
		(SELECT COUNT(*) FROM book_chapters),
		(SELECT COUNT(*) FROM patents),
		(SELECT COUNT(DISTINCT book_title) FROM book_chapters)`

	counts := &PublicationCounts{}
	err := r.db.QueryRow(ctx, sql).Scan(&counts.Journals, &counts.Conferences,
		&counts.BookChapters, &counts.Patents, &counts.Books)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying publication counts")
		return nil, fmt.Errorf("error counting publications: %w", err)
	}
	return counts, nil
}
