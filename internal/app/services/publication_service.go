package services

import (
	"context"

	appauth "github.com/pragati-coe/facultyhub/internal/app/auth"
	"github.com/pragati-coe/facultyhub/internal/app/models"
	"github.com/pragati-coe/facultyhub/internal/app/repositories"
	"github.com/pragati-coe/facultyhub/internal/pkg/apperrors"
	"github.com/pragati-coe/facultyhub/internal/pkg/logger"
)

// FacultyPublications bundles every research output of one faculty member.
type FacultyPublications struct {
	Journals     []*models.JournalPublication    `json:"journals"`
	Conferences  []*models.ConferencePublication `json:"conferences"`
	BookChapters []*models.BookChapter           `json:"bookChapters"`
	Patents      []*models.Patent                `json:"patents"`
}

// PublicationService defines the interface for research output operations.
// Edits are owner-only for every role; campus-wide listings are limited to
// administrative callers.
type PublicationService interface {
	GetFacultyPublications(ctx context.Context, ident appauth.Identity, facultyID int64) (*FacultyPublications, error)

	ListCampusJournals(ctx context.Context, ident appauth.Identity, q repositories.PubQuery) ([]*repositories.JournalRow, error)
	ListCampusConferences(ctx context.Context, ident appauth.Identity, q repositories.PubQuery) ([]*repositories.ConferenceRow, error)
	ListCampusBookChapters(ctx context.Context, ident appauth.Identity, q repositories.PubQuery) ([]*repositories.BookChapterRow, error)
	ListCampusPatents(ctx context.Context, ident appauth.Identity, q repositories.PubQuery) ([]*repositories.PatentRow, error)

	AddJournal(ctx context.Context, ident appauth.Identity, j *models.JournalPublication) (int64, error)
	UpdateJournal(ctx context.Context, ident appauth.Identity, j *models.JournalPublication) error
	DeleteJournal(ctx context.Context, ident appauth.Identity, id int64) error

	AddConference(ctx context.Context, ident appauth.Identity, c *models.ConferencePublication) (int64, error)
	UpdateConference(ctx context.Context, ident appauth.Identity, c *models.ConferencePublication) error
	DeleteConference(ctx context.Context, ident appauth.Identity, id int64) error

	AddBookChapter(ctx context.Context, ident appauth.Identity, b *models.BookChapter) (int64, error)
	UpdateBookChapter(ctx context.Context, ident appauth.Identity, b *models.BookChapter) error
	DeleteBookChapter(ctx context.Context, ident appauth.Identity, id int64) error

	AddPatent(ctx context.Context, ident appauth.Identity, p *models.Patent) (int64, error)
	UpdatePatent(ctx context.Context, ident appauth.Identity, p *models.Patent) error
	DeletePatent(ctx context.Context, ident appauth.Identity, id int64) error
}

type publicationServiceImpl struct {
	pubRepo *repositories.PublicationRepository
	authz   *appauth.Service
}

// NewPublicationService creates a new publication service instance
func NewPublicationService(pubRepo *repositories.PublicationRepository, authz *appauth.Service) PublicationService {
	return &publicationServiceImpl{
		pubRepo: pubRepo,
		authz:   authz,
	}
}

func (s *publicationServiceImpl) validateView(ctx context.Context, ident appauth.Identity, facultyID int64) error {
	if err := s.authz.Validate(ident, appauth.CapViewFaculty); err != nil {
		return err
	}
	if ident.Role().IsAdministrative() {
		return nil
	}
	own, err := s.authz.OwnsFaculty(ctx, ident, facultyID)
	if err != nil {
		return err
	}
	if !own {
		return apperrors.NewForbiddenError("you can only view your own publications")
	}
	return nil
}

// GetFacultyPublications returns all research outputs of one faculty member.
func (s *publicationServiceImpl) GetFacultyPublications(ctx context.Context, ident appauth.Identity, facultyID int64) (*FacultyPublications, error) {
	if err := s.validateView(ctx, ident, facultyID); err != nil {
		return nil, err
	}

	journals, err := s.pubRepo.ListJournalsByFaculty(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	conferences, err := s.pubRepo.ListConferencesByFaculty(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	chapters, err := s.pubRepo.ListBookChaptersByFaculty(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	patents, err := s.pubRepo.ListPatentsByFaculty(ctx, facultyID)
	if err != nil {
		return nil, err
	}

	return &FacultyPublications{
		Journals:     journals,
		Conferences:  conferences,
		BookChapters: chapters,
		Patents:      patents,
	}, nil
}

// ListCampusJournals lists journal papers across all faculty.
func (s *publicationServiceImpl) ListCampusJournals(ctx context.Context, ident appauth.Identity, q repositories.PubQuery) ([]*repositories.JournalRow, error) {
	if err := s.authz.Validate(ident, appauth.CapViewAllPublications); err != nil {
		return nil, err
	}
	return s.pubRepo.ListJournals(ctx, q)
}

// ListCampusConferences lists conference papers across all faculty.
func (s *publicationServiceImpl) ListCampusConferences(ctx context.Context, ident appauth.Identity, q repositories.PubQuery) ([]*repositories.ConferenceRow, error) {
	if err := s.authz.Validate(ident, appauth.CapViewAllPublications); err != nil {
		return nil, err
	}
	return s.pubRepo.ListConferences(ctx, q)
}

// ListCampusBookChapters lists book chapters across all faculty.
func (s *publicationServiceImpl) ListCampusBookChapters(ctx context.Context, ident appauth.Identity, q repositories.PubQuery) ([]*repositories.BookChapterRow, error) {
	if err := s.authz.Validate(ident, appauth.CapViewAllPublications); err != nil {
		return nil, err
	}
	return s.pubRepo.ListBookChapters(ctx, q)
}

// ListCampusPatents lists patents across all faculty.
func (s *publicationServiceImpl) ListCampusPatents(ctx context.Context, ident appauth.Identity, q repositories.PubQuery) ([]*repositories.PatentRow, error) {
	if err := s.authz.Validate(ident, appauth.CapViewAllPublications); err != nil {
		return nil, err
	}
	return s.pubRepo.ListPatents(ctx, q)
}

// AddJournal attaches a journal paper to the caller's own profile.
func (s *publicationServiceImpl) AddJournal(ctx context.Context, ident appauth.Identity, j *models.JournalPublication) (int64, error) {
	if err := s.authz.ValidateEditPublications(ctx, ident, j.FacultyID); err != nil {
		return 0, err
	}
	id, err := s.pubRepo.CreateJournal(ctx, j)
	if err != nil {
		return 0, err
	}
	logger.Info().Int64("journalID", id).Int64("facultyID", j.FacultyID).Msg("Journal publication added")
	return id, nil
}

// UpdateJournal replaces a journal paper's fields.
func (s *publicationServiceImpl) UpdateJournal(ctx context.Context, ident appauth.Identity, j *models.JournalPublication) error {
	current, err := s.pubRepo.GetJournalByID(ctx, j.ID)
	if err != nil {
		return err
	}
	if err := s.authz.ValidateEditPublications(ctx, ident, current.FacultyID); err != nil {
		return err
	}
	j.FacultyID = current.FacultyID
	return s.pubRepo.UpdateJournal(ctx, j)
}

// DeleteJournal removes a journal paper.
func (s *publicationServiceImpl) DeleteJournal(ctx context.Context, ident appauth.Identity, id int64) error {
	current, err := s.pubRepo.GetJournalByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authz.ValidateEditPublications(ctx, ident, current.FacultyID); err != nil {
		return err
	}
	return s.pubRepo.DeleteJournal(ctx, id)
}

// AddConference attaches a conference paper to the caller's own profile.
func (s *publicationServiceImpl) AddConference(ctx context.Context, ident appauth.Identity, c *models.ConferencePublication) (int64, error) {
	if err := s.authz.ValidateEditPublications(ctx, ident, c.FacultyID); err != nil {
		return 0, err
	}
	id, err := s.pubRepo.CreateConference(ctx, c)
	if err != nil {
		return 0, err
	}
	logger.Info().Int64("conferenceID", id).Int64("facultyID", c.FacultyID).Msg("Conference publication added")
	return id, nil
}

// UpdateConference replaces a conference paper's fields.
func (s *publicationServiceImpl) UpdateConference(ctx context.Context, ident appauth.Identity, c *models.ConferencePublication) error {
	current, err := s.pubRepo.GetConferenceByID(ctx, c.ID)
	if err != nil {
		return err
	}
	if err := s.authz.ValidateEditPublications(ctx, ident, current.FacultyID); err != nil {
		return err
	}
	c.FacultyID = current.FacultyID
	return s.pubRepo.UpdateConference(ctx, c)
}

// DeleteConference removes a conference paper.
func (s *publicationServiceImpl) DeleteConference(ctx context.Context, ident appauth.Identity, id int64) error {
	current, err := s.pubRepo.GetConferenceByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authz.ValidateEditPublications(ctx, ident, current.FacultyID); err != nil {
		return err
	}
	return s.pubRepo.DeleteConference(ctx, id)
}

// AddBookChapter attaches a book chapter to the caller's own profile.
func (s *publicationServiceImpl) AddBookChapter(ctx context.Context, ident appauth.Identity, b *models.BookChapter) (int64, error) {
	if err := s.authz.ValidateEditPublications(ctx, ident, b.FacultyID); err != nil {
		return 0, err
	}
	id, err := s.pubRepo.CreateBookChapter(ctx, b)
	if err != nil {
		return 0, err
	}
	logger.Info().Int64("chapterID", id).Int64("facultyID", b.FacultyID).Msg("Book chapter added")
	return id, nil
}

// UpdateBookChapter replaces a book chapter's fields.
func (s *publicationServiceImpl) UpdateBookChapter(ctx context.Context, ident appauth.Identity, b *models.BookChapter) error {
	current, err := s.pubRepo.GetBookChapterByID(ctx, b.ID)
	if err != nil {
		return err
	}
	if err := s.authz.ValidateEditPublications(ctx, ident, current.FacultyID); err != nil {
		return err
	}
	b.FacultyID = current.FacultyID
	return s.pubRepo.UpdateBookChapter(ctx, b)
}

// DeleteBookChapter removes a book chapter.
func (s *publicationServiceImpl) DeleteBookChapter(ctx context.Context, ident appauth.Identity, id int64) error {
	current, err := s.pubRepo.GetBookChapterByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authz.ValidateEditPublications(ctx, ident, current.FacultyID); err != nil {
		return err
	}
	return s.pubRepo.DeleteBookChapter(ctx, id)
}

// AddPatent attaches a patent to the caller's own profile.
func (s *publicationServiceImpl) AddPatent(ctx context.Context, ident appauth.Identity, p *models.Patent) (int64, error) {
	if err := s.authz.ValidateEditPublications(ctx, ident, p.FacultyID); err != nil {
		return 0, err
	}
	id, err := s.pubRepo.CreatePatent(ctx, p)
	if err != nil {
		return 0, err
	}
	logger.Info().Int64("patentID", id).Int64("facultyID", p.FacultyID).Msg("Patent added")
	return id, nil
}

// UpdatePatent replaces a patent's fields.
func (s *publicationServiceImpl) UpdatePatent(ctx context.Context, ident appauth.Identity, p *models.Patent) error {
	current, err := s.pubRepo.GetPatentByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if err := s.authz.ValidateEditPublications(ctx, ident, current.FacultyID); err != nil {
		return err
	}
	p.FacultyID = current.FacultyID
	return s.pubRepo.UpdatePatent(ctx, p)
}

// DeletePatent removes a patent.
func (s *publicationServiceImpl) DeletePatent(ctx context.Context, ident appauth.Identity, id int64) error {
	current, err := s.pubRepo.GetPatentByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authz.ValidateEditPublications(ctx, ident, current.FacultyID); err != nil {
		return err
	}
	return s.pubRepo.DeletePatent(ctx, id)
}
