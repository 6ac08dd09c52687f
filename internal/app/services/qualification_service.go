package services

import (
	"context"

	appauth "github.com/pragati-coe/facultyhub/internal/app/auth"
	"github.com/pragati-coe/facultyhub/internal/app/models"
	"github.com/pragati-coe/facultyhub/internal/app/repositories"
	"github.com/pragati-coe/facultyhub/internal/pkg/apperrors"
	"github.com/pragati-coe/facultyhub/internal/pkg/logger"
)

// QualificationService defines the interface for qualification operations
type QualificationService interface {
	ListQualifications(ctx context.Context, ident appauth.Identity, facultyID int64) ([]*models.Qualification, error)
	AddQualification(ctx context.Context, ident appauth.Identity, q *models.Qualification) (int64, error)
	UpdateQualification(ctx context.Context, ident appauth.Identity, q *models.Qualification) error
	DeleteQualification(ctx context.Context, ident appauth.Identity, id int64) error
	ReplaceQualifications(ctx context.Context, ident appauth.Identity, facultyID int64, quals []*models.Qualification) error
}

type qualificationServiceImpl struct {
	qualRepo    *repositories.QualificationRepository
	facultyRepo *repositories.FacultyRepository
	authz       *appauth.Service
}

// NewQualificationService creates a new qualification service instance
func NewQualificationService(qualRepo *repositories.QualificationRepository, facultyRepo *repositories.FacultyRepository, authz *appauth.Service) QualificationService {
	return &qualificationServiceImpl{
		qualRepo:    qualRepo,
		facultyRepo: facultyRepo,
		authz:       authz,
	}
}

// ListQualifications returns a faculty member's qualifications. Viewing
// follows the same ownership rule as the profile itself.
func (s *qualificationServiceImpl) ListQualifications(ctx context.Context, ident appauth.Identity, facultyID int64) ([]*models.Qualification, error) {
	if err := s.authz.Validate(ident, appauth.CapViewFaculty); err != nil {
		return nil, err
	}
	if !ident.Role().IsAdministrative() {
		own, err := s.authz.OwnsFaculty(ctx, ident, facultyID)
		if err != nil {
			return nil, err
		}
		if !own {
			return nil, apperrors.NewForbiddenError("you can only view your own qualifications")
		}
	}
	return s.qualRepo.ListByFaculty(ctx, facultyID)
}

// AddQualification attaches a qualification to a faculty profile.
func (s *qualificationServiceImpl) AddQualification(ctx context.Context, ident appauth.Identity, q *models.Qualification) (int64, error) {
	if err := s.authz.Validate(ident, appauth.CapManageQualifications); err != nil {
		return 0, err
	}
	if _, err := s.facultyRepo.GetByID(ctx, q.FacultyID); err != nil {
		return 0, err
	}

	id, err := s.qualRepo.Create(ctx, q)
	if err != nil {
		return 0, err
	}

	logger.Info().Int64("qualificationID", id).Int64("facultyID", q.FacultyID).Msg("Qualification added")
	return id, nil
}

// UpdateQualification replaces a qualification's fields.
func (s *qualificationServiceImpl) UpdateQualification(ctx context.Context, ident appauth.Identity, q *models.Qualification) error {
	if err := s.authz.Validate(ident, appauth.CapManageQualifications); err != nil {
		return err
	}
	if _, err := s.qualRepo.GetByID(ctx, q.ID); err != nil {
		return err
	}
	return s.qualRepo.Update(ctx, q)
}

// DeleteQualification removes a qualification.
func (s *qualificationServiceImpl) DeleteQualification(ctx context.Context, ident appauth.Identity, id int64) error {
	if err := s.authz.Validate(ident, appauth.CapManageQualifications); err != nil {
		return err
	}
	return s.qualRepo.Delete(ctx, id)
}

// ReplaceQualifications swaps a faculty member's full qualification set.
func (s *qualificationServiceImpl) ReplaceQualifications(ctx context.Context, ident appauth.Identity, facultyID int64, quals []*models.Qualification) error {
	if err := s.authz.Validate(ident, appauth.CapManageQualifications); err != nil {
		return err
	}
	if _, err := s.facultyRepo.GetByID(ctx, facultyID); err != nil {
		return err
	}
	return s.qualRepo.ReplaceForFaculty(ctx, facultyID, quals)
}
