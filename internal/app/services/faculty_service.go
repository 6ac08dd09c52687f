package services

import (
	"context"
	"errors"

	appauth "github.com/pragati-coe/facultyhub/internal/app/auth"
	"github.com/pragati-coe/facultyhub/internal/app/models"
	"github.com/pragati-coe/facultyhub/internal/app/models/dto"
	"github.com/pragati-coe/facultyhub/internal/app/repositories"
	"github.com/pragati-coe/facultyhub/internal/pkg/apperrors"
	"github.com/pragati-coe/facultyhub/internal/pkg/logger"
)

// FacultyService defines the interface for faculty profile operations
type FacultyService interface {
	ListFaculty(ctx context.Context, ident appauth.Identity, params *dto.FacultyFilterParams) ([]*models.Faculty, error)
	GetFaculty(ctx context.Context, ident appauth.Identity, id int64) (*models.Faculty, error)
	GetOwnProfile(ctx context.Context, ident appauth.Identity) (*models.Faculty, error)
	CreateFaculty(ctx context.Context, ident appauth.Identity, faculty *models.Faculty) (int64, error)
	UpdateFaculty(ctx context.Context, ident appauth.Identity, faculty *models.Faculty) error
	DeleteFaculty(ctx context.Context, ident appauth.Identity, id int64) error
	SetFacultyPhoto(ctx context.Context, ident appauth.Identity, facultyID int64, path string) error
}

type facultyServiceImpl struct {
	facultyRepo *repositories.FacultyRepository
	authz       *appauth.Service
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(facultyRepo *repositories.FacultyRepository, authz *appauth.Service) FacultyService {
	return &facultyServiceImpl{
		facultyRepo: facultyRepo,
		authz:       authz,
	}
}

// ListFaculty returns profiles matching the filter. Non-administrative
// callers only ever see their own record, whatever the filter says.
func (s *facultyServiceImpl) ListFaculty(ctx context.Context, ident appauth.Identity, params *dto.FacultyFilterParams) ([]*models.Faculty, error) {
	if err := s.authz.Validate(ident, appauth.CapViewFaculty); err != nil {
		return nil, err
	}

	filter := repositories.FilterFromParams(params)
	if !ident.Role().IsAdministrative() {
		filter.OwnerEmail = ident.Email
	}

	return s.facultyRepo.List(ctx, filter)
}

// GetFaculty returns a single profile. Non-administrative callers can only
// open their own record.
func (s *facultyServiceImpl) GetFaculty(ctx context.Context, ident appauth.Identity, id int64) (*models.Faculty, error) {
	if err := s.authz.Validate(ident, appauth.CapViewFaculty); err != nil {
		return nil, err
	}

	faculty, err := s.facultyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !ident.Role().IsAdministrative() {
		own, err := s.authz.OwnsFaculty(ctx, ident, id)
		if err != nil {
			return nil, err
		}
		if !own {
			return nil, apperrors.NewForbiddenError("you can only view your own profile")
		}
	}

	return faculty, nil
}

// GetOwnProfile resolves the caller's profile by email.
func (s *facultyServiceImpl) GetOwnProfile(ctx context.Context, ident appauth.Identity) (*models.Faculty, error) {
	faculty, err := s.facultyRepo.GetByEmail(ctx, ident.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrFacultyProfileNeeded,
				"no faculty profile is linked to your account email")
		}
		return nil, err
	}
	return faculty, nil
}

// checkDuplicates rejects an employee id or email already held by another
// record, naming the current holder so the caller can resolve the clash.
func (s *facultyServiceImpl) checkDuplicates(ctx context.Context, faculty *models.Faculty) error {
	existing, err := s.facultyRepo.GetByEmployeeID(ctx, faculty.EmployeeID)
	if err != nil && !errors.Is(err, apperrors.ErrFacultyNotFound) {
		return err
	}
	if existing != nil && existing.ID != faculty.ID {
		return apperrors.NewDuplicateKeyError("employee id", faculty.EmployeeID, existing.Name)
	}

	existing, err = s.facultyRepo.GetByEmail(ctx, faculty.Email)
	if err != nil && !errors.Is(err, apperrors.ErrFacultyNotFound) {
		return err
	}
	if existing != nil && existing.ID != faculty.ID {
		return apperrors.NewDuplicateKeyError("email", faculty.Email, existing.Name)
	}

	return nil
}

// CreateFaculty creates a new faculty profile.
func (s *facultyServiceImpl) CreateFaculty(ctx context.Context, ident appauth.Identity, faculty *models.Faculty) (int64, error) {
	if err := s.authz.Validate(ident, appauth.CapCreateFaculty); err != nil {
		return 0, err
	}

	if err := s.checkDuplicates(ctx, faculty); err != nil {
		return 0, err
	}

	id, err := s.facultyRepo.Create(ctx, faculty)
	if err != nil {
		return 0, err
	}

	logger.Info().Int64("facultyID", id).Str("employeeID", faculty.EmployeeID).
		Int64("createdBy", ident.UserID).Msg("Faculty profile created")
	return id, nil
}

// UpdateFaculty replaces a profile's stored fields.
func (s *facultyServiceImpl) UpdateFaculty(ctx context.Context, ident appauth.Identity, faculty *models.Faculty) error {
	if err := s.authz.Validate(ident, appauth.CapEditFaculty); err != nil {
		return err
	}

	current, err := s.facultyRepo.GetByID(ctx, faculty.ID)
	if err != nil {
		return err
	}

	if err := s.checkDuplicates(ctx, faculty); err != nil {
		return err
	}

	// Uploaded artifacts survive a profile edit unless replaced separately.
	if faculty.PhotoPath == "" {
		faculty.PhotoPath = current.PhotoPath
	}
	if faculty.NameChangeProof == "" {
		faculty.NameChangeProof = current.NameChangeProof
	}

	if err := s.facultyRepo.Update(ctx, faculty); err != nil {
		return err
	}

	logger.Info().Int64("facultyID", faculty.ID).Int64("updatedBy", ident.UserID).Msg("Faculty profile updated")
	return nil
}

// DeleteFaculty removes a profile. Related qualification or publication rows
// block the delete.
func (s *facultyServiceImpl) DeleteFaculty(ctx context.Context, ident appauth.Identity, id int64) error {
	if err := s.authz.Validate(ident, appauth.CapDeleteFaculty); err != nil {
		return err
	}

	if err := s.facultyRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("facultyID", id).Int64("deletedBy", ident.UserID).Msg("Faculty profile deleted")
	return nil
}

// SetFacultyPhoto stores the path of an uploaded profile photo.
func (s *facultyServiceImpl) SetFacultyPhoto(ctx context.Context, ident appauth.Identity, facultyID int64, path string) error {
	if err := s.authz.Validate(ident, appauth.CapEditFaculty); err != nil {
		return err
	}
	return s.facultyRepo.UpdatePhotoPath(ctx, facultyID, path)
}
