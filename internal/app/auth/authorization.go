package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/pragati-coe/facultyhub/internal/app/models"
	"github.com/pragati-coe/facultyhub/internal/pkg/apperrors"
	"github.com/pragati-coe/facultyhub/internal/pkg/logger"
)

// Capability names a guarded action. Every handler asks the policy for a
// capability instead of checking role strings inline.
type Capability string

const (
	CapViewFaculty          Capability = "faculty:view"
	CapCreateFaculty        Capability = "faculty:create"
	CapEditFaculty          Capability = "faculty:edit"
	CapDeleteFaculty        Capability = "faculty:delete"
	CapManageQualifications Capability = "qualifications:manage"
	CapEditPublications     Capability = "publications:edit"
	CapViewAllPublications  Capability = "publications:view_all"
	CapViewPublicationStats Capability = "stats:publications"
	CapExportData           Capability = "export:data"
	CapManageUsers          Capability = "users:manage"
)

// Decide is the single authorization table. own reports whether the target
// record belongs to the caller; it only matters for publication edits, which
// are owner-only for every role.
func Decide(role models.Role, cap Capability, own bool) bool {
	switch cap {
	case CapViewFaculty:
		return role == models.RoleIQAC || role == models.RoleOffice || role == models.RoleFaculty
	case CapCreateFaculty, CapEditFaculty, CapDeleteFaculty, CapManageQualifications:
		return role.IsAdministrative()
	case CapEditPublications:
		return own
	case CapViewAllPublications, CapViewPublicationStats, CapExportData:
		return role.IsAdministrative()
	case CapManageUsers:
		return role == models.RoleIQAC
	default:
		return false
	}
}

// FacultyGetter looks up faculty rows for ownership checks.
type FacultyGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Faculty, error)
}

// Service answers authorization questions for request handlers.
type Service struct {
	facultyRepo FacultyGetter
}

// NewService creates the authorization service.
func NewService(facultyRepo FacultyGetter) *Service {
	return &Service{facultyRepo: facultyRepo}
}

// Can checks a capability that needs no ownership lookup.
func (s *Service) Can(ident Identity, cap Capability) bool {
	return Decide(ident.Role(), cap, false)
}

// Validate checks a capability and returns a forbidden error when denied.
func (s *Service) Validate(ident Identity, cap Capability) error {
	if !s.Can(ident, cap) {
		return apperrors.NewForbiddenError("you do not have permission for this action")
	}
	return nil
}

// OwnsFaculty reports whether the identity's email matches the faculty record.
func (s *Service) OwnsFaculty(ctx context.Context, ident Identity, facultyID int64) (bool, error) {
	faculty, err := s.facultyRepo.GetByID(ctx, facultyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return false, err
		}
		logger.Error().Err(err).Int64("facultyID", facultyID).Msg("Ownership lookup failed")
		return false, err
	}
	return strings.EqualFold(faculty.Email, ident.Email), nil
}

// CanEditPublications checks whether the identity may edit publications
// attached to the given faculty record.
func (s *Service) CanEditPublications(ctx context.Context, ident Identity, facultyID int64) (bool, error) {
	own, err := s.OwnsFaculty(ctx, ident, facultyID)
	if err != nil {
		return false, err
	}
	return Decide(ident.Role(), CapEditPublications, own), nil
}

// ValidateEditPublications enforces the owner-only publication edit rule.
func (s *Service) ValidateEditPublications(ctx context.Context, ident Identity, facultyID int64) error {
	allowed, err := s.CanEditPublications(ctx, ident, facultyID)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.NewForbiddenError("you can only manage publications on your own profile")
	}
	return nil
}

// ValidateUserDeletion enforces user management rights and the rule that an
// account cannot delete itself.
func (s *Service) ValidateUserDeletion(ident Identity, targetUserID int64) error {
	if err := s.Validate(ident, CapManageUsers); err != nil {
		return err
	}
	if ident.UserID == targetUserID {
		return apperrors.NewCustomError(apperrors.ErrSelfDeletion, "you cannot delete your own account")
	}
	return nil
}

// IncludePublicationStats reports whether dashboard statistics should carry
// publication totals for this caller.
func (s *Service) IncludePublicationStats(ident Identity) bool {
	return Decide(ident.Role(), CapViewPublicationStats, false)
}
