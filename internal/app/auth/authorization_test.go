package auth

import (
	"errors"
	"testing"

	"github.com/pragati-coe/facultyhub/internal/app/models"
	"github.com/pragati-coe/facultyhub/internal/pkg/apperrors"
)

func TestDecideTable(t *testing.T) {
	tests := []struct {
		role models.Role
		cap  Capability
		own  bool
		want bool
	}{
		{models.RoleIQAC, CapViewFaculty, false, true},
		{models.RoleOffice, CapViewFaculty, false, true},
		{models.RoleFaculty, CapViewFaculty, false, true},
		{models.Role("auditor"), CapViewFaculty, false, false},

		{models.RoleIQAC, CapCreateFaculty, false, true},
		{models.RoleOffice, CapEditFaculty, false, true},
		{models.RoleFaculty, CapDeleteFaculty, false, false},
		{models.RoleFaculty, CapManageQualifications, false, false},

		{models.RoleIQAC, CapEditPublications, false, false},
		{models.RoleIQAC, CapEditPublications, true, true},
		{models.RoleFaculty, CapEditPublications, true, true},
		{models.RoleFaculty, CapEditPublications, false, false},

		{models.RoleOffice, CapViewAllPublications, false, true},
		{models.RoleFaculty, CapViewPublicationStats, false, false},
		{models.RoleOffice, CapExportData, false, true},
		{models.RoleFaculty, CapExportData, false, false},

		{models.RoleIQAC, CapManageUsers, false, true},
		{models.RoleOffice, CapManageUsers, false, false},
		{models.RoleFaculty, CapManageUsers, false, false},

		{models.RoleIQAC, Capability("unknown"), false, false},
	}
	for _, tc := range tests {
		if got := Decide(tc.role, tc.cap, tc.own); got != tc.want {
			t.Errorf("Decide(%q, %q, %v) = %v, want %v", tc.role, tc.cap, tc.own, got, tc.want)
		}
	}
}

func TestValidateDenied(t *testing.T) {
	svc := NewService(nil)
	ident := Identity{UserID: 7, RoleToken: "viewer"}

	if err := svc.Validate(ident, CapManageUsers); err == nil {
		t.Fatal("viewer must not manage users")
	}
	if err := svc.Validate(ident, CapViewFaculty); err != nil {
		t.Fatalf("viewer should view faculty: %v", err)
	}
}

func TestValidateUserDeletionSelf(t *testing.T) {
	svc := NewService(nil)
	admin := Identity{UserID: 1, RoleToken: "admin"}

	err := svc.ValidateUserDeletion(admin, 1)
	if err == nil {
		t.Fatal("self deletion must be rejected")
	}
	if !errors.Is(err, apperrors.ErrSelfDeletion) {
		t.Fatalf("expected self deletion error, got %v", err)
	}

	if err := svc.ValidateUserDeletion(admin, 2); err != nil {
		t.Fatalf("deleting another user should pass: %v", err)
	}
}
