package dto

import (
	"errors"
	"testing"

	"github.com/pragati-coe/facultyhub/internal/app/models"
	"github.com/pragati-coe/facultyhub/internal/pkg/apperrors"
)

func validFacultyRequest() FacultyRequest {
	return FacultyRequest{
		EmployeeID:         "PCE042",
		Name:               "Anita Rao",
		DOB:                "1985-04-12",
		Gender:             "Female",
		FatherName:         "K Rao",
		PresentAddress:     "Surampalem",
		PermanentAddress:   "Surampalem",
		Email:              "anita.rao@example.edu",
		MobileNo:           "9876543210",
		Department:         "CSE",
		Designation:        "Associate Professor",
		DateOfJoining:      "2015-06-01",
		AppointmentType:    "Regular",
		BankName:           "SBI",
		BankAccountNo:      "1234567890",
		IFSCCode:           "SBIN0001234",
		Caste:              "OC",
		TeachingExpPragati: 8,
		TeachingExpOther:   2,
		IndustrialExp:      1,
		OverallExp:         11,
	}
}

func TestFacultyRequestToModel(t *testing.T) {
	req := validFacultyRequest()
	m, err := req.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.Ratified != "No" {
		t.Errorf("Ratified default = %q, want No", m.Ratified)
	}
	if m.ExperienceCategory != models.ExpCategorySenior {
		t.Errorf("ExperienceCategory = %q, want %q", m.ExperienceCategory, models.ExpCategorySenior)
	}
	if m.DOB.Format(DateLayout) != "1985-04-12" {
		t.Errorf("DOB parsed wrong: %v", m.DOB)
	}
	if m.RatificationDate != nil || m.ResignationDate != nil {
		t.Error("absent optional dates must stay nil")
	}
}

func TestFacultyRequestInvalidDate(t *testing.T) {
	req := validFacultyRequest()
	req.DOB = "12-04-1985"
	if _, err := req.ToModel(); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}

	req = validFacultyRequest()
	req.RatificationDate = "not-a-date"
	if _, err := req.ToModel(); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error for optional date, got %v", err)
	}
}

func TestFacultyRequestExperienceMismatch(t *testing.T) {
	req := validFacultyRequest()
	req.OverallExp = 12.5
	if _, err := req.ToModel(); !errors.Is(err, apperrors.ErrExperienceMismatch) {
		t.Fatalf("expected experience mismatch, got %v", err)
	}

	// Drift within the rounding tolerance is accepted.
	req = validFacultyRequest()
	req.OverallExp = 11.05
	if _, err := req.ToModel(); err != nil {
		t.Fatalf("tolerated drift rejected: %v", err)
	}
}

func TestFacultyRequestRatifiedKept(t *testing.T) {
	req := validFacultyRequest()
	req.Ratified = "Yes"
	req.RatificationDate = "2020-01-15"
	m, err := req.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.Ratified != "Yes" || m.RatificationDate == nil {
		t.Errorf("ratification fields lost: %+v", m)
	}
}
