package services

import (
	"testing"

	"github.com/pragati-coe/facultyhub/internal/app/models"
)

func sampleFacultySet() []*models.Faculty {
	return []*models.Faculty{
		{Name: "A", Department: "CSE", Designation: "Professor", Gender: "Male", AppointmentType: "Regular", OverallExp: 15},
		{Name: "B", Department: "CSE", Designation: "Assistant Professor", Gender: "Female", AppointmentType: "Regular", OverallExp: 4},
		{Name: "C", Department: "ECE", Designation: "Assistant Professor", Gender: "Female", AppointmentType: "Contract", OverallExp: 7.5},
		{Name: "D", Department: "MECH", Designation: "Associate Professor", Gender: "Male", AppointmentType: "Regular", OverallExp: 10.9},
	}
}

func TestBuildFacultyStats(t *testing.T) {
	stats := BuildFacultyStats(sampleFacultySet())

	if stats.TotalFaculty != 4 {
		t.Fatalf("TotalFaculty = %d, want 4", stats.TotalFaculty)
	}
	if stats.TotalDepartments != 3 {
		t.Errorf("TotalDepartments = %d, want 3", stats.TotalDepartments)
	}
	if stats.RegularFaculty != 3 {
		t.Errorf("RegularFaculty = %d, want 3", stats.RegularFaculty)
	}
	if stats.ByDesignation["Assistant Professor"] != 2 {
		t.Errorf("ByDesignation = %v", stats.ByDesignation)
	}
	if stats.ByGender["Female"] != 2 || stats.ByGender["Male"] != 2 {
		t.Errorf("ByGender = %v", stats.ByGender)
	}
	if stats.ByAppointmentType["Contract"] != 1 {
		t.Errorf("ByAppointmentType = %v", stats.ByAppointmentType)
	}

	if stats.ByExperience[models.ExpCategoryJunior] != 1 ||
		stats.ByExperience[models.ExpCategoryMid] != 2 ||
		stats.ByExperience[models.ExpCategorySenior] != 1 {
		t.Errorf("ByExperience = %v", stats.ByExperience)
	}
}

func TestBuildFacultyStatsEmptySet(t *testing.T) {
	stats := BuildFacultyStats(nil)
	if stats.TotalFaculty != 0 || stats.TotalDepartments != 0 {
		t.Fatalf("empty set stats = %+v", stats)
	}
	// All three experience buckets are present even with no records, so the
	// dashboard chart always shows the full axis.
	for _, bucket := range []string{models.ExpCategoryJunior, models.ExpCategoryMid, models.ExpCategorySenior} {
		if _, ok := stats.ByExperience[bucket]; !ok {
			t.Errorf("bucket %q missing", bucket)
		}
	}
}
