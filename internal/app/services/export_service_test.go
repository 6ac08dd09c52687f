package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pragati-coe/facultyhub/internal/app/models"
	"github.com/pragati-coe/facultyhub/internal/app/models/dto"
)

// reopen round-trips a workbook through its serialized form so assertions run
// against what a download recipient would actually open.
func reopen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	out, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	return out
}

func cell(t *testing.T, f *excelize.File, sheet, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, ref)
	if err != nil {
		t.Fatalf("GetCellValue(%s!%s): %v", sheet, ref, err)
	}
	return v
}

func exportFaculty() *models.Faculty {
	return &models.Faculty{
		ID:                 1,
		EmployeeID:         "PCE007",
		Name:               "Ravi Kumar",
		DOB:                time.Date(1980, 3, 21, 0, 0, 0, 0, time.UTC),
		Gender:             "Male",
		FatherName:         "S Kumar",
		PresentAddress:     "Kakinada",
		PermanentAddress:   "Kakinada",
		Email:              "ravi.kumar@example.edu",
		MobileNo:           "9000000000",
		Department:         "CSE",
		Designation:        "Professor",
		DateOfJoining:      time.Date(2010, 7, 1, 0, 0, 0, 0, time.UTC),
		AppointmentType:    "Regular",
		Caste:              "OC",
		Ratified:           "Yes",
		TeachingExpPragati: 10,
		TeachingExpOther:   3,
		IndustrialExp:      1,
		OverallExp:         14,
		ExperienceCategory: models.ExpCategorySenior,
	}
}

func TestBuildRosterWorkbookFiltered(t *testing.T) {
	params := &dto.FacultyFilterParams{Department: "CSE", ExpFrom: "5"}
	exportedAt := time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC)
	quals := map[int64][]*models.Qualification{
		1: {{FacultyID: 1, Type: "Ph.D", Institution: "JNTUK", HighestDegree: true}},
	}

	wb, err := BuildRosterWorkbook([]*models.Faculty{exportFaculty()}, quals, params, exportedAt)
	if err != nil {
		t.Fatalf("BuildRosterWorkbook: %v", err)
	}
	f := reopen(t, wb)

	banner := cell(t, f, "Faculty Basic Info", "A1")
	wantBanner := "FACULTY DATA EXPORT - Filtered Results: Department: CSE | Experience: 5 to 50 years"
	if banner != wantBanner {
		t.Errorf("banner = %q, want %q", banner, wantBanner)
	}
	stamp := cell(t, f, "Faculty Basic Info", "A2")
	if stamp != "Exported on: 2026-08-15 10:30:00 | Total Records: 1" {
		t.Errorf("stamp = %q", stamp)
	}
	// Row 3 stays blank; headers land on row 4, data on row 5.
	if got := cell(t, f, "Faculty Basic Info", "A4"); got != "S.No" {
		t.Errorf("header cell = %q", got)
	}
	if got := cell(t, f, "Faculty Basic Info", "B5"); got != "PCE007" {
		t.Errorf("employee id = %q", got)
	}
	if got := cell(t, f, "Faculty Basic Info", "P5"); got != models.ExpCategorySenior {
		t.Errorf("experience category = %q", got)
	}

	if got := cell(t, f, "Qualifications Details", "F2"); got != "Ph.D" {
		t.Errorf("qualification type = %q", got)
	}
	if got := cell(t, f, "Qualifications Details", "K2"); got != "Yes" {
		t.Errorf("highest degree flag = %q", got)
	}
}

func TestBuildRosterWorkbookEmpty(t *testing.T) {
	exportedAt := time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC)
	wb, err := BuildRosterWorkbook(nil, nil, &dto.FacultyFilterParams{}, exportedAt)
	if err != nil {
		t.Fatalf("BuildRosterWorkbook: %v", err)
	}
	f := reopen(t, wb)

	// No filters means no banner row: the timestamp moves up to A1.
	if got := cell(t, f, "Faculty Basic Info", "A1"); got != "Exported on: 2026-08-15 10:30:00 | Total Records: 0" {
		t.Errorf("first row = %q", got)
	}
	if got := cell(t, f, "Faculty Basic Info", "A3"); got != "S.No" {
		t.Errorf("header row = %q", got)
	}
	if got := cell(t, f, "Faculty Basic Info", "A4"); got != "NO DATA FOUND - No faculty records match your search criteria" {
		t.Errorf("empty message = %q", got)
	}

	sheets := f.GetSheetList()
	if len(sheets) != 1 {
		t.Errorf("sheets = %v, want single roster sheet", sheets)
	}
}

func TestBuildProfileWorkbook(t *testing.T) {
	member := exportFaculty()
	wb, err := BuildProfileWorkbook(member, nil)
	if err != nil {
		t.Fatalf("BuildProfileWorkbook: %v", err)
	}
	f := reopen(t, wb)

	if got := cell(t, f, "Basic Information", "A1"); got != "Field" {
		t.Errorf("header = %q", got)
	}
	if got := cell(t, f, "Basic Information", "B2"); got != "PCE007" {
		t.Errorf("employee id value = %q", got)
	}
	// Empty optional fields fall back to placeholder text.
	if got := cell(t, f, "Basic Information", "A7"); got != "Blood Group" {
		t.Errorf("row 7 field = %q, want Blood Group", got)
	}
	if got := cell(t, f, "Basic Information", "B7"); got != "Not specified" {
		t.Errorf("blood group placeholder = %q", got)
	}

	if got := cell(t, f, "Qualifications", "A1"); got != "No qualifications found for this faculty member." {
		t.Errorf("empty qualifications message = %q", got)
	}
}

func TestBuildQualificationsWorkbookStatus(t *testing.T) {
	quals := []*models.Qualification{
		{Type: "Ph.D", Institution: "JNTUK", HighestDegree: true, Pursuing: true},
		{Type: "M.Tech", Institution: "JNTUK", YearOfPassing: 2008},
	}
	wb, err := BuildQualificationsWorkbook(quals)
	if err != nil {
		t.Fatalf("BuildQualificationsWorkbook: %v", err)
	}
	f := reopen(t, wb)

	if got := cell(t, f, "Qualifications", "G1"); got != "Status" {
		t.Errorf("status header = %q", got)
	}
	if got := cell(t, f, "Qualifications", "G2"); got != "Highest Degree, Pursuing" {
		t.Errorf("combined status = %q", got)
	}
	if got := cell(t, f, "Qualifications", "G3"); got != "Completed" {
		t.Errorf("completed status = %q", got)
	}
}

func TestBuildCombinedPublicationsWorkbook(t *testing.T) {
	pubs := &FacultyPublications{
		Journals: []*models.JournalPublication{
			{PaperTitle: "On Index Structures", JournalName: "JCST", Year: 2025},
		},
	}
	wb, err := BuildCombinedPublicationsWorkbook(pubs)
	if err != nil {
		t.Fatalf("BuildCombinedPublicationsWorkbook: %v", err)
	}
	f := reopen(t, wb)

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Journal Publications" {
		t.Fatalf("sheets = %v, want only Journal Publications", sheets)
	}
	if got := cell(t, f, "Journal Publications", "B2"); got != "On Index Structures" {
		t.Errorf("paper title = %q", got)
	}
}

func TestBuildCombinedPublicationsWorkbookEmpty(t *testing.T) {
	wb, err := BuildCombinedPublicationsWorkbook(&FacultyPublications{})
	if err != nil {
		t.Fatalf("BuildCombinedPublicationsWorkbook: %v", err)
	}
	f := reopen(t, wb)

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "No Publications" {
		t.Fatalf("sheets = %v, want only No Publications", sheets)
	}
	if got := cell(t, f, "No Publications", "A1"); got != "No R&D publications found for this faculty member." {
		t.Errorf("message = %q", got)
	}
}
