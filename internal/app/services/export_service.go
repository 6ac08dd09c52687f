package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	appauth "github.com/pragati-coe/facultyhub/internal/app/auth"
	"github.com/pragati-coe/facultyhub/internal/app/models"
	"github.com/pragati-coe/facultyhub/internal/app/models/dto"
	"github.com/pragati-coe/facultyhub/internal/app/repositories"
	"github.com/pragati-coe/facultyhub/internal/pkg/apperrors"
	"github.com/pragati-coe/facultyhub/internal/pkg/logger"
)

// Sheet names used across the spreadsheet exports.
const (
	sheetFacultyBasicInfo = "Faculty Basic Info"
	sheetQualDetails      = "Qualifications Details"
	sheetBasicInformation = "Basic Information"
	sheetQualifications   = "Qualifications"
	sheetJournals         = "Journal Publications"
	sheetConferences      = "Conference Publications"
	sheetConferencePapers = "Conference Papers"
	sheetBookChapters     = "Book Chapters"
	sheetPatents          = "Patents"
	sheetNoPublications   = "No Publications"
)

// ExportFile is a generated spreadsheet ready to be sent to the client.
type ExportFile struct {
	Filename string
	Content  []byte
}

// ExportService builds the spreadsheet downloads.
type ExportService interface {
	ExportFacultyRoster(ctx context.Context, ident appauth.Identity, params *dto.FacultyFilterParams) (*ExportFile, error)
	ExportFacultyProfile(ctx context.Context, ident appauth.Identity, facultyID int64) (*ExportFile, error)
	ExportFacultyQualifications(ctx context.Context, ident appauth.Identity, facultyID int64) (*ExportFile, error)
	ExportFacultyPublications(ctx context.Context, ident appauth.Identity, facultyID int64, kind models.PublicationKind) (*ExportFile, error)
	ExportFacultyAllPublications(ctx context.Context, ident appauth.Identity, facultyID int64) (*ExportFile, error)
	ExportCampusPublications(ctx context.Context, ident appauth.Identity, kind models.PublicationKind, q repositories.PubQuery) (*ExportFile, error)
}

type exportServiceImpl struct {
	facultyRepo *repositories.FacultyRepository
	qualRepo    *repositories.QualificationRepository
	pubRepo     *repositories.PublicationRepository
	authz       *appauth.Service
}

// NewExportService creates a new export service instance
func NewExportService(facultyRepo *repositories.FacultyRepository, qualRepo *repositories.QualificationRepository, pubRepo *repositories.PublicationRepository, authz *appauth.Service) ExportService {
	return &exportServiceImpl{
		facultyRepo: facultyRepo,
		qualRepo:    qualRepo,
		pubRepo:     pubRepo,
		authz:       authz,
	}
}

// validateFacultyExport allows administrative callers, or the owner of the
// target profile.
func (s *exportServiceImpl) validateFacultyExport(ctx context.Context, ident appauth.Identity, facultyID int64) error {
	if ident.Role().IsAdministrative() {
		return nil
	}
	own, err := s.authz.OwnsFaculty(ctx, ident, facultyID)
	if err != nil {
		return err
	}
	if !own {
		return apperrors.NewForbiddenError("you can only export your own data")
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func boldRow(f *excelize.File, sheet string, row, cols int) {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return
	}
	start, _ := excelize.CoordinatesToCellName(1, row)
	end, _ := excelize.CoordinatesToCellName(cols, row)
	_ = f.SetCellStyle(sheet, start, end, style)
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dto.DateLayout)
}

func fmtOptDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dto.DateLayout)
}

// blankIfZero keeps optional numeric columns empty instead of showing 0.
func blankIfZero(v float64) interface{} {
	if v == 0 {
		return ""
	}
	return v
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

var rosterHeaders = []interface{}{
	"S.No", "Employee ID", "Full Name", "Department", "Designation",
	"Total Exp", "Pragati Exp", "Appointment Type", "Email", "Mobile No",
	"Alternate Mobile", "Date of Joining", "Gender", "Caste", "Ratified",
	"Experience Category",
}

var rosterQualHeaders = []interface{}{
	"S.No", "Employee ID", "Faculty Name", "Department", "Designation",
	"Qualification Type", "Specialization", "Institution", "Year of Passing",
	"Percentage", "Highest Degree", "Pursuing",
}

// filterBanner summarizes active filter parameters for the roster header.
func filterBanner(params *dto.FacultyFilterParams) string {
	parts := []string{}
	if params.Search != "" {
		parts = append(parts, fmt.Sprintf("Search: '%s'", params.Search))
	}
	if params.Department != "" {
		parts = append(parts, "Department: "+params.Department)
	}
	if params.Designation != "" {
		parts = append(parts, "Designation: "+params.Designation)
	}
	if params.AppointmentType != "" {
		parts = append(parts, "Appointment: "+params.AppointmentType)
	}
	if params.ExpFrom != "" || params.ExpTo != "" {
		from := params.ExpFrom
		if from == "" {
			from = "0"
		}
		to := params.ExpTo
		if to == "" {
			to = "50"
		}
		parts = append(parts, fmt.Sprintf("Experience: %s to %s years", from, to))
	}
	if len(parts) == 0 {
		return ""
	}
	return "FACULTY DATA EXPORT - Filtered Results: " + strings.Join(parts, " | ")
}

// BuildRosterWorkbook renders the filtered faculty roster with a companion
// qualifications sheet. The header block carries the active filters and the
// export timestamp so a printed sheet is self-describing.
func BuildRosterWorkbook(faculty []*models.Faculty, qualsByFaculty map[int64][]*models.Qualification, params *dto.FacultyFilterParams, exportedAt time.Time) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetFacultyBasicInfo); err != nil {
		return nil, err
	}

	row := 1
	if banner := filterBanner(params); banner != "" {
		if err := writeRow(f, sheetFacultyBasicInfo, row, []interface{}{banner}); err != nil {
			return nil, err
		}
		boldRow(f, sheetFacultyBasicInfo, row, 1)
		row++
	}

	stamp := fmt.Sprintf("Exported on: %s | Total Records: %d",
		exportedAt.Format("2006-01-02 15:04:05"), len(faculty))
	if err := writeRow(f, sheetFacultyBasicInfo, row, []interface{}{stamp}); err != nil {
		return nil, err
	}
	row += 2

	if err := writeRow(f, sheetFacultyBasicInfo, row, rosterHeaders); err != nil {
		return nil, err
	}
	boldRow(f, sheetFacultyBasicInfo, row, len(rosterHeaders))
	row++

	if len(faculty) == 0 {
		msg := "NO DATA FOUND - No faculty records match your search criteria"
		if err := writeRow(f, sheetFacultyBasicInfo, row, []interface{}{msg}); err != nil {
			return nil, err
		}
	}

	for i, member := range faculty {
		values := []interface{}{
			i + 1, member.EmployeeID, member.Name, member.Department,
			member.Designation, member.OverallExp, member.TeachingExpPragati,
			member.AppointmentType, member.Email, member.MobileNo,
			member.AlternativeMobile, fmtDate(member.DateOfJoining),
			member.Gender, member.Caste, member.Ratified,
			member.ExperienceCategory,
		}
		if err := writeRow(f, sheetFacultyBasicInfo, row, values); err != nil {
			return nil, err
		}
		row++
	}

	if len(qualsByFaculty) > 0 {
		if _, err := f.NewSheet(sheetQualDetails); err != nil {
			return nil, err
		}
		if err := writeRow(f, sheetQualDetails, 1, rosterQualHeaders); err != nil {
			return nil, err
		}
		boldRow(f, sheetQualDetails, 1, len(rosterQualHeaders))

		qualRow := 2
		for _, member := range faculty {
			for _, q := range qualsByFaculty[member.ID] {
				values := []interface{}{
					qualRow - 1, member.EmployeeID, member.Name,
					member.Department, member.Designation, q.Type,
					q.Specialization, q.Institution, q.YearOfPassing,
					q.Percentage, yesNo(q.HighestDegree), yesNo(q.Pursuing),
				}
				if err := writeRow(f, sheetQualDetails, qualRow, values); err != nil {
					return nil, err
				}
				qualRow++
			}
		}
	}

	return f, nil
}

// profileDetails lists the Field/Value rows of the single-profile export.
func profileDetails(m *models.Faculty) [][2]string {
	orDefault := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	years := func(v float64) string { return fmt.Sprintf("%g years", v) }
	optDate := func(t *time.Time, def string) string {
		if t == nil {
			return def
		}
		return t.Format(dto.DateLayout)
	}

	return [][2]string{
		{"Employee ID", m.EmployeeID},
		{"Full Name", m.Name},
		{"Name Change", yesNo(m.NameChange)},
		{"Date of Birth", fmtDate(m.DOB)},
		{"Gender", m.Gender},
		{"Blood Group", orDefault(m.BloodGroup, "Not specified")},
		{"Marital Status", orDefault(m.MaritalStatus, "Not specified")},
		{"Father Name", m.FatherName},
		{"Present Address", m.PresentAddress},
		{"Permanent Address", m.PermanentAddress},
		{"Email", m.Email},
		{"Mobile No", m.MobileNo},
		{"Alternate Mobile", orDefault(m.AlternativeMobile, "Not specified")},
		{"Department", m.Department},
		{"Designation", m.Designation},
		{"Date of Joining", fmtDate(m.DateOfJoining)},
		{"Appointment Type", m.AppointmentType},
		{"Aadhaar Number", orDefault(m.AadhaarNumber, "Not specified")},
		{"PAN Number", orDefault(m.PANNumber, "Not specified")},
		{"Bank Name", orDefault(m.BankName, "Not specified")},
		{"Bank Account No", orDefault(m.BankAccountNo, "Not specified")},
		{"IFSC Code", orDefault(m.IFSCCode, "Not specified")},
		{"Caste", orDefault(m.Caste, "Not specified")},
		{"Subcaste", orDefault(m.Subcaste, "Not specified")},
		{"Teaching Experience at Pragati", years(m.TeachingExpPragati)},
		{"Teaching Experience at Other Institutions", years(m.TeachingExpOther)},
		{"Industrial Experience", years(m.IndustrialExp)},
		{"Total Experience", years(m.OverallExp)},
		{"Experience Category", orDefault(m.ExperienceCategory, "Not specified")},
		{"Ratified", orDefault(m.Ratified, "No")},
		{"Ratified Designation", orDefault(m.RatifiedDesignation, "Not specified")},
		{"Date of Ratification", optDate(m.RatificationDate, "Not specified")},
		{"Last Working Date (Previous Employment)", optDate(m.PrevEmploymentDate, "Not specified")},
		{"Date of Resignation (Pragati)", optDate(m.ResignationDate, "Not applicable")},
	}
}

// BuildProfileWorkbook renders one complete profile as Field/Value rows plus
// a qualifications sheet.
func BuildProfileWorkbook(member *models.Faculty, quals []*models.Qualification) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetBasicInformation); err != nil {
		return nil, err
	}

	if err := writeRow(f, sheetBasicInformation, 1, []interface{}{"Field", "Value"}); err != nil {
		return nil, err
	}
	boldRow(f, sheetBasicInformation, 1, 2)

	for i, detail := range profileDetails(member) {
		if err := writeRow(f, sheetBasicInformation, i+2, []interface{}{detail[0], detail[1]}); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(sheetQualifications); err != nil {
		return nil, err
	}
	if len(quals) == 0 {
		if err := writeRow(f, sheetQualifications, 1, []interface{}{"No qualifications found for this faculty member."}); err != nil {
			return nil, err
		}
		return f, nil
	}

	headers := []interface{}{
		"S.No", "Qualification Type", "Specialization", "Institution",
		"Year of Passing", "Percentage", "Highest Degree", "Pursuing",
	}
	if err := writeRow(f, sheetQualifications, 1, headers); err != nil {
		return nil, err
	}
	boldRow(f, sheetQualifications, 1, len(headers))

	for i, q := range quals {
		values := []interface{}{
			i + 1, q.Type, q.Specialization, q.Institution, q.YearOfPassing,
			q.Percentage, yesNo(q.HighestDegree), yesNo(q.Pursuing),
		}
		if err := writeRow(f, sheetQualifications, i+2, values); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// BuildQualificationsWorkbook renders a faculty member's qualification list
// with a combined status column.
func BuildQualificationsWorkbook(quals []*models.Qualification) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetQualifications); err != nil {
		return nil, err
	}

	headers := []interface{}{"S.No", "Qualification", "Specialization", "Percentage", "Year", "Institution", "Status"}
	if err := writeRow(f, sheetQualifications, 1, headers); err != nil {
		return nil, err
	}
	boldRow(f, sheetQualifications, 1, len(headers))

	for i, q := range quals {
		status := []string{}
		if q.HighestDegree {
			status = append(status, "Highest Degree")
		}
		if q.Pursuing {
			status = append(status, "Pursuing")
		}
		statusText := "Completed"
		if len(status) > 0 {
			statusText = strings.Join(status, ", ")
		}

		values := []interface{}{
			i + 1, q.Type, q.Specialization, q.Percentage, q.YearOfPassing,
			q.Institution, statusText,
		}
		if err := writeRow(f, sheetQualifications, i+2, values); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// BuildJournalsWorkbook renders one faculty member's journal papers.
func BuildJournalsWorkbook(journals []*models.JournalPublication) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetJournals); err != nil {
		return nil, err
	}

	headers := []interface{}{
		"S.No", "Paper Title", "Journal Name", "First Author",
		"Corresponding Author", "Other Authors", "Faculty Position",
		"Volume & Issue", "Page Numbers", "ISSN", "DOI", "Year", "Indexing",
		"Quartile", "Impact Factor", "Publisher", "Funding Agency",
		"Journal Link", "Remarks",
	}
	if err := writeRow(f, sheetJournals, 1, headers); err != nil {
		return nil, err
	}
	boldRow(f, sheetJournals, 1, len(headers))

	for i, j := range journals {
		values := []interface{}{
			i + 1, j.PaperTitle, j.JournalName, j.FirstAuthor,
			j.CorrespondingAuthor, j.OtherAuthors, j.AuthorPosition,
			j.VolumeIssue, j.PageNumbers, j.ISSN, j.DOI, j.Year, j.Indexing,
			j.Quartile, blankIfZero(j.ImpactFactor), j.Publisher,
			j.FundingAgency, j.JournalLink, j.Remarks,
		}
		if err := writeRow(f, sheetJournals, i+2, values); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// BuildConferencesWorkbook renders one faculty member's conference papers.
func BuildConferencesWorkbook(conferences []*models.ConferencePublication) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetConferences); err != nil {
		return nil, err
	}

	headers := []interface{}{
		"S.No", "Paper Title", "Conference Name", "Authors",
		"Corresponding Author", "Faculty Position", "Venue", "Dates",
		"Proceedings Title", "ISBN/ISSN", "DOI", "Year", "Indexing",
		"Publisher", "Conference Link",
	}
	if err := writeRow(f, sheetConferences, 1, headers); err != nil {
		return nil, err
	}
	boldRow(f, sheetConferences, 1, len(headers))

	for i, c := range conferences {
		values := []interface{}{
			i + 1, c.PaperTitle, c.ConferenceName, c.Authors,
			c.CorrespondingAuthor, c.AuthorPosition, c.Venue, c.Dates,
			c.ProceedingsTitle, c.ISBNISSN, c.DOI, c.Year, c.Indexing,
			c.Publisher, c.Link,
		}
		if err := writeRow(f, sheetConferences, i+2, values); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// BuildBookChaptersWorkbook renders one faculty member's book chapters.
func BuildBookChaptersWorkbook(chapters []*models.BookChapter) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetBookChapters); err != nil {
		return nil, err
	}

	headers := []interface{}{
		"S.No", "Chapter Title", "Book Title", "Authors",
		"Corresponding Author", "Faculty Position", "Publisher", "ISBN",
		"Chapter DOI", "Year", "Indexing", "Quartile", "Impact Factor",
		"Chapter Link",
	}
	if err := writeRow(f, sheetBookChapters, 1, headers); err != nil {
		return nil, err
	}
	boldRow(f, sheetBookChapters, 1, len(headers))

	for i, b := range chapters {
		values := []interface{}{
			i + 1, b.ChapterTitle, b.BookTitle, b.Authors,
			b.CorrespondingAuthor, b.AuthorPosition, b.Publisher, b.ISBN,
			b.DOI, b.Year, b.Indexing, b.Quartile,
			blankIfZero(b.ImpactFactor), b.Link,
		}
		if err := writeRow(f, sheetBookChapters, i+2, values); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// BuildPatentsWorkbook renders one faculty member's patents.
func BuildPatentsWorkbook(patents []*models.Patent) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetPatents); err != nil {
		return nil, err
	}

	headers := []interface{}{
		"S.No", "Patent Title", "Inventors", "Corresponding Applicant",
		"Faculty Position", "Application Number", "Filing Date",
		"Publication Date", "Grant Date", "Patent Office", "Status",
		"Patent Type", "Patent Link", "Certificate Link",
	}
	if err := writeRow(f, sheetPatents, 1, headers); err != nil {
		return nil, err
	}
	boldRow(f, sheetPatents, 1, len(headers))

	for i, p := range patents {
		values := []interface{}{
			i + 1, p.Title, p.Inventors, p.CorrespondingApplicant,
			p.AuthorPosition, p.ApplicationNumber, fmtOptDate(p.FilingDate),
			fmtOptDate(p.PublicationDate), fmtOptDate(p.GrantDate),
			p.PatentOffice, p.Status, p.PatentType, p.PatentLink,
			p.CertificateLink,
		}
		if err := writeRow(f, sheetPatents, i+2, values); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// BuildCombinedPublicationsWorkbook renders every research output of one
// faculty member as one workbook with a sheet per kind. Kinds without records
// get no sheet; a fully empty set produces a single message sheet.
func BuildCombinedPublicationsWorkbook(pubs *FacultyPublications) (*excelize.File, error) {
	f := excelize.NewFile()

	type sheetFill func(sheet string) error
	sheets := []struct {
		name  string
		count int
		fill  sheetFill
	}{
		{sheetJournals, len(pubs.Journals), func(sheet string) error {
			headers := []interface{}{
				"S.No", "Paper Title", "Journal Name", "First Author",
				"Corresponding Author", "Other Authors", "Faculty Position",
				"Year", "Volume & Issue", "Pages", "ISSN", "DOI", "Indexing",
				"Quartile", "Impact Factor", "Publisher",
			}
			if err := writeRow(f, sheet, 1, headers); err != nil {
				return err
			}
			boldRow(f, sheet, 1, len(headers))
			for i, j := range pubs.Journals {
				values := []interface{}{
					i + 1, j.PaperTitle, j.JournalName, j.FirstAuthor,
					j.CorrespondingAuthor, j.OtherAuthors, j.AuthorPosition,
					j.Year, j.VolumeIssue, j.PageNumbers, j.ISSN, j.DOI,
					j.Indexing, j.Quartile, blankIfZero(j.ImpactFactor),
					j.Publisher,
				}
				if err := writeRow(f, sheet, i+2, values); err != nil {
					return err
				}
			}
			return nil
		}},
		{sheetConferencePapers, len(pubs.Conferences), func(sheet string) error {
			headers := []interface{}{
				"S.No", "Paper Title", "Conference Name", "Authors",
				"Corresponding Author", "Faculty Position", "Venue", "Dates",
				"Year", "Proceedings", "ISBN/ISSN", "DOI",
			}
			if err := writeRow(f, sheet, 1, headers); err != nil {
				return err
			}
			boldRow(f, sheet, 1, len(headers))
			for i, c := range pubs.Conferences {
				values := []interface{}{
					i + 1, c.PaperTitle, c.ConferenceName, c.Authors,
					c.CorrespondingAuthor, c.AuthorPosition, c.Venue,
					c.Dates, c.Year, c.ProceedingsTitle, c.ISBNISSN, c.DOI,
				}
				if err := writeRow(f, sheet, i+2, values); err != nil {
					return err
				}
			}
			return nil
		}},
		{sheetBookChapters, len(pubs.BookChapters), func(sheet string) error {
			headers := []interface{}{
				"S.No", "Chapter Title", "Book Title", "Authors",
				"Corresponding Author", "Faculty Position", "Publisher",
				"ISBN", "Year", "DOI", "Impact Factor",
			}
			if err := writeRow(f, sheet, 1, headers); err != nil {
				return err
			}
			boldRow(f, sheet, 1, len(headers))
			for i, b := range pubs.BookChapters {
				values := []interface{}{
					i + 1, b.ChapterTitle, b.BookTitle, b.Authors,
					b.CorrespondingAuthor, b.AuthorPosition, b.Publisher,
					b.ISBN, b.Year, b.DOI, blankIfZero(b.ImpactFactor),
				}
				if err := writeRow(f, sheet, i+2, values); err != nil {
					return err
				}
			}
			return nil
		}},
		{sheetPatents, len(pubs.Patents), func(sheet string) error {
			headers := []interface{}{
				"S.No", "Patent Title", "Application Number", "Inventors",
				"Corresponding Applicant", "Faculty Position",
				"Patent Office", "Status", "Type", "Filing Date",
				"Grant Date",
			}
			if err := writeRow(f, sheet, 1, headers); err != nil {
				return err
			}
			boldRow(f, sheet, 1, len(headers))
			for i, p := range pubs.Patents {
				values := []interface{}{
					i + 1, p.Title, p.ApplicationNumber, p.Inventors,
					p.CorrespondingApplicant, p.AuthorPosition,
					p.PatentOffice, p.Status, p.PatentType,
					fmtOptDate(p.FilingDate), fmtOptDate(p.GrantDate),
				}
				if err := writeRow(f, sheet, i+2, values); err != nil {
					return err
				}
			}
			return nil
		}},
	}

	added := false
	for _, sh := range sheets {
		if sh.count == 0 {
			continue
		}
		if !added {
			if err := f.SetSheetName("Sheet1", sh.name); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(sh.name); err != nil {
				return nil, err
			}
		}
		if err := sh.fill(sh.name); err != nil {
			return nil, err
		}
		added = true
	}

	if !added {
		if err := f.SetSheetName("Sheet1", sheetNoPublications); err != nil {
			return nil, err
		}
		if err := writeRow(f, sheetNoPublications, 1,
			[]interface{}{"No R&D publications found for this faculty member."}); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// BuildCampusJournalWorkbook renders journal papers across faculty.
func BuildCampusJournalWorkbook(rows []*repositories.JournalRow) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetJournals); err != nil {
		return nil, err
	}

	headers := []interface{}{
		"S.No", "Employee ID", "Faculty Name", "Department", "Paper Title",
		"Journal Name", "First Author", "Corresponding Author", "Year",
		"Volume & Issue", "Pages", "ISSN", "DOI", "Indexing", "Quartile",
		"Impact Factor", "Publisher",
	}
	if err := writeRow(f, sheetJournals, 1, headers); err != nil {
		return nil, err
	}
	boldRow(f, sheetJournals, 1, len(headers))

	for i, r := range rows {
		values := []interface{}{
			i + 1, r.FacultyEmployeeID, r.FacultyName, r.Department,
			r.PaperTitle, r.JournalName, r.FirstAuthor,
			r.CorrespondingAuthor, r.Year, r.VolumeIssue, r.PageNumbers,
			r.ISSN, r.DOI, r.Indexing, r.Quartile,
			blankIfZero(r.ImpactFactor), r.Publisher,
		}
		if err := writeRow(f, sheetJournals, i+2, values); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// BuildCampusConferenceWorkbook renders conference papers across faculty.
func BuildCampusConferenceWorkbook(rows []*repositories.ConferenceRow) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetConferences); err != nil {
		return nil, err
	}

	headers := []interface{}{
		"S.No", "Employee ID", "Faculty Name", "Department", "Paper Title",
		"Conference Name", "Authors", "Corresponding Author", "Year",
		"Venue", "Dates", "Proceedings", "ISBN/ISSN", "DOI", "Indexing",
	}
	if err := writeRow(f, sheetConferences, 1, headers); err != nil {
		return nil, err
	}
	boldRow(f, sheetConferences, 1, len(headers))

	for i, r := range rows {
		values := []interface{}{
			i + 1, r.FacultyEmployeeID, r.FacultyName, r.Department,
			r.PaperTitle, r.ConferenceName, r.Authors,
			r.CorrespondingAuthor, r.Year, r.Venue, r.Dates,
			r.ProceedingsTitle, r.ISBNISSN, r.DOI, r.Indexing,
		}
		if err := writeRow(f, sheetConferences, i+2, values); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// BuildCampusBookChapterWorkbook renders book chapters across faculty.
func BuildCampusBookChapterWorkbook(rows []*repositories.BookChapterRow) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetBookChapters); err != nil {
		return nil, err
	}

	headers := []interface{}{
		"S.No", "Employee ID", "Faculty Name", "Department", "Chapter Title",
		"Book Title", "Authors", "Corresponding Author", "Publisher", "ISBN",
		"Year", "Chapter DOI", "Indexing", "Impact Factor",
	}
	if err := writeRow(f, sheetBookChapters, 1, headers); err != nil {
		return nil, err
	}
	boldRow(f, sheetBookChapters, 1, len(headers))

	for i, r := range rows {
		values := []interface{}{
			i + 1, r.FacultyEmployeeID, r.FacultyName, r.Department,
			r.ChapterTitle, r.BookTitle, r.Authors, r.CorrespondingAuthor,
			r.Publisher, r.ISBN, r.Year, r.DOI, r.Indexing,
			blankIfZero(r.ImpactFactor),
		}
		if err := writeRow(f, sheetBookChapters, i+2, values); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// BuildCampusPatentWorkbook renders patents across faculty.
func BuildCampusPatentWorkbook(rows []*repositories.PatentRow) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetPatents); err != nil {
		return nil, err
	}

	headers := []interface{}{
		"S.No", "Employee ID", "Faculty Name", "Department", "Patent Title",
		"Application Number", "Inventors", "Corresponding Applicant",
		"Patent Office", "Status", "Type", "Filing Date", "Publication Date",
		"Grant Date",
	}
	if err := writeRow(f, sheetPatents, 1, headers); err != nil {
		return nil, err
	}
	boldRow(f, sheetPatents, 1, len(headers))

	for i, r := range rows {
		values := []interface{}{
			i + 1, r.FacultyEmployeeID, r.FacultyName, r.Department,
			r.Title, r.ApplicationNumber, r.Inventors,
			r.CorrespondingApplicant, r.PatentOffice, r.Status,
			r.PatentType, fmtOptDate(r.FilingDate),
			fmtOptDate(r.PublicationDate), fmtOptDate(r.GrantDate),
		}
		if err := writeRow(f, sheetPatents, i+2, values); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func toExportFile(f *excelize.File, filename string) (*ExportFile, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return &ExportFile{Filename: filename, Content: buf.Bytes()}, nil
}

func timestamp() string {
	return time.Now().Format("20060102_150405")
}

// safeName strips path-hostile characters from names used in filenames.
func safeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, name)
}

// ExportFacultyRoster exports the filtered roster with qualifications.
func (s *exportServiceImpl) ExportFacultyRoster(ctx context.Context, ident appauth.Identity, params *dto.FacultyFilterParams) (*ExportFile, error) {
	if err := s.authz.Validate(ident, appauth.CapExportData); err != nil {
		return nil, err
	}

	faculty, err := s.facultyRepo.List(ctx, repositories.FilterFromParams(params))
	if err != nil {
		return nil, err
	}

	qualsByFaculty := map[int64][]*models.Qualification{}
	for _, member := range faculty {
		quals, err := s.qualRepo.ListByFaculty(ctx, member.ID)
		if err != nil {
			return nil, err
		}
		if len(quals) > 0 {
			qualsByFaculty[member.ID] = quals
		}
	}

	f, err := BuildRosterWorkbook(faculty, qualsByFaculty, params, time.Now())
	if err != nil {
		return nil, err
	}

	logger.Info().Int("records", len(faculty)).Int64("exportedBy", ident.UserID).Msg("Faculty roster exported")
	return toExportFile(f, fmt.Sprintf("faculty_data_%s.xlsx", timestamp()))
}

// ExportFacultyProfile exports one complete profile.
func (s *exportServiceImpl) ExportFacultyProfile(ctx context.Context, ident appauth.Identity, facultyID int64) (*ExportFile, error) {
	if err := s.validateFacultyExport(ctx, ident, facultyID); err != nil {
		return nil, err
	}

	member, err := s.facultyRepo.GetByID(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	quals, err := s.qualRepo.ListByFaculty(ctx, facultyID)
	if err != nil {
		return nil, err
	}

	f, err := BuildProfileWorkbook(member, quals)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s_%s_complete_profile.xlsx", member.EmployeeID, safeName(member.Name))
	return toExportFile(f, name)
}

// ExportFacultyQualifications exports one faculty member's qualifications.
func (s *exportServiceImpl) ExportFacultyQualifications(ctx context.Context, ident appauth.Identity, facultyID int64) (*ExportFile, error) {
	if err := s.validateFacultyExport(ctx, ident, facultyID); err != nil {
		return nil, err
	}

	member, err := s.facultyRepo.GetByID(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	quals, err := s.qualRepo.ListByFaculty(ctx, facultyID)
	if err != nil {
		return nil, err
	}

	f, err := BuildQualificationsWorkbook(quals)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("qualifications_%s_%s.xlsx", member.EmployeeID, safeName(member.Name))
	return toExportFile(f, name)
}

// ExportFacultyPublications exports one kind of research output for one
// faculty member.
func (s *exportServiceImpl) ExportFacultyPublications(ctx context.Context, ident appauth.Identity, facultyID int64, kind models.PublicationKind) (*ExportFile, error) {
	if err := s.validateFacultyExport(ctx, ident, facultyID); err != nil {
		return nil, err
	}

	var (
		f   *excelize.File
		err error
	)
	switch kind {
	case models.KindJournal:
		var journals []*models.JournalPublication
		if journals, err = s.pubRepo.ListJournalsByFaculty(ctx, facultyID); err == nil {
			f, err = BuildJournalsWorkbook(journals)
		}
	case models.KindConference:
		var conferences []*models.ConferencePublication
		if conferences, err = s.pubRepo.ListConferencesByFaculty(ctx, facultyID); err == nil {
			f, err = BuildConferencesWorkbook(conferences)
		}
	case models.KindBookChapter:
		var chapters []*models.BookChapter
		if chapters, err = s.pubRepo.ListBookChaptersByFaculty(ctx, facultyID); err == nil {
			f, err = BuildBookChaptersWorkbook(chapters)
		}
	case models.KindPatent:
		var patents []*models.Patent
		if patents, err = s.pubRepo.ListPatentsByFaculty(ctx, facultyID); err == nil {
			f, err = BuildPatentsWorkbook(patents)
		}
	default:
		return nil, apperrors.NewValidationError("unknown publication type")
	}
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s_publications_%s.xlsx", kind, timestamp())
	return toExportFile(f, name)
}

// ExportFacultyAllPublications exports every research output of one faculty
// member as a single workbook.
func (s *exportServiceImpl) ExportFacultyAllPublications(ctx context.Context, ident appauth.Identity, facultyID int64) (*ExportFile, error) {
	if err := s.validateFacultyExport(ctx, ident, facultyID); err != nil {
		return nil, err
	}

	member, err := s.facultyRepo.GetByID(ctx, facultyID)
	if err != nil {
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

	f, err := BuildCombinedPublicationsWorkbook(&FacultyPublications{
		Journals:     journals,
		Conferences:  conferences,
		BookChapters: chapters,
		Patents:      patents,
	})
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s_%s_All_Publications_%s.xlsx",
		member.EmployeeID, safeName(member.Name), timestamp())
	return toExportFile(f, name)
}

// ExportCampusPublications exports one kind of research output across all
// faculty, with owner columns.
func (s *exportServiceImpl) ExportCampusPublications(ctx context.Context, ident appauth.Identity, kind models.PublicationKind, q repositories.PubQuery) (*ExportFile, error) {
	if err := s.authz.Validate(ident, appauth.CapExportData); err != nil {
		return nil, err
	}

	var (
		f   *excelize.File
		err error
	)
	switch kind {
	case models.KindJournal:
		var rows []*repositories.JournalRow
		if rows, err = s.pubRepo.ListJournals(ctx, q); err == nil {
			f, err = BuildCampusJournalWorkbook(rows)
		}
	case models.KindConference:
		var rows []*repositories.ConferenceRow
		if rows, err = s.pubRepo.ListConferences(ctx, q); err == nil {
			f, err = BuildCampusConferenceWorkbook(rows)
		}
	case models.KindBookChapter:
		var rows []*repositories.BookChapterRow
		if rows, err = s.pubRepo.ListBookChapters(ctx, q); err == nil {
			f, err = BuildCampusBookChapterWorkbook(rows)
		}
	case models.KindPatent:
		var rows []*repositories.PatentRow
		if rows, err = s.pubRepo.ListPatents(ctx, q); err == nil {
			f, err = BuildCampusPatentWorkbook(rows)
		}
	default:
		return nil, apperrors.NewValidationError("unknown publication type")
	}
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("rd_%s_publications_%s.xlsx", kind, timestamp())
	return toExportFile(f, name)
}
