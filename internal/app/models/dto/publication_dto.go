package dto

import (
	"github.com/pragati-coe/facultyhub/internal/app/models"
)

// PublicationFilterParams are the optional campus-wide listing filters.
// Indexing only applies to journals; Status only applies to patents.
type PublicationFilterParams struct {
	Department string `form:"department"`
	Year       int    `form:"year"`
	Indexing   string `form:"indexing"`
	Status     string `form:"status"`
}

// JournalRequest is the create/update payload for a journal publication.
type JournalRequest struct {
	Department          string  `json:"department" binding:"required"`
	FirstAuthor         string  `json:"firstAuthor" binding:"required"`
	CorrespondingAuthor string  `json:"correspondingAuthor" binding:"required"`
	OtherAuthors        string  `json:"otherAuthors"`
	AuthorPosition      string  `json:"authorPosition" binding:"required"`
	PaperTitle          string  `json:"paperTitle" binding:"required"`
	JournalName         string  `json:"journalName" binding:"required"`
	VolumeIssue         string  `json:"volumeIssue"`
	PageNumbers         string  `json:"pageNumbers"`
	ISSN                string  `json:"issn"`
	DOI                 string  `json:"doi"`
	Year                int     `json:"year" binding:"required"`
	Indexing            string  `json:"indexing"`
	Quartile            string  `json:"quartile"`
	ImpactFactor        float64 `json:"impactFactor"`
	JournalLink         string  `json:"journalLink"`
	Publisher           string  `json:"publisher"`
	FundingAgency       string  `json:"fundingAgency"`
	Remarks             string  `json:"remarks"`
}

// ToModel converts the request to a JournalPublication owned by the faculty.
func (r *JournalRequest) ToModel(facultyID int64) *models.JournalPublication {
	return &models.JournalPublication{
		FacultyID:           facultyID,
		Department:          r.Department,
		FirstAuthor:         r.FirstAuthor,
		CorrespondingAuthor: r.CorrespondingAuthor,
		OtherAuthors:        r.OtherAuthors,
		AuthorPosition:      r.AuthorPosition,
		PaperTitle:          r.PaperTitle,
		JournalName:         r.JournalName,
		VolumeIssue:         r.VolumeIssue,
		PageNumbers:         r.PageNumbers,
		ISSN:                r.ISSN,
		DOI:                 r.DOI,
		Year:                r.Year,
		Indexing:            r.Indexing,
		Quartile:            r.Quartile,
		ImpactFactor:        r.ImpactFactor,
		JournalLink:         r.JournalLink,
		Publisher:           r.Publisher,
		FundingAgency:       r.FundingAgency,
		Remarks:             r.Remarks,
	}
}

// ConferenceRequest is the create/update payload for a conference publication.
type ConferenceRequest struct {
	Department          string `json:"department" binding:"required"`
	PaperTitle          string `json:"paperTitle" binding:"required"`
	Authors             string `json:"authors" binding:"required"`
	CorrespondingAuthor string `json:"correspondingAuthor" binding:"required"`
	AuthorPosition      string `json:"authorPosition" binding:"required"`
	ConferenceName      string `json:"conferenceName" binding:"required"`
	Venue               string `json:"venue"`
	Dates               string `json:"dates"`
	ProceedingsTitle    string `json:"proceedingsTitle"`
	ISBNISSN            string `json:"isbnIssn"`
	DOI                 string `json:"doi"`
	Year                int    `json:"year" binding:"required"`
	Indexing            string `json:"indexing"`
	Publisher           string `json:"publisher"`
	Link                string `json:"link"`
}

// ToModel converts the request to a ConferencePublication owned by the faculty.
func (r *ConferenceRequest) ToModel(facultyID int64) *models.ConferencePublication {
	return &models.ConferencePublication{
		FacultyID:           facultyID,
		Department:          r.Department,
		PaperTitle:          r.PaperTitle,
		Authors:             r.Authors,
		CorrespondingAuthor: r.CorrespondingAuthor,
		AuthorPosition:      r.AuthorPosition,
		ConferenceName:      r.ConferenceName,
		Venue:               r.Venue,
		Dates:               r.Dates,
		ProceedingsTitle:    r.ProceedingsTitle,
		ISBNISSN:            r.ISBNISSN,
		DOI:                 r.DOI,
		Year:                r.Year,
		Indexing:            r.Indexing,
		Publisher:           r.Publisher,
		Link:                r.Link,
	}
}

// BookChapterRequest is the create/update payload for a book chapter.
type BookChapterRequest struct {
	Department          string  `json:"department" binding:"required"`
	ChapterTitle        string  `json:"chapterTitle" binding:"required"`
	BookTitle           string  `json:"bookTitle" binding:"required"`
	Authors             string  `json:"authors" binding:"required"`
	AuthorPosition      string  `json:"authorPosition" binding:"required"`
	CorrespondingAuthor string  `json:"correspondingAuthor" binding:"required"`
	Publisher           string  `json:"publisher" binding:"required"`
	ISBN                string  `json:"isbn"`
	DOI                 string  `json:"doi"`
	Year                int     `json:"year" binding:"required"`
	Indexing            string  `json:"indexing"`
	Quartile            string  `json:"quartile"`
	ImpactFactor        float64 `json:"impactFactor"`
	Link                string  `json:"link"`
}

// ToModel converts the request to a BookChapter owned by the faculty.
func (r *BookChapterRequest) ToModel(facultyID int64) *models.BookChapter {
	return &models.BookChapter{
		FacultyID:           facultyID,
		Department:          r.Department,
		ChapterTitle:        r.ChapterTitle,
		BookTitle:           r.BookTitle,
		Authors:             r.Authors,
		AuthorPosition:      r.AuthorPosition,
		CorrespondingAuthor: r.CorrespondingAuthor,
		Publisher:           r.Publisher,
		ISBN:                r.ISBN,
		DOI:                 r.DOI,
		Year:                r.Year,
		Indexing:            r.Indexing,
		Quartile:            r.Quartile,
		ImpactFactor:        r.ImpactFactor,
		Link:                r.Link,
	}
}

// PatentRequest is the create/update payload for a patent.
type PatentRequest struct {
	Department             string `json:"department" binding:"required"`
	Title                  string `json:"title" binding:"required"`
	Inventors              string `json:"inventors" binding:"required"`
	CorrespondingApplicant string `json:"correspondingApplicant" binding:"required"`
	AuthorPosition         string `json:"authorPosition" binding:"required"`
	ApplicationNumber      string `json:"applicationNumber" binding:"required"`
	FilingDate             string `json:"filingDate"`
	PublicationDate        string `json:"publicationDate"`
	GrantDate              string `json:"grantDate"`
	PatentOffice           string `json:"patentOffice" binding:"required"`
	Status                 string `json:"status" binding:"required"`
	PatentType             string `json:"patentType" binding:"required"`
	PatentLink             string `json:"patentLink"`
	CertificateLink        string `json:"certificateLink"`
}

// ToModel validates date fields and converts the request to a Patent.
func (r *PatentRequest) ToModel(facultyID int64) (*models.Patent, error) {
	filing, err := parseOptionalDate("filing date", r.FilingDate)
	if err != nil {
		return nil, err
	}
	publication, err := parseOptionalDate("publication date", r.PublicationDate)
	if err != nil {
		return nil, err
	}
	grant, err := parseOptionalDate("grant date", r.GrantDate)
	if err != nil {
		return nil, err
	}

	return &models.Patent{
		FacultyID:              facultyID,
		Department:             r.Department,
		Title:                  r.Title,
		Inventors:              r.Inventors,
		CorrespondingApplicant: r.CorrespondingApplicant,
		AuthorPosition:         r.AuthorPosition,
		ApplicationNumber:      r.ApplicationNumber,
		FilingDate:             filing,
		PublicationDate:        publication,
		GrantDate:              grant,
		PatentOffice:           r.PatentOffice,
		Status:                 r.Status,
		PatentType:             r.PatentType,
		PatentLink:             r.PatentLink,
		CertificateLink:        r.CertificateLink,
	}, nil
}
