package models

import "time"

// PublicationKind distinguishes the four research output tables.
type PublicationKind string

const (
	KindJournal     PublicationKind = "journal"
	KindConference  PublicationKind = "conference"
	KindBookChapter PublicationKind = "book_chapter"
	KindPatent      PublicationKind = "patent"
)

// JournalPublication is a peer-reviewed journal paper owned by one faculty member.
type JournalPublication struct {
	ID                  int64   `json:"id"`
	FacultyID           int64   `json:"facultyId"`
	Department          string  `json:"department"`
	FirstAuthor         string  `json:"firstAuthor"`
	CorrespondingAuthor string  `json:"correspondingAuthor"`
	OtherAuthors        string  `json:"otherAuthors,omitempty"`
	AuthorPosition      string  `json:"authorPosition"`
	PaperTitle          string  `json:"paperTitle"`
	JournalName         string  `json:"journalName"`
	VolumeIssue         string  `json:"volumeIssue,omitempty"`
	PageNumbers         string  `json:"pageNumbers,omitempty"`
	ISSN                string  `json:"issn,omitempty"`
	DOI                 string  `json:"doi,omitempty"`
	Year                int     `json:"year"`
	Indexing            string  `json:"indexing,omitempty"`
	Quartile            string  `json:"quartile,omitempty"`
	ImpactFactor        float64 `json:"impactFactor,omitempty"`
	JournalLink         string  `json:"journalLink,omitempty"`
	Publisher           string  `json:"publisher,omitempty"`
	FundingAgency       string  `json:"fundingAgency,omitempty"`
	Remarks             string  `json:"remarks,omitempty"`
}

// ConferencePublication is a conference paper owned by one faculty member.
type ConferencePublication struct {
	ID                  int64  `json:"id"`
	FacultyID           int64  `json:"facultyId"`
	Department          string `json:"department"`
	PaperTitle          string `json:"paperTitle"`
	Authors             string `json:"authors"`
	CorrespondingAuthor string `json:"correspondingAuthor"`
	AuthorPosition      string `json:"authorPosition"`
	ConferenceName      string `json:"conferenceName"`
	Venue               string `json:"venue,omitempty"`
	Dates               string `json:"dates,omitempty"`
	ProceedingsTitle    string `json:"proceedingsTitle,omitempty"`
	ISBNISSN            string `json:"isbnIssn,omitempty"`
	DOI                 string `json:"doi,omitempty"`
	Year                int    `json:"year"`
	Indexing            string `json:"indexing,omitempty"`
	Publisher           string `json:"publisher,omitempty"`
	Link                string `json:"link,omitempty"`
}

// BookChapter is a published book chapter owned by one faculty member.
type BookChapter struct {
	ID                  int64   `json:"id"`
	FacultyID           int64   `json:"facultyId"`
	Department          string  `json:"department"`
	ChapterTitle        string  `json:"chapterTitle"`
	BookTitle           string  `json:"bookTitle"`
	Authors             string  `json:"authors"`
	AuthorPosition      string  `json:"authorPosition"`
	CorrespondingAuthor string  `json:"correspondingAuthor"`
	Publisher           string  `json:"publisher"`
	ISBN                string  `json:"isbn,omitempty"`
	DOI                 string  `json:"doi,omitempty"`
	Year                int     `json:"year"`
	Indexing            string  `json:"indexing,omitempty"`
	Quartile            string  `json:"quartile,omitempty"`
	ImpactFactor        float64 `json:"impactFactor,omitempty"`
	Link                string  `json:"link,omitempty"`
}

// Patent is a filed, published, or granted patent owned by one faculty member.
type Patent struct {
	ID                     int64      `json:"id"`
	FacultyID              int64      `json:"facultyId"`
	Department             string     `json:"department"`
	Title                  string     `json:"title"`
	Inventors              string     `json:"inventors"`
	CorrespondingApplicant string     `json:"correspondingApplicant"`
	AuthorPosition         string     `json:"authorPosition"`
	ApplicationNumber      string     `json:"applicationNumber"`
	FilingDate             *time.Time `json:"filingDate,omitempty"`
	PublicationDate        *time.Time `json:"publicationDate,omitempty"`
	GrantDate              *time.Time `json:"grantDate,omitempty"`
	PatentOffice           string     `json:"patentOffice"`
	Status                 string     `json:"status"`
	PatentType             string     `json:"patentType"`
	PatentLink             string     `json:"patentLink,omitempty"`
	CertificateLink        string     `json:"certificateLink,omitempty"`
}
