package dto

// DashboardStats aggregates faculty-wide counts for the dashboard view.
// Publication totals are populated only for administrative callers.
type DashboardStats struct {
	TotalFaculty     int `json:"totalFaculty"`
	RegularFaculty   int `json:"regularFaculty"`
	TotalDepartments int `json:"totalDepartments"`
	PhDHolders       int `json:"phdHolders"`
	PGHolders        int `json:"pgHolders"`

	ByDesignation     map[string]int `json:"byDesignation"`
	ByGender          map[string]int `json:"byGender"`
	ByAppointmentType map[string]int `json:"byAppointmentType"`
	ByExperience      map[string]int `json:"byExperience"`

	Publications *PubStats `json:"publications,omitempty"`
}

// PubStats counts research output across all faculty. Books counts distinct
// book titles among chapter records.
type PubStats struct {
	Journals     int `json:"journals"`
	Conferences  int `json:"conferences"`
	BookChapters int `json:"bookChapters"`
	Patents      int `json:"patents"`
	Books        int `json:"books"`
	Total        int `json:"total"`
}
