package models

// Qualification is a degree or certification held by a faculty member. A
// faculty member may hold many; at most one is normally flagged as highest,
// though that is not enforced as a hard invariant.
type Qualification struct {
	ID             int64  `json:"id"`
	FacultyID      int64  `json:"facultyId"`
	Type           string `json:"qualificationType"`
	Specialization string `json:"specialization,omitempty"`
	Percentage     string `json:"percentage,omitempty"`
	YearOfPassing  int    `json:"yearOfPassing,omitempty"`
	Institution    string `json:"institution"`
	HighestDegree  bool   `json:"highestDegree"`
	Pursuing       bool   `json:"pursuing"`
}
