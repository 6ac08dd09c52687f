package dto

import "strconv"

// FacultyFilterParams are the optional list/export filter parameters as they
// arrive on the query string. All fields combine with AND; the search term
// matches name or employee id with OR semantics.
type FacultyFilterParams struct {
	Search          string `form:"search"`
	Department      string `form:"department"`
	Designation     string `form:"designation"`
	AppointmentType string `form:"appointment_type"`
	ExpFrom         string `form:"exp_from"`
	ExpTo           string `form:"exp_to"`
}

// ExpBounds parses the experience range. A bound that is empty or not a valid
// number is skipped rather than rejected, so list views never fail on a
// malformed query string.
func (p *FacultyFilterParams) ExpBounds() (from *float64, to *float64) {
	if v, err := strconv.ParseFloat(p.ExpFrom, 64); err == nil {
		from = &v
	}
	if v, err := strconv.ParseFloat(p.ExpTo, 64); err == nil {
		to = &v
	}
	return from, to
}

// Active reports whether any filter is set, including unparsable experience
// bounds, since those were still supplied by the caller.
func (p *FacultyFilterParams) Active() bool {
	return p.Search != "" || p.Department != "" || p.Designation != "" ||
		p.AppointmentType != "" || p.ExpFrom != "" || p.ExpTo != ""
}
