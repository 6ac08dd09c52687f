package repositories

import (
	"github.com/Masterminds/squirrel"

	"github.com/pragati-coe/facultyhub/internal/app/models/dto"
)

// FacultyFilter is the resolved filter applied to faculty list and export
// queries. Both surfaces go through Apply so a list view and its export can
// never disagree on which rows are selected.
type FacultyFilter struct {
	Search          string
	Department      string
	Designation     string
	AppointmentType string
	ExpFrom         *float64
	ExpTo           *float64

	// OwnerEmail restricts the result to the single record owned by that
	// email. Set for callers without the administrative view capability.
	OwnerEmail string
}

// FilterFromParams resolves query-string parameters into a FacultyFilter.
func FilterFromParams(p *dto.FacultyFilterParams) FacultyFilter {
	from, to := p.ExpBounds()
	return FacultyFilter{
		Search:          p.Search,
		Department:      p.Department,
		Designation:     p.Designation,
		AppointmentType: p.AppointmentType,
		ExpFrom:         from,
		ExpTo:           to,
	}
}

// Apply adds the filter's conditions to a select over the faculty table.
// Conditions are added in a fixed order so generated SQL is deterministic.
func (f FacultyFilter) Apply(q squirrel.SelectBuilder) squirrel.SelectBuilder {
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"employee_id": pattern},
		})
	}
	if f.Department != "" {
		q = q.Where(squirrel.Eq{"department": f.Department})
	}
	if f.Designation != "" {
		q = q.Where(squirrel.Eq{"designation": f.Designation})
	}
	if f.AppointmentType != "" {
		q = q.Where(squirrel.Eq{"appointment_type": f.AppointmentType})
	}
	if f.ExpFrom != nil {
		q = q.Where(squirrel.GtOrEq{"overall_exp": *f.ExpFrom})
	}
	if f.ExpTo != nil {
		q = q.Where(squirrel.LtOrEq{"overall_exp": *f.ExpTo})
	}
	if f.OwnerEmail != "" {
		q = q.Where(squirrel.Eq{"email": f.OwnerEmail})
	}
	return q
}

// ApplyPrefixed is Apply with a table alias, for queries that join the
// faculty table against publication tables.
func (f FacultyFilter) ApplyPrefixed(q squirrel.SelectBuilder, alias string) squirrel.SelectBuilder {
	p := alias + "."
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{p + "name": pattern},
			squirrel.ILike{p + "employee_id": pattern},
		})
	}
	if f.Department != "" {
		q = q.Where(squirrel.Eq{p + "department": f.Department})
	}
	if f.Designation != "" {
		q = q.Where(squirrel.Eq{p + "designation": f.Designation})
	}
	if f.AppointmentType != "" {
		q = q.Where(squirrel.Eq{p + "appointment_type": f.AppointmentType})
	}
	if f.ExpFrom != nil {
		q = q.Where(squirrel.GtOrEq{p + "overall_exp": *f.ExpFrom})
	}
	if f.ExpTo != nil {
		q = q.Where(squirrel.LtOrEq{p + "overall_exp": *f.ExpTo})
	}
	if f.OwnerEmail != "" {
		q = q.Where(squirrel.Eq{p + "email": f.OwnerEmail})
	}
	return q
}
