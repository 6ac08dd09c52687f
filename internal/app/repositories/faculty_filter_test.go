package repositories

import (
	"strings"
	"testing"

	"github.com/Masterminds/squirrel"

	"github.com/pragati-coe/facultyhub/internal/app/models/dto"
)

func baseSelect() squirrel.SelectBuilder {
	return squirrel.StatementBuilder.
		PlaceholderFormat(squirrel.Dollar).
		Select("id", "name").
		From("faculty")
}

func TestFilterApplyAllConditions(t *testing.T) {
	params := &dto.FacultyFilterParams{
		Search:          "rao",
		Department:      "CSE",
		Designation:     "Professor",
		AppointmentType: "Regular",
		ExpFrom:         "2",
		ExpTo:           "10",
	}
	f := FilterFromParams(params)

	sql, args, err := f.Apply(baseSelect()).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	want := "SELECT id, name FROM faculty WHERE (name ILIKE $1 OR employee_id ILIKE $2) AND department = $3 AND designation = $4 AND appointment_type = $5 AND overall_exp >= $6 AND overall_exp <= $7"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 7 {
		t.Fatalf("args = %v, want 7 values", args)
	}
	if args[0] != "%rao%" || args[1] != "%rao%" {
		t.Errorf("search args = %v %v, want %%rao%%", args[0], args[1])
	}
	if args[5] != 2.0 || args[6] != 10.0 {
		t.Errorf("experience bounds = %v %v", args[5], args[6])
	}
}

func TestFilterSkipsMalformedBounds(t *testing.T) {
	params := &dto.FacultyFilterParams{ExpFrom: "lots", ExpTo: ""}
	f := FilterFromParams(params)
	if f.ExpFrom != nil || f.ExpTo != nil {
		t.Fatal("malformed or empty bounds must be skipped")
	}

	sql, args, err := f.Apply(baseSelect()).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	if strings.Contains(sql, "overall_exp") || len(args) != 0 {
		t.Errorf("unexpected conditions: %q %v", sql, args)
	}
}

func TestFilterOwnerEmailRestriction(t *testing.T) {
	f := FacultyFilter{OwnerEmail: "anita.rao@example.edu"}

	sql, args, err := f.Apply(baseSelect()).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	if !strings.Contains(sql, "email = $1") {
		t.Errorf("owner restriction missing: %q", sql)
	}
	if len(args) != 1 || args[0] != "anita.rao@example.edu" {
		t.Errorf("args = %v", args)
	}
}

func TestFilterApplyPrefixed(t *testing.T) {
	f := FacultyFilter{Department: "ECE"}
	q := squirrel.StatementBuilder.
		PlaceholderFormat(squirrel.Dollar).
		Select("p.title").
		From("journal_publications p").
		Join("faculty f ON f.id = p.faculty_id")

	sql, _, err := f.ApplyPrefixed(q, "f").ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	if !strings.Contains(sql, "f.department = $1") {
		t.Errorf("prefixed condition missing: %q", sql)
	}
}
