package dto

import "github.com/pragati-coe/facultyhub/internal/app/models"

// QualificationRequest is the create/update payload for a qualification.
type QualificationRequest struct {
	Type           string `form:"qualification_type" json:"qualificationType" binding:"required"`
	Specialization string `form:"specialization" json:"specialization"`
	Percentage     string `form:"percentage" json:"percentage"`
	YearOfPassing  int    `form:"year_of_passing" json:"yearOfPassing"`
	Institution    string `form:"institution" json:"institution" binding:"required"`
	HighestDegree  bool   `form:"highest_degree" json:"highestDegree"`
	Pursuing       bool   `form:"pursuing" json:"pursuing"`
}

// ToModel converts the request to a Qualification owned by the given faculty.
func (r *QualificationRequest) ToModel(facultyID int64) *models.Qualification {
	return &models.Qualification{
		FacultyID:      facultyID,
		Type:           r.Type,
		Specialization: r.Specialization,
		Percentage:     r.Percentage,
		YearOfPassing:  r.YearOfPassing,
		Institution:    r.Institution,
		HighestDegree:  r.HighestDegree,
		Pursuing:       r.Pursuing,
	}
}
