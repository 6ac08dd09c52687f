package models

import (
	"math"
	"time"
)

// Experience categories derived from overall experience.
const (
	ExpCategoryJunior = "0-5"
	ExpCategoryMid    = "6-10"
	ExpCategorySenior = "10+"
)

// ExperienceSumTolerance is the allowed rounding drift between the three
// experience components and the overall total.
const ExperienceSumTolerance = 0.1

// Faculty is the HR profile of an academic staff member. The record is owned
// by itself; a User is linked by matching email, no foreign key is enforced.
type Faculty struct {
	ID                  int64      `json:"id"`
	EmployeeID          string     `json:"employeeId"`
	Name                string     `json:"name"`
	NameChange          bool       `json:"nameChange"`
	NameChangeProof     string     `json:"nameChangeProof,omitempty"`
	DOB                 time.Time  `json:"dob"`
	Gender              string     `json:"gender"`
	BloodGroup          string     `json:"bloodGroup,omitempty"`
	MaritalStatus       string     `json:"maritalStatus,omitempty"`
	FatherName          string     `json:"fatherName"`
	PresentAddress      string     `json:"presentAddress"`
	PermanentAddress    string     `json:"permanentAddress"`
	Email               string     `json:"email"`
	MobileNo            string     `json:"mobileNo"`
	AlternativeMobile   string     `json:"alternativeMobile,omitempty"`
	Department          string     `json:"department"`
	Designation         string     `json:"designation"`
	DateOfJoining       time.Time  `json:"dateOfJoining"`
	AppointmentType     string     `json:"appointmentType"`
	AadhaarNumber       string     `json:"aadhaarNumber,omitempty"`
	PANNumber           string     `json:"panNumber,omitempty"`
	BankName            string     `json:"bankName"`
	BankAccountNo       string     `json:"bankAccountNo"`
	IFSCCode            string     `json:"ifscCode"`
	PhotoPath           string     `json:"photoPath,omitempty"`
	Caste               string     `json:"caste"`
	Subcaste            string     `json:"subcaste,omitempty"`
	Ratified            string     `json:"ratified"`
	RatifiedDesignation string     `json:"ratifiedDesignation,omitempty"`
	RatificationDate    *time.Time `json:"ratificationDate,omitempty"`
	PrevEmploymentDate  *time.Time `json:"previousEmploymentDate,omitempty"`
	ResignationDate     *time.Time `json:"resignationDate,omitempty"`

	TeachingExpPragati float64 `json:"teachingExpPragati"`
	TeachingExpOther   float64 `json:"teachingExpOther"`
	IndustrialExp      float64 `json:"industrialExp"`
	OverallExp         float64 `json:"overallExp"`
	ExperienceCategory string  `json:"experienceCategory"`
}

// ExperienceCategory buckets an overall experience value in years.
func ExperienceCategory(overallExp float64) string {
	switch {
	case overallExp <= 5.9:
		return ExpCategoryJunior
	case overallExp <= 10.9:
		return ExpCategoryMid
	default:
		return ExpCategorySenior
	}
}

// ValidExperienceSum reports whether the three experience components add up
// to the overall total within the allowed tolerance.
func ValidExperienceSum(pragati, other, industrial, overall float64) bool {
	return math.Abs(pragati+other+industrial-overall) <= ExperienceSumTolerance
}
