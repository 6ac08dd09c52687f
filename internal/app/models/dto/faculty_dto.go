package dto

import (
	"time"

	"github.com/pragati-coe/facultyhub/internal/app/models"
	"github.com/pragati-coe/facultyhub/internal/pkg/apperrors"
)

// DateLayout is the wire format for all date fields.
const DateLayout = "2006-01-02"

// FacultyRequest is the create/update payload for a faculty profile. Updates
// are full-replace: every stored field is taken from this payload.
type FacultyRequest struct {
	EmployeeID          string `form:"employee_id" json:"employeeId" binding:"required"`
	Name                string `form:"name" json:"name" binding:"required"`
	NameChange          bool   `form:"name_change" json:"nameChange"`
	DOB                 string `form:"dob" json:"dob" binding:"required"`
	Gender              string `form:"gender" json:"gender" binding:"required"`
	BloodGroup          string `form:"blood_group" json:"bloodGroup"`
	MaritalStatus       string `form:"marital_status" json:"maritalStatus"`
	FatherName          string `form:"father_name" json:"fatherName" binding:"required"`
	PresentAddress      string `form:"present_address" json:"presentAddress" binding:"required"`
	PermanentAddress    string `form:"permanent_address" json:"permanentAddress" binding:"required"`
	Email               string `form:"email" json:"email" binding:"required,email"`
	MobileNo            string `form:"mobile_no" json:"mobileNo" binding:"required"`
	AlternativeMobile   string `form:"alternative_mobile" json:"alternativeMobile"`
	Department          string `form:"department" json:"department" binding:"required"`
	Designation         string `form:"designation" json:"designation" binding:"required"`
	DateOfJoining       string `form:"date_of_joining" json:"dateOfJoining" binding:"required"`
	AppointmentType     string `form:"appointment_type" json:"appointmentType" binding:"required"`
	AadhaarNumber       string `form:"aadhaar_number" json:"aadhaarNumber"`
	PANNumber           string `form:"pan_number" json:"panNumber"`
	BankName            string `form:"bank_name" json:"bankName" binding:"required"`
	BankAccountNo       string `form:"bank_account_no" json:"bankAccountNo" binding:"required"`
	IFSCCode            string `form:"ifsc_code" json:"ifscCode" binding:"required"`
	Caste               string `form:"caste" json:"caste" binding:"required"`
	Subcaste            string `form:"subcaste" json:"subcaste"`
	Ratified            string `form:"ratified" json:"ratified"`
	RatifiedDesignation string `form:"ratified_designation" json:"ratifiedDesignation"`
	RatificationDate    string `form:"ratification_date" json:"ratificationDate"`
	PrevEmploymentDate  string `form:"previous_employment_date" json:"previousEmploymentDate"`
	ResignationDate     string `form:"resignation_date" json:"resignationDate"`

	TeachingExpPragati float64 `form:"teaching_exp_pragati" json:"teachingExpPragati"`
	TeachingExpOther   float64 `form:"teaching_exp_other" json:"teachingExpOther"`
	IndustrialExp      float64 `form:"industrial_exp" json:"industrialExp"`
	OverallExp         float64 `form:"overall_exp" json:"overallExp"`
}

// parseDate parses a required date field, naming the field in the error.
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("invalid " + field + " format, expected YYYY-MM-DD")
	}
	return t, nil
}

// parseOptionalDate parses an optional date field; empty means absent.
func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ToModel validates the request and converts it to a Faculty model. Date
// formats are checked hard, and the experience sum invariant is enforced.
// The experience category is derived here so it is always consistent with
// the persisted overall value.
func (r *FacultyRequest) ToModel() (*models.Faculty, error) {
	dob, err := parseDate("date of birth", r.DOB)
	if err != nil {
		return nil, err
	}
	joining, err := parseDate("date of joining", r.DateOfJoining)
	if err != nil {
		return nil, err
	}
	ratification, err := parseOptionalDate("ratification date", r.RatificationDate)
	if err != nil {
		return nil, err
	}
	prevEmployment, err := parseOptionalDate("previous employment date", r.PrevEmploymentDate)
	if err != nil {
		return nil, err
	}
	resignation, err := parseOptionalDate("resignation date", r.ResignationDate)
	if err != nil {
		return nil, err
	}

	if !models.ValidExperienceSum(r.TeachingExpPragati, r.TeachingExpOther, r.IndustrialExp, r.OverallExp) {
		return nil, apperrors.NewCustomError(apperrors.ErrExperienceMismatch,
			"teaching, other and industrial experience must add up to the overall total")
	}

	ratified := r.Ratified
	if ratified == "" {
		ratified = "No"
	}

	return &models.Faculty{
		EmployeeID:          r.EmployeeID,
		Name:                r.Name,
		NameChange:          r.NameChange,
		DOB:                 dob,
		Gender:              r.Gender,
		BloodGroup:          r.BloodGroup,
		MaritalStatus:       r.MaritalStatus,
		FatherName:          r.FatherName,
		PresentAddress:      r.PresentAddress,
		PermanentAddress:    r.PermanentAddress,
		Email:               r.Email,
		MobileNo:            r.MobileNo,
		AlternativeMobile:   r.AlternativeMobile,
		Department:          r.Department,
		Designation:         r.Designation,
		DateOfJoining:       joining,
		AppointmentType:     r.AppointmentType,
		AadhaarNumber:       r.AadhaarNumber,
		PANNumber:           r.PANNumber,
		BankName:            r.BankName,
		BankAccountNo:       r.BankAccountNo,
		IFSCCode:            r.IFSCCode,
		Caste:               r.Caste,
		Subcaste:            r.Subcaste,
		Ratified:            ratified,
		RatifiedDesignation: r.RatifiedDesignation,
		RatificationDate:    ratification,
		PrevEmploymentDate:  prevEmployment,
		ResignationDate:     resignation,
		TeachingExpPragati:  r.TeachingExpPragati,
		TeachingExpOther:    r.TeachingExpOther,
		IndustrialExp:       r.IndustrialExp,
		OverallExp:          r.OverallExp,
		ExperienceCategory:  models.ExperienceCategory(r.OverallExp),
	}, nil
}
