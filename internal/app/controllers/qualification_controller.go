package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pragati-coe/facultyhub/internal/app/models"
	"github.com/pragati-coe/facultyhub/internal/app/models/dto"
	"github.com/pragati-coe/facultyhub/internal/app/services"
	"github.com/pragati-coe/facultyhub/internal/middleware"
)

// QualificationController handles qualification records nested under faculty
type QualificationController struct {
	qualService services.QualificationService
}

// NewQualificationController creates a new QualificationController
func NewQualificationController(qualService services.QualificationService) *QualificationController {
	return &QualificationController{
		qualService: qualService,
	}
}

// ListQualifications retrieves a faculty member's qualifications
// @Summary List qualifications
// @Tags qualifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Qualification}
// @Failure 403 {object} dto.ErrorResponse "Not your record"
// @Router /faculty/{id}/qualifications [get]
func (c *QualificationController) ListQualifications(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	facultyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	quals, err := c.qualService.ListQualifications(ctx, ident, facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      quals,
		Timestamp: time.Now(),
	})
}

// AddQualification attaches a qualification to a faculty record
// @Summary Add a qualification
// @Tags qualifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param request body dto.QualificationRequest true "Qualification information"
// @Success 201 {object} dto.APIResponse{data=models.Qualification}
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /faculty/{id}/qualifications [post]
func (c *QualificationController) AddQualification(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	facultyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.QualificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid qualification data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	q := req.ToModel(facultyID)
	id, err := c.qualService.AddQualification(ctx, ident, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	q.ID = id
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Data:      q,
		Timestamp: time.Now(),
	})
}

// ReplaceQualifications swaps the full qualification set of a faculty record
// @Summary Replace all qualifications
// @Tags qualifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param request body []dto.QualificationRequest true "New qualification set"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /faculty/{id}/qualifications [put]
func (c *QualificationController) ReplaceQualifications(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	facultyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var reqs []dto.QualificationRequest
	if err := ctx.ShouldBindJSON(&reqs); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid qualification data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	quals := make([]*models.Qualification, 0, len(reqs))
	for i := range reqs {
		quals = append(quals, reqs[i].ToModel(facultyID))
	}

	if err := c.qualService.ReplaceQualifications(ctx, ident, facultyID, quals); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Qualifications updated"))
}

// UpdateQualification replaces one qualification's fields
// @Summary Update a qualification
// @Tags qualifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param qualId path int true "Qualification ID"
// @Param request body dto.QualificationRequest true "Qualification information"
// @Success 200 {object} dto.APIResponse{data=models.Qualification}
// @Failure 404 {object} dto.ErrorResponse "Qualification not found"
// @Router /faculty/{id}/qualifications/{qualId} [put]
func (c *QualificationController) UpdateQualification(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	facultyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	qualID, ok := parseIDParam(ctx, "qualId")
	if !ok {
		return
	}

	var req dto.QualificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid qualification data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	q := req.ToModel(facultyID)
	q.ID = qualID

	if err := c.qualService.UpdateQualification(ctx, ident, q); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      q,
		Timestamp: time.Now(),
	})
}

// DeleteQualification removes one qualification
// @Summary Delete a qualification
// @Tags qualifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param qualId path int true "Qualification ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Qualification not found"
// @Router /faculty/{id}/qualifications/{qualId} [delete]
func (c *QualificationController) DeleteQualification(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	if _, ok := parseIDParam(ctx, "id"); !ok {
		return
	}
	qualID, ok := parseIDParam(ctx, "qualId")
	if !ok {
		return
	}

	if err := c.qualService.DeleteQualification(ctx, ident, qualID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Qualification deleted"))
}
