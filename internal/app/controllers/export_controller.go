package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pragati-coe/facultyhub/internal/app/models"
	"github.com/pragati-coe/facultyhub/internal/app/models/dto"
	"github.com/pragati-coe/facultyhub/internal/app/services"
	"github.com/pragati-coe/facultyhub/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportController serves the spreadsheet downloads
type ExportController struct {
	exportService services.ExportService
}

// NewExportController creates a new ExportController
func NewExportController(exportService services.ExportService) *ExportController {
	return &ExportController{
		exportService: exportService,
	}
}

func sendWorkbook(ctx *gin.Context, file *services.ExportFile) {
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	ctx.Data(http.StatusOK, xlsxContentType, file.Content)
}

// kindFromParam maps the route segment to a publication kind.
func kindFromParam(ctx *gin.Context) (models.PublicationKind, bool) {
	switch ctx.Param("kind") {
	case "journals":
		return models.KindJournal, true
	case "conferences":
		return models.KindConference, true
	case "book-chapters":
		return models.KindBookChapter, true
	case "patents":
		return models.KindPatent, true
	default:
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unknown publication type")
		errorDetail = errorDetail.WithDetails("expected journals, conferences, book-chapters or patents")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return "", false
	}
}

// ExportFacultyRoster downloads the filtered faculty roster
// @Summary Export the faculty roster
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param search query string false "Name or employee ID fragment"
// @Param department query string false "Exact department"
// @Param designation query string false "Exact designation"
// @Param appointment_type query string false "Exact appointment type"
// @Param exp_from query number false "Minimum overall experience"
// @Param exp_to query number false "Maximum overall experience"
// @Success 200 {file} binary
// @Failure 403 {object} dto.ErrorResponse "Administrative role required"
// @Router /exports/faculty [get]
func (c *ExportController) ExportFacultyRoster(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	var params dto.FacultyFilterParams
	if err := ctx.ShouldBindQuery(&params); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid filter parameters")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := c.exportService.ExportFacultyRoster(ctx, ident, &params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sendWorkbook(ctx, file)
}

// ExportFacultyProfile downloads one complete faculty profile
// @Summary Export one faculty profile
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {file} binary
// @Failure 403 {object} dto.ErrorResponse "Not your record"
// @Router /exports/faculty/{id} [get]
func (c *ExportController) ExportFacultyProfile(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	facultyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	file, err := c.exportService.ExportFacultyProfile(ctx, ident, facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sendWorkbook(ctx, file)
}

// ExportFacultyQualifications downloads one faculty member's qualifications
// @Summary Export a faculty member's qualifications
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {file} binary
// @Router /exports/faculty/{id}/qualifications [get]
func (c *ExportController) ExportFacultyQualifications(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	facultyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	file, err := c.exportService.ExportFacultyQualifications(ctx, ident, facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sendWorkbook(ctx, file)
}

// ExportFacultyPublications downloads one research output kind for one faculty member
// @Summary Export one publication kind for a faculty member
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param kind path string true "journals, conferences, book-chapters or patents"
// @Success 200 {file} binary
// @Router /exports/faculty/{id}/publications/{kind} [get]
func (c *ExportController) ExportFacultyPublications(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	facultyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	kind, ok := kindFromParam(ctx)
	if !ok {
		return
	}

	file, err := c.exportService.ExportFacultyPublications(ctx, ident, facultyID, kind)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sendWorkbook(ctx, file)
}

// ExportFacultyAllPublications downloads every research output of one faculty member
// @Summary Export all publications of a faculty member
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {file} binary
// @Router /exports/faculty/{id}/publications [get]
func (c *ExportController) ExportFacultyAllPublications(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	facultyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	file, err := c.exportService.ExportFacultyAllPublications(ctx, ident, facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sendWorkbook(ctx, file)
}

// ExportCampusPublications downloads one publication kind across all faculty
// @Summary Export campus-wide publications
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param kind path string true "journals, conferences, book-chapters or patents"
// @Param department query string false "Exact department"
// @Param year query int false "Publication or filing year"
// @Param indexing query string false "Indexing body (journals)"
// @Param status query string false "Patent status (patents)"
// @Success 200 {file} binary
// @Failure 403 {object} dto.ErrorResponse "Administrative role required"
// @Router /exports/publications/{kind} [get]
func (c *ExportController) ExportCampusPublications(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	kind, ok := kindFromParam(ctx)
	if !ok {
		return
	}
	q, ok := bindPubQuery(ctx)
	if !ok {
		return
	}

	file, err := c.exportService.ExportCampusPublications(ctx, ident, kind, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sendWorkbook(ctx, file)
}
