package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pragati-coe/facultyhub/internal/app/models/dto"
	"github.com/pragati-coe/facultyhub/internal/app/services"
	"github.com/pragati-coe/facultyhub/internal/middleware"
	"github.com/pragati-coe/facultyhub/internal/pkg/filestorage"
)

// FacultyController handles faculty profile operations
type FacultyController struct {
	facultyService services.FacultyService
	storage        *filestorage.LocalStorage
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService, storage *filestorage.LocalStorage) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
		storage:        storage,
	}
}

// ListFaculty retrieves faculty records matching the query filters
// @Summary List faculty
// @Description Lists faculty records. Viewer accounts only see their own record.
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name or employee ID fragment"
// @Param department query string false "Exact department"
// @Param designation query string false "Exact designation"
// @Param appointment_type query string false "Exact appointment type"
// @Param exp_from query number false "Minimum overall experience"
// @Param exp_to query number false "Maximum overall experience"
// @Success 200 {object} dto.APIResponse{data=[]models.Faculty}
// @Router /faculty [get]
func (c *FacultyController) ListFaculty(ctx *gin.Context) {
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

	faculty, err := c.facultyService.ListFaculty(ctx, ident, &params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      faculty,
		Timestamp: time.Now(),
	})
}

// GetFaculty retrieves one faculty record
// @Summary Get faculty details
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=models.Faculty}
// @Failure 403 {object} dto.ErrorResponse "Not your record"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /faculty/{id} [get]
func (c *FacultyController) GetFaculty(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	faculty, err := c.facultyService.GetFaculty(ctx, ident, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      faculty,
		Timestamp: time.Now(),
	})
}

// GetOwnProfile retrieves the faculty record linked to the caller's email
// @Summary Get own profile
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Faculty}
// @Failure 404 {object} dto.ErrorResponse "No profile linked to this account"
// @Router /profile [get]
func (c *FacultyController) GetOwnProfile(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	faculty, err := c.facultyService.GetOwnProfile(ctx, ident)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      faculty,
		Timestamp: time.Now(),
	})
}

// CreateFaculty adds a new faculty record
// @Summary Create a faculty record
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.FacultyRequest true "Faculty information"
// @Success 201 {object} dto.APIResponse{data=models.Faculty}
// @Failure 400 {object} dto.ErrorResponse "Invalid data or experience mismatch"
// @Failure 409 {object} dto.ErrorResponse "Employee ID or email already registered"
// @Router /faculty [post]
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	var req dto.FacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	faculty, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id, err := c.facultyService.CreateFaculty(ctx, ident, faculty)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	faculty.ID = id
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Data:      faculty,
		Timestamp: time.Now(),
	})
}

// UpdateFaculty replaces an existing faculty record
// @Summary Update a faculty record
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param request body dto.FacultyRequest true "Faculty information"
// @Success 200 {object} dto.APIResponse{data=models.Faculty}
// @Failure 400 {object} dto.ErrorResponse "Invalid data or experience mismatch"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 409 {object} dto.ErrorResponse "Employee ID or email already registered"
// @Router /faculty/{id} [put]
func (c *FacultyController) UpdateFaculty(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.FacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	faculty, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	faculty.ID = id

	if err := c.facultyService.UpdateFaculty(ctx, ident, faculty); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      faculty,
		Timestamp: time.Now(),
	})
}

// DeleteFaculty removes a faculty record
// @Summary Delete a faculty record
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 409 {object} dto.ErrorResponse "Faculty has dependent records"
// @Router /faculty/{id} [delete]
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.facultyService.DeleteFaculty(ctx, ident, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Faculty member deleted"))
}

// UploadFacultyPhoto stores a profile photo for a faculty record
// @Summary Upload a faculty photo
// @Tags faculty
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param photo formData file true "Photo file (jpg, jpeg, png, pdf, doc, docx; max 5MB)"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "File type not allowed or too large"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /faculty/{id}/photo [post]
func (c *FacultyController) UploadFacultyPhoto(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Photo file is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	path, err := c.storage.SaveFileWithPath(fileHeader, "photos")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.facultyService.SetFacultyPhoto(ctx, ident, id, path); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"photoPath": path}, "Photo uploaded"))
}
