package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pragati-coe/facultyhub/internal/app/models/dto"
	"github.com/pragati-coe/facultyhub/internal/app/repositories"
	"github.com/pragati-coe/facultyhub/internal/app/services"
	"github.com/pragati-coe/facultyhub/internal/middleware"
)

// PublicationController handles the four research output kinds.
type PublicationController struct {
	pubService services.PublicationService
}

// NewPublicationController creates a new PublicationController
func NewPublicationController(pubService services.PublicationService) *PublicationController {
	return &PublicationController{
		pubService: pubService,
	}
}

func bindPubQuery(ctx *gin.Context) (repositories.PubQuery, bool) {
	var params dto.PublicationFilterParams
	if err := ctx.ShouldBindQuery(&params); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid filter parameters")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return repositories.PubQuery{}, false
	}
	return repositories.PubQuery{
		Department: params.Department,
		Year:       params.Year,
		Indexing:   params.Indexing,
		Status:     params.Status,
	}, true
}

func okData(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	})
}

func createdData(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	})
}

func bindBody(ctx *gin.Context, out interface{}) bool {
	if err := ctx.ShouldBindJSON(out); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid publication data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}

// GetFacultyPublications retrieves every research output of one faculty member
// @Summary Get a faculty member's research outputs
// @Tags publications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=services.FacultyPublications}
// @Failure 403 {object} dto.ErrorResponse "Not your record"
// @Router /faculty/{id}/publications [get]
func (c *PublicationController) GetFacultyPublications(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	facultyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	pubs, err := c.pubService.GetFacultyPublications(ctx, ident, facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	okData(ctx, pubs)
}

// ListCampusJournals retrieves journal papers across all faculty
// @Summary List campus journal publications
// @Tags publications
// @Produce json
// @Security BearerAuth
// @Param department query string false "Exact department"
// @Param year query int false "Publication year"
// @Param indexing query string false "Indexing body"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Administrative role required"
// @Router /publications/journals [get]
func (c *PublicationController) ListCampusJournals(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	q, ok := bindPubQuery(ctx)
	if !ok {
		return
	}

	rows, err := c.pubService.ListCampusJournals(ctx, ident, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	okData(ctx, rows)
}

// ListCampusConferences retrieves conference papers across all faculty
// @Summary List campus conference publications
// @Tags publications
// @Produce json
// @Security BearerAuth
// @Param department query string false "Exact department"
// @Param year query int false "Publication year"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Administrative role required"
// @Router /publications/conferences [get]
func (c *PublicationController) ListCampusConferences(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	q, ok := bindPubQuery(ctx)
	if !ok {
		return
	}

	rows, err := c.pubService.ListCampusConferences(ctx, ident, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	okData(ctx, rows)
}

// ListCampusBookChapters retrieves book chapters across all faculty
// @Summary List campus book chapters
// @Tags publications
// @Produce json
// @Security BearerAuth
// @Param department query string false "Exact department"
// @Param year query int false "Publication year"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Administrative role required"
// @Router /publications/book-chapters [get]
func (c *PublicationController) ListCampusBookChapters(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	q, ok := bindPubQuery(ctx)
	if !ok {
		return
	}

	rows, err := c.pubService.ListCampusBookChapters(ctx, ident, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	okData(ctx, rows)
}

// ListCampusPatents retrieves patents across all faculty
// @Summary List campus patents
// @Tags publications
// @Produce json
// @Security BearerAuth
// @Param department query string false "Exact department"
// @Param year query int false "Filing year"
// @Param status query string false "Patent status"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Administrative role required"
// @Router /publications/patents [get]
func (c *PublicationController) ListCampusPatents(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	q, ok := bindPubQuery(ctx)
	if !ok {
		return
	}

	rows, err := c.pubService.ListCampusPatents(ctx, ident, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	okData(ctx, rows)
}

// AddJournal attaches a journal publication to a faculty record
// @Summary Add a journal publication
// @Tags publications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param request body dto.JournalRequest true "Journal publication"
// @Success 201 {object} dto.APIResponse{data=models.JournalPublication}
// @Failure 403 {object} dto.ErrorResponse "Not your record"
// @Router /faculty/{id}/publications/journals [post]
func (c *PublicationController) AddJournal(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	facultyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.JournalRequest
	if !bindBody(ctx, &req) {
		return
	}

	j := req.ToModel(facultyID)
	id, err := c.pubService.AddJournal(ctx, ident, j)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	j.ID = id
	createdData(ctx, j)
}

// UpdateJournal replaces a journal publication's fields
// @Summary Update a journal publication
// @Tags publications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param pubId path int true "Publication ID"
// @Param request body dto.JournalRequest true "Journal publication"
// @Success 200 {object} dto.APIResponse{data=models.JournalPublication}
// @Failure 404 {object} dto.ErrorResponse "Publication not found"
// @Router /faculty/{id}/publications/journals/{pubId} [put]
func (c *PublicationController) UpdateJournal(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	facultyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	pubID, ok := parseIDParam(ctx, "pubId")
	if !ok {
		return
	}
	var req dto.JournalRequest
	if !bindBody(ctx, &req) {
		return
	}

	j := req.ToModel(facultyID)
	j.ID = pubID
	if err := c.pubService.UpdateJournal(ctx, ident, j); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	okData(ctx, j)
}

// DeleteJournal removes a journal publication
// @Summary Delete a journal publication
// @Tags publications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param pubId path int true "Publication ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Publication not found"
// @Router /faculty/{id}/publications/journals/{pubId} [delete]
func (c *PublicationController) DeleteJournal(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	if _, ok := parseIDParam(ctx, "id"); !ok {
		return
	}
	pubID, ok := parseIDParam(ctx, "pubId")
	if !ok {
		return
	}

	if err := c.pubService.DeleteJournal(ctx, ident, pubID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Journal publication deleted"))
}

// AddConference attaches a conference publication to a faculty record
// @Summary Add a conference publication
// @Tags publications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param request body dto.ConferenceRequest true "Conference publication"
// @Success 201 {object} dto.APIResponse{data=models.ConferencePublication}
// @Router /faculty/{id}/publications/conferences [post]
func (c *PublicationController) AddConference(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	facultyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.ConferenceRequest
	if !bindBody(ctx, &req) {
		return
	}

	conf := req.ToModel(facultyID)
	id, err := c.pubService.AddConference(ctx, ident, conf)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	conf.ID = id
	createdData(ctx, conf)
}

// UpdateConference replaces a conference publication's fields
// @Summary Update a conference publication
// @Tags publications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param pubId path int true "Publication ID"
// @Param request body dto.ConferenceRequest true "Conference publication"
// @Success 200 {object} dto.APIResponse{data=models.ConferencePublication}
// @Router /faculty/{id}/publications/conferences/{pubId} [put]
func (c *PublicationController) UpdateConference(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	facultyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	pubID, ok := parseIDParam(ctx, "pubId")
	if !ok {
		return
	}
	var req dto.ConferenceRequest
	if !bindBody(ctx, &req) {
		return
	}

	conf := req.ToModel(facultyID)
	conf.ID = pubID
	if err := c.pubService.UpdateConference(ctx, ident, conf); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	okData(ctx, conf)
}

// DeleteConference removes a conference publication
// @Summary Delete a conference publication
// @Tags publications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param pubId path int true "Publication ID"
// @Success 200 {object} dto.APIResponse
// @Router /faculty/{id}/publications/conferences/{pubId} [delete]
func (c *PublicationController) DeleteConference(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	if _, ok := parseIDParam(ctx, "id"); !ok {
		return
	}
	pubID, ok := parseIDParam(ctx, "pubId")
	if !ok {
		return
	}

	if err := c.pubService.DeleteConference(ctx, ident, pubID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Conference publication deleted"))
}

// AddBookChapter attaches a book chapter to a faculty record
// @Summary Add a book chapter
// @Tags publications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param request body dto.BookChapterRequest true "Book chapter"
// @Success 201 {object} dto.APIResponse{data=models.BookChapter}
// @Router /faculty/{id}/publications/book-chapters [post]
func (c *PublicationController) AddBookChapter(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	facultyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.BookChapterRequest
	if !bindBody(ctx, &req) {
		return
	}

	chapter := req.ToModel(facultyID)
	id, err := c.pubService.AddBookChapter(ctx, ident, chapter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	chapter.ID = id
	createdData(ctx, chapter)
}

// UpdateBookChapter replaces a book chapter's fields
// @Summary Update a book chapter
// @Tags publications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param pubId path int true "Publication ID"
// @Param request body dto.BookChapterRequest true "Book chapter"
// @Success 200 {object} dto.APIResponse{data=models.BookChapter}
// @Router /faculty/{id}/publications/book-chapters/{pubId} [put]
func (c *PublicationController) UpdateBookChapter(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	facultyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	pubID, ok := parseIDParam(ctx, "pubId")
	if !ok {
		return
	}
	var req dto.BookChapterRequest
	if !bindBody(ctx, &req) {
		return
	}

	chapter := req.ToModel(facultyID)
	chapter.ID = pubID
	if err := c.pubService.UpdateBookChapter(ctx, ident, chapter); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	okData(ctx, chapter)
}

// DeleteBookChapter removes a book chapter
// @Summary Delete a book chapter
// @Tags publications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param pubId path int true "Publication ID"
// @Success 200 {object} dto.APIResponse
// @Router /faculty/{id}/publications/book-chapters/{pubId} [delete]
func (c *PublicationController) DeleteBookChapter(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	if _, ok := parseIDParam(ctx, "id"); !ok {
		return
	}
	pubID, ok := parseIDParam(ctx, "pubId")
	if !ok {
		return
	}

	if err := c.pubService.DeleteBookChapter(ctx, ident, pubID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Book chapter deleted"))
}

// AddPatent attaches a patent to a faculty record
// @Summary Add a patent
// @Tags publications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param request body dto.PatentRequest true "Patent"
// @Success 201 {object} dto.APIResponse{data=models.Patent}
// @Router /faculty/{id}/publications/patents [post]
func (c *PublicationController) AddPatent(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	facultyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.PatentRequest
	if !bindBody(ctx, &req) {
		return
	}

	patent, err := req.ToModel(facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id, err := c.pubService.AddPatent(ctx, ident, patent)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	patent.ID = id
	createdData(ctx, patent)
}

// UpdatePatent replaces a patent's fields
// @Summary Update a patent
// @Tags publications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param pubId path int true "Publication ID"
// @Param request body dto.PatentRequest true "Patent"
// @Success 200 {object} dto.APIResponse{data=models.Patent}
// @Router /faculty/{id}/publications/patents/{pubId} [put]
func (c *PublicationController) UpdatePatent(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	facultyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	pubID, ok := parseIDParam(ctx, "pubId")
	if !ok {
		return
	}
	var req dto.PatentRequest
	if !bindBody(ctx, &req) {
		return
	}

	patent, err := req.ToModel(facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	patent.ID = pubID

	if err := c.pubService.UpdatePatent(ctx, ident, patent); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	okData(ctx, patent)
}

// DeletePatent removes a patent
// @Summary Delete a patent
// @Tags publications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param pubId path int true "Publication ID"
// @Success 200 {object} dto.APIResponse
// @Router /faculty/{id}/publications/patents/{pubId} [delete]
func (c *PublicationController) DeletePatent(ctx *gin.Context) {
	ident, ok := requireIdentity(ctx)
	if !ok {
		return
	}
	if _, ok := parseIDParam(ctx, "id"); !ok {
		return
	}
	pubID, ok := parseIDParam(ctx, "pubId")
	if !ok {
		return
	}

	if err := c.pubService.DeletePatent(ctx, ident, pubID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Patent deleted"))
}
