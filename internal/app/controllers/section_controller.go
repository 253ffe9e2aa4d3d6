package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/umutk/registrar/internal/app/models/dto"
	"github.com/umutk/registrar/internal/app/services"
	"github.com/umutk/registrar/internal/middleware"
)

// SectionController handles section endpoints
type SectionController struct {
	sectionService *services.SectionService
}

// NewSectionController creates a new SectionController
func NewSectionController(sectionService *services.SectionService) *SectionController {
	return &SectionController{
		sectionService: sectionService,
	}
}

// CreateSection handles section creation
// @Summary Create a new section
// @Description Creates a new section for a course
// @Tags sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSectionRequest true "Section information"
// @Success 201 {object} dto.APIResponse{data=models.Section} "Section created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sections [post]
func (c *SectionController) CreateSection(ctx *gin.Context) {
	var req dto.CreateSectionRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	section, err := c.sectionService.CreateSection(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(section))
}

// GetSectionByID retrieves a section by ID
// @Summary Get section by ID
// @Description Retrieves a specific section with its course name resolved
// @Tags sections
// @Produce json
// @Security BearerAuth
// @Param id path int true "Section ID"
// @Success 200 {object} dto.APIResponse{data=models.Section} "Section retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid section ID"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sections/{id} [get]
func (c *SectionController) GetSectionByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "section")
	if !ok {
		return
	}

	section, err := c.sectionService.GetSection(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(section))
}

// GetAllSections retrieves all sections
// @Summary List sections
// @Description Retrieves all sections, optionally filtered by a search term
// @Tags sections
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search by id or course name"
// @Success 200 {object} dto.APIResponse{data=[]models.Section} "Sections retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sections [get]
func (c *SectionController) GetAllSections(ctx *gin.Context) {
	sections, err := c.sectionService.ListSections(ctx, ctx.Query("search"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(sections))
}

// UpdateSection handles section updates
// @Summary Update a section
// @Description Updates an existing section
// @Tags sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Section ID"
// @Param request body dto.UpdateSectionRequest true "Section information"
// @Success 200 {object} dto.APIResponse{data=models.Section} "Section updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sections/{id} [put]
func (c *SectionController) UpdateSection(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "section")
	if !ok {
		return
	}

	var req dto.UpdateSectionRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	section, err := c.sectionService.UpdateSection(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(section))
}

// DeleteSection handles section deletion
// @Summary Delete a section
// @Description Deletes a section along with its enrollments
// @Tags sections
// @Produce json
// @Security BearerAuth
// @Param id path int true "Section ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Section deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid section ID"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sections/{id} [delete]
func (c *SectionController) DeleteSection(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "section")
	if !ok {
		return
	}

	if err := c.sectionService.DeleteSection(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Section deleted successfully"}))
}
