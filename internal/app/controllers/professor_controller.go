package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/umutk/registrar/internal/app/models/dto"
	"github.com/umutk/registrar/internal/app/services"
	"github.com/umutk/registrar/internal/middleware"
)

// ProfessorController handles professor endpoints
type ProfessorController struct {
	professorService  *services.ProfessorService
	courseService     *services.CourseService
	enrollmentService *services.EnrollmentService
}

// NewProfessorController creates a new ProfessorController
func NewProfessorController(
	professorService *services.ProfessorService,
	courseService *services.CourseService,
	enrollmentService *services.EnrollmentService,
) *ProfessorController {
	return &ProfessorController{
		professorService:  professorService,
		courseService:     courseService,
		enrollmentService: enrollmentService,
	}
}

// CreateProfessor handles professor creation
// @Summary Create a new professor
// @Description Creates a new professor account with hashed credentials
// @Tags professors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProfessorRequest true "Professor information"
// @Success 201 {object} dto.APIResponse{data=models.Professor} "Professor created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 409 {object} dto.ErrorResponse "Username already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors [post]
func (c *ProfessorController) CreateProfessor(ctx *gin.Context) {
	var req dto.CreateProfessorRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	professor, err := c.professorService.CreateProfessor(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(professor))
}

// GetProfessorByID retrieves a professor by ID
// @Summary Get professor by ID
// @Description Retrieves a specific professor by its ID
// @Tags professors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Professor ID"
// @Success 200 {object} dto.APIResponse{data=models.Professor} "Professor retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid professor ID"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors/{id} [get]
func (c *ProfessorController) GetProfessorByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "professor")
	if !ok {
		return
	}

	professor, err := c.professorService.GetProfessor(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(professor))
}

// GetAllProfessors retrieves all professors
// @Summary List professors
// @Description Retrieves all professors, optionally filtered by a search term
// @Tags professors
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search by id or name"
// @Success 200 {object} dto.APIResponse{data=[]models.Professor} "Professors retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors [get]
func (c *ProfessorController) GetAllProfessors(ctx *gin.Context) {
	professors, err := c.professorService.ListProfessors(ctx, ctx.Query("search"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(professors))
}

// UpdateProfessor handles professor updates
// @Summary Update a professor
// @Description Updates an existing professor; a blank password keeps the stored one
// @Tags professors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Professor ID"
// @Param request body dto.UpdateProfessorRequest true "Professor information"
// @Success 200 {object} dto.APIResponse{data=models.Professor} "Professor updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 409 {object} dto.ErrorResponse "Username already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors/{id} [put]
func (c *ProfessorController) UpdateProfessor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "professor")
	if !ok {
		return
	}

	var req dto.UpdateProfessorRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	professor, err := c.professorService.UpdateProfessor(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(professor))
}

// DeleteProfessor handles professor deletion
// @Summary Delete a professor
// @Description Deletes a professor; their courses are kept but detached
// @Tags professors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Professor ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Professor deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid professor ID"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors/{id} [delete]
func (c *ProfessorController) DeleteProfessor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "professor")
	if !ok {
		return
	}

	if err := c.professorService.DeleteProfessor(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Professor deleted successfully"}))
}

// GetMyCourses lists the authenticated professor's courses
// @Summary List my courses
// @Description Retrieves the courses assigned to the authenticated professor
// @Tags professors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors/me/courses [get]
func (c *ProfessorController) GetMyCourses(ctx *gin.Context) {
	professorID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	courses, err := c.courseService.ListCoursesByProfessor(ctx, professorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// GetMyStudents lists students enrolled in the professor's courses
// @Summary List my students
// @Description Retrieves the students enrolled in the authenticated professor's courses
// @Tags professors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.CourseStudent} "Students retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors/me/students [get]
func (c *ProfessorController) GetMyStudents(ctx *gin.Context) {
	professorID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	students, err := c.enrollmentService.ListProfessorStudents(ctx, professorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}
