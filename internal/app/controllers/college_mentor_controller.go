package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mentorlink/backend/internal/app/models/dto"
	"github.com/mentorlink/backend/internal/app/services"
	"github.com/mentorlink/backend/internal/middleware"
)

// CollegeMentorController handles college mentor operations
type CollegeMentorController struct {
	mentorService *services.CollegeMentorService
}

// NewCollegeMentorController creates a new CollegeMentorController
func NewCollegeMentorController(mentorService *services.CollegeMentorService) *CollegeMentorController {
	return &CollegeMentorController{mentorService: mentorService}
}

// Register godoc
// @Summary Register a new college mentor
// @Tags college-mentors
// @Accept json
// @Produce json
// @Param request body dto.RegisterCollegeMentorRequest true "College mentor registration data"
// @Success 201 {object} dto.APIResponse{data=dto.CollegeMentorResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /college-mentors/register [post]
func (c *CollegeMentorController) Register(ctx *gin.Context) {
	var req dto.RegisterCollegeMentorRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	mentor, err := c.mentorService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewCollegeMentorResponse(mentor), "College mentor registered"))
}

// Login godoc
// @Summary College mentor login
// @Tags college-mentors
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse}
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /college-mentors/login [post]
func (c *CollegeMentorController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	mentor, token, err := c.mentorService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.AuthResponse{
		Token: *token,
		User:  dto.NewCollegeMentorResponse(mentor),
	}, "Login successful"))
}

// List godoc
// @Summary List all college mentors
// @Tags college-mentors
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CollegeMentorResponse}
// @Router /college-mentors [get]
func (c *CollegeMentorController) List(ctx *gin.Context) {
	mentors, err := c.mentorService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewCollegeMentorListResponse(mentors), ""))
}

// GetByID godoc
// @Summary Get a college mentor by id
// @Tags college-mentors
// @Produce json
// @Param id path int true "Mentor ID"
// @Success 200 {object} dto.APIResponse{data=dto.CollegeMentorResponse}
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Router /college-mentors/{id} [get]
func (c *CollegeMentorController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid mentor ID")))
		return
	}

	mentor, err := c.mentorService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewCollegeMentorResponse(mentor), ""))
}

// AssignedStudents godoc
// @Summary List the students assigned to a college mentor
// @Tags college-mentors
// @Produce json
// @Param id path int true "Mentor ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse}
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Router /college-mentors/{id}/students [get]
func (c *CollegeMentorController) AssignedStudents(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid mentor ID")))
		return
	}

	students, err := c.mentorService.AssignedStudents(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewStudentListResponse(students), ""))
}
