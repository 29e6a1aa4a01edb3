package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mentorlink/backend/internal/app/models/dto"
	"github.com/mentorlink/backend/internal/app/services"
	"github.com/mentorlink/backend/internal/middleware"
)

// IndustryMentorController handles industry mentor operations
type IndustryMentorController struct {
	mentorService *services.IndustryMentorService
}

// NewIndustryMentorController creates a new IndustryMentorController
func NewIndustryMentorController(mentorService *services.IndustryMentorService) *IndustryMentorController {
	return &IndustryMentorController{mentorService: mentorService}
}

// Register godoc
// @Summary Register a new industry mentor
// @Tags industry-mentors
// @Accept json
// @Produce json
// @Param request body dto.RegisterIndustryMentorRequest true "Industry mentor registration data"
// @Success 201 {object} dto.APIResponse{data=dto.IndustryMentorResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /industry-mentors/register [post]
func (c *IndustryMentorController) Register(ctx *gin.Context) {
	var req dto.RegisterIndustryMentorRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	mentor, err := c.mentorService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewIndustryMentorResponse(mentor), "Industry mentor registered"))
}

// Login godoc
// @Summary Industry mentor login
// @Tags industry-mentors
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse}
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /industry-mentors/login [post]
func (c *IndustryMentorController) Login(ctx *gin.Context) {
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
		User:  dto.NewIndustryMentorResponse(mentor),
	}, "Login successful"))
}

// List godoc
// @Summary List all industry mentors
// @Tags industry-mentors
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.IndustryMentorResponse}
// @Router /industry-mentors [get]
func (c *IndustryMentorController) List(ctx *gin.Context) {
	mentors, err := c.mentorService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewIndustryMentorListResponse(mentors), ""))
}

// GetByID godoc
// @Summary Get an industry mentor by id
// @Tags industry-mentors
// @Produce json
// @Param id path int true "Mentor ID"
// @Success 200 {object} dto.APIResponse{data=dto.IndustryMentorResponse}
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Router /industry-mentors/{id} [get]
func (c *IndustryMentorController) GetByID(ctx *gin.Context) {
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

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewIndustryMentorResponse(mentor), ""))
}

// AssignedStudents godoc
// @Summary List the students assigned to an industry mentor
// @Tags industry-mentors
// @Produce json
// @Param id path int true "Mentor ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse}
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Router /industry-mentors/{id}/students [get]
func (c *IndustryMentorController) AssignedStudents(ctx *gin.Context) {
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
