package dto

import "github.com/mentorlink/backend/internal/app/models"

// RegisterCollegeMentorRequest represents a college mentor registration request
type RegisterCollegeMentorRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Phone       string `json:"phone"`
	Designation string `json:"designation"`
	CollegeName string `json:"collegeName" binding:"required"`
	Department  string `json:"department"`
	Experience  int    `json:"experience" binding:"min=0"`
	Expertise   string `json:"expertise" binding:"required"`
	LinkedIn    string `json:"linkedIn"`
}

// RegisterIndustryMentorRequest represents an industry mentor registration request
type RegisterIndustryMentorRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Phone       string `json:"phone"`
	Designation string `json:"designation"`
	Company     string `json:"company" binding:"required"`
	Domain      string `json:"domain" binding:"required"`
	Experience  int    `json:"experience" binding:"min=0"`
	LinkedIn    string `json:"linkedIn"`
	Location    string `json:"location"`
}

// CollegeMentorResponse represents a college mentor in API responses
type CollegeMentorResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Designation string `json:"designation,omitempty"`
	CollegeName string `json:"collegeName"`
	Department  string `json:"department,omitempty"`
	Experience  int    `json:"experience"`
	Expertise   string `json:"expertise"`
	LinkedIn    string `json:"linkedIn,omitempty"`
}

// NewCollegeMentorResponse maps a college mentor model to its response shape
func NewCollegeMentorResponse(m *models.CollegeMentor) CollegeMentorResponse {
	return CollegeMentorResponse{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Designation: m.Designation,
		CollegeName: m.CollegeName,
		Department:  m.Department,
		Experience:  m.Experience,
		Expertise:   m.Expertise,
		LinkedIn:    m.LinkedIn,
	}
}

// NewCollegeMentorListResponse maps a slice of college mentor models
func NewCollegeMentorListResponse(mentors []*models.CollegeMentor) []CollegeMentorResponse {
	out := make([]CollegeMentorResponse, 0, len(mentors))
	for _, m := range mentors {
		out = append(out, NewCollegeMentorResponse(m))
	}
	return out
}

// IndustryMentorResponse represents an industry mentor in API responses
type IndustryMentorResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Designation string `json:"designation,omitempty"`
	Company     string `json:"company"`
	Domain      string `json:"domain"`
	Experience  int    `json:"experience"`
	LinkedIn    string `json:"linkedIn,omitempty"`
	Location    string `json:"location,omitempty"`
}

// NewIndustryMentorResponse maps an industry mentor model to its response shape
func NewIndustryMentorResponse(m *models.IndustryMentor) IndustryMentorResponse {
	return IndustryMentorResponse{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Designation: m.Designation,
		Company:     m.Company,
		Domain:      m.Domain,
		Experience:  m.Experience,
		LinkedIn:    m.LinkedIn,
		Location:    m.Location,
	}
}

// NewIndustryMentorListResponse maps a slice of industry mentor models
func NewIndustryMentorListResponse(mentors []*models.IndustryMentor) []IndustryMentorResponse {
	out := make([]IndustryMentorResponse, 0, len(mentors))
	for _, m := range mentors {
		out = append(out, NewIndustryMentorResponse(m))
	}
	return out
}
