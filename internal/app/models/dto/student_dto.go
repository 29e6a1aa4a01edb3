package dto

import "github.com/mentorlink/backend/internal/app/models"

// RegisterStudentRequest represents a student registration request. At most
// one of CollegeMentorID and IndustryMentorID may be set; when neither is,
// a mentor is resolved automatically.
type RegisterStudentRequest struct {
	Name        string `json:"name" binding:"required"`
	USN         string `json:"usn" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Phone       string `json:"phone"`
	Course      string `json:"course" binding:"required"`
	Year        int    `json:"year" binding:"required,min=1"`
	Semester    string `json:"semester"`
	DeptName    string `json:"deptName" binding:"required"`
	CollegeName string `json:"collegeName" binding:"required"`
	Branch      string `json:"branch"`

	CollegeMentorID  *int64 `json:"collegeMentorId" binding:"omitempty,min=1"`
	IndustryMentorID *int64 `json:"industryMentorId" binding:"omitempty,min=1"`
}

// StudentResponse represents a student in API responses
type StudentResponse struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	USN                string  `json:"usn"`
	Email              string  `json:"email"`
	Phone              string  `json:"phone,omitempty"`
	Course             string  `json:"course"`
	Year               int     `json:"year"`
	Semester           string  `json:"semester,omitempty"`
	DeptName           string  `json:"deptName"`
	CollegeName        string  `json:"collegeName"`
	Branch             string  `json:"branch,omitempty"`
	AssignedMentorID   *int64  `json:"assignedMentorId,omitempty"`
	AssignedMentorKind *string `json:"assignedMentorKind,omitempty"`
}

// NewStudentResponse maps a student model to its response shape
func NewStudentResponse(s *models.Student) StudentResponse {
	resp := StudentResponse{
		ID:          s.ID,
		Name:        s.Name,
		USN:         s.USN,
		Email:       s.Email,
		Phone:       s.Phone,
		Course:      s.Course,
		Year:        s.Year,
		Semester:    s.Semester,
		DeptName:    s.DeptName,
		CollegeName: s.CollegeName,
		Branch:      s.Branch,
	}
	if s.AssignedMentorID != nil && s.AssignedMentorKind != nil {
		resp.AssignedMentorID = s.AssignedMentorID
		kind := string(*s.AssignedMentorKind)
		resp.AssignedMentorKind = &kind
	}
	return resp
}

// NewStudentListResponse maps a slice of student models
func NewStudentListResponse(students []*models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, NewStudentResponse(s))
	}
	return out
}
