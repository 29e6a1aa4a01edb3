package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID          int64  `json:"id" db:"id" example:"1"`
	Name        string `json:"name" db:"name" example:"Asha Rao"`
	USN         string `json:"usn" db:"usn" example:"1MS21CS042"` // University serial number, unique
	Email       string `json:"email" db:"email" example:"asha@college.edu"`
	Password    string `json:"-" db:"password"` // bcrypt hash, never serialized
	Phone       string `json:"phone,omitempty" db:"phone"`
	Course      string `json:"course" db:"course" example:"CS"`
	Year        int    `json:"year" db:"year" example:"2"`
	Semester    string `json:"semester,omitempty" db:"semester"`
	DeptName    string `json:"deptName" db:"dept_name" example:"CSE"`
	CollegeName string `json:"collegeName" db:"college_name" example:"MS Institute"`
	Branch      string `json:"branch,omitempty" db:"branch"`

	// At most one mentor assignment total, of either kind. Both fields are
	// nil while the student is unassigned.
	AssignedMentorID   *int64           `json:"assignedMentorId,omitempty" db:"assigned_mentor_id"`
	AssignedMentorKind *ParticipantKind `json:"assignedMentorKind,omitempty" db:"assigned_mentor_kind"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// AssignedMentor returns the assigned mentor reference, or nil when the
// student is unassigned.
func (s *Student) AssignedMentor() *ParticipantRef {
	if s.AssignedMentorID == nil || s.AssignedMentorKind == nil {
		return nil
	}
	return &ParticipantRef{ID: *s.AssignedMentorID, Kind: *s.AssignedMentorKind}
}

// Ref returns the student's participant reference.
func (s *Student) Ref() ParticipantRef {
	return ParticipantRef{ID: s.ID, Kind: KindStudent}
}
