package models

import "time"

// CollegeMentor defines the college mentor model based on the
// 'college_mentors' table
type CollegeMentor struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Name        string    `json:"name" db:"name" example:"Dr. Meena Iyer"`
	Email       string    `json:"email" db:"email" example:"meena@college.edu"`
	Password    string    `json:"-" db:"password"`
	Phone       string    `json:"phone,omitempty" db:"phone"`
	Designation string    `json:"designation,omitempty" db:"designation" example:"Professor"`
	CollegeName string    `json:"collegeName" db:"college_name" example:"MS Institute"`
	Department  string    `json:"department,omitempty" db:"department" example:"CSE"`
	Experience  int       `json:"experience" db:"experience" example:"8"` // years
	Expertise   string    `json:"expertise" db:"expertise" example:"CS, Algorithms"`
	LinkedIn    string    `json:"linkedIn,omitempty" db:"linkedin"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Ref returns the mentor's participant reference.
func (m *CollegeMentor) Ref() ParticipantRef {
	return ParticipantRef{ID: m.ID, Kind: KindCollegeMentor}
}

// IndustryMentor defines the industry mentor model based on the
// 'industry_mentors' table
type IndustryMentor struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Name        string    `json:"name" db:"name" example:"Rahul Nair"`
	Email       string    `json:"email" db:"email" example:"rahul@acme.io"`
	Password    string    `json:"-" db:"password"`
	Phone       string    `json:"phone,omitempty" db:"phone"`
	Designation string    `json:"designation,omitempty" db:"designation" example:"Senior Engineer"`
	Company     string    `json:"company" db:"company" example:"Acme"`
	Domain      string    `json:"domain" db:"domain" example:"Web Dev"` // area of expertise
	Experience  int       `json:"experience" db:"experience" example:"6"`
	LinkedIn    string    `json:"linkedIn,omitempty" db:"linkedin"`
	Location    string    `json:"location,omitempty" db:"location"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Ref returns the mentor's participant reference.
func (m *IndustryMentor) Ref() ParticipantRef {
	return ParticipantRef{ID: m.ID, Kind: KindIndustryMentor}
}
