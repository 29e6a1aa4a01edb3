package models

// ParticipantKind discriminates the three participant variants that can take
// part in mentoring and messaging. The string values are the wire values used
// in message payloads and JWT claims.
type ParticipantKind string

const (
	KindStudent        ParticipantKind = "Student"
	KindCollegeMentor  ParticipantKind = "CollegeMentor"
	KindIndustryMentor ParticipantKind = "IndustryMentor"
)

// Valid reports whether the kind is one of the three known variants.
func (k ParticipantKind) Valid() bool {
	switch k {
	case KindStudent, KindCollegeMentor, KindIndustryMentor:
		return true
	}
	return false
}

// IsMentor reports whether the kind refers to either mentor variant.
func (k ParticipantKind) IsMentor() bool {
	return k == KindCollegeMentor || k == KindIndustryMentor
}

// ParticipantRef is the tagged identity of a participant. All directory,
// room and conversation lookups carry the kind explicitly; ids are only
// unique within a kind.
type ParticipantRef struct {
	ID   int64           `json:"id"`
	Kind ParticipantKind `json:"kind"`
}

// AssignmentOutcome is the result of mentor resolution for a student.
type AssignmentOutcome struct {
	MentorID   int64           `json:"mentorId"`
	MentorKind ParticipantKind `json:"mentorKind"`
}

// Ref returns the assigned mentor as a participant reference.
func (o AssignmentOutcome) Ref() ParticipantRef {
	return ParticipantRef{ID: o.MentorID, Kind: o.MentorKind}
}
