package repositories

import (
	"context"

	"github.com/mentorlink/backend/internal/app/models"
	"github.com/mentorlink/backend/internal/pkg/apperrors"
)

// ParticipantDirectory resolves tagged participant references against the
// three participant tables.
type ParticipantDirectory struct {
	students        *StudentRepository
	collegeMentors  *CollegeMentorRepository
	industryMentors *IndustryMentorRepository
}

// NewParticipantDirectory creates a new ParticipantDirectory
func NewParticipantDirectory(
	students *StudentRepository,
	collegeMentors *CollegeMentorRepository,
	industryMentors *IndustryMentorRepository,
) *ParticipantDirectory {
	return &ParticipantDirectory{
		students:        students,
		collegeMentors:  collegeMentors,
		industryMentors: industryMentors,
	}
}

// Exists reports whether the referenced participant exists. An unknown kind
// is a validation error, not a lookup miss.
func (d *ParticipantDirectory) Exists(ctx context.Context, ref models.ParticipantRef) (bool, error) {
	switch ref.Kind {
	case models.KindStudent:
		return d.students.Exists(ctx, ref.ID)
	case models.KindCollegeMentor:
		return d.collegeMentors.Exists(ctx, ref.ID)
	case models.KindIndustryMentor:
		return d.industryMentors.Exists(ctx, ref.ID)
	default:
		return false, apperrors.NewValidationError("unknown participant kind: " + string(ref.Kind))
	}
}
