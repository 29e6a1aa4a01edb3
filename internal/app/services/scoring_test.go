package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorlink/backend/internal/app/models"
)

func scoringStudent() *models.Student {
	return &models.Student{
		ID:          1,
		Course:      "CS",
		Year:        2,
		CollegeName: "MS Institute",
	}
}

func TestScoreMentorFormula(t *testing.T) {
	student := scoringStudent()

	// Expertise covers the course, experience one year off, same college:
	// 50 + (20 - 1) + 10
	strong := MentorCandidate{
		Ref:         models.ParticipantRef{ID: 1, Kind: models.KindCollegeMentor},
		Expertise:   "CS, Algorithms",
		Experience:  3,
		Affiliation: "MS Institute",
	}
	assert.Equal(t, 79, ScoreMentor(student, strong))

	// No expertise match, experience exactly matching the year, different
	// employer: just the full proximity component.
	weak := MentorCandidate{
		Ref:         models.ParticipantRef{ID: 2, Kind: models.KindIndustryMentor},
		Expertise:   "Marketing",
		Experience:  2,
		Affiliation: "Acme",
	}
	assert.Equal(t, 20, ScoreMentor(student, weak))
}

func TestScoreMentorExperienceProximityFloorsAtZero(t *testing.T) {
	student := scoringStudent()

	veteran := MentorCandidate{
		Expertise:   "Law",
		Experience:  40, // 20 - |40-2| is negative, contributes nothing
		Affiliation: "Elsewhere",
	}
	assert.Equal(t, 0, ScoreMentor(student, veteran))
}

func TestScoreMentorExpertiseIsSubstringMatch(t *testing.T) {
	student := scoringStudent()

	candidate := MentorCandidate{Expertise: "CSE and embedded systems", Experience: 40}
	assert.Equal(t, 50, ScoreMentor(student, candidate), "course may occur inside a longer expertise token")
}

func TestScoreMentorIsPure(t *testing.T) {
	student := scoringStudent()
	candidate := MentorCandidate{Expertise: "CS", Experience: 5, Affiliation: "MS Institute"}

	first := ScoreMentor(student, candidate)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ScoreMentor(student, candidate))
	}
}

func TestSelectBestMentorPicksHighestScore(t *testing.T) {
	student := scoringStudent()

	candidates := []MentorCandidate{
		{Ref: models.ParticipantRef{ID: 1, Kind: models.KindCollegeMentor}, Expertise: "Marketing", Experience: 2},
		{Ref: models.ParticipantRef{ID: 2, Kind: models.KindCollegeMentor}, Expertise: "CS", Experience: 3, Affiliation: "MS Institute"},
	}

	best := SelectBestMentor(student, candidates)
	require.NotNil(t, best)
	assert.Equal(t, int64(2), best.Ref.ID)
}

func TestSelectBestMentorTieBreaksOnFirst(t *testing.T) {
	student := scoringStudent()

	// Identical scoring inputs; the earlier candidate must win.
	candidates := []MentorCandidate{
		{Ref: models.ParticipantRef{ID: 5, Kind: models.KindCollegeMentor}, Expertise: "CS", Experience: 2},
		{Ref: models.ParticipantRef{ID: 9, Kind: models.KindIndustryMentor}, Expertise: "CS", Experience: 2},
	}

	best := SelectBestMentor(student, candidates)
	require.NotNil(t, best)
	assert.Equal(t, int64(5), best.Ref.ID)
}

func TestSelectBestMentorNoCandidates(t *testing.T) {
	assert.Nil(t, SelectBestMentor(scoringStudent(), nil))
	assert.Nil(t, SelectBestMentor(scoringStudent(), []MentorCandidate{}))
}

func TestSelectBestMentorZeroScoreStillBeatsNoMentor(t *testing.T) {
	student := scoringStudent()

	candidates := []MentorCandidate{
		{Ref: models.ParticipantRef{ID: 3, Kind: models.KindIndustryMentor}, Expertise: "Law", Experience: 40},
	}

	best := SelectBestMentor(student, candidates)
	require.NotNil(t, best, "a candidate scoring zero is still better than leaving the student unassigned")
	assert.Equal(t, int64(3), best.Ref.ID)
}
