package services

import (
	"strings"

	"github.com/mentorlink/backend/internal/app/models"
)

// Scoring weights for the local mentor fallback. A mentor whose expertise
// covers the student's course dominates; proximity of experience to the
// student's year refines within that; a shared affiliation breaks near-ties.
const (
	expertiseMatchScore   = 50
	experienceScoreCeil   = 20
	affiliationMatchScore = 10

	// noCandidateScore is below any reachable score, so any candidate at
	// all beats "no mentor".
	noCandidateScore = -999
)

// MentorCandidate is the scoring view of a mentor of either kind.
type MentorCandidate struct {
	Ref models.ParticipantRef

	// Free-text expertise; a mentor covers a course when the course name
	// occurs as a substring.
	Expertise string

	// Years of professional experience
	Experience int

	// Institution for college mentors, employer for industry mentors
	Affiliation string
}

// collegeCandidate adapts a college mentor for scoring
func collegeCandidate(m *models.CollegeMentor) MentorCandidate {
	return MentorCandidate{
		Ref:         m.Ref(),
		Expertise:   m.Expertise,
		Experience:  m.Experience,
		Affiliation: m.CollegeName,
	}
}

// industryCandidate adapts an industry mentor for scoring
func industryCandidate(m *models.IndustryMentor) MentorCandidate {
	return MentorCandidate{
		Ref:         m.Ref(),
		Expertise:   m.Domain,
		Experience:  m.Experience,
		Affiliation: m.Company,
	}
}

// ScoreMentor computes the affinity of one candidate to one student. The
// function is pure: equal inputs always produce equal scores.
func ScoreMentor(student *models.Student, candidate MentorCandidate) int {
	score := 0

	if strings.Contains(candidate.Expertise, student.Course) {
		score += expertiseMatchScore
	}

	gap := candidate.Experience - student.Year
	if gap < 0 {
		gap = -gap
	}
	if proximity := experienceScoreCeil - gap; proximity > 0 {
		score += proximity
	}

	if candidate.Affiliation == student.CollegeName {
		score += affiliationMatchScore
	}

	return score
}

// SelectBestMentor picks the highest-scoring candidate for a student. On a
// tie the earliest candidate wins; callers pass candidates in a stable order
// so repeated runs select the same mentor. Returns nil when there are no
// candidates.
func SelectBestMentor(student *models.Student, candidates []MentorCandidate) *MentorCandidate {
	best := noCandidateScore
	var selected *MentorCandidate

	for i := range candidates {
		if score := ScoreMentor(student, candidates[i]); score > best {
			best = score
			selected = &candidates[i]
		}
	}

	return selected
}
