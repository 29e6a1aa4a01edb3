package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/mentorlink/backend/internal/app/models"
	"github.com/mentorlink/backend/internal/pkg/apperrors"
	"github.com/mentorlink/backend/internal/pkg/mapping"
)

// MatchingService resolves a mentor for a student and commits assignments.
// Resolution is best-effort: a student is never rejected because no mentor
// could be found, it just stays unassigned.
type MatchingService struct {
	mapper          MentorMapper
	students        StudentStore
	collegeMentors  CollegeMentorStore
	industryMentors IndustryMentorStore
	assignments     AssignmentStore
	tx              TxRunner
	mappingTimeout  time.Duration
	logger          zerolog.Logger
}

// NewMatchingService creates a new MatchingService. A nil mapper disables
// the external mapping service; resolution then goes straight to the local
// scoring fallback.
func NewMatchingService(
	mapper MentorMapper,
	students StudentStore,
	collegeMentors CollegeMentorStore,
	industryMentors IndustryMentorStore,
	assignments AssignmentStore,
	tx TxRunner,
	mappingTimeout time.Duration,
	logger zerolog.Logger,
) *MatchingService {
	if mappingTimeout <= 0 {
		mappingTimeout = mapping.DefaultTimeout
	}
	return &MatchingService{
		mapper:          mapper,
		students:        students,
		collegeMentors:  collegeMentors,
		industryMentors: industryMentors,
		assignments:     assignments,
		tx:              tx,
		mappingTimeout:  mappingTimeout,
		logger:          logger,
	}
}

// ResolveMentor picks a mentor for the student. The external mapping service
// is consulted first; any failure there, or a suggestion that matches no
// known mentor, falls back to local scoring. Returns nil when no mentor can
// be resolved at all, which is a valid outcome.
func (s *MatchingService) ResolveMentor(ctx context.Context, student *models.Student) *models.AssignmentOutcome {
	if outcome := s.resolveViaMapping(ctx, student); outcome != nil {
		return outcome
	}
	return s.resolveViaScoring(ctx, student)
}

// Assign commits a mentor assignment: the student's mentor field and the
// mentor's student set change together or not at all. Re-assigning the same
// pair is idempotent.
func (s *MatchingService) Assign(ctx context.Context, studentID int64, mentor models.ParticipantRef) error {
	if !mentor.Kind.IsMentor() {
		return apperrors.NewValidationError("assignment target must be a mentor")
	}

	exists, err := s.mentorExists(ctx, mentor)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrMentorNotFound
	}

	return s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.students.SetAssignedMentor(ctx, tx, studentID, mentor); err != nil {
			return err
		}
		return s.assignments.AddStudent(ctx, tx, mentor, studentID)
	})
}

func (s *MatchingService) resolveViaMapping(ctx context.Context, student *models.Student) *models.AssignmentOutcome {
	if s.mapper == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.mappingTimeout)
	defer cancel()

	suggestions, err := s.mapper.MapStudent(ctx, mapping.StudentProfile{
		Course:   student.Course,
		Year:     student.Year,
		DeptName: student.DeptName,
	})
	if err != nil {
		s.logger.Warn().
			Err(err).
			Int64("studentID", student.ID).
			Msg("Mapping service unavailable, using scoring fallback")
		return nil
	}
	if len(suggestions) == 0 {
		return nil
	}

	// The service ranks its suggestions; only the top one is considered.
	mentorID := suggestions[0].MentorID

	// The suggestion carries a bare id. College mentors are checked first;
	// an id present in both tables resolves to the college mentor.
	if ok, err := s.collegeMentors.Exists(ctx, mentorID); err == nil && ok {
		return &models.AssignmentOutcome{MentorID: mentorID, MentorKind: models.KindCollegeMentor}
	}
	if ok, err := s.industryMentors.Exists(ctx, mentorID); err == nil && ok {
		return &models.AssignmentOutcome{MentorID: mentorID, MentorKind: models.KindIndustryMentor}
	}

	s.logger.Warn().
		Int64("studentID", student.ID).
		Int64("suggestedMentorID", mentorID).
		Msg("Mapping suggestion matches no known mentor, using scoring fallback")
	return nil
}

func (s *MatchingService) resolveViaScoring(ctx context.Context, student *models.Student) *models.AssignmentOutcome {
	candidates := s.loadCandidates(ctx)

	best := SelectBestMentor(student, candidates)
	if best == nil {
		s.logger.Info().
			Int64("studentID", student.ID).
			Msg("No mentor candidates available, student stays unassigned")
		return nil
	}

	return &models.AssignmentOutcome{MentorID: best.Ref.ID, MentorKind: best.Ref.Kind}
}

// loadCandidates gathers every mentor of both kinds in a stable order,
// college mentors first, so score ties resolve the same way on every run.
func (s *MatchingService) loadCandidates(ctx context.Context) []MentorCandidate {
	var candidates []MentorCandidate

	college, err := s.collegeMentors.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list college mentors for scoring")
	}
	for _, m := range college {
		candidates = append(candidates, collegeCandidate(m))
	}

	industry, err := s.industryMentors.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list industry mentors for scoring")
	}
	for _, m := range industry {
		candidates = append(candidates, industryCandidate(m))
	}

	return candidates
}

func (s *MatchingService) mentorExists(ctx context.Context, mentor models.ParticipantRef) (bool, error) {
	switch mentor.Kind {
	case models.KindCollegeMentor:
		return s.collegeMentors.Exists(ctx, mentor.ID)
	case models.KindIndustryMentor:
		return s.industryMentors.Exists(ctx, mentor.ID)
	default:
		return false, nil
	}
}
