package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorlink/backend/internal/app/models"
	"github.com/mentorlink/backend/internal/app/repositories"
	"github.com/mentorlink/backend/internal/db"
	"github.com/mentorlink/backend/internal/pkg/mapping"
)

// In-memory fakes for the store interfaces.

type fakeMapper struct {
	refs []mapping.MentorRef
	err  error
}

func (f *fakeMapper) MapStudent(ctx context.Context, profile mapping.StudentProfile) ([]mapping.MentorRef, error) {
	return f.refs, f.err
}

type fakeCollegeMentorStore struct {
	mentors []*models.CollegeMentor
}

func (f *fakeCollegeMentorStore) Create(ctx context.Context, m *models.CollegeMentor) error {
	f.mentors = append(f.mentors, m)
	return nil
}

func (f *fakeCollegeMentorStore) GetByID(ctx context.Context, id int64) (*models.CollegeMentor, error) {
	for _, m := range f.mentors {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeCollegeMentorStore) GetByEmail(ctx context.Context, email string) (*models.CollegeMentor, error) {
	for _, m := range f.mentors {
		if m.Email == email {
			return m, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeCollegeMentorStore) List(ctx context.Context) ([]*models.CollegeMentor, error) {
	return f.mentors, nil
}

func (f *fakeCollegeMentorStore) Exists(ctx context.Context, id int64) (bool, error) {
	for _, m := range f.mentors {
		if m.ID == id {
			return true, nil
		}
	}
	return false, nil
}

type fakeIndustryMentorStore struct {
	mentors []*models.IndustryMentor
}

func (f *fakeIndustryMentorStore) Create(ctx context.Context, m *models.IndustryMentor) error {
	f.mentors = append(f.mentors, m)
	return nil
}

func (f *fakeIndustryMentorStore) GetByID(ctx context.Context, id int64) (*models.IndustryMentor, error) {
	for _, m := range f.mentors {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeIndustryMentorStore) GetByEmail(ctx context.Context, email string) (*models.IndustryMentor, error) {
	for _, m := range f.mentors {
		if m.Email == email {
			return m, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeIndustryMentorStore) List(ctx context.Context) ([]*models.IndustryMentor, error) {
	return f.mentors, nil
}

func (f *fakeIndustryMentorStore) Exists(ctx context.Context, id int64) (bool, error) {
	for _, m := range f.mentors {
		if m.ID == id {
			return true, nil
		}
	}
	return false, nil
}

type fakeStudentStore struct {
	students    map[int64]*models.Student
	assignments map[int64]models.ParticipantRef
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{
		students:    make(map[int64]*models.Student),
		assignments: make(map[int64]models.ParticipantRef),
	}
}

func (f *fakeStudentStore) Create(ctx context.Context, s *models.Student) error {
	s.ID = int64(len(f.students) + 1)
	f.students[s.ID] = s
	return nil
}

func (f *fakeStudentStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return s, nil
}

func (f *fakeStudentStore) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	for _, s := range f.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeStudentStore) List(ctx context.Context) ([]*models.Student, error) {
	out := make([]*models.Student, 0, len(f.students))
	for _, s := range f.students {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStudentStore) ListByIDs(ctx context.Context, ids []int64) ([]*models.Student, error) {
	out := make([]*models.Student, 0, len(ids))
	for _, id := range ids {
		if s, ok := f.students[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStudentStore) SetAssignedMentor(ctx context.Context, q repositories.Querier, studentID int64, mentor models.ParticipantRef) error {
	f.assignments[studentID] = mentor
	return nil
}

type fakeAssignmentStore struct {
	// mentor ref -> set of student ids
	sets map[models.ParticipantRef]map[int64]bool
	adds int
}

func newFakeAssignmentStore() *fakeAssignmentStore {
	return &fakeAssignmentStore{sets: make(map[models.ParticipantRef]map[int64]bool)}
}

func (f *fakeAssignmentStore) AddStudent(ctx context.Context, q repositories.Querier, mentor models.ParticipantRef, studentID int64) error {
	f.adds++
	if f.sets[mentor] == nil {
		f.sets[mentor] = make(map[int64]bool)
	}
	f.sets[mentor][studentID] = true
	return nil
}

func (f *fakeAssignmentStore) ListStudentIDs(ctx context.Context, mentor models.ParticipantRef) ([]int64, error) {
	ids := make([]int64, 0)
	for id := range f.sets[mentor] {
		ids = append(ids, id)
	}
	return ids, nil
}

// fakeTxRunner just runs the function; the fakes ignore the tx handle.
type fakeTxRunner struct{}

func (fakeTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	return fn(ctx, pgx.Tx(nil))
}

type matchingFixture struct {
	svc         *MatchingService
	students    *fakeStudentStore
	college     *fakeCollegeMentorStore
	industry    *fakeIndustryMentorStore
	assignments *fakeAssignmentStore
}

func newMatchingFixture(mapper MentorMapper) *matchingFixture {
	students := newFakeStudentStore()
	college := &fakeCollegeMentorStore{}
	industry := &fakeIndustryMentorStore{}
	assignments := newFakeAssignmentStore()

	svc := NewMatchingService(
		mapper, students, college, industry, assignments,
		fakeTxRunner{}, 0, zerolog.Nop(),
	)

	return &matchingFixture{
		svc:         svc,
		students:    students,
		college:     college,
		industry:    industry,
		assignments: assignments,
	}
}

func matchingStudent() *models.Student {
	return &models.Student{
		ID:          1,
		Course:      "CS",
		Year:        2,
		DeptName:    "CSE",
		CollegeName: "MS Institute",
	}
}

func TestResolveMentorUsesMappingSuggestion(t *testing.T) {
	fx := newMatchingFixture(&fakeMapper{refs: []mapping.MentorRef{{MentorID: 7}}})
	fx.college.mentors = []*models.CollegeMentor{{ID: 7, Expertise: "CS"}}

	outcome := fx.svc.ResolveMentor(context.Background(), matchingStudent())
	require.NotNil(t, outcome)
	assert.Equal(t, int64(7), outcome.MentorID)
	assert.Equal(t, models.KindCollegeMentor, outcome.MentorKind)
}

func TestResolveMentorSuggestionResolvesCollegeFirst(t *testing.T) {
	fx := newMatchingFixture(&fakeMapper{refs: []mapping.MentorRef{{MentorID: 7}}})
	// Same numeric id exists in both tables; the college mentor wins.
	fx.college.mentors = []*models.CollegeMentor{{ID: 7}}
	fx.industry.mentors = []*models.IndustryMentor{{ID: 7}}

	outcome := fx.svc.ResolveMentor(context.Background(), matchingStudent())
	require.NotNil(t, outcome)
	assert.Equal(t, models.KindCollegeMentor, outcome.MentorKind)
}

func TestResolveMentorFallsBackWhenMappingFails(t *testing.T) {
	fx := newMatchingFixture(&fakeMapper{err: errors.New("connection refused")})
	fx.college.mentors = []*models.CollegeMentor{
		{ID: 1, Expertise: "CS", Experience: 3, CollegeName: "MS Institute"},
	}

	outcome := fx.svc.ResolveMentor(context.Background(), matchingStudent())
	require.NotNil(t, outcome)
	assert.Equal(t, int64(1), outcome.MentorID)
	assert.Equal(t, models.KindCollegeMentor, outcome.MentorKind)
}

func TestResolveMentorFallsBackOnUnknownSuggestion(t *testing.T) {
	// The mapping service suggests an id that matches no mentor.
	fx := newMatchingFixture(&fakeMapper{refs: []mapping.MentorRef{{MentorID: 999}}})
	fx.industry.mentors = []*models.IndustryMentor{
		{ID: 4, Domain: "CS", Experience: 2, Company: "Acme"},
	}

	outcome := fx.svc.ResolveMentor(context.Background(), matchingStudent())
	require.NotNil(t, outcome)
	assert.Equal(t, int64(4), outcome.MentorID)
	assert.Equal(t, models.KindIndustryMentor, outcome.MentorKind)
}

func TestResolveMentorNilMapperSkipsStraightToScoring(t *testing.T) {
	fx := newMatchingFixture(nil)
	fx.college.mentors = []*models.CollegeMentor{{ID: 2, Expertise: "CS", Experience: 2}}

	outcome := fx.svc.ResolveMentor(context.Background(), matchingStudent())
	require.NotNil(t, outcome)
	assert.Equal(t, int64(2), outcome.MentorID)
}

func TestResolveMentorNoCandidatesMeansUnassigned(t *testing.T) {
	fx := newMatchingFixture(&fakeMapper{err: errors.New("down")})

	outcome := fx.svc.ResolveMentor(context.Background(), matchingStudent())
	assert.Nil(t, outcome, "no mentor at all is a valid outcome")
}

func TestResolveMentorFallbackPrefersHigherScore(t *testing.T) {
	fx := newMatchingFixture(nil)
	fx.college.mentors = []*models.CollegeMentor{
		{ID: 1, Expertise: "Marketing", Experience: 2, CollegeName: "Elsewhere"}, // 20
		{ID: 2, Expertise: "CS, Algorithms", Experience: 3, CollegeName: "MS Institute"}, // 79
	}

	outcome := fx.svc.ResolveMentor(context.Background(), matchingStudent())
	require.NotNil(t, outcome)
	assert.Equal(t, int64(2), outcome.MentorID)
}

func TestAssignCommitsBothSides(t *testing.T) {
	fx := newMatchingFixture(nil)
	fx.college.mentors = []*models.CollegeMentor{{ID: 3}}
	mentor := models.ParticipantRef{ID: 3, Kind: models.KindCollegeMentor}

	require.NoError(t, fx.svc.Assign(context.Background(), 1, mentor))

	assert.Equal(t, mentor, fx.students.assignments[1])
	assert.True(t, fx.assignments.sets[mentor][1])
}

func TestAssignIsIdempotent(t *testing.T) {
	fx := newMatchingFixture(nil)
	fx.industry.mentors = []*models.IndustryMentor{{ID: 8}}
	mentor := models.ParticipantRef{ID: 8, Kind: models.KindIndustryMentor}

	require.NoError(t, fx.svc.Assign(context.Background(), 1, mentor))
	require.NoError(t, fx.svc.Assign(context.Background(), 1, mentor))

	ids, err := fx.assignments.ListStudentIDs(context.Background(), mentor)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids)
}

func TestAssignRejectsUnknownMentor(t *testing.T) {
	fx := newMatchingFixture(nil)

	err := fx.svc.Assign(context.Background(), 1, models.ParticipantRef{ID: 42, Kind: models.KindCollegeMentor})
	require.Error(t, err)
	assert.Equal(t, 0, fx.assignments.adds)
}

func TestAssignRejectsNonMentorTarget(t *testing.T) {
	fx := newMatchingFixture(nil)

	err := fx.svc.Assign(context.Background(), 1, models.ParticipantRef{ID: 2, Kind: models.KindStudent})
	require.Error(t, err)
}
