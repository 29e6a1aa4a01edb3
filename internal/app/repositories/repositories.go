package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgx execution methods shared by *pgxpool.Pool and
// pgx.Tx. Repository methods that must take part in a caller-managed
// transaction accept it instead of touching the pool directly.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository        *StudentRepository
	CollegeMentorRepository  *CollegeMentorRepository
	IndustryMentorRepository *IndustryMentorRepository
	AssignmentRepository     *AssignmentRepository
	MessageRepository        *MessageRepository
	ParticipantDirectory     *ParticipantDirectory
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	studentRepo := NewStudentRepository(db)
	collegeRepo := NewCollegeMentorRepository(db)
	industryRepo := NewIndustryMentorRepository(db)

	return &Repositories{
		StudentRepository:        studentRepo,
		CollegeMentorRepository:  collegeRepo,
		IndustryMentorRepository: industryRepo,
		AssignmentRepository:     NewAssignmentRepository(db),
		MessageRepository:        NewMessageRepository(db),
		ParticipantDirectory:     NewParticipantDirectory(studentRepo, collegeRepo, industryRepo),
	}
}
