package services

import (
	"context"

	"github.com/mentorlink/backend/internal/app/models"
	"github.com/mentorlink/backend/internal/app/repositories"
	"github.com/mentorlink/backend/internal/db"
	"github.com/mentorlink/backend/internal/pkg/mapping"
	"github.com/mentorlink/backend/internal/pkg/websocket"
)

// Store interfaces consumed by the services. The concrete pgx repositories
// satisfy them implicitly; tests substitute in-memory fakes.

// StudentStore is the persistence surface for students
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	List(ctx context.Context) ([]*models.Student, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*models.Student, error)
	SetAssignedMentor(ctx context.Context, q repositories.Querier, studentID int64, mentor models.ParticipantRef) error
}

// CollegeMentorStore is the persistence surface for college mentors
type CollegeMentorStore interface {
	Create(ctx context.Context, mentor *models.CollegeMentor) error
	GetByID(ctx context.Context, id int64) (*models.CollegeMentor, error)
	GetByEmail(ctx context.Context, email string) (*models.CollegeMentor, error)
	List(ctx context.Context) ([]*models.CollegeMentor, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// IndustryMentorStore is the persistence surface for industry mentors
type IndustryMentorStore interface {
	Create(ctx context.Context, mentor *models.IndustryMentor) error
	GetByID(ctx context.Context, id int64) (*models.IndustryMentor, error)
	GetByEmail(ctx context.Context, email string) (*models.IndustryMentor, error)
	List(ctx context.Context) ([]*models.IndustryMentor, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// AssignmentStore maintains mentor membership sets
type AssignmentStore interface {
	AddStudent(ctx context.Context, q repositories.Querier, mentor models.ParticipantRef, studentID int64) error
	ListStudentIDs(ctx context.Context, mentor models.ParticipantRef) ([]int64, error)
}

// MessageStore is the append-only chat log
type MessageStore interface {
	Create(ctx context.Context, message *models.Message) error
	Conversation(ctx context.Context, a, b models.ParticipantRef) ([]*models.Message, error)
}

// ParticipantLookup resolves tagged participant references
type ParticipantLookup interface {
	Exists(ctx context.Context, ref models.ParticipantRef) (bool, error)
}

// MentorMapper is the external mapping service client
type MentorMapper interface {
	MapStudent(ctx context.Context, profile mapping.StudentProfile) ([]mapping.MentorRef, error)
}

// MessageRelay fans a stored message out to live connections
type MessageRelay interface {
	Relay(p *websocket.Payload)
}

// TxRunner runs a function within a database transaction
type TxRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}
