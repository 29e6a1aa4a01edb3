package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mentorlink/backend/internal/app/models"
	"github.com/mentorlink/backend/internal/pkg/apperrors"
	"github.com/mentorlink/backend/internal/pkg/dberrors"
)

// AssignmentRepository maintains the mentor-side membership set of the
// mentor/student relation. The student side lives on the students table.
type AssignmentRepository struct {
	db *pgxpool.Pool
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// AddStudent adds a student to a mentor's set. Adding a student that is
// already a member is a no-op, so the operation is idempotent.
func (r *AssignmentRepository) AddStudent(ctx context.Context, q Querier, mentor models.ParticipantRef, studentID int64) error {
	_, err := q.Exec(ctx, `
		INSERT INTO mentor_students (mentor_id, mentor_kind, student_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (mentor_id, mentor_kind, student_id) DO NOTHING
	`, mentor.ID, mentor.Kind, studentID)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error adding student %d to mentor set: %w", studentID, err)
	}

	return nil
}

// ListStudentIDs returns the ids of the students in a mentor's set,
// ordered by id.
func (r *AssignmentRepository) ListStudentIDs(ctx context.Context, mentor models.ParticipantRef) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT student_id
		FROM mentor_students
		WHERE mentor_id = $1 AND mentor_kind = $2
		ORDER BY student_id
	`, mentor.ID, mentor.Kind)

	if err != nil {
		return nil, fmt.Errorf("error listing mentor's students: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning student id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student ids: %w", err)
	}

	return ids, nil
}
