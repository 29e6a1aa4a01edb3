package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mentorlink/backend/internal/app/models"
	"github.com/mentorlink/backend/internal/pkg/apperrors"
	"github.com/mentorlink/backend/internal/pkg/dberrors"
)

const studentColumns = `
	id, name, usn, email, password, phone, course, year, semester,
	dept_name, college_name, branch, assigned_mentor_id, assigned_mentor_kind,
	created_at
`

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts a new student and fills in the generated id and timestamp
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (
			name, usn, email, password, phone, course, year, semester,
			dept_name, college_name, branch
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		student.Name,
		student.USN,
		student.Email,
		student.Password,
		student.Phone,
		student.Course,
		student.Year,
		student.Semester,
		student.DeptName,
		student.CollegeName,
		student.Branch,
	).Scan(&student.ID, &student.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "students_usn_key") {
			return apperrors.ErrUSNAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by id
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := r.scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student %d: %w", id, err)
	}

	return student, nil
}

// GetByEmail retrieves a student by email for login
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE email = $1`

	student, err := r.scanStudent(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by email: %w", err)
	}

	return student, nil
}

// List retrieves all students ordered by id
func (r *StudentRepository) List(ctx context.Context) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	return r.collectStudents(rows)
}

// ListByIDs retrieves the students whose ids are in the given set, ordered
// by id. Missing ids are silently skipped.
func (r *StudentRepository) ListByIDs(ctx context.Context, ids []int64) ([]*models.Student, error) {
	if len(ids) == 0 {
		return []*models.Student{}, nil
	}

	queryBuilder := squirrel.Select(
		"id", "name", "usn", "email", "password", "phone", "course", "year",
		"semester", "dept_name", "college_name", "branch",
		"assigned_mentor_id", "assigned_mentor_kind", "created_at",
	).
		From("students").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students by ids: %w", err)
	}
	defer rows.Close()

	return r.collectStudents(rows)
}

// Exists reports whether a student row with the given id exists
func (r *StudentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

// SetAssignedMentor records the student's mentor assignment. Pass it the
// querier of an enclosing transaction so the two-sided commit stays atomic.
func (r *StudentRepository) SetAssignedMentor(ctx context.Context, q Querier, studentID int64, mentor models.ParticipantRef) error {
	result, err := q.Exec(ctx, `
		UPDATE students
		SET assigned_mentor_id = $1, assigned_mentor_kind = $2
		WHERE id = $3
	`, mentor.ID, mentor.Kind, studentID)

	if err != nil {
		return fmt.Errorf("error assigning mentor to student %d: %w", studentID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

func (r *StudentRepository) scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.USN,
		&s.Email,
		&s.Password,
		&s.Phone,
		&s.Course,
		&s.Year,
		&s.Semester,
		&s.DeptName,
		&s.CollegeName,
		&s.Branch,
		&s.AssignedMentorID,
		&s.AssignedMentorKind,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepository) collectStudents(rows pgx.Rows) ([]*models.Student, error) {
	students := make([]*models.Student, 0)
	for rows.Next() {
		student, err := r.scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}
