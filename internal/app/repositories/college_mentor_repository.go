package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mentorlink/backend/internal/app/models"
	"github.com/mentorlink/backend/internal/pkg/apperrors"
	"github.com/mentorlink/backend/internal/pkg/dberrors"
)

const collegeMentorColumns = `
	id, name, email, password, phone, designation, college_name, department,
	experience, expertise, linkedin, created_at
`

// CollegeMentorRepository handles database operations for college mentors
type CollegeMentorRepository struct {
	db *pgxpool.Pool
}

// NewCollegeMentorRepository creates a new CollegeMentorRepository
func NewCollegeMentorRepository(db *pgxpool.Pool) *CollegeMentorRepository {
	return &CollegeMentorRepository{db: db}
}

// Create inserts a new college mentor and fills in the generated id and timestamp
func (r *CollegeMentorRepository) Create(ctx context.Context, mentor *models.CollegeMentor) error {
	query := `
		INSERT INTO college_mentors (
			name, email, password, phone, designation, college_name,
			department, experience, expertise, linkedin
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		mentor.Name,
		mentor.Email,
		mentor.Password,
		mentor.Phone,
		mentor.Designation,
		mentor.CollegeName,
		mentor.Department,
		mentor.Experience,
		mentor.Expertise,
		mentor.LinkedIn,
	).Scan(&mentor.ID, &mentor.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "college_mentors_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating college mentor: %w", err)
	}

	return nil
}

// GetByID retrieves a college mentor by id
func (r *CollegeMentorRepository) GetByID(ctx context.Context, id int64) (*models.CollegeMentor, error) {
	query := `SELECT ` + collegeMentorColumns + ` FROM college_mentors WHERE id = $1`

	mentor, err := r.scanMentor(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorNotFound
		}
		return nil, fmt.Errorf("error retrieving college mentor %d: %w", id, err)
	}

	return mentor, nil
}

// GetByEmail retrieves a college mentor by email for login
func (r *CollegeMentorRepository) GetByEmail(ctx context.Context, email string) (*models.CollegeMentor, error) {
	query := `SELECT ` + collegeMentorColumns + ` FROM college_mentors WHERE email = $1`

	mentor, err := r.scanMentor(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorNotFound
		}
		return nil, fmt.Errorf("error retrieving college mentor by email: %w", err)
	}

	return mentor, nil
}

// List retrieves all college mentors ordered by id. The order is stable so
// scoring ties resolve deterministically in favor of the earliest mentor.
func (r *CollegeMentorRepository) List(ctx context.Context) ([]*models.CollegeMentor, error) {
	query := `SELECT ` + collegeMentorColumns + ` FROM college_mentors ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing college mentors: %w", err)
	}
	defer rows.Close()

	mentors := make([]*models.CollegeMentor, 0)
	for rows.Next() {
		mentor, err := r.scanMentor(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning college mentor row: %w", err)
		}
		mentors = append(mentors, mentor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating college mentor rows: %w", err)
	}

	return mentors, nil
}

// Exists reports whether a college mentor row with the given id exists
func (r *CollegeMentorRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM college_mentors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking college mentor existence: %w", err)
	}
	return exists, nil
}

func (r *CollegeMentorRepository) scanMentor(row pgx.Row) (*models.CollegeMentor, error) {
	var m models.CollegeMentor
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&m.Password,
		&m.Phone,
		&m.Designation,
		&m.CollegeName,
		&m.Department,
		&m.Experience,
		&m.Expertise,
		&m.LinkedIn,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
