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

const industryMentorColumns = `
	id, name, email, password, phone, designation, company, domain,
	experience, linkedin, location, created_at
`

// IndustryMentorRepository handles database operations for industry mentors
type IndustryMentorRepository struct {
	db *pgxpool.Pool
}

// NewIndustryMentorRepository creates a new IndustryMentorRepository
func NewIndustryMentorRepository(db *pgxpool.Pool) *IndustryMentorRepository {
	return &IndustryMentorRepository{db: db}
}

// Create inserts a new industry mentor and fills in the generated id and timestamp
func (r *IndustryMentorRepository) Create(ctx context.Context, mentor *models.IndustryMentor) error {
	query := `
		INSERT INTO industry_mentors (
			name, email, password, phone, designation, company, domain,
			experience, linkedin, location
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
		mentor.Company,
		mentor.Domain,
		mentor.Experience,
		mentor.LinkedIn,
		mentor.Location,
	).Scan(&mentor.ID, &mentor.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "industry_mentors_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating industry mentor: %w", err)
	}

	return nil
}

// GetByID retrieves an industry mentor by id
func (r *IndustryMentorRepository) GetByID(ctx context.Context, id int64) (*models.IndustryMentor, error) {
	query := `SELECT ` + industryMentorColumns + ` FROM industry_mentors WHERE id = $1`

	mentor, err := r.scanMentor(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorNotFound
		}
		return nil, fmt.Errorf("error retrieving industry mentor %d: %w", id, err)
	}

	return mentor, nil
}

// GetByEmail retrieves an industry mentor by email for login
func (r *IndustryMentorRepository) GetByEmail(ctx context.Context, email string) (*models.IndustryMentor, error) {
	query := `SELECT ` + industryMentorColumns + ` FROM industry_mentors WHERE email = $1`

	mentor, err := r.scanMentor(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorNotFound
		}
		return nil, fmt.Errorf("error retrieving industry mentor by email: %w", err)
	}

	return mentor, nil
}

// List retrieves all industry mentors ordered by id
func (r *IndustryMentorRepository) List(ctx context.Context) ([]*models.IndustryMentor, error) {
	query := `SELECT ` + industryMentorColumns + ` FROM industry_mentors ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing industry mentors: %w", err)
	}
	defer rows.Close()

	mentors := make([]*models.IndustryMentor, 0)
	for rows.Next() {
		mentor, err := r.scanMentor(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning industry mentor row: %w", err)
		}
		mentors = append(mentors, mentor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating industry mentor rows: %w", err)
	}

	return mentors, nil
}

// Exists reports whether an industry mentor row with the given id exists
func (r *IndustryMentorRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM industry_mentors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking industry mentor existence: %w", err)
	}
	return exists, nil
}

func (r *IndustryMentorRepository) scanMentor(row pgx.Row) (*models.IndustryMentor, error) {
	var m models.IndustryMentor
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&m.Password,
		&m.Phone,
		&m.Designation,
		&m.Company,
		&m.Domain,
		&m.Experience,
		&m.LinkedIn,
		&m.Location,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
