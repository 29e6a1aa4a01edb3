package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/mentorlink/backend/internal/app/models"
	"github.com/mentorlink/backend/internal/app/models/dto"
	"github.com/mentorlink/backend/internal/pkg/apperrors"
	"github.com/mentorlink/backend/internal/pkg/auth"
)

// CollegeMentorService handles college mentor accounts and their student sets.
type CollegeMentorService struct {
	mentors     CollegeMentorStore
	students    StudentStore
	assignments AssignmentStore
	jwt         *auth.JWTService
	logger      zerolog.Logger
}

// NewCollegeMentorService creates a new CollegeMentorService
func NewCollegeMentorService(
	mentors CollegeMentorStore,
	students StudentStore,
	assignments AssignmentStore,
	jwt *auth.JWTService,
	logger zerolog.Logger,
) *CollegeMentorService {
	return &CollegeMentorService{
		mentors:     mentors,
		students:    students,
		assignments: assignments,
		jwt:         jwt,
		logger:      logger,
	}
}

// Register creates a college mentor account
func (s *CollegeMentorService) Register(ctx context.Context, req *dto.RegisterCollegeMentorRequest) (*models.CollegeMentor, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	mentor := &models.CollegeMentor{
		Name:        req.Name,
		Email:       req.Email,
		Password:    hashed,
		Phone:       req.Phone,
		Designation: req.Designation,
		CollegeName: req.CollegeName,
		Department:  req.Department,
		Experience:  req.Experience,
		Expertise:   req.Expertise,
		LinkedIn:    req.LinkedIn,
	}

	if err := s.mentors.Create(ctx, mentor); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("mentorID", mentor.ID).Msg("College mentor registered")
	return mentor, nil
}

// Login verifies credentials and issues an access token
func (s *CollegeMentorService) Login(ctx context.Context, email, password string) (*models.CollegeMentor, *dto.TokenResponse, error) {
	mentor, err := s.mentors.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrMentorNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !auth.CheckPassword(mentor.Password, password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwt.GenerateAccessToken(mentor.Ref(), mentor.Email)
	if err != nil {
		return nil, nil, err
	}

	return mentor, &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(expiresIn),
	}, nil
}

// GetByID retrieves one college mentor
func (s *CollegeMentorService) GetByID(ctx context.Context, id int64) (*models.CollegeMentor, error) {
	return s.mentors.GetByID(ctx, id)
}

// List retrieves all college mentors
func (s *CollegeMentorService) List(ctx context.Context) ([]*models.CollegeMentor, error) {
	return s.mentors.List(ctx)
}

// AssignedStudents returns the students in the mentor's set
func (s *CollegeMentorService) AssignedStudents(ctx context.Context, mentorID int64) ([]*models.Student, error) {
	if _, err := s.mentors.GetByID(ctx, mentorID); err != nil {
		return nil, err
	}

	ids, err := s.assignments.ListStudentIDs(ctx, models.ParticipantRef{ID: mentorID, Kind: models.KindCollegeMentor})
	if err != nil {
		return nil, err
	}

	return s.students.ListByIDs(ctx, ids)
}

// IndustryMentorService handles industry mentor accounts and their student sets.
type IndustryMentorService struct {
	mentors     IndustryMentorStore
	students    StudentStore
	assignments AssignmentStore
	jwt         *auth.JWTService
	logger      zerolog.Logger
}

// NewIndustryMentorService creates a new IndustryMentorService
func NewIndustryMentorService(
	mentors IndustryMentorStore,
	students StudentStore,
	assignments AssignmentStore,
	jwt *auth.JWTService,
	logger zerolog.Logger,
) *IndustryMentorService {
	return &IndustryMentorService{
		mentors:     mentors,
		students:    students,
		assignments: assignments,
		jwt:         jwt,
		logger:      logger,
	}
}

// Register creates an industry mentor account
func (s *IndustryMentorService) Register(ctx context.Context, req *dto.RegisterIndustryMentorRequest) (*models.IndustryMentor, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	mentor := &models.IndustryMentor{
		Name:        req.Name,
		Email:       req.Email,
		Password:    hashed,
		Phone:       req.Phone,
		Designation: req.Designation,
		Company:     req.Company,
		Domain:      req.Domain,
		Experience:  req.Experience,
		LinkedIn:    req.LinkedIn,
		Location:    req.Location,
	}

	if err := s.mentors.Create(ctx, mentor); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("mentorID", mentor.ID).Msg("Industry mentor registered")
	return mentor, nil
}

// Login verifies credentials and issues an access token
func (s *IndustryMentorService) Login(ctx context.Context, email, password string) (*models.IndustryMentor, *dto.TokenResponse, error) {
	mentor, err := s.mentors.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrMentorNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !auth.CheckPassword(mentor.Password, password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwt.GenerateAccessToken(mentor.Ref(), mentor.Email)
	if err != nil {
		return nil, nil, err
	}

	return mentor, &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(expiresIn),
	}, nil
}

// GetByID retrieves one industry mentor
func (s *IndustryMentorService) GetByID(ctx context.Context, id int64) (*models.IndustryMentor, error) {
	return s.mentors.GetByID(ctx, id)
}

// List retrieves all industry mentors
func (s *IndustryMentorService) List(ctx context.Context) ([]*models.IndustryMentor, error) {
	return s.mentors.List(ctx)
}

// AssignedStudents returns the students in the mentor's set
func (s *IndustryMentorService) AssignedStudents(ctx context.Context, mentorID int64) ([]*models.Student, error) {
	if _, err := s.mentors.GetByID(ctx, mentorID); err != nil {
		return nil, err
	}

	ids, err := s.assignments.ListStudentIDs(ctx, models.ParticipantRef{ID: mentorID, Kind: models.KindIndustryMentor})
	if err != nil {
		return nil, err
	}

	return s.students.ListByIDs(ctx, ids)
}
