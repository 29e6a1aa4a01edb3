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

// StudentService handles student registration, login and lookups.
type StudentService struct {
	students StudentStore
	matching *MatchingService
	jwt      *auth.JWTService
	logger   zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	students StudentStore,
	matching *MatchingService,
	jwt *auth.JWTService,
	logger zerolog.Logger,
) *StudentService {
	return &StudentService{
		students: students,
		matching: matching,
		jwt:      jwt,
		logger:   logger,
	}
}

// Register creates a student account and resolves a mentor for it. An
// explicitly requested mentor wins over automatic resolution; choosing both
// kinds at once is rejected. A student for whom no mentor can be resolved is
// still registered, just unassigned.
func (s *StudentService) Register(ctx context.Context, req *dto.RegisterStudentRequest) (*models.Student, error) {
	if req.CollegeMentorID != nil && req.IndustryMentorID != nil {
		return nil, apperrors.NewValidationError("choose either a college mentor or an industry mentor, not both")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		Name:        req.Name,
		USN:         req.USN,
		Email:       req.Email,
		Password:    hashed,
		Phone:       req.Phone,
		Course:      req.Course,
		Year:        req.Year,
		Semester:    req.Semester,
		DeptName:    req.DeptName,
		CollegeName: req.CollegeName,
		Branch:      req.Branch,
	}

	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	mentor := s.requestedMentor(req)
	if mentor == nil {
		if outcome := s.matching.ResolveMentor(ctx, student); outcome != nil {
			ref := outcome.Ref()
			mentor = &ref
		}
	}

	if mentor != nil {
		if err := s.matching.Assign(ctx, student.ID, *mentor); err != nil {
			// The account exists either way; an explicit bad mentor choice
			// is the caller's error, a failed automatic commit is not.
			if s.requestedMentor(req) != nil {
				return nil, err
			}
			s.logger.Warn().
				Err(err).
				Int64("studentID", student.ID).
				Msg("Automatic mentor assignment failed, student stays unassigned")
		} else {
			student.AssignedMentorID = &mentor.ID
			student.AssignedMentorKind = &mentor.Kind
		}
	}

	s.logger.Info().
		Int64("studentID", student.ID).
		Bool("assigned", student.AssignedMentor() != nil).
		Msg("Student registered")

	return student, nil
}

// Login verifies credentials and issues an access token
func (s *StudentService) Login(ctx context.Context, email, password string) (*models.Student, *dto.TokenResponse, error) {
	student, err := s.students.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !auth.CheckPassword(student.Password, password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwt.GenerateAccessToken(student.Ref(), student.Email)
	if err != nil {
		return nil, nil, err
	}

	return student, &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(expiresIn),
	}, nil
}

// GetByID retrieves one student
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// List retrieves all students
func (s *StudentService) List(ctx context.Context) ([]*models.Student, error) {
	return s.students.List(ctx)
}

func (s *StudentService) requestedMentor(req *dto.RegisterStudentRequest) *models.ParticipantRef {
	if req.CollegeMentorID != nil {
		return &models.ParticipantRef{ID: *req.CollegeMentorID, Kind: models.KindCollegeMentor}
	}
	if req.IndustryMentorID != nil {
		return &models.ParticipantRef{ID: *req.IndustryMentorID, Kind: models.KindIndustryMentor}
	}
	return nil
}
