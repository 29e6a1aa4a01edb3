package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/mentorlink/backend/internal/app/models"
	appRepos "github.com/mentorlink/backend/internal/app/repositories"
	"github.com/mentorlink/backend/internal/pkg/apperrors"
	"github.com/mentorlink/backend/internal/pkg/auth"
)

// CreateDefaultData seeds a few mentors of each kind so freshly registered
// students have someone to be matched with. Existing rows are left alone;
// seeding is idempotent.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	collegeRepo := appRepos.NewCollegeMentorRepository(dbPool)
	industryRepo := appRepos.NewIndustryMentorRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default mentors...")
	var finalErr error

	hashed, err := auth.HashPassword("Mentor123!")
	if err != nil {
		return err
	}

	collegeMentors := []*appModels.CollegeMentor{
		{
			Name:        "Dr. Meena Iyer",
			Email:       "meena.iyer@msinstitute.edu",
			Password:    hashed,
			Designation: "Professor",
			CollegeName: "MS Institute",
			Department:  "CSE",
			Experience:  8,
			Expertise:   "CS, Algorithms, Databases",
		},
		{
			Name:        "Dr. Arjun Shetty",
			Email:       "arjun.shetty@msinstitute.edu",
			Password:    hashed,
			Designation: "Associate Professor",
			CollegeName: "MS Institute",
			Department:  "ECE",
			Experience:  5,
			Expertise:   "Electronics, Embedded Systems",
		},
	}

	for _, m := range collegeMentors {
		if err := collegeRepo.Create(ctx, m); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Error().Err(err).Str("email", m.Email).Msg("Error creating default college mentor")
			finalErr = errors.Join(finalErr, err)
		}
	}

	industryMentors := []*appModels.IndustryMentor{
		{
			Name:        "Rahul Nair",
			Email:       "rahul.nair@acme.io",
			Password:    hashed,
			Designation: "Senior Engineer",
			Company:     "Acme",
			Domain:      "Web Dev, CS",
			Experience:  6,
			Location:    "Bengaluru",
		},
		{
			Name:        "Priya Menon",
			Email:       "priya.menon@initech.com",
			Password:    hashed,
			Designation: "Engineering Manager",
			Company:     "Initech",
			Domain:      "Data Engineering",
			Experience:  11,
			Location:    "Pune",
		},
	}

	for _, m := range industryMentors {
		if err := industryRepo.Create(ctx, m); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Error().Err(err).Str("email", m.Email).Msg("Error creating default industry mentor")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default mentors are in place")
	}
	return finalErr
}
