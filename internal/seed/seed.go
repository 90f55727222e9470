package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/adikale/placementhub/internal/app/models"
	appRepos "github.com/adikale/placementhub/internal/app/repositories"
	"github.com/adikale/placementhub/internal/pkg/apperrors"
	"github.com/adikale/placementhub/internal/pkg/auth"
)

// CreateDefaultData seeds the default placement office account plus a small
// demo cohort when the database is empty. Existing accounts are left alone.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	profileRepo := appRepos.NewStudentProfileRepository(dbPool)
	alumniRepo := appRepos.NewAlumniProfileRepository(dbPool)
	driveRepo := appRepos.NewDriveRepository(dbPool)
	mentorshipRepo := appRepos.NewMentorshipRepository(dbPool)
	referralRepo := appRepos.NewReferralRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Default placement office account --- //
	tpoID, created, err := ensureUser(ctx, userRepo, "Placement Officer", "tpo@college.edu", "tpo123", appModels.RoleTPO)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default TPO user")
		finalErr = errors.Join(finalErr, err)
	} else if created {
		lgr.Info().Int64("userID", tpoID).Msg("Default TPO account created")
	}

	// Demo data only makes sense on a fresh database. If any student
	// already exists, someone is using this install for real.
	studentCount, err := userRepo.CountByRole(ctx, appModels.RoleStudent)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting students during seed")
		return errors.Join(finalErr, err)
	}
	if studentCount > 0 {
		lgr.Info().Msg("Default data check finished, demo cohort skipped")
		return finalErr
	}

	// --- Demo students --- //
	demoStudents := []struct {
		name, email, branch string
		cgpa                float64
		backlogs            int
		skills              []string
	}{
		{"Rahul Sharma", "rahul@student.edu", "CS", 8.5, 0, []string{"Python", "SQL", "React"}},
		{"Priya Patel", "priya@student.edu", "IT", 7.2, 1, []string{"Java", "Spring Boot"}},
		{"Amit Verma", "amit@student.edu", "MCA", 6.8, 2, []string{"Excel", "Power BI"}},
	}
	for _, s := range demoStudents {
		userID, created, err := ensureUser(ctx, userRepo, s.name, s.email, "pass123", appModels.RoleStudent)
		if err != nil {
			lgr.Error().Err(err).Str("email", s.email).Msg("Error creating demo student")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if !created {
			continue
		}
		profile := &appModels.StudentProfile{
			UserID:   userID,
			CGPA:     s.cgpa,
			Backlogs: s.backlogs,
			Branch:   s.branch,
			Skills:   s.skills,
		}
		if err := profileRepo.Upsert(ctx, profile); err != nil {
			lgr.Error().Err(err).Str("email", s.email).Msg("Error creating demo student profile")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// --- Demo alumni with slots and referral posts --- //
	alumniID, created, err := ensureUser(ctx, userRepo, "Sneha Kulkarni", "sneha@alumni.edu", "pass123", appModels.RoleAlumni)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating demo alumnus")
		return errors.Join(finalErr, err)
	}
	if created {
		alumniProfile := &appModels.AlumniProfile{
			UserID:       alumniID,
			Company:      "Google",
			Role:         "Software Engineer",
			BatchYear:    "2021",
			Branch:       "CS",
			Bio:          "Happy to help juniors crack interviews.",
			OpenToMentor: true,
		}
		if err := alumniRepo.Upsert(ctx, alumniProfile); err != nil {
			lgr.Error().Err(err).Msg("Error creating demo alumni profile")
			finalErr = errors.Join(finalErr, err)
		}

		slots := []appModels.MentorshipSlot{
			{AlumniID: alumniID, Topic: "Mock Interview (DSA)", SlotDate: "2026-09-20", SlotTime: "10:00 AM", Status: appModels.SlotAvailable},
			{AlumniID: alumniID, Topic: "Resume Review", SlotDate: "2026-09-21", SlotTime: "6:00 PM", Status: appModels.SlotAvailable},
			{AlumniID: alumniID, Topic: "Career Guidance (Data Science)", SlotDate: "2026-09-25", SlotTime: "5:30 PM", Status: appModels.SlotAvailable},
		}
		for i := range slots {
			if err := mentorshipRepo.CreateSlot(ctx, &slots[i]); err != nil {
				lgr.Error().Err(err).Str("topic", slots[i].Topic).Msg("Error creating demo mentorship slot")
				finalErr = errors.Join(finalErr, err)
			}
		}

		posts := []appModels.ReferralPost{
			{AlumniID: alumniID, Company: "Google", Role: "SWE Intern", Description: "Summer internship, Bangalore office.", PackageLPA: 12, Location: "Bangalore", JobType: "Internship", Deadline: "2026-10-15"},
			{AlumniID: alumniID, Company: "Microsoft", Role: "Data Analyst", Description: "Analytics team, full time.", PackageLPA: 18, Location: "Hyderabad", JobType: "Full-Time", Deadline: "2026-10-30"},
		}
		for i := range posts {
			if err := referralRepo.CreatePost(ctx, &posts[i]); err != nil {
				lgr.Error().Err(err).Str("company", posts[i].Company).Msg("Error creating demo referral post")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	// --- Demo drive --- //
	if tpoID > 0 {
		drive := &appModels.Drive{
			Company:         "TCS",
			Role:            "Software Engineer",
			MinCGPA:         7.0,
			MaxBacklogs:     0,
			AllowedBranches: []string{},
			Description:     "Campus drive for the 2027 batch.",
			Deadline:        "2026-09-30",
			Status:          appModels.DriveActive,
			PackageLPA:      7.5,
			Location:        "Mumbai",
			JobType:         "Full-Time",
			CreatedBy:       tpoID,
		}
		if err := driveRepo.Create(ctx, drive); err != nil {
			lgr.Error().Err(err).Msg("Error creating demo drive")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}

// ensureUser creates a user unless the email is already taken. It returns
// the user's ID and whether a new row was inserted.
func ensureUser(ctx context.Context, userRepo *appRepos.UserRepository, name, email, password string, role appModels.RoleType) (int64, bool, error) {
	existing, err := userRepo.GetByEmail(ctx, email)
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return 0, false, err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return 0, false, err
	}

	user := &appModels.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		RoleType: role,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return 0, false, err
	}
	return user.ID, true, nil
}
