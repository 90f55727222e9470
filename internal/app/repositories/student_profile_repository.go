package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/adikale/placementhub/internal/app/models"
	"github.com/adikale/placementhub/internal/app/models/dto"
	"github.com/adikale/placementhub/internal/pkg/apperrors"
	"github.com/adikale/placementhub/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StudentProfileRepository handles database operations for student profiles
type StudentProfileRepository struct {
	db *pgxpool.Pool
}

// NewStudentProfileRepository creates a new student profile repository
func NewStudentProfileRepository(db *pgxpool.Pool) *StudentProfileRepository {
	return &StudentProfileRepository{
		db: db,
	}
}

const studentProfileColumns = `id, user_id, cgpa, backlogs, branch, skills, projects, certificates, phone, dob, linkedin, photo_url`

// scanProfile reads one profile row. The jsonb columns are parsed
// defensively: a malformed encoding degrades to an empty slice instead of
// failing the whole read.
func scanProfile(row pgx.Row) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	var skillsRaw, projectsRaw, certificatesRaw []byte

	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.CGPA,
		&profile.Backlogs,
		&profile.Branch,
		&skillsRaw,
		&projectsRaw,
		&certificatesRaw,
		&profile.Phone,
		&profile.DOB,
		&profile.LinkedIn,
		&profile.PhotoURL,
	)
	if err != nil {
		return nil, err
	}

	profile.Skills = parseJSONSlice[string](skillsRaw, "skills", profile.UserID)
	profile.Projects = parseJSONSlice[models.Project](projectsRaw, "projects", profile.UserID)
	profile.Certificates = parseJSONSlice[models.Certificate](certificatesRaw, "certificates", profile.UserID)

	return &profile, nil
}

func parseJSONSlice[T any](raw []byte, column string, userID int64) []T {
	out := []T{}
	if len(raw) == 0 {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		logger.Warn().Err(err).Int64("userID", userID).Str("column", column).Msg("Malformed jsonb column, using empty slice")
		return []T{}
	}
	return out
}

// GetByUserID retrieves the profile belonging to a user
func (r *StudentProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	query := `
		SELECT ` + studentProfileColumns + `
		FROM student_profiles
		WHERE user_id = $1
	`

	profile, err := scanProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}

	return profile, nil
}

// GetAll retrieves all student profiles with their user records
func (r *StudentProfileRepository) GetAll(ctx context.Context) ([]*models.StudentProfile, error) {
	query := `
		SELECT p.id, p.user_id, p.cgpa, p.backlogs, p.branch, p.skills, p.projects, p.certificates,
		       p.phone, p.dob, p.linkedin, p.photo_url,
		       u.id, u.name, u.email, u.role_type, u.created_at
		FROM student_profiles p
		JOIN users u ON u.id = p.user_id
		ORDER BY u.name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*models.StudentProfile
	for rows.Next() {
		var profile models.StudentProfile
		var user models.User
		var skillsRaw, projectsRaw, certificatesRaw []byte

		if err := rows.Scan(
			&profile.ID,
			&profile.UserID,
			&profile.CGPA,
			&profile.Backlogs,
			&profile.Branch,
			&skillsRaw,
			&projectsRaw,
			&certificatesRaw,
			&profile.Phone,
			&profile.DOB,
			&profile.LinkedIn,
			&profile.PhotoURL,
			&user.ID,
			&user.Name,
			&user.Email,
			&user.RoleType,
			&user.CreatedAt,
		); err != nil {
			return nil, err
		}

		profile.Skills = parseJSONSlice[string](skillsRaw, "skills", profile.UserID)
		profile.Projects = parseJSONSlice[models.Project](projectsRaw, "projects", profile.UserID)
		profile.Certificates = parseJSONSlice[models.Certificate](certificatesRaw, "certificates", profile.UserID)
		profile.User = &user
		profiles = append(profiles, &profile)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

// BranchStats returns per-branch student and placed counts. A student is
// placed when any application of theirs reached selected.
func (r *StudentProfileRepository) BranchStats(ctx context.Context) ([]dto.BranchStat, error) {
	query := `
		SELECT p.branch,
		       COUNT(DISTINCT p.user_id) AS students,
		       COUNT(DISTINCT a.student_id) FILTER (WHERE a.status = 'selected') AS placed
		FROM student_profiles p
		LEFT JOIN applications a ON a.student_id = p.user_id
		WHERE p.branch <> ''
		GROUP BY p.branch
		ORDER BY p.branch
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []dto.BranchStat
	for rows.Next() {
		var stat dto.BranchStat
		if err := rows.Scan(&stat.Branch, &stat.Students, &stat.Placed); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// Upsert creates the profile on first save and updates it afterwards.
// One row per user is enforced by the unique constraint on user_id.
func (r *StudentProfileRepository) Upsert(ctx context.Context, profile *models.StudentProfile) error {
	skillsRaw, err := json.Marshal(profile.Skills)
	if err != nil {
		return fmt.Errorf("error encoding skills: %w", err)
	}
	projectsRaw, err := json.Marshal(profile.Projects)
	if err != nil {
		return fmt.Errorf("error encoding projects: %w", err)
	}
	certificatesRaw, err := json.Marshal(profile.Certificates)
	if err != nil {
		return fmt.Errorf("error encoding certificates: %w", err)
	}

	query := `
		INSERT INTO student_profiles (user_id, cgpa, backlogs, branch, skills, projects, certificates, phone, dob, linkedin, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id) DO UPDATE SET
			cgpa = EXCLUDED.cgpa,
			backlogs = EXCLUDED.backlogs,
			branch = EXCLUDED.branch,
			skills = EXCLUDED.skills,
			projects = EXCLUDED.projects,
			certificates = EXCLUDED.certificates,
			phone = EXCLUDED.phone,
			dob = EXCLUDED.dob,
			linkedin = EXCLUDED.linkedin,
			photo_url = EXCLUDED.photo_url
		RETURNING id
	`

	err = r.db.QueryRow(ctx, query,
		profile.UserID, profile.CGPA, profile.Backlogs, profile.Branch,
		skillsRaw, projectsRaw, certificatesRaw,
		profile.Phone, profile.DOB, profile.LinkedIn, profile.PhotoURL,
	).Scan(&profile.ID)
	if err != nil {
		return fmt.Errorf("error saving student profile: %w", err)
	}

	return nil
}

// UpdatePhotoURL stores the uploaded profile photo location
func (r *StudentProfileRepository) UpdatePhotoURL(ctx context.Context, userID int64, photoURL string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE student_profiles SET photo_url = $1 WHERE user_id = $2`, photoURL, userID)
	if err != nil {
		return fmt.Errorf("error updating photo url: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}

	return nil
}
