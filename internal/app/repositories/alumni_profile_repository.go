package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/adikale/placementhub/internal/app/models"
	"github.com/adikale/placementhub/internal/pkg/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AlumniProfileRepository handles database operations for alumni profiles
type AlumniProfileRepository struct {
	db *pgxpool.Pool
}

// NewAlumniProfileRepository creates a new alumni profile repository
func NewAlumniProfileRepository(db *pgxpool.Pool) *AlumniProfileRepository {
	return &AlumniProfileRepository{
		db: db,
	}
}

// GetByUserID retrieves the profile belonging to a user
func (r *AlumniProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.AlumniProfile, error) {
	query := `
		SELECT id, user_id, company, role, batch_year, branch, linkedin, bio, open_to_mentor, created_at
		FROM alumni_profiles
		WHERE user_id = $1
	`

	var profile models.AlumniProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Company,
		&profile.Role,
		&profile.BatchYear,
		&profile.Branch,
		&profile.LinkedIn,
		&profile.Bio,
		&profile.OpenToMentor,
		&profile.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving alumni profile: %w", err)
	}

	return &profile, nil
}

// GetAll retrieves all alumni profiles with their user records
func (r *AlumniProfileRepository) GetAll(ctx context.Context) ([]*models.AlumniProfile, error) {
	query := `
		SELECT p.id, p.user_id, p.company, p.role, p.batch_year, p.branch, p.linkedin, p.bio, p.open_to_mentor, p.created_at,
		       u.id, u.name, u.email, u.role_type, u.created_at
		FROM alumni_profiles p
		JOIN users u ON u.id = p.user_id
		ORDER BY u.name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*models.AlumniProfile
	for rows.Next() {
		var profile models.AlumniProfile
		var user models.User
		if err := rows.Scan(
			&profile.ID,
			&profile.UserID,
			&profile.Company,
			&profile.Role,
			&profile.BatchYear,
			&profile.Branch,
			&profile.LinkedIn,
			&profile.Bio,
			&profile.OpenToMentor,
			&profile.CreatedAt,
			&user.ID,
			&user.Name,
			&user.Email,
			&user.RoleType,
			&user.CreatedAt,
		); err != nil {
			return nil, err
		}
		profile.User = &user
		profiles = append(profiles, &profile)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

// Upsert creates the profile on first save and updates it afterwards
func (r *AlumniProfileRepository) Upsert(ctx context.Context, profile *models.AlumniProfile) error {
	query := `
		INSERT INTO alumni_profiles (user_id, company, role, batch_year, branch, linkedin, bio, open_to_mentor)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			company = EXCLUDED.company,
			role = EXCLUDED.role,
			batch_year = EXCLUDED.batch_year,
			branch = EXCLUDED.branch,
			linkedin = EXCLUDED.linkedin,
			bio = EXCLUDED.bio,
			open_to_mentor = EXCLUDED.open_to_mentor
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		profile.UserID, profile.Company, profile.Role, profile.BatchYear,
		profile.Branch, profile.LinkedIn, profile.Bio, profile.OpenToMentor,
	).Scan(&profile.ID, &profile.CreatedAt)
	if err != nil {
		return fmt.Errorf("error saving alumni profile: %w", err)
	}

	return nil
}
