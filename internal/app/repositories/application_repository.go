package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/adikale/placementhub/internal/app/models"
	"github.com/adikale/placementhub/internal/pkg/apperrors"
	"github.com/adikale/placementhub/internal/pkg/dberrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ApplicationRepository handles database operations for drive applications
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
	}
}

// Create inserts a new application. The unique (student_id, drive_id)
// constraint is the real duplicate-apply guard.
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	query := `
		INSERT INTO applications (student_id, drive_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, applied_at
	`

	err := r.db.QueryRow(ctx, query, application.StudentID, application.DriveID, application.Status).
		Scan(&application.ID, &application.AppliedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyApplied
		}
		return fmt.Errorf("error creating application: %w", err)
	}

	return nil
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	query := `
		SELECT id, student_id, drive_id, status, applied_at
		FROM applications
		WHERE id = $1
	`

	var application models.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&application.ID,
		&application.StudentID,
		&application.DriveID,
		&application.Status,
		&application.AppliedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return &application, nil
}

// GetByStudent retrieves a student's applications with their drives, newest first
func (r *ApplicationRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Application, error) {
	query := `
		SELECT a.id, a.student_id, a.drive_id, a.status, a.applied_at,
		       d.id, d.company, d.role, d.min_cgpa, d.max_backlogs, d.allowed_branches, d.description,
		       d.deadline, d.status, d.package_lpa, d.location, d.job_type, d.created_by, d.created_at
		FROM applications a
		JOIN drives d ON d.id = a.drive_id
		WHERE a.student_id = $1
		ORDER BY a.applied_at DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []*models.Application
	for rows.Next() {
		var application models.Application
		var drive models.Drive
		var branchesRaw []byte
		if err := rows.Scan(
			&application.ID,
			&application.StudentID,
			&application.DriveID,
			&application.Status,
			&application.AppliedAt,
			&drive.ID,
			&drive.Company,
			&drive.Role,
			&drive.MinCGPA,
			&drive.MaxBacklogs,
			&branchesRaw,
			&drive.Description,
			&drive.Deadline,
			&drive.Status,
			&drive.PackageLPA,
			&drive.Location,
			&drive.JobType,
			&drive.CreatedBy,
			&drive.CreatedAt,
		); err != nil {
			return nil, err
		}
		drive.AllowedBranches = decodeBranches(branchesRaw, drive.ID)
		application.Drive = &drive
		applications = append(applications, &application)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

// GetByDrive retrieves all applications for a drive with the applicant users
func (r *ApplicationRepository) GetByDrive(ctx context.Context, driveID int64) ([]*models.Application, error) {
	query := `
		SELECT a.id, a.student_id, a.drive_id, a.status, a.applied_at,
		       u.id, u.name, u.email, u.role_type, u.created_at
		FROM applications a
		JOIN users u ON u.id = a.student_id
		WHERE a.drive_id = $1
		ORDER BY a.applied_at
	`

	rows, err := r.db.Query(ctx, query, driveID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []*models.Application
	for rows.Next() {
		var application models.Application
		var student models.User
		if err := rows.Scan(
			&application.ID,
			&application.StudentID,
			&application.DriveID,
			&application.Status,
			&application.AppliedAt,
			&student.ID,
			&student.Name,
			&student.Email,
			&student.RoleType,
			&student.CreatedAt,
		); err != nil {
			return nil, err
		}
		application.Student = &student
		applications = append(applications, &application)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

// UpdateStatus sets an application's status
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE applications SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}

// CountAll returns the total number of applications
func (r *ApplicationRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting applications: %w", err)
	}

	return count, nil
}

// CountDistinctSelected returns how many distinct students hold a selected
// application. A student selected in two drives counts once.
func (r *ApplicationRepository) CountDistinctSelected(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(DISTINCT student_id) FROM applications WHERE status = $1`,
		models.StatusSelected).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting selected students: %w", err)
	}

	return count, nil
}

// StatusDistribution returns application counts grouped by status
func (r *ApplicationRepository) StatusDistribution(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM applications GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	distribution := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		distribution[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return distribution, nil
}
