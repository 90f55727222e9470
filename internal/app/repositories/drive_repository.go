package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/adikale/placementhub/internal/app/models"
	"github.com/adikale/placementhub/internal/app/models/dto"
	"github.com/adikale/placementhub/internal/pkg/apperrors"
	"github.com/adikale/placementhub/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DriveRepository handles database operations for recruitment drives
type DriveRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDriveRepository creates a new drive repository
func NewDriveRepository(db *pgxpool.Pool) *DriveRepository {
	return &DriveRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const driveColumns = "id, company, role, min_cgpa, max_backlogs, allowed_branches, description, deadline, status, package_lpa, location, job_type, created_by, created_at"

func scanDrive(row pgx.Row) (*models.Drive, error) {
	var drive models.Drive
	var branchesRaw []byte

	err := row.Scan(
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
	)
	if err != nil {
		return nil, err
	}

	drive.AllowedBranches = decodeBranches(branchesRaw, drive.ID)

	return &drive, nil
}

// decodeBranches parses the allowed_branches jsonb column. A malformed
// encoding degrades to an empty list, which reads as unrestricted.
func decodeBranches(raw []byte, driveID int64) []string {
	branches := []string{}
	if len(raw) == 0 {
		return branches
	}
	if err := json.Unmarshal(raw, &branches); err != nil {
		logger.Warn().Err(err).Int64("driveID", driveID).Msg("Malformed allowed_branches column, treating as unrestricted")
		return []string{}
	}
	return branches
}

// Create inserts a new drive and fills in the generated ID
func (r *DriveRepository) Create(ctx context.Context, drive *models.Drive) error {
	branchesRaw, err := json.Marshal(drive.AllowedBranches)
	if err != nil {
		return fmt.Errorf("error encoding allowed branches: %w", err)
	}

	query := `
		INSERT INTO drives (company, role, min_cgpa, max_backlogs, allowed_branches, description, deadline, status, package_lpa, location, job_type, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`

	err = r.db.QueryRow(ctx, query,
		drive.Company, drive.Role, drive.MinCGPA, drive.MaxBacklogs, branchesRaw,
		drive.Description, drive.Deadline, drive.Status, drive.PackageLPA,
		drive.Location, drive.JobType, drive.CreatedBy,
	).Scan(&drive.ID, &drive.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating drive: %w", err)
	}

	return nil
}

// GetByID retrieves a drive by ID
func (r *DriveRepository) GetByID(ctx context.Context, id int64) (*models.Drive, error) {
	query := `SELECT ` + driveColumns + ` FROM drives WHERE id = $1`

	drive, err := scanDrive(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDriveNotFound
		}
		return nil, fmt.Errorf("error retrieving drive: %w", err)
	}

	return drive, nil
}

// GetAll retrieves drives newest first, optionally filtered by status
func (r *DriveRepository) GetAll(ctx context.Context, status models.DriveStatus) ([]*models.Drive, error) {
	builder := r.sb.Select(driveColumns).
		From("drives").
		OrderBy("created_at DESC", "id DESC")

	if status != "" {
		builder = builder.Where(squirrel.Eq{"status": status})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build drives query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drives []*models.Drive
	for rows.Next() {
		drive, err := scanDrive(rows)
		if err != nil {
			return nil, err
		}
		drives = append(drives, drive)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return drives, nil
}

// GetPage retrieves one page of drives newest first, optionally filtered by
// status
func (r *DriveRepository) GetPage(ctx context.Context, status models.DriveStatus, limit int, offset uint64) ([]*models.Drive, error) {
	builder := r.sb.Select(driveColumns).
		From("drives").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(offset)

	if status != "" {
		builder = builder.Where(squirrel.Eq{"status": status})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build drives page query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drives []*models.Drive
	for rows.Next() {
		drive, err := scanDrive(rows)
		if err != nil {
			return nil, err
		}
		drives = append(drives, drive)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return drives, nil
}

// Complete marks an active drive as completed. The transition is one way:
// a completed drive stays completed.
func (r *DriveRepository) Complete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE drives SET status = $1 WHERE id = $2 AND status = $3`,
		models.DriveCompleted, id, models.DriveActive)
	if err != nil {
		return fmt.Errorf("error completing drive: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM drives WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("error checking drive existence: %w", err)
		}
		if !exists {
			return apperrors.ErrDriveNotFound
		}
		return apperrors.ErrDriveCompleted
	}

	return nil
}

// TopByApplications returns the drives that attracted the most applications
func (r *DriveRepository) TopByApplications(ctx context.Context, limit int) ([]dto.DriveStat, error) {
	query := `
		SELECT d.id, d.company, d.role,
		       COUNT(a.id) AS applications,
		       COUNT(a.id) FILTER (WHERE a.status = $1) AS selected
		FROM drives d
		LEFT JOIN applications a ON a.drive_id = d.id
		GROUP BY d.id, d.company, d.role
		ORDER BY applications DESC, d.id
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, models.StatusSelected, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []dto.DriveStat
	for rows.Next() {
		var stat dto.DriveStat
		if err := rows.Scan(&stat.DriveID, &stat.Company, &stat.Role, &stat.Applications, &stat.Selected); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// CountByStatus returns total and active drive counts in one round trip
func (r *DriveRepository) CountByStatus(ctx context.Context) (total int, active int, err error) {
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = $1)
		FROM drives`, models.DriveActive).Scan(&total, &active)
	if err != nil {
		return 0, 0, fmt.Errorf("error counting drives: %w", err)
	}

	return total, active, nil
}
