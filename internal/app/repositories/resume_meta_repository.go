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

// ResumeMetaRepository tracks the last generated resume file per student
type ResumeMetaRepository struct {
	db *pgxpool.Pool
}

// NewResumeMetaRepository creates a new resume meta repository
func NewResumeMetaRepository(db *pgxpool.Pool) *ResumeMetaRepository {
	return &ResumeMetaRepository{
		db: db,
	}
}

// Upsert records a freshly generated resume, replacing any earlier record
// for the same student
func (r *ResumeMetaRepository) Upsert(ctx context.Context, meta *models.ResumeMeta) error {
	query := `
		INSERT INTO resume_meta (student_id, file_path, generated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (student_id) DO UPDATE SET
			file_path = EXCLUDED.file_path,
			generated_at = EXCLUDED.generated_at
		RETURNING id, generated_at
	`

	err := r.db.QueryRow(ctx, query, meta.StudentID, meta.FilePath).Scan(&meta.ID, &meta.GeneratedAt)
	if err != nil {
		return fmt.Errorf("error saving resume meta: %w", err)
	}

	return nil
}

// GetByStudent retrieves the latest resume record for a student
func (r *ResumeMetaRepository) GetByStudent(ctx context.Context, studentID int64) (*models.ResumeMeta, error) {
	query := `
		SELECT id, student_id, file_path, generated_at
		FROM resume_meta
		WHERE student_id = $1
	`

	var meta models.ResumeMeta
	err := r.db.QueryRow(ctx, query, studentID).Scan(
		&meta.ID,
		&meta.StudentID,
		&meta.FilePath,
		&meta.GeneratedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving resume meta: %w", err)
	}

	return &meta, nil
}
