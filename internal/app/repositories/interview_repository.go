package repositories

import (
	"context"
	"fmt"

	"github.com/adikale/placementhub/internal/app/models"
	"github.com/adikale/placementhub/internal/pkg/apperrors"
	"github.com/adikale/placementhub/internal/pkg/dberrors"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InterviewRepository handles database operations for interview schedules
type InterviewRepository struct {
	db *pgxpool.Pool
}

// NewInterviewRepository creates a new interview repository
func NewInterviewRepository(db *pgxpool.Pool) *InterviewRepository {
	return &InterviewRepository{
		db: db,
	}
}

// Create inserts a new interview schedule. The unique
// (drive_id, interview_date, time_slot) constraint rejects double-booking
// a slot, even under concurrent scheduling.
func (r *InterviewRepository) Create(ctx context.Context, schedule *models.InterviewSchedule) error {
	query := `
		INSERT INTO interview_schedules (drive_id, student_id, interview_date, time_slot, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		schedule.DriveID, schedule.StudentID, schedule.InterviewDate, schedule.TimeSlot, schedule.Notes,
	).Scan(&schedule.ID, &schedule.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrInterviewSlotTaken
		}
		return fmt.Errorf("error creating interview schedule: %w", err)
	}

	return nil
}

// GetByDrive retrieves a drive's interview schedules with the students,
// ordered by date then time slot
func (r *InterviewRepository) GetByDrive(ctx context.Context, driveID int64) ([]*models.InterviewSchedule, error) {
	query := `
		SELECT s.id, s.drive_id, s.student_id, s.interview_date, s.time_slot, s.notes, s.created_at,
		       u.id, u.name, u.email, u.role_type, u.created_at
		FROM interview_schedules s
		JOIN users u ON u.id = s.student_id
		WHERE s.drive_id = $1
		ORDER BY s.interview_date, s.time_slot
	`

	rows, err := r.db.Query(ctx, query, driveID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []*models.InterviewSchedule
	for rows.Next() {
		var schedule models.InterviewSchedule
		var student models.User
		if err := rows.Scan(
			&schedule.ID,
			&schedule.DriveID,
			&schedule.StudentID,
			&schedule.InterviewDate,
			&schedule.TimeSlot,
			&schedule.Notes,
			&schedule.CreatedAt,
			&student.ID,
			&student.Name,
			&student.Email,
			&student.RoleType,
			&student.CreatedAt,
		); err != nil {
			return nil, err
		}
		schedule.Student = &student
		schedules = append(schedules, &schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

// GetByStudent retrieves a student's upcoming interview schedules
func (r *InterviewRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.InterviewSchedule, error) {
	query := `
		SELECT id, drive_id, student_id, interview_date, time_slot, notes, created_at
		FROM interview_schedules
		WHERE student_id = $1
		ORDER BY interview_date, time_slot
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []*models.InterviewSchedule
	for rows.Next() {
		var schedule models.InterviewSchedule
		if err := rows.Scan(
			&schedule.ID,
			&schedule.DriveID,
			&schedule.StudentID,
			&schedule.InterviewDate,
			&schedule.TimeSlot,
			&schedule.Notes,
			&schedule.CreatedAt,
		); err != nil {
			return nil, err
		}
		schedules = append(schedules, &schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}
