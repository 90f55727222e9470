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

// MentorshipRepository handles database operations for mentorship requests
// and bookable mentorship slots
type MentorshipRepository struct {
	db *pgxpool.Pool
}

// NewMentorshipRepository creates a new mentorship repository
func NewMentorshipRepository(db *pgxpool.Pool) *MentorshipRepository {
	return &MentorshipRepository{
		db: db,
	}
}

// CreateRequest inserts a new mentorship request. The unique
// (student_id, alumni_id) constraint rejects a second request to the same
// alumnus regardless of the first one's outcome.
func (r *MentorshipRepository) CreateRequest(ctx context.Context, request *models.MentorshipRequest) error {
	query := `
		INSERT INTO mentorship_requests (student_id, alumni_id, message, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, requested_at
	`

	err := r.db.QueryRow(ctx, query,
		request.StudentID, request.AlumniID, request.Message, request.Status,
	).Scan(&request.ID, &request.RequestedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrMentorshipRequestExists
		}
		return fmt.Errorf("error creating mentorship request: %w", err)
	}

	return nil
}

// GetRequestByID retrieves a mentorship request by ID
func (r *MentorshipRepository) GetRequestByID(ctx context.Context, id int64) (*models.MentorshipRequest, error) {
	query := `
		SELECT id, student_id, alumni_id, message, status, requested_at
		FROM mentorship_requests
		WHERE id = $1
	`

	var request models.MentorshipRequest
	err := r.db.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.StudentID,
		&request.AlumniID,
		&request.Message,
		&request.Status,
		&request.RequestedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorshipRequestNotFound
		}
		return nil, fmt.Errorf("error retrieving mentorship request: %w", err)
	}

	return &request, nil
}

// GetRequestsForAlumni retrieves the requests addressed to an alumnus with
// the requesting students, newest first
func (r *MentorshipRepository) GetRequestsForAlumni(ctx context.Context, alumniID int64) ([]*models.MentorshipRequest, error) {
	query := `
		SELECT m.id, m.student_id, m.alumni_id, m.message, m.status, m.requested_at,
		       u.id, u.name, u.email, u.role_type, u.created_at
		FROM mentorship_requests m
		JOIN users u ON u.id = m.student_id
		WHERE m.alumni_id = $1
		ORDER BY m.requested_at DESC
	`

	rows, err := r.db.Query(ctx, query, alumniID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRequestsWithStudent(rows)
}

// GetRequestsByStudent retrieves the requests a student has sent
func (r *MentorshipRepository) GetRequestsByStudent(ctx context.Context, studentID int64) ([]*models.MentorshipRequest, error) {
	query := `
		SELECT m.id, m.student_id, m.alumni_id, m.message, m.status, m.requested_at,
		       u.id, u.name, u.email, u.role_type, u.created_at
		FROM mentorship_requests m
		JOIN users u ON u.id = m.alumni_id
		WHERE m.student_id = $1
		ORDER BY m.requested_at DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRequestsWithStudent(rows)
}

// UpdateRequestStatus sets a request's status
func (r *MentorshipRepository) UpdateRequestStatus(ctx context.Context, id int64, status models.MentorshipRequestStatus) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE mentorship_requests SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating mentorship request: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMentorshipRequestNotFound
	}

	return nil
}

// CreateSlot inserts a new bookable slot
func (r *MentorshipRepository) CreateSlot(ctx context.Context, slot *models.MentorshipSlot) error {
	query := `
		INSERT INTO mentorship_slots (alumni_id, topic, slot_date, slot_time, meet_link, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		slot.AlumniID, slot.Topic, slot.SlotDate, slot.SlotTime, slot.MeetLink, slot.Status,
	).Scan(&slot.ID, &slot.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating mentorship slot: %w", err)
	}

	return nil
}

// GetAvailableSlots retrieves all open slots with the offering alumni,
// soonest first
func (r *MentorshipRepository) GetAvailableSlots(ctx context.Context) ([]*models.MentorshipSlot, error) {
	query := `
		SELECT s.id, s.alumni_id, s.topic, s.slot_date, s.slot_time, s.meet_link, s.status, s.booked_by, s.created_at,
		       u.id, u.name, u.email, u.role_type, u.created_at
		FROM mentorship_slots s
		JOIN users u ON u.id = s.alumni_id
		WHERE s.status = $1
		ORDER BY s.slot_date, s.slot_time
	`

	rows, err := r.db.Query(ctx, query, models.SlotAvailable)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSlotsWithAlumni(rows)
}

// GetSlotsByAlumni retrieves every slot an alumnus has offered, including
// booked ones, with the booking student when present
func (r *MentorshipRepository) GetSlotsByAlumni(ctx context.Context, alumniID int64) ([]*models.MentorshipSlot, error) {
	query := `
		SELECT s.id, s.alumni_id, s.topic, s.slot_date, s.slot_time, s.meet_link, s.status, s.booked_by, s.created_at,
		       u.id, u.name, u.email
		FROM mentorship_slots s
		LEFT JOIN users u ON u.id = s.booked_by
		WHERE s.alumni_id = $1
		ORDER BY s.slot_date, s.slot_time
	`

	rows, err := r.db.Query(ctx, query, alumniID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []*models.MentorshipSlot
	for rows.Next() {
		var slot models.MentorshipSlot
		var bookedID *int64
		var bookedName, bookedEmail *string
		if err := rows.Scan(
			&slot.ID,
			&slot.AlumniID,
			&slot.Topic,
			&slot.SlotDate,
			&slot.SlotTime,
			&slot.MeetLink,
			&slot.Status,
			&slot.BookedBy,
			&slot.CreatedAt,
			&bookedID,
			&bookedName,
			&bookedEmail,
		); err != nil {
			return nil, err
		}
		if bookedID != nil {
			slot.BookedStudent = &models.User{
				ID:       *bookedID,
				Name:     *bookedName,
				Email:    *bookedEmail,
				RoleType: models.RoleStudent,
			}
		}
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return slots, nil
}

// BookSlot atomically claims an available slot for a student. The
// conditional update is the race guard: of two concurrent bookings exactly
// one matches the status predicate, the other sees zero rows.
func (r *MentorshipRepository) BookSlot(ctx context.Context, slotID, studentID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE mentorship_slots
		SET status = $1, booked_by = $2
		WHERE id = $3 AND status = $4`,
		models.SlotBooked, studentID, slotID, models.SlotAvailable)
	if err != nil {
		return fmt.Errorf("error booking slot: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM mentorship_slots WHERE id = $1)`, slotID).Scan(&exists); err != nil {
			return fmt.Errorf("error checking slot existence: %w", err)
		}
		if !exists {
			return apperrors.ErrSlotNotFound
		}
		return apperrors.ErrSlotUnavailable
	}

	return nil
}

// GetSlotByID retrieves a slot by ID
func (r *MentorshipRepository) GetSlotByID(ctx context.Context, id int64) (*models.MentorshipSlot, error) {
	query := `
		SELECT id, alumni_id, topic, slot_date, slot_time, meet_link, status, booked_by, created_at
		FROM mentorship_slots
		WHERE id = $1
	`

	var slot models.MentorshipSlot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&slot.ID,
		&slot.AlumniID,
		&slot.Topic,
		&slot.SlotDate,
		&slot.SlotTime,
		&slot.MeetLink,
		&slot.Status,
		&slot.BookedBy,
		&slot.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSlotNotFound
		}
		return nil, fmt.Errorf("error retrieving slot: %w", err)
	}

	return &slot, nil
}

func scanRequestsWithStudent(rows pgx.Rows) ([]*models.MentorshipRequest, error) {
	var requests []*models.MentorshipRequest
	for rows.Next() {
		var request models.MentorshipRequest
		var user models.User
		if err := rows.Scan(
			&request.ID,
			&request.StudentID,
			&request.AlumniID,
			&request.Message,
			&request.Status,
			&request.RequestedAt,
			&user.ID,
			&user.Name,
			&user.Email,
			&user.RoleType,
			&user.CreatedAt,
		); err != nil {
			return nil, err
		}
		request.Student = &user
		requests = append(requests, &request)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

func scanSlotsWithAlumni(rows pgx.Rows) ([]*models.MentorshipSlot, error) {
	var slots []*models.MentorshipSlot
	for rows.Next() {
		var slot models.MentorshipSlot
		var alumni models.User
		if err := rows.Scan(
			&slot.ID,
			&slot.AlumniID,
			&slot.Topic,
			&slot.SlotDate,
			&slot.SlotTime,
			&slot.MeetLink,
			&slot.Status,
			&slot.BookedBy,
			&slot.CreatedAt,
			&alumni.ID,
			&alumni.Name,
			&alumni.Email,
			&alumni.RoleType,
			&alumni.CreatedAt,
		); err != nil {
			return nil, err
		}
		slot.Alumni = &alumni
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return slots, nil
}
