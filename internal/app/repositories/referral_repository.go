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

// ReferralRepository handles database operations for referral posts and
// referral requests
type ReferralRepository struct {
	db *pgxpool.Pool
}

// NewReferralRepository creates a new referral repository
func NewReferralRepository(db *pgxpool.Pool) *ReferralRepository {
	return &ReferralRepository{
		db: db,
	}
}

// CreatePost inserts a new referral post
func (r *ReferralRepository) CreatePost(ctx context.Context, post *models.ReferralPost) error {
	query := `
		INSERT INTO referral_posts (alumni_id, company, role, description, jd_link, deadline, package_lpa, location, job_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		post.AlumniID, post.Company, post.Role, post.Description, post.JDLink,
		post.Deadline, post.PackageLPA, post.Location, post.JobType,
	).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating referral post: %w", err)
	}

	return nil
}

// GetPostByID retrieves a referral post by ID
func (r *ReferralRepository) GetPostByID(ctx context.Context, id int64) (*models.ReferralPost, error) {
	query := `
		SELECT id, alumni_id, company, role, description, jd_link, deadline, package_lpa, location, job_type, created_at
		FROM referral_posts
		WHERE id = $1
	`

	var post models.ReferralPost
	err := r.db.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.AlumniID,
		&post.Company,
		&post.Role,
		&post.Description,
		&post.JDLink,
		&post.Deadline,
		&post.PackageLPA,
		&post.Location,
		&post.JobType,
		&post.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReferralPostNotFound
		}
		return nil, fmt.Errorf("error retrieving referral post: %w", err)
	}

	return &post, nil
}

// GetAllPosts retrieves all referral posts with their authors, newest first
func (r *ReferralRepository) GetAllPosts(ctx context.Context) ([]*models.ReferralPost, error) {
	query := `
		SELECT p.id, p.alumni_id, p.company, p.role, p.description, p.jd_link, p.deadline, p.package_lpa, p.location, p.job_type, p.created_at,
		       u.id, u.name, u.email, u.role_type, u.created_at
		FROM referral_posts p
		JOIN users u ON u.id = p.alumni_id
		ORDER BY p.created_at DESC, p.id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.ReferralPost
	for rows.Next() {
		var post models.ReferralPost
		var alumni models.User
		if err := rows.Scan(
			&post.ID,
			&post.AlumniID,
			&post.Company,
			&post.Role,
			&post.Description,
			&post.JDLink,
			&post.Deadline,
			&post.PackageLPA,
			&post.Location,
			&post.JobType,
			&post.CreatedAt,
			&alumni.ID,
			&alumni.Name,
			&alumni.Email,
			&alumni.RoleType,
			&alumni.CreatedAt,
		); err != nil {
			return nil, err
		}
		post.Alumni = &alumni
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

// GetPostsByAlumni retrieves the posts an alumnus has published
func (r *ReferralRepository) GetPostsByAlumni(ctx context.Context, alumniID int64) ([]*models.ReferralPost, error) {
	query := `
		SELECT id, alumni_id, company, role, description, jd_link, deadline, package_lpa, location, job_type, created_at
		FROM referral_posts
		WHERE alumni_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, alumniID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.ReferralPost
	for rows.Next() {
		var post models.ReferralPost
		if err := rows.Scan(
			&post.ID,
			&post.AlumniID,
			&post.Company,
			&post.Role,
			&post.Description,
			&post.JDLink,
			&post.Deadline,
			&post.PackageLPA,
			&post.Location,
			&post.JobType,
			&post.CreatedAt,
		); err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

// CreateRequest inserts a new referral request. The unique
// (student_id, post_id) constraint rejects repeat requests on the same post.
func (r *ReferralRepository) CreateRequest(ctx context.Context, request *models.ReferralRequest) error {
	query := `
		INSERT INTO referral_requests (student_id, post_id, alumni_id, message, status, alumni_note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		request.StudentID, request.PostID, request.AlumniID,
		request.Message, request.Status, request.AlumniNote,
	).Scan(&request.ID, &request.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrReferralRequestExists
		}
		return fmt.Errorf("error creating referral request: %w", err)
	}

	return nil
}

// GetRequestByID retrieves a referral request by ID
func (r *ReferralRepository) GetRequestByID(ctx context.Context, id int64) (*models.ReferralRequest, error) {
	query := `
		SELECT id, student_id, post_id, alumni_id, message, status, alumni_note, created_at
		FROM referral_requests
		WHERE id = $1
	`

	var request models.ReferralRequest
	err := r.db.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.StudentID,
		&request.PostID,
		&request.AlumniID,
		&request.Message,
		&request.Status,
		&request.AlumniNote,
		&request.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReferralRequestNotFound
		}
		return nil, fmt.Errorf("error retrieving referral request: %w", err)
	}

	return &request, nil
}

// GetRequestsForAlumni retrieves the requests addressed to an alumnus with
// the requesting students and posts, newest first
func (r *ReferralRepository) GetRequestsForAlumni(ctx context.Context, alumniID int64) ([]*models.ReferralRequest, error) {
	query := `
		SELECT r.id, r.student_id, r.post_id, r.alumni_id, r.message, r.status, r.alumni_note, r.created_at,
		       u.id, u.name, u.email, u.role_type, u.created_at,
		       p.id, p.alumni_id, p.company, p.role, p.description, p.jd_link, p.deadline, p.package_lpa, p.location, p.job_type, p.created_at
		FROM referral_requests r
		JOIN users u ON u.id = r.student_id
		JOIN referral_posts p ON p.id = r.post_id
		WHERE r.alumni_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, alumniID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*models.ReferralRequest
	for rows.Next() {
		var request models.ReferralRequest
		var student models.User
		var post models.ReferralPost
		if err := rows.Scan(
			&request.ID,
			&request.StudentID,
			&request.PostID,
			&request.AlumniID,
			&request.Message,
			&request.Status,
			&request.AlumniNote,
			&request.CreatedAt,
			&student.ID,
			&student.Name,
			&student.Email,
			&student.RoleType,
			&student.CreatedAt,
			&post.ID,
			&post.AlumniID,
			&post.Company,
			&post.Role,
			&post.Description,
			&post.JDLink,
			&post.Deadline,
			&post.PackageLPA,
			&post.Location,
			&post.JobType,
			&post.CreatedAt,
		); err != nil {
			return nil, err
		}
		request.Student = &student
		request.Post = &post
		requests = append(requests, &request)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// GetRequestStatusesByStudent maps post IDs to the student's own request
// status, used to mark already-requested posts on the connect board
func (r *ReferralRepository) GetRequestStatusesByStudent(ctx context.Context, studentID int64) (map[int64]models.ReferralRequestStatus, error) {
	rows, err := r.db.Query(ctx,
		`SELECT post_id, status FROM referral_requests WHERE student_id = $1`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := make(map[int64]models.ReferralRequestStatus)
	for rows.Next() {
		var postID int64
		var status models.ReferralRequestStatus
		if err := rows.Scan(&postID, &status); err != nil {
			return nil, err
		}
		statuses[postID] = status
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return statuses, nil
}

// UpdateRequest sets a referral request's status and the alumnus's note
func (r *ReferralRepository) UpdateRequest(ctx context.Context, id int64, status models.ReferralRequestStatus, note string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE referral_requests SET status = $1, alumni_note = $2 WHERE id = $3`,
		status, note, id)
	if err != nil {
		return fmt.Errorf("error updating referral request: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrReferralRequestNotFound
	}

	return nil
}
