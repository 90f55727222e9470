package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository           *UserRepository
	StudentProfileRepository *StudentProfileRepository
	AlumniProfileRepository  *AlumniProfileRepository
	DriveRepository          *DriveRepository
	ApplicationRepository    *ApplicationRepository
	InterviewRepository      *InterviewRepository
	NotificationRepository   *NotificationRepository
	MentorshipRepository     *MentorshipRepository
	ReferralRepository       *ReferralRepository
	TokenRepository          *TokenRepository
	ResumeMetaRepository     *ResumeMetaRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:           NewUserRepository(db),
		StudentProfileRepository: NewStudentProfileRepository(db),
		AlumniProfileRepository:  NewAlumniProfileRepository(db),
		DriveRepository:          NewDriveRepository(db),
		ApplicationRepository:    NewApplicationRepository(db),
		InterviewRepository:      NewInterviewRepository(db),
		NotificationRepository:   NewNotificationRepository(db),
		MentorshipRepository:     NewMentorshipRepository(db),
		ReferralRepository:       NewReferralRepository(db),
		TokenRepository:          NewTokenRepository(db),
		ResumeMetaRepository:     NewResumeMetaRepository(db),
	}
}
