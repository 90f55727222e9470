package services

// Services defined in this package:
// - AuthService: registration, login and refresh token lifecycle
// - ProfileService: student and alumni profiles plus role dashboards
// - DriveService: drive lifecycle and eligibility-driven fanout
// - ApplicationService: applications, status rounds, interview scheduling
// - EligibilityService: CGPA/backlog/branch screening
// - NotificationService: the in-app notification feed
// - SkillGapService: role-based skill gap analysis
// - ResumeService: resume quality scoring and PDF generation
// - MentorshipService: mentorship requests and slot booking
// - ReferralService: referral posts, requests and the connect board
// - StatsService: placement analytics for the TPO
