// Package models defines client-side projections of EduZo backend entities.
// The backend owns the records; these copies are scoped to a view's lifetime
// and reconciled by re-fetching after every mutation.
package models

import "time"

// Role classifies an authenticated user. The client dispatches its command
// surface over the closed set {student, faculty}; admin exists server-side
// but has no client surface here.
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// AchievementStatus is the verification state of an achievement. The only
// legal transitions are PENDING→VERIFIED and PENDING→REJECTED, performed by
// faculty; the client never moves a record out of a terminal state.
type AchievementStatus string

const (
	StatusPending  AchievementStatus = "PENDING"
	StatusVerified AchievementStatus = "VERIFIED"
	StatusRejected AchievementStatus = "REJECTED"
)

// Decision reports whether s is a value a faculty reviewer may submit.
func (s AchievementStatus) Decision() bool {
	return s == StatusVerified || s == StatusRejected
}

type AchievementCategory string

const (
	CategoryAcademic         AchievementCategory = "ACADEMIC"
	CategoryExtracurricular  AchievementCategory = "EXTRACURRICULAR"
	CategorySports           AchievementCategory = "SPORTS"
	CategoryCultural         AchievementCategory = "CULTURAL"
	CategoryTechnical        AchievementCategory = "TECHNICAL"
	CategoryResearch         AchievementCategory = "RESEARCH"
	CategoryCommunityService AchievementCategory = "COMMUNITY_SERVICE"
	CategoryLeadership       AchievementCategory = "LEADERSHIP"
	CategoryOther            AchievementCategory = "OTHER"
)

// Categories lists every category the backend accepts, in display order.
var Categories = []AchievementCategory{
	CategoryAcademic,
	CategoryExtracurricular,
	CategorySports,
	CategoryCultural,
	CategoryTechnical,
	CategoryResearch,
	CategoryCommunityService,
	CategoryLeadership,
	CategoryOther,
}

// Valid reports whether c is one of the backend's category values.
func (c AchievementCategory) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Achievement is a single claimed accomplishment subject to faculty
// verification. StudentName is only populated in the faculty pending queue.
type Achievement struct {
	ID           int                 `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Category     AchievementCategory `json:"category"`
	DateAchieved *time.Time          `json:"date_achieved,omitempty"`
	Status       AchievementStatus   `json:"status"`
	CreatedAt    time.Time           `json:"created_at"`
	StudentName  string              `json:"student_name,omitempty"`
}

// NewAchievement is the student submission payload. The backend assigns id,
// status (always PENDING) and created_at.
type NewAchievement struct {
	Title        string              `json:"title" validate:"required"`
	Description  string              `json:"description" validate:"required"`
	Category     AchievementCategory `json:"category" validate:"required"`
	DateAchieved *time.Time          `json:"date_achieved,omitempty"`
}

// Portfolio aggregates a student's profile fields and achievement records.
// ShareToken is present iff IsPublic is true.
type Portfolio struct {
	StudentName    string        `json:"student_name"`
	Email          string        `json:"email,omitempty"`
	EnrollmentNo   string        `json:"enrollment_no,omitempty"`
	Department     string        `json:"department,omitempty"`
	Program        string        `json:"program,omitempty"`
	EnrollmentYear int           `json:"enrollment_year,omitempty"`
	GPA            string        `json:"gpa,omitempty"`
	PhoneNumber    string        `json:"phone_number,omitempty"`
	DateOfBirth    *time.Time    `json:"date_of_birth,omitempty"`
	Age            int           `json:"age,omitempty"`
	Bio            string        `json:"bio,omitempty"`
	Achievements   []Achievement `json:"achievements"`
	IsPublic       bool          `json:"is_public"`
	ShareToken     string        `json:"share_token,omitempty"`
}

// Verified returns only achievements in the VERIFIED state.
func (p *Portfolio) Verified() []Achievement {
	out := make([]Achievement, 0, len(p.Achievements))
	for _, a := range p.Achievements {
		if a.Status == StatusVerified {
			out = append(out, a)
		}
	}
	return out
}

// ProfileUpdate carries the nullable profile fields of
// PUT /api/portfolio/profile. Nil fields are left unchanged server-side.
type ProfileUpdate struct {
	PhoneNumber *string `json:"phone_number,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	FullName    *string `json:"full_name,omitempty"`
	Department  *string `json:"department,omitempty"`
	Program     *string `json:"program,omitempty"`
}

// Registration is the signup payload. Role-specific fields are optional for
// the other role; the backend validates the combination.
type Registration struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     Role   `json:"role" validate:"required,oneof=student faculty"`
	FullName string `json:"full_name" validate:"required"`

	// Student fields.
	EnrollmentNo   string `json:"enrollment_no,omitempty"`
	Department     string `json:"department,omitempty"`
	Program        string `json:"program,omitempty"`
	EnrollmentYear int    `json:"enrollment_year,omitempty"`

	// Faculty fields.
	FacultyDepartment string `json:"faculty_department,omitempty"`
}

// AnalyticsReport is the faculty dashboard aggregate from
// GET /api/portfolio/analytics.
type AnalyticsReport struct {
	TotalAchievements int            `json:"total_achievements"`
	VerifiedCount     int            `json:"verified_count"`
	PendingCount      int            `json:"pending_count"`
	TotalStudents     int            `json:"total_students"`
	CategoryBreakdown map[string]int `json:"category_breakdown"`
}

// TutorReply is the AI tutor's answer to a student question.
type TutorReply struct {
	Reasoning  string  `json:"reasoning"`
	Answer     string  `json:"answer"`
	Confidence float64 `json:"confidence"`
	Cached     bool    `json:"cached"`
}
