package domain

// Applicant statuses as the backend spells them.
const (
	ApplicantApplied     = "applied"
	ApplicantShortlisted = "shortlisted"
	ApplicantInterview   = "interview"
	ApplicantAccepted    = "accepted"
	ApplicantRejected    = "rejected"
)

// Listing is a marketplace internship/project posting owned by a company.
type Listing struct {
	ID             int64       `json:"id"`
	Title          string      `json:"title"`
	Description    string      `json:"description"` // html from the backend editor
	TypeOfProject  string      `json:"type_of_project"`
	Status         string      `json:"status"`
	Requirements   []string    `json:"requirements"`
	SkillsRequired []string    `json:"skills_required"`
	Deadline       string      `json:"deadline"`
	Location       string      `json:"location"`
	Salary         string      `json:"salary"`
	Category       *Category   `json:"projectcategory,omitempty"`
	Company        *OrgProfile `json:"company,omitempty"`
	CreatedAt      string      `json:"created_at,omitempty"`
}

// Applicant links a jobseeker to a listing they applied to.
type Applicant struct {
	ID              int64             `json:"id"`
	ProjectID       int64             `json:"project_id"`
	JobseekerStatus string            `json:"jobseeker_status"`
	AppliedDate     string            `json:"applied_date"`
	MeetingTime     string            `json:"meeting_time,omitempty"`
	User            *User             `json:"user,omitempty"`
	Profile         *JobseekerProfile `json:"jobseeker_profile,omitempty"`
	Project         *Listing          `json:"project,omitempty"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ValidApplicantStatus reports whether s is a status a company may set.
func ValidApplicantStatus(s string) bool {
	switch s {
	case ApplicantApplied, ApplicantShortlisted, ApplicantInterview, ApplicantAccepted, ApplicantRejected:
		return true
	}
	return false
}
