package domain

// JobseekerProfile is the student-side profile. Sub-record collections are
// synced with the backend one row at a time (see api.Jobseeker*).
type JobseekerProfile struct {
	ID                  int64    `json:"id,omitempty"`
	Mobile              string   `json:"mobile"`
	DOB                 string   `json:"dob"`
	Gender              string   `json:"gender"`
	CurrentAddress      string   `json:"current_address"`
	PermanentAddress    string   `json:"permanent_address"`
	LinkedinURL         string   `json:"linkedin_url"`
	ProfessionalSummary string   `json:"professional_summary"`
	Skills              []string `json:"skills"`

	Education      []Education       `json:"education,omitempty"`
	Experience     []WorkExperience  `json:"work_experiences,omitempty"`
	Certifications []Certification   `json:"certifications,omitempty"`
	Projects       []PortfolioProject `json:"projects,omitempty"`
}

// Education rows carry an ID only once persisted; a zero ID means the row is
// local-only and must be POSTed, not PUT.
type Education struct {
	ID             int64  `json:"id,omitempty"`
	Institution    string `json:"institution"`
	Board          string `json:"board"`
	GraduationYear string `json:"graduation_year"`
	GPA            string `json:"gpa"`
}

type WorkExperience struct {
	ID               int64  `json:"id,omitempty"`
	Title            string `json:"title"`
	CompanyName      string `json:"company_name"`
	JoinedDate       string `json:"joined_date"`
	EndDate          string `json:"end_date,omitempty"`
	CurrentlyWorking bool   `json:"currently_working"`
}

type Certification struct {
	ID                  int64  `json:"id,omitempty"`
	Name                string `json:"name"`
	IssuingOrganization string `json:"issuing_organization"`
	IssueDate           string `json:"issue_date"`
	ExpiryDate          string `json:"expiry_date,omitempty"`
	NoExpiry            bool   `json:"no_expiry"`
	CredentialID        string `json:"credential_id,omitempty"`
	CredentialURL       string `json:"credential_url,omitempty"`
}

// PortfolioProject is a project on the jobseeker's own profile, distinct from
// the marketplace Listing.
type PortfolioProject struct {
	ID               int64  `json:"id,omitempty"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date,omitempty"`
	CurrentlyWorking bool   `json:"currently_working"`
	ProjectURL       string `json:"project_url,omitempty"`
	GithubURL        string `json:"github_url,omitempty"`
}

// Normalize applies the conditional clearing the profile forms do before
// submit: an ongoing job has no end date.
func (w *WorkExperience) Normalize() {
	if w.CurrentlyWorking {
		w.EndDate = ""
	}
}

func (c *Certification) Normalize() {
	if c.NoExpiry {
		c.ExpiryDate = ""
	}
}

func (p *PortfolioProject) Normalize() {
	if p.CurrentlyWorking {
		p.EndDate = ""
	}
}
