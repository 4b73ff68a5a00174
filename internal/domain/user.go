package domain

// Roles the marketplace knows about. The backend is authoritative; these are
// the values it hands back at login.
const (
	RoleStudent = "student"
	RoleCollege = "college"
	RoleCompany = "company"
	RoleAdmin   = "admin"
)

// Account statuses for company/college users awaiting admin review.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type User struct {
	ID                       int64  `json:"id"`
	Name                     string `json:"name"`
	Email                    string `json:"email"`
	Role                     string `json:"role"`
	Status                   string `json:"status,omitempty"`
	EmailVerifiedAt          string `json:"email_verified_at,omitempty"`
	VerificationDocumentPath string `json:"verification_document_path,omitempty"`
	CreatedAt                string `json:"created_at,omitempty"`
}

// OrgProfile is the public profile of a company or college user.
type OrgProfile struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Logo        string `json:"logo"`
	User        *User  `json:"user,omitempty"`
}

// Page is the pagination envelope the backend wraps list responses in.
type Page[T any] struct {
	Data        []T `json:"data"`
	Total       int `json:"total"`
	PerPage     int `json:"per_page"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page,omitempty"`
}

// TotalPages mirrors the ceil(total/per_page) the admin table renders.
func (p Page[T]) TotalPages() int {
	if p.PerPage <= 0 {
		return 1
	}
	n := (p.Total + p.PerPage - 1) / p.PerPage
	if n < 1 {
		return 1
	}
	return n
}
