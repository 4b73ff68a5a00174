package web

import (
	"net/http"
	"strings"

	"internlink-gateway/internal/domain"
)

// NewMux wires every page route. Public pages (home, listings, login) take
// no gate; everything else sits behind the session/role gate.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()
	gate := Gate{Sessions: d.Sessions}

	// Auth
	ah := AuthHandler{API: d.API, Sessions: d.Sessions, Hub: d.Hub, CfgVal: d.CfgVal}
	mux.HandleFunc("/login", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  ah.LoginPage,
		http.MethodPost: ah.Login,
	}))
	mux.HandleFunc("/signup", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Signup,
	}))
	mux.HandleFunc("/logout", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Logout,
	}))
	mux.HandleFunc("/verify-email", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ah.VerifyEmail,
	}))

	// Home / listings
	hh := HomeHandler{API: d.API}
	mux.HandleFunc("/home", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Home,
	}))

	lh := &ListingsHandler{API: d.API, Sessions: d.Sessions}
	mux.HandleFunc("/projects", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  lh.List,
		http.MethodPost: gate.Require(lh.Create, domain.RoleCompany),
	}))
	mux.HandleFunc("/projects/", projectsRouter(gate, lh))

	mux.HandleFunc("/my-projects", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: gate.Require(lh.MyListings, domain.RoleCompany, domain.RoleCollege),
	}))
	mux.HandleFunc("/saved-projects", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: gate.Require(lh.SavedListings, domain.RoleStudent),
	}))
	mux.HandleFunc("/my-applications", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: gate.Require(lh.MyApplications, domain.RoleStudent),
	}))

	// Jobseeker profile + sub-forms
	jh := JobseekerHandler{API: d.API}
	mux.HandleFunc("/user/profile", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  gate.Require(jh.Profile, domain.RoleStudent),
		http.MethodPost: gate.Require(jh.SaveProfile, domain.RoleStudent),
	}))
	mux.HandleFunc("/user/profile/education", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: gate.Require(jh.SaveEducation, domain.RoleStudent),
	}))
	mux.HandleFunc("/user/profile/education/", methodMux(map[string]http.HandlerFunc{
		http.MethodDelete: gate.Require(jh.DeleteEducation, domain.RoleStudent),
	}))
	mux.HandleFunc("/user/profile/experience", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: gate.Require(jh.SaveExperience, domain.RoleStudent),
	}))
	mux.HandleFunc("/user/profile/experience/", methodMux(map[string]http.HandlerFunc{
		http.MethodDelete: gate.Require(jh.DeleteExperience, domain.RoleStudent),
	}))
	mux.HandleFunc("/user/profile/certifications", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: gate.Require(jh.SaveCertifications, domain.RoleStudent),
	}))
	mux.HandleFunc("/user/profile/certifications/", methodMux(map[string]http.HandlerFunc{
		http.MethodDelete: gate.Require(jh.DeleteCertification, domain.RoleStudent),
	}))
	mux.HandleFunc("/user/profile/projects", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: gate.Require(jh.SavePortfolioProjects, domain.RoleStudent),
	}))
	mux.HandleFunc("/user/profile/projects/", methodMux(map[string]http.HandlerFunc{
		http.MethodDelete: gate.Require(jh.DeletePortfolioProject, domain.RoleStudent),
	}))

	// Company/college profile + public profiles
	oh := OrgHandler{API: d.API, Sessions: d.Sessions}
	mux.HandleFunc("/profile", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  gate.Require(oh.OwnProfile, domain.RoleCompany, domain.RoleCollege),
		http.MethodPost: gate.Require(oh.SaveProfile, domain.RoleCompany, domain.RoleCollege),
	}))
	mux.HandleFunc("/users/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: oh.PublicProfile,
	}))

	// Dashboards
	dh := DashboardHandler{API: d.API}
	mux.HandleFunc("/user/dashboard", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: gate.Require(dh.StudentDashboard, domain.RoleStudent),
	}))
	mux.HandleFunc("/company/dashboard", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: gate.Require(dh.CompanyDashboard, domain.RoleCompany, domain.RoleCollege),
	}))
	mux.HandleFunc("/admin/dashboard", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: gate.Require(dh.AdminDashboard, domain.RoleAdmin),
	}))

	// Admin
	adh := AdminHandler{API: d.API}
	mux.HandleFunc("/admin/pending-users", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: gate.Require(adh.PendingUsers, domain.RoleAdmin),
	}))
	mux.HandleFunc("/admin/users/", adminUsersRouter(gate, adh))
	mux.HandleFunc("/admin/categories", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  gate.Require(adh.Categories, domain.RoleAdmin),
		http.MethodPost: gate.Require(adh.CreateCategory, domain.RoleAdmin),
	}))
	mux.HandleFunc("/admin/categories/", methodMux(map[string]http.HandlerFunc{
		http.MethodPut:    gate.Require(adh.UpdateCategory, domain.RoleAdmin),
		http.MethodDelete: gate.Require(adh.DeleteCategory, domain.RoleAdmin),
	}))

	// Chat (local only)
	chh := ChatHandler{Chat: d.Chat, Hub: d.Hub}
	mux.HandleFunc("/chat/threads", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  gate.Require(chh.Threads),
		http.MethodPost: gate.Require(chh.CreateThread),
	}))
	mux.HandleFunc("/chat/threads/", chatThreadsRouter(gate, chh))

	// Config
	ch := ConfigHandler{CfgVal: d.CfgVal, UserCfgPath: d.UserCfgPath, LoadCfg: d.LoadCfg}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	// Secrets (use CfgVal, NOT a snapshot cfg)
	sh := SecretsHandler{CfgVal: d.CfgVal}
	mux.HandleFunc("/secrets/imap", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.SetIMAPPassword,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: Health,
	}))

	return mux
}

// projectsRouter dispatches /projects/{id}[/action] by suffix, applying the
// per-action gates: apply/save are student moves, mutation and applicant
// management belong to the posting company.
func projectsRouter(gate Gate, lh *ListingsHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/projects/"), "/")
		parts := strings.Split(rest, "/")

		switch {
		case len(parts) == 1: // /projects/{id}
			switch r.Method {
			case http.MethodGet:
				lh.Get(w, r)
			case http.MethodPut:
				gate.Require(lh.Update, domain.RoleCompany)(w, r)
			case http.MethodDelete:
				gate.Require(lh.Delete, domain.RoleCompany)(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
		case len(parts) == 2 && parts[1] == "apply" && r.Method == http.MethodPost:
			gate.Require(lh.Apply, domain.RoleStudent)(w, r)
		case len(parts) == 2 && (parts[1] == "save" || parts[1] == "unsave") && r.Method == http.MethodPost:
			gate.Require(lh.ToggleSave, domain.RoleStudent)(w, r)
		case len(parts) == 2 && parts[1] == "applicants" && r.Method == http.MethodGet:
			gate.Require(lh.Applicants, domain.RoleCompany)(w, r)
		case len(parts) == 4 && parts[1] == "applicants" && parts[3] == "status" && r.Method == http.MethodPut:
			gate.Require(lh.ApplicantStatus, domain.RoleCompany)(w, r)
		default:
			http.NotFound(w, r)
		}
	}
}

func adminUsersRouter(gate Gate, adh AdminHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/admin/users/"), "/")
		parts := strings.Split(rest, "/")
		if len(parts) != 2 || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		switch parts[1] {
		case "approve":
			gate.Require(adh.Approve, domain.RoleAdmin)(w, r)
		case "reject":
			gate.Require(adh.Reject, domain.RoleAdmin)(w, r)
		default:
			http.NotFound(w, r)
		}
	}
}

func chatThreadsRouter(gate Gate, chh ChatHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/chat/threads/"), "/")
		parts := strings.Split(rest, "/")
		if len(parts) != 2 || parts[1] != "messages" {
			http.NotFound(w, r)
			return
		}
		switch r.Method {
		case http.MethodGet:
			gate.Require(chh.Messages)(w, r)
		case http.MethodPost:
			gate.Require(chh.Send)(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}
