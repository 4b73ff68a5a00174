package web

import (
	"net/http"

	"internlink-gateway/internal/domain"
	"internlink-gateway/internal/session"
)

// Gate is the session/role gate every protected page route sits behind.
// There is no token freshness check here: the token is trusted until a
// remote call comes back 401, which clears the session reactively.
type Gate struct {
	Sessions *session.Store
}

// Require redirects anonymous visitors to /login and rejects authenticated
// users whose role is not in allow (empty allow means any signed-in role).
func (g Gate) Require(next http.HandlerFunc, allow ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := g.Sessions.Current()
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if len(allow) > 0 && !roleAllowed(sess.Role, allow) {
			var e APIError
			e.Error.Code = "forbidden"
			e.Error.Message = "You do not have access to this page"
			e.Error.RequestID = RequestIDFrom(r.Context())
			e.Error.Redirect = "/unauthorized"
			WriteJSON(w, http.StatusForbidden, e)
			return
		}
		next(w, r)
	}
}

func roleAllowed(role string, allow []string) bool {
	for _, a := range allow {
		if a == role {
			return true
		}
	}
	return false
}

// Landing is the fixed role -> landing page table the login flow uses.
func Landing(role string) string {
	switch role {
	case domain.RoleAdmin:
		return "/admin/dashboard"
	case domain.RoleStudent:
		return "/user/dashboard"
	case domain.RoleCompany, domain.RoleCollege:
		return "/profile"
	default:
		return "/home"
	}
}
