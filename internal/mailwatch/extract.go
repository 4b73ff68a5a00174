package mailwatch

import (
	"net/url"
	"regexp"
	"strings"
)

var reURL = regexp.MustCompile(`https?://[^\s<>"']+`)

// VerifyLink is a parsed signed verification URL from the marketplace's
// "verify your email" mail.
type VerifyLink struct {
	ID        string
	Hash      string
	Expires   string
	Signature string
}

// ExtractVerifyLink scans a message body (plain or HTML) for the signed
// verification link and pulls out the four parameters the verify endpoint
// needs. The expires/signature query params must be preserved byte for byte
// or the backend's signature check fails.
func ExtractVerifyLink(body string) (VerifyLink, bool) {
	for _, raw := range reURL.FindAllString(body, -1) {
		raw = strings.TrimRight(raw, ".,);:]\"'&gt;")
		u, err := url.Parse(raw)
		if err != nil {
			continue
		}

		const marker = "/email/verify/"
		i := strings.Index(u.Path, marker)
		if i < 0 {
			continue
		}
		rest := strings.Trim(u.Path[i+len(marker):], "/")
		parts := strings.Split(rest, "/")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			continue
		}

		q := u.Query()
		link := VerifyLink{
			ID:        parts[0],
			Hash:      parts[1],
			Expires:   q.Get("expires"),
			Signature: q.Get("signature"),
		}
		if link.Expires == "" || link.Signature == "" {
			continue
		}
		return link, true
	}
	return VerifyLink{}, false
}
