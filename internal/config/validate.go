package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy plus everything wrong with it.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	out.Remote.BaseURL = strings.TrimRight(strings.TrimSpace(out.Remote.BaseURL), "/")
	out.Signup.StudentEmailSuffix = strings.ToLower(strings.TrimSpace(out.Signup.StudentEmailSuffix))

	if out.App.Addr == "" {
		out.App.Addr = "127.0.0.1:38471"
	}

	if out.Remote.BaseURL == "" {
		res.addErr("remote.base_url is required")
	} else if u, err := url.Parse(out.Remote.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		res.addErr("remote.base_url must be an absolute http(s) URL")
	}

	if out.Remote.TimeoutSeconds <= 0 {
		out.Remote.TimeoutSeconds = 20
	}
	if out.Remote.RatePerSec <= 0 {
		out.Remote.RatePerSec = 8
	}
	if out.Remote.RateBurst <= 0 {
		out.Remote.RateBurst = 4
	}

	if out.Signup.StudentEmailSuffix == "" {
		res.addWarn("signup.student_email_suffix is empty; student signups will accept any email domain")
	} else if !strings.HasPrefix(out.Signup.StudentEmailSuffix, ".") {
		out.Signup.StudentEmailSuffix = "." + out.Signup.StudentEmailSuffix
	}
	if out.Signup.MaxDocumentBytes <= 0 {
		out.Signup.MaxDocumentBytes = 5 << 20
	}

	if out.Mailwatch.Enabled {
		if strings.TrimSpace(out.Mailwatch.IMAPHost) == "" {
			res.addErr("mailwatch.imap_host is required when mailwatch.enabled=true")
		}
		if out.Mailwatch.IMAPPort == 0 {
			out.Mailwatch.IMAPPort = 993
		}
		if strings.TrimSpace(out.Mailwatch.Username) == "" {
			res.addErr("mailwatch.username is required when mailwatch.enabled=true")
		}
		if out.Mailwatch.PollSeconds <= 0 {
			out.Mailwatch.PollSeconds = 60
		} else if out.Mailwatch.PollSeconds < 15 {
			res.addWarn("mailwatch.poll_seconds is very low (%d) and may trip IMAP rate limits.", out.Mailwatch.PollSeconds)
		}
	}

	return out, res
}
