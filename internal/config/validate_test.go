package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validBase() Config {
	var cfg Config
	cfg.Remote.BaseURL = "http://localhost:8000"
	cfg.Signup.StudentEmailSuffix = ".edu.np"
	return cfg
}

func TestNormalizeAndValidateDefaults(t *testing.T) {
	out, res := NormalizeAndValidate(validBase())
	assert.True(t, res.OK(), strings.Join(res.Errors, "; "))

	assert.Equal(t, "127.0.0.1:38471", out.App.Addr)
	assert.Equal(t, 20, out.Remote.TimeoutSeconds)
	assert.Equal(t, 8.0, out.Remote.RatePerSec)
	assert.Equal(t, 4, out.Remote.RateBurst)
	assert.Equal(t, int64(5<<20), out.Signup.MaxDocumentBytes)
}

func TestBaseURLRequired(t *testing.T) {
	cfg := validBase()
	cfg.Remote.BaseURL = "   "
	_, res := NormalizeAndValidate(cfg)
	assert.False(t, res.OK())
	assert.Contains(t, res.Errors[0], "remote.base_url")
}

func TestBaseURLMustBeAbsolute(t *testing.T) {
	cfg := validBase()
	cfg.Remote.BaseURL = "localhost:8000/api"
	_, res := NormalizeAndValidate(cfg)
	assert.False(t, res.OK())
}

func TestBaseURLTrailingSlashTrimmed(t *testing.T) {
	cfg := validBase()
	cfg.Remote.BaseURL = "http://localhost:8000/"
	out, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK())
	assert.Equal(t, "http://localhost:8000", out.Remote.BaseURL)
}

func TestStudentSuffixNormalization(t *testing.T) {
	cfg := validBase()
	cfg.Signup.StudentEmailSuffix = "EDU.NP"
	out, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK())
	assert.Equal(t, ".edu.np", out.Signup.StudentEmailSuffix)

	cfg.Signup.StudentEmailSuffix = ""
	_, res = NormalizeAndValidate(cfg)
	assert.True(t, res.OK())
	assert.NotEmpty(t, res.Warnings)
}

func TestMailwatchValidation(t *testing.T) {
	cfg := validBase()
	cfg.Mailwatch.Enabled = true
	_, res := NormalizeAndValidate(cfg)
	assert.Len(t, res.Errors, 2) // host and username both missing

	cfg.Mailwatch.IMAPHost = "imap.example.com"
	cfg.Mailwatch.Username = "inbox@example.com"
	out, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK())
	assert.Equal(t, 993, out.Mailwatch.IMAPPort)
	assert.Equal(t, 60, out.Mailwatch.PollSeconds)
}
