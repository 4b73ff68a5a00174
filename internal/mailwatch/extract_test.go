package mailwatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVerifyLink(t *testing.T) {
	tests := []struct {
		name string
		body string
		want VerifyLink
		ok   bool
	}{
		{
			name: "plain text",
			body: "Click here: https://api.example.com/api/v1/email/verify/42/abc123?expires=1735689600&signature=deadbeef to verify.",
			want: VerifyLink{ID: "42", Hash: "abc123", Expires: "1735689600", Signature: "deadbeef"},
			ok:   true,
		},
		{
			name: "html href",
			body: `<a href="http://localhost:8000/api/v1/email/verify/7/ff00aa?expires=99&signature=s1">Verify</a>`,
			want: VerifyLink{ID: "7", Hash: "ff00aa", Expires: "99", Signature: "s1"},
			ok:   true,
		},
		{
			name: "link followed by punctuation",
			body: "Verify at https://x.test/email/verify/1/aa?expires=2&signature=zz.",
			want: VerifyLink{ID: "1", Hash: "aa", Expires: "2", Signature: "zz"},
			ok:   true,
		},
		{
			name: "picks verify link among others",
			body: "Home https://x.test/home and https://x.test/email/verify/5/bb?expires=3&signature=sig here",
			want: VerifyLink{ID: "5", Hash: "bb", Expires: "3", Signature: "sig"},
			ok:   true,
		},
		{
			name: "missing signature rejected",
			body: "https://x.test/email/verify/5/bb?expires=3",
			ok:   false,
		},
		{
			name: "wrong path shape rejected",
			body: "https://x.test/email/verify/5?expires=3&signature=s",
			ok:   false,
		},
		{
			name: "no urls at all",
			body: "please verify your email",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractVerifyLink(tt.body)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
