package web

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name string
		html string
		max  int
		want string
	}{
		{
			name: "strips markup",
			html: "<p>Build <b>APIs</b> in Go.</p>",
			max:  160,
			want: "Build APIs in Go.",
		},
		{
			name: "collapses whitespace",
			html: "<div>one\n\n   two\tthree</div>",
			max:  160,
			want: "one two three",
		},
		{
			name: "plain text passes through",
			html: "no markup here",
			max:  160,
			want: "no markup here",
		},
		{
			name: "truncates at word boundary",
			html: "alpha beta gamma delta",
			max:  12,
			want: "alpha beta…",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Excerpt(tt.html, tt.max))
		})
	}
}

func TestExcerptKeepsRuneBoundaries(t *testing.T) {
	// 40 three-byte runes, no spaces: the byte cut at 50 lands mid-rune.
	got := Excerpt(strings.Repeat("क", 40), 50)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("क", 16)+"…", got)
}

func TestExcerptLongInputStaysBounded(t *testing.T) {
	long := strings.Repeat("word ", 100)
	got := Excerpt("<p>"+long+"</p>", 50)
	assert.LessOrEqual(t, len(got), 50+len("…"))
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestPathID(t *testing.T) {
	tests := []struct {
		path   string
		prefix string
		idx    int
		want   int64
		ok     bool
	}{
		{"/projects/42", "/projects/", 0, 42, true},
		{"/projects/42/applicants", "/projects/", 0, 42, true},
		{"/projects/42/applicants/7/status", "/projects/", 2, 7, true},
		{"/projects/abc", "/projects/", 0, 0, false},
		{"/projects/-1", "/projects/", 0, 0, false},
		{"/projects/42", "/projects/", 3, 0, false},
	}

	for _, tt := range tests {
		id, ok := pathID(tt.path, tt.prefix, tt.idx)
		assert.Equal(t, tt.ok, ok, tt.path)
		assert.Equal(t, tt.want, id, tt.path)
	}
}

func TestSplitHelpers(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitLines("a\n\n  b \n"))
	assert.Nil(t, splitLines("  \n "))
	assert.Equal(t, []string{"go", "sql"}, splitComma(" go , sql ,,"))
	assert.Nil(t, splitComma(""))
}
