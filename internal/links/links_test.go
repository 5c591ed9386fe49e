package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "blank", in: "   \t", want: ""},
		{name: "bare domain", in: "colorstacknyu.com", want: "https://colorstacknyu.com"},
		{name: "www prefix", in: "www.x.com", want: "https://www.x.com"},
		{name: "https unchanged", in: "https://x.com", want: "https://x.com"},
		{name: "http unchanged", in: "http://x.com/a?b=c", want: "http://x.com/a?b=c"},
		{name: "trimmed", in: "  https://x.com  ", want: "https://x.com"},
		{name: "linkedin bare", in: "linkedin.com/in/someone", want: "https://www.linkedin.com/in/someone"},
		{name: "instagram bare", in: "instagram.com/p/abc", want: "https://www.instagram.com/p/abc"},
		// Known limitation: relative paths get a scheme too.
		{name: "relative path", in: "/events/welcome", want: "https:///events/welcome"},
		{name: "plain text", in: "see flyer", want: "https://see flyer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestIsInstagram(t *testing.T) {
	assert.True(t, IsInstagram("https://www.instagram.com/p/example/"))
	assert.True(t, IsInstagram("instagram.com/p/example"))
	assert.True(t, IsInstagram("https://instagr.am/p/x"))
	assert.False(t, IsInstagram("https://notinstagram.com/p/x"))
	assert.False(t, IsInstagram("https://instagram.com.evil.io/p/x"))
	assert.False(t, IsInstagram("https://tiktok.com/@x"))
	assert.False(t, IsInstagram(""))
}

func TestIsLinkedIn(t *testing.T) {
	assert.True(t, IsLinkedIn("linkedin.com/in/someone"))
	assert.True(t, IsLinkedIn("https://www.linkedin.com/in/someone"))
	assert.False(t, IsLinkedIn("https://github.com/someone"))
	assert.False(t, IsLinkedIn("   "))
}
