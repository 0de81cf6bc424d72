package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextSanitizer_Sanitize(t *testing.T) {
	s := NewTextSanitizer()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text untouched", in: "Jakarta Selatan", want: "Jakarta Selatan"},
		{name: "ampersand kept", in: "Smith & Sons", want: "Smith & Sons"},
		{name: "tags stripped", in: "<b>Budi</b>", want: "Budi"},
		{name: "script removed", in: `Budi<script>alert("x")</script>`, want: "Budi"},
		{name: "attributes removed", in: `<a href="javascript:alert(1)">Jl. Sudirman</a>`, want: "Jl. Sudirman"},
		{name: "empty", in: "", want: ""},
		{name: "encoded script removed", in: "&lt;script&gt;alert(1)&lt;/script&gt;Budi", want: "Budi"},
		{name: "encoded tag stripped", in: "&lt;b&gt;Budi&lt;/b&gt;", want: "Budi"},
		{name: "less-than as text", in: "a < b", want: "a < b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Sanitize(tt.in))
		})
	}
}

func TestTextSanitizer_NoMarkupSurvives(t *testing.T) {
	s := NewTextSanitizer()

	for _, in := range []string{
		"<<script>script>alert(1)<</script>/script>",
		"&amp;lt;script&amp;gt;alert(1)&amp;lt;/script&amp;gt;",
		"&lt;<b>img src=x onerror=alert(1)&gt;",
	} {
		t.Run(in, func(t *testing.T) {
			out := s.Sanitize(in)

			assert.NotContains(t, out, "<script")
			assert.NotContains(t, out, "<img")
			assert.Equal(t, out, s.Sanitize(out), "sanitizing is idempotent")
		})
	}
}
