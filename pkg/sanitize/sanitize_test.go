package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLKeepsEditorFormatting(t *testing.T) {
	s := New()

	input := `<h2>Heading</h2><p><b>bold</b> and <i>italic</i></p><ul><li>one</li></ul>`

	assert.Equal(t, input, s.HTML(input))
}

func TestHTMLStripsScripts(t *testing.T) {
	s := New()

	out := s.HTML(`<p>hi</p><script>alert("xss")</script>`)

	assert.Equal(t, "<p>hi</p>", out)
}

func TestHTMLStripsEventHandlers(t *testing.T) {
	s := New()

	out := s.HTML(`<p onclick="steal()">hi</p>`)

	assert.Equal(t, "<p>hi</p>", out)
}

func TestHTMLKeepsImages(t *testing.T) {
	s := New()

	out := s.HTML(`<img src="https://cdn.example.com/pic.png">`)

	assert.Contains(t, out, "<img")
	assert.Contains(t, out, `src="https://cdn.example.com/pic.png"`)
}
