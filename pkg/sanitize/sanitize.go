package sanitize

import "github.com/microcosm-cc/bluemonday"

// ISanitizer strips disallowed markup from author-supplied blog HTML. The
// editor produces formatting tags only (bold, italic, underline, lists), so
// everything outside bluemonday's UGC allow-list is dropped both before a
// blog is sent to the remote API and before stored content is rendered.
type ISanitizer interface {
	HTML(input string) string
}

type sanitizer struct {
	policy *bluemonday.Policy
}

func New() ISanitizer {
	policy := bluemonday.UGCPolicy()
	policy.AllowImages()

	return &sanitizer{policy: policy}
}

func (s *sanitizer) HTML(input string) string {
	return s.policy.Sanitize(input)
}
