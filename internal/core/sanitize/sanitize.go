// Package sanitize neutralizes executable HTML in user-authored text.
// Sanitization happens at serialization time only; stored text stays raw.
package sanitize

import "github.com/microcosm-cc/bluemonday"

// Sanitizer strips script-executing constructs (script elements, inline
// event-handler attributes, javascript: URLs) from free text while keeping
// benign markup intact.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// New builds a Sanitizer around bluemonday's user-generated-content policy.
// The policy is immutable after construction and safe for concurrent use.
func New() *Sanitizer {
	return &Sanitizer{policy: bluemonday.UGCPolicy()}
}

// Clean sanitizes a single field. Idempotent: cleaning already-clean text
// returns it unchanged.
func (s *Sanitizer) Clean(text string) string {
	return s.policy.Sanitize(text)
}
