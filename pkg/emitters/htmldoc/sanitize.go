package htmldoc

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// sanitizeTemplateText strips markup from authored template text. Field
// tables are plain text; anything tag-shaped is dropped so the catalog sheet
// never interprets DSL content as HTML.
func sanitizeTemplateText(raw string) string {
	policy := textSanitizer()
	return strings.TrimSpace(policy.Sanitize(raw))
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
