// Package sanitize strips dangerous markup from submitted rich-text HTML.
package sanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.UGCPolicy()

// HTML applies the user-generated-content policy: common formatting tags
// survive, scripts and event handlers do not.
func HTML(s string) string {
	return policy.Sanitize(s)
}
