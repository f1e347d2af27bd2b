package icon

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_DataURIPrefix(t *testing.T) {
	got := Generate("gh", "#ef4444")
	assert.True(t, strings.HasPrefix(got, "data:image/svg+xml;utf8,"))
}

func TestGenerate_TextUppercasedAndCapped(t *testing.T) {
	got := Generate("github", "#ef4444")
	raw, err := url.PathUnescape(strings.TrimPrefix(got, "data:image/svg+xml;utf8,"))
	assert.NoError(t, err)
	assert.Contains(t, raw, ">GI</text>")
	assert.Contains(t, raw, `fill="#ef4444"`)
}

func TestGenerate_EmptyBackgroundUsesDefault(t *testing.T) {
	got := Generate("a", "")
	raw, err := url.PathUnescape(strings.TrimPrefix(got, "data:image/svg+xml;utf8,"))
	assert.NoError(t, err)
	assert.Contains(t, raw, `fill="`+DefaultBackground+`"`)
	assert.Contains(t, raw, ">A</text>")
}
