package author

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestUpdateAuthorRequestValidate(t *testing.T) {
	t.Run("multibyte name at the limit passes", func(t *testing.T) {
		req := &UpdateAuthorRequest{Name: strPtr(strings.Repeat("é", MaxNameLength))}
		assert.False(t, req.Validate().Any(), "length is counted in characters, not bytes")
	})

	t.Run("one character over the limit fails", func(t *testing.T) {
		req := &UpdateAuthorRequest{Name: strPtr(strings.Repeat("é", MaxNameLength+1))}
		assert.Contains(t, req.Validate(), "name")
	})

	t.Run("blank supplied name fails", func(t *testing.T) {
		req := &UpdateAuthorRequest{Name: strPtr("")}
		assert.Contains(t, req.Validate(), "name")
	})

	t.Run("omitted fields are not validated", func(t *testing.T) {
		req := &UpdateAuthorRequest{}
		assert.False(t, req.Validate().Any())
	})
}
