package book

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestUpdateBookRequestValidate(t *testing.T) {
	t.Run("multibyte title at the limit passes", func(t *testing.T) {
		req := &UpdateBookRequest{Title: strPtr(strings.Repeat("ü", MaxTitleLength))}
		assert.False(t, req.Validate().Any(), "length is counted in characters, not bytes")
	})

	t.Run("one character over the limit fails", func(t *testing.T) {
		req := &UpdateBookRequest{Title: strPtr(strings.Repeat("ü", MaxTitleLength+1))}
		assert.Contains(t, req.Validate(), "title")
	})

	t.Run("blank supplied title fails", func(t *testing.T) {
		req := &UpdateBookRequest{Title: strPtr("")}
		assert.Contains(t, req.Validate(), "title")
	})
}
