package validation

import (
	"errors"
	"testing"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	errs := Errors{}
	assert.False(t, errs.Any())

	errs.Add("name", "cannot be blank")
	errs.Add("name", "too short")
	errs.Add("email", "must be valid")

	assert.True(t, errs.Any())
	assert.Equal(t, []string{"email", "name"}, errs.Fields())
	assert.Len(t, errs["name"], 2)
}

func TestErrorUnwrapsAcrossLayers(t *testing.T) {
	var err error = NewFieldError("email", "the email has already been taken")

	var ve *Error
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"the email has already been taken"}, ve.Errors["email"])
	assert.Contains(t, ve.Error(), "email")
}

func TestFromOzzo(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.False(t, FromOzzo(nil).Any())
	})

	t.Run("field errors keyed by json tag", func(t *testing.T) {
		type payload struct {
			Name string `json:"name"`
		}
		p := payload{}
		err := ozzo.ValidateStruct(&p,
			ozzo.Field(&p.Name, ozzo.Required),
		)

		errs := FromOzzo(err)
		require.True(t, errs.Any())
		assert.Contains(t, errs, "name")
	})

	t.Run("non validation error is not dropped", func(t *testing.T) {
		errs := FromOzzo(errors.New("boom"))
		require.True(t, errs.Any())
		assert.Contains(t, errs, "_")
	})
}
