package author

import (
	"unicode/utf8"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"

	"library-catalog/internal/shared/validation"
	"library-catalog/pkg/pagination"
)

const MaxNameLength = 255

// CreateAuthorRequest - POST /authors
type CreateAuthorRequest struct {
	Name string  `json:"name"`
	Bio  *string `json:"bio"`
}

func (r *CreateAuthorRequest) Validate() validation.Errors {
	err := ozzo.ValidateStruct(r,
		ozzo.Field(&r.Name, ozzo.Required, ozzo.Length(1, MaxNameLength)),
	)
	return validation.FromOzzo(err)
}

func (r *CreateAuthorRequest) ToEntity() *Author {
	return &Author{Name: r.Name, Bio: r.Bio}
}

// UpdateAuthorRequest - PUT /authors/:id
// All fields optional: only supplied fields are validated and applied.
type UpdateAuthorRequest struct {
	Name *string `json:"name"`
	Bio  *string `json:"bio"`
}

func (r *UpdateAuthorRequest) Validate() validation.Errors {
	errs := validation.Errors{}
	if r.Name != nil {
		if *r.Name == "" {
			errs.Add("name", "cannot be blank")
		} else if utf8.RuneCountInString(*r.Name) > MaxNameLength {
			errs.Add("name", "the length must be no more than 255")
		}
	}
	return errs
}

// ApplyToEntity copies the supplied fields onto the existing author.
func (r *UpdateAuthorRequest) ApplyToEntity(a *Author) {
	if r.Name != nil {
		a.Name = *r.Name
	}
	if r.Bio != nil {
		a.Bio = r.Bio
	}
}

// Filter - query parameters accepted by GET /authors.
// Name holds the resolved filter: the canonical `name` parameter wins over
// the legacy `search` alias when both are supplied.
type Filter struct {
	Name string
	Page pagination.Params
}
