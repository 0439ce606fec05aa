package publisher

import (
	"unicode/utf8"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"

	"library-catalog/internal/shared/validation"
	"library-catalog/pkg/pagination"
)

const MaxNameLength = 255

// CreatePublisherRequest - POST /publishers
type CreatePublisherRequest struct {
	Name    string  `json:"name"`
	Address *string `json:"address"`
}

func (r *CreatePublisherRequest) Validate() validation.Errors {
	err := ozzo.ValidateStruct(r,
		ozzo.Field(&r.Name, ozzo.Required, ozzo.Length(1, MaxNameLength)),
	)
	return validation.FromOzzo(err)
}

func (r *CreatePublisherRequest) ToEntity() *Publisher {
	return &Publisher{Name: r.Name, Address: r.Address}
}

// UpdatePublisherRequest - PUT /publishers/:id
// Only supplied fields are validated and applied.
type UpdatePublisherRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

func (r *UpdatePublisherRequest) Validate() validation.Errors {
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

func (r *UpdatePublisherRequest) ApplyToEntity(p *Publisher) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Address != nil {
		p.Address = r.Address
	}
}

// Filter - query parameters accepted by GET /publishers. The canonical
// `name` parameter wins over the legacy `search` alias.
type Filter struct {
	Name string
	Page pagination.Params
}
