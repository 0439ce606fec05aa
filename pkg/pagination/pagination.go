package pagination

// Page is the offset-based pagination envelope returned by every list
// endpoint. Field names match the wire contract consumed by the client:
// current_page, data, from, to, last_page, per_page, total.
type Page struct {
	CurrentPage int         `json:"current_page"`
	Data        interface{} `json:"data"`
	From        *int        `json:"from"`
	To          *int        `json:"to"`
	LastPage    int         `json:"last_page"`
	PerPage     int         `json:"per_page"`
	Total       int64       `json:"total"`
}

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Params carries the normalized page/limit pair parsed from the query string.
type Params struct {
	Page    int
	PerPage int
}

// Normalize clamps the parameters to sane bounds. Pages are 1-indexed.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	return p
}

// Offset returns the row offset for the normalized parameters.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// NewPage builds the envelope for one page of results. count is the number of
// rows in data; from/to are null when the page is empty.
func NewPage(data interface{}, count int, total int64, params Params) *Page {
	params = params.Normalize()

	lastPage := int((total + int64(params.PerPage) - 1) / int64(params.PerPage))
	if lastPage < 1 {
		lastPage = 1
	}

	page := &Page{
		CurrentPage: params.Page,
		Data:        data,
		LastPage:    lastPage,
		PerPage:     params.PerPage,
		Total:       total,
	}

	if count > 0 {
		from := params.Offset() + 1
		to := from + count - 1
		page.From = &from
		page.To = &to
	}

	return page
}
