package dto

import (
	"frontdesk/shared/constant"
	"net/http"
	"strconv"
)

// QueryParams pages through a table in storage order; tables are never re-sorted.
type QueryParams struct {
	Page  int `json:"page"  validate:"omitempty,min=1"`
	Limit int `json:"limit" validate:"omitempty,min=1"`
}

// FromRequest populates QueryParams from the HTTP request.
// With defaultRequest set, a missing page or limit falls back to the defaults, otherwise
// only the parameters present in the request are set and a zero Limit means "all rows".
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// Bounds returns the half-open row range [start, end) of the requested page within total rows.
func (q QueryParams) Bounds(total int) (start, end int) {
	if q.Limit <= 0 {
		return 0, total
	}

	page := max(q.Page, 1)

	start = min((page-1)*q.Limit, total)
	end = min(start+q.Limit, total)

	return start, end
}
