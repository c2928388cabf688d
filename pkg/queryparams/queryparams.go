package queryparams

import "math"

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
	DefaultOrderBy = "desc"
)

// ListParams liste uç noktalarının sayfalama parametreleri.
type ListParams struct {
	Page    int    `query:"page"`
	PerPage int    `query:"limit"`
	SortBy  string `query:"sortBy"`
	OrderBy string `query:"orderBy"`
}

// DefaultListParams varsayılan sayfalama parametrelerini döndürür.
func DefaultListParams(sortBy string) ListParams {
	return ListParams{
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
		SortBy:  sortBy,
		OrderBy: DefaultOrderBy,
	}
}

// Validate sınır dışı değerleri varsayılanlara çeker.
func (p *ListParams) Validate() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	if p.OrderBy != "asc" && p.OrderBy != "desc" {
		p.OrderBy = DefaultOrderBy
	}
}

// CalculateOffset (page-1)*limit
func (p ListParams) CalculateOffset() int {
	return (p.Page - 1) * p.PerPage
}

// CalculateTotalPages ceil(total/perPage); kayıt yoksa 0.
func CalculateTotalPages(totalCount int64, perPage int) int {
	if perPage <= 0 || totalCount <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalCount) / float64(perPage)))
}

// PaginationMeta listelerle birlikte dönen sayfalama bilgisi.
type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	Count      int   `json:"count"`
}

// NewPaginationMeta sayfadaki kayıt sayısıyla birlikte meta bilgisini kurar.
func NewPaginationMeta(params ListParams, total int64, count int) PaginationMeta {
	return PaginationMeta{
		Page:       params.Page,
		Limit:      params.PerPage,
		Total:      total,
		TotalPages: CalculateTotalPages(total, params.PerPage),
		Count:      count,
	}
}

type PaginatedResult struct {
	Data interface{}    `json:"data"`
	Meta PaginationMeta `json:"pagination"`
}
