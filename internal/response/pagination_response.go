package response

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int64 `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasMore    bool  `json:"has_more"`
	From       int   `json:"from"`
	To         int   `json:"to"`
}

// NewPagination arma los metadatos de página a partir del total de filas y de
// cuántas quedaron en la página actual.
func NewPagination(page, pageSize int, totalItems int64, enPagina int) *Pagination {
	if pageSize < 1 {
		pageSize = 20
	}
	totalPages := totalItems / int64(pageSize)
	if totalItems%int64(pageSize) != 0 {
		totalPages++
	}
	from, to := 0, 0
	if enPagina > 0 {
		from = (page-1)*pageSize + 1
		to = from + enPagina - 1
	}
	return &Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: totalItems,
		HasMore:    int64(page) < totalPages,
		From:       from,
		To:         to,
	}
}
