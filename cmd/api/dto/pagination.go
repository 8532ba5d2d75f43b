package dto

// Pagination is the common page-position envelope for list results.
// The per-entity total (totalProjects, totalPosts, totalContacts) is added
// by the wrapper types below so every list keeps its documented field name.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// NewPagination computes the page envelope from a 1-based page, the page
// size and the total count of the same filter.
func NewPagination(page, pageSize int, total int64) Pagination {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

type ProjectPagination struct {
	Pagination
	TotalProjects int64 `json:"totalProjects"`
}

type PostPagination struct {
	Pagination
	TotalPosts int64 `json:"totalPosts"`
}

type ContactPagination struct {
	Pagination
	TotalContacts int64 `json:"totalContacts"`
}
