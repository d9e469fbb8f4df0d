package model

// Response is the uniform envelope returned by every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
	Errors  []string    `json:"errors"`
}

// PaginatedResult is one page of a filtered, sorted listing sequence.
type PaginatedResult struct {
	Items           []Property `json:"items"`
	TotalCount      int        `json:"totalCount"`
	Page            int        `json:"page"`
	PageSize        int        `json:"pageSize"`
	TotalPages      int        `json:"totalPages"`
	HasNextPage     bool       `json:"hasNextPage"`
	HasPreviousPage bool       `json:"hasPreviousPage"`
}
