package dto

type MessageResponse struct {
	Message string `json:"message"`
}

// PaginationMeta matches the task list contract: lastPage = ceil(total/limit).
type PaginationMeta struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	Limit    int   `json:"limit"`
	LastPage int   `json:"lastPage"`
}
