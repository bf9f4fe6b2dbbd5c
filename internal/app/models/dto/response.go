package dto

// MessageResponse is the minimal success envelope.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewMessageResponse creates a success envelope with a message.
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Success: true, Message: message}
}

// ErrorResponse is the shared error envelope: {success: false, message, errors?}.
type ErrorResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// NewErrorResponse creates an error envelope with a message.
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Success: false, Message: message}
}

// WithErrors attaches per-field validation errors.
func (e *ErrorResponse) WithErrors(errs []FieldError) *ErrorResponse {
	e.Errors = errs
	return e
}

// PaginationInfo carries list paging metadata.
type PaginationInfo struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	PageSize    int   `json:"page_size"`
	TotalItems  int64 `json:"total_items"`
}

// HasNext reports whether a later page exists.
func (p PaginationInfo) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}

// HasPrev reports whether an earlier page exists.
func (p PaginationInfo) HasPrev() bool {
	return p.CurrentPage > 1
}
