package dto

// ListingQuery carries the page selection of a listing request. Facet selections
// travel separately as a filter state.
type ListingQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// ExportQuery selects the download format of an export request.
type ExportQuery struct {
	Format string `form:"format" validate:"omitempty,oneof=csv pdf"`
}

// SessionResponse is returned by the login endpoint.
type SessionResponse struct {
	User      UserCard `json:"user"`
	ExpiresIn int      `json:"expires_in"`
}
