package models

// Project status values. A project only moves forward: in_progress -> approved.
// Draft uploads and comments never change the status.
const (
	ProjectStatusInProgress = "in_progress"
	ProjectStatusApproved   = "approved"
)

// ProjectCreateIn is the request schema for opening a review project.
// RequestID may reference the custom request that originated the project;
// it is stored as given and not validated against the request collection.
type ProjectCreateIn struct {
	Title       string `json:"title" validate:"required"`
	ClientEmail string `json:"client_email" validate:"required,email"`
	RequestID   string `json:"request_id"`
}

// ProjectFilter holds the optional query filters for the project listing.
// Both fields are exact-match.
type ProjectFilter struct {
	ClientEmail string
	Status      string
}

// CommentIn is the request schema for a proof comment. X and Y are optional
// canvas coordinates anchoring the comment to a spot on the draft.
type CommentIn struct {
	Author  string   `json:"author" validate:"required"`
	Message string   `json:"message" validate:"required"`
	X       *float64 `json:"x"`
	Y       *float64 `json:"y"`
}
