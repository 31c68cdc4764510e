package models

// CustomRequestIn is the request schema for a custom design brief.
type CustomRequestIn struct {
	Name           string   `json:"name" validate:"required"`
	Email          string   `json:"email" validate:"required,email"`
	ProjectType    string   `json:"project_type" validate:"required"`
	References     []string `json:"references"`
	Colors         *string  `json:"colors"`
	DueDate        *string  `json:"due_date"`
	BudgetEstimate *float64 `json:"budget_estimate"`
	Details        *string  `json:"details"`
}
