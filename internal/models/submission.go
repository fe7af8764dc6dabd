package models

import "fmt"

// Submission represents one accepted form submission.
type Submission struct {
	// ID is the unique identifier for the submission (UUID format).
	// Assigned by the store on creation.
	ID string `json:"id"`

	// FirstName and LastName are the two submitted fields, trimmed.
	FirstName string `json:"first"`
	LastName  string `json:"last"`

	// Greeting is the rendered result returned to the client,
	// e.g. "Jane Doe".
	Greeting string `json:"data"`

	// CreatedAt is the Unix timestamp when the submission was accepted.
	CreatedAt int64 `json:"created_at"`
}

// FullName joins the two name fields with a single space.
func (s *Submission) FullName() string {
	return fmt.Sprintf("%s %s", s.FirstName, s.LastName)
}
