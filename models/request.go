package models

// AskRequest is the body of POST /ask. SystemPrompt is a pointer so an
// absent or null field can be told apart and replaced with the default.
type AskRequest struct {
	Question     string  `json:"question" binding:"required,min=1"`
	SystemPrompt *string `json:"system_prompt"`
}
