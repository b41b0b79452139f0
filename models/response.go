package models

type AskResponse struct {
	Answer     string `json:"answer"`
	FunnyAddon string `json:"funny_addon"`
	Combined   string `json:"combined"`
}

type HealthResponse struct {
	OK    bool   `json:"ok"`
	Model string `json:"model"`
}

// ErrorResponse carries either a message string (backend failures) or a list
// of ValidationIssue (rejected request bodies) in Detail.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// ValidationIssue describes one rejected field of a request body.
type ValidationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}
