package response

// DetailResp is the body of every non-2xx response and of confirmation messages.
type DetailResp struct {
	Detail string `json:"detail"`
}

// ValidationResp is the 422 body; one entry per offending field.
type ValidationResp struct {
	Detail []FieldError `json:"detail"`
}

// FieldError locates a single validation failure, e.g. Loc = ["body", "name"].
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}
