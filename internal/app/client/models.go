package client

// Wire shapes of the server responses the client cares about.

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Age      string `json:"age"`
	Sex      string `json:"sex,omitempty"`
	Reason   string `json:"reason"`
}

type LoginResult struct {
	Token  string `json:"token"`
	Reason string `json:"reason"`
	Status string `json:"status"`
	Error  string `json:"error"`
}

// CreateResult is the outcome of a record creation. Flagged and Message
// are only ever set for diary entries.
type CreateResult struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Flagged bool   `json:"flagged"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

type RecordView struct {
	ID     string            `json:"id"`
	Date   string            `json:"date"`
	Time   string            `json:"time"`
	Fields map[string]string `json:"fields"`
}

type SummaryResult struct {
	Username   string         `json:"username"`
	WindowDays int            `json:"window_days"`
	From       string         `json:"from"`
	To         string         `json:"to"`
	Counts     map[string]int `json:"counts"`
	Status     string         `json:"status"`
	Error      string         `json:"error"`
}
