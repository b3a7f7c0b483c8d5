package summary

type summarizeInput struct {
	Days int    `query:"days" default:"7" minimum:"0" doc:"Size of the trailing window in days"`
	User string `query:"user" doc:"Summarize another account; requires the bootstrap session"`
}

type summarizeOutput struct {
	Body Response
}

type Response struct {
	Username   string         `json:"username"`
	WindowDays int            `json:"window_days"`
	From       string         `json:"from" doc:"Window start, YYYY-MM-DD, inclusive"`
	To         string         `json:"to" doc:"Window end, YYYY-MM-DD, inclusive"`
	Counts     map[string]int `json:"counts" doc:"Record count per category within the window"`
	Status     string         `json:"status"`
	Error      string         `json:"error,omitempty"`
}
