package session

// Session is the credential handed to the browser. The widget only needs
// the client secret; the expiry is passed through when upstream reports it.
type Session struct {
	ClientSecret string `json:"client_secret"`
	ExpiresAfter int64  `json:"expires_after,omitempty"`
}

// UpstreamRequest is the body sent to the workflow-execution API when a
// session is minted. The user field carries the sticky visitor id.
type UpstreamRequest struct {
	Workflow Workflow `json:"workflow"`
	User     string   `json:"user"`
}

// Workflow selects the remote workflow definition to run.
type Workflow struct {
	ID string `json:"id"`
}

// UpstreamResponse covers both the success and error shapes the upstream
// API returns. Error fields are optional at every level.
type UpstreamResponse struct {
	ClientSecret string         `json:"client_secret"`
	ExpiresAfter int64          `json:"expires_after"`
	Error        *UpstreamError `json:"error"`
	Message      string         `json:"message"`
}

// UpstreamError is the nested error object of the upstream API.
type UpstreamError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

// ErrorMessage extracts the most specific error text available: the nested
// error message, then the top-level message, then empty.
func (r UpstreamResponse) ErrorMessage() string {
	if r.Error != nil && r.Error.Message != "" {
		return r.Error.Message
	}
	return r.Message
}
