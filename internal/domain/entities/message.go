package entities

// Extension runtime message names.
const (
	MessageFetchRepo   = "fetch-drupalpod-repo"
	MessageSetRepo     = "set-drupalpod-repo"
	ActionGetPageInfo  = "getPageInfo"
	MessageAcknowledge = "great success"
)

// Message is a request sent by the extension. Background requests use
// Message, content-script requests use Action.
type Message struct {
	Message string `json:"message,omitempty"`
	Action  string `json:"action,omitempty"`
	URL     string `json:"url,omitempty"`
}

// MessageResponse is the reply to a Message.
type MessageResponse struct {
	Message string         `json:"message,omitempty"`
	Success *bool          `json:"success,omitempty"`
	Data    *IssueMetadata `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
}
