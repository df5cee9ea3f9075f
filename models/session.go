package models

// Session is the persisted login state. It carries a random token and
// enough identity to restore the signed-in operator across restarts;
// credentials themselves are never stored here.
type Session struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	Token     string `json:"token"`
	Timestamp string `json:"timestamp"`
}
