package availability

// UnavailableModel is a server-reported fact that a model is currently
// inaccessible to a given client.
type UnavailableModel struct {
	ModelID    string `json:"model_id"`
	ModelName  string `json:"model_name,omitempty"`
	Provider   string `json:"provider,omitempty"`
	ClientID   string `json:"client_id"`
	Reason     Reason `json:"reason"`
	ReasonText string `json:"reason_text,omitempty"`

	// Since is kept exactly as received; see FormatSince.
	Since string `json:"since"`
}

// Key returns the composite key identifying this record and its reset lifecycle.
func (m UnavailableModel) Key() Key {
	return Key{ModelID: m.ModelID, ClientID: m.ClientID}
}

// Key is the (model_id, client_id) pair.
type Key struct {
	ModelID  string
	ClientID string
}

// String renders the key as "model_id:client_id".
func (k Key) String() string {
	return k.ModelID + ":" + k.ClientID
}

// ListResponse is the body of GET /model-availability.
type ListResponse struct {
	Models []UnavailableModel `json:"models"`
	Count  int                `json:"count"`
}

// ResetRequest is the body of POST /model-availability/{model_id}/reset.
type ResetRequest struct {
	ClientID string `json:"client_id"`
}

// ResetResponse is advisory only; the local view is updated from the
// refetch that follows a successful reset.
type ResetResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	ModelID  string `json:"model_id"`
	ClientID string `json:"client_id"`
}
