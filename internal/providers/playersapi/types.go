package playersapi

// ProviderName identifies this data source in logs and metrics.
const ProviderName = "playersapi"

// createAck is what the backend returns for POST instead of the stored record.
type createAck struct {
	Message  string `json:"message"`
	PlayerID *int   `json:"player_id"`
}
