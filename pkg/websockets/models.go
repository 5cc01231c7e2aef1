package websockets

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeStorageChange is sent after a persisted collection changes.
	MessageTypeStorageChange MessageType = "storageChange"
	// MessageTypeToast carries a notification to display.
	MessageTypeToast MessageType = "toast"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// StorageChangePayload is the payload for a storageChange message.
type StorageChangePayload struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}
