package storage

import jsoniter "github.com/json-iterator/go"

// Codec turns values into the bytes kept by the durable store.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSON is the default codec. It behaves like encoding/json.
var JSON Codec = jsoniter.ConfigCompatibleWithStandardLibrary
