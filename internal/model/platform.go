package model

import (
	"encoding/json"
	"time"
)

type PlatformSetting struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedBy *string         `json:"updated_by,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}
