package journal

import (
	"encoding/json"
	"time"
)

type Request struct {
	Limit        int
	CapturedFrom int64
	CapturedTo   int64
}

type Observation struct {
	ID         int64           `json:"id"`
	Version    string          `json:"version"`
	Phase      string          `json:"phase,omitempty"`
	CapturedAt time.Time       `json:"captured_at"`
	Snapshot   json.RawMessage `json:"snapshot"`
}

type Response struct {
	Observations []Observation `json:"observations"`
}
