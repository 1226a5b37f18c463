package utils

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jack-barr3tt/metro-engine/src/common/types"
)

// UnmarshalNetworkEvents accepts either a single event object or an array of
// them. Events of an unknown kind are dropped.
func UnmarshalNetworkEvents(data []byte) ([]types.NetworkEvent, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty network event")
	}

	var raw []types.NetworkEvent
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, err
		}
	} else {
		var event types.NetworkEvent
		if err := json.Unmarshal(trimmed, &event); err != nil {
			return nil, err
		}
		raw = append(raw, event)
	}

	events := make([]types.NetworkEvent, 0, len(raw))
	for _, event := range raw {
		if event.Valid() {
			events = append(events, event)
		}
	}
	return events, nil
}
