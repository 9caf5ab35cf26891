// Package proto defines the wire format of the websocket stream variant.
// The stream is one-directional: the server pushes full feed snapshots,
// clients send nothing.
package proto

import "github.com/vovakirdan/livefeed-server/internal/core"

// OutboundTypeSnapshot carries the full feed state after a change.
const OutboundTypeSnapshot = "snapshot"

// Snapshot is the envelope for one feed state pushed to the client.
// Version is the change-signal version the snapshot was read for; it is
// monotonically increasing per connection, with gaps where updates
// coalesced.
type Snapshot struct {
	Type    string      `json:"type"`
	Version uint64      `json:"version"`
	Posts   []core.Post `json:"posts"`
}
