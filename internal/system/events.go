package system

import "github.com/yohamta/donburi/features/events"

// TickSkipped is published when a tracking tick could not read the window
// position. Marker points keep their previous values.
type TickSkipped struct {
	// Tick counts successful ticks before the skip.
	Tick int
}

var TickSkippedEvent = events.NewEventType[TickSkipped]()
