// internal/event/types.go
package event

// Sent by the visualizer pipeline right after an event was committed.
// Data is the committed core.CoreEvent.
const (
	UnitMoved   EventType = "UnitMoved"
	UnitCreated EventType = "UnitCreated"
	TurnEnded   EventType = "TurnEnded"
)

// Committed lists every post-commit notification.
var Committed = []EventType{UnitMoved, UnitCreated, TurnEnded}
