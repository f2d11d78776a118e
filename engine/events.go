package engine

import (
	"fmt"

	"github.com/lixenwraith/platform-fighter/fighter"
	"github.com/lixenwraith/platform-fighter/vmath"
)

// EventType tags a notable simulation moment for audio, logs and telemetry
type EventType uint8

const (
	EventJump EventType = iota
	EventAirJump
	EventLand
	EventAirDodge
	EventFall
	EventRespawn
	EventPause
	EventResume
	EventReset

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	"jump", "air_jump", "land", "air_dodge", "fall", "respawn", "pause", "resume", "reset",
}

func (t EventType) String() string {
	if t < eventTypeCount {
		return eventNames[t]
	}
	return fmt.Sprintf("EventType(%d)", uint8(t))
}

// MarshalText writes the event name
func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Event is emitted synchronously from Update, handlers must not call back into the Game
type Event struct {
	Type     EventType     `json:"type"`
	Frame    uint64        `json:"frame"`
	From     fighter.State `json:"from"`
	To       fighter.State `json:"to"`
	Position vmath.Point2D `json:"position"`
}

// eventForTransition maps a fighter state change to an event, if any
func eventForTransition(from, to fighter.State) (EventType, bool) {
	switch {
	case to == fighter.Airborne && from == fighter.JumpSquat:
		return EventJump, true
	case to == fighter.Airborne && from.IsGrounded():
		return EventFall, true
	case to == fighter.AirDodge:
		return EventAirDodge, true
	case to == fighter.Land || to == fighter.LandSpecial:
		return EventLand, true
	}
	return 0, false
}
