package config

// StateID identifies an entity behavior state
type StateID int

const (
	StateNone StateID = iota

	// Enemy AI states
	StateIdle
	StatePatrol
	StateChase
	StateLurk
	StateCharge
	StateRecover
	StateHit
)

// String returns the state name for the debug overlay.
func (s StateID) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePatrol:
		return "patrol"
	case StateChase:
		return "chase"
	case StateLurk:
		return "lurk"
	case StateCharge:
		return "charge"
	case StateRecover:
		return "recover"
	case StateHit:
		return "hit"
	default:
		return "none"
	}
}
