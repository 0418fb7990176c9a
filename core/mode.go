package core

// GameMode is the session-wide play state read once per tick
type GameMode uint8

const (
	ModePlaying GameMode = iota
	ModePaused
	ModeCelebrating
)

func (m GameMode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeCelebrating:
		return "celebrating"
	default:
		return "unknown"
	}
}

// Frozen reports modes in which the vehicle does not move
func (m GameMode) Frozen() bool {
	return m == ModePaused || m == ModeCelebrating
}
