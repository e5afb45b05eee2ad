package model

// ScheduleState is the controller's operating mode, derived each loop
// iteration from wall-clock time in the trading timezone.
type ScheduleState int

const (
	StateWeekend ScheduleState = iota
	StateOutsideSession
	StateActiveSession
)

func (s ScheduleState) String() string {
	switch s {
	case StateWeekend:
		return "weekend"
	case StateOutsideSession:
		return "outsideSession"
	case StateActiveSession:
		return "activeSession"
	default:
		return "unknown"
	}
}
