package driver

// Stage names a phase within checking a single file. Lexing, parsing, and
// binding happen upstream of the driver (§6.1's bound-program contract), so
// only the stages below are defined. CheckProgramWithEvents emits
// StageQueued, StageCheck and StageDone; StageCacheLookup and
// StageCacheWrite are never emitted.
type Stage uint8

const (
	StageQueued Stage = iota
	StageCacheLookup
	StageCheck
	StageCacheWrite
	StageDone
)

// Status reports how a file's progress through Stage is going.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event reports a single file's progress, consumed by internal/ui's
// watch-mode progress model. File is empty for program-wide events (none
// currently emitted, reserved for a future whole-program stage label).
type Event struct {
	File   string
	Stage  Stage
	Status Status
}
