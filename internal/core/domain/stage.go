package domain

// Stage is one of the ordered phases of a build invocation.
// A build only ever moves forward through stages.
type Stage int

const (
	// StageUnset means no stage has been reached yet.
	StageUnset Stage = iota
	// StageLoad covers init scripts and settings loading.
	StageLoad
	// StageConfigure covers project configuration.
	StageConfigure
	// StageBuild covers task graph calculation and task execution. Terminal.
	StageBuild
)

// String returns the stage name as recorded on build results.
func (s Stage) String() string {
	switch s {
	case StageLoad:
		return "Load"
	case StageConfigure:
		return "Configure"
	case StageBuild:
		return "Build"
	default:
		return "Unset"
	}
}
