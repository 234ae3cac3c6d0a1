package metrics

import "time"

// BuildOutcome labels the result of one configuration build.
type BuildOutcome string

const (
	OutcomeSuccess BuildOutcome = "success"
	OutcomeWarning BuildOutcome = "warning"
	OutcomeFailed  BuildOutcome = "failed"
)

// Recorder defines observability hooks for configuration builds.
type Recorder interface {
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(outcome BuildOutcome)
	SetSidebarLinks(n int)
	AddValidationWarnings(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveBuildDuration(time.Duration) {}
func (NoopRecorder) IncBuildOutcome(BuildOutcome)       {}
func (NoopRecorder) SetSidebarLinks(int)                {}
func (NoopRecorder) AddValidationWarnings(int)          {}

// OutcomeFor derives the outcome label from a build error and its warning count.
func OutcomeFor(err error, warnings int) BuildOutcome {
	switch {
	case err != nil:
		return OutcomeFailed
	case warnings > 0:
		return OutcomeWarning
	default:
		return OutcomeSuccess
	}
}
