// Package metrics records navbuilder build metrics.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no nil checks are needed at call sites:
//
//	type Watcher struct {
//		recorder metrics.Recorder
//	}
//
//	w.recorder.IncBuildOutcome(metrics.OutcomeSuccess)
//
// PrometheusRecorder registers its collectors on a caller-supplied registry.
// WriteTextfile dumps that registry in the node-exporter textfile format,
// which suits a long-running watch process on a host that already scrapes
// a textfile directory.
package metrics
