// Package metrics records conversion run metrics.
//
// Components receive a Recorder and default to NoopRecorder, so nothing is
// collected unless a run asks for it:
//
//	reg := prometheus.NewRegistry()
//	recorder := metrics.NewPrometheusRecorder(reg)
//	// ... run ...
//	_ = metrics.WriteTextfile(reg, "uwiki.prom")
//
// The text file follows the node_exporter textfile collector format, which
// suits a one-shot tool that never serves HTTP.
package metrics
