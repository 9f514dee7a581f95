// Package report turns analysis results into the text artifacts of a run
// and persists them.
//
// Renderers (WriteAdjacency, WriteTopK, WriteConnectivity,
// WriteComponentSizes, WriteDistances, WritePaths, WriteBuildSummary) are
// pure functions of their inputs writing to an io.Writer. FileSink writes a
// batch of Artifacts with per-artifact isolation; Failures folds the failed
// outcomes into one error with go.uber.org/multierr.
package report
