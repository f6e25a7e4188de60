// Package analysis ties spectral analysis, statistics and Butterworth
// filtering into the two user actions of a signal viewer: loading a signal
// and filtering it.
//
// Records are immutable. [LoadAndAnalyze] and [FilterAndAnalyze] compute the
// spectrum once at construction and every failure is reported as an
// [*Error] carrying one of four kinds, with no partial result.
package analysis
