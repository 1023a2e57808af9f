// Package services provides shared service-layer plumbing: the sentinel
// error taxonomy with stage-aware wrapping, and context annotations that
// carry run, stage, and row identity into logs.
package services
