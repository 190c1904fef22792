package model

// Package model defines the value types shared by the classifier, the resolver
// and the download orchestrator: reference kinds, encoding targets, progress
// snapshots, and single-item and batch outcomes. Values are created and
// consumed within one invocation and are never mutated after being handed to
// a caller.
