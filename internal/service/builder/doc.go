// Package builder implements the packaging pipeline for the analyzer:
// a strictly linear sequence of validation gates around a single
// packaging tool invocation, followed by staging into the release
// directory and unconditional workspace cleanup.
//
// Each stage is gated on the success of the previous one; the only
// recoverable degradation is a missing optional icon. The controller is a
// small validated state machine whose terminal states are SUCCEEDED and
// FAILED, and whose post-clean pass runs on the way to both.
package builder
