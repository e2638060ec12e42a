// Package assign distributes generated artifact pools across partition sets.
//
// Artifacts (e.g. interpolated MIDI files for one cluster transition) arrive
// as a lexically sorted identifier list and are consumed strictly in that
// order: two per partition in partition order, with a single surplus artifact
// routed to the heaviest partition. The assigner never fails fatally —
// malformed pool sizes degrade gracefully and are surfaced as diagnostics so
// a batch run can log them and keep going.
package assign
