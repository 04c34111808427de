// Package appointments owns the appointment entity and its persistence.
//
// It defines the closed Status, Kind and Channel enumerations, the single
// transition table consulted before every lifecycle change, and the typed
// TransitionError and ValidationError values. The Store persists appointments
// in SQLite (modernc.org/sqlite) and serializes concurrent writers through an
// optimistic check on (status, version): a save whose precondition no longer
// holds fails with ErrStale instead of overwriting the winner.
package appointments
