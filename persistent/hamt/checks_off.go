//go:build !hamtchecks

package hamt

// internalChecks re-verifies the structural invariants after every
// public mutation and turns storage-level precondition violations into
// panics. Enable with the hamtchecks build tag.
const internalChecks = false
