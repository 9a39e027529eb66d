//go:build hamtchecks

package hamt

const internalChecks = true
