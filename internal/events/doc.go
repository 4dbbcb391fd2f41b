// Package events implements the per-cycle event and alert arbitration engine
// of the control loop: it tracks raised and permanent events, counts
// consecutive-cycle persistence, debounces alert creation, and encodes the
// active set for inter-process transport. The engine performs no I/O and no
// locking; one Log belongs to one control-loop goroutine.
package events
