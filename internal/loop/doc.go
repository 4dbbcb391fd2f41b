// Package loop drives the arbitration engine through a scenario, one fixed
// cycle at a time, and accumulates run statistics. It is the host harness the
// simulate, monitor and serve commands share.
package loop
