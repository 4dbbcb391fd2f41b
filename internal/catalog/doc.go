// Package catalog defines the built-in event registry: every condition the
// control loop can raise, mapped to the alert each event type produces. The
// registry is static data; the five dynamic entries resolve against the live
// vehicle context each cycle.
package catalog
