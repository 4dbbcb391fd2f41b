// Package stream publishes live arbitration frames to interested peers. A
// Hub fans each frame out to connected websocket clients, the Server hosts
// the hub alongside health and catalog endpoints, and the Notifier forwards
// critical alerts to an HTTP webhook.
package stream
