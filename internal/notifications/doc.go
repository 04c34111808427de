// Package notifications publishes appointment lifecycle events.
//
// The default implementation posts to the ntfy topic configured under
// [notifications] and degrades to a no-op when no topic is set. Each event
// family can be switched off individually; suppressed events return nil
// without touching the network.
package notifications
