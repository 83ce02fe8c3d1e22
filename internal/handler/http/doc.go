// Package http implements the local HTTP facade of the client.
//
// The facade listens on a loopback address and gives other processes on the
// machine a small REST surface over the offline core: connectivity status,
// the pending operation queue, manual sync, and the offline read cache.
// Cross-cutting concerns such as request tracing, access logging, and panic
// recovery are handled in this package before requests are delegated to the
// service layer.
package http
