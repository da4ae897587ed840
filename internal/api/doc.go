// Package api implements the HTTP surface of the event planner: the route
// table, request decoding, handlers for users and events, the informational
// routes, and the mapping from service errors to HTTP status codes.
package api
