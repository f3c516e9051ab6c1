// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It adapts HTTP concerns to the task lifecycle
// service: header identity extraction, query parameter parsing, response
// envelopes, and the mapping of classified errors to status codes.
package api
