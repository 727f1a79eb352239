// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between external clients
// and the persistence layer, translating HTTP concerns to task lifecycle
// operations.
package api
