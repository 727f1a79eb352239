// Package store defines interfaces for task persistence operations.
// These interfaces abstract the underlying relational store from the
// request-handling logic, so the API layer stays independent of the
// specific database technology and its driver.
package store
