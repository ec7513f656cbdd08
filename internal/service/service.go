// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives bound
// request data from a handler, runs the matching repository statement and
// decides what an empty result means for the caller.
package service
