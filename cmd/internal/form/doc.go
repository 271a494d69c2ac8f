// Package form orchestrates the new-password / confirm-password entry form.
//
// A Form owns the text of both fields, the focused field, the one-way strict
// flag and the criteria display of the new-password field. It is driven by
// Edit, Focus, Blur and Submit calls and reports every change to subscribers.
//
// A Form is single-threaded: callers apply events one at a time, in the order
// they occurred, from a single goroutine.
package form
