// Package controllers holds the request handlers. Each handler takes the
// validated form out of c.Locals, calls into the store layer, and writes
// the response envelope.
package controllers

import "courseadmin/store"

// Store is the data-access layer, wired once at startup.
var Store *store.Stores

// Init injects the stores the handlers operate on.
func Init(s *store.Stores) {
	Store = s
}
