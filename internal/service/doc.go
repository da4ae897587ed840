// Package service contains the application use cases of the event planner.
// It orchestrates domain objects, the password hasher, and the stores
// defined in internal/store, and never depends on a concrete database.
//
// Services return domain, store, or auth sentinel errors (possibly wrapped)
// so the API layer can map them to responses with errors.Is.
package service
