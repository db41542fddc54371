// Package store implements the data-access layer: read-through caching for
// listing queries and the nested write protocol for the course aggregate.
package store

import (
	"time"

	"courseadmin/cache"

	"gorm.io/gorm"
)

// warmDelay is how long after a successful mutation the best-effort
// background cache warm runs. Not correlated with the request.
var warmDelay = time.Second

// Stores bundles the entity access modules around one database handle and
// one shared cache.
type Stores struct {
	Courses     *CourseStore
	Instructors *InstructorStore
	Tags        *TagStore
	Cache       *cache.Store
}

// New wires the entity stores. The cache is owned by the data-access layer;
// nothing above it touches cache keys directly.
func New(db *gorm.DB, c *cache.Store) *Stores {
	return &Stores{
		Courses:     &CourseStore{db: db, cache: c},
		Instructors: &InstructorStore{db: db, cache: c},
		Tags:        &TagStore{db: db, cache: c},
		Cache:       c,
	}
}

// scheduleWarm re-runs a listing query shortly after a write so the next
// read hits a fresh cache. Errors are ignored: this is a warm, not a
// consistency step.
func scheduleWarm(refresh func() error) {
	time.AfterFunc(warmDelay, func() {
		_ = refresh()
	})
}
