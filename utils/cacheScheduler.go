package utils

import (
	"log"
	"time"

	"courseadmin/config"
	"courseadmin/store"

	"github.com/robfig/cron/v3"
)

// logScheduler logs cache warmer events with timestamp
func logScheduler(message string) {
	log.Printf("[CACHE-WARMER %s] %s", time.Now().Format(time.RFC3339), message)
}

// warmListings refreshes the primary listing caches before their TTL runs
// out, so interactive reads keep hitting warm entries.
func warmListings(s *store.Stores) {
	if _, err := s.Courses.List(false); err != nil {
		logScheduler("Error refreshing course listing: " + err.Error())
	}
	if _, err := s.Instructors.List(false); err != nil {
		logScheduler("Error refreshing instructor listing: " + err.Error())
	}
	if _, err := s.Tags.List(false); err != nil {
		logScheduler("Error refreshing tag listing: " + err.Error())
	}
}

// StartCacheWarmer schedules the periodic listing refresh. Returns the
// runner so the caller can stop it on shutdown.
func StartCacheWarmer(s *store.Stores) *cron.Cron {
	c := cron.New()

	spec := config.AppConfig.CacheWarmSpec
	if _, err := c.AddFunc(spec, func() { warmListings(s) }); err != nil {
		log.Printf("Invalid CACHE_WARM_SPEC %q: %v", spec, err)
		return c
	}

	c.Start()
	logScheduler("Cache warmer started with spec " + spec)
	return c
}
