package store

import (
	"fmt"
	"testing"
	"time"

	"courseadmin/cache"
	"courseadmin/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	// Keep the post-write background warm from firing mid-assertion.
	warmDelay = time.Hour
}

// newTestStores opens an isolated in-memory database per test and wires a
// fresh cache around it.
func newTestStores(t *testing.T) *Stores {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Instructor{},
		&models.Tag{},
		&models.Course{},
		&models.Module{},
		&models.Lesson{},
		&models.CourseTag{},
	))

	return New(db, cache.New())
}

func seedInstructor(t *testing.T, s *Stores, name, email string) string {
	t.Helper()
	id, err := s.Instructors.Create(&models.InstructorForm{Name: name, Email: email})
	require.NoError(t, err)
	return id
}

func seedTag(t *testing.T, s *Stores, name string) string {
	t.Helper()
	id, err := s.Tags.Create(&models.TagForm{Name: name})
	require.NoError(t, err)
	return id
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
