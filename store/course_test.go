package store

import (
	"testing"

	"courseadmin/cache"
	"courseadmin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func courseForm(instructorID string, tagIDs []string, modules ...models.ModuleForm) *models.CourseForm {
	return &models.CourseForm{
		Title:        "Go from scratch",
		Description:  "A full introduction",
		Price:        49.99,
		InstructorID: instructorID,
		TagIDs:       tagIDs,
		Modules:      modules,
	}
}

func TestCourseCreateFansOutAllRows(t *testing.T) {
	s := newTestStores(t)
	instructorID := seedInstructor(t, s, "Ada", "ada@example.com")
	tag1 := seedTag(t, s, "go")
	tag2 := seedTag(t, s, "backend")

	form := courseForm(instructorID, []string{tag1, tag2}, models.ModuleForm{
		Title: "M1",
		Order: 0,
		Lessons: []models.LessonForm{
			{Title: "L1", Order: 0},
		},
	})

	id, err := s.Courses.Create(form)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	assert.EqualValues(t, 1, countRows(t, s.Courses.db, &models.Course{}))
	assert.EqualValues(t, 1, countRows(t, s.Courses.db, &models.Module{}))
	assert.EqualValues(t, 1, countRows(t, s.Courses.db, &models.Lesson{}))
	assert.EqualValues(t, 2, countRows(t, s.Courses.db, &models.CourseTag{}))

	course, err := s.Courses.GetByID(id, false)
	require.NoError(t, err)
	require.Len(t, course.Modules, 1)
	assert.Equal(t, 0, course.Modules[0].OrderIndex)
	require.Len(t, course.Modules[0].Lessons, 1)
	assert.Equal(t, "L1", course.Modules[0].Lessons[0].Title)
	assert.Len(t, course.Tags, 2)
	require.NotNil(t, course.Instructor)
	assert.Equal(t, "Ada", course.Instructor.Name)
}

func TestCourseUpdateReplacesChildrenWithNewIdentities(t *testing.T) {
	s := newTestStores(t)
	instructorID := seedInstructor(t, s, "Ada", "ada@example.com")
	tagID := seedTag(t, s, "go")

	id, err := s.Courses.Create(courseForm(instructorID, []string{tagID},
		models.ModuleForm{Title: "M1", Order: 0, Lessons: []models.LessonForm{
			{Title: "L1", Order: 0},
			{Title: "L2", Order: 1},
		}},
		models.ModuleForm{Title: "M2", Order: 1, Lessons: []models.LessonForm{
			{Title: "L3", Order: 0},
		}},
	))
	require.NoError(t, err)

	before, err := s.Courses.GetByID(id, false)
	require.NoError(t, err)
	require.Len(t, before.Modules, 2)
	oldModuleIDs := map[string]bool{}
	oldLessonIDs := map[string]bool{}
	for _, m := range before.Modules {
		oldModuleIDs[m.ID] = true
		for _, l := range m.Lessons {
			oldLessonIDs[l.ID] = true
		}
	}

	update := courseForm(instructorID, nil, models.ModuleForm{
		Title: "Only module", Order: 0, Lessons: []models.LessonForm{
			{Title: "Only lesson", Order: 0},
		},
	})
	update.Title = "Renamed"
	require.NoError(t, s.Courses.Update(id, update))

	assert.EqualValues(t, 1, countRows(t, s.Courses.db, &models.Module{}))
	assert.EqualValues(t, 1, countRows(t, s.Courses.db, &models.Lesson{}))
	assert.EqualValues(t, 0, countRows(t, s.Courses.db, &models.CourseTag{}))

	after, err := s.Courses.GetByID(id, false)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", after.Title)
	require.Len(t, after.Modules, 1)
	assert.False(t, oldModuleIDs[after.Modules[0].ID], "module identity must be new after update")
	require.Len(t, after.Modules[0].Lessons, 1)
	assert.False(t, oldLessonIDs[after.Modules[0].Lessons[0].ID], "lesson identity must be new after update")
}

func TestCourseUpdateAttachesLessonsByCapturedID(t *testing.T) {
	s := newTestStores(t)
	instructorID := seedInstructor(t, s, "Ada", "ada@example.com")

	id, err := s.Courses.Create(courseForm(instructorID, nil,
		models.ModuleForm{Title: "Seed", Order: 0},
	))
	require.NoError(t, err)

	// Both modules share order 0: positional re-query correlation would be
	// free to attach lessons to the wrong module here.
	update := courseForm(instructorID, nil,
		models.ModuleForm{Title: "Alpha", Order: 0, Lessons: []models.LessonForm{
			{Title: "alpha lesson", Order: 0},
		}},
		models.ModuleForm{Title: "Beta", Order: 0, Lessons: []models.LessonForm{
			{Title: "beta lesson", Order: 0},
		}},
	)
	require.NoError(t, s.Courses.Update(id, update))

	var modules []models.Module
	require.NoError(t, s.Courses.db.Preload("Lessons").Find(&modules).Error)
	require.Len(t, modules, 2)

	for _, m := range modules {
		require.Len(t, m.Lessons, 1)
		switch m.Title {
		case "Alpha":
			assert.Equal(t, "alpha lesson", m.Lessons[0].Title)
		case "Beta":
			assert.Equal(t, "beta lesson", m.Lessons[0].Title)
		default:
			t.Fatalf("unexpected module %q", m.Title)
		}
	}
}

func TestCourseUpdateVersionCheck(t *testing.T) {
	s := newTestStores(t)
	instructorID := seedInstructor(t, s, "Ada", "ada@example.com")

	id, err := s.Courses.Create(courseForm(instructorID, nil))
	require.NoError(t, err)

	// Matching version is accepted and incremented.
	update := courseForm(instructorID, nil)
	update.Version = 1
	require.NoError(t, s.Courses.Update(id, update))

	// Replaying the stale version now fails.
	stale := courseForm(instructorID, nil)
	stale.Version = 1
	err = s.Courses.Update(id, stale)
	assert.ErrorIs(t, err, ErrConflict)

	// A versionless submission keeps the legacy last-writer-wins behavior.
	require.NoError(t, s.Courses.Update(id, courseForm(instructorID, nil)))
}

func TestCourseDeleteRemovesAggregate(t *testing.T) {
	s := newTestStores(t)
	instructorID := seedInstructor(t, s, "Ada", "ada@example.com")
	tagID := seedTag(t, s, "go")

	id, err := s.Courses.Create(courseForm(instructorID, []string{tagID},
		models.ModuleForm{Title: "M1", Order: 0, Lessons: []models.LessonForm{
			{Title: "L1", Order: 0},
		}},
	))
	require.NoError(t, err)

	require.NoError(t, s.Courses.Delete(id))

	assert.EqualValues(t, 0, countRows(t, s.Courses.db, &models.Course{}))
	assert.EqualValues(t, 0, countRows(t, s.Courses.db, &models.Module{}))
	assert.EqualValues(t, 0, countRows(t, s.Courses.db, &models.Lesson{}))
	assert.EqualValues(t, 0, countRows(t, s.Courses.db, &models.CourseTag{}))

	// The tag itself survives the course.
	assert.EqualValues(t, 1, countRows(t, s.Courses.db, &models.Tag{}))

	_, err = s.Courses.GetByID(id, false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCourseListReadsThroughCache(t *testing.T) {
	s := newTestStores(t)
	instructorID := seedInstructor(t, s, "Ada", "ada@example.com")

	_, err := s.Courses.Create(courseForm(instructorID, nil))
	require.NoError(t, err)

	first, err := s.Courses.List(true)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Write behind the store's back: a cached read must not see it.
	course := models.Course{
		Title:        "Smuggled",
		Price:        1,
		InstructorID: instructorID,
	}
	require.NoError(t, s.Courses.db.Create(&course).Error)

	second, err := s.Courses.List(true)
	require.NoError(t, err)
	assert.Len(t, second, 1, "second cached read never reached the database")

	forced, err := s.Courses.List(false)
	require.NoError(t, err)
	assert.Len(t, forced, 2, "bypassing the cache reaches the database")

	// The bypass repopulated the cache with the fresh payload.
	third, err := s.Courses.List(true)
	require.NoError(t, err)
	assert.Len(t, third, 2)
}

func TestCourseWritesInvalidateDerivedCaches(t *testing.T) {
	s := newTestStores(t)
	instructorID := seedInstructor(t, s, "Ada", "ada@example.com")

	id, err := s.Courses.Create(courseForm(instructorID, nil))
	require.NoError(t, err)

	_, err = s.Courses.List(true)
	require.NoError(t, err)
	_, err = s.Courses.ListByInstructor(instructorID)
	require.NoError(t, err)

	update := courseForm(instructorID, nil)
	update.Title = "Changed"
	require.NoError(t, s.Courses.Update(id, update))

	_, ok := s.Cache.Get(cache.Key("courses", nil))
	assert.False(t, ok, "listing cache gone after update")
	_, ok = s.Cache.Get(cache.Key("courses_by_instructor", map[string]string{"instructorId": instructorID}))
	assert.False(t, ok, "derived cache gone after update")
	_, ok = s.Cache.Get(cache.Key("course", map[string]string{"id": id}))
	assert.False(t, ok, "by-id cache gone after update")
}
