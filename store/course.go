package store

import (
	"courseadmin/cache"
	"courseadmin/models"

	"gorm.io/gorm"
)

// CourseStore handles course reads and the nested write protocol for the
// course aggregate (course -> modules -> lessons, plus tag associations).
type CourseStore struct {
	db    *gorm.DB
	cache *cache.Store
}

func (s *CourseStore) preload(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Instructor").
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Order("modules.order_index asc")
		}).
		Preload("Modules.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("lessons.order_index asc")
		}).
		Preload("Tags")
}

// List returns all courses, newest first, with instructor, ordered modules
// and lessons, and tags. useCache=false bypasses the cache read but still
// repopulates on completion.
func (s *CourseStore) List(useCache bool) ([]models.Course, error) {
	key := cache.Key("courses", nil)

	if useCache {
		if cached, ok := s.cache.Get(key); ok {
			if courses, ok := cached.([]models.Course); ok {
				return courses, nil
			}
		}
	}

	var courses []models.Course
	if err := s.preload(s.db).Order("created_at desc").Find(&courses).Error; err != nil {
		return nil, normalize("list courses", err)
	}

	s.cache.Set(key, courses)
	return courses, nil
}

// GetByID returns one course with its full aggregate.
func (s *CourseStore) GetByID(id string, useCache bool) (*models.Course, error) {
	key := cache.Key("course", map[string]string{"id": id})

	if useCache {
		if cached, ok := s.cache.Get(key); ok {
			if course, ok := cached.(*models.Course); ok {
				return course, nil
			}
		}
	}

	var course models.Course
	if err := s.preload(s.db).First(&course, "id = ?", id).Error; err != nil {
		return nil, normalize("get course", err)
	}

	s.cache.Set(key, &course)
	return &course, nil
}

// ListByInstructor returns one instructor's courses, newest first. Derived
// queries get the shorter TTL: list-level invalidation may miss their keys,
// so they must age out faster.
func (s *CourseStore) ListByInstructor(instructorID string) ([]models.Course, error) {
	key := cache.Key("courses_by_instructor", map[string]string{"instructorId": instructorID})

	if cached, ok := s.cache.Get(key); ok {
		if courses, ok := cached.([]models.Course); ok {
			return courses, nil
		}
	}

	var courses []models.Course
	if err := s.preload(s.db).
		Where("instructor_id = ?", instructorID).
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return nil, normalize("list courses by instructor", err)
	}

	s.cache.SetTTL(key, courses, cache.DerivedTTL)
	return courses, nil
}

// Create fans one submission out into a course row, its module rows, their
// lesson rows, and one association row per tag id, all in one transaction.
func (s *CourseStore) Create(form *models.CourseForm) (string, error) {
	course := models.Course{
		Title:        form.Title,
		Description:  form.Description,
		Price:        form.Price,
		InstructorID: form.InstructorID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&course).Error; err != nil {
			return err
		}
		return insertChildren(tx, course.ID, form)
	})
	if err != nil {
		return "", normalize("create course", err)
	}

	s.cache.Invalidate("courses")
	scheduleWarm(func() error {
		_, err := s.List(false)
		return err
	})
	return course.ID, nil
}

// Update applies the replace-in-place protocol: scalar fields are updated on
// the existing row, then every module, lesson, and tag association is
// deleted and re-inserted from the submission. Children get new identities
// on every save. A submission carrying a stale version fails with
// ErrConflict instead of silently destroying the other writer's children;
// a zero version skips the check.
func (s *CourseStore) Update(id string, form *models.CourseForm) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.First(&course, "id = ?", id).Error; err != nil {
			return err
		}

		if form.Version > 0 && form.Version != course.Version {
			return ErrConflict
		}

		updates := map[string]interface{}{
			"title":         form.Title,
			"description":   form.Description,
			"price":         form.Price,
			"instructor_id": form.InstructorID,
			"version":       course.Version + 1,
		}
		if err := tx.Model(&course).Updates(updates).Error; err != nil {
			return err
		}

		if err := deleteChildren(tx, id); err != nil {
			return err
		}
		return insertChildren(tx, id, form)
	})
	if err != nil {
		return normalize("update course", err)
	}

	s.cache.Invalidate("course")
	scheduleWarm(func() error {
		_, err := s.List(false)
		return err
	})
	return nil
}

// Delete removes the course and everything it owns. Cascade is explicit so
// behavior does not depend on the database's foreign-key configuration.
func (s *CourseStore) Delete(id string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.First(&course, "id = ?", id).Error; err != nil {
			return err
		}
		if err := deleteChildren(tx, id); err != nil {
			return err
		}
		return tx.Delete(&models.Course{}, "id = ?", id).Error
	})
	if err != nil {
		return normalize("delete course", err)
	}

	s.cache.Invalidate("course")
	scheduleWarm(func() error {
		_, err := s.List(false)
		return err
	})
	return nil
}

// insertChildren writes the submitted module/lesson tree and tag
// associations. Modules are inserted one at a time so each generated id is
// in hand before its lessons are written; lesson attachment never depends
// on re-query ordering, even when two modules share an order value.
func insertChildren(tx *gorm.DB, courseID string, form *models.CourseForm) error {
	for _, m := range form.Modules {
		module := models.Module{
			CourseID:   courseID,
			Title:      m.Title,
			OrderIndex: m.Order,
		}
		if err := tx.Create(&module).Error; err != nil {
			return err
		}

		for _, l := range m.Lessons {
			lesson := models.Lesson{
				ModuleID:   module.ID,
				Title:      l.Title,
				Content:    l.Content,
				VideoURL:   l.VideoURL,
				OrderIndex: l.Order,
			}
			if err := tx.Create(&lesson).Error; err != nil {
				return err
			}
		}
	}

	for _, tagID := range form.TagIDs {
		if err := tx.Create(&models.CourseTag{CourseID: courseID, TagID: tagID}).Error; err != nil {
			return err
		}
	}
	return nil
}

// deleteChildren removes the course's lessons, modules, and tag rows, in
// that order so no orphan survives a partial constraint setup.
func deleteChildren(tx *gorm.DB, courseID string) error {
	if err := tx.
		Where("module_id IN (?)", tx.Model(&models.Module{}).Select("id").Where("course_id = ?", courseID)).
		Delete(&models.Lesson{}).Error; err != nil {
		return err
	}
	if err := tx.Where("course_id = ?", courseID).Delete(&models.Module{}).Error; err != nil {
		return err
	}
	return tx.Where("course_id = ?", courseID).Delete(&models.CourseTag{}).Error
}
