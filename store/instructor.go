package store

import (
	"courseadmin/cache"
	"courseadmin/models"

	"gorm.io/gorm"
)

// InstructorStore wraps instructor reads through the cache and routes
// writes straight to the database before invalidating.
type InstructorStore struct {
	db    *gorm.DB
	cache *cache.Store
}

// List returns all instructors ordered by name with their course counts.
// useCache=false skips the cache read but still repopulates on completion.
func (s *InstructorStore) List(useCache bool) ([]models.Instructor, error) {
	key := cache.Key("instructors", nil)

	if useCache {
		if cached, ok := s.cache.Get(key); ok {
			if instructors, ok := cached.([]models.Instructor); ok {
				return instructors, nil
			}
		}
	}

	var instructors []models.Instructor
	if err := s.db.Order("name asc").Find(&instructors).Error; err != nil {
		return nil, normalize("list instructors", err)
	}

	if err := s.fillCourseCounts(instructors); err != nil {
		return nil, err
	}

	s.cache.Set(key, instructors)
	return instructors, nil
}

// GetByID returns one instructor with its course count.
func (s *InstructorStore) GetByID(id string, useCache bool) (*models.Instructor, error) {
	key := cache.Key("instructor", map[string]string{"id": id})

	if useCache {
		if cached, ok := s.cache.Get(key); ok {
			if instructor, ok := cached.(*models.Instructor); ok {
				return instructor, nil
			}
		}
	}

	var instructor models.Instructor
	if err := s.db.First(&instructor, "id = ?", id).Error; err != nil {
		return nil, normalize("get instructor", err)
	}

	if err := s.db.Model(&models.Course{}).
		Where("instructor_id = ?", id).
		Count(&instructor.CourseCount).Error; err != nil {
		return nil, normalize("count instructor courses", err)
	}

	s.cache.Set(key, &instructor)
	return &instructor, nil
}

// Create inserts an instructor after an advisory email pre-check.
func (s *InstructorStore) Create(form *models.InstructorForm) (string, error) {
	var existing int64
	if err := s.db.Model(&models.Instructor{}).
		Where("email = ?", form.Email).
		Count(&existing).Error; err != nil {
		return "", normalize("check instructor email", err)
	}
	if existing > 0 {
		return "", ErrDuplicate
	}

	instructor := models.Instructor{
		Name:  form.Name,
		Email: form.Email,
		Bio:   form.Bio,
	}
	if err := s.db.Create(&instructor).Error; err != nil {
		return "", normalize("create instructor", err)
	}

	s.cache.Invalidate("instructors")
	scheduleWarm(func() error {
		_, err := s.List(false)
		return err
	})
	return instructor.ID, nil
}

// Update rewrites an instructor's fields. The duplicate pre-check excludes
// the row being updated. Course caches are invalidated too because course
// listings embed instructor display data.
func (s *InstructorStore) Update(id string, form *models.InstructorForm) error {
	var instructor models.Instructor
	if err := s.db.First(&instructor, "id = ?", id).Error; err != nil {
		return normalize("get instructor", err)
	}

	if form.Email != instructor.Email {
		var existing int64
		if err := s.db.Model(&models.Instructor{}).
			Where("email = ? AND id <> ?", form.Email, id).
			Count(&existing).Error; err != nil {
			return normalize("check instructor email", err)
		}
		if existing > 0 {
			return ErrDuplicate
		}
	}

	instructor.Name = form.Name
	instructor.Email = form.Email
	instructor.Bio = form.Bio

	if err := s.db.Save(&instructor).Error; err != nil {
		return normalize("update instructor", err)
	}

	s.cache.Invalidate("instructor")
	s.cache.Invalidate("courses")
	scheduleWarm(func() error {
		_, err := s.List(false)
		return err
	})
	return nil
}

// Delete removes the instructor row. Referential rules (instructor still
// owning courses) are checked by the caller, not here.
func (s *InstructorStore) Delete(id string) error {
	result := s.db.Delete(&models.Instructor{}, "id = ?", id)
	if result.Error != nil {
		return normalize("delete instructor", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	s.cache.Invalidate("instructor")
	scheduleWarm(func() error {
		_, err := s.List(false)
		return err
	})
	return nil
}

// CourseCount reports how many courses reference the instructor.
func (s *InstructorStore) CourseCount(id string) (int64, error) {
	var count int64
	if err := s.db.Model(&models.Course{}).
		Where("instructor_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, normalize("count instructor courses", err)
	}
	return count, nil
}

func (s *InstructorStore) fillCourseCounts(instructors []models.Instructor) error {
	if len(instructors) == 0 {
		return nil
	}

	type row struct {
		InstructorID string
		Total        int64
	}
	var rows []row
	if err := s.db.Model(&models.Course{}).
		Select("instructor_id, COUNT(*) as total").
		Group("instructor_id").
		Scan(&rows).Error; err != nil {
		return normalize("count instructor courses", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.InstructorID] = r.Total
	}
	for i := range instructors {
		instructors[i].CourseCount = counts[instructors[i].ID]
	}
	return nil
}
