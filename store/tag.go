package store

import (
	"courseadmin/cache"
	"courseadmin/models"

	"gorm.io/gorm"
)

// TagStore wraps tag reads through the cache and routes writes straight to
// the database before invalidating.
type TagStore struct {
	db    *gorm.DB
	cache *cache.Store
}

// List returns all tags ordered by name with their usage counts.
func (s *TagStore) List(useCache bool) ([]models.Tag, error) {
	key := cache.Key("tags", nil)

	if useCache {
		if cached, ok := s.cache.Get(key); ok {
			if tags, ok := cached.([]models.Tag); ok {
				return tags, nil
			}
		}
	}

	var tags []models.Tag
	if err := s.db.Order("name asc").Find(&tags).Error; err != nil {
		return nil, normalize("list tags", err)
	}

	if err := s.fillUsageCounts(tags); err != nil {
		return nil, err
	}

	s.cache.Set(key, tags)
	return tags, nil
}

// GetByID returns one tag with its usage count.
func (s *TagStore) GetByID(id string, useCache bool) (*models.Tag, error) {
	key := cache.Key("tag", map[string]string{"id": id})

	if useCache {
		if cached, ok := s.cache.Get(key); ok {
			if tag, ok := cached.(*models.Tag); ok {
				return tag, nil
			}
		}
	}

	var tag models.Tag
	if err := s.db.First(&tag, "id = ?", id).Error; err != nil {
		return nil, normalize("get tag", err)
	}

	if err := s.db.Model(&models.CourseTag{}).
		Where("tag_id = ?", id).
		Count(&tag.UsageCount).Error; err != nil {
		return nil, normalize("count tag usage", err)
	}

	s.cache.Set(key, &tag)
	return &tag, nil
}

// Create inserts a tag after an advisory name pre-check.
func (s *TagStore) Create(form *models.TagForm) (string, error) {
	var existing int64
	if err := s.db.Model(&models.Tag{}).
		Where("name = ?", form.Name).
		Count(&existing).Error; err != nil {
		return "", normalize("check tag name", err)
	}
	if existing > 0 {
		return "", ErrDuplicate
	}

	tag := models.Tag{
		Name:        form.Name,
		Description: form.Description,
	}
	if err := s.db.Create(&tag).Error; err != nil {
		return "", normalize("create tag", err)
	}

	s.cache.Invalidate("tags")
	scheduleWarm(func() error {
		_, err := s.List(false)
		return err
	})
	return tag.ID, nil
}

// Update rewrites a tag's fields; the name pre-check excludes the updated
// row. Course caches are invalidated because listings embed tag data.
func (s *TagStore) Update(id string, form *models.TagForm) error {
	var tag models.Tag
	if err := s.db.First(&tag, "id = ?", id).Error; err != nil {
		return normalize("get tag", err)
	}

	if form.Name != tag.Name {
		var existing int64
		if err := s.db.Model(&models.Tag{}).
			Where("name = ? AND id <> ?", form.Name, id).
			Count(&existing).Error; err != nil {
			return normalize("check tag name", err)
		}
		if existing > 0 {
			return ErrDuplicate
		}
	}

	tag.Name = form.Name
	tag.Description = form.Description

	if err := s.db.Save(&tag).Error; err != nil {
		return normalize("update tag", err)
	}

	s.cache.Invalidate("tag")
	s.cache.Invalidate("courses")
	scheduleWarm(func() error {
		_, err := s.List(false)
		return err
	})
	return nil
}

// Delete removes the tag row. In-use checks belong to the caller.
func (s *TagStore) Delete(id string) error {
	result := s.db.Delete(&models.Tag{}, "id = ?", id)
	if result.Error != nil {
		return normalize("delete tag", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	s.cache.Invalidate("tag")
	scheduleWarm(func() error {
		_, err := s.List(false)
		return err
	})
	return nil
}

// UsageCount reports how many course_tags rows reference the tag.
func (s *TagStore) UsageCount(id string) (int64, error) {
	var count int64
	if err := s.db.Model(&models.CourseTag{}).
		Where("tag_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, normalize("count tag usage", err)
	}
	return count, nil
}

func (s *TagStore) fillUsageCounts(tags []models.Tag) error {
	if len(tags) == 0 {
		return nil
	}

	type row struct {
		TagID string
		Total int64
	}
	var rows []row
	if err := s.db.Model(&models.CourseTag{}).
		Select("tag_id, COUNT(*) as total").
		Group("tag_id").
		Scan(&rows).Error; err != nil {
		return normalize("count tag usage", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.TagID] = r.Total
	}
	for i := range tags {
		tags[i].UsageCount = counts[tags[i].ID]
	}
	return nil
}
