package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Instructor represents a course author
type Instructor struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// CourseCount is derived from the courses table, never persisted
	CourseCount int64 `json:"courseCount" gorm:"-"`
}

func (i *Instructor) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
