package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Course is the aggregate root: it exclusively owns its modules and lessons,
// and owns its course_tags association rows (the tags themselves are shared).
type Course struct {
	ID           string      `json:"id" gorm:"type:uuid;primaryKey"`
	Title        string      `json:"title" gorm:"not null"`
	Description  string      `json:"description"`
	Price        float64     `json:"price" gorm:"not null;default:0"`
	InstructorID string      `json:"instructorId" gorm:"type:uuid;index;not null"`
	Instructor   *Instructor `json:"instructor,omitempty" gorm:"foreignKey:InstructorID"`
	Modules      []Module    `json:"modules" gorm:"foreignKey:CourseID"`
	Tags         []Tag       `json:"tags" gorm:"many2many:course_tags;"`
	// Version is compared-and-incremented on update to detect lost updates
	Version   uint      `json:"version" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Module represents an ordered section within a course
type Module struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	CourseID   string    `json:"courseId" gorm:"type:uuid;index;not null"`
	Title      string    `json:"title" gorm:"not null"`
	OrderIndex int       `json:"order" gorm:"not null;default:0"` // zero-based position in the course
	Lessons    []Lesson  `json:"lessons" gorm:"foreignKey:ModuleID"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (m *Module) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// Lesson represents an ordered unit of content within a module
type Lesson struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	ModuleID   string    `json:"moduleId" gorm:"type:uuid;index;not null"`
	Title      string    `json:"title" gorm:"not null"`
	Content    string    `json:"content" gorm:"type:text"`
	VideoURL   string    `json:"videoUrl"`
	OrderIndex int       `json:"order" gorm:"not null;default:0"` // position within the module
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (l *Lesson) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// CourseTag is one (course, tag) association row. Owned by the course:
// deleting the course removes its rows, the tag survives.
type CourseTag struct {
	CourseID string `json:"courseId" gorm:"type:uuid;primaryKey"`
	TagID    string `json:"tagId" gorm:"type:uuid;primaryKey"`
}

func (CourseTag) TableName() string {
	return "course_tags"
}
