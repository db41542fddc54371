package models

// Form payloads as submitted by the admin UI. A course submission always
// carries the full desired module/lesson/tag tree; the store replaces the
// children wholesale rather than diffing.

type CourseForm struct {
	Title        string       `json:"title" validate:"required,min=3"`
	Description  string       `json:"description" validate:"required,min=5"`
	Price        float64      `json:"price" validate:"gte=0"`
	InstructorID string       `json:"instructorId" validate:"required"`
	TagIDs       []string     `json:"tagIds"`
	Modules      []ModuleForm `json:"modules" validate:"dive"`
	// Version, when non-zero, must match the stored course version for an
	// update to be accepted. Zero skips the check.
	Version uint `json:"version"`
}

type ModuleForm struct {
	Title   string       `json:"title" validate:"required"`
	Order   int          `json:"order" validate:"gte=0"`
	Lessons []LessonForm `json:"lessons" validate:"dive"`
}

type LessonForm struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content"`
	VideoURL string `json:"videoUrl"`
	Order    int    `json:"order" validate:"gte=0"`
}

type InstructorForm struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Bio   string `json:"bio"`
}

type TagForm struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description"`
}
