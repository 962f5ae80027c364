package repository

import (
	"context"
	"time"

	"skiresort/internal/domain"

	"gorm.io/gorm"
)

type LessonRepository struct {
	db *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{db: db}
}

type lessonModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	Username   string    `gorm:"column:username;not null;index"`
	Instructor string    `gorm:"column:instructor;not null;uniqueIndex:idx_lessons_instructor_time"`
	Time       time.Time `gorm:"column:time;not null;uniqueIndex:idx_lessons_instructor_time"`
}

func (lessonModel) TableName() string { return "lessons" }

func toDomainLesson(m lessonModel) domain.Lesson {
	return domain.Lesson{
		ID:         m.ID,
		Username:   m.Username,
		Instructor: m.Instructor,
		Time:       m.Time,
	}
}

func (r *LessonRepository) Migrate() error {
	return r.db.AutoMigrate(&lessonModel{})
}

// Create inserts the lesson, relying on the (instructor, time) unique
// index to arbitrate concurrent bookings. The losing insert comes back
// as ErrInstructorTaken; there is no separate existence check to race
// against.
func (r *LessonRepository) Create(ctx context.Context, l *domain.Lesson) error {
	m := lessonModel{Username: l.Username, Instructor: l.Instructor, Time: l.Time.UTC()}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		if isUniqueConstraintError(tx.Error) {
			return ErrInstructorTaken
		}
		return tx.Error
	}
	l.ID = m.ID
	l.Time = m.Time
	return nil
}

func (r *LessonRepository) ListAll(ctx context.Context) ([]domain.Lesson, error) {
	var rows []lessonModel
	tx := r.db.WithContext(ctx).Order("time").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Lesson, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainLesson(m))
	}
	return out, nil
}

func (r *LessonRepository) ListFor(ctx context.Context, username string) ([]domain.Lesson, error) {
	var rows []lessonModel
	tx := r.db.WithContext(ctx).Where("username = ?", username).Order("time").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Lesson, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainLesson(m))
	}
	return out, nil
}

func (r *LessonRepository) CountFor(ctx context.Context, username string) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&lessonModel{}).Where("username = ?", username).Count(&cnt)
	return cnt, tx.Error
}

func (r *LessonRepository) CountAll(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&lessonModel{}).Count(&cnt)
	return cnt, tx.Error
}
