package repository

import (
	"context"

	"skiresort/internal/domain"

	"gorm.io/gorm"
)

type InstructorRepository struct {
	db *gorm.DB
}

func NewInstructorRepository(db *gorm.DB) *InstructorRepository {
	return &InstructorRepository{db: db}
}

type instructorModel struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;not null;uniqueIndex"`
}

func (instructorModel) TableName() string { return "instructors" }

func (r *InstructorRepository) Migrate() error {
	return r.db.AutoMigrate(&instructorModel{})
}

func (r *InstructorRepository) Create(ctx context.Context, i *domain.Instructor) error {
	m := instructorModel{Name: i.Name}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	i.ID = m.ID
	return nil
}

func (r *InstructorRepository) ListNames(ctx context.Context) ([]string, error) {
	var names []string
	tx := r.db.WithContext(ctx).Model(&instructorModel{}).Order("id").Pluck("name", &names)
	return names, tx.Error
}

func (r *InstructorRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&instructorModel{}).Where("name = ?", name).Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}
