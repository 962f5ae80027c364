package repository

import (
	"context"

	"skiresort/internal/domain"

	"gorm.io/gorm"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

type equipmentModel struct {
	ID        int64  `gorm:"column:id;primaryKey"`
	Type      string `gorm:"column:type;not null"`
	Size      string `gorm:"column:size;not null"`
	Total     int    `gorm:"column:total;not null;default:0"`
	Available int    `gorm:"column:available;not null;default:0"`
}

func (equipmentModel) TableName() string { return "equipment" }

// One active rental per (equipment, renter) pair; the unique index is
// what enforces it.
type rentalModel struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	EquipmentID int64  `gorm:"column:eq_id;not null;uniqueIndex:idx_rent_eq_renter"`
	Username    string `gorm:"column:username;not null;index;uniqueIndex:idx_rent_eq_renter"`
}

func (rentalModel) TableName() string { return "equipment_rent" }

func toDomainEquipment(m equipmentModel) domain.Equipment {
	return domain.Equipment{
		ID:        m.ID,
		Type:      m.Type,
		Size:      m.Size,
		Total:     m.Total,
		Available: m.Available,
	}
}

// Migrate creates the equipment tables. Exposed for seed and tests.
func (r *EquipmentRepository) Migrate() error {
	return r.db.AutoMigrate(&equipmentModel{}, &rentalModel{})
}

func (r *EquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	m := equipmentModel{Type: e.Type, Size: e.Size, Total: e.Total, Available: e.Available}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	e.ID = m.ID
	return nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var m equipmentModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	e := toDomainEquipment(m)
	return &e, nil
}

func (r *EquipmentRepository) ListAll(ctx context.Context) ([]domain.Equipment, error) {
	var rows []equipmentModel
	tx := r.db.WithContext(ctx).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Equipment, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainEquipment(m))
	}
	return out, nil
}

// RentOne checks availability and claims one unit in a single
// conditional UPDATE; the rental row is inserted in the same
// transaction. Concurrent callers racing for the last unit serialize on
// the row, and exactly one decrement wins. A renter who already holds a
// unit of this equipment is rejected by the unique index, rolling back
// the decrement.
func (r *EquipmentRepository) RentOne(ctx context.Context, equipmentID int64, username string) (int64, error) {
	var rentalID int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&equipmentModel{}).
			Where("id = ? AND available > 0", equipmentID).
			UpdateColumn("available", gorm.Expr("available - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var cnt int64
			if err := tx.Model(&equipmentModel{}).Where("id = ?", equipmentID).Count(&cnt).Error; err != nil {
				return err
			}
			if cnt == 0 {
				return gorm.ErrRecordNotFound
			}
			return ErrNoneAvailable
		}

		rental := rentalModel{EquipmentID: equipmentID, Username: username}
		if err := tx.Create(&rental).Error; err != nil {
			if isUniqueConstraintError(err) {
				return ErrAlreadyRented
			}
			return err
		}
		rentalID = rental.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return rentalID, nil
}

// ReturnOne deletes the active rental for (equipment, renter) and gives
// the unit back, atomically with the lookup. The delete targets a single
// row by id, so each return releases exactly one unit. A missing rental
// leaves availability untouched.
func (r *EquipmentRepository) ReturnOne(ctx context.Context, equipmentID int64, username string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rental rentalModel
		err := tx.Where("eq_id = ? AND username = ?", equipmentID, username).
			Order("id").First(&rental).Error
		if err != nil {
			return err
		}

		res := tx.Delete(&rentalModel{}, rental.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(&equipmentModel{}).
			Where("id = ?", equipmentID).
			UpdateColumn("available", gorm.Expr("available + 1")).Error
	})
}

func (r *EquipmentRepository) ListRentalsFor(ctx context.Context, username string) ([]domain.RentalDetails, error) {
	return r.listRentals(ctx, r.db.WithContext(ctx).Where("equipment_rent.username = ?", username))
}

func (r *EquipmentRepository) ListAllRentals(ctx context.Context) ([]domain.RentalDetails, error) {
	return r.listRentals(ctx, r.db.WithContext(ctx))
}

func (r *EquipmentRepository) listRentals(ctx context.Context, tx *gorm.DB) ([]domain.RentalDetails, error) {
	var rows []domain.RentalDetails
	err := tx.Table("equipment_rent").
		Select("equipment_rent.id AS rental_id, equipment_rent.eq_id AS equipment_id, equipment.type, equipment.size, equipment_rent.username").
		Joins("JOIN equipment ON equipment.id = equipment_rent.eq_id").
		Order("equipment_rent.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *EquipmentRepository) CountRentalsFor(ctx context.Context, username string) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&rentalModel{}).Where("username = ?", username).Count(&cnt)
	return cnt, tx.Error
}

func (r *EquipmentRepository) CountAllRentals(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&rentalModel{}).Count(&cnt)
	return cnt, tx.Error
}
