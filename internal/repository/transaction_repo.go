package repository

import (
	"context"
	"time"

	"skiresort/internal/domain"

	"gorm.io/gorm"
)

// TransactionRepository is append-only: there is no update or delete
// path, and none may be added.
type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

type transactionModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Reference string    `gorm:"column:reference;not null;uniqueIndex"`
	Username  string    `gorm:"column:username;not null;index"`
	Kind      string    `gorm:"column:type;not null"`
	Amount    float64   `gorm:"column:amount;not null;default:0"`
	Time      time.Time `gorm:"column:time;not null"`
}

func (transactionModel) TableName() string { return "trans" }

func toDomainTransaction(m transactionModel) domain.Transaction {
	return domain.Transaction{
		ID:        m.ID,
		Reference: m.Reference,
		Username:  m.Username,
		Kind:      domain.TransactionKind(m.Kind),
		Amount:    m.Amount,
		Time:      m.Time,
	}
}

func (r *TransactionRepository) Migrate() error {
	return r.db.AutoMigrate(&transactionModel{})
}

func (r *TransactionRepository) Append(ctx context.Context, t *domain.Transaction) error {
	m := transactionModel{
		Reference: t.Reference,
		Username:  t.Username,
		Kind:      string(t.Kind),
		Amount:    t.Amount,
		Time:      t.Time.UTC(),
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	t.ID = m.ID
	t.Time = m.Time
	return nil
}

func (r *TransactionRepository) ListAll(ctx context.Context) ([]domain.Transaction, error) {
	var rows []transactionModel
	tx := r.db.WithContext(ctx).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Transaction, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainTransaction(m))
	}
	return out, nil
}

func (r *TransactionRepository) ListFor(ctx context.Context, username string) ([]domain.Transaction, error) {
	var rows []transactionModel
	tx := r.db.WithContext(ctx).Where("username = ?", username).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Transaction, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainTransaction(m))
	}
	return out, nil
}
