package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// Store is the storage surface shared by a connection and an open transaction.
type Store interface {
	MigrateModels(models ...any) error
	Create(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entities any) error
	FindWhere(ctx context.Context, entities any, query string, args ...any) error
	Count(ctx context.Context, model any, query string, args ...any) (int64, error)
	UpdateWhere(ctx context.Context, model any, values map[string]any, query string, args ...any) (int64, error)
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

var _ Store = (*GormDB)(nil)

type GormDB struct {
	db *gorm.DB
}

func NewGormDB(dsn string) (*GormDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return &GormDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewGormDBFromConn(db), nil
}

// NewGormDBFromConn wraps an already opened gorm connection.
func NewGormDBFromConn(db *gorm.DB) *GormDB {
	return &GormDB{
		db: db,
	}
}

func (f *GormDB) MigrateModels(models ...any) error {
	err := f.db.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *GormDB) Create(ctx context.Context, record any) error {
	err := f.db.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %w", ErrDuplicate, err)
		}
		return fmt.Errorf("insert record: %w", err)
	}

	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.db.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *GormDB) GetAllBy(ctx context.Context, column string, value any, entities any) error {
	tx := f.db.WithContext(ctx).Where(fmt.Sprintf("%s IN ?", column), value).Find(entities)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

// FindWhere loads every row matching the condition, oldest first.
func (f *GormDB) FindWhere(ctx context.Context, entities any, query string, args ...any) error {
	tx := f.db.WithContext(ctx).Where(query, args...).Order("created_at").Find(entities)
	if tx.Error != nil {
		return fmt.Errorf("finding records: %w", tx.Error)
	}
	return nil
}

func (f *GormDB) Count(ctx context.Context, model any, query string, args ...any) (int64, error) {
	var count int64
	if err := f.db.WithContext(ctx).Model(model).Where(query, args...).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return count, nil
}

// UpdateWhere applies values to the rows of model matching the condition and
// reports how many rows changed.
func (f *GormDB) UpdateWhere(ctx context.Context, model any, values map[string]any, query string, args ...any) (int64, error) {
	tx := f.db.WithContext(ctx).Model(model).Where(query, args...).Updates(values)
	if tx.Error != nil {
		return 0, fmt.Errorf("updating records: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}

// Transaction runs fn inside one database transaction. Returning an error
// from fn rolls back every write made through the Store it was given.
func (f *GormDB) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return f.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormDBFromConn(tx))
	})
}
