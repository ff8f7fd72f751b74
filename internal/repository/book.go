package repository

import (
	"bookshop-api/internal/model"
	"context"

	"gorm.io/gorm"
)

type BookRepository interface {
	List(ctx context.Context) ([]*model.Book, error)
}

type bookRepoImpl struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepoImpl{
		db: db,
	}
}

func (r *bookRepoImpl) List(ctx context.Context) ([]*model.Book, error) {
	var books []*model.Book

	err := r.db.WithContext(ctx).Find(&books).Error
	if err != nil {
		return nil, err
	}

	return books, nil
}
