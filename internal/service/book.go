package service

import (
	"bookshop-api/internal/model"
	"bookshop-api/internal/repository"
	"context"
)

type BookService interface {
	List(ctx context.Context) ([]*model.Book, error)
}

type bookServiceImpl struct {
	bookRepo repository.BookRepository
}

func NewBookService(
	bookRepo repository.BookRepository,
) BookService {
	return &bookServiceImpl{
		bookRepo: bookRepo,
	}
}

func (s *bookServiceImpl) List(ctx context.Context) ([]*model.Book, error) {
	return s.bookRepo.List(ctx)
}
