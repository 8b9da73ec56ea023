package repository

import "errors"

var (
	ErrNotFound         = errors.New("document not found")
	ErrDuplicate        = errors.New("duplicate document")
	ErrSingletonExists  = errors.New("singleton document already exists")
	ErrInvalidReference = errors.New("referenced document does not exist")
)
