package service

import (
	"github.com/catcoat/backend/internal/domain"
)

// CatRepository is re-exported from domain for convenience
type CatRepository = domain.CatRepository
