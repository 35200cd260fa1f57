package domain

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("record not found")
var ErrForbidden = errors.New("access forbidden")

// SortOrder controls the direction of name ordering on listings.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// TypeProduct is a catalog category (field names follow the store schema).
type TypeProduct struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	Codigo    string    `json:"codigo"`
	Ativo     bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Produto is a catalog item referencing a TypeProduct by id.
// The reference is logical only; the store does not enforce it here.
type Produto struct {
	ID          int64     `json:"id"`
	Nome        string    `json:"nome"`
	TipoProduto int64     `json:"tipo_produto"`
	Ativo       bool      `json:"ativo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
