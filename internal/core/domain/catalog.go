package domain

import "errors"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

var ErrProductNotFound = errors.New("product not found")
var ErrCategoryNotFound = errors.New("category not found")
var ErrRoleNotFound = errors.New("role not found")

// Product is one catalog entry in the lubricant inventory.
type Product struct {
	ID          string  `json:"id" bson:"_id,omitempty"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description" bson:"description"`
	Price       float64 `json:"price" bson:"price"`
	Category    string  `json:"category" bson:"category"`
	Image       string  `json:"image" bson:"image"`
	Status      string  `json:"status" bson:"status"`
	Stock       int     `json:"stock" bson:"stock"`
}

// Category groups products; ParentID allows one level of nesting.
type Category struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	ParentID    string `json:"parent_id,omitempty" bson:"parent_id,omitempty"`
	IsActive    bool   `json:"is_active" bson:"is_active"`
}

// RoleRecord is the administrative description of an access class, distinct
// from the Role string carried on a User.
type RoleRecord struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	Status      string `json:"status" bson:"status"`
}
