package model

import "time"

type Tool struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name" binding:"required"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Link        string    `bson:"link,omitempty" json:"link,omitempty"`
	Icon        string    `bson:"icon,omitempty" json:"icon,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

type Achievement struct {
	ID          string     `bson:"_id,omitempty" json:"id"`
	Title       string     `bson:"title" json:"title" binding:"required"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Date        *time.Time `bson:"date,omitempty" json:"date,omitempty"`
	Icon        string     `bson:"icon,omitempty" json:"icon,omitempty"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
}
