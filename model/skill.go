package model

import "time"

type Skill struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name" binding:"required"`
	Category    string    `bson:"category" json:"category" binding:"required"`
	Proficiency int       `bson:"proficiency" json:"proficiency" binding:"required,min=1,max=5"`
	Icon        string    `bson:"icon,omitempty" json:"icon,omitempty"`
	IconSet     string    `bson:"icon_set,omitempty" json:"iconSet,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Featured    bool      `bson:"featured" json:"featured"`
	Order       int       `bson:"order" json:"order"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
