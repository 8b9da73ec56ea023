package model

import (
	"errors"
	"time"
)

type CommentStatus string

const (
	CommentPending  CommentStatus = "pending"
	CommentApproved CommentStatus = "approved"
	CommentSpam     CommentStatus = "spam"
)

// CommentAuthor is the legacy nested author shape. New comments carry
// Name/Email directly; old documents only have the nested form.
type CommentAuthor struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
}

type Comment struct {
	ID            string        `bson:"_id,omitempty" json:"id"`
	BlogID        string        `bson:"blog_id,omitempty" json:"blog_id,omitempty"`
	Name          string        `bson:"name,omitempty" json:"name,omitempty"`
	Email         string        `bson:"email,omitempty" json:"email,omitempty"`
	Content       string        `bson:"content" json:"content" binding:"required"`
	Author        CommentAuthor `bson:"author,omitempty" json:"author,omitempty"`
	Status        CommentStatus `bson:"status" json:"status"`
	ParentComment string        `bson:"parent_comment,omitempty" json:"parent_comment,omitempty"`
	Likes         int           `bson:"likes" json:"likes"`
	IsEdited      bool          `bson:"is_edited" json:"is_edited"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `bson:"updated_at" json:"updated_at"`
}

// ResolveLegacyFields fills Name/Email from the nested legacy author
// before save and verifies the comment still resolves to a blog and an
// author name.
func (c *Comment) ResolveLegacyFields() error {
	if c.Name == "" && c.Author.Name != "" {
		c.Name = c.Author.Name
	}
	if c.Email == "" && c.Author.Email != "" {
		c.Email = c.Author.Email
	}
	if c.BlogID == "" {
		return errors.New("blog reference is required")
	}
	if c.Name == "" {
		return errors.New("author name is required")
	}
	return nil
}
