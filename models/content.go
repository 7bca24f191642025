package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type HeroSlide struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Subtitle     string             `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	ImageURL     string             `bson:"imageUrl" json:"imageUrl"`
	LinkURL      string             `bson:"linkUrl,omitempty" json:"linkUrl,omitempty"`
	DisplayOrder int                `bson:"displayOrder" json:"displayOrder"`
	Active       bool               `bson:"active" json:"active"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// FeaturedBanner is a singleton document.
type FeaturedBanner struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Subtitle  string             `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	ImageURL  string             `bson:"imageUrl" json:"imageUrl"`
	LinkURL   string             `bson:"linkUrl,omitempty" json:"linkUrl,omitempty"`
	Active    bool               `bson:"active" json:"active"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type SocialLink struct {
	Platform string `bson:"platform" json:"platform"`
	URL      string `bson:"url" json:"url"`
}

// SiteSettings is a singleton document.
type SiteSettings struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StoreName    string             `bson:"storeName" json:"storeName"`
	LogoURL      string             `bson:"logoUrl,omitempty" json:"logoUrl,omitempty"`
	SupportEmail string             `bson:"supportEmail,omitempty" json:"supportEmail,omitempty"`
	SocialLinks  []SocialLink       `bson:"socialLinks" json:"socialLinks"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Post struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string             `bson:"title" json:"title"`
	Slug       string             `bson:"slug" json:"slug"` // unique
	Body       string             `bson:"body" json:"body"`
	CoverImage string             `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	Published  bool               `bson:"published" json:"published"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
