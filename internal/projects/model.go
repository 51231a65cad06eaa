package projects

import "time"

const (
	MediaImage = "image"
	MediaVideo = "video"
)

// MediaItem is one gallery entry. Type is derived from the URL's file
// extension when the record is saved, never supplied by the client.
type MediaItem struct {
	URL  string `bson:"url" json:"url"`
	Type string `bson:"type" json:"type"`
}

type Project struct {
	ID               string      `bson:"_id,omitempty" json:"id"`
	Title            string      `bson:"title" json:"title"`
	Slug             string      `bson:"slug" json:"slug"`
	DescriptionShort string      `bson:"description_short" json:"description_short"`
	DescriptionLong  string      `bson:"description_long" json:"description_long"`
	Category         string      `bson:"category" json:"category"`
	ThumbnailURL     string      `bson:"thumbnail_url,omitempty" json:"thumbnail_url,omitempty"`
	Gallery          []MediaItem `bson:"gallery" json:"gallery"`
	Tools            []string    `bson:"tools" json:"tools"`
	CreatedAt        time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time   `bson:"updated_at" json:"updated_at"`
}

// UpsertRequest covers both create and update: an absent ID means insert,
// a present ID means update of exactly that row.
type UpsertRequest struct {
	ID               string   `json:"id"`
	Title            string   `json:"title" validate:"required,notblank"`
	DescriptionShort string   `json:"description_short"`
	DescriptionLong  string   `json:"description_long"`
	Category         string   `json:"category" validate:"required,projectcategory"`
	ThumbnailURL     string   `json:"thumbnail_url" validate:"omitempty,mediaurl"`
	Gallery          []string `json:"gallery" validate:"omitempty,dive,mediaurl"`
	Tools            []string `json:"tools"`
}

type ListFilter struct {
	Query    string
	Category string
}
