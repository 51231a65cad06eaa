package skills

import "time"

type Skill struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	ImageURL    string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Description string    `bson:"description" json:"description"`
	Tags        []string  `bson:"tags" json:"tags"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

type UpsertRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" validate:"required,notblank"`
	ImageURL    string   `json:"image_url" validate:"omitempty,mediaurl"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type ListFilter struct {
	Query string
}
