package content

import "time"

// singletonKey identifies the one site-copy row. The unique index on "key"
// plus a single atomic upsert keeps concurrent admin sessions from creating
// duplicates or losing each other's writes.
const singletonKey = "site"

type SiteContent struct {
	Key            string    `bson:"key" json:"-"`
	HomeHeading    string    `bson:"home_heading" json:"home_heading"`
	HomeSubheading string    `bson:"home_subheading" json:"home_subheading"`
	AboutBio       string    `bson:"about_bio" json:"about_bio"`
	AboutImageURL  string    `bson:"about_image_url" json:"about_image_url"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

type UpsertRequest struct {
	HomeHeading    string `json:"home_heading"`
	HomeSubheading string `json:"home_subheading"`
	AboutBio       string `json:"about_bio"`
	AboutImageURL  string `json:"about_image_url" validate:"omitempty,mediaurl"`
}
