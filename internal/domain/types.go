package domain

import "errors"

// ErrPointNotFound is returned when a point id does not resolve to a row.
var ErrPointNotFound = errors.New("point not found")

// Item is a category of recyclable material a point may accept. Items are
// reference data seeded by migration; the service never creates or mutates
// them. Image holds the stored filename; the absolute URL is resolved by the
// catalog service against the configured asset base URL.
type Item struct {
	ID    int64  `db:"id"`
	Title string `db:"title"`
	Image string `db:"image"`
}

// ItemView is an Item projected for API responses, with the image filename
// resolved to an absolute URL.
type ItemView struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

// Point is a registered physical collection location.
type Point struct {
	ID        int64   `db:"id" json:"id"`
	Image     string  `db:"image" json:"image"`
	Name      string  `db:"name" json:"name"`
	Email     string  `db:"email" json:"email"`
	Whatsapp  string  `db:"whatsapp" json:"whatsapp"`
	Latitude  float64 `db:"latitude" json:"latitude"`
	Longitude float64 `db:"longitude" json:"longitude"`
	City      string  `db:"city" json:"city"`
	UF        string  `db:"uf" json:"uf"`
}

// PointDetail is a point joined with the titles of the items it accepts.
// Items is always non-nil; a point accepting nothing has an empty slice.
type PointDetail struct {
	Point
	Items []string `json:"items"`
}
