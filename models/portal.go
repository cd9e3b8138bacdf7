package models

import "time"

// StickyNote is a per-user free-text note shown on the portal home page.
type StickyNote struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"-"`
	Text      string    `bson:"text" json:"text"`
	Color     string    `bson:"color,omitempty" json:"color,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Quote is a rotating home-page quote.
type Quote struct {
	ID     string `bson:"id" json:"id"`
	Author string `bson:"author" json:"author"`
	Text   string `bson:"text" json:"text"`
}

// Weather is the cached current-conditions snapshot served to the portal.
type Weather struct {
	TemperatureC float64   `json:"temperatureC"`
	WindSpeedKmh float64   `json:"windSpeedKmh"`
	WeatherCode  int       `json:"weatherCode"`
	FetchedAt    time.Time `json:"fetchedAt"`
}
