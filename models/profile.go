package models

import "time"

// TravelPreferences are the defaults seeded into a new conversation when the
// caller is identified.
type TravelPreferences struct {
	Seat  string `json:"seat" bson:"seat"`
	Meal  string `json:"meal" bson:"meal"`
	Class string `json:"class" bson:"class"`
}

// RouteFrequency records how often a profile has flown a route.
type RouteFrequency struct {
	Route     string `json:"route" bson:"route"`
	Frequency int    `json:"frequency" bson:"frequency"`
}

// UserProfile holds the details reused across bookings for a recognized
// caller.
type UserProfile struct {
	UserID      string            `json:"user_id" bson:"userId"`
	Name        string            `json:"name" bson:"name"`
	Email       string            `json:"email" bson:"email"`
	Phone       string            `json:"phone" bson:"phone"`
	Preferences TravelPreferences `json:"preferences" bson:"preferences"`
	History     []RouteFrequency  `json:"history" bson:"history"`
	UpdatedAt   time.Time         `json:"updated_at,omitempty" bson:"updatedAt,omitempty"`
}
