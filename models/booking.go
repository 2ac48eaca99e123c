package models

import "time"

// Booking is a completed reservation persisted once payment is confirmed.
type Booking struct {
	BookingID      string      `json:"booking_id" bson:"bookingId"`
	Origin         string      `json:"origin" bson:"origin"`
	Destination    string      `json:"destination" bson:"destination"`
	TravelDate     string      `json:"travel_date" bson:"travelDate"`
	Flight         FlightOffer `json:"flight" bson:"flight"`
	Passengers     int         `json:"passengers" bson:"passengers"`
	Class          string      `json:"class" bson:"class"`
	PassengerName  string      `json:"passenger_name" bson:"passengerName"`
	Email          string      `json:"email" bson:"email"`
	Phone          string      `json:"phone" bson:"phone"`
	SeatNumber     string      `json:"seat_number" bson:"seatNumber"`
	SeatPreference string      `json:"seat_preference" bson:"seatPreference"`
	MealPreference string      `json:"meal_preference" bson:"mealPreference"`
	AssistanceType string      `json:"assistance_type,omitempty" bson:"assistanceType,omitempty"`
	TotalAmount    float64     `json:"total_amount" bson:"totalAmount"`
	Status         string      `json:"status" bson:"status"`
	CreatedAt      time.Time   `json:"created_at" bson:"createdAt"`
}
