package models

import "time"

// Review is a customer's rating of a completed booking. At most one review exists
// per booking, enforced by a unique index on booking_id.
type Review struct {
	ID           string    `bson:"id" json:"id"`
	BookingID    string    `bson:"booking_id" json:"bookingId"`
	CustomerID   string    `bson:"customer_id" json:"customerId"`
	TechnicianID string    `bson:"technician_id" json:"technicianId"` // Denormalized from the booking for per-technician listing.
	Rating       float64   `bson:"rating" json:"rating"`              // 1 to 5 inclusive.
	Comment      string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}
