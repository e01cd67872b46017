package models

import "time"

// Booking lifecycle statuses.
const (
	BookingPending   = "pending"
	BookingAccepted  = "accepted"
	BookingOnTheWay  = "on_the_way"
	BookingWorking   = "working"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Payment statuses.
const (
	PaymentPending = "pending_payment"
	PaymentPaid    = "paid"
)

// BookingStatuses lists every valid booking status. Admin overrides are validated
// against this set only; admins may jump between states directly.
var BookingStatuses = []string{
	BookingPending,
	BookingAccepted,
	BookingOnTheWay,
	BookingWorking,
	BookingCompleted,
	BookingCancelled,
}

// technicianTransitions holds the transitions a technician may drive on a booking
// assigned to them. Customers may only cancel from pending; admins bypass this table.
var technicianTransitions = map[string]map[string]struct{}{
	BookingPending: {
		BookingAccepted:  {},
		BookingCancelled: {}, // technician rejection
	},
	BookingAccepted: {
		BookingOnTheWay:  {},
		BookingWorking:   {},
		BookingCompleted: {},
	},
	BookingOnTheWay: {
		BookingWorking:   {},
		BookingCompleted: {},
	},
	BookingWorking: {
		BookingCompleted: {},
	},
}

// TechnicianCanTransition reports whether a technician-driven status change is legal.
func TechnicianCanTransition(current, next string) bool {
	targets, ok := technicianTransitions[current]
	if !ok {
		return false
	}
	_, ok = targets[next]
	return ok
}

// ValidBookingStatus reports whether s names a known booking status.
func ValidBookingStatus(s string) bool {
	for _, known := range BookingStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// BookingLineItem is one priced service selection within a booking.
type BookingLineItem struct {
	ServiceID     string  `bson:"service_id" json:"serviceId"`
	ServiceName   string  `bson:"service_name" json:"serviceName"`
	CapacityLabel string  `bson:"capacity_label,omitempty" json:"capacityLabel,omitempty"`
	Quantity      int     `bson:"quantity" json:"quantity"`
	ComputedPrice float64 `bson:"computed_price" json:"computedPrice"`
}

// Booking is a confirmed service request, assigned to exactly one technician for
// its whole lifetime. TotalPrice is computed once at creation and never recomputed.
type Booking struct {
	ID              string            `bson:"id" json:"id"`
	CustomerID      string            `bson:"customer_id" json:"customerId"`
	TechnicianID    string            `bson:"technician_id" json:"technicianId"`
	Items           []BookingLineItem `bson:"items" json:"items"`
	Description     string            `bson:"description,omitempty" json:"description,omitempty"` // Free-text problem description.
	ScheduledAt     time.Time         `bson:"scheduled_at" json:"scheduledAt"`
	Address         string            `bson:"address" json:"address"`
	District        string            `bson:"district" json:"district"`
	Status          string            `bson:"status" json:"status"`
	TotalPrice      float64           `bson:"total_price" json:"totalPrice"`
	HasReview       bool              `bson:"has_review" json:"hasReview"`
	CompletedAt     *time.Time        `bson:"completed_at,omitempty" json:"completedAt,omitempty"`
	TechnicianNotes string            `bson:"technician_notes,omitempty" json:"technicianNotes,omitempty"`
	JobPhotos       []string          `bson:"job_photos,omitempty" json:"jobPhotos,omitempty"`
	FinalPrice      *float64          `bson:"final_price,omitempty" json:"finalPrice,omitempty"`
	PaymentStatus   string            `bson:"payment_status" json:"paymentStatus"`
	CreatedAt       time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time         `bson:"updated_at" json:"updatedAt"`
}
