package models

import "time"

// Technician approval statuses.
const (
	TechnicianPending  = "pending"
	TechnicianApproved = "approved"
	TechnicianRejected = "rejected"
)

// Technician represents a technician account plus its service profile.
type Technician struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Email           string    `bson:"email" json:"email"`
	PhoneNumber     string    `bson:"phone_number" json:"phoneNumber"`
	Password        string    `bson:"-" json:"password,omitempty"`
	PasswordHash    string    `bson:"password_hash" json:"-"`
	TokenHash       string    `bson:"token_hash,omitempty" json:"-"`
	IDCardURL       string    `bson:"id_card_url" json:"idCardUrl,omitempty"`             // Identity document image.
	VerifyPhotoURL  string    `bson:"verify_photo_url" json:"verifyPhotoUrl,omitempty"`   // Selfie used for manual verification.
	Districts       []string  `bson:"districts" json:"districts"`                         // Coverage districts; non-empty once approved.
	ServiceTypes    []string  `bson:"service_types" json:"serviceTypes"`                  // Offered service tags, e.g. "cleaning", "repair".
	Status          string    `bson:"status" json:"status"`                               // pending | approved | rejected
	RejectionReason string    `bson:"rejection_reason,omitempty" json:"rejectionReason,omitempty"`
	Rating          float64   `bson:"rating" json:"rating"`             // Mean of all folded review scores, 0 when unreviewed.
	TotalReviews    int       `bson:"total_reviews" json:"totalReviews"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}

// Approved reports whether the technician may be assigned new bookings.
func (t *Technician) Approved() bool {
	return t.Status == TechnicianApproved
}
