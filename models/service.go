package models

import "time"

// Pricing units for a service price option.
const (
	PricingPerItem    = "per_item"    // Unit price multiplied by quantity.
	PricingLumpSum    = "lump_sum"    // Charged once regardless of quantity.
	PricingStartingAt = "starting_at" // Base price, final amount settled on completion.
)

// PriceOption is one priced bracket of a catalog service, selected by capacity label.
type PriceOption struct {
	CapacityLabel string  `bson:"capacity_label,omitempty" json:"capacityLabel,omitempty"` // e.g. a BTU range such as "9000-12000".
	Price         float64 `bson:"price" json:"price"`
	PricingUnit   string  `bson:"pricing_unit" json:"pricingUnit"`
}

// Service is a catalog entry customers can book.
type Service struct {
	ID          string        `bson:"id" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Description string        `bson:"description" json:"description,omitempty"`
	Options     []PriceOption `bson:"options" json:"options"`
	Active      bool          `bson:"active" json:"active"`
	CreatedAt   time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updatedAt"`
}

// OptionForCapacity returns the price option matching the given capacity label.
// When no option matches, the first listed option is used instead; this fallback
// is long-standing platform behaviour that pricing relies on.
func (s *Service) OptionForCapacity(label string) (PriceOption, bool) {
	for _, opt := range s.Options {
		if opt.CapacityLabel == label {
			return opt, true
		}
	}
	if len(s.Options) > 0 {
		return s.Options[0], false
	}
	return PriceOption{}, false
}
