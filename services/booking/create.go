package booking

import (
	"fmt"
	"time"

	"coolq/models"
	"coolq/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking matches the customer's district to an approved technician,
// prices the requested selections against the catalog and persists the booking
// in its initial pending state.
func (s *DefaultBookingService) CreateBooking(customerID string, req CreateBookingRequest) (*BookingConfirmation, error) {
	logger := utils.GetLogger()

	customer, err := s.CustomerRepo.GetByID(customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve customer: %w", err)
	}
	if customer == nil {
		return nil, utils.NotFoundf("customer not found")
	}
	if customer.District == "" {
		return nil, utils.Validationf("please set your district before booking")
	}

	technician, err := s.TechnicianRepo.FirstApprovedInDistrict(customer.District)
	if err != nil {
		return nil, fmt.Errorf("failed to match technician: %w", err)
	}
	if technician == nil {
		return nil, utils.NotFoundf("no technician available in district %s", customer.District)
	}

	if len(req.Selections) == 0 {
		return nil, utils.Validationf("at least one service selection is required")
	}

	items := make([]models.BookingLineItem, 0, len(req.Selections))
	var total float64
	for _, sel := range req.Selections {
		svc, err := s.CatalogRepo.GetByID(sel.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up service: %w", err)
		}
		if svc == nil {
			return nil, utils.NotFoundf("service %s not found", sel.ServiceID)
		}
		if !svc.Active {
			return nil, utils.Validationf("service %s is no longer available", svc.Name)
		}
		item, err := priceSelection(svc, sel)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		total += item.ComputedPrice
	}

	now := time.Now()
	newBooking := &models.Booking{
		ID:            uuid.New().String(),
		CustomerID:    customer.ID,
		TechnicianID:  technician.ID,
		Items:         items,
		Description:   req.Description,
		ScheduledAt:   req.ScheduledAt,
		Address:       req.Address,
		District:      customer.District,
		Status:        models.BookingPending,
		TotalPrice:    total,
		HasReview:     false,
		PaymentStatus: models.PaymentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.BookingRepo.Create(newBooking); err != nil {
		logger.Error("failed to persist booking",
			zap.String("customerID", customer.ID),
			zap.String("technicianID", technician.ID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	logger.Info("booking created",
		zap.String("bookingID", newBooking.ID),
		zap.String("district", newBooking.District),
		zap.Float64("totalPrice", total))

	return &BookingConfirmation{
		BookingID: newBooking.ID,
		Technician: AssignedTechnician{
			ID:    technician.ID,
			Name:  technician.Name,
			Phone: technician.PhoneNumber,
		},
		TotalPrice: total,
	}, nil
}

// priceSelection computes one line item. An unmatched capacity label falls back
// to the service's first listed option; per-item options multiply by quantity,
// lump-sum and starting-at options charge the option price once.
func priceSelection(svc *models.Service, sel ServiceSelection) (models.BookingLineItem, error) {
	if len(svc.Options) == 0 {
		return models.BookingLineItem{}, utils.Validationf("service %s has no price options", svc.Name)
	}

	opt, _ := svc.OptionForCapacity(sel.CapacityLabel)

	quantity := sel.Quantity
	if quantity < 1 {
		quantity = 1
	}

	price := opt.Price
	if opt.PricingUnit == models.PricingPerItem {
		price = opt.Price * float64(quantity)
	}

	return models.BookingLineItem{
		ServiceID:     svc.ID,
		ServiceName:   svc.Name,
		CapacityLabel: opt.CapacityLabel,
		Quantity:      quantity,
		ComputedPrice: price,
	}, nil
}
