package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	catalogRepo "coolq/database/repository/catalog"

	"coolq/models"
	"coolq/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// listingCacheTTL bounds how stale the cached public listing may get even
// without an explicit invalidation.
const listingCacheTTL = 10 * time.Minute

// CatalogService manages the service catalog.
type CatalogService interface {
	ListActiveServices() ([]models.Service, error)
	ListAllServices() ([]models.Service, error)
	GetServiceByID(id string) (*models.Service, error)
	CreateService(svc models.Service) (*models.Service, error)
	UpdateService(svc models.Service) (*models.Service, error)
	SetServiceActive(id string, active bool) (*models.Service, error)
}

// DefaultCatalogService is the production implementation of CatalogService.
type DefaultCatalogService struct {
	Repo catalogRepo.CatalogRepository
}

// ListActiveServices returns the bookable catalog, served from the cache when
// warm. A cache failure degrades to a direct read.
func (s *DefaultCatalogService) ListActiveServices() ([]models.Service, error) {
	ctx := context.Background()
	cache := utils.GetCacheClient()

	if data, err := cache.Get(ctx, utils.CatalogCacheKey).Result(); err == nil {
		var services []models.Service
		if err := json.Unmarshal([]byte(data), &services); err == nil {
			return services, nil
		}
	}

	services, err := s.Repo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	if data, err := json.Marshal(services); err == nil {
		if err := cache.Set(ctx, utils.CatalogCacheKey, data, listingCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache catalog listing", zap.Error(err))
		}
	}
	return services, nil
}

// ListAllServices returns every catalog entry for the admin back-office.
func (s *DefaultCatalogService) ListAllServices() ([]models.Service, error) {
	services, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

// GetServiceByID fetches one catalog entry.
func (s *DefaultCatalogService) GetServiceByID(id string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if svc == nil {
		return nil, utils.NotFoundf("service not found")
	}
	return svc, nil
}

// CreateService adds a catalog entry with at least one valid price option.
func (s *DefaultCatalogService) CreateService(svc models.Service) (*models.Service, error) {
	if svc.Name == "" {
		return nil, utils.Validationf("service name is required")
	}
	if err := validateOptions(svc.Options); err != nil {
		return nil, err
	}

	now := time.Now()
	svc.ID = uuid.New().String()
	svc.Active = true
	svc.CreatedAt = now
	svc.UpdatedAt = now

	if err := s.Repo.Create(&svc); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	s.invalidateListing()
	return &svc, nil
}

// UpdateService patches name, description and options of a catalog entry.
func (s *DefaultCatalogService) UpdateService(svc models.Service) (*models.Service, error) {
	if svc.ID == "" {
		return nil, utils.Validationf("service ID is required for update")
	}
	existing, err := s.GetServiceByID(svc.ID)
	if err != nil {
		return nil, err
	}

	updateFields := bson.M{"updated_at": time.Now()}
	if svc.Name != "" {
		updateFields["name"] = svc.Name
	}
	if svc.Description != "" {
		updateFields["description"] = svc.Description
	}
	if svc.Options != nil {
		if err := validateOptions(svc.Options); err != nil {
			return nil, err
		}
		updateFields["options"] = svc.Options
	}
	if len(updateFields) == 1 {
		return nil, utils.Validationf("no updatable fields provided")
	}

	if err := s.Repo.UpdateWithDocument(existing.ID, updateFields); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	s.invalidateListing()
	return s.GetServiceByID(existing.ID)
}

// SetServiceActive toggles whether an entry is selectable for new bookings.
// Entries are deactivated rather than deleted so existing bookings keep
// resolving their line items.
func (s *DefaultCatalogService) SetServiceActive(id string, active bool) (*models.Service, error) {
	existing, err := s.GetServiceByID(id)
	if err != nil {
		return nil, err
	}
	update := bson.M{"active": active, "updated_at": time.Now()}
	if err := s.Repo.UpdateWithDocument(existing.ID, update); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	s.invalidateListing()
	return s.GetServiceByID(id)
}

func (s *DefaultCatalogService) invalidateListing() {
	if err := utils.GetCacheClient().Del(context.Background(), utils.CatalogCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate catalog cache", zap.Error(err))
	}
}

func validateOptions(options []models.PriceOption) error {
	if len(options) == 0 {
		return utils.Validationf("at least one price option is required")
	}
	for _, opt := range options {
		if opt.Price < 0 {
			return utils.Validationf("option price must not be negative")
		}
		switch opt.PricingUnit {
		case models.PricingPerItem, models.PricingLumpSum, models.PricingStartingAt:
		default:
			return utils.Validationf("unknown pricing unit %q", opt.PricingUnit)
		}
	}
	return nil
}
