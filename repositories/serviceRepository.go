package repositories

import (
	"ClinicDesk/cache"
	"ClinicDesk/database"
	"ClinicDesk/models"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	ServiceCacheExpiry = 24 * time.Hour
	servicesCacheKey   = "services_cache"
)

// ServiceRepository serves the billable service catalog. The catalog changes
// rarely, so it is cached aggressively.
type ServiceRepository struct {
	cache *cache.Cache
}

func NewServiceRepository(cache *cache.Cache) *ServiceRepository {
	return &ServiceRepository{cache: cache}
}

// GetAll returns the full catalog in id order.
func (r *ServiceRepository) GetAll(ctx context.Context) ([]models.ClinicService, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cachedServices, err := r.cache.Get(ctx, servicesCacheKey)
	if err == nil && cachedServices != "" {
		var services []models.ClinicService
		if err := json.Unmarshal([]byte(cachedServices), &services); err == nil {
			return services, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get services from cache: %v", err)
	}

	var services []models.ClinicService
	if err := database.DB.WithContext(ctx).Order("id ASC").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to get service catalog: %w", err)
	}

	servicesJSON, err := json.Marshal(services)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal services: %w", err)
	}
	if err := r.cache.Set(ctx, servicesCacheKey, servicesJSON, ServiceCacheExpiry); err != nil {
		log.Printf("Failed to set services in cache: %v", err)
	}

	return services, nil
}

// GetMap returns the catalog indexed by service id, the shape the pricing
// and grouping functions consume.
func (r *ServiceRepository) GetMap(ctx context.Context) (map[uint]models.ClinicService, error) {
	services, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[uint]models.ClinicService, len(services))
	for _, service := range services {
		index[service.ID] = service
	}
	return index, nil
}
