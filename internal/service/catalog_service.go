package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/events"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

const catalogCacheKey = "catalog:products"

// ProductInput describes an inventory insertion payload.
type ProductInput struct {
	Name      string
	Category  string
	Price     float64
	Units     int64
	ImageLink string
}

// CatalogService manages inventory and the public product listing. The
// storefront listing is served from a Redis cache when warm; cache
// failures degrade to direct Postgres reads.
type CatalogService struct {
	products   repository.ProductRepository
	cache      *redis.Client
	cacheTTL   time.Duration
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// CatalogDependencies bundles catalog service requirements.
type CatalogDependencies struct {
	ProductRepo repository.ProductRepository
	Cache       *redis.Client
	CacheTTL    time.Duration
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// NewCatalogService constructs the service.
func NewCatalogService(deps CatalogDependencies) *CatalogService {
	return &CatalogService{
		products:   deps.ProductRepo,
		cache:      deps.Cache,
		cacheTTL:   deps.CacheTTL,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// AddProduct validates and inserts an inventory row, then invalidates
// the listing cache. Missing required fields write nothing.
func (s *CatalogService) AddProduct(ctx context.Context, input ProductInput) (*domain.Product, error) {
	if input.Name == "" || input.Category == "" || input.Price == 0 || input.Units == 0 {
		return nil, apperrors.NewValidationError("missing product details", nil)
	}

	product := &domain.Product{
		Name:      input.Name,
		Category:  input.Category,
		Price:     input.Price,
		ImageLink: input.ImageLink,
		Units:     input.Units,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.publish(ctx, events.Event{
		Type: events.EventProductAdded,
		Payload: events.ProductAddedPayload{
			ProductID: product.ID,
			Name:      product.Name,
			Category:  product.Category,
			Price:     product.Price,
			Units:     product.Units,
		},
	})
	return product, nil
}

// ListInventory returns all products for the admin console, always from
// Postgres.
func (s *CatalogService) ListInventory(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

// ListProducts returns the public storefront listing, cache-first.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if cached, ok := s.readCache(ctx); ok {
		return cached, nil
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	s.writeCache(ctx, products)
	return products, nil
}

func (s *CatalogService) readCache(ctx context.Context) ([]domain.Product, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Debug("catalog cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		s.logger.Warn("catalog cache entry corrupt; dropping", zap.Error(err))
		s.invalidateCache(ctx)
		return nil, false
	}
	return products, true
}

func (s *CatalogService) writeCache(ctx context.Context, products []domain.Product) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, catalogCacheKey, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Debug("catalog cache write failed", zap.Error(err))
	}
}

func (s *CatalogService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, catalogCacheKey).Err(); err != nil {
		s.logger.Debug("catalog cache invalidation failed", zap.Error(err))
	}
}

func (s *CatalogService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
