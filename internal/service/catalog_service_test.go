package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/domain"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

type stubProductRepo struct {
	products []domain.Product
	nextID   int64
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{nextID: 1}
}

func (r *stubProductRepo) Create(_ context.Context, product *domain.Product) error {
	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, *product)
	return nil
}

func (r *stubProductRepo) List(_ context.Context) ([]domain.Product, error) {
	return append([]domain.Product{}, r.products...), nil
}

func newTestCatalogService(repo *stubProductRepo) *CatalogService {
	return NewCatalogService(CatalogDependencies{
		ProductRepo: repo,
		Logger:      zap.NewNop(),
	})
}

func TestCatalogService_AddProduct_MissingFields(t *testing.T) {
	repo := newStubProductRepo()
	svc := newTestCatalogService(repo)

	cases := []ProductInput{
		{Category: "c", Price: 1, Units: 1},
		{Name: "n", Price: 1, Units: 1},
		{Name: "n", Category: "c", Units: 1},
		{Name: "n", Category: "c", Price: 1},
	}
	for i, input := range cases {
		_, err := svc.AddProduct(context.Background(), input)
		if err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
		var domainErr *apperrors.DomainError
		if !errors.As(err, &domainErr) || domainErr.Code != "VALIDATION_FAILED" {
			t.Fatalf("case %d: expected VALIDATION_FAILED, got %v", i, err)
		}
	}
	if len(repo.products) != 0 {
		t.Fatalf("no rows must be written on validation failure, got %d", len(repo.products))
	}
}

func TestCatalogService_AddProduct_Success(t *testing.T) {
	repo := newStubProductRepo()
	svc := newTestCatalogService(repo)

	product, err := svc.AddProduct(context.Background(), ProductInput{
		Name: "Mug", Category: "kitchen", Price: 9.99, Units: 12, ImageLink: "http://img/mug",
	})
	if err != nil {
		t.Fatalf("AddProduct error: %v", err)
	}
	if product.ID == 0 {
		t.Fatalf("expected generated id")
	}

	inventory, err := svc.ListInventory(context.Background())
	if err != nil {
		t.Fatalf("ListInventory error: %v", err)
	}
	if len(inventory) != 1 {
		t.Fatalf("expected exactly one row, got %d", len(inventory))
	}
	if inventory[0].Name != "Mug" || inventory[0].Units != 12 {
		t.Fatalf("unexpected stored product: %+v", inventory[0])
	}
}

func TestCatalogService_ListProducts_NoCacheStillServes(t *testing.T) {
	repo := newStubProductRepo()
	svc := newTestCatalogService(repo)

	if _, err := svc.AddProduct(context.Background(), ProductInput{
		Name: "Mug", Category: "kitchen", Price: 9.99, Units: 12,
	}); err != nil {
		t.Fatalf("AddProduct error: %v", err)
	}

	products, err := svc.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts error: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected one product, got %d", len(products))
	}
}
