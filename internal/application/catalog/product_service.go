package catalog

import (
	"context"
	"crypto/rand"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/catalog"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopcore/backend/internal/domain/shared/valueobject"
)

const (
	// maxSkuAttempts bounds the disambiguation loop: the requested SKU plus
	// up to four suffixed candidates.
	maxSkuAttempts  = 5
	skuSuffixLength = 5
	suffixCharset   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// ErrSkuExhausted is returned when no free SKU variant could be allocated
// within the attempt budget.
var ErrSkuExhausted = shared.NewDomainError("SKU_EXHAUSTED", "Could not allocate a unique SKU")

// ProductService handles product-related business operations
type ProductService struct {
	productRepo catalog.ProductRepository
	suffix      func(n int) string
}

// ProductServiceOption configures a ProductService
type ProductServiceOption func(*ProductService)

// WithSuffixSource overrides the random suffix source used for SKU
// disambiguation
func WithSuffixSource(suffix func(n int) string) ProductServiceOption {
	return func(s *ProductService) {
		s.suffix = suffix
	}
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, opts ...ProductServiceOption) *ProductService {
	s := &ProductService{
		productRepo: productRepo,
		suffix:      randomSuffix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create creates a new product. The requested SKU is tried first; when it is
// taken, suffixed variants of the original SKU are tried until one is free or
// the attempt budget runs out. The storage unique constraint stays
// authoritative: a duplicate-key rejection after a clean existence check is
// consumed as one more collision, not an error.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	price := valueobject.NewMoneyUSD(req.Price)
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	base := strings.ToUpper(req.Sku)
	candidate := base

	for attempt := 0; attempt < maxSkuAttempts; attempt++ {
		exists, err := s.productRepo.ExistsBySku(ctx, candidate)
		if err != nil {
			return nil, err
		}

		if !exists {
			product, err := catalog.NewProduct(candidate, req.Name, price)
			if err != nil {
				return nil, err
			}

			err = s.productRepo.Save(ctx, product)
			if err == nil {
				response := ToProductResponse(product)
				return &response, nil
			}
			if !errors.Is(err, catalog.ErrDuplicateSku) {
				return nil, err
			}
			// A concurrent insert won the race between the existence check
			// and the save. Falls through to the next candidate.
		}

		candidate = base + "-" + s.suffix(skuSuffixLength)
	}

	return nil, ErrSkuExhausted
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetBySku retrieves a product by SKU
func (s *ProductService) GetBySku(ctx context.Context, sku string) (*ProductResponse, error) {
	product, err := s.productRepo.FindBySku(ctx, strings.ToUpper(sku))
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves a list of products with filtering and pagination
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProductResponses(products), total, nil
}

// randomSuffix returns n random characters drawn from [A-Z0-9]
func randomSuffix(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic("catalog: reading random bytes: " + err.Error())
	}
	for i := range buf {
		buf[i] = suffixCharset[int(buf[i])%len(suffixCharset)]
	}
	return string(buf)
}
