package service

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/pazarlabs/pazar/config"
	"github.com/pazarlabs/pazar/internal/domain"
	"github.com/pazarlabs/pazar/internal/dto"
	"github.com/pazarlabs/pazar/internal/infrastructure/storage/local"
	"github.com/pazarlabs/pazar/internal/repository"
	"github.com/pazarlabs/pazar/pkg/errs"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

type CatalogServiceImpl struct {
	repo          repository.ProductRepository
	config        config.Config
	storage       *local.Storage
	kafkaProducer *kafka.Conn
}

func CreateNewCatalogService(repo repository.ProductRepository, config config.Config, storage *local.Storage, kafkaProducer *kafka.Conn) CatalogService {
	return &CatalogServiceImpl{repo: repo, config: config, storage: storage, kafkaProducer: kafkaProducer}
}

func toProductResponse(p domain.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		ExternalID:  p.ExternalID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Image:       p.Image,
		Category:    p.Category,
		OwnerID:     p.OwnerID,
	}
}

// GetProducts returns products in insertion order. A non-empty category
// filter matches on the trimmed, lower-cased form of both sides.
func (s *CatalogServiceImpl) GetProducts(ctx context.Context, filter dto.ProductFilter) (resp []dto.ProductResponse, err error) {
	products, err := s.repo.GetProducts(ctx)
	if err != nil {
		return
	}

	category := strings.ToLower(strings.TrimSpace(filter.Category))

	resp = make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if category != "" && strings.ToLower(strings.TrimSpace(p.Category)) != category {
			continue
		}
		resp = append(resp, toProductResponse(p))
	}

	return
}

// GetCategories always reflects the full collection, never a filtered view.
func (s *CatalogServiceImpl) GetCategories(ctx context.Context) (categories []string, err error) {
	products, err := s.repo.GetProducts(ctx)
	if err != nil {
		return
	}

	seen := make(map[string]struct{})
	categories = make([]string, 0)
	for _, p := range products {
		c := strings.TrimSpace(p.Category)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		categories = append(categories, c)
	}

	sort.Strings(categories)

	return
}

func (s *CatalogServiceImpl) GetProductByID(ctx context.Context, id int64) (resp dto.ProductResponse, err error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	if product.ID == 0 {
		return resp, errs.ErrNotFound
	}

	return toProductResponse(product), nil
}

func (s *CatalogServiceImpl) AddProduct(ctx context.Context, ownerID int64, data dto.ProductRequest) (resp dto.ProductResponse, err error) {
	name := strings.TrimSpace(data.Name)
	priceRaw := strings.TrimSpace(data.Price)

	if name == "" || priceRaw == "" {
		return resp, errs.ErrNamePriceRequired
	}

	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil {
		return resp, errs.ErrInvalidPrice
	}

	if price < 0 {
		return resp, errs.ErrNegativePrice
	}

	// An uploaded file wins over a plain image URL when both are given.
	var image *string
	if data.Upload != nil && data.Upload.Filename != "" {
		served, putErr := s.storage.Put(data.Upload.Filename, data.Upload.Content)
		if putErr != nil {
			return resp, putErr
		}
		image = &served
	} else if url := strings.TrimSpace(data.ImageURL); url != "" {
		image = &url
	}

	productEnt := domain.Product{
		ExternalID:  ulid.Make().String(),
		Name:        name,
		Price:       price,
		Description: strings.TrimSpace(data.Description),
		Image:       image,
		Category:    data.Category,
		OwnerID:     ownerID,
	}

	id, err := s.repo.AddProduct(ctx, productEnt)
	if err != nil {
		return
	}

	productEnt.ID = id
	resp = toProductResponse(productEnt)

	s.publishEvent("product_created", resp)

	return resp, nil
}

// DeleteProduct enforces the ownership gate: only the creating principal may
// remove a listing.
func (s *CatalogServiceImpl) DeleteProduct(ctx context.Context, principalID int64, id int64) (err error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	if product.ID == 0 {
		return errs.ErrNotFound
	}

	if product.OwnerID != principalID {
		return errs.ErrForbidden
	}

	if err = s.repo.DeleteProduct(ctx, id); err != nil {
		return
	}

	s.publishEvent("product_deleted", toProductResponse(product))

	return nil
}

func (s *CatalogServiceImpl) publishEvent(eventType string, data interface{}) {
	if s.kafkaProducer == nil {
		return
	}

	msg, err := json.Marshal(dto.KafkaMessage{EventType: eventType, Data: data})
	if err != nil {
		log.Error().Err(err).Str("component", "publishEvent").Msg("")
		return
	}

	if _, err := s.kafkaProducer.WriteMessages(kafka.Message{Value: msg}); err != nil {
		log.Error().Err(err).Str("component", "publishEvent").Str("event_type", eventType).Msg("")
	}
}
