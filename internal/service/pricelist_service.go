package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"pricelist/internal/artifact"
	"pricelist/internal/catalog"
	"pricelist/internal/config"
	"pricelist/internal/domain"
	"pricelist/internal/export"
	"pricelist/internal/metrics"
	"pricelist/internal/parser"
	"pricelist/internal/port"
)

// PriceListUploadInput is the DTO for price list uploads.
type PriceListUploadInput struct {
	Filename string
	Size     int64
	File     io.Reader
}

// PriceListService defines the price list contract.
type PriceListService interface {
	Upload(ctx context.Context, input PriceListUploadInput) (*domain.PriceListUpload, error)
	Products(ctx context.Context) ([]domain.ProductRecord, error)
	RawArtifact(ctx context.Context) ([]byte, error)
	Search(ctx context.Context, term string) ([]domain.ProductRecord, error)
}

type priceListService struct {
	storage   port.ObjectStorage
	uploadCfg *config.UploadConfig
	storeCfg  *config.StorageConfig
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewPriceListService creates a new PriceListService implementation.
// m may be nil.
func NewPriceListService(
	storage port.ObjectStorage,
	uploadCfg *config.UploadConfig,
	storeCfg *config.StorageConfig,
	m *metrics.Metrics,
) PriceListService {
	return &priceListService{
		storage:   storage,
		uploadCfg: uploadCfg,
		storeCfg:  storeCfg,
		metrics:   m,
		now:       time.Now,
	}
}

// Upload extracts the product list from a .docx upload and replaces the
// stored artifact with it. Nothing is written unless extraction yields at
// least one product.
func (s *priceListService) Upload(ctx context.Context, input PriceListUploadInput) (*domain.PriceListUpload, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Filename), "."))
	contentType, ok := domain.AllowedExtensions[ext]
	if !ok {
		s.metrics.ObserveUpload(metrics.ResultRejected)
		return nil, domain.ErrUnsupportedFileType
	}

	maxBytes := s.uploadCfg.MaxBytes()
	if input.Size > maxBytes {
		s.metrics.ObserveUpload(metrics.ResultRejected)
		return nil, domain.ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(input.File, maxBytes+1))
	if err != nil {
		s.metrics.ObserveUpload(metrics.ResultError)
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(data)) > maxBytes {
		s.metrics.ObserveUpload(metrics.ResultRejected)
		return nil, domain.ErrFileTooLarge
	}

	log.Printf("priceListService.Upload: extracting %s (%d bytes)", input.Filename, len(data))

	products, stats, err := parser.ExtractProducts(data)
	if stats != nil {
		s.metrics.ObserveExtraction(stats.Products, skippedByReason(stats))
	}
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoProducts):
			s.metrics.ObserveUpload(metrics.ResultNoProducts)
			log.Printf("priceListService.Upload: no products in %s (%d tables, %d rows)",
				input.Filename, stats.Tables, stats.Rows)
		case errors.Is(err, domain.ErrInvalidDocument):
			s.metrics.ObserveUpload(metrics.ResultRejected)
			log.Printf("priceListService.Upload: invalid document %s: %v", input.Filename, err)
		default:
			s.metrics.ObserveUpload(metrics.ResultError)
		}
		return nil, err
	}

	encoded, err := artifact.Encode(products, true)
	if err != nil {
		s.metrics.ObserveUpload(metrics.ResultError)
		return nil, err
	}

	upload := &domain.PriceListUpload{
		ID:           uuid.New(),
		OriginalName: input.Filename,
		Size:         int64(len(data)),
		ProductCount: len(products),
		ArtifactKey:  s.storeCfg.ArtifactKey,
		UploadedAt:   s.now().UTC(),
	}

	if s.uploadCfg.RetainOriginal {
		upload.OriginalKey = s.originalKey(upload.ID, input.Filename)
		_, err = s.storage.Upload(ctx, port.UploadInput{
			Key:         upload.OriginalKey,
			Body:        bytes.NewReader(data),
			ContentType: contentType,
			Size:        int64(len(data)),
		})
		if err != nil {
			s.metrics.ObserveUpload(metrics.ResultError)
			log.Printf("priceListService.Upload: retaining original %s failed: %v", upload.OriginalKey, err)
			return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
		}
	}

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Key:         s.storeCfg.ArtifactKey,
		Body:        bytes.NewReader(encoded),
		ContentType: artifact.ContentType,
		Size:        int64(len(encoded)),
	})
	if err != nil {
		s.metrics.ObserveUpload(metrics.ResultError)
		log.Printf("priceListService.Upload: writing artifact %s failed: %v", s.storeCfg.ArtifactKey, err)
		if upload.OriginalKey != "" {
			if delErr := s.storage.Delete(ctx, upload.OriginalKey); delErr != nil {
				log.Printf("priceListService.Upload: cleanup of %s failed: %v", upload.OriginalKey, delErr)
			}
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	s.metrics.ObserveUpload(metrics.ResultSuccess)
	log.Printf("priceListService.Upload: loaded %d products from %s (%d rows skipped)",
		len(products), input.Filename, stats.TotalSkipped())

	return upload, nil
}

func (s *priceListService) Products(ctx context.Context) ([]domain.ProductRecord, error) {
	data, err := s.RawArtifact(ctx)
	if err != nil {
		return nil, err
	}
	return artifact.Decode(data)
}

func (s *priceListService) RawArtifact(ctx context.Context) ([]byte, error) {
	data, err := s.storage.Download(ctx, s.storeCfg.ArtifactKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrPriceListNotFound
		}
		return nil, fmt.Errorf("loading price list: %w", err)
	}
	return data, nil
}

func (s *priceListService) Search(ctx context.Context, term string) ([]domain.ProductRecord, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Search(products, term), nil
}

// originalKey returns uploads/<id>/<sanitized name>.docx under the configured prefix.
func (s *priceListService) originalKey(id uuid.UUID, filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	name := export.SanitizeFilename(base)
	if name == "" {
		name = "pricelist"
	}
	prefix := s.storeCfg.UploadsPrefix
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return fmt.Sprintf("%s%s/%s.docx", prefix, id, name)
}

func skippedByReason(stats *parser.Stats) map[string]int {
	out := make(map[string]int, len(stats.Skipped))
	for reason, n := range stats.Skipped {
		out[string(reason)] = n
	}
	return out
}
