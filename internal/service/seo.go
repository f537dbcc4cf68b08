package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"taxpro-backend/internal/database/models"
	apperrors "taxpro-backend/internal/errors"
	"taxpro-backend/internal/llm"
	"taxpro-backend/internal/logger"
	"taxpro-backend/internal/media"
	"taxpro-backend/internal/metrics"
	"taxpro-backend/internal/repository"
	"taxpro-backend/internal/seo"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// SeoService generates, translates and publishes city landing pages
type SeoService struct {
	repo       repository.SeoLandingPageRepositoryInterface
	generator  ContentGenerator
	images     MediaStore
	translator Translator
	metrics    *metrics.Metrics
	validator  *validator.Validate
	batchSize  int
	batchDelay time.Duration
}

// SeoServiceDeps groups the collaborators of SeoService
type SeoServiceDeps struct {
	Repo       repository.SeoLandingPageRepositoryInterface
	Generator  ContentGenerator
	Images     MediaStore
	Translator Translator
	Metrics    *metrics.Metrics
	Validator  *validator.Validate
	BatchSize  int
	BatchDelay time.Duration
}

// NewSeoService creates a new SEO service
func NewSeoService(deps SeoServiceDeps) *SeoService {
	size := deps.BatchSize
	if size < 1 {
		size = 1
	}
	return &SeoService{
		repo:       deps.Repo,
		generator:  deps.Generator,
		images:     deps.Images,
		translator: deps.Translator,
		metrics:    deps.Metrics,
		validator:  deps.Validator,
		batchSize:  size,
		batchDelay: deps.BatchDelay,
	}
}

// GenerateBatchRequest lists the city/service pairs to generate pages for
type GenerateBatchRequest struct {
	Targets    []seo.Target `json:"targets" yaml:"targets" validate:"required,min=1,max=500,dive"`
	Overwrite  bool         `json:"overwrite"`
	WithImages bool         `json:"with_images"`
}

// BatchFailure is one target that could not be generated
type BatchFailure struct {
	Slug  string `json:"slug"`
	Error string `json:"error"`
}

// BatchResult reports the outcome of a batch generation run
type BatchResult struct {
	Generated []string       `json:"generated"`
	Skipped   []string       `json:"skipped"`
	Failed    []BatchFailure `json:"failed"`
}

// TranslatePageRequest selects the target language of a translation
type TranslatePageRequest struct {
	Language string `json:"language" validate:"required,min=2,max=10" example:"es"`
}

// SeoPageListParams narrows a landing page listing
type SeoPageListParams struct {
	City     string
	State    string
	Service  string
	Status   models.PageStatus
	Page     int
	PageSize int
}

// SeoPageResponse represents a landing page as returned by the API
type SeoPageResponse struct {
	ID              uuid.UUID         `json:"id"`
	Slug            string            `json:"slug"`
	City            string            `json:"city"`
	State           string            `json:"state"`
	Service         string            `json:"service"`
	Language        string            `json:"language"`
	Title           string            `json:"title"`
	MetaDescription string            `json:"meta_description"`
	H1              string            `json:"h1"`
	Content         string            `json:"content,omitempty"`
	ImageURL        string            `json:"image_url,omitempty"`
	Status          models.PageStatus `json:"status"`
	Model           string            `json:"model,omitempty"`
	GeneratedAt     string            `json:"generated_at,omitempty"`
	PublishedAt     string            `json:"published_at,omitempty"`
	UpdatedAt       string            `json:"updated_at"`
}

// SeoPageListResponse represents a paginated list of landing pages
type SeoPageListResponse struct {
	Pages    []SeoPageResponse `json:"pages"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// GenerateBatch generates draft pages for every target. Targets are processed in batches of
// batchSize concurrent generations with batchDelay between batches. A failing target is
// reported and does not stop the run; cancelling ctx does.
func (s *SeoService) GenerateBatch(ctx context.Context, req *GenerateBatchRequest) (*BatchResult, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	result := &BatchResult{Generated: []string{}, Skipped: []string{}, Failed: []BatchFailure{}}

	seen := make(map[string]struct{}, len(req.Targets))
	pending := make([]seo.Target, 0, len(req.Targets))
	slugs := make([]string, 0, len(req.Targets))
	for _, t := range req.Targets {
		slug := t.Slug()
		if _, dup := seen[slug]; dup {
			continue
		}
		seen[slug] = struct{}{}
		pending = append(pending, t)
		slugs = append(slugs, slug)
	}

	if !req.Overwrite {
		existing, err := s.repo.ExistingSlugs(slugs)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing pages: %w", err)
		}
		skip := make(map[string]struct{}, len(existing))
		for _, slug := range existing {
			skip[slug] = struct{}{}
		}
		kept := pending[:0]
		for _, t := range pending {
			if _, ok := skip[t.Slug()]; ok {
				result.Skipped = append(result.Skipped, t.Slug())
				s.metrics.SeoPages.WithLabelValues("skipped").Inc()
				continue
			}
			kept = append(kept, t)
		}
		pending = kept
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"targets":    len(pending),
		"skipped":    len(result.Skipped),
		"batch_size": s.batchSize,
	})
	log.Info("Starting landing page generation")

	var mu sync.Mutex
	for start := 0; start < len(pending); start += s.batchSize {
		if start > 0 && s.batchDelay > 0 {
			if err := sleepContext(ctx, s.batchDelay); err != nil {
				return result, err
			}
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}

		end := start + s.batchSize
		if end > len(pending) {
			end = len(pending)
		}

		var g errgroup.Group
		g.SetLimit(s.batchSize)
		for _, target := range pending[start:end] {
			target := target
			g.Go(func() error {
				_, err := s.generateOne(ctx, target, req.WithImages)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					result.Failed = append(result.Failed, BatchFailure{Slug: target.Slug(), Error: err.Error()})
					s.metrics.SeoPages.WithLabelValues("failed").Inc()
					return nil
				}
				result.Generated = append(result.Generated, target.Slug())
				s.metrics.SeoPages.WithLabelValues("generated").Inc()
				return nil
			})
		}
		_ = g.Wait()
	}

	log.WithFields(map[string]interface{}{
		"generated": len(result.Generated),
		"failed":    len(result.Failed),
	}).Info("Landing page generation finished")
	return result, nil
}

// GeneratePage generates or regenerates a single draft page
func (s *SeoService) GeneratePage(ctx context.Context, target seo.Target, withImage bool) (*SeoPageResponse, error) {
	if err := validate(s.validator, &target); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	page, err := s.generateOne(ctx, target, withImage)
	if err != nil {
		return nil, err
	}
	return toSeoPageResponse(page, true), nil
}

func (s *SeoService) generateOne(ctx context.Context, target seo.Target, withImage bool) (*models.SeoLandingPage, error) {
	slug := target.Slug()
	log := logger.WithContext(ctx).WithField("slug", slug)

	raw, err := s.generator.GenerateJSON(ctx, seo.PagePrompt(target))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	var content seo.PageContent
	if err := llm.DecodeJSON(raw, &content); err != nil {
		return nil, fmt.Errorf("failed to decode generated content: %w", err)
	}
	content = content.Clean()
	if !content.Valid() {
		return nil, apperrors.ErrEmptyGeneration
	}

	now := time.Now()
	page := &models.SeoLandingPage{
		Slug:            slug,
		City:            strings.TrimSpace(target.City),
		State:           strings.ToUpper(strings.TrimSpace(target.State)),
		Service:         strings.TrimSpace(target.Service),
		Language:        "en",
		Title:           content.Title,
		MetaDescription: content.MetaDescription,
		H1:              content.H1,
		Content:         content.ContentHTML,
		Status:          models.PageStatusDraft,
		Model:           s.generator.Model(),
		GeneratedAt:     &now,
	}

	if withImage {
		data, mime, err := s.generator.GenerateImage(ctx, seo.ImagePrompt(target))
		if err == nil {
			page.ImageURL, err = s.images.Save(slug+media.ExtensionFor(mime), data)
		}
		if err != nil {
			// pages are still useful without a hero image
			log.WithError(err).Warn("Hero image generation failed")
		}
	}

	if err := s.repo.Upsert(page); err != nil {
		return nil, fmt.Errorf("failed to save landing page: %w", err)
	}

	stored, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to reload landing page: %w", err)
	}
	log.Debug("Landing page generated")
	return stored, nil
}

// List returns landing pages without their body content
func (s *SeoService) List(ctx context.Context, params SeoPageListParams) (*SeoPageListResponse, error) {
	if params.Status != "" && params.Status != models.PageStatusDraft && params.Status != models.PageStatusPublished {
		return nil, apperrors.NewValidationError("status", "unknown page status")
	}

	filter := repository.SeoPageFilter{
		City:    strings.TrimSpace(params.City),
		State:   strings.ToUpper(strings.TrimSpace(params.State)),
		Service: strings.TrimSpace(params.Service),
		Status:  params.Status,
	}
	p := NewPagination(params.Page, params.PageSize)
	pages, total, err := s.repo.List(filter, p.Limit(), p.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list landing pages: %w", err)
	}

	out := make([]SeoPageResponse, len(pages))
	for i := range pages {
		out[i] = *toSeoPageResponse(&pages[i], false)
	}
	return &SeoPageListResponse{
		Pages:    out,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}

// Get returns any page by ID
func (s *SeoService) Get(ctx context.Context, id uuid.UUID) (*SeoPageResponse, error) {
	page, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return toSeoPageResponse(page, true), nil
}

// GetPublishedBySlug returns a page for public rendering. Drafts are reported as not found.
func (s *SeoService) GetPublishedBySlug(ctx context.Context, slug string) (*SeoPageResponse, error) {
	page, err := s.repo.GetBySlug(strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSeoPageNotFound
		}
		return nil, fmt.Errorf("failed to get landing page: %w", err)
	}
	if page.Status != models.PageStatusPublished {
		return nil, apperrors.ErrSeoPageNotFound
	}
	return toSeoPageResponse(page, true), nil
}

// Publish makes a page publicly visible
func (s *SeoService) Publish(ctx context.Context, id uuid.UUID) (*SeoPageResponse, error) {
	page, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if page.Status == models.PageStatusPublished {
		return toSeoPageResponse(page, true), nil
	}

	now := time.Now()
	page.Status = models.PageStatusPublished
	page.PublishedAt = &now
	if err := s.repo.Update(page); err != nil {
		return nil, fmt.Errorf("failed to publish landing page: %w", err)
	}
	logger.WithContext(ctx).WithField("slug", page.Slug).Info("Landing page published")
	return toSeoPageResponse(page, true), nil
}

// Unpublish returns a page to draft
func (s *SeoService) Unpublish(ctx context.Context, id uuid.UUID) (*SeoPageResponse, error) {
	page, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if page.Status == models.PageStatusDraft {
		return toSeoPageResponse(page, true), nil
	}

	page.Status = models.PageStatusDraft
	page.PublishedAt = nil
	if err := s.repo.Update(page); err != nil {
		return nil, fmt.Errorf("failed to unpublish landing page: %w", err)
	}
	return toSeoPageResponse(page, true), nil
}

// Delete removes a page
func (s *SeoService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.get(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete landing page: %w", err)
	}
	return nil
}

// Translate creates (or refreshes) a draft copy of a page in another language
func (s *SeoService) Translate(ctx context.Context, id uuid.UUID, req *TranslatePageRequest) (*SeoPageResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	source, err := s.get(id)
	if err != nil {
		return nil, err
	}
	lang := strings.ToLower(strings.TrimSpace(req.Language))
	if lang == source.Language {
		return nil, apperrors.NewValidationError("language", "page is already in this language")
	}

	texts, err := s.translator.Translate(ctx, []string{source.Title, source.MetaDescription, source.H1, source.Content}, source.Language, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to translate landing page: %w", err)
	}
	if len(texts) != 4 {
		return nil, fmt.Errorf("failed to translate landing page: expected 4 fragments, got %d", len(texts))
	}

	translated := seo.PageContent{
		Title:           texts[0],
		MetaDescription: texts[1],
		H1:              texts[2],
		ContentHTML:     texts[3],
	}.Clean()

	now := time.Now()
	slug := seo.TranslatedSlug(source.Slug, lang)
	page := &models.SeoLandingPage{
		Slug:            slug,
		City:            source.City,
		State:           source.State,
		Service:         source.Service,
		Language:        lang,
		Title:           translated.Title,
		MetaDescription: translated.MetaDescription,
		H1:              translated.H1,
		Content:         translated.ContentHTML,
		ImageURL:        source.ImageURL,
		Status:          models.PageStatusDraft,
		Model:           source.Model,
		GeneratedAt:     &now,
	}
	if err := s.repo.Upsert(page); err != nil {
		return nil, fmt.Errorf("failed to save translated page: %w", err)
	}

	stored, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to reload translated page: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"source": source.Slug,
		"slug":   slug,
	}).Info("Landing page translated")
	return toSeoPageResponse(stored, true), nil
}

func (s *SeoService) get(id uuid.UUID) (*models.SeoLandingPage, error) {
	page, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSeoPageNotFound
		}
		return nil, fmt.Errorf("failed to get landing page: %w", err)
	}
	return page, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func toSeoPageResponse(p *models.SeoLandingPage, withContent bool) *SeoPageResponse {
	resp := &SeoPageResponse{
		ID:              p.ID,
		Slug:            p.Slug,
		City:            p.City,
		State:           p.State,
		Service:         p.Service,
		Language:        p.Language,
		Title:           p.Title,
		MetaDescription: p.MetaDescription,
		H1:              p.H1,
		ImageURL:        p.ImageURL,
		Status:          p.Status,
		Model:           p.Model,
		GeneratedAt:     formatTimePtr(p.GeneratedAt),
		PublishedAt:     formatTimePtr(p.PublishedAt),
		UpdatedAt:       formatTime(p.UpdatedAt),
	}
	if withContent {
		resp.Content = p.Content
	}
	return resp
}
