package scraper

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"recipe-scraper/internal/config"
	"recipe-scraper/internal/domain"
	"recipe-scraper/internal/fetch"
	"recipe-scraper/internal/monitoring"
	"recipe-scraper/internal/scrape"
	"recipe-scraper/internal/storage"
)

// Scraper manages the worker pool and category scrape tasks.
type Scraper struct {
	config     *config.Config
	fetcher    fetch.DocumentFetcher
	translator scrape.Translator
	pgStore    *storage.PostgresStore
	redisStore *storage.RedisStore
	metrics    *monitoring.Metrics
	logger     *zap.Logger
	taskQueue  chan domain.ScrapeTask
	stopChan   chan struct{}
	wg         sync.WaitGroup
}

func NewScraper(cfg *config.Config, f fetch.DocumentFetcher, t scrape.Translator, ps *storage.PostgresStore, rs *storage.RedisStore, m *monitoring.Metrics, l *zap.Logger) *Scraper {
	return &Scraper{
		config:     cfg,
		fetcher:    f,
		translator: t,
		pgStore:    ps,
		redisStore: rs,
		metrics:    m,
		logger:     l,
		taskQueue:  make(chan domain.ScrapeTask, cfg.ScrapeWorkers*2),
		stopChan:   make(chan struct{}),
	}
}

func (s *Scraper) Start() {
	for i := 0; i < s.config.ScrapeWorkers; i++ {
		s.wg.Add(1)
		go s.worker()
	}
}

func (s *Scraper) Stop() {
	close(s.stopChan)
	close(s.taskQueue)
	s.wg.Wait()
}

func (s *Scraper) Submit(task domain.ScrapeTask) {
	s.taskQueue <- task
}

func (s *Scraper) worker() {
	defer s.wg.Done()
	for {
		select {
		case task, ok := <-s.taskQueue:
			if !ok {
				return // Channel closed
			}
			s.processCategory(task)
		case <-s.stopChan:
			return
		}
	}
}

func (s *Scraper) processCategory(task domain.ScrapeTask) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(s.config.ScrapeTimeout)*time.Second)
	defer cancel()

	category := task.Source.CategoryEN

	if !task.Force {
		recent, err := s.redisStore.IsRecentlyScraped(ctx, category)
		if err != nil {
			s.logger.Error("failed to check redis for scrape marker", zap.String("category", category), zap.Error(err))
		}
		if recent {
			s.logger.Info("skipping recently scraped category", zap.String("category", category))
			return
		}
	}

	if err := s.pgStore.SaveScrapeStatus(ctx, category, "processing", "", 0); err != nil {
		s.logger.Error("failed to mark category as processing", zap.String("category", category), zap.Error(err))
	}

	doc, err := s.fetcher.Fetch(ctx, task.Source.URL)
	if err != nil {
		s.handleFailure(ctx, category, "fetch_failed", err.Error())
		return
	}
	s.metrics.IncPagesFetched("category")

	table, ok := scrape.SelectBestTable(doc)
	if !ok {
		// No partial-table fallback exists; the whole category is skipped.
		s.handleFailure(ctx, category, "table_not_found", "no recipe table found on "+task.Source.URL)
		return
	}

	headers := scrape.ResolveHeaders(table)

	// Each task gets its own detail resolver so the page cache never crosses
	// worker goroutines.
	detail := fetch.NewDetailResolver(s.fetcher,
		time.Duration(s.config.DetailFetchDelayMS)*time.Millisecond, s.logger)

	recipes := scrape.ExtractRecords(ctx, table, headers, task.Source, scrape.Collaborators{
		Images:     detail,
		Sources:    detail,
		Translator: s.translator,
	})
	s.metrics.AddRecipesExtracted(category, len(recipes))

	if err := s.pgStore.SaveRecipes(ctx, recipes); err != nil {
		s.logger.Error("error saving recipes", zap.String("category", category), zap.Error(err))
		s.metrics.IncErrorsTotal("db_save_failed")
		s.handleFailure(ctx, category, "db_save_failed", err.Error())
		return
	}

	if err := s.pgStore.SaveScrapeStatus(ctx, category, "completed", "", len(recipes)); err != nil {
		s.logger.Error("failed to mark category as completed", zap.String("category", category), zap.Error(err))
	}

	ttl := time.Duration(s.config.RescrapeHours) * time.Hour
	if err := s.redisStore.MarkScraped(ctx, category, ttl); err != nil {
		s.logger.Error("failed to set scrape marker", zap.String("category", category), zap.Error(err))
	}

	s.logger.Info("successfully scraped category",
		zap.String("category", category), zap.Int("recipes", len(recipes)))
}

func (s *Scraper) handleFailure(ctx context.Context, category, errorType, reason string) {
	s.logger.Warn("failed to scrape category",
		zap.String("category", category), zap.String("reason", reason))
	s.metrics.IncErrorsTotal(errorType)

	if err := s.pgStore.SaveScrapeStatus(ctx, category, "failed", reason, 0); err != nil {
		s.logger.Error("failed to mark category as failed in db", zap.String("category", category), zap.Error(err))
	}
}
