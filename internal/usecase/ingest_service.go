package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/cricket-ingest/external/cricsheet"
	"github.com/riskibarqy/cricket-ingest/internal/domain/summary"
	idgen "github.com/riskibarqy/cricket-ingest/internal/platform/id"
	"github.com/riskibarqy/cricket-ingest/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

const (
	fileStatusSuccess = "success"
	fileStatusFailed  = "failed"

	// recentMatchLimit bounds the match-summary section of the batch report.
	recentMatchLimit = 5
)

// ingestTables are counted by the post-batch verification pass.
var ingestTables = []string{
	"matches",
	"players",
	"match_players",
	"innings",
	"deliveries",
	"partnerships",
	"match_officials",
}

// FileResult is the outcome for a single scorecard file.
type FileResult struct {
	File           string
	MatchID        string
	Status         string
	Innings        int
	Deliveries     int
	DeliveryErrors int
	ErrorSamples   []string
	Error          string
	DurationMs     int64
}

// BatchResult aggregates one directory run.
type BatchResult struct {
	BatchID        string
	FilesFound     int
	WorkerCount    int
	Succeeded      int
	Failed         int
	Deliveries     int64
	DeliveryErrors int64
	Files          []FileResult
	TableCounts    []summary.TableCount
	RecentMatches  []summary.MatchSummary
	TeamStats      []summary.TeamStats
}

// IngestService runs a whole directory of scorecard files through the
// normalizer on a bounded worker pool, then verifies table counts.
type IngestService struct {
	normalizer *NormalizeService
	summaries  summary.Repository
	ids        idgen.Generator
	logger     *logging.Logger
	maxWorkers int
}

func NewIngestService(normalizer *NormalizeService, summaries summary.Repository, ids idgen.Generator, logger *logging.Logger, maxWorkers int) *IngestService {
	if ids == nil {
		ids = idgen.NewRandomGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &IngestService{
		normalizer: normalizer,
		summaries:  summaries,
		ids:        ids,
		logger:     logger,
		maxWorkers: maxWorkers,
	}
}

// RunBatch processes every *.json file under sourceDir. It returns ErrNoFiles
// when the directory matches nothing; per-file failures are reported in the
// result rather than as an error.
func (s *IngestService) RunBatch(ctx context.Context, sourceDir string) (BatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestService.RunBatch")
	defer span.End()

	if strings.TrimSpace(sourceDir) == "" {
		return BatchResult{}, fmt.Errorf("%w: source directory is required", ErrInvalidInput)
	}

	pattern := filepath.Join(sourceDir, "*.json")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return BatchResult{}, fmt.Errorf("glob scorecard files %s: %w", pattern, err)
	}
	if len(files) == 0 {
		return BatchResult{}, fmt.Errorf("%w: %s", ErrNoFiles, pattern)
	}
	sort.Strings(files)

	batchID, err := s.ids.NewID()
	if err != nil {
		s.logger.WarnContext(ctx, "generate batch id failed", "error", err)
	}

	workerCount := normalizeWorkerCount(s.maxWorkers, len(files))
	result := BatchResult{
		BatchID:     batchID,
		FilesFound:  len(files),
		WorkerCount: workerCount,
		Files:       make([]FileResult, 0, len(files)),
	}

	s.logger.InfoContext(ctx, "batch started",
		"batch_id", batchID, "source_dir", sourceDir, "files", len(files), "workers", workerCount)

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return BatchResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan FileResult, len(files))

	var succeeded atomic.Int64
	var failed atomic.Int64
	var deliveries atomic.Int64
	var deliveryErrors atomic.Int64

	var workers sync.WaitGroup
	for _, file := range files {
		file := file
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := s.ingestFile(ctx, file)
			row.DurationMs = time.Since(start).Milliseconds()

			if row.Status == fileStatusSuccess {
				succeeded.Add(1)
			} else {
				failed.Add(1)
			}
			deliveries.Add(int64(row.Deliveries))
			deliveryErrors.Add(int64(row.DeliveryErrors))

			results <- row
		}); err != nil {
			workers.Done()
			return BatchResult{}, fmt.Errorf("submit file to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Files = append(result.Files, row)
	}
	sort.Slice(result.Files, func(i, j int) bool {
		return result.Files[i].File < result.Files[j].File
	})

	result.Succeeded = int(succeeded.Load())
	result.Failed = int(failed.Load())
	result.Deliveries = deliveries.Load()
	result.DeliveryErrors = deliveryErrors.Load()
	result.TableCounts = s.verifyTables(ctx)
	result.RecentMatches, result.TeamStats = s.collectSummaries(ctx)

	s.logger.InfoContext(ctx, "batch finished", "batch_id", batchID,
		"succeeded", result.Succeeded, "failed", result.Failed, "deliveries", result.Deliveries)

	return result, nil
}

func (s *IngestService) ingestFile(ctx context.Context, file string) FileResult {
	matchID := strings.TrimSuffix(filepath.Base(file), ".json")
	row := FileResult{File: filepath.Base(file), MatchID: matchID}

	record, err := cricsheet.ParseFile(file)
	if err != nil {
		row.Status = fileStatusFailed
		row.Error = err.Error()
		s.logger.WarnContext(ctx, "scorecard rejected", "file", row.File, "error", err.Error())
		return row
	}

	stats, err := s.normalizer.IngestRecord(ctx, matchID, record)
	row.Innings = stats.Innings
	row.Deliveries = stats.Deliveries
	row.DeliveryErrors = stats.DeliveryErrors
	row.ErrorSamples = stats.ErrorSamples
	if err != nil {
		row.Status = fileStatusFailed
		row.Error = err.Error()
		s.logger.WarnContext(ctx, "scorecard failed", "file", row.File, "error", err.Error())
		return row
	}

	row.Status = fileStatusSuccess
	return row
}

// verifyTables counts every ingest table concurrently. A failed count is
// reported as -1 rather than failing the batch.
func (s *IngestService) verifyTables(ctx context.Context) []summary.TableCount {
	counts := make([]summary.TableCount, len(ingestTables))

	var wg conc.WaitGroup
	for i, table := range ingestTables {
		i, table := i, table
		wg.Go(func() {
			count, err := s.summaries.CountTable(ctx, table)
			if err != nil {
				s.logger.WarnContext(ctx, "count table failed", "table", table, "error", err.Error())
				count = -1
			}
			counts[i] = summary.TableCount{Table: table, Count: count}
		})
	}
	wg.Wait()

	return counts
}

// collectSummaries reads the reporting views for the end-of-run report. A
// failed view query degrades the report rather than failing the batch.
func (s *IngestService) collectSummaries(ctx context.Context) ([]summary.MatchSummary, []summary.TeamStats) {
	recent, err := s.summaries.MatchSummaries(ctx, recentMatchLimit)
	if err != nil {
		s.logger.WarnContext(ctx, "load match summaries failed", "error", err.Error())
	}

	stats, err := s.summaries.TeamStats(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "load team stats failed", "error", err.Error())
	}

	return recent, stats
}

func normalizeWorkerCount(maxWorkers, taskCount int) int {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	if maxWorkers > taskCount {
		return taskCount
	}
	return maxWorkers
}
