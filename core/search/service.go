// ABOUTME: Aggregation coordinator fanning a query out to every retailer source
// ABOUTME: Per-source caching, timeouts, and failure isolation with an all-join

package search

import (
	"context"
	"errors"
	"strings"
	"sync"

	"prixmalin-api/core/config"
	"prixmalin-api/core/domain"
	coreerrors "prixmalin-api/core/errors"
	"prixmalin-api/core/interfaces"
)

// noValidStoresMsg is the only whole-request error the coordinator emits.
const noValidStoresMsg = "No valid stores selected"

// Service coordinates concurrent searches across all registered sources.
type Service struct {
	deps     interfaces.Dependencies
	registry *Registry
	opts     config.SearchOptions
}

// NewService creates a new aggregation coordinator over the given registry.
func NewService(deps interfaces.Dependencies, registry *Registry, opts config.SearchOptions) *Service {
	return &Service{
		deps:     deps,
		registry: registry,
		opts:     opts,
	}
}

// sourceOutcome is the terminal state of one per-source task. Failures
// are carried as values, never as cross-goroutine panics or aborts.
type sourceOutcome struct {
	products []domain.Product
	errMsg   string
}

// SearchAll fans the query out to all (or the selected subset of)
// sources concurrently and joins the results.
//
// Every per-source failure is converted into an entry of the result's
// Errors list; one broken source never blanks out the others. The
// response shape is uniform: even the "no valid stores" case returns a
// well-formed SearchResult rather than an error.
func (s *Service) SearchAll(ctx context.Context, query string, stores []string) *domain.SearchResult {
	workingSet := s.resolveWorkingSet(stores)

	if len(workingSet) == 0 {
		result := domain.NewSearchResult(query)
		result.Errors = append(result.Errors, noValidStoresMsg)
		return result
	}

	outcomes := make([]sourceOutcome, len(workingSet))
	var wg sync.WaitGroup

	for i, key := range workingSet {
		src, _ := s.registry.Get(key)
		wg.Add(1)
		go func(i int, key string, src interfaces.Source) {
			defer wg.Done()
			outcomes[i] = s.runSource(ctx, key, src, query)
		}(i, key, src)
	}

	// All tasks run to a terminal state; no fail-fast, no sibling
	// cancellation.
	wg.Wait()

	result := domain.NewSearchResult(query)
	for _, outcome := range outcomes {
		for _, p := range outcome.products {
			if isRelevant(p, query, s.opts.RelevanceCoverage) {
				result.Products = append(result.Products, p)
			}
		}
		if outcome.errMsg != "" {
			result.Errors = append(result.Errors, outcome.errMsg)
		}
	}

	sortByPrice(result.Products)

	return result
}

// resolveWorkingSet filters a caller-supplied subset against the
// registry, silently dropping unknown keys. A nil or empty subset
// selects the whole registry.
func (s *Service) resolveWorkingSet(stores []string) []string {
	if len(stores) == 0 {
		return s.registry.Keys()
	}

	var workingSet []string
	seen := make(map[string]struct{}, len(stores))
	for _, store := range stores {
		key := strings.ToLower(strings.TrimSpace(store))
		if _, dup := seen[key]; dup {
			continue
		}
		if _, ok := s.registry.Get(key); ok {
			workingSet = append(workingSet, key)
			seen[key] = struct{}{}
		}
	}
	return workingSet
}

// runSource executes one per-source task: cache check, fetch under the
// configured deadline, cache write on success. Every failure is caught
// here and converted to an error string.
func (s *Service) runSource(ctx context.Context, key string, src interfaces.Source, query string) sourceOutcome {
	cached, err := s.deps.Cache.Get(ctx, query, key)
	if err == nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Info("cache hit", map[string]interface{}{
				"source": key,
				"query":  query,
			})
		}
		return sourceOutcome{products: cached}
	}
	if !errors.Is(err, coreerrors.ErrCacheMiss) {
		// Backend or decode failure: treated as a miss, the entry is
		// overwritten on the next successful fetch.
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("cache read failed", map[string]interface{}{
				"source": key,
				"query":  query,
				"error":  err.Error(),
			})
		}
	}

	products, err := s.fetchWithDeadline(ctx, src, query)
	if err != nil {
		var msg string
		if errors.Is(err, context.DeadlineExceeded) {
			msg = (&coreerrors.SourceTimeoutError{Store: src.StoreName()}).Error()
			if s.deps.Logger != nil {
				s.deps.Logger.Warn(msg, nil)
			}
		} else {
			msg = (&coreerrors.SourceError{Store: src.StoreName(), Err: err}).Error()
			if s.deps.Logger != nil {
				s.deps.Logger.Error(msg, nil)
			}
		}
		return sourceOutcome{errMsg: msg}
	}

	if err := s.deps.Cache.Set(ctx, query, key, products); err != nil {
		// Cache write errors never surface as request failures.
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("cache write failed", map[string]interface{}{
				"source": key,
				"query":  query,
				"error":  err.Error(),
			})
		}
	}

	return sourceOutcome{products: products}
}

// fetchWithDeadline invokes the source's search under the configured
// per-source deadline. The deadline cancels only this source's fetch;
// the select also covers sources that do not honor the context.
func (s *Service) fetchWithDeadline(ctx context.Context, src interfaces.Source, query string) ([]domain.Product, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.opts.SourceTimeout)
	defer cancel()

	type fetchResult struct {
		products []domain.Product
		err      error
	}
	done := make(chan fetchResult, 1)

	go func() {
		products, err := src.Search(fetchCtx, query)
		done <- fetchResult{products: products, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return nil, res.err
		}
		if res.products == nil {
			res.products = []domain.Product{}
		}
		return res.products, nil
	case <-fetchCtx.Done():
		return nil, fetchCtx.Err()
	}
}
