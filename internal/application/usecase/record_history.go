package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/repository"
	"github.com/bnema/tabshell/internal/logging"
)

const (
	defaultRecentLimit   = 50
	defaultCompleteLimit = 8
)

// RecordHistoryUseCase writes committed navigations to browsing history
// and completes typed addresses from it.
type RecordHistoryUseCase struct {
	repo        repository.HistoryRepository
	completions port.Cache[string, []string]
}

// NewRecordHistoryUseCase creates a new history use case.
func NewRecordHistoryUseCase(repo repository.HistoryRepository) *RecordHistoryUseCase {
	return &RecordHistoryUseCase{repo: repo}
}

// SetCompletionCache memoizes Complete per typed prefix. Any write to
// history empties it.
func (uc *RecordHistoryUseCase) SetCompletionCache(c port.Cache[string, []string]) {
	uc.completions = c
}

func (uc *RecordHistoryUseCase) invalidate() {
	if uc.completions != nil {
		uc.completions.Clear()
	}
}

// Record stores a visit. Internal pages are not recorded.
func (uc *RecordHistoryUseCase) Record(ctx context.Context, url, title string) error {
	if !recordable(url) {
		return nil
	}
	if err := uc.repo.Record(ctx, entity.NewHistoryEntry(url, title)); err != nil {
		return fmt.Errorf("record history: %w", err)
	}
	uc.invalidate()
	logging.FromContext(ctx).Trace().Str("url", url).Msg("history recorded")
	return nil
}

// Recent returns up to limit entries, most recent first.
func (uc *RecordHistoryUseCase) Recent(ctx context.Context, limit int) ([]*entity.HistoryEntry, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	entries, err := uc.repo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent history: %w", err)
	}
	return entries, nil
}

// Clear removes all history.
func (uc *RecordHistoryUseCase) Clear(ctx context.Context) error {
	if err := uc.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	uc.invalidate()
	logging.FromContext(ctx).Info().Msg("history cleared")
	return nil
}

// Complete returns addresses from history that extend prefix, in the form
// the user is typing: without scheme unless one was typed, and without
// "www." unless that was typed. Queries with spaces are searches and get
// no completions.
func (uc *RecordHistoryUseCase) Complete(ctx context.Context, prefix string, limit int) ([]string, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" || strings.ContainsAny(prefix, " \t") {
		return nil, nil
	}
	if limit <= 0 {
		limit = defaultCompleteLimit
	}
	key := fmt.Sprintf("%d:%s", limit, prefix)
	if uc.completions != nil {
		if cached, ok := uc.completions.Get(key); ok {
			return cached, nil
		}
	}

	entries, err := uc.repo.Search(ctx, prefix, limit)
	if err != nil {
		return nil, fmt.Errorf("complete address: %w", err)
	}
	out := make([]string, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		candidate := completionForm(e.URL, prefix)
		if !strings.HasPrefix(strings.ToLower(candidate), prefix) {
			continue
		}
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}
		out = append(out, candidate)
	}

	if uc.completions != nil {
		uc.completions.Set(key, out)
	}
	return out, nil
}

// completionForm strips what the user has not typed from addr.
func completionForm(addr, typed string) string {
	if hasScheme(typed) {
		return addr
	}
	rest := addr
	for _, scheme := range []string{"https://", "http://"} {
		if len(rest) >= len(scheme) && strings.EqualFold(rest[:len(scheme)], scheme) {
			rest = rest[len(scheme):]
			break
		}
	}
	if !strings.HasPrefix(typed, "www.") && len(rest) >= 4 && strings.EqualFold(rest[:4], "www.") {
		rest = rest[4:]
	}
	return rest
}

// hasScheme reports whether typed starts with, or is a partial, http(s)
// scheme. A bare "http" is treated as a host prefix.
func hasScheme(typed string) bool {
	for _, scheme := range []string{"https://", "http://"} {
		if strings.HasPrefix(typed, scheme) {
			return true
		}
		if strings.Contains(typed, ":") && strings.HasPrefix(scheme, typed) {
			return true
		}
	}
	return false
}

func recordable(url string) bool {
	lower := strings.ToLower(url)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
