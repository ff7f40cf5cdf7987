package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/logging"
)

// ClearDataUseCase wipes browsing data held by the engine and the local store.
type ClearDataUseCase struct {
	engine  port.BrowsingDataClearer
	history *RecordHistoryUseCase
}

// NewClearDataUseCase creates a new clear-data use case. engine may be nil
// when no browser is running; engine-side operations are then skipped.
func NewClearDataUseCase(engine port.BrowsingDataClearer, history *RecordHistoryUseCase) *ClearDataUseCase {
	return &ClearDataUseCase{engine: engine, history: history}
}

// ClearCache drops the HTTP cache.
func (uc *ClearDataUseCase) ClearCache(ctx context.Context) error {
	if uc.engine == nil {
		return nil
	}
	if err := uc.engine.ClearCache(ctx); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	logging.FromContext(ctx).Info().Msg("cache cleared")
	return nil
}

// ClearCookies drops all cookies.
func (uc *ClearDataUseCase) ClearCookies(ctx context.Context) error {
	if uc.engine == nil {
		return nil
	}
	if err := uc.engine.ClearCookies(ctx); err != nil {
		return fmt.Errorf("clear cookies: %w", err)
	}
	logging.FromContext(ctx).Info().Msg("cookies cleared")
	return nil
}

// ClearHistory drops browsing history.
func (uc *ClearDataUseCase) ClearHistory(ctx context.Context) error {
	return uc.history.Clear(ctx)
}

// ClearAll runs every clear operation, continuing past failures.
func (uc *ClearDataUseCase) ClearAll(ctx context.Context) error {
	return errors.Join(
		uc.ClearCache(ctx),
		uc.ClearCookies(ctx),
		uc.ClearHistory(ctx),
	)
}
