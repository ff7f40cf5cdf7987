package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
)

// ErrTabNotFound is returned when an operation references a tab that is not open.
var ErrTabNotFound = errors.New("tab not found")

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// NewTabIDGenerator returns a generator whose ids combine the session start
// stamp with a monotonic counter, so ids issued within the same clock tick
// never collide.
func NewTabIDGenerator(sessionStart time.Time) IDGenerator {
	stamp := sessionStart.Format("20060102150405")
	var counter atomic.Uint64
	return func() string {
		return fmt.Sprintf("tab-%s-%d", stamp, counter.Add(1))
	}
}

// ManageTabsUseCase handles tab list bookkeeping: ids, ordering, active and
// split selection. Views and widgets are owned by the caller.
type ManageTabsUseCase struct {
	idGenerator IDGenerator
}

// NewManageTabsUseCase creates a new tab management use case.
func NewManageTabsUseCase(idGenerator IDGenerator) *ManageTabsUseCase {
	return &ManageTabsUseCase{
		idGenerator: idGenerator,
	}
}

// NewTab allocates a tab bound to initialURL without adding it to a list.
func (uc *ManageTabsUseCase) NewTab(ctx context.Context, initialURL string) *entity.Tab {
	tab := entity.NewTab(entity.TabID(uc.idGenerator()), initialURL)
	logging.FromContext(ctx).Debug().
		Str("tab_id", string(tab.ID)).
		Str("initial_url", initialURL).
		Msg("tab allocated")
	return tab
}

// Add appends tab and optionally makes it active.
func (uc *ManageTabsUseCase) Add(ctx context.Context, tabs *entity.TabList, tab *entity.Tab, activate bool) error {
	if tabs == nil {
		return fmt.Errorf("tab list is required")
	}
	tabs.Add(tab)
	if activate {
		tabs.ActiveTabID = tab.ID
	}

	logging.FromContext(ctx).Info().
		Str("tab_id", string(tab.ID)).
		Int("position", tab.Position).
		Bool("active", tabs.ActiveTabID == tab.ID).
		Msg("tab created")
	return nil
}

// Switch makes id the active tab. In split mode, activating the partner
// swaps the panes.
func (uc *ManageTabsUseCase) Switch(ctx context.Context, tabs *entity.TabList, id entity.TabID) error {
	if tabs == nil || tabs.Find(id) == nil {
		return fmt.Errorf("switch to %q: %w", id, ErrTabNotFound)
	}
	if tabs.Split && tabs.SplitTabID == id {
		tabs.SplitTabID = tabs.ActiveTabID
	}
	tabs.ActiveTabID = id

	logging.FromContext(ctx).Debug().Str("tab_id", string(id)).Msg("tab switched")
	return nil
}

// Close removes a tab from the list. The last remaining tab is never
// removed; closed reports whether anything changed.
func (uc *ManageTabsUseCase) Close(ctx context.Context, tabs *entity.TabList, id entity.TabID) (closed bool, err error) {
	ctx = logging.WithTabID(ctx, string(id))
	log := logging.FromContext(ctx)

	if tabs == nil {
		return false, fmt.Errorf("tab list is required")
	}
	if tabs.Find(id) == nil {
		log.Debug().Msg("close ignored: tab not found")
		return false, nil
	}
	if tabs.Count() == 1 {
		log.Debug().Msg("close ignored: last tab")
		return false, nil
	}

	if !tabs.Remove(id) {
		return false, fmt.Errorf("failed to remove tab")
	}

	log.Info().
		Str("new_active", string(tabs.ActiveTabID)).
		Int("remaining", tabs.Count()).
		Msg("tab closed")
	return true, nil
}

// ToggleSplit turns split view on or off and reports the new state.
// Enabling needs at least two tabs.
func (uc *ManageTabsUseCase) ToggleSplit(ctx context.Context, tabs *entity.TabList) bool {
	log := logging.FromContext(ctx)
	if tabs.Split {
		tabs.ClearSplit()
		log.Debug().Msg("split disabled")
		return false
	}
	if !tabs.EnableSplit() {
		log.Debug().Int("tabs", tabs.Count()).Msg("split needs two tabs")
		return false
	}
	log.Debug().
		Str("primary", string(tabs.ActiveTabID)).
		Str("secondary", string(tabs.SplitTabID)).
		Msg("split enabled")
	return true
}

// Cycle returns the tab offset positions away from the active one, wrapping.
func (uc *ManageTabsUseCase) Cycle(tabs *entity.TabList, offset int) (entity.TabID, bool) {
	n := tabs.Count()
	if n == 0 {
		return "", false
	}
	idx := tabs.IndexOf(tabs.ActiveTabID)
	if idx < 0 {
		idx = 0
	}
	next := ((idx+offset)%n + n) % n
	return tabs.Tabs[next].ID, true
}
