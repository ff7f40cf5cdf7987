package bridge_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bnema/tabshell/internal/application/port"
	portmocks "github.com/bnema/tabshell/internal/application/port/mocks"
	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/bridge"
	"github.com/bnema/tabshell/internal/domain/build"
	"github.com/bnema/tabshell/internal/domain/entity"
	repomocks "github.com/bnema/tabshell/internal/domain/repository/mocks"
	"github.com/bnema/tabshell/internal/infrastructure/filesystem"
	"github.com/bnema/tabshell/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

func TestInvoke_RejectsUnknownOperations(t *testing.T) {
	b := bridge.New(bridge.Deps{})

	for _, op := range []string{"", "eval", "readFile", "GETAPPVERSION", "getAppVersion "} {
		_, err := b.Invoke(testContext(), op, nil)
		assert.ErrorIs(t, err, bridge.ErrOperationNotAllowed, "op %q", op)
	}
}

func TestOperations_IsTheFixedAllowList(t *testing.T) {
	ops := bridge.New(bridge.Deps{}).Operations()
	assert.ElementsMatch(t, []bridge.Op{
		bridge.OpGetAppVersion, bridge.OpGetMetrics,
		bridge.OpWindowMinimize, bridge.OpWindowMaximize, bridge.OpWindowClose,
		bridge.OpOpenSettings, bridge.OpOnSettingsUpdated,
		bridge.OpClearCache, bridge.OpClearCookies, bridge.OpClearHistory, bridge.OpClearAllData,
		bridge.OpSelectDownloadLocation, bridge.OpGetDefaultDownloadPath, bridge.OpSaveScreenshot,
	}, ops)
}

func TestInvoke_GetAppVersion(t *testing.T) {
	info := build.Info{Version: "1.0.0", Commit: "abc"}
	got, err := bridge.New(bridge.Deps{Build: info}).Invoke(testContext(), "getAppVersion", nil)
	require.NoError(t, err)
	assert.Equal(t, info, got)
}

func TestGetMetrics(t *testing.T) {
	ctx := testContext()
	sampler := portmocks.NewMockMetricsSampler(t)
	sampler.EXPECT().Sample(ctx).Return(port.Metrics{OpenTabs: 3, Goroutines: 12}, nil).Once()

	got, err := bridge.New(bridge.Deps{Metrics: sampler}).Invoke(ctx, "getMetrics", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, got.(port.Metrics).OpenTabs)
}

func TestWindowOperations(t *testing.T) {
	ctx := testContext()
	window := portmocks.NewMockWindowController(t)
	window.EXPECT().Minimize(ctx).Return(nil).Once()
	window.EXPECT().Maximize(ctx).Return(errors.New("no window manager")).Once()
	window.EXPECT().Close(ctx).Return(nil).Once()
	b := bridge.New(bridge.Deps{Window: window})

	assert.Equal(t, bridge.Result{Success: true}, b.WindowMinimize(ctx))
	assert.Equal(t, bridge.Result{Error: "no window manager"}, b.WindowMaximize(ctx))
	assert.True(t, b.WindowClose(ctx).Success)
}

func TestWindowOperations_WithoutController(t *testing.T) {
	res := bridge.New(bridge.Deps{}).WindowMinimize(testContext())
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
}

func TestOpenSettings(t *testing.T) {
	opened := 0
	b := bridge.New(bridge.Deps{OpenSettings: func() { opened++ }})
	got, err := b.Invoke(testContext(), "openSettings", nil)
	require.NoError(t, err)
	assert.Equal(t, bridge.Result{Success: true}, got)
	assert.Equal(t, 1, opened)
}

func TestClearOperations(t *testing.T) {
	ctx := testContext()
	engine := portmocks.NewMockBrowsingDataClearer(t)
	engine.EXPECT().ClearCache(ctx).Return(nil).Twice()
	engine.EXPECT().ClearCookies(ctx).Return(errors.New("target closed")).Twice()
	history := repomocks.NewMockHistoryRepository(t)
	history.EXPECT().DeleteAll(ctx).Return(nil).Twice()

	clear := usecase.NewClearDataUseCase(engine, usecase.NewRecordHistoryUseCase(history))
	b := bridge.New(bridge.Deps{ClearData: clear})

	assert.True(t, b.ClearCache(ctx).Success)
	assert.False(t, b.ClearCookies(ctx).Success)
	assert.True(t, b.ClearHistory(ctx).Success)

	all := b.ClearAllData(ctx)
	assert.False(t, all.Success)
	assert.Contains(t, all.Error, "target closed")
}

func newSettings(t *testing.T) (*usecase.ManageSettingsUseCase, *repomocks.MockSettingsRepository) {
	repo := repomocks.NewMockSettingsRepository(t)
	return usecase.NewManageSettingsUseCase(repo), repo
}

func TestSelectDownloadLocation(t *testing.T) {
	ctx := testContext()
	settings, repo := newSettings(t)
	repo.EXPECT().Save(ctx, mock.MatchedBy(func(s entity.Settings) bool {
		return s.DownloadLocation == "/data/dl"
	})).Return(nil).Once()

	xdg := portmocks.NewMockXDGPaths(t)
	xdg.EXPECT().DownloadDir().Return("/home/u/Downloads", nil)
	picker := portmocks.NewMockDirectoryPicker(t)
	picker.EXPECT().PickDirectory(ctx, mock.Anything, "/home/u/Downloads").Return("/data/dl", nil).Once()

	b := bridge.New(bridge.Deps{
		Settings:    settings,
		Picker:      picker,
		Screenshots: usecase.NewSaveScreenshotUseCase(settings, xdg, filesystem.New()),
	})

	assert.Equal(t, bridge.Result{Success: true, Path: "/data/dl"}, b.SelectDownloadLocation(ctx))
	assert.Equal(t, "/data/dl", settings.Current().DownloadLocation)
}

func TestSelectDownloadLocation_Cancelled(t *testing.T) {
	ctx := testContext()
	settings, _ := newSettings(t)
	picker := portmocks.NewMockDirectoryPicker(t)
	picker.EXPECT().PickDirectory(ctx, mock.Anything, mock.Anything).Return("", nil).Once()

	res := bridge.New(bridge.Deps{Settings: settings, Picker: picker}).SelectDownloadLocation(ctx)
	assert.False(t, res.Success)
	assert.Equal(t, "cancelled", res.Error)
	assert.Empty(t, settings.Current().DownloadLocation)
}

func TestSaveScreenshot(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()
	settings, _ := newSettings(t)
	xdg := portmocks.NewMockXDGPaths(t)
	xdg.EXPECT().DownloadDir().Return(dir, nil)
	b := bridge.New(bridge.Deps{Screenshots: usecase.NewSaveScreenshotUseCase(settings, xdg, filesystem.New())})

	payload, err := json.Marshal(map[string][]byte{"buffer": []byte("\x89PNG fake")})
	require.NoError(t, err)
	got, err := b.Invoke(ctx, "saveScreenshot", payload)
	require.NoError(t, err)

	res := got.(bridge.Result)
	require.True(t, res.Success, res.Error)
	assert.Equal(t, dir, filepath.Dir(res.Path))
	assert.True(t, strings.HasPrefix(filepath.Base(res.Path), "screenshot-"))
	data, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG fake", string(data))

	empty := b.SaveScreenshot(ctx, nil)
	assert.False(t, empty.Success)

	got, err = b.Invoke(ctx, "saveScreenshot", json.RawMessage(`{"buffer":`))
	require.NoError(t, err)
	assert.False(t, got.(bridge.Result).Success)
}

func TestOnSettingsUpdated(t *testing.T) {
	ctx := testContext()
	settings, repo := newSettings(t)
	repo.EXPECT().Save(ctx, mock.Anything).Return(nil)
	b := bridge.New(bridge.Deps{Settings: settings})

	var seen []entity.Theme
	unsubscribe := b.OnSettingsUpdated(func(s entity.Settings) { seen = append(seen, s.Theme) })
	_, err := settings.Update(ctx, func(s *entity.Settings) { s.Theme = entity.ThemeDark })
	require.NoError(t, err)
	unsubscribe()
	_, err = settings.Update(ctx, func(s *entity.Settings) { s.Theme = entity.ThemeLight })
	require.NoError(t, err)

	assert.Equal(t, []entity.Theme{entity.ThemeDark}, seen)
}

func TestInvoke_OnSettingsUpdatedSubscription(t *testing.T) {
	ctx := testContext()
	settings, repo := newSettings(t)
	repo.EXPECT().Save(ctx, mock.Anything).Return(nil)
	b := bridge.New(bridge.Deps{Settings: settings})

	got, err := b.Invoke(ctx, "onSettingsUpdated", nil)
	require.NoError(t, err)
	sub := got.(bridge.Subscription)

	_, err = settings.Update(ctx, func(s *entity.Settings) { s.Theme = entity.ThemeDark })
	require.NoError(t, err)
	_, err = settings.Update(ctx, func(s *entity.Settings) { s.DoNotTrack = true })
	require.NoError(t, err)

	select {
	case s := <-sub.Updates:
		assert.True(t, s.DoNotTrack, "only the latest update is kept")
		assert.Equal(t, entity.ThemeDark, s.Theme)
	case <-time.After(time.Second):
		t.Fatal("no update delivered")
	}

	sub.Cancel()
	sub.Cancel()
	_, open := <-sub.Updates
	assert.False(t, open)
}
