package snapshot

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSaver struct {
	mu    sync.Mutex
	saves [][]string
	err   error
}

func (r *recordingSaver) SaveLast(_ context.Context, urls []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.saves = append(r.saves, urls)
	return nil
}

func (r *recordingSaver) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.saves...)
}

func TestService_DebouncesBursts(t *testing.T) {
	saver := &recordingSaver{}
	svc := NewService(saver, 20*time.Millisecond)
	svc.Start(context.Background())
	t.Cleanup(func() { _ = svc.Stop(context.Background()) })

	svc.MarkDirty([]string{"https://a.example"})
	svc.MarkDirty([]string{"https://a.example", "https://b.example"})

	require.Eventually(t, func() bool { return len(saver.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, saver.snapshot()[0])
}

func TestService_MarkDirtyCopiesInput(t *testing.T) {
	saver := &recordingSaver{}
	svc := NewService(saver, time.Hour)

	urls := []string{"https://a.example"}
	svc.MarkDirty(urls)
	urls[0] = "https://mutated.example"

	require.NoError(t, svc.SaveNow(context.Background()))
	assert.Equal(t, [][]string{{"https://a.example"}}, saver.snapshot())
}

func TestService_SaveNowWithoutChangesIsNoop(t *testing.T) {
	saver := &recordingSaver{}
	svc := NewService(saver, time.Hour)

	require.NoError(t, svc.SaveNow(context.Background()))
	assert.Empty(t, saver.snapshot())
}

func TestService_StopFlushesPending(t *testing.T) {
	saver := &recordingSaver{}
	svc := NewService(saver, time.Hour)
	svc.Start(context.Background())

	svc.MarkDirty([]string{"https://a.example"})
	require.NoError(t, svc.Stop(context.Background()))
	assert.Equal(t, [][]string{{"https://a.example"}}, saver.snapshot())

	// Nothing left to write.
	require.NoError(t, svc.SaveNow(context.Background()))
	assert.Len(t, saver.snapshot(), 1)
}

func TestService_FailedSaveIsRetried(t *testing.T) {
	saver := &recordingSaver{err: errors.New("database is locked")}
	svc := NewService(saver, time.Hour)

	svc.MarkDirty([]string{"https://a.example"})
	require.ErrorContains(t, svc.SaveNow(context.Background()), "locked")

	saver.mu.Lock()
	saver.err = nil
	saver.mu.Unlock()

	require.NoError(t, svc.SaveNow(context.Background()))
	assert.Equal(t, [][]string{{"https://a.example"}}, saver.snapshot())
}

func TestService_NoTimerSaveBeforeStart(t *testing.T) {
	saver := &recordingSaver{}
	svc := NewService(saver, time.Millisecond)

	svc.MarkDirty([]string{"https://a.example"})
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, saver.snapshot())

	require.NoError(t, svc.SaveNow(context.Background()))
	assert.Len(t, saver.snapshot(), 1)
}
