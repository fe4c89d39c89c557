// internal/watcher/watcher_test.go
package watcher

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI replays a scripted sequence of responses, one per cycle.
type fakeAPI struct {
	script []apiReply
	calls  []int64
}

type apiReply struct {
	raw string
	err error
}

func (f *fakeAPI) HomeworkStatuses(_ context.Context, from int64) (json.RawMessage, error) {
	f.calls = append(f.calls, from)
	if len(f.script) == 0 {
		return nil, errors.New("fake api: script exhausted")
	}
	reply := f.script[0]
	f.script = f.script[1:]
	if reply.err != nil {
		return nil, reply.err
	}
	return json.RawMessage(reply.raw), nil
}

type fakeNotifier struct {
	fail  bool
	texts []string
}

func (f *fakeNotifier) Notify(_ context.Context, text string) bool {
	f.texts = append(f.texts, text)
	return !f.fail
}

func newTestWatcher(t *testing.T, api *fakeAPI, n *fakeNotifier, watermark int64) *Watcher {
	t.Helper()

	w, err := New(
		Config{Interval: time.Second, InitialWatermark: watermark},
		api, n, zerolog.Nop(),
	)
	require.NoError(t, err)
	return w
}

func TestNew_Validation(t *testing.T) {
	api := &fakeAPI{}
	n := &fakeNotifier{}

	_, err := New(Config{Interval: time.Second}, nil, n, zerolog.Nop())
	require.Error(t, err)

	_, err = New(Config{Interval: time.Second}, api, nil, zerolog.Nop())
	require.Error(t, err)

	_, err = New(Config{Interval: 0}, api, n, zerolog.Nop())
	require.Error(t, err)
}

func TestRunCycle_StatusChangeNotifiedAndWatermarkAdvances(t *testing.T) {
	api := &fakeAPI{script: []apiReply{{
		raw: `{"homeworks": [{"homework_name": "lab1", "status": "approved"}], "current_date": 1000}`,
	}}}
	n := &fakeNotifier{}
	w := newTestWatcher(t, api, n, 500)

	w.RunCycle(context.Background())

	require.Equal(t, []int64{500}, api.calls)
	require.Len(t, n.texts, 1)
	assert.Equal(t,
		`Status of review "lab1" has changed. Работа проверена: ревьюеру всё понравилось. Ура!`,
		n.texts[0],
	)
	assert.Equal(t, int64(1000), w.watermark)
}

func TestRunCycle_EmptyHomeworks(t *testing.T) {
	api := &fakeAPI{script: []apiReply{{raw: `{"homeworks": [], "current_date": 1000}`}}}
	n := &fakeNotifier{}
	w := newTestWatcher(t, api, n, 500)

	w.RunCycle(context.Background())

	// Nothing to report, and the watermark stays put.
	assert.Empty(t, n.texts)
	assert.Equal(t, int64(500), w.watermark)
}

func TestRunCycle_NoCurrentDateLeavesWatermark(t *testing.T) {
	api := &fakeAPI{script: []apiReply{{
		raw: `{"homeworks": [{"homework_name": "lab1", "status": "reviewing"}]}`,
	}}}
	n := &fakeNotifier{}
	w := newTestWatcher(t, api, n, 500)

	w.RunCycle(context.Background())

	require.Len(t, n.texts, 1)
	assert.Equal(t, int64(500), w.watermark)
}

func TestRunCycle_AdvancesEvenWhenDeliveryFails(t *testing.T) {
	api := &fakeAPI{script: []apiReply{{
		raw: `{"homeworks": [{"homework_name": "lab1", "status": "rejected"}], "current_date": 1000}`,
	}}}
	n := &fakeNotifier{fail: true}
	w := newTestWatcher(t, api, n, 500)

	w.RunCycle(context.Background())

	require.Len(t, n.texts, 1)
	assert.Equal(t, int64(1000), w.watermark)
}

func TestRunCycle_OnlyFirstEntryIsParsed(t *testing.T) {
	api := &fakeAPI{script: []apiReply{{
		raw: `{"homeworks": [
			{"homework_name": "lab2", "status": "reviewing"},
			{"homework_name": "lab1", "status": "approved"}
		], "current_date": 1000}`,
	}}}
	n := &fakeNotifier{}
	w := newTestWatcher(t, api, n, 500)

	w.RunCycle(context.Background())

	require.Len(t, n.texts, 1)
	assert.Contains(t, n.texts[0], "lab2")
}

func TestRunCycle_WatermarkNeverRewinds(t *testing.T) {
	api := &fakeAPI{script: []apiReply{{
		raw: `{"homeworks": [{"homework_name": "lab1", "status": "approved"}], "current_date": 100}`,
	}}}
	n := &fakeNotifier{}
	w := newTestWatcher(t, api, n, 500)

	w.RunCycle(context.Background())

	assert.Equal(t, int64(500), w.watermark)
}

func TestRunCycle_RepeatFailureAlertsOnce(t *testing.T) {
	boom := errors.New("connect timeout")
	api := &fakeAPI{script: []apiReply{{err: boom}, {err: boom}}}
	n := &fakeNotifier{}
	w := newTestWatcher(t, api, n, 500)

	w.RunCycle(context.Background())
	w.RunCycle(context.Background())

	// Same rendered text twice → exactly one outbound alert.
	require.Len(t, n.texts, 1)
	assert.Contains(t, n.texts[0], "connect timeout")
}

func TestRunCycle_DistinctFailureAlertsAgain(t *testing.T) {
	api := &fakeAPI{script: []apiReply{
		{err: errors.New("connect timeout")},
		{err: errors.New("connect timeout")},
		{err: errors.New("dns failure")},
	}}
	n := &fakeNotifier{}
	w := newTestWatcher(t, api, n, 500)

	for i := 0; i < 3; i++ {
		w.RunCycle(context.Background())
	}

	require.Len(t, n.texts, 2)
	assert.Contains(t, n.texts[0], "connect timeout")
	assert.Contains(t, n.texts[1], "dns failure")
}

func TestRunCycle_SuccessResetsDedup(t *testing.T) {
	api := &fakeAPI{script: []apiReply{
		{err: errors.New("connect timeout")},
		{raw: `{"homeworks": []}`},
		{err: errors.New("connect timeout")},
	}}
	n := &fakeNotifier{}
	w := newTestWatcher(t, api, n, 500)

	w.RunCycle(context.Background())
	w.RunCycle(context.Background())
	w.RunCycle(context.Background())

	// Identical text, but the condition cleared in between: two alerts.
	require.Len(t, n.texts, 2)
}

func TestRunCycle_SchemaFailureIsAbsorbed(t *testing.T) {
	api := &fakeAPI{script: []apiReply{{raw: `{"current_date": 1000}`}}}
	n := &fakeNotifier{}
	w := newTestWatcher(t, api, n, 500)

	w.RunCycle(context.Background())

	require.Len(t, n.texts, 1)
	assert.Contains(t, n.texts[0], "watch cycle failed")
	assert.Contains(t, n.texts[0], "homeworks")
	// Failed cycle never advances the watermark.
	assert.Equal(t, int64(500), w.watermark)
}

func TestRunCycle_UnknownStatusIsAbsorbed(t *testing.T) {
	api := &fakeAPI{script: []apiReply{{
		raw: `{"homeworks": [{"homework_name": "lab1", "status": "pending"}], "current_date": 1000}`,
	}}}
	n := &fakeNotifier{}
	w := newTestWatcher(t, api, n, 500)

	w.RunCycle(context.Background())

	require.Len(t, n.texts, 1)
	assert.Contains(t, n.texts[0], "pending")
	assert.Equal(t, int64(500), w.watermark)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	api := &fakeAPI{script: []apiReply{
		{raw: `{"homeworks": []}`},
		{raw: `{"homeworks": []}`},
		{raw: `{"homeworks": []}`},
	}}
	n := &fakeNotifier{}

	w, err := New(
		Config{Interval: 10 * time.Millisecond, InitialWatermark: 500},
		api, n, zerolog.Nop(),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
	defer cancel()

	err = w.Run(ctx)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	// First cycle runs immediately, at least one more on the ticker.
	assert.GreaterOrEqual(t, len(api.calls), 2)
}
