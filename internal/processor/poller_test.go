//nolint:testpackage // Testing internal processor requires same package access
package processor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyayasetu/classifier/internal/domain"
	"github.com/nyayasetu/classifier/internal/logging"
)

// mockArchive is a mutex-guarded in-memory archive client.
type mockArchive struct {
	mu       sync.Mutex
	pending  []*domain.Complaint
	queryErr error

	archived []*domain.ClassifiedComplaint
	statuses map[string]string
}

func newMockArchive(pending ...*domain.Complaint) *mockArchive {
	return &mockArchive{
		pending:  pending,
		statuses: make(map[string]string),
	}
}

func (m *mockArchive) QueryPending(_ context.Context, status string, batchSize int) ([]*domain.Complaint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	var out []*domain.Complaint
	for _, c := range m.pending {
		if c.ClassificationStatus == status && len(out) < batchSize {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockArchive) BulkArchive(_ context.Context, classified []*domain.ClassifiedComplaint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.archived = append(m.archived, classified...)
	return nil
}

func (m *mockArchive) UpdateStatus(_ context.Context, complaintID, status string, _ time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statuses[complaintID] = status
	return nil
}

// mockHistoryWriter records saved history batches.
type mockHistoryWriter struct {
	mu      sync.Mutex
	saved   []*domain.ClassificationHistory
	saveErr error
}

func (m *mockHistoryWriter) SaveHistoryBatch(_ context.Context, records []*domain.ClassificationHistory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, records...)
	return nil
}

func newTestPoller(t *testing.T, archive *mockArchive, history *mockHistoryWriter) *Poller {
	t.Helper()

	engine := newTestEngine(t)
	batch := NewBatchProcessor(engine, getTestProvider(), 2, logging.NewNop())
	limiter := NewRateLimiter(1000, 1000, getTestProvider(), logging.NewNop())
	return NewPoller(archive, history, batch, limiter, logging.NewNop(), PollerConfig{
		BatchSize:    10,
		PollInterval: time.Hour,
	})
}

func TestPoller_ProcessPending(t *testing.T) {
	archive := newMockArchive(
		pendingComplaint("p-1", "my husband beats me daily"),
		pendingComplaint("p-2", "someone hacked my online banking account"),
	)
	history := &mockHistoryWriter{}
	poller := newTestPoller(t, archive, history)

	require.NoError(t, poller.ProcessPending(context.Background()))

	assert.Len(t, archive.archived, 2)
	assert.Equal(t, domain.StatusClassified, archive.statuses["p-1"])
	assert.Equal(t, domain.StatusClassified, archive.statuses["p-2"])
	assert.Len(t, history.saved, 2)
}

func TestPoller_ProcessPendingEmpty(t *testing.T) {
	archive := newMockArchive()
	history := &mockHistoryWriter{}
	poller := newTestPoller(t, archive, history)

	require.NoError(t, poller.ProcessPending(context.Background()))
	assert.Empty(t, archive.archived)
	assert.Empty(t, history.saved)
}

func TestPoller_QueryError(t *testing.T) {
	archive := newMockArchive()
	archive.queryErr = errors.New("search unavailable")
	poller := newTestPoller(t, archive, &mockHistoryWriter{})

	err := poller.ProcessPending(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query pending complaints")
}

func TestPoller_HistoryFailureIsNotFatal(t *testing.T) {
	archive := newMockArchive(pendingComplaint("p-1", "my boss is not giving my salary"))
	history := &mockHistoryWriter{saveErr: errors.New("db down")}
	poller := newTestPoller(t, archive, history)

	// Archiving succeeds even when history cannot be written.
	require.NoError(t, poller.ProcessPending(context.Background()))
	assert.Len(t, archive.archived, 1)
}

func TestPoller_StartStop(t *testing.T) {
	archive := newMockArchive()
	poller := newTestPoller(t, archive, &mockHistoryWriter{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, poller.Start(ctx))
	assert.True(t, poller.IsRunning())
	assert.Error(t, poller.Start(ctx))

	poller.Stop()
	assert.False(t, poller.IsRunning())
}

func TestPoller_Stats(t *testing.T) {
	poller := newTestPoller(t, newMockArchive(), &mockHistoryWriter{})

	stats := poller.Stats()
	assert.Equal(t, false, stats["running"])
	assert.Equal(t, 10, stats["batch_size"])
}
