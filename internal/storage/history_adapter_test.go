//nolint:testpackage // Testing internal storage requires same package access
package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyayasetu/classifier/internal/domain"
	"github.com/nyayasetu/classifier/internal/logging"
)

// mockHistoryRepo is a configurable in-memory history repository.
type mockHistoryRepo struct {
	created    []*domain.ClassificationHistory
	batchErr   error
	failIDs    map[string]bool
	batchCalls int
}

func (m *mockHistoryRepo) Create(_ context.Context, history *domain.ClassificationHistory) error {
	if m.failIDs[history.ComplaintID] {
		return errors.New("insert failed")
	}
	m.created = append(m.created, history)
	return nil
}

func (m *mockHistoryRepo) CreateBatch(ctx context.Context, records []*domain.ClassificationHistory) error {
	m.batchCalls++
	if m.batchErr != nil {
		return m.batchErr
	}
	for _, history := range records {
		if err := m.Create(ctx, history); err != nil {
			return err
		}
	}
	return nil
}

func historyRecord(complaintID string) *domain.ClassificationHistory {
	return &domain.ClassificationHistory{
		ComplaintID:          complaintID,
		QueryText:            "my neighbour encroached on my plot",
		Domain:               domain.DomainPropertyLaw,
		Confidence:           0.8,
		ClassifierVersion:    "1.0.0",
		ClassificationMethod: domain.MethodMLModel,
	}
}

func TestHistoryAdapter_SaveHistory(t *testing.T) {
	repo := &mockHistoryRepo{}
	adapter := NewHistoryAdapter(repo, logging.NewNop())

	require.NoError(t, adapter.SaveHistory(context.Background(), historyRecord("c-1")))
	require.Len(t, repo.created, 1)
	assert.Equal(t, "c-1", repo.created[0].ComplaintID)
}

func TestHistoryAdapter_SaveHistoryBatch(t *testing.T) {
	repo := &mockHistoryRepo{}
	adapter := NewHistoryAdapter(repo, logging.NewNop())

	records := []*domain.ClassificationHistory{historyRecord("c-1"), historyRecord("c-2")}
	require.NoError(t, adapter.SaveHistoryBatch(context.Background(), records))
	assert.Equal(t, 1, repo.batchCalls)
	assert.Len(t, repo.created, 2)
}

func TestHistoryAdapter_SaveHistoryBatchEmpty(t *testing.T) {
	repo := &mockHistoryRepo{}
	adapter := NewHistoryAdapter(repo, logging.NewNop())

	require.NoError(t, adapter.SaveHistoryBatch(context.Background(), nil))
	assert.Zero(t, repo.batchCalls)
}

func TestHistoryAdapter_BatchFallsBackToIndividual(t *testing.T) {
	repo := &mockHistoryRepo{
		batchErr: errors.New("batch insert failed"),
		failIDs:  map[string]bool{"bad": true},
	}
	adapter := NewHistoryAdapter(repo, logging.NewNop())

	records := []*domain.ClassificationHistory{
		historyRecord("good-1"),
		historyRecord("bad"),
		historyRecord("good-2"),
	}

	// One failing record does not sink the batch.
	require.NoError(t, adapter.SaveHistoryBatch(context.Background(), records))
	assert.Len(t, repo.created, 2)
}

func TestHistoryAdapter_AllRecordsFailed(t *testing.T) {
	repo := &mockHistoryRepo{
		batchErr: errors.New("batch insert failed"),
		failIDs:  map[string]bool{"a": true, "b": true},
	}
	adapter := NewHistoryAdapter(repo, logging.NewNop())

	records := []*domain.ClassificationHistory{historyRecord("a"), historyRecord("b")}
	err := adapter.SaveHistoryBatch(context.Background(), records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all 2 classification history records failed")
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "abcde...", truncateString("abcdefgh", 5))
}
