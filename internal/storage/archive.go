// Package storage provides the Elasticsearch complaint archive and the
// adapters between repositories and the batch processor.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	es "github.com/elastic/go-elasticsearch/v8"

	"github.com/nyayasetu/classifier/internal/config"
	"github.com/nyayasetu/classifier/internal/domain"
	"github.com/nyayasetu/classifier/internal/elasticsearch/mappings"
	"github.com/nyayasetu/classifier/internal/telemetry"
)

// ArchiveStorage archives complaints and their classifications in
// Elasticsearch. The archive is optional; the service runs without it.
type ArchiveStorage struct {
	client          *es.Client
	complaintIndex  string
	classifiedIndex string
	telemetry       *telemetry.Provider
}

// NewArchiveStorage creates a new Elasticsearch archive.
func NewArchiveStorage(cfg config.ElasticsearchConfig, tp *telemetry.Provider) (*ArchiveStorage, error) {
	client, err := es.NewClient(es.Config{
		Addresses:  []string{cfg.URL},
		Username:   cfg.Username,
		Password:   cfg.Password,
		MaxRetries: cfg.MaxRetries,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}

	return &ArchiveStorage{
		client:          client,
		complaintIndex:  cfg.ComplaintIndex,
		classifiedIndex: cfg.ClassifiedIndex,
		telemetry:       tp,
	}, nil
}

// Ping verifies the connection to Elasticsearch.
func (s *ArchiveStorage) Ping(ctx context.Context) error {
	res, err := s.client.Info(s.client.Info.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to connect to elasticsearch: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error response from elasticsearch: %s", res.String())
	}

	return nil
}

// EnsureIndices creates the complaint and classified-complaint indices with
// their mappings if they do not exist yet.
func (s *ArchiveStorage) EnsureIndices(ctx context.Context) error {
	indices := []struct {
		name    string
		mapping mappings.IndexMapping
	}{
		{s.complaintIndex, mappings.NewComplaintMapping()},
		{s.classifiedIndex, mappings.NewClassifiedComplaintMapping()},
	}

	for _, idx := range indices {
		if err := s.ensureIndex(ctx, idx.name, idx.mapping); err != nil {
			return err
		}
	}

	return nil
}

func (s *ArchiveStorage) ensureIndex(ctx context.Context, name string, mapping mappings.IndexMapping) error {
	exists, err := s.client.Indices.Exists(
		[]string{name},
		s.client.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to check index %s: %w", name, err)
	}
	defer exists.Body.Close()

	if exists.StatusCode == http.StatusOK {
		return nil
	}

	if err = mapping.Validate(); err != nil {
		return fmt.Errorf("invalid mapping for %s: %w", name, err)
	}

	body, err := mapping.GetJSON()
	if err != nil {
		return fmt.Errorf("failed to build mapping for %s: %w", name, err)
	}

	res, err := s.client.Indices.Create(
		name,
		s.client.Indices.Create.WithContext(ctx),
		s.client.Indices.Create.WithBody(bytes.NewReader([]byte(body))),
	)
	if err != nil {
		return fmt.Errorf("failed to create index %s: %w", name, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating index %s: %s", name, res.String())
	}

	return nil
}

// QueryPending queries the complaint index for complaints with the given
// classification status, oldest first.
func (s *ArchiveStorage) QueryPending(ctx context.Context, status string, batchSize int) ([]*domain.Complaint, error) {
	query := map[string]any{
		"query": map[string]any{
			"term": map[string]any{
				"classification_status": status,
			},
		},
		"size": batchSize,
		"sort": []map[string]any{
			{
				"received_at": map[string]any{
					"order": "asc",
				},
			},
		},
	}

	queryBytes, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.complaintIndex),
		s.client.Search.WithBody(bytes.NewReader(queryBytes)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error searching: %s", res.String())
	}

	var searchResult struct {
		Hits struct {
			Hits []struct {
				ID     string           `json:"_id"`
				Source domain.Complaint `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err = json.NewDecoder(res.Body).Decode(&searchResult); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}

	complaints := make([]*domain.Complaint, 0, len(searchResult.Hits.Hits))
	for _, hit := range searchResult.Hits.Hits {
		complaint := hit.Source
		// Preserve the Elasticsearch document ID if not already set
		if complaint.ID == "" {
			complaint.ID = hit.ID
		}
		complaints = append(complaints, &complaint)
	}

	return complaints, nil
}

// Archive indexes a single classified complaint.
func (s *ArchiveStorage) Archive(ctx context.Context, classified *domain.ClassifiedComplaint) error {
	s.prepare(classified)

	docBytes, err := json.Marshal(classified)
	if err != nil {
		s.telemetry.RecordArchive(ctx, false)
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	res, err := s.client.Index(
		s.classifiedIndex,
		bytes.NewReader(docBytes),
		s.client.Index.WithContext(ctx),
		s.client.Index.WithDocumentID(classified.ID),
	)
	if err != nil {
		s.telemetry.RecordArchive(ctx, false)
		return fmt.Errorf("failed to index document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		s.telemetry.RecordArchive(ctx, false)
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	s.telemetry.RecordArchive(ctx, true)
	return nil
}

// BulkArchive indexes multiple classified complaints in one request.
func (s *ArchiveStorage) BulkArchive(ctx context.Context, classified []*domain.ClassifiedComplaint) error {
	if len(classified) == 0 {
		return nil
	}

	var buf bytes.Buffer
	for _, doc := range classified {
		s.prepare(doc)

		meta := map[string]any{
			"index": map[string]any{
				"_index": s.classifiedIndex,
				"_id":    doc.ID,
			},
		}

		if err := json.NewEncoder(&buf).Encode(meta); err != nil {
			s.telemetry.RecordArchive(ctx, false)
			return fmt.Errorf("failed to encode meta: %w", err)
		}
		if err := json.NewEncoder(&buf).Encode(doc); err != nil {
			s.telemetry.RecordArchive(ctx, false)
			return fmt.Errorf("failed to encode document: %w", err)
		}
	}

	res, err := s.client.Bulk(
		bytes.NewReader(buf.Bytes()),
		s.client.Bulk.WithContext(ctx),
	)
	if err != nil {
		s.telemetry.RecordArchive(ctx, false)
		return fmt.Errorf("bulk request failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		s.telemetry.RecordArchive(ctx, false)
		return fmt.Errorf("bulk indexing error: %s", res.String())
	}

	s.telemetry.RecordArchive(ctx, true)
	return nil
}

// UpdateStatus updates the classification_status field of a complaint in the
// raw complaint index.
func (s *ArchiveStorage) UpdateStatus(ctx context.Context, complaintID, status string, classifiedAt time.Time) error {
	update := map[string]any{
		"doc": map[string]any{
			"classification_status": status,
			"classified_at":         classifiedAt,
		},
	}

	updateBytes, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal update: %w", err)
	}

	res, err := s.client.Update(
		s.complaintIndex,
		complaintID,
		bytes.NewReader(updateBytes),
		s.client.Update.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error updating document: %s", res.String())
	}

	return nil
}

// prepare stamps the archive-side fields before indexing.
func (s *ArchiveStorage) prepare(classified *domain.ClassifiedComplaint) {
	classified.ClassificationStatus = domain.StatusClassified
	if classified.ClassifiedAt == nil {
		now := time.Now().UTC()
		classified.ClassifiedAt = &now
	}
}
