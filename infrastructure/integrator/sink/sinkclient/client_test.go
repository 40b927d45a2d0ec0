package sinkclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

type capturedRequest struct {
	Path       string
	OnConflict string
	Prefer     string
	Secret     string
	Body       []byte
}

type recorder struct {
	mu       sync.Mutex
	requests []capturedRequest
	status   int
}

func (r *recorder) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		body, _ := io.ReadAll(req.Body)

		r.mu.Lock()
		r.requests = append(r.requests, capturedRequest{
			Path:       req.URL.Path,
			OnConflict: req.URL.Query().Get("on_conflict"),
			Prefer:     req.Header.Get("Prefer"),
			Secret:     req.Header.Get("X-Sink-Secret"),
			Body:       body,
		})
		status := r.status
		r.mu.Unlock()

		if status == 0 {
			status = http.StatusCreated
		}
		w.WriteHeader(status)
		if status >= 300 {
			_, _ = w.Write([]byte(`{"message":"duplicate key"}`))
		}
	}
}

func newTestClient(t *testing.T, rec *recorder, batchSize int) *Client {
	server := httptest.NewServer(rec.handler())
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Sink.URL = server.URL + "/rest/v1/"
	cfg.Sink.SharedSecret = "s3cret"
	cfg.Sink.BatchSize = batchSize

	client := NewClient(cfg)
	client.now = func() time.Time { return time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC) }
	return client
}

func TestMetricWriter(t *testing.T) {
	ctx := context.Background()

	t.Run("envia em lotes com segredo e merge-duplicates", func(t *testing.T) {
		rec := &recorder{}
		client := newTestClient(t, rec, 2)

		records := make([]*domain.MetricRecord, 0)
		for d := 1; d <= 3; d++ {
			records = append(records, &domain.MetricRecord{
				IdentityKey: "k" + string(rune('0'+d)),
				Date:        time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC),
				AccountID:   "4445556666",
				Platform:    "google_ads",
				Clicks:      int64(d),
			})
		}

		written, err := client.Metrics().UpsertBatch(ctx, records)
		require.NoError(t, err)
		assert.Equal(t, 3, written)

		require.Len(t, rec.requests, 2)
		first := rec.requests[0]
		assert.Equal(t, "/rest/v1/ad_metrics", first.Path)
		assert.Equal(t, "identity_key", first.OnConflict)
		assert.Equal(t, "resolution=merge-duplicates", first.Prefer)
		assert.Equal(t, "s3cret", first.Secret)

		var rows []map[string]any
		require.NoError(t, json.Unmarshal(first.Body, &rows))
		require.Len(t, rows, 2)
		assert.Equal(t, "2024-01-01", rows[0]["metric_date"])
		assert.Equal(t, "none", rows[0]["campaign_id"])
		assert.NotContains(t, rows[0], "client_id")
	})

	t.Run("linhas sem vínculo não enviam client_id", func(t *testing.T) {
		rec := &recorder{}
		client := newTestClient(t, rec, 500)

		clientID := "cli-1"
		records := []*domain.MetricRecord{
			{IdentityKey: "k1", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), AccountID: "4445556666", ClientID: &clientID},
			{IdentityKey: "k2", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), AccountID: "7778889999"},
		}

		written, err := client.Metrics().UpsertBatch(ctx, records)
		require.NoError(t, err)
		assert.Equal(t, 2, written)
		require.Len(t, rec.requests, 2)

		var linked, unlinked []map[string]any
		require.NoError(t, json.Unmarshal(rec.requests[0].Body, &linked))
		require.NoError(t, json.Unmarshal(rec.requests[1].Body, &unlinked))

		require.Len(t, linked, 1)
		assert.Equal(t, "cli-1", linked[0]["client_id"])

		require.Len(t, unlinked, 1)
		assert.Equal(t, "k2", unlinked[0]["identity_key"])
		assert.NotContains(t, unlinked[0], "client_id")
	})

	t.Run("status de erro vira SinkError com status", func(t *testing.T) {
		rec := &recorder{status: http.StatusConflict}
		client := newTestClient(t, rec, 500)

		written, err := client.Metrics().UpsertBatch(ctx, []*domain.MetricRecord{{IdentityKey: "k1", AccountID: "1"}})
		assert.Zero(t, written)

		var sinkErr *domain.SinkError
		require.ErrorAs(t, err, &sinkErr)
		assert.Equal(t, http.StatusConflict, sinkErr.StatusCode)
		assert.Equal(t, "ad_metrics", sinkErr.Target)
		assert.Contains(t, sinkErr.Error(), "duplicate key")
	})
}

func TestAccountWriter(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	client := newTestClient(t, rec, 500)

	err := client.Accounts().UpsertBatch(ctx, []*domain.AdAccount{
		{ID: "4445556666", Name: "Loja Centro", Status: domain.AdAccountStatusEnabled, Type: domain.AdAccountTypeClient},
		domain.NewPlaceholderAccount("1112223333", "google_ads"),
	})
	require.NoError(t, err)

	require.Len(t, rec.requests, 2)
	assert.Equal(t, "resolution=merge-duplicates", rec.requests[0].Prefer)
	assert.Contains(t, string(rec.requests[0].Body), "Loja Centro")
	assert.Equal(t, "resolution=ignore-duplicates", rec.requests[1].Prefer)
	assert.Contains(t, string(rec.requests[1].Body), "Account 1112223333")
	assert.Equal(t, "account_id", rec.requests[1].OnConflict)
}

func TestCampaignWriter(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	client := newTestClient(t, rec, 500)

	require.NoError(t, client.Campaigns().UpsertBatch(ctx, nil))
	assert.Empty(t, rec.requests)

	err := client.Campaigns().UpsertBatch(ctx, []*domain.Campaign{{
		IdentityKey:  "ck",
		AccountID:    "1",
		CampaignID:   "c1",
		Status:       domain.CampaignStatusPaused,
		LastSeenDate: time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
	}})
	require.NoError(t, err)

	require.Len(t, rec.requests, 1)
	assert.Equal(t, "/rest/v1/ad_campaigns", rec.requests[0].Path)
	assert.Contains(t, string(rec.requests[0].Body), `"last_seen_date":"2024-01-07"`)
	assert.Contains(t, string(rec.requests[0].Body), `"status":"paused"`)
}
