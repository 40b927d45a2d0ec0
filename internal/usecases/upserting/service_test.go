package upserting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/internal/usecases/mocks"
	"github.com/vfg2006/ads-sync-api/pkg/idhash"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	sink       Sink
	metrics    *mocks.MockMetricWriter
	accounts   *mocks.MockAccountWriter
	campaigns  *mocks.MockCampaignWriter
	links      *mocks.MockClientLinkResolver
	backfiller *mocks.MockClientLinkBackfiller
}

func newFixture(t *testing.T, withBackfill bool) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		metrics:   mocks.NewMockMetricWriter(ctrl),
		accounts:  mocks.NewMockAccountWriter(ctrl),
		campaigns: mocks.NewMockCampaignWriter(ctrl),
		links:     mocks.NewMockClientLinkResolver(ctrl),
	}

	writers := Writers{
		Metrics:   f.metrics,
		Accounts:  f.accounts,
		Campaigns: f.campaigns,
		Links:     f.links,
	}
	if withBackfill {
		f.backfiller = mocks.NewMockClientLinkBackfiller(ctrl)
		writers.Backfiller = f.backfiller
	}

	f.sink = NewService(&config.Config{}, writers)
	return f
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestUpsertMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("chave de identidade, campanha none e taxas", func(t *testing.T) {
		f := newFixture(t, false)
		clientID := "client-7"
		f.links.EXPECT().GetClientIDByAccountID(ctx, "4445556666").Return(&clientID, nil).Times(1)

		var written []*domain.MetricRecord
		f.metrics.EXPECT().UpsertBatch(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, records []*domain.MetricRecord) (int, error) {
			written = records
			return len(records), nil
		})

		n, err := f.sink.UpsertMetrics(ctx, []*domain.MetricRecord{
			{Date: day(1), AccountID: "4445556666", CampaignID: "", Impressions: 1000, Clicks: 50, Spend: 100, Leads: 5},
			{Date: day(1), AccountID: "4445556666", CampaignID: "c1", Impressions: 10, Clicks: 0},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		require.Len(t, written, 2)

		first := written[0]
		assert.Equal(t, domain.NoCampaignID, first.CampaignID)
		assert.Equal(t, "google_ads", first.Platform)
		assert.Equal(t, idhash.MetricKey("4445556666", "2024-01-01", "none", "google_ads"), first.IdentityKey)
		assert.Equal(t, 5.0, first.CTR)
		assert.Equal(t, 20.0, first.CPA)
		assert.Equal(t, 10.0, first.ConversionRate)
		require.NotNil(t, first.ClientID)
		assert.Equal(t, "client-7", *first.ClientID)

		assert.Equal(t, 0.0, written[1].CTR)
		assert.Equal(t, 0.0, written[1].ConversionRate)
	})

	t.Run("chave repetida no lote fica com o último registro", func(t *testing.T) {
		f := newFixture(t, false)
		f.links.EXPECT().GetClientIDByAccountID(ctx, "1").Return(nil, nil)

		var written []*domain.MetricRecord
		f.metrics.EXPECT().UpsertBatch(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, records []*domain.MetricRecord) (int, error) {
			written = records
			return len(records), nil
		})

		n, err := f.sink.UpsertMetrics(ctx, []*domain.MetricRecord{
			{Date: day(2), AccountID: "1", CampaignID: "c1", Clicks: 1},
			{Date: day(3), AccountID: "1", CampaignID: "c1", Clicks: 3},
			{Date: day(2), AccountID: "1", CampaignID: "c1", Clicks: 2},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		require.Len(t, written, 2)
		assert.Equal(t, int64(2), written[0].Clicks)
		assert.Equal(t, int64(3), written[1].Clicks)
		assert.Nil(t, written[0].ClientID)
	})

	t.Run("erro no vínculo de cliente grava sem client_id", func(t *testing.T) {
		f := newFixture(t, false)
		f.links.EXPECT().GetClientIDByAccountID(ctx, "1").Return(nil, errors.New("timeout"))
		f.metrics.EXPECT().UpsertBatch(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, records []*domain.MetricRecord) (int, error) {
			assert.Nil(t, records[0].ClientID)
			return 1, nil
		})

		_, err := f.sink.UpsertMetrics(ctx, []*domain.MetricRecord{{Date: day(1), AccountID: "1"}})
		require.NoError(t, err)
	})

	t.Run("falha do destino vira SinkError", func(t *testing.T) {
		f := newFixture(t, false)
		f.links.EXPECT().GetClientIDByAccountID(ctx, "1").Return(nil, nil)
		f.metrics.EXPECT().UpsertBatch(ctx, gomock.Any()).Return(0, errors.New("constraint"))

		_, err := f.sink.UpsertMetrics(ctx, []*domain.MetricRecord{{Date: day(1), AccountID: "1"}})

		var sinkErr *domain.SinkError
		require.ErrorAs(t, err, &sinkErr)
		assert.Equal(t, "ad_metrics", sinkErr.Target)
		assert.Equal(t, 1, sinkErr.Records)
		assert.ErrorIs(t, err, domain.ErrSink)
	})

	t.Run("SinkError do destino é preservado", func(t *testing.T) {
		f := newFixture(t, false)
		f.links.EXPECT().GetClientIDByAccountID(ctx, "1").Return(nil, nil)
		original := &domain.SinkError{Target: "ad_metrics", StatusCode: 409, Err: errors.New("conflict")}
		f.metrics.EXPECT().UpsertBatch(ctx, gomock.Any()).Return(0, original)

		_, err := f.sink.UpsertMetrics(ctx, []*domain.MetricRecord{{Date: day(1), AccountID: "1"}})
		assert.Same(t, original, err)
	})

	t.Run("lote vazio não chama o destino", func(t *testing.T) {
		f := newFixture(t, false)

		n, err := f.sink.UpsertMetrics(ctx, nil)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestUpsertAccounts(t *testing.T) {
	ctx := context.Background()

	t.Run("nome real vence placeholder", func(t *testing.T) {
		f := newFixture(t, false)
		f.accounts.EXPECT().UpsertBatch(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, accounts []*domain.AdAccount) error {
			require.Len(t, accounts, 1)
			assert.Equal(t, "Loja Centro", accounts[0].Name)
			assert.Equal(t, "google_ads", accounts[0].Platform)
			return nil
		})

		err := f.sink.UpsertAccounts(ctx, []*domain.AdAccount{
			domain.NewPlaceholderAccount("4445556666", ""),
			{ID: "4445556666", Name: "Loja Centro"},
		})
		require.NoError(t, err)
	})

	t.Run("falha vira SinkError", func(t *testing.T) {
		f := newFixture(t, false)
		f.accounts.EXPECT().UpsertBatch(ctx, gomock.Any()).Return(errors.New("db down"))

		err := f.sink.UpsertAccounts(ctx, []*domain.AdAccount{{ID: "1", Name: "A"}})
		assert.ErrorIs(t, err, domain.ErrSink)
	})
}

func TestUpsertCampaigns(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	f.campaigns.EXPECT().UpsertBatch(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, campaigns []*domain.Campaign) error {
		require.Len(t, campaigns, 1)
		assert.Equal(t, idhash.CampaignKey("1", "c1", "google_ads"), campaigns[0].IdentityKey)
		assert.Equal(t, "Novo nome", campaigns[0].Name)
		return nil
	})

	err := f.sink.UpsertCampaigns(ctx, []*domain.Campaign{
		{AccountID: "1", CampaignID: "c1", Name: "Antigo"},
		{AccountID: "1", CampaignID: "c1", Name: "Novo nome"},
		{AccountID: "1", CampaignID: ""},
	})
	require.NoError(t, err)
}

func TestBackfillClientLinks(t *testing.T) {
	ctx := context.Background()

	t.Run("sem backfiller", func(t *testing.T) {
		f := newFixture(t, false)

		n, err := f.sink.BackfillClientLinks(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("com backfiller", func(t *testing.T) {
		f := newFixture(t, true)
		f.backfiller.EXPECT().BackfillClientLinks(ctx).Return(int64(12), nil)

		n, err := f.sink.BackfillClientLinks(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(12), n)
	})
}
