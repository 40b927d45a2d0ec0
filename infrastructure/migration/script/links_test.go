package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-sync-api/infrastructure/repository/mocks"
	"go.uber.org/mock/gomock"
)

func TestImportClientLinks(t *testing.T) {
	ctx := context.Background()

	t.Run("com cabeçalho e ids com hífen", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockClientLinkRepository(ctrl)

		repo.EXPECT().Upsert(ctx, "4445556666", "client-1").Return(nil)
		repo.EXPECT().Upsert(ctx, "1112223333", "client-2").Return(nil)

		csv := "account_id,client_id\n444-555-6666,client-1\n1112223333, client-2\n"
		result, err := importClientLinks(ctx, repo, strings.NewReader(csv))
		require.NoError(t, err)
		assert.Equal(t, importResult{Imported: 2}, result)
	})

	t.Run("linhas inválidas são ignoradas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockClientLinkRepository(ctrl)

		repo.EXPECT().Upsert(ctx, "4445556666", "client-1").Return(nil)

		csv := "abc,client-x\n4445556666\n4445556666,client-1\n"
		result, err := importClientLinks(ctx, repo, strings.NewReader(csv))
		require.NoError(t, err)
		assert.Equal(t, importResult{Imported: 1, Skipped: 2}, result)
	})

	t.Run("erro de gravação interrompe", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockClientLinkRepository(ctrl)

		repo.EXPECT().Upsert(ctx, "4445556666", "client-1").Return(errors.New("db down"))

		csv := "4445556666,client-1\n1112223333,client-2\n"
		result, err := importClientLinks(ctx, repo, strings.NewReader(csv))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "4445556666")
		assert.Equal(t, 0, result.Imported)
	})
}
