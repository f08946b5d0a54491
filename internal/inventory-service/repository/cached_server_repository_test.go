package repository

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"testing"
	"time"

	mockrepository "server-inventory-dashboard/internal/inventory-service/mocks/repository"
	"server-inventory-dashboard/internal/inventory-service/model"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func encodeServers(t *testing.T, servers []model.Server) []byte {
	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(servers))
	return buf.Bytes()
}

func TestCachedFetchAll(t *testing.T) {
	cachedServers := []model.Server{
		{ID: "id-1", ServerName: "SRV-A"},
	}

	t.Run("Success, cache hit skips database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mockrepository.NewMockServerRepository(ctrl)
		client, mock := redismock.NewClientMock()
		repo := NewCachedServerRepository(client, inner, time.Minute)

		mock.ExpectGet(serverListCacheKey).SetVal(string(encodeServers(t, cachedServers)))

		servers, err := repo.FetchAll(context.Background())

		require.NoError(t, err)
		assert.Equal(t, cachedServers, servers)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success, cache miss populates cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mockrepository.NewMockServerRepository(ctrl)
		client, mock := redismock.NewClientMock()
		repo := NewCachedServerRepository(client, inner, time.Minute)

		inner.EXPECT().FetchAll(gomock.Any()).Return(cachedServers, nil)
		mock.ExpectGet(serverListCacheKey).RedisNil()
		mock.ExpectSet(serverListCacheKey, encodeServers(t, cachedServers), time.Minute).SetVal("OK")

		servers, err := repo.FetchAll(context.Background())

		require.NoError(t, err)
		assert.Equal(t, cachedServers, servers)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error, redis unreachable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mockrepository.NewMockServerRepository(ctrl)
		client, mock := redismock.NewClientMock()
		repo := NewCachedServerRepository(client, inner, time.Minute)

		mock.ExpectGet(serverListCacheKey).SetErr(errors.New("connection refused"))

		_, err := repo.FetchAll(context.Background())

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCachedWritesInvalidate(t *testing.T) {
	t.Run("CreateServer drops cache first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mockrepository.NewMockServerRepository(ctrl)
		client, mock := redismock.NewClientMock()
		repo := NewCachedServerRepository(client, inner, time.Minute)

		draft := model.Server{ServerName: "SRV-B"}
		mock.ExpectDel(serverListCacheKey).SetVal(1)
		inner.EXPECT().CreateServer(gomock.Any(), draft).Return(draft, nil)

		_, err := repo.CreateServer(context.Background(), draft)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DeleteServerByID drops cache first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mockrepository.NewMockServerRepository(ctrl)
		client, mock := redismock.NewClientMock()
		repo := NewCachedServerRepository(client, inner, time.Minute)

		mock.ExpectDel(serverListCacheKey).SetVal(1)
		inner.EXPECT().DeleteServerByID(gomock.Any(), "id-1").Return(nil)

		err := repo.DeleteServerByID(context.Background(), "id-1")

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("BatchUpsertServers drops cache first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mockrepository.NewMockServerRepository(ctrl)
		client, mock := redismock.NewClientMock()
		repo := NewCachedServerRepository(client, inner, time.Minute)

		servers := []model.Server{{ID: "id-1"}}
		mock.ExpectDel(serverListCacheKey).SetVal(1)
		inner.EXPECT().BatchUpsertServers(gomock.Any(), servers).Return(1, nil)

		count, err := repo.BatchUpsertServers(context.Background(), servers)

		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UpdateServer fails closed when invalidation fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mockrepository.NewMockServerRepository(ctrl)
		client, mock := redismock.NewClientMock()
		repo := NewCachedServerRepository(client, inner, time.Minute)

		mock.ExpectDel(serverListCacheKey).SetErr(errors.New("connection refused"))

		_, err := repo.UpdateServer(context.Background(), model.Server{ID: "id-1"})

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
