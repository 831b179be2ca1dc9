package repository_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wekeepgrowing/memberchat/internal/domain/entity"
	"github.com/wekeepgrowing/memberchat/internal/domain/repository"
)

func TestMemberRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a member and backfills generated fields", func(t *testing.T) {
		repos := newTestRepositories(t)

		member, err := entity.NewMember("alice", "hashed", "salt")
		require.NoError(t, err)

		require.NoError(t, repos.Member.Create(ctx, member))
		assert.NotZero(t, member.ID)
		assert.False(t, member.CreatedAt.IsZero())
	})

	t.Run("rejects a duplicate username", func(t *testing.T) {
		repos := newTestRepositories(t)
		createTestMember(t, repos, "alice")

		dup, err := entity.NewMember("alice", "other-hash", "other-salt")
		require.NoError(t, err)

		err = repos.Member.Create(ctx, dup)
		assert.ErrorIs(t, err, repository.ErrDuplicateUsername)
	})

	t.Run("concurrent registrations store exactly one row", func(t *testing.T) {
		repos := newTestRepositories(t)

		const workers = 8

		var wg sync.WaitGroup
		results := make([]error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				member, err := entity.NewMember("alice", "hashed", "salt")
				if err != nil {
					results[i] = err
					return
				}
				results[i] = repos.Member.Create(ctx, member)
			}(i)
		}
		wg.Wait()

		var succeeded, duplicated int
		for i, err := range results {
			switch {
			case err == nil:
				succeeded++
			case assert.ErrorIs(t, err, repository.ErrDuplicateUsername, "worker %d", i):
				duplicated++
			}
		}
		assert.Equal(t, 1, succeeded, "exactly one registration must win")
		assert.Equal(t, workers-1, duplicated)
	})
}

func TestMemberRepository_Find(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepositories(t)
	member := createTestMember(t, repos, "alice")

	t.Run("finds by username", func(t *testing.T) {
		found, err := repos.Member.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, member.ID, found.ID)
		assert.Equal(t, "hashed-password", found.Password)
	})

	t.Run("finds by id", func(t *testing.T) {
		found, err := repos.Member.FindByID(ctx, member.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "alice", found.Username)
	})

	t.Run("returns nil for unknown lookups", func(t *testing.T) {
		found, err := repos.Member.FindByUsername(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, found)

		found, err = repos.Member.FindByID(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}
