package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wekeepgrowing/memberchat/internal/domain/entity"
	"github.com/wekeepgrowing/memberchat/internal/domain/repository"
)

func TestMessageRepository_Append(t *testing.T) {
	ctx := context.Background()

	t.Run("stores messages with an insertion timestamp", func(t *testing.T) {
		repos := newTestRepositories(t)
		member := createTestMember(t, repos, "alice")

		message := entity.NewMessage(member.ID, "hello room")
		require.NoError(t, repos.Message.Append(ctx, message))
		assert.NotZero(t, message.ID)
		assert.False(t, message.CreatedAt.IsZero())
	})

	t.Run("rejects a message from a nonexistent author", func(t *testing.T) {
		repos := newTestRepositories(t)

		message := entity.NewMessage(9999, "ghost message")
		err := repos.Message.Append(ctx, message)
		assert.ErrorIs(t, err, repository.ErrAuthorNotFound)
	})
}

func TestMessageRepository_RecentWindow(t *testing.T) {
	ctx := context.Background()

	t.Run("returns appended messages oldest first", func(t *testing.T) {
		repos := newTestRepositories(t)
		member := createTestMember(t, repos, "alice")

		first := entity.NewMessage(member.ID, "first")
		second := entity.NewMessage(member.ID, "second")
		require.NoError(t, repos.Message.Append(ctx, first))
		require.NoError(t, repos.Message.Append(ctx, second))

		messages, err := repos.Message.RecentWindow(ctx, 50)
		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, "first", messages[0].Content)
		assert.Equal(t, "second", messages[1].Content)
	})

	t.Run("keeps only the newest messages when the log exceeds the window", func(t *testing.T) {
		repos := newTestRepositories(t)
		member := createTestMember(t, repos, "alice")

		// 창 크기보다 10개 많은 메시지를 기록
		const total, window = 60, 50
		for i := 1; i <= total; i++ {
			msg := entity.NewMessage(member.ID, fmt.Sprintf("message %02d", i))
			require.NoError(t, repos.Message.Append(ctx, msg))
		}

		messages, err := repos.Message.RecentWindow(ctx, window)
		require.NoError(t, err)
		require.Len(t, messages, window)

		// 11번부터 60번까지가 오름차순으로 남아야 합니다
		assert.Equal(t, "message 11", messages[0].Content)
		assert.Equal(t, "message 60", messages[window-1].Content)
		for i := 1; i < window; i++ {
			prev, curr := messages[i-1], messages[i]
			assert.True(t, prev.ID < curr.ID, "window must be ordered by insertion")
		}
	})

	t.Run("loads the author alongside each message", func(t *testing.T) {
		repos := newTestRepositories(t)
		member := createTestMember(t, repos, "alice")

		require.NoError(t, repos.Message.Append(ctx, entity.NewMessage(member.ID, "hello")))

		messages, err := repos.Message.RecentWindow(ctx, 50)
		require.NoError(t, err)
		require.Len(t, messages, 1)
		require.NotNil(t, messages[0].Member)
		assert.Equal(t, "alice", messages[0].Member.Username)
	})

	t.Run("returns an empty slice for an empty log", func(t *testing.T) {
		repos := newTestRepositories(t)

		messages, err := repos.Message.RecentWindow(ctx, 50)
		require.NoError(t, err)
		assert.Empty(t, messages)
	})
}
