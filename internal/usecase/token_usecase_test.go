package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/memberchat/internal/domain/entity"
	"github.com/wekeepgrowing/memberchat/internal/domain/repository"
	"github.com/wekeepgrowing/memberchat/internal/usecase"
	errs "github.com/wekeepgrowing/memberchat/pkg/errors"
)

func TestTokenUseCase_IssueOrGet(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("creates a fresh token when none exists", func(t *testing.T) {
		tokenRepo := new(MockTokenRepository)
		memberRepo := new(MockMemberRepository)
		uc := usecase.NewTokenUseCase(logger, tokenRepo, memberRepo)

		tokenRepo.On("CreateIfAbsent", ctx, mock.AnythingOfType("*entity.Token")).
			Return(true, nil).Once()

		token, err := uc.IssueOrGet(ctx, 1)

		assert.NoError(t, err)
		assert.NotNil(t, token)
		assert.Equal(t, uint(1), token.MemberID)
		assert.True(t, entity.IsWellFormedKey(token.Key))
		tokenRepo.AssertExpectations(t)
	})

	t.Run("returns the existing token when the insert loses the race", func(t *testing.T) {
		tokenRepo := new(MockTokenRepository)
		memberRepo := new(MockMemberRepository)
		uc := usecase.NewTokenUseCase(logger, tokenRepo, memberRepo)

		existing := &entity.Token{ID: 7, MemberID: 1, Key: strings.Repeat("ab", 20)}

		tokenRepo.On("CreateIfAbsent", ctx, mock.AnythingOfType("*entity.Token")).
			Return(false, nil).Once()
		tokenRepo.On("FindByMemberID", ctx, uint(1)).
			Return(existing, nil).Once()

		token, err := uc.IssueOrGet(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, existing, token)
		tokenRepo.AssertExpectations(t)
	})

	t.Run("retries once with fresh randomness on key collision", func(t *testing.T) {
		tokenRepo := new(MockTokenRepository)
		memberRepo := new(MockMemberRepository)
		uc := usecase.NewTokenUseCase(logger, tokenRepo, memberRepo)

		var firstKey, secondKey string
		tokenRepo.On("CreateIfAbsent", ctx, mock.AnythingOfType("*entity.Token")).
			Run(func(args mock.Arguments) { firstKey = args.Get(1).(*entity.Token).Key }).
			Return(false, repository.ErrDuplicateTokenKey).Once()
		tokenRepo.On("CreateIfAbsent", ctx, mock.AnythingOfType("*entity.Token")).
			Run(func(args mock.Arguments) { secondKey = args.Get(1).(*entity.Token).Key }).
			Return(true, nil).Once()

		token, err := uc.IssueOrGet(ctx, 1)

		assert.NoError(t, err)
		assert.NotNil(t, token)
		assert.NotEqual(t, firstKey, secondKey, "retry must not reuse the colliding key")
		tokenRepo.AssertExpectations(t)
	})

	t.Run("fails after repeated key collisions", func(t *testing.T) {
		tokenRepo := new(MockTokenRepository)
		memberRepo := new(MockMemberRepository)
		uc := usecase.NewTokenUseCase(logger, tokenRepo, memberRepo)

		tokenRepo.On("CreateIfAbsent", ctx, mock.AnythingOfType("*entity.Token")).
			Return(false, repository.ErrDuplicateTokenKey).Twice()

		token, err := uc.IssueOrGet(ctx, 1)

		assert.Error(t, err)
		assert.Nil(t, token)
		assert.Equal(t, errs.ErrInternal, errs.CodeOf(err))
		tokenRepo.AssertExpectations(t)
	})

	t.Run("surfaces a broken one-token-per-member state instead of repairing it", func(t *testing.T) {
		tokenRepo := new(MockTokenRepository)
		memberRepo := new(MockMemberRepository)
		uc := usecase.NewTokenUseCase(logger, tokenRepo, memberRepo)

		tokenRepo.On("CreateIfAbsent", ctx, mock.AnythingOfType("*entity.Token")).
			Return(false, nil).Once()
		tokenRepo.On("FindByMemberID", ctx, uint(1)).
			Return(nil, repository.ErrTokenInvariant).Once()

		token, err := uc.IssueOrGet(ctx, 1)

		assert.Error(t, err)
		assert.Nil(t, token)
		assert.Equal(t, errs.ErrInternal, errs.CodeOf(err))
		tokenRepo.AssertExpectations(t)
	})
}

func TestTokenUseCase_Resolve(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	validKey := strings.Repeat("abcdef0123", 4)

	t.Run("rejects malformed keys without touching storage", func(t *testing.T) {
		tokenRepo := new(MockTokenRepository)
		memberRepo := new(MockMemberRepository)
		uc := usecase.NewTokenUseCase(logger, tokenRepo, memberRepo)

		for _, key := range []string{
			"",
			"short",
			strings.Repeat("g", 40),      // non-hex
			strings.ToUpper(validKey),    // uppercase hex
			validKey + "0",               // too long
		} {
			member, err := uc.Resolve(ctx, key)
			assert.NoError(t, err)
			assert.Nil(t, member)
		}

		tokenRepo.AssertNotCalled(t, "FindByKey", mock.Anything, mock.Anything)
	})

	t.Run("resolves a stored key to its member", func(t *testing.T) {
		tokenRepo := new(MockTokenRepository)
		memberRepo := new(MockMemberRepository)
		uc := usecase.NewTokenUseCase(logger, tokenRepo, memberRepo)

		tokenRepo.On("FindByKey", ctx, validKey).
			Return(&entity.Token{ID: 3, MemberID: 9, Key: validKey}, nil).Once()
		memberRepo.On("FindByID", ctx, uint(9)).
			Return(&entity.Member{ID: 9, Username: "alice"}, nil).Once()

		member, err := uc.Resolve(ctx, validKey)

		assert.NoError(t, err)
		assert.NotNil(t, member)
		assert.Equal(t, uint(9), member.ID)
		tokenRepo.AssertExpectations(t)
		memberRepo.AssertExpectations(t)
	})

	t.Run("returns nil for a well-formed but unknown key", func(t *testing.T) {
		tokenRepo := new(MockTokenRepository)
		memberRepo := new(MockMemberRepository)
		uc := usecase.NewTokenUseCase(logger, tokenRepo, memberRepo)

		tokenRepo.On("FindByKey", ctx, validKey).Return(nil, nil).Once()

		member, err := uc.Resolve(ctx, validKey)

		assert.NoError(t, err)
		assert.Nil(t, member)
		tokenRepo.AssertExpectations(t)
	})

	t.Run("returns nil when the token owner no longer exists", func(t *testing.T) {
		tokenRepo := new(MockTokenRepository)
		memberRepo := new(MockMemberRepository)
		uc := usecase.NewTokenUseCase(logger, tokenRepo, memberRepo)

		tokenRepo.On("FindByKey", ctx, validKey).
			Return(&entity.Token{ID: 3, MemberID: 9, Key: validKey}, nil).Once()
		memberRepo.On("FindByID", ctx, uint(9)).Return(nil, nil).Once()

		member, err := uc.Resolve(ctx, validKey)

		assert.NoError(t, err)
		assert.Nil(t, member)
	})
}

func TestGenerateTokenKey(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key, err := usecase.GenerateTokenKey()
		assert.NoError(t, err)
		assert.Len(t, key, entity.TokenKeyLength)
		assert.True(t, entity.IsWellFormedKey(key))
		assert.False(t, seen[key], "generated keys must not repeat")
		seen[key] = true
	}
}
