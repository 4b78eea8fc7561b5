package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ndelucca/prstatus/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func commentBy(login, body string, createdAt, updatedAt time.Time) models.Comment {
	return models.Comment{
		Body:      body,
		Author:    models.User{Login: login},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func TestCommentResolver_LatestCommentBy(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("should pick the issue comment when its update is strictly later", func(t *testing.T) {
		mockClient := &MockVCSClient{}
		resolver := NewCommentResolver(mockClient)

		mockClient.On("ListReviewComments", mock.Anything, 5).
			Return([]models.Comment{commentBy("bob", "review note", day(1), day(1))}, nil)
		mockClient.On("ListIssueComments", mock.Anything, 5).
			Return([]models.Comment{commentBy("bob", "issue note", day(2), day(2))}, nil)

		comment, err := resolver.LatestCommentBy(context.Background(), 5, "bob")

		require.NoError(t, err)
		require.NotNil(t, comment)
		assert.Equal(t, "issue note", comment.Body)
	})

	t.Run("should pick the review comment when its update is later", func(t *testing.T) {
		mockClient := &MockVCSClient{}
		resolver := NewCommentResolver(mockClient)

		mockClient.On("ListReviewComments", mock.Anything, 5).
			Return([]models.Comment{commentBy("bob", "review note", day(1), day(3))}, nil)
		mockClient.On("ListIssueComments", mock.Anything, 5).
			Return([]models.Comment{commentBy("bob", "issue note", day(2), day(2))}, nil)

		comment, err := resolver.LatestCommentBy(context.Background(), 5, "bob")

		require.NoError(t, err)
		require.NotNil(t, comment)
		assert.Equal(t, "review note", comment.Body)
	})

	t.Run("should favor the review comment on equal timestamps", func(t *testing.T) {
		// Empate resuelto a favor del hilo de review: comportamiento
		// intencional, no corregir sin confirmar.
		mockClient := &MockVCSClient{}
		resolver := NewCommentResolver(mockClient)

		mockClient.On("ListReviewComments", mock.Anything, 5).
			Return([]models.Comment{commentBy("bob", "review note", day(1), day(2))}, nil)
		mockClient.On("ListIssueComments", mock.Anything, 5).
			Return([]models.Comment{commentBy("bob", "issue note", day(1), day(2))}, nil)

		comment, err := resolver.LatestCommentBy(context.Background(), 5, "bob")

		require.NoError(t, err)
		require.NotNil(t, comment)
		assert.Equal(t, "review note", comment.Body)
	})

	t.Run("should return the only side that produced a comment", func(t *testing.T) {
		mockClient := &MockVCSClient{}
		resolver := NewCommentResolver(mockClient)

		mockClient.On("ListReviewComments", mock.Anything, 5).
			Return([]models.Comment{}, nil)
		mockClient.On("ListIssueComments", mock.Anything, 5).
			Return([]models.Comment{commentBy("bob", "issue note", day(1), day(1))}, nil)

		comment, err := resolver.LatestCommentBy(context.Background(), 5, "bob")

		require.NoError(t, err)
		require.NotNil(t, comment)
		assert.Equal(t, "issue note", comment.Body)
	})

	t.Run("should return nil when neither thread has comments by the login", func(t *testing.T) {
		mockClient := &MockVCSClient{}
		resolver := NewCommentResolver(mockClient)

		mockClient.On("ListReviewComments", mock.Anything, 5).
			Return([]models.Comment{commentBy("carol", "not bob", day(1), day(1))}, nil)
		mockClient.On("ListIssueComments", mock.Anything, 5).
			Return([]models.Comment{}, nil)

		comment, err := resolver.LatestCommentBy(context.Background(), 5, "bob")

		require.NoError(t, err)
		assert.Nil(t, comment)
	})

	t.Run("should keep the FIRST review comment of the login in ascending order", func(t *testing.T) {
		// Regla asimétrica deliberada: en el hilo de review gana el más
		// antiguo del login, no el más reciente.
		mockClient := &MockVCSClient{}
		resolver := NewCommentResolver(mockClient)

		mockClient.On("ListReviewComments", mock.Anything, 5).
			Return([]models.Comment{
				commentBy("carol", "other author", day(1), day(1)),
				commentBy("bob", "oldest by bob", day(2), day(2)),
				commentBy("bob", "newest by bob", day(3), day(3)),
			}, nil)
		mockClient.On("ListIssueComments", mock.Anything, 5).
			Return([]models.Comment{}, nil)

		comment, err := resolver.LatestCommentBy(context.Background(), 5, "bob")

		require.NoError(t, err)
		require.NotNil(t, comment)
		assert.Equal(t, "oldest by bob", comment.Body)
	})

	t.Run("should keep the LAST issue comment of the login in retrieval order", func(t *testing.T) {
		mockClient := &MockVCSClient{}
		resolver := NewCommentResolver(mockClient)

		mockClient.On("ListReviewComments", mock.Anything, 5).
			Return([]models.Comment{}, nil)
		mockClient.On("ListIssueComments", mock.Anything, 5).
			Return([]models.Comment{
				commentBy("bob", "older by bob", day(1), day(1)),
				commentBy("carol", "other author", day(2), day(2)),
				commentBy("bob", "newer by bob", day(3), day(3)),
			}, nil)

		comment, err := resolver.LatestCommentBy(context.Background(), 5, "bob")

		require.NoError(t, err)
		require.NotNil(t, comment)
		assert.Equal(t, "newer by bob", comment.Body)
	})

	t.Run("should propagate fetch errors", func(t *testing.T) {
		mockClient := &MockVCSClient{}
		resolver := NewCommentResolver(mockClient)

		remoteErr := errors.New("network down")
		mockClient.On("ListReviewComments", mock.Anything, 5).
			Return([]models.Comment{}, remoteErr)

		_, err := resolver.LatestCommentBy(context.Background(), 5, "bob")

		assert.ErrorIs(t, err, remoteErr)
	})
}
