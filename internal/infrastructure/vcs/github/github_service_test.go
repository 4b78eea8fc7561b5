package github

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-github/v80/github"
	"github.com/ndelucca/prstatus/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestClient(pr *MockPRService, issues *MockIssuesService, users *MockUsersService) *GitHubClient {
	trans, _ := i18n.NewTranslations("en", "")
	return NewGitHubClientWithServices(
		pr,
		issues,
		users,
		"test-owner",
		"test-repo",
		trans,
	)
}

func TestGitHubClient_CurrentUser(t *testing.T) {
	t.Run("should return the authenticated user", func(t *testing.T) {
		mockPR := &MockPRService{}
		mockIssues := &MockIssuesService{}
		mockUsers := &MockUsersService{}
		client := newTestClient(mockPR, mockIssues, mockUsers)

		mockUsers.On("Get", mock.Anything, "").
			Return(&github.User{Login: github.Ptr("alice")}, &github.Response{}, nil)

		user, err := client.CurrentUser(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Login)
		mockUsers.AssertExpectations(t)
	})

	t.Run("should wrap remote errors", func(t *testing.T) {
		mockPR := &MockPRService{}
		mockIssues := &MockIssuesService{}
		mockUsers := &MockUsersService{}
		client := newTestClient(mockPR, mockIssues, mockUsers)

		remoteErr := errors.New("401 bad credentials")
		mockUsers.On("Get", mock.Anything, "").
			Return((*github.User)(nil), &github.Response{}, remoteErr)

		_, err := client.CurrentUser(context.Background())

		require.Error(t, err)
		assert.ErrorIs(t, err, remoteErr)
	})
}

func TestGitHubClient_ListOpenPullRequests(t *testing.T) {
	t.Run("should request open PRs with the given sort and map the fields", func(t *testing.T) {
		mockPR := &MockPRService{}
		mockIssues := &MockIssuesService{}
		mockUsers := &MockUsersService{}
		client := newTestClient(mockPR, mockIssues, mockUsers)

		updated := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
		mockPR.On("List", mock.Anything, "test-owner", "test-repo", mock.MatchedBy(func(opts *github.PullRequestListOptions) bool {
			return opts.State == "open" && opts.Sort == "updated" && opts.Direction == "asc" && opts.PerPage == 100
		})).Return([]*github.PullRequest{
			{
				Number:    github.Ptr(1),
				Title:     github.Ptr("Add retry"),
				User:      &github.User{Login: github.Ptr("bob")},
				UpdatedAt: &github.Timestamp{Time: updated},
				Mergeable: github.Ptr(true),
			},
			{
				Number:   github.Ptr(2),
				Title:    github.Ptr("Fix typo"),
				User:     &github.User{Login: github.Ptr("carol")},
				Assignee: &github.User{Login: github.Ptr("alice")},
			},
		}, &github.Response{}, nil)

		prs, err := client.ListOpenPullRequests(context.Background(), "updated", "asc")

		require.NoError(t, err)
		require.Len(t, prs, 2)

		assert.Equal(t, 1, prs[0].Number)
		assert.Equal(t, "Add retry", prs[0].Title)
		assert.Equal(t, "bob", prs[0].Author.Login)
		assert.Equal(t, updated, prs[0].UpdatedAt)
		require.NotNil(t, prs[0].Mergeable)
		assert.True(t, *prs[0].Mergeable)
		assert.Nil(t, prs[0].Assignee)

		assert.Nil(t, prs[1].Mergeable, "mergeable ausente debe quedar en nil")
		require.NotNil(t, prs[1].Assignee)
		assert.Equal(t, "alice", prs[1].Assignee.Login)

		mockPR.AssertExpectations(t)
	})
}

func TestGitHubClient_GetPullRequest(t *testing.T) {
	t.Run("should map the mergeable tri-state", func(t *testing.T) {
		mockPR := &MockPRService{}
		mockIssues := &MockIssuesService{}
		mockUsers := &MockUsersService{}
		client := newTestClient(mockPR, mockIssues, mockUsers)

		mockPR.On("Get", mock.Anything, "test-owner", "test-repo", 7).
			Return(&github.PullRequest{
				Number:    github.Ptr(7),
				User:      &github.User{Login: github.Ptr("bob")},
				Mergeable: github.Ptr(false),
			}, &github.Response{}, nil)

		pr, err := client.GetPullRequest(context.Background(), 7)

		require.NoError(t, err)
		require.NotNil(t, pr.Mergeable)
		assert.False(t, *pr.Mergeable)
	})

	t.Run("should wrap remote errors with the PR number", func(t *testing.T) {
		mockPR := &MockPRService{}
		mockIssues := &MockIssuesService{}
		mockUsers := &MockUsersService{}
		client := newTestClient(mockPR, mockIssues, mockUsers)

		remoteErr := errors.New("404 not found")
		mockPR.On("Get", mock.Anything, "test-owner", "test-repo", 7).
			Return((*github.PullRequest)(nil), &github.Response{}, remoteErr)

		_, err := client.GetPullRequest(context.Background(), 7)

		require.Error(t, err)
		assert.ErrorIs(t, err, remoteErr)
		assert.Contains(t, err.Error(), "#7")
	})
}

func TestGitHubClient_ListReviewComments(t *testing.T) {
	t.Run("should request ascending creation order and map timestamps", func(t *testing.T) {
		mockPR := &MockPRService{}
		mockIssues := &MockIssuesService{}
		mockUsers := &MockUsersService{}
		client := newTestClient(mockPR, mockIssues, mockUsers)

		created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		updated := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

		mockPR.On("ListComments", mock.Anything, "test-owner", "test-repo", 7, mock.MatchedBy(func(opts *github.PullRequestListCommentsOptions) bool {
			return opts.Sort == "created" && opts.Direction == "asc" && opts.PerPage == 100
		})).Return([]*github.PullRequestComment{
			{
				Body:      github.Ptr("nit: rename this"),
				User:      &github.User{Login: github.Ptr("bob")},
				CreatedAt: &github.Timestamp{Time: created},
				UpdatedAt: &github.Timestamp{Time: updated},
			},
		}, &github.Response{}, nil)

		comments, err := client.ListReviewComments(context.Background(), 7)

		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, "nit: rename this", comments[0].Body)
		assert.Equal(t, "bob", comments[0].Author.Login)
		assert.Equal(t, created, comments[0].CreatedAt)
		assert.Equal(t, updated, comments[0].UpdatedAt)
		mockPR.AssertExpectations(t)
	})
}

func TestGitHubClient_ListIssueComments(t *testing.T) {
	t.Run("should keep the retrieval order of the provider", func(t *testing.T) {
		mockPR := &MockPRService{}
		mockIssues := &MockIssuesService{}
		mockUsers := &MockUsersService{}
		client := newTestClient(mockPR, mockIssues, mockUsers)

		mockIssues.On("ListComments", mock.Anything, "test-owner", "test-repo", 7, mock.MatchedBy(func(opts *github.IssueListCommentsOptions) bool {
			return opts.PerPage == 100
		})).Return([]*github.IssueComment{
			{Body: github.Ptr("first"), User: &github.User{Login: github.Ptr("bob")}},
			{Body: github.Ptr("second"), User: &github.User{Login: github.Ptr("carol")}},
		}, &github.Response{}, nil)

		comments, err := client.ListIssueComments(context.Background(), 7)

		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, "first", comments[0].Body)
		assert.Equal(t, "second", comments[1].Body)
	})
}

func TestGitHubClient_ListReviews(t *testing.T) {
	t.Run("should map review states and submission times", func(t *testing.T) {
		mockPR := &MockPRService{}
		mockIssues := &MockIssuesService{}
		mockUsers := &MockUsersService{}
		client := newTestClient(mockPR, mockIssues, mockUsers)

		submitted := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
		mockPR.On("ListReviews", mock.Anything, "test-owner", "test-repo", 7, mock.MatchedBy(func(opts *github.ListOptions) bool {
			return opts.PerPage == 100
		})).Return([]*github.PullRequestReview{
			{
				User:        &github.User{Login: github.Ptr("carol")},
				State:       github.Ptr("APPROVED"),
				SubmittedAt: &github.Timestamp{Time: submitted},
			},
			{
				User:  &github.User{Login: github.Ptr("dave")},
				State: github.Ptr("CHANGES_REQUESTED"),
			},
		}, &github.Response{}, nil)

		reviews, err := client.ListReviews(context.Background(), 7)

		require.NoError(t, err)
		require.Len(t, reviews, 2)
		assert.Equal(t, "carol", reviews[0].Author.Login)
		assert.Equal(t, "APPROVED", string(reviews[0].State))
		assert.Equal(t, submitted, reviews[0].SubmittedAt)
		assert.Equal(t, "CHANGES_REQUESTED", string(reviews[1].State))
	})
}

func TestGitHubClient_ListCommits(t *testing.T) {
	t.Run("should keep unlinked identities as nil", func(t *testing.T) {
		mockPR := &MockPRService{}
		mockIssues := &MockIssuesService{}
		mockUsers := &MockUsersService{}
		client := newTestClient(mockPR, mockIssues, mockUsers)

		mockPR.On("ListCommits", mock.Anything, "test-owner", "test-repo", 7, mock.MatchedBy(func(opts *github.ListOptions) bool {
			return opts.PerPage == 100
		})).Return([]*github.RepositoryCommit{
			{
				SHA:       github.Ptr("abc123"),
				Commit:    &github.Commit{Message: github.Ptr("fix parser")},
				Author:    &github.User{Login: github.Ptr("alice")},
				Committer: &github.User{Login: github.Ptr("web-flow")},
			},
			{
				SHA:    github.Ptr("def456"),
				Commit: &github.Commit{Message: github.Ptr("imported commit")},
			},
		}, &github.Response{}, nil)

		commits, err := client.ListCommits(context.Background(), 7)

		require.NoError(t, err)
		require.Len(t, commits, 2)

		require.NotNil(t, commits[0].Author)
		assert.Equal(t, "alice", commits[0].Author.Login)
		require.NotNil(t, commits[0].Committer)
		assert.Equal(t, "web-flow", commits[0].Committer.Login)

		assert.Nil(t, commits[1].Author)
		assert.Nil(t, commits[1].Committer)
		assert.Equal(t, "imported commit", commits[1].Message)
	})
}
