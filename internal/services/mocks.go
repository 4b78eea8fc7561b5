package services

import (
	"context"

	"github.com/ndelucca/prstatus/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type MockVCSClient struct {
	mock.Mock
}

func (m *MockVCSClient) CurrentUser(ctx context.Context) (models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockVCSClient) ListOpenPullRequests(ctx context.Context, sort, direction string) ([]models.PullRequest, error) {
	args := m.Called(ctx, sort, direction)
	return args.Get(0).([]models.PullRequest), args.Error(1)
}

func (m *MockVCSClient) GetPullRequest(ctx context.Context, number int) (models.PullRequest, error) {
	args := m.Called(ctx, number)
	return args.Get(0).(models.PullRequest), args.Error(1)
}

func (m *MockVCSClient) ListReviewComments(ctx context.Context, number int) ([]models.Comment, error) {
	args := m.Called(ctx, number)
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockVCSClient) ListIssueComments(ctx context.Context, number int) ([]models.Comment, error) {
	args := m.Called(ctx, number)
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockVCSClient) ListReviews(ctx context.Context, number int) ([]models.Review, error) {
	args := m.Called(ctx, number)
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockVCSClient) ListCommits(ctx context.Context, number int) ([]models.Commit, error) {
	args := m.Called(ctx, number)
	return args.Get(0).([]models.Commit), args.Error(1)
}

type MockReporter struct {
	mock.Mock

	Summaries []models.PullRequestSummary
}

func (m *MockReporter) Report(summary models.PullRequestSummary) {
	m.Called(summary)
	m.Summaries = append(m.Summaries, summary)
}
