package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v80/github"
	"github.com/ndelucca/prstatus/internal/domain/models"
	"github.com/ndelucca/prstatus/internal/domain/ports"
	"github.com/ndelucca/prstatus/internal/i18n"
	"golang.org/x/oauth2"
)

var _ ports.VCSClient = (*GitHubClient)(nil)

// pageSize es el tamaño fijo de página de todas las operaciones de listado.
// Se recupera una sola página por llamada; la paginación exhaustiva queda
// fuera del contrato del cliente.
const pageSize = 100

type PullRequestsService interface {
	List(ctx context.Context, owner, repo string, opts *github.PullRequestListOptions) ([]*github.PullRequest, *github.Response, error)
	Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error)
	ListComments(ctx context.Context, owner, repo string, number int, opts *github.PullRequestListCommentsOptions) ([]*github.PullRequestComment, *github.Response, error)
	ListReviews(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.PullRequestReview, *github.Response, error)
	ListCommits(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.RepositoryCommit, *github.Response, error)
}

type IssuesService interface {
	ListComments(ctx context.Context, owner, repo string, number int, opts *github.IssueListCommentsOptions) ([]*github.IssueComment, *github.Response, error)
}

type UsersService interface {
	Get(ctx context.Context, user string) (*github.User, *github.Response, error)
}

type GitHubClient struct {
	prService     PullRequestsService
	issuesService IssuesService
	usersService  UsersService
	owner         string
	repo          string
	trans         *i18n.Translations
}

func NewGitHubClient(owner, repo, token string, trans *i18n.Translations) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &GitHubClient{
		prService:     client.PullRequests,
		issuesService: client.Issues,
		usersService:  client.Users,
		owner:         owner,
		repo:          repo,
		trans:         trans,
	}
}

func NewGitHubClientWithServices(
	prService PullRequestsService,
	issuesService IssuesService,
	usersService UsersService,
	owner string,
	repo string,
	trans *i18n.Translations,
) *GitHubClient {
	return &GitHubClient{
		prService:     prService,
		issuesService: issuesService,
		usersService:  usersService,
		owner:         owner,
		repo:          repo,
		trans:         trans,
	}
}

// CurrentUser devuelve el usuario autenticado con el token actual.
func (ghc *GitHubClient) CurrentUser(ctx context.Context) (models.User, error) {
	user, _, err := ghc.usersService.Get(ctx, "")
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error_current_user", 0, nil), err)
	}
	return models.User{Login: user.GetLogin()}, nil
}

// ListOpenPullRequests lista las PRs abiertas del repositorio con el orden pedido.
func (ghc *GitHubClient) ListOpenPullRequests(ctx context.Context, sort, direction string) ([]models.PullRequest, error) {
	opts := &github.PullRequestListOptions{
		State:     "open",
		Sort:      sort,
		Direction: direction,
		ListOptions: github.ListOptions{
			PerPage: pageSize,
		},
	}

	prs, _, err := ghc.prService.List(ctx, ghc.owner, ghc.repo, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error_list_prs", 0, nil), err)
	}

	result := make([]models.PullRequest, 0, len(prs))
	for _, pr := range prs {
		result = append(result, toPullRequest(pr))
	}
	return result, nil
}

// GetPullRequest obtiene una PR por número, con el valor fresco de Mergeable.
func (ghc *GitHubClient) GetPullRequest(ctx context.Context, number int) (models.PullRequest, error) {
	pr, _, err := ghc.prService.Get(ctx, ghc.owner, ghc.repo, number)
	if err != nil {
		return models.PullRequest{}, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error_get_pr", 0, map[string]interface{}{
			"PRNumber": number,
		}), err)
	}
	return toPullRequest(pr), nil
}

// ListReviewComments lista los comentarios del hilo de review, pedidos en
// orden ascendente de creación.
func (ghc *GitHubClient) ListReviewComments(ctx context.Context, number int) ([]models.Comment, error) {
	opts := &github.PullRequestListCommentsOptions{
		Sort:      "created",
		Direction: "asc",
		ListOptions: github.ListOptions{
			PerPage: pageSize,
		},
	}

	comments, _, err := ghc.prService.ListComments(ctx, ghc.owner, ghc.repo, number, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error_list_review_comments", 0, map[string]interface{}{
			"PRNumber": number,
		}), err)
	}

	result := make([]models.Comment, 0, len(comments))
	for _, c := range comments {
		result = append(result, models.Comment{
			Body:      c.GetBody(),
			Author:    models.User{Login: c.GetUser().GetLogin()},
			CreatedAt: c.GetCreatedAt().Time,
			UpdatedAt: c.GetUpdatedAt().Time,
		})
	}
	return result, nil
}

// ListIssueComments lista los comentarios del hilo de discusión en el orden
// de recuperación del proveedor. El que llama decide si los invierte.
func (ghc *GitHubClient) ListIssueComments(ctx context.Context, number int) ([]models.Comment, error) {
	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{
			PerPage: pageSize,
		},
	}

	comments, _, err := ghc.issuesService.ListComments(ctx, ghc.owner, ghc.repo, number, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error_list_issue_comments", 0, map[string]interface{}{
			"PRNumber": number,
		}), err)
	}

	result := make([]models.Comment, 0, len(comments))
	for _, c := range comments {
		result = append(result, models.Comment{
			Body:      c.GetBody(),
			Author:    models.User{Login: c.GetUser().GetLogin()},
			CreatedAt: c.GetCreatedAt().Time,
			UpdatedAt: c.GetUpdatedAt().Time,
		})
	}
	return result, nil
}

// ListReviews lista las reviews de la PR en el orden en que las devuelve el
// proveedor, que se asume cronológico.
func (ghc *GitHubClient) ListReviews(ctx context.Context, number int) ([]models.Review, error) {
	reviews, _, err := ghc.prService.ListReviews(ctx, ghc.owner, ghc.repo, number, &github.ListOptions{PerPage: pageSize})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error_list_reviews", 0, map[string]interface{}{
			"PRNumber": number,
		}), err)
	}

	result := make([]models.Review, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, models.Review{
			Author:      models.User{Login: r.GetUser().GetLogin()},
			State:       models.ReviewState(r.GetState()),
			SubmittedAt: r.GetSubmittedAt().Time,
		})
	}
	return result, nil
}

// ListCommits lista los commits de la PR. Author y Committer quedan en nil
// cuando GitHub no puede vincularlos a una cuenta.
func (ghc *GitHubClient) ListCommits(ctx context.Context, number int) ([]models.Commit, error) {
	commits, _, err := ghc.prService.ListCommits(ctx, ghc.owner, ghc.repo, number, &github.ListOptions{PerPage: pageSize})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error_list_commits", 0, map[string]interface{}{
			"PRNumber": number,
		}), err)
	}

	result := make([]models.Commit, 0, len(commits))
	for _, c := range commits {
		commit := models.Commit{
			SHA:     c.GetSHA(),
			Message: c.GetCommit().GetMessage(),
		}
		if author := c.GetAuthor(); author != nil {
			commit.Author = &models.User{Login: author.GetLogin()}
		}
		if committer := c.GetCommitter(); committer != nil {
			commit.Committer = &models.User{Login: committer.GetLogin()}
		}
		result = append(result, commit)
	}
	return result, nil
}

func toPullRequest(pr *github.PullRequest) models.PullRequest {
	result := models.PullRequest{
		Number:    pr.GetNumber(),
		Title:     pr.GetTitle(),
		Author:    models.User{Login: pr.GetUser().GetLogin()},
		UpdatedAt: pr.GetUpdatedAt().Time,
		Mergeable: pr.Mergeable,
	}
	if assignee := pr.GetAssignee(); assignee != nil {
		result.Assignee = &models.User{Login: assignee.GetLogin()}
	}
	return result
}
