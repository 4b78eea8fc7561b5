package ports

import (
	"context"

	"github.com/ndelucca/prstatus/internal/domain/models"
)

// VCSClient define las operaciones de lectura contra la API del sistema de
// control de versiones. Cada operación de listado devuelve una única página
// acotada (tamaño fijo) en el orden en que la devuelve el proveedor; la
// paginación exhaustiva queda fuera del contrato.
type VCSClient interface {
	// CurrentUser devuelve el usuario autenticado (el operador del reporte).
	CurrentUser(ctx context.Context) (models.User, error)
	// ListOpenPullRequests lista las PRs abiertas del repositorio.
	// sort ∈ {created, updated, popularity, long-running}; direction ∈ {asc, desc}.
	ListOpenPullRequests(ctx context.Context, sort, direction string) ([]models.PullRequest, error)
	// GetPullRequest obtiene una PR por número, con el valor fresco de Mergeable.
	GetPullRequest(ctx context.Context, number int) (models.PullRequest, error)
	// ListReviewComments lista los comentarios del hilo de review de la PR,
	// pedidos en orden ascendente de creación.
	ListReviewComments(ctx context.Context, number int) ([]models.Comment, error)
	// ListIssueComments lista los comentarios del hilo de discusión de la PR,
	// en el orden de recuperación del proveedor. El que llama los invierte.
	ListIssueComments(ctx context.Context, number int) ([]models.Comment, error)
	// ListReviews lista las reviews de la PR en orden cronológico de envío.
	ListReviews(ctx context.Context, number int) ([]models.Review, error)
	// ListCommits lista los commits incluidos en la PR.
	ListCommits(ctx context.Context, number int) ([]models.Commit, error)
}
