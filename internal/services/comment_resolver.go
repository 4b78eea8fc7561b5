package services

import (
	"context"

	"github.com/ndelucca/prstatus/internal/domain/models"
	"github.com/ndelucca/prstatus/internal/domain/ports"
)

// CommentResolver determina el comentario más reciente de un login sobre una
// PR, combinando los dos hilos independientes: el de review (sobre el diff)
// y el de discusión general. Cada hilo tiene su propia regla de selección y
// las dos reglas son deliberadamente distintas; no unificarlas en un
// "latest" genérico.
type CommentResolver struct {
	client ports.VCSClient
}

func NewCommentResolver(client ports.VCSClient) *CommentResolver {
	return &CommentResolver{client: client}
}

// LatestCommentBy devuelve el comentario ganador entre los dos hilos, o nil
// si el login no comentó en ninguno. Cuando ambos hilos aportan candidato
// gana el de UpdatedAt estrictamente posterior; en empate gana el del hilo
// de review.
func (r *CommentResolver) LatestCommentBy(ctx context.Context, prNumber int, login string) (*models.Comment, error) {
	reviewComment, err := r.firstReviewCommentBy(ctx, prNumber, login)
	if err != nil {
		return nil, err
	}

	issueComment, err := r.latestIssueCommentBy(ctx, prNumber, login)
	if err != nil {
		return nil, err
	}

	switch {
	case reviewComment == nil:
		return issueComment, nil
	case issueComment == nil:
		return reviewComment, nil
	}

	// La comparación es entre instantes parseados, nunca entre strings.
	if issueComment.UpdatedAt.After(reviewComment.UpdatedAt) {
		return issueComment, nil
	}
	return reviewComment, nil
}

// firstReviewCommentBy selecciona, del hilo de review pedido en orden
// ascendente de creación, el PRIMER comentario del login: el más antiguo de
// la página recuperada.
func (r *CommentResolver) firstReviewCommentBy(ctx context.Context, prNumber int, login string) (*models.Comment, error) {
	comments, err := r.client.ListReviewComments(ctx, prNumber)
	if err != nil {
		return nil, err
	}

	for i := range comments {
		if comments[i].Author.Login == login {
			return &comments[i], nil
		}
	}
	return nil, nil
}

// latestIssueCommentBy invierte la página recuperada del hilo de discusión y
// selecciona el primer comentario del login: el más reciente por orden de
// creación dentro de la página.
func (r *CommentResolver) latestIssueCommentBy(ctx context.Context, prNumber int, login string) (*models.Comment, error) {
	comments, err := r.client.ListIssueComments(ctx, prNumber)
	if err != nil {
		return nil, err
	}

	for i := len(comments) - 1; i >= 0; i-- {
		if comments[i].Author.Login == login {
			return &comments[i], nil
		}
	}
	return nil, nil
}
