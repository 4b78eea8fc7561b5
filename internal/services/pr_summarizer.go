package services

import (
	"context"

	"github.com/ndelucca/prstatus/internal/domain/models"
	"github.com/ndelucca/prstatus/internal/domain/ports"
)

// PRSummarizer arma el resumen de triage de una PR: mergeabilidad resuelta,
// secuencia completa de reviews, último comentario del autor y del operador,
// y commits atribuidos al operador. No hay modo de fallo parcial: si
// cualquier consulta falla, falla el resumen entero.
type PRSummarizer struct {
	client    ports.VCSClient
	mergeable *MergeableResolver
	comments  *CommentResolver
}

func NewPRSummarizer(client ports.VCSClient, mergeable *MergeableResolver, comments *CommentResolver) *PRSummarizer {
	return &PRSummarizer{
		client:    client,
		mergeable: mergeable,
		comments:  comments,
	}
}

// Summarize construye el resumen de la PR para el operador dado.
func (s *PRSummarizer) Summarize(ctx context.Context, pr models.PullRequest, operatorLogin string, progress func(string)) (models.PullRequestSummary, error) {
	// Si la PR ya trae un booleano definido se usa tal cual y se ahorra
	// la ida extra al proveedor.
	var mergeable bool
	if pr.Mergeable != nil {
		mergeable = *pr.Mergeable
	} else {
		resolved, err := s.mergeable.Resolve(ctx, pr.Number, progress)
		if err != nil {
			return models.PullRequestSummary{}, err
		}
		mergeable = resolved
	}

	reviews, err := s.client.ListReviews(ctx, pr.Number)
	if err != nil {
		return models.PullRequestSummary{}, err
	}

	authorComment, err := s.comments.LatestCommentBy(ctx, pr.Number, pr.Author.Login)
	if err != nil {
		return models.PullRequestSummary{}, err
	}

	operatorComment, err := s.comments.LatestCommentBy(ctx, pr.Number, operatorLogin)
	if err != nil {
		return models.PullRequestSummary{}, err
	}

	commits, err := s.client.ListCommits(ctx, pr.Number)
	if err != nil {
		return models.PullRequestSummary{}, err
	}

	var operatorCommits []models.Commit
	for _, commit := range commits {
		if commit.AttributedTo(operatorLogin) {
			operatorCommits = append(operatorCommits, commit)
		}
	}

	return models.PullRequestSummary{
		PullRequest:     pr,
		Mergeable:       mergeable,
		AuthorComment:   authorComment,
		OperatorComment: operatorComment,
		OperatorCommits: operatorCommits,
		Reviews:         reviews,
	}, nil
}
