package models

import "time"

type (
	// PullRequest contiene los datos de una Pull Request abierta tal como
	// los devuelve el proveedor. Mergeable en nil modela el estado
	// pendiente: el proveedor todavía no calculó si se puede mergear.
	PullRequest struct {
		Number    int
		Title     string
		Author    User
		Assignee  *User
		UpdatedAt time.Time
		Mergeable *bool
	}

	// PullRequestSummary es el resumen de triage de una PR: mergeabilidad
	// resuelta, reviews completas, último comentario del autor y del
	// operador, y commits atribuidos al operador. Se construye una sola
	// vez por PR por corrida y no se muta.
	PullRequestSummary struct {
		PullRequest     PullRequest
		Mergeable       bool
		AuthorComment   *Comment
		OperatorComment *Comment
		OperatorCommits []Commit
		Reviews         []Review
	}
)
