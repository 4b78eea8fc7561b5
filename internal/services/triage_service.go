package services

import (
	"context"

	"github.com/ndelucca/prstatus/internal/domain/ports"
)

// TriageService recorre las PRs abiertas, aplica las reglas de inclusión y
// entrega cada resumen al reporter. Las PRs se procesan estrictamente en
// secuencia: el resumen de una (incluido su polling de mergeabilidad)
// termina antes de empezar la siguiente, así el reporte sale en el orden en
// que el proveedor devolvió las PRs.
type TriageService struct {
	client         ports.VCSClient
	summarizer     *PRSummarizer
	reporter       ports.Reporter
	ignoredAuthors []string
	sort           string
	direction      string
}

func NewTriageService(client ports.VCSClient, summarizer *PRSummarizer, reporter ports.Reporter, ignoredAuthors []string, sort, direction string) *TriageService {
	return &TriageService{
		client:         client,
		summarizer:     summarizer,
		reporter:       reporter,
		ignoredAuthors: ignoredAuthors,
		sort:           sort,
		direction:      direction,
	}
}

// Run resuelve el operador, recorre las PRs abiertas y reporta las que pasan
// el filtro. Devuelve la cantidad reportada. El primer error aborta la
// corrida entera: no hay aislamiento por PR.
func (s *TriageService) Run(ctx context.Context, progress func(string)) (int, error) {
	operator, err := s.client.CurrentUser(ctx)
	if err != nil {
		return 0, err
	}

	// El operador se agrega siempre al conjunto de ignorados: sus propias
	// PRs no necesitan su triage.
	ignored := make(map[string]struct{}, len(s.ignoredAuthors)+1)
	for _, login := range s.ignoredAuthors {
		ignored[login] = struct{}{}
	}
	ignored[operator.Login] = struct{}{}

	prs, err := s.client.ListOpenPullRequests(ctx, s.sort, s.direction)
	if err != nil {
		return 0, err
	}

	reported := 0
	for _, pr := range prs {
		if _, skip := ignored[pr.Author.Login]; skip {
			continue
		}

		// Una PR asignada a un tercero es problema del tercero. Sin
		// asignar, o asignada al operador, se reporta.
		if pr.Assignee != nil && pr.Assignee.Login != operator.Login {
			continue
		}

		summary, err := s.summarizer.Summarize(ctx, pr, operator.Login, progress)
		if err != nil {
			return reported, err
		}

		s.reporter.Report(summary)
		reported++
	}

	return reported, nil
}
