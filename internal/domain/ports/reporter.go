package ports

import "github.com/ndelucca/prstatus/internal/domain/models"

// Reporter consume los resúmenes de triage y produce la salida legible.
// Cada resumen se reporta una vez, en el orden en que fue producido.
type Reporter interface {
	Report(summary models.PullRequestSummary)
}
