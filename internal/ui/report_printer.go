package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/ndelucca/prstatus/internal/domain/models"
	"github.com/ndelucca/prstatus/internal/domain/ports"
	"github.com/ndelucca/prstatus/internal/i18n"
)

var _ ports.Reporter = (*ReportPrinter)(nil)

// maxBodyWidth es el ancho máximo del extracto de un comentario en el
// reporte, medido en celdas de terminal.
const maxBodyWidth = 60

// ReportPrinter escribe un bloque multilínea legible por cada resumen de PR,
// con iconografía fija y tiempos relativos ("3 hours ago").
type ReportPrinter struct {
	out   io.Writer
	trans *i18n.Translations
}

func NewReportPrinter(out io.Writer, trans *i18n.Translations) *ReportPrinter {
	return &ReportPrinter{
		out:   out,
		trans: trans,
	}
}

// Report escribe el bloque de la PR con una única escritura, para que la
// salida no se entrelace con el spinner de progreso.
func (p *ReportPrinter) Report(summary models.PullRequestSummary) {
	pr := summary.PullRequest
	var block strings.Builder

	header := Accent.Sprintf("#%d", pr.Number) + " " + pr.Title
	fmt.Fprintf(&block, "%s %s\n", PREmoji, header)

	byAuthor := p.trans.GetMessage("report_by_author", 0, map[string]interface{}{
		"Author": pr.Author.Login,
		"When":   humanize.Time(pr.UpdatedAt),
	})

	mergeable := SuccessEmoji + " " + p.trans.GetMessage("report_mergeable", 0, nil)
	if !summary.Mergeable {
		mergeable = ErrorEmoji + " " + p.trans.GetMessage("report_not_mergeable", 0, nil)
	}

	assignment := p.trans.GetMessage("report_unassigned", 0, nil)
	if pr.Assignee != nil {
		assignment = p.trans.GetMessage("report_assigned_to", 0, map[string]interface{}{
			"Login": pr.Assignee.Login,
		})
	}

	fmt.Fprintf(&block, "   %s | %s | %s\n", Dim.Sprint(byAuthor), mergeable, assignment)
	fmt.Fprintf(&block, "   %s\n", p.reviewsLine(summary.Reviews))
	fmt.Fprintf(&block, "   %s\n", p.commentLine(summary.AuthorComment, "report_author_comment", "report_no_author_comment"))
	fmt.Fprintf(&block, "   %s\n", p.commentLine(summary.OperatorComment, "report_operator_comment", "report_no_operator_comment"))

	commits := p.trans.GetMessage("report_operator_commits", len(summary.OperatorCommits), map[string]interface{}{
		"Count": len(summary.OperatorCommits),
	})
	fmt.Fprintf(&block, "   %s %s\n\n", CommitEmoji, commits)

	_, _ = io.WriteString(p.out, block.String())
}

func (p *ReportPrinter) reviewsLine(reviews []models.Review) string {
	if len(reviews) == 0 {
		return Dim.Sprint(p.trans.GetMessage("report_no_reviews", 0, nil))
	}

	parts := make([]string, 0, len(reviews))
	for _, review := range reviews {
		parts = append(parts, fmt.Sprintf("%s %s (%s)",
			reviewIcon(review.State),
			review.Author.Login,
			humanize.Time(review.SubmittedAt),
		))
	}

	count := p.trans.GetMessage("report_reviews", len(reviews), map[string]interface{}{
		"Count": len(reviews),
	})
	return count + ": " + strings.Join(parts, " · ")
}

func (p *ReportPrinter) commentLine(comment *models.Comment, messageID, emptyMessageID string) string {
	if comment == nil {
		return CommentEmoji + " " + Dim.Sprint(p.trans.GetMessage(emptyMessageID, 0, nil))
	}

	label := p.trans.GetMessage(messageID, 0, map[string]interface{}{
		"When": humanize.Time(comment.UpdatedAt),
	})
	return fmt.Sprintf("%s %s: %q", CommentEmoji, label, excerpt(comment.Body))
}

func reviewIcon(state models.ReviewState) string {
	switch state {
	case models.ReviewApproved:
		return Success.Sprint("✔")
	case models.ReviewChangesRequested:
		return Error.Sprint("✖")
	default:
		return Info.Sprint("•")
	}
}

// excerpt aplana el cuerpo a una línea y lo corta por ancho de celdas, no
// por bytes, para no partir caracteres anchos.
func excerpt(body string) string {
	flat := strings.Join(strings.Fields(body), " ")
	return runewidth.Truncate(flat, maxBodyWidth, "…")
}
