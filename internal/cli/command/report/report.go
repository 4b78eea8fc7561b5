package report

import (
	"context"
	"fmt"
	"os"
	"time"

	cfg "github.com/ndelucca/prstatus/internal/config"
	"github.com/ndelucca/prstatus/internal/i18n"
	"github.com/ndelucca/prstatus/internal/infrastructure/vcs/github"
	"github.com/ndelucca/prstatus/internal/services"
	"github.com/ndelucca/prstatus/internal/ui"
	"github.com/urfave/cli/v3"
)

// ReportCommandFactory arma el comando principal: recorre las PRs abiertas
// del repositorio configurado e imprime el reporte de triage.
type ReportCommandFactory struct{}

func NewReportCommandFactory() *ReportCommandFactory {
	return &ReportCommandFactory{}
}

func (f *ReportCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:    "report",
		Aliases: []string{"r"},
		Usage:   t.GetMessage("report_command_usage", 0, nil),
		Flags:   f.createFlags(config, t),
		Action:  f.createAction(config, t),
	}
}

func (f *ReportCommandFactory) createFlags(config *cfg.Config, t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "owner",
			Aliases: []string{"o"},
			Value:   config.Owner,
			Usage:   t.GetMessage("flag_owner_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Value:   config.Repo,
			Usage:   t.GetMessage("flag_repo_usage", 0, nil),
		},
		&cli.StringSliceFlag{
			Name:    "ignore",
			Aliases: []string{"i"},
			Value:   config.IgnoredAuthors,
			Usage:   t.GetMessage("flag_ignore_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:  "sort",
			Value: "updated",
			Usage: t.GetMessage("flag_sort_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:  "direction",
			Value: "asc",
			Usage: t.GetMessage("flag_direction_usage", 0, nil),
		},
		&cli.IntFlag{
			Name:  "poll-interval",
			Value: int64(config.PollIntervalSeconds),
			Usage: t.GetMessage("flag_poll_interval_usage", 0, nil),
		},
		&cli.IntFlag{
			Name:  "poll-max-attempts",
			Value: int64(config.PollMaxAttempts),
			Usage: t.GetMessage("flag_poll_max_attempts_usage", 0, nil),
		},
	}
}

func (f *ReportCommandFactory) createAction(config *cfg.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		owner := cmd.String("owner")
		repo := cmd.String("repo")
		if owner == "" || repo == "" {
			return fmt.Errorf("%s", t.GetMessage("error_repo_not_configured", 0, nil))
		}

		// El token es fatal antes de cualquier llamada remota.
		token, err := cfg.ReadToken()
		if err != nil {
			return err
		}

		client := github.NewGitHubClient(owner, repo, token, t)

		spin := ui.NewSmartSpinner(t.GetMessage("ui_scanning", 0, map[string]interface{}{
			"Owner": owner,
			"Repo":  repo,
		}))
		spin.Start()

		printer := ui.NewReportPrinter(ui.NewSpinnerWriter(spin, os.Stdout), t)

		resolver := services.NewMergeableResolver(
			client,
			t,
			time.Duration(cmd.Int("poll-interval"))*time.Second,
			int(cmd.Int("poll-max-attempts")),
		)
		summarizer := services.NewPRSummarizer(client, resolver, services.NewCommentResolver(client))
		triage := services.NewTriageService(
			client,
			summarizer,
			printer,
			cmd.StringSlice("ignore"),
			cmd.String("sort"),
			cmd.String("direction"),
		)

		reported, err := triage.Run(ctx, spin.Log)
		if err != nil {
			spin.Error(err.Error())
			return err
		}

		if reported == 0 {
			spin.Stop()
			ui.PrintInfo(t.GetMessage("ui_no_open_prs", 0, nil))
			return nil
		}

		spin.Success(t.GetMessage("ui_report_done", reported, map[string]interface{}{
			"Count": reported,
		}))
		return nil
	}
}
