package config

import (
	"context"
	"fmt"
	"slices"
	"strings"

	cfg "github.com/ndelucca/prstatus/internal/config"
	"github.com/ndelucca/prstatus/internal/i18n"
	"github.com/ndelucca/prstatus/internal/ui"
	"github.com/urfave/cli/v3"
)

// ConfigCommandFactory arma el comando para ver y editar la configuración
// persistida de prstatus.
type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

func (f *ConfigCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   t.GetMessage("config_command_usage", 0, nil),
		Commands: []*cli.Command{
			f.showCommand(t, config),
			f.setRepoCommand(t, config),
			f.setLangCommand(t, config),
			f.ignoreCommand(t, config),
		},
	}
}

func (f *ConfigCommandFactory) showCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ui.PrintInfo(t.GetMessage("config_current", 0, nil))
			ui.PrintKeyValue("language", config.Language)
			ui.PrintKeyValue("repository", config.Owner+"/"+config.Repo)
			ui.PrintKeyValue("ignored_authors", strings.Join(config.IgnoredAuthors, ", "))
			ui.PrintKeyValue("poll_interval_seconds", fmt.Sprintf("%d", config.PollIntervalSeconds))
			ui.PrintKeyValue("poll_max_attempts", fmt.Sprintf("%d", config.PollMaxAttempts))
			return nil
		},
	}
}

func (f *ConfigCommandFactory) setRepoCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-repo",
		Usage: t.GetMessage("config_set_repo_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "owner",
				Required: true,
				Usage:    t.GetMessage("flag_owner_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:     "repo",
				Required: true,
				Usage:    t.GetMessage("flag_repo_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			config.Owner = cmd.String("owner")
			config.Repo = cmd.String("repo")
			if err := cfg.SaveConfig(config); err != nil {
				return err
			}
			fmt.Println(t.GetMessage("config_saved", 0, nil))
			return nil
		},
	}
}

func (f *ConfigCommandFactory) setLangCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-lang",
		Usage:     t.GetMessage("config_set_lang_usage", 0, nil),
		ArgsUsage: "<lang>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			lang := cmd.Args().First()
			if err := t.SetLanguage(lang); err != nil {
				return err
			}
			config.Language = lang
			if err := cfg.SaveConfig(config); err != nil {
				return err
			}
			fmt.Println(t.GetMessage("config_saved", 0, nil))
			return nil
		},
	}
}

func (f *ConfigCommandFactory) ignoreCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "ignore",
		Usage: t.GetMessage("config_ignore_usage", 0, nil),
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     t.GetMessage("config_ignore_add_usage", 0, nil),
				ArgsUsage: "<login>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					login := cmd.Args().First()
					if login == "" {
						return fmt.Errorf("%s", t.GetMessage("flag_ignore_usage", 0, nil))
					}
					if !slices.Contains(config.IgnoredAuthors, login) {
						config.IgnoredAuthors = append(config.IgnoredAuthors, login)
					}
					if err := cfg.SaveConfig(config); err != nil {
						return err
					}
					fmt.Println(t.GetMessage("config_saved", 0, nil))
					return nil
				},
			},
			{
				Name:      "remove",
				Usage:     t.GetMessage("config_ignore_remove_usage", 0, nil),
				ArgsUsage: "<login>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					login := cmd.Args().First()
					config.IgnoredAuthors = slices.DeleteFunc(config.IgnoredAuthors, func(l string) bool {
						return l == login
					})
					if err := cfg.SaveConfig(config); err != nil {
						return err
					}
					fmt.Println(t.GetMessage("config_saved", 0, nil))
					return nil
				},
			},
		},
	}
}
