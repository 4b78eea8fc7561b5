package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations arma el bundle con los mensajes por defecto en inglés y
// carga los archivos locales/active.*.toml que encuentre en localesPath
// (o en "locales" si viene vacío).
func NewTranslations(defaultLang string, localesPath string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath == "" {
		localesPath = "locales"
	}

	files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Report the review status of the open pull requests of a repository"

	[app_description]
	other = "prstatus scans the open pull requests of a GitHub repository and prints, for each one that needs your attention, its mergeability, reviews, latest comments and your own commits on it."

	[help_command_usage]
	other = "Show help"

	[report_command_usage]
	other = "Scan the open pull requests and print a triage report"

	[config_command_usage]
	other = "Inspect and edit the prstatus configuration"

	[config_show_usage]
	other = "Print the current configuration"

	[config_set_repo_usage]
	other = "Set the default repository (owner and name)"

	[config_set_lang_usage]
	other = "Set the language of the messages"

	[config_ignore_usage]
	other = "Manage the list of always-ignored authors"

	[config_ignore_add_usage]
	other = "Add an author to the ignore list"

	[config_ignore_remove_usage]
	other = "Remove an author from the ignore list"

	[config_saved]
	other = "Configuration saved"

	[config_current]
	other = "Current configuration"

	[flag_owner_usage]
	other = "Owner of the repository to scan"

	[flag_repo_usage]
	other = "Name of the repository to scan"

	[flag_ignore_usage]
	other = "Author login to ignore (repeatable)"

	[flag_sort_usage]
	other = "Sort key for the open pull requests (created, updated, popularity, long-running)"

	[flag_direction_usage]
	other = "Sort direction (asc, desc)"

	[flag_poll_interval_usage]
	other = "Seconds to wait between mergeability polls"

	[flag_poll_max_attempts_usage]
	other = "Maximum number of mergeability polls per pull request"

	[error_missing_token]
	other = "No access token found. Set the {{.EnvVar}} environment variable"

	[error_repo_not_configured]
	other = "No repository configured. Use --owner/--repo or 'prstatus config set-repo'"

	[error_current_user]
	other = "could not resolve the authenticated user"

	[error_list_prs]
	other = "could not list the open pull requests"

	[error_get_pr]
	other = "could not fetch pull request #{{.PRNumber}}"

	[error_list_review_comments]
	other = "could not list the review comments of pull request #{{.PRNumber}}"

	[error_list_issue_comments]
	other = "could not list the issue comments of pull request #{{.PRNumber}}"

	[error_list_reviews]
	other = "could not list the reviews of pull request #{{.PRNumber}}"

	[error_list_commits]
	other = "could not list the commits of pull request #{{.PRNumber}}"

	[error_summarize_pr]
	other = "could not summarize pull request #{{.PRNumber}}"

	[info_mergeable_pending]
	other = "Mergeability of #{{.PRNumber}} still pending (attempt {{.Attempt}}/{{.MaxAttempts}}), retrying..."

	[ui_scanning]
	other = "Scanning open pull requests of {{.Owner}}/{{.Repo}}..."

	[ui_no_open_prs]
	other = "No open pull requests need your attention"

	[ui_report_done]
	one = "{{.Count}} pull request reported"
	other = "{{.Count}} pull requests reported"

	[report_by_author]
	other = "by {{.Author}}, updated {{.When}}"

	[report_mergeable]
	other = "mergeable"

	[report_not_mergeable]
	other = "NOT mergeable"

	[report_assigned_to]
	other = "assigned to {{.Login}}"

	[report_unassigned]
	other = "unassigned"

	[report_no_reviews]
	other = "no reviews yet"

	[report_reviews]
	one = "{{.Count}} review"
	other = "{{.Count}} reviews"

	[report_author_comment]
	other = "author commented {{.When}}"

	[report_no_author_comment]
	other = "no comments by the author"

	[report_operator_comment]
	other = "you commented {{.When}}"

	[report_no_operator_comment]
	other = "you have not commented"

	[report_operator_commits]
	one = "{{.Count}} commit of yours"
	other = "{{.Count}} commits of yours"
	`
