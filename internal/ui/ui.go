package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Accent  = color.New(color.FgMagenta, color.Bold)
	Dim     = color.New(color.FgHiBlack)

	// Emojis with colors
	SuccessEmoji = Success.Sprint("✅")
	ErrorEmoji   = Error.Sprint("❌")
	WarningEmoji = Warning.Sprint("⚠️")
	InfoEmoji    = Info.Sprint("ℹ️")
	PREmoji      = Accent.Sprint("🔀")
	CommentEmoji = Info.Sprint("💬")
	CommitEmoji  = Dim.Sprint("⚙️")
)

// SmartSpinner is a spinner with enhanced capabilities
type SmartSpinner struct {
	spinner *spinner.Spinner
}

// NewSmartSpinner creates a new spinner with an initial message
func NewSmartSpinner(initialMessage string) *SmartSpinner {
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+initialMessage),
	)
	return &SmartSpinner{spinner: s}
}

func (s *SmartSpinner) Start() {
	s.spinner.Start()
}

func (s *SmartSpinner) Stop() {
	s.spinner.Stop()
}

func (s *SmartSpinner) UpdateMessage(msg string) {
	s.spinner.Suffix = " " + msg
}

func (s *SmartSpinner) Success(msg string) {
	s.Stop()
	PrintSuccess(os.Stdout, msg)
}

func (s *SmartSpinner) Error(msg string) {
	s.Stop()
	PrintError(os.Stdout, msg)
}

// Log detiene el spinner, imprime la línea y lo vuelve a arrancar, para que
// los diagnósticos no queden pisados por la animación.
func (s *SmartSpinner) Log(msg string) {
	s.Stop()
	fmt.Println(msg)
	s.Start()
}

// SpinnerWriter suspende el spinner mientras escribe, para que los bloques
// del reporte salgan enteros y la animación no los pise.
type SpinnerWriter struct {
	s *SmartSpinner
	w io.Writer
}

func NewSpinnerWriter(s *SmartSpinner, w io.Writer) *SpinnerWriter {
	return &SpinnerWriter{s: s, w: w}
}

func (sw *SpinnerWriter) Write(p []byte) (int, error) {
	sw.s.Stop()
	n, err := sw.w.Write(p)
	sw.s.Start()
	return n, err
}

func PrintSuccess(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", SuccessEmoji, Success.Sprint(msg))
}

func PrintError(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", ErrorEmoji, Error.Sprint(msg))
}

func PrintInfo(msg string) {
	fmt.Printf("%s %s\n", InfoEmoji, Info.Sprint(msg))
}

func PrintKeyValue(key, value string) {
	keyColored := Dim.Sprint(key + ":")
	valueColored := color.New(color.FgWhite, color.Bold).Sprint(value)
	fmt.Printf("   %s %s\n", keyColored, valueColored)
}
