package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

const (
	succeedSymbol = "✔"
	infoSymbol    = "ℹ"
	failSymbol    = "✖"
	statusFormat  = "%s %s\n"
)

// Reporter writes status lines to the diagnostic stream.
type Reporter struct {
	writer       io.Writer
	succeedColor *color.Color
	infoColor    *color.Color
	failColor    *color.Color
}

// NewReporter creates a Reporter writing to writer. Colors are emitted only when colorEnabled is true.
func NewReporter(writer io.Writer, colorEnabled bool) *Reporter {
	reporter := &Reporter{
		writer:       writer,
		succeedColor: color.New(color.FgGreen),
		infoColor:    color.New(color.FgBlue),
		failColor:    color.New(color.FgRed),
	}
	for _, statusColor := range []*color.Color{reporter.succeedColor, reporter.infoColor, reporter.failColor} {
		if colorEnabled {
			statusColor.EnableColor()
		} else {
			statusColor.DisableColor()
		}
	}
	return reporter
}

// Succeed reports a completed step.
func (reporter *Reporter) Succeed(message string) {
	reporter.write(reporter.succeedColor, succeedSymbol, message)
}

// Info reports a neutral outcome.
func (reporter *Reporter) Info(message string) {
	reporter.write(reporter.infoColor, infoSymbol, message)
}

// Fail reports a failed step.
func (reporter *Reporter) Fail(message string) {
	reporter.write(reporter.failColor, failSymbol, message)
}

func (reporter *Reporter) write(statusColor *color.Color, symbol string, message string) {
	if reporter == nil || reporter.writer == nil {
		return
	}
	fmt.Fprintf(reporter.writer, statusFormat, statusColor.Sprint(symbol), statusColor.Sprint(message))
}
