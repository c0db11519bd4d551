package output

import (
	"fmt"
	"io"

	"github.com/viant/gpmldiff/diff"
	"github.com/viant/gpmldiff/model"
)

const (
	FormatText  = "text"
	FormatDelta = "delta"
	FormatSVG   = "svg"
	FormatStats = "stats"
)

// Options controls outputter creation
type Options struct {
	Color    bool
	OldTitle string
	NewTitle string
	Textfile string // stats export location
}

// ContentType returns HTTP content type of a format
func ContentType(format string) string {
	switch format {
	case FormatDelta:
		return "application/xml"
	case FormatSVG:
		return "image/svg+xml"
	}
	return "text/plain; charset=utf-8"
}

// New returns outputter for a format name
func New(format string, writer io.Writer, old, new *model.Pathway, options *Options) (diff.Outputter, error) {
	if options == nil {
		options = &Options{}
	}
	switch format {
	case FormatText, "":
		return NewText(writer, options.Color), nil
	case FormatDelta:
		return NewDelta(writer), nil
	case FormatSVG:
		return NewSVG(writer, old, new, options.OldTitle, options.NewTitle), nil
	case FormatStats:
		return Multi{NewText(writer, options.Color), NewStats(nil, options.Textfile)}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
