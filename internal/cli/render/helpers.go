package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/netcfg/internal/domain/config"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Color styles shared by the renderers
var (
	sectionHeaderStyle = color.New(color.Bold, color.FgHiWhite)
	labelStyle         = color.New(color.Faint)
	activeStyle        = color.New(color.FgGreen, color.Bold)
	defaultURLStyle    = color.New(color.FgCyan)
	warningStyle       = color.New(color.FgYellow)
	errorStyle         = color.New(color.FgRed)
)

// paint applies c only when color output is enabled
func paint(c *color.Color, enabled bool, s string) string {
	if !enabled {
		return s
	}
	return c.Sprint(s)
}

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string, enabled bool) string {
	return paint(warningStyle, enabled, "⚠️  "+message)
}

// FormatError formats an error for the terminal, capitalizing the first letter
func FormatError(err error, enabled bool) string {
	msg := err.Error()
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}
	return paint(errorStyle, enabled, "❌ "+msg)
}

// familyTitle returns the display name of an explorer family
func familyTitle(family config.ExplorerFamily) string {
	return cases.Title(language.English).String(string(family))
}

// newTable creates a borderless table writer in the treb style
func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	t.Style().Box.PaddingRight = "   "
	return t
}

// encode writes v in the given machine-readable format
func encode(out io.Writer, format config.OutputFormat, v any) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q is not machine-readable", format)
	}
}
