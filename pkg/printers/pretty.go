package printers

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/daylist/pkg/glyph"
	"tableflip.dev/daylist/pkg/item"
	"tableflip.dev/daylist/pkg/theme"
)

const noteWidth = 60

type PrettyPrint struct {
	ShowID bool
	Theme  theme.ColorTheme
	Out    io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

// styled reports whether colors should be emitted.
func (pp *PrettyPrint) styled() bool {
	if color.NoColor {
		return false
	}
	if f, ok := pp.out().(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return pp.out() == color.Output
}

func (pp *PrettyPrint) render(style lipgloss.Style, s string) string {
	if !pp.styled() {
		return s
	}
	return style.Render(s)
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	styles := pp.Theme.Styles()
	_, _ = fmt.Fprintln(pp.out(), pp.render(styles.Title, title))
}

func (pp *PrettyPrint) TitleWithCount(title string, open, total int) {
	styles := pp.Theme.Styles()
	_, _ = fmt.Fprintf(pp.out(), "%s %s\n",
		pp.render(styles.Title, title),
		pp.render(styles.Note, fmt.Sprintf("- %d of %d open", open, total)))
}

// List prints items in the given order.
func (pp *PrettyPrint) List(items ...item.Item) {
	styles := pp.Theme.Styles()
	if len(items) == 0 {
		_, _ = fmt.Fprint(pp.out(), pp.render(styles.Note, " none"), "\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = " "
	for _, it := range items {
		row := make([]interface{}, 0, 4)
		if pp.ShowID {
			row = append(row, pp.render(styles.Daily, strconv.Itoa(it.ID)))
		}

		status := glyph.For(it).String()
		title := pp.render(styles.Pending, it.Title)
		if it.IsDone {
			title = pp.render(styles.Done, it.Title)
		}
		daily := ""
		if it.IsDaily {
			daily = pp.render(styles.Daily, glyph.Daily.String())
		}
		row = append(row, status, title, daily)
		tbl.AddRow(row...)

		if note := strings.TrimSpace(it.Note); note != "" {
			for _, line := range strings.Split(wordwrap.String(note, noteWidth), "\n") {
				noteRow := make([]interface{}, 0, 4)
				if pp.ShowID {
					noteRow = append(noteRow, "")
				}
				noteRow = append(noteRow, "", pp.render(styles.Note, glyph.Note.String()+" "+line), "")
				tbl.AddRow(noteRow...)
			}
		}
	}
	if pp.ShowID {
		tbl.RightAlign(0)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Item prints a one line confirmation for a single item.
func (pp *PrettyPrint) Item(verb string, it item.Item) {
	styles := pp.Theme.Styles()
	_, _ = fmt.Fprintf(pp.out(), "%s %s %s\n",
		pp.render(styles.Note, verb),
		glyph.For(it),
		pp.render(styles.Pending, fmt.Sprintf("%s (%d)", it.Title, it.ID)))
}

// Themes prints each palette with a swatch per color.
func (pp *PrettyPrint) Themes(active string, themes ...theme.ColorTheme) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", bold.Sprint("Theme"), bold.Sprint("Colors"))
	for _, t := range themes {
		marker := ""
		if strings.EqualFold(t.Name, active) {
			marker = "*"
		}
		styles := t.Styles()
		swatches := make([]string, 0, len(t.Colors()))
		for _, c := range t.Colors() {
			swatches = append(swatches, pp.render(styles.Swatch(c[1]), " "+c[1]+" "))
		}
		tbl.AddRow(marker, t.Name, strings.Join(swatches, " "))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Key prints the glyph legend.
func (pp *PrettyPrint) Key(glyphs ...glyph.Glyph) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Glyph"), bold.Sprint("Meaning"))
	for _, g := range glyphs {
		tbl.AddRow(g.Symbol, g.Meaning)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}
