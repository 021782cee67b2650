package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/andareed/siftly-bikeshare/logging"
)

type FooterState struct {
	Mode      mode
	Selection string
	Position  string

	StatusMessage string
	Legend        string
}

type FooterStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	TextFG     lipgloss.Color
	DimFG      lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func DefaultFooterStyles() FooterStyles {
	return FooterStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		StatusBG:   lipgloss.Color("#000000"),
		ModePillBG: lipgloss.Color(accentColor),
		ModePillFG: lipgloss.Color("#000000"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		DimFG:      lipgloss.Color("#a0a0a0"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

var modeLegends = map[mode]string{
	modeSelect: "(tab next field · enter apply · esc cancel)",
	modeStats:  "(? help · r raw trips · f new selection · e export · s save · q quit)",
	modeRaw:    "(? help · n/space next · y copy · esc back · q quit)",
}

// footerView renders the 2-line footer. width is the rendered content width.
func (m *model) footerView(width int) string {
	st := FooterState{
		Mode:      m.ui.mode,
		Selection: "no selection",
		Legend:    modeLegends[m.ui.mode],
	}
	if m.data.hasReport {
		st.Selection = m.data.selection.label()
		st.Position = m.data.pageLabel()
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	}

	if logging.IsDebugMode() {
		st.Legend += fmt.Sprintf(" | dbg term=%dx%d vp=%dx%d cur=%d",
			m.terminalWidth, m.terminalHeight, m.viewport.Width, m.viewport.Height, m.data.pageCursor)
	}

	return RenderFooter(width, st, DefaultFooterStyles())
}

func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}
	return renderControlBar(width, st, styles) + "\n" + renderStatusBar(width, st, styles)
}

func renderControlBar(width int, st FooterState, styles FooterStyles) string {
	gapW := 1

	rightPlain := ""
	if st.Position != "" {
		rightPlain = truncatePlain(" "+st.Position+" ", width)
	}
	rightW := runeWidth(rightPlain)
	leftW := max(0, width-rightW)

	modeText := st.Mode.String()
	modeColW := min(leftW, runeWidth(modeText)+2)
	selColW := max(0, leftW-modeColW-gapW)

	left := renderModeSegment(modeColW, modeText, styles)
	if selColW > 0 {
		left += strings.Repeat(" ", gapW) + renderSelectionSegment(selColW, st, styles)
	}
	return applyBar(left+rightPlain, styles.BarBG, styles.TextFG)
}

func renderStatusBar(width int, st FooterState, styles FooterStyles) string {
	legendPlain := truncatePlain(st.Legend, width)
	leftW := max(0, width-runeWidth(legendPlain))

	msgPlain := padRightPlain(truncatePlain(st.StatusMessage, leftW), leftW)

	linePlain := applyFG(msgPlain, styles.StatusFG, styles.StatusFG) + applyFG(legendPlain, styles.LegendFG, styles.StatusFG)
	return applyBar(linePlain, styles.StatusBG, styles.StatusFG)
}

func renderModeSegment(colW int, label string, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	pillPlain := padRightPlain(truncatePlain(" "+label+" ", colW), colW)
	return ansiBg(styles.ModePillBG) + ansiFg(styles.ModePillFG) + pillPlain +
		ansiBg(styles.BarBG) + ansiFg(styles.TextFG)
}

func renderSelectionSegment(colW int, st FooterState, styles FooterStyles) string {
	plain := padRightPlain(truncatePlain("▸ "+st.Selection, colW), colW)
	return applyFG(plain, styles.DimFG, styles.TextFG)
}

func applyBar(s string, bg lipgloss.Color, baseFG lipgloss.Color) string {
	return ansiBg(bg) + ansiFg(baseFG) + s + termenv.CSI + termenv.ResetSeq + "m"
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return ansiFg(fg) + s + ansiFg(resetFG)
}

func ansiFg(c lipgloss.Color) string { return ansiColor(false, c) }

func ansiBg(c lipgloss.Color) string { return ansiColor(true, c) }

// ansiColor always emits true colour so the footer looks the same under any
// detected profile.
func ansiColor(isBg bool, c lipgloss.Color) string {
	s := string(c)
	if s == "" {
		if isBg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	tc := termenv.TrueColor.Color(s)
	if tc == nil {
		return ""
	}
	return termenv.CSI + tc.Sequence(isBg) + "m"
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.FillRight(s, w)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "")
}

func runeWidth(s string) int {
	return runewidth.StringWidth(s)
}
