package tui

import (
	"bytes"
	"fmt"
	"image/png"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/agedash/internal/clipboard"
	"github.com/f3rmion/agedash/internal/config"
	"github.com/f3rmion/agedash/internal/dashboard"
	"github.com/f3rmion/agedash/internal/dataset"
	"github.com/f3rmion/agedash/internal/filter"
	"github.com/f3rmion/agedash/internal/layout"
	"github.com/f3rmion/agedash/internal/people"
	"github.com/f3rmion/agedash/internal/plot"
	"github.com/f3rmion/agedash/internal/tui/components"
	"github.com/f3rmion/agedash/internal/tui/halfblock"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
)

// Focus represents the widget receiving keyboard input
type Focus int

const (
	FocusCountries Focus = iota
	FocusGenders
	FocusTable
)

// Widget labels
const (
	countriesLabel = "Select countries to display"
	gendersLabel   = "Select gender(s)"
	tableLabel     = "View Filtered Data Table"
)

// previewMsg carries a rendered image preview
type previewMsg struct {
	gen int
	art string
	err error
}

// exportedMsg is sent when a chart export finishes
type exportedMsg struct {
	path string
	err  error
}

type clearStatusMsg struct {
	gen int
}

func clearStatusAfter(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return clearStatusMsg{gen: gen}
	})
}

// AppModel is the dashboard model
type AppModel struct {
	// Core dependencies
	table  people.Table
	config *config.Config

	// Latest render pass
	result dashboard.Result

	// Layout state
	width        int
	height       int
	sidebarWidth int
	ready        bool

	// Widgets
	countries components.MultiSelect
	genders   components.MultiSelect
	dataTable table.Model
	help      help.Model
	keys      KeyMap
	focus     Focus

	// Chart
	showTable   bool
	scroll      int
	showPreview bool
	preview     string
	previewGen  int
	monoPreview bool // terminal without colors

	// Clipboard sink for copied rows
	writeClipboard func(string) error

	// Status line
	status    string
	statusErr bool
	statusGen int

	showHelp bool
}

// NewApp creates the dashboard for a loaded table
func NewApp(tbl people.Table, cfg *config.Config) AppModel {
	if cfg == nil {
		cfg = config.Default()
	}

	genders := make([]string, len(people.Genders))
	for i, g := range people.Genders {
		genders[i] = string(g)
	}

	dt := table.New(
		table.WithColumns(tableColumns()),
		table.WithHeight(8),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).Foreground(ColorLabel)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(false)
	dt.SetStyles(s)

	m := AppModel{
		table:        tbl,
		config:       cfg,
		sidebarWidth: 34,
		countries:    components.NewMultiSelect(countriesLabel, tbl.Countries()),
		genders:      components.NewMultiSelect(gendersLabel, genders),
		dataTable:    dt,
		help:         help.New(),
		keys:         Keys,
		focus:        FocusCountries,

		monoPreview:    lipgloss.ColorProfile() == termenv.Ascii,
		writeClipboard: clipboard.Write,
	}
	m.countries.Focus()
	m.recompute()

	return m
}

// Result returns the latest render pass
func (m AppModel) Result() dashboard.Result {
	return m.result
}

// Selection returns the current widget selection
func (m AppModel) Selection() filter.Selection {
	genders := m.genders.Selected()
	sel := filter.Selection{
		Countries: m.countries.Selected(),
		Genders:   make([]people.Gender, len(genders)),
	}
	for i, g := range genders {
		sel.Genders[i] = people.Gender(g)
	}
	return sel
}

// recompute reruns the dashboard for the current selection
func (m *AppModel) recompute() {
	m.result = dashboard.Render(m.table, m.Selection())
	m.dataTable.SetRows(tableRows(m.result.View))
	m.dataTable.SetCursor(0)
	m.scroll = clampOffset(m.scroll, len(m.result.Chart.Bars), visibleBars(m.chartWidth(), m.result.Chart))
	m.previewGen++
	m.preview = ""
}

func tableColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 5},
		{Title: people.ColumnCountry, Width: 18},
		{Title: people.ColumnGender, Width: 8},
		{Title: people.ColumnAge, Width: 8},
		{Title: "Color", Width: 8},
	}
}

// tableRows lists the view rows indexed from zero
func tableRows(v filter.View) []table.Row {
	rows := make([]table.Row, len(v.Rows))
	for i, r := range v.Rows {
		rows[i] = table.Row{
			strconv.Itoa(i),
			r.Country,
			string(r.Gender),
			r.AgeString(),
			string(r.Color()),
		}
	}
	return rows
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		if m.showPreview {
			m.previewGen++
			return m, m.renderPreview()
		}
		return m, nil

	case previewMsg:
		if msg.gen != m.previewGen {
			return m, nil
		}
		if msg.err != nil {
			logrus.WithError(msg.err).Warn("preview failed")
			m.showPreview = false
			return m, m.setStatus("Preview failed: "+msg.err.Error(), true)
		}
		m.preview = msg.art
		return m, nil

	case exportedMsg:
		if msg.err != nil {
			logrus.WithError(msg.err).Warn("export failed")
			return m, m.setStatus("Export failed: "+msg.err.Error(), true)
		}
		logrus.WithField("path", msg.path).Info("chart exported")
		return m, m.setStatus("Exported chart to "+msg.path, false)

	case clearStatusMsg:
		if msg.gen == m.statusGen {
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.NextFocus):
		m.setFocus(m.nextFocus(1))
		return m, nil
	case key.Matches(msg, m.keys.PrevFocus):
		m.setFocus(m.nextFocus(-1))
		return m, nil
	case key.Matches(msg, m.keys.ToggleTable):
		m.showTable = !m.showTable
		if !m.showTable && m.focus == FocusTable {
			m.setFocus(FocusCountries)
		}
		m.resize()
		return m, m.refreshPreview()
	case key.Matches(msg, m.keys.ScrollLeft):
		m.scroll = clampOffset(m.scroll-1, len(m.result.Chart.Bars), visibleBars(m.chartWidth(), m.result.Chart))
		return m, nil
	case key.Matches(msg, m.keys.ScrollRight):
		m.scroll = clampOffset(m.scroll+1, len(m.result.Chart.Bars), visibleBars(m.chartWidth(), m.result.Chart))
		return m, nil
	case key.Matches(msg, m.keys.Preview):
		m.showPreview = !m.showPreview
		m.previewGen++
		m.preview = ""
		return m, m.refreshPreview()
	case key.Matches(msg, m.keys.CopyRows):
		return m, m.copyRows()
	case key.Matches(msg, m.keys.ExportChart):
		return m, tea.Batch(m.setStatus("Exporting chart...", false), m.exportChart())
	}

	if m.focus == FocusTable {
		var cmd tea.Cmd
		m.dataTable, cmd = m.dataTable.Update(msg)
		return m, cmd
	}

	list := m.focusedList()
	changed := false
	switch {
	case key.Matches(msg, m.keys.Up):
		list.CursorUp()
	case key.Matches(msg, m.keys.Down):
		list.CursorDown()
	case key.Matches(msg, m.keys.Toggle):
		list.Toggle()
		if opts := list.Options(); len(opts) > 0 {
			opt := opts[list.Cursor()]
			logrus.WithFields(logrus.Fields{
				"list":     list.Title,
				"option":   opt,
				"selected": list.IsSelected(opt),
			}).Debug("toggled option")
		}
		changed = true
	case key.Matches(msg, m.keys.SelectAll):
		list.SelectAll()
		changed = true
	case key.Matches(msg, m.keys.SelectNone):
		list.SelectNone()
		changed = true
	}

	if changed {
		m.recompute()
		return m, m.refreshPreview()
	}
	return m, nil
}

func (m *AppModel) focusedList() *components.MultiSelect {
	if m.focus == FocusGenders {
		return &m.genders
	}
	return &m.countries
}

func (m AppModel) nextFocus(step int) Focus {
	n := 2
	if m.showTable {
		n = 3
	}
	return Focus((int(m.focus) + step + n) % n)
}

func (m *AppModel) setFocus(f Focus) {
	m.focus = f
	m.countries.Blur()
	m.genders.Blur()
	m.dataTable.Blur()
	switch f {
	case FocusCountries:
		m.countries.Focus()
	case FocusGenders:
		m.genders.Focus()
	case FocusTable:
		m.dataTable.Focus()
	}
}

func (m *AppModel) setStatus(text string, isErr bool) tea.Cmd {
	m.statusGen++
	m.status = text
	m.statusErr = isErr
	return clearStatusAfter(3*time.Second, m.statusGen)
}

// Layout

func (m AppModel) contentWidth() int {
	return m.width - m.sidebarWidth - 4
}

// chartWidth is the inner width of the content pane
func (m AppModel) chartWidth() int {
	if m.width == 0 {
		return 80
	}
	return max(10, m.contentWidth()-4)
}

// footerLines: selection summary, table toggle, status line, help line
const footerLines = 4

func (m AppModel) innerHeight() int {
	return max(chartFixedLines+3, m.height-4)
}

func (m AppModel) chartHeight() int {
	h := m.innerHeight() - footerLines
	if m.showTable {
		h /= 2
	}
	return max(chartFixedLines+3, h)
}

func (m *AppModel) resize() {
	m.dataTable.SetWidth(m.chartWidth())
	m.dataTable.SetHeight(max(3, m.innerHeight()-footerLines-m.chartHeight()-1))

	// Title, two list headers, two counters and spacing
	listHeight := max(2, (m.height-14)/2)
	m.countries.SetHeight(listHeight)
	m.genders.SetHeight(len(people.Genders))

	m.scroll = clampOffset(m.scroll, len(m.result.Chart.Bars), visibleBars(m.chartWidth(), m.result.Chart))
}

// Commands

func (m AppModel) refreshPreview() tea.Cmd {
	if !m.showPreview {
		return nil
	}
	return m.renderPreview()
}

// renderPreview rasterises the chart with go-chart and converts it to
// half-block art in the background
func (m AppModel) renderPreview() tea.Cmd {
	gen := m.previewGen
	c := m.result.Chart
	cols := m.chartWidth()
	rows := max(4, m.chartHeight()-1)
	mono := m.monoPreview

	return func() tea.Msg {
		// Roughly square pixels: a cell is about twice as tall as wide.
		data, err := plot.RenderPNG(c, cols*8, rows*16)
		if err != nil {
			return previewMsg{gen: gen, err: err}
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return previewMsg{gen: gen, err: fmt.Errorf("decoding preview: %w", err)}
		}
		if mono {
			return previewMsg{gen: gen, art: halfblock.RenderMono(img, cols, rows)}
		}
		return previewMsg{gen: gen, art: halfblock.Render(img, cols, rows)}
	}
}

func (m *AppModel) copyRows() tea.Cmd {
	var buf bytes.Buffer
	if err := dataset.WriteCSV(&buf, m.result.View.Rows); err != nil {
		return m.setStatus("Copy failed: "+err.Error(), true)
	}
	if err := m.writeClipboard(buf.String()); err != nil {
		logrus.WithError(err).Warn("clipboard write failed")
		return m.setStatus("Copy failed: "+err.Error(), true)
	}
	return m.setStatus(fmt.Sprintf("Copied %d rows", m.result.View.Len()), false)
}

func (m AppModel) exportChart() tea.Cmd {
	c := m.result.Chart
	exp := m.config.Export

	return func() tea.Msg {
		opts := plot.Options{Width: exp.Width, Height: exp.Height}
		if exp.Font != "" {
			font, err := plot.LoadFont(exp.Font)
			if err != nil {
				return exportedMsg{path: exp.Path, err: err}
			}
			opts.Font = font
		}
		err := plot.WriteFile(exp.Path, c, opts)
		return exportedMsg{path: exp.Path, err: err}
	}
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	sidebar := m.renderSidebar()

	mainContent := ContentStyle.
		Width(m.contentWidth()).
		Height(m.height - 2).
		Render(m.renderContent())

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
}

func (m AppModel) renderContent() string {
	var sections []string

	switch {
	case m.showPreview && m.preview != "":
		sections = append(sections, TitleStyle.Render(m.result.Chart.Title), m.preview)
	case m.showPreview:
		sections = append(sections, TitleStyle.Render(m.result.Chart.Title), LoadingStyle.Render("Rendering preview..."))
	default:
		sections = append(sections, renderChart(m.result.Chart, m.chartWidth(), m.chartHeight(), m.scroll))
	}

	sections = append(sections, "", SubtitleStyle.Render(m.selectionSummary()), m.renderTableSection())

	if m.status != "" {
		style := StatusStyle
		if m.statusErr {
			style = ErrorStyle
		}
		sections = append(sections, style.Render(m.status))
	}
	sections = append(sections, m.help.ShortHelpView(m.keys.ShortHelp()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// selectionSummary describes the active filters, e.g. "2 of 5 countries, genders M, F"
func (m AppModel) selectionSummary() string {
	genders := "no genders"
	if sel := m.genders.Selected(); len(sel) > 0 {
		genders = "genders " + strings.Join(sel, ", ")
	}
	return fmt.Sprintf("%d of %d countries, %s",
		len(m.countries.Selected()), len(m.countries.Options()), genders)
}

func (m AppModel) renderTableSection() string {
	style := SectionStyle
	if m.focus == FocusTable {
		style = SectionFocusedStyle
	}

	count := fmt.Sprintf(" (%d rows)", m.result.View.Len())
	if !m.showTable {
		return style.Render("▶ "+tableLabel) + HelpStyle.Render(count)
	}
	return style.Render("▼ "+tableLabel) + HelpStyle.Render(count) + "\n" + m.dataTable.View()
}

// renderSidebar renders the filter widgets
func (m AppModel) renderSidebar() string {
	width := m.sidebarWidth - 4

	items := []string{
		SidebarTitleStyle.Render("Filters"),
		m.countries.View(width),
		"",
		m.genders.View(width),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, items...)

	used := lipgloss.Height(content) + 4
	if m.height > used {
		content += strings.Repeat("\n", m.height-used-2)
	}
	content += "\n" + SidebarHelpStyle.Render("? Help  q Quit")

	return SidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(content)
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	h := m.help
	h.ShowAll = true

	helpText := titleStyle.Render(layout.Title) + "\n\n" +
		h.FullHelpView(m.keys.FullHelp()) + "\n\n" +
		lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true).
			Render("Press any key to close")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSecondary).
		Padding(1, 2)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxStyle.Render(helpText))
}
