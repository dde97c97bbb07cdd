package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/atomicstack/text-style-control/internal/canvas"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
)

const (
	splitMinPanel    = 40
	splitPanelShare  = 0.6
	inlineCanvasRows = 6
	bottomBarRows    = 2
)

// row is one line of the menu column. Rendered rows (forms, the inline
// canvas, the filter prompt) already carry ANSI escapes and are only clipped.
// Item rows paint their leading bar with bar and the rest with style.
type row struct {
	text     string
	style    *lipgloss.Style
	bar      *lipgloss.Style
	rendered bool
}

func (r row) render(width int) string {
	text := r.text
	if width > 0 && lipgloss.Width(text) > width {
		text = truncate.StringWithTail(text, uint(width), "…")
	}
	if r.rendered {
		return text
	}
	if r.bar != nil && text != "" {
		_, n := utf8.DecodeRuneInString(text)
		return paint(r.bar, text[:n]) + paint(r.style, text[n:])
	}
	return paint(r.style, text)
}

func renderRows(rows []row, width int) string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.render(width)
	}
	return strings.Join(out, "\n")
}

func renderedRows(block string) []row {
	lines := strings.Split(block, "\n")
	rows := make([]row, len(lines))
	for i, l := range lines {
		rows[i] = row{text: l, rendered: true}
	}
	return rows
}

// fitWidth pads or clips an ANSI-styled line to exactly width columns.
func fitWidth(line string, width int) string {
	if lipgloss.Width(line) > width {
		line = truncate.StringWithTail(line, uint(width), "…")
	}
	return padding.String(line, uint(width))
}

// canvasPanelWidth is the width of the canvas panel to the right of the
// menu, or 0 when the terminal is too narrow to split.
func (m *Model) canvasPanelWidth() int {
	if m.width <= 0 {
		return 0
	}
	if w := int(float64(m.width) * splitPanelShare); w >= splitMinPanel {
		return w
	}
	return 0
}

func (m *Model) hasSidePanel() bool {
	return m.canvas != nil && m.canvasPanelWidth() > 0
}

// View implements tea.Model.
func (m *Model) View() string {
	header := m.menuHeader()
	if m.hasSidePanel() {
		return m.splitView(header)
	}
	return m.stackedView(header)
}

// menuRows is the left column: the open form, or the current level with its
// pending, info and footer lines.
func (m *Model) menuRows(header string, width int) []row {
	if m.mode == ModePromptForm && m.form != nil {
		return renderedRows(m.viewFormWithHeader(header, width))
	}
	var rows []row
	if header != "" {
		rows = append(rows, row{text: header, style: styles.Header})
	}
	rows = append(rows, m.itemRows(width)...)
	if m.loading && m.pendingLabel != "" {
		rows = append(rows, row{text: fmt.Sprintf("Applying %s…", m.pendingLabel), style: styles.Loading})
	}
	if info := m.currentInfo(); info != "" {
		rows = append(rows, row{}, row{text: info, style: styles.Info})
	}
	if m.showFooter {
		rows = append(rows, row{}, row{text: footerHelp, style: styles.Footer})
	}
	return rows
}

// itemRows renders the visible window of the current level.
func (m *Model) itemRows(width int) []row {
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	if len(current.Items) == 0 {
		msg := "(no entries)"
		if current.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", current.Filter)
		}
		return []row{{text: msg, style: styles.Info}}
	}
	m.syncViewport(current)
	from, to := 0, len(current.Items)
	if visible := m.maxVisibleItems(); visible > 0 && to > visible {
		from = max(0, min(current.ViewportOffset, to-visible))
		current.ViewportOffset = from
		to = from + visible
	}
	rows := make([]row, 0, to-from)
	for i := from; i < to; i++ {
		rows = append(rows, itemRow(current.Items[i].Label, i == current.Cursor, width))
	}
	return rows
}

// itemRow pads the label to width so the selection background spans the
// column.
func itemRow(label string, selected bool, width int) row {
	r := row{text: "▌ " + label, style: styles.Item, bar: styles.ItemIndicator}
	if selected {
		r.style, r.bar = styles.SelectedItem, styles.SelectedItemIndicator
	}
	if width > 0 {
		r.text = padding.String(r.text, uint(width))
	}
	return r
}

func (m *Model) bottomBar() []row {
	prompt := row{rendered: true}
	if m.mode != ModePromptForm {
		prompt.text = m.filterPrompt()
	}
	return []row{m.statusLine(), prompt}
}

// stackedView draws the canvas as a short block under the menu.
func (m *Model) stackedView(header string) string {
	rows := m.menuRows(header, m.width)
	if m.canvas != nil {
		width := m.width
		if width <= 0 {
			width = splitMinPanel
		}
		rows = append(rows, row{}, row{text: m.canvasTitle(), style: styles.CanvasTitle})
		rows = append(rows, renderedRows(m.canvas.Render(width, inlineCanvasRows))...)
	}
	if limit := m.height - bottomBarRows; limit > 0 && len(rows) > limit {
		rows = append(rows[:limit-1:limit-1], row{text: "…"})
	}
	return renderRows(append(rows, m.bottomBar()...), m.width)
}

// splitView draws the menu on the left and the bordered canvas on the right,
// with the bottom bar across both.
func (m *Model) splitView(header string) string {
	panelW := m.canvasPanelWidth()
	menuW := m.width - panelW
	height := max(m.height-bottomBarRows, 3)

	rows := m.menuRows(header, menuW)
	left := make([]string, height)
	for i := range left {
		var line string
		if i < len(rows) {
			line = rows[i].render(menuW)
		}
		left[i] = fitWidth(line, menuW)
	}
	top := lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(left, "\n"), m.canvasPanel(panelW, height))
	return top + "\n" + renderRows(m.bottomBar(), m.width)
}

func (m *Model) canvasTitle() string {
	if m.canvas == nil {
		return ""
	}
	return canvas.Title(m.canvas.StyledElement().Snapshot())
}

func (m *Model) canvasMeta() string {
	snap := m.canvas.StyledElement().Snapshot()
	return fmt.Sprintf(" %s %s %gx ", snap.Color.Hex(), snap.Justification, snap.LineHeight)
}

// canvasPanel frames the canvas in a rounded border of exactly width by
// height cells.
func (m *Model) canvasPanel(width, height int) string {
	b := lipgloss.RoundedBorder()
	edge := styles.CanvasBorder
	innerW, innerH := max(width-2, 1), max(height-2, 1)

	body := strings.Split(m.canvas.Render(innerW, innerH), "\n")
	lines := make([]string, 0, innerH+2)
	lines = append(lines, m.panelTop(b, width))
	for i := 0; i < innerH; i++ {
		var content string
		if i < len(body) {
			content = body[i]
		}
		lines = append(lines, edge.Render(b.Left)+fitWidth(content, innerW)+edge.Render(b.Right))
	}
	lines = append(lines, edge.Render(b.BottomLeft+strings.Repeat(b.Bottom, innerW)+b.BottomRight))
	return strings.Join(lines, "\n")
}

// panelTop carries the style summary on the left of the top border and the
// color, justification and line height on the right. The meta goes first
// when the panel is narrow, then the title collapses to an ellipsis.
func (m *Model) panelTop(b lipgloss.Border, width int) string {
	title, meta := " "+m.canvasTitle()+" ", m.canvasMeta()
	fill := func() int { return width - 4 - lipgloss.Width(title) - lipgloss.Width(meta) }
	if fill() < 0 {
		meta = ""
	}
	if fill() < 0 {
		title = " … "
	}
	edge := styles.CanvasBorder
	return edge.Render(b.TopLeft+b.Top) +
		styles.CanvasTitle.Render(title) +
		edge.Render(strings.Repeat(b.Top, max(fill(), 0))) +
		styles.CanvasMeta.Render(meta) +
		edge.Render(b.Top+b.TopRight)
}

// menuHeader is the breadcrumb above the menu. The main menu shows the root
// title; below it only submenus are named, unless a submenu was opened as
// the root.
func (m *Model) menuHeader() string {
	if len(m.stack) == 0 {
		return ""
	}
	root := strings.TrimSpace(m.rootTitle)
	if root == "" {
		root = defaultRootTitle
	}
	var crumbs []string
	if len(m.stack) == 1 || m.rootMenuID != "" {
		crumbs = append(crumbs, root)
	}
	for _, l := range m.stack[1:] {
		if name := levelCrumb(l); name != "" {
			crumbs = append(crumbs, name)
		}
	}
	if len(crumbs) == 0 {
		return root
	}
	return strings.Join(crumbs, menuHeaderSeparator)
}

// levelCrumb names a level in the breadcrumb. Font group IDs are synthetic,
// so group levels go by their title ("a to c (12)").
func levelCrumb(l *level) string {
	if l == nil {
		return ""
	}
	name := strings.TrimSpace(l.ID)
	if (name == "" || strings.Contains(name, ":group-")) && strings.TrimSpace(l.Title) != "" {
		name = l.Title
	}
	name = name[strings.LastIndex(name, ":")+1:]
	return strings.Join(strings.Fields(strings.ToLower(crumbCleaner.Replace(name))), " ")
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport(m.currentLevel())
	return nil
}

// maxVisibleItems is how many item rows fit once the header, bottom bar and
// optional blocks are placed; -1 until the height is known.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := bottomBarRows
	if m.menuHeader() != "" {
		used++
	}
	if m.loading && m.pendingLabel != "" {
		used++
	}
	if m.currentInfo() != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	if m.canvas != nil && !m.hasSidePanel() {
		used += 2 + inlineCanvasRows
	}
	return max(m.height-used, 1)
}
