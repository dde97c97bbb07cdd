package ui

import (
	"reflect"
	"strings"

	"github.com/atomicstack/text-style-control/internal/backend"
	"github.com/atomicstack/text-style-control/internal/canvas"
	"github.com/atomicstack/text-style-control/internal/control"
	"github.com/atomicstack/text-style-control/internal/data/dispatcher"
	"github.com/atomicstack/text-style-control/internal/menu"
	"github.com/atomicstack/text-style-control/internal/state"
	"github.com/atomicstack/text-style-control/internal/theme"
	"github.com/atomicstack/text-style-control/internal/ui/command"
	uistate "github.com/atomicstack/text-style-control/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

type Mode int

const (
	ModeMenu Mode = iota
	ModePromptForm
)

const (
	menuHeaderSeparator = " → "
	defaultRootTitle    = "text style"
)

var styles = theme.Default()

var crumbCleaner = strings.NewReplacer("_", " ", "-", " ")

type msgHandler func(tea.Msg) tea.Cmd

func newLevel(id, title string, items []menu.Item, node *menu.Node) *level {
	return uistate.NewLevel(id, title, items, node)
}

// Options configures a Model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	RootMenu   string
	ExportPath string
	// Fonts seeds the family list before the watcher reports.
	Fonts state.FontStore
}

// Model implements the Bubble Tea model for the text style controls.
type Model struct {
	stack             []*level
	loading           bool
	pendingID         string
	pendingLabel      string
	errMsg            string
	info              notice
	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	backend           *backend.Watcher
	backendState      map[backend.Kind]error
	backendLastErr    string
	showFooter        bool
	verbose           bool
	form              *menu.PromptForm
	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler

	registry   *menu.Registry
	bus        *command.Bus
	mode       Mode
	rootMenuID string
	rootTitle  string
	exportPath string
	controller *control.Controller
	canvas     *canvas.Canvas
	fonts      state.FontStore
	dispatcher *dispatcher.Dispatcher
}

// NewModel initialises the UI state with the root menu. The controller must
// be bound to cv.
func NewModel(ctrl *control.Controller, cv *canvas.Canvas, watcher *backend.Watcher, opts Options) *Model {
	fonts := opts.Fonts
	if fonts == nil {
		fonts = state.NewFontStore()
	}
	m := &Model{
		registry:     menu.BuildRegistry(fonts.Groups()),
		bus:          command.New(),
		backend:      watcher,
		backendState: map[backend.Kind]error{},
		showFooter:   opts.ShowFooter,
		verbose:      opts.Verbose,
		mode:         ModeMenu,
		rootTitle:    defaultRootTitle,
		exportPath:   opts.ExportPath,
		controller:   ctrl,
		canvas:       cv,
		fonts:        fonts,
		dispatcher:   dispatcher.New(fonts),
	}
	root := newLevel("root", "Main Menu", menu.RootItems(m.menuContext()), m.registry.Root())
	m.stack = []*level{root}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.syncViewport(root)
	m.filterCursor = newFilterCursor()
	m.applyRootMenuOverride(opts.RootMenu)
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages. Every style mutation happens here,
// on the program's single update goroutine.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handled, cmd := m.handleActiveForm(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(categoryLoadedMsg{}):  m.handleCategoryLoadedMsg,
		reflect.TypeOf(menu.ActionResult{}):  m.handleActionResultMsg,
		reflect.TypeOf(menu.ControlIntent{}): m.handleControlIntentMsg,
		reflect.TypeOf(menu.PromptRequest{}): m.handlePromptRequestMsg,
		reflect.TypeOf(menu.PromptAnswer{}):  m.handlePromptAnswerMsg,
		reflect.TypeOf(menu.ExportPrompt{}):  m.handleExportPromptMsg,
		reflect.TypeOf(backendEventMsg{}):    m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):     m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Controller exposes the style controller driving the canvas.
func (m *Model) Controller() *control.Controller { return m.controller }

// Canvas exposes the canvas the model draws.
func (m *Model) Canvas() *canvas.Canvas { return m.canvas }
