package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/vishwas-tech29/Smart-Research-Assistant/internal/assistant"
	"github.com/vishwas-tech29/Smart-Research-Assistant/internal/document"
	"github.com/vishwas-tech29/Smart-Research-Assistant/internal/session"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Assistant assistant.Client
	StartDir  string
	Logger    *zap.Logger
}

type stage int

const (
	stageMain stage = iota
	stageBrowse
)

const (
	appTitle    = "Smart Research Assistant"
	heroTagline = "Upload a document and challenge your comprehension."
)

const (
	minViewportWidth          = 40
	viewportHorizontalPadding = 4
	composerPlaceholder       = "Ask anything about the document…"
)

type browseEntry struct {
	Name string
	Path string
	Dir  bool
	Size int64
}

type browserState struct {
	dir     string
	entries []browseEntry
	cursor  int
	loading bool
	errText string
}

type model struct {
	config Config
	stage  stage

	sess *session.Session
	jobs *jobBus

	composer textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	browser  browserState

	width        int
	height       int
	infoMessage  string
	errorMessage string
	helpVisible  bool
}

type uploadResultMsg struct {
	fileID  string
	outcome session.Outcome
	err     error
}

type answerResultMsg struct {
	question string
	report   string
	err      error
}

type browseLoadedMsg struct {
	dir     string
	entries []browseEntry
	err     error
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	composer := textinput.New()
	composer.Placeholder = composerPlaceholder
	composer.CharLimit = 200
	composer.Width = 70

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	vp := viewport.New(80, 14)
	vp.MouseWheelEnabled = true

	startDir := config.StartDir
	if startDir == "" {
		if wd, err := os.Getwd(); err == nil {
			startDir = wd
		} else {
			startDir = "."
		}
	}

	return &model{
		config:      config,
		stage:       stageMain,
		sess:        session.New(),
		jobs:        newJobBus(config.Logger),
		composer:    composer,
		spinner:     spin,
		viewport:    vp,
		browser:     browserState{dir: startDir},
		infoMessage: "Press o to choose a PDF, then u to upload it.",
	}
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if envelope, ok := msg.(jobResultEnvelope); ok {
		msg = envelope.Payload
	}
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.sess.Busy() || m.browser.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			return m.handleEsc()
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.stage == stageMain {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case jobSignalMsg:
		return m, nil
	case uploadResultMsg:
		return m.handleUploadResult(msg)
	case answerResultMsg:
		return m.handleAnswerResult(msg)
	case browseLoadedMsg:
		return m.handleBrowseLoaded(msg)
	}
	return m, nil
}

func (m *model) handleEsc() (tea.Model, tea.Cmd) {
	switch m.stage {
	case stageBrowse:
		m.closeBrowser()
		return m, nil
	default:
		if m.composer.Focused() {
			m.composer.Blur()
			return m, nil
		}
		if m.helpVisible {
			m.helpVisible = false
			m.infoMessage = "Help hidden."
			return m, nil
		}
		return m, tea.Quit
	}
}

func (m *model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.stage {
	case stageBrowse:
		return m.handleBrowseKey(key)
	default:
		if m.composer.Focused() {
			return m.handleComposerKey(key)
		}
		return m.handleCommandKey(key)
	}
}

func (m *model) handleCommandKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "o":
		return m, m.openBrowser()
	case "u":
		return m, m.startUpload()
	case "a", "i":
		m.composer.Focus()
		return m, textinput.Blink
	case "enter":
		// Enter outside the composer re-submits the current question, so a
		// retry after failure does not require refocusing.
		return m, m.submitQuestion()
	case "?":
		m.helpVisible = !m.helpVisible
		if m.helpVisible {
			m.infoMessage = "Help overlay open. Press ? to hide."
		} else {
			m.infoMessage = "Help overlay hidden."
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(key)
	return m, cmd
}

func (m *model) handleComposerKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Type == tea.KeyEnter {
		return m, m.submitQuestion()
	}
	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(key)
	m.sess.SetQuestion(m.composer.Value())
	return m, cmd
}

func (m *model) submitQuestion() tea.Cmd {
	question, ok := m.sess.BeginAsk()
	if !ok {
		if m.sess.Asking() {
			m.infoMessage = "A question is already being answered."
		} else {
			m.infoMessage = "Type a question first."
		}
		return nil
	}
	m.errorMessage = ""
	m.infoMessage = "Generating report…"
	return tea.Batch(
		m.spinner.Tick,
		m.jobs.Start(jobKindAnswer, answerJob(m.config.Assistant, question)),
	)
}

func (m *model) startUpload() tea.Cmd {
	file := m.sess.File()
	if file == nil {
		m.infoMessage = "Choose a document first (press o)."
		return nil
	}
	if !m.sess.BeginUpload() {
		m.infoMessage = "Upload already running."
		return nil
	}
	m.errorMessage = ""
	m.infoMessage = fmt.Sprintf("Uploading %s…", file.Name)
	return tea.Batch(
		m.spinner.Tick,
		m.jobs.Start(jobKindUpload, uploadJob(m.config.Assistant, *file)),
	)
}

func (m *model) openBrowser() tea.Cmd {
	m.stage = stageBrowse
	m.browser.loading = true
	m.browser.errText = ""
	return tea.Batch(
		m.spinner.Tick,
		m.jobs.Start(jobKindBrowse, readDirJob(m.browser.dir)),
	)
}

func (m *model) closeBrowser() {
	m.sess.HoverEnd()
	m.stage = stageMain
}

func (m *model) handleBrowseKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.browser.loading {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		m.moveBrowserCursor(-1)
	case "down", "j":
		m.moveBrowserCursor(1)
	case "left", "h", "backspace":
		return m, m.browseInto(filepath.Dir(m.browser.dir))
	case "enter":
		return m.selectBrowserEntry()
	}
	return m, nil
}

func (m *model) moveBrowserCursor(delta int) {
	if len(m.browser.entries) == 0 {
		return
	}
	cursor := m.browser.cursor + delta
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(m.browser.entries)-1 {
		cursor = len(m.browser.entries) - 1
	}
	m.browser.cursor = cursor
	m.syncHover()
}

// syncHover maps the browser cursor onto the drop-target hover flag: resting
// on a file row arms the target, anything else clears it.
func (m *model) syncHover() {
	if m.stage == stageBrowse && m.browser.cursor < len(m.browser.entries) {
		if entry := m.browser.entries[m.browser.cursor]; !entry.Dir {
			m.sess.HoverStart()
			return
		}
	}
	m.sess.HoverEnd()
}

func (m *model) selectBrowserEntry() (tea.Model, tea.Cmd) {
	if m.browser.cursor >= len(m.browser.entries) {
		return m, nil
	}
	entry := m.browser.entries[m.browser.cursor]
	if entry.Dir {
		return m, m.browseInto(entry.Path)
	}
	file, err := document.Stat(entry.Path)
	if err != nil {
		m.sess.HoverEnd()
		m.browser.errText = err.Error()
		return m, nil
	}
	if !m.sess.Drop(file) {
		// Not a PDF: the drop is ignored without an error, matching how a
		// drop zone discards unsupported payloads.
		return m, nil
	}
	m.stage = stageMain
	m.errorMessage = ""
	m.infoMessage = fmt.Sprintf("Selected %s (%s%s). Press u to upload.", file.Name, humanSize(file.Size), pagesSuffix(file.Pages))
	return m, nil
}

func (m *model) browseInto(dir string) tea.Cmd {
	m.sess.HoverEnd()
	m.browser.loading = true
	m.browser.errText = ""
	return tea.Batch(
		m.spinner.Tick,
		m.jobs.Start(jobKindBrowse, readDirJob(dir)),
	)
}

func (m *model) handleBrowseLoaded(msg browseLoadedMsg) (tea.Model, tea.Cmd) {
	m.browser.loading = false
	if msg.err != nil {
		m.browser.errText = msg.err.Error()
		m.sess.HoverEnd()
		return m, nil
	}
	m.browser.dir = msg.dir
	m.browser.entries = msg.entries
	m.browser.cursor = 0
	m.browser.errText = ""
	m.syncHover()
	return m, nil
}

func (m *model) handleUploadResult(msg uploadResultMsg) (tea.Model, tea.Cmd) {
	outcome := msg.outcome
	if msg.err != nil {
		outcome = session.Failure("upload failed: " + msg.err.Error())
	}
	m.sess.FinishUpload(outcome)
	if outcome.Status == session.StatusSuccess {
		m.errorMessage = ""
		m.infoMessage = "Upload complete. Ask a question with a."
	} else {
		m.errorMessage = outcome.Message
		m.infoMessage = "Upload failed. Press u to retry."
	}
	return m, nil
}

func (m *model) handleAnswerResult(msg answerResultMsg) (tea.Model, tea.Cmd) {
	m.sess.FinishAsk(msg.report, msg.err)
	if msg.err != nil {
		m.errorMessage = msg.err.Error()
		m.infoMessage = "Question failed. Press Enter to retry."
		return m, nil
	}
	m.errorMessage = ""
	m.infoMessage = "Report ready. Ask another question."
	m.refreshReport()
	m.viewport.GotoTop()
	return m, nil
}

func (m *model) resize(width, height int) {
	m.width = width
	m.height = height
	vpWidth := width - viewportHorizontalPadding
	if vpWidth < minViewportWidth {
		vpWidth = minViewportWidth
	}
	m.viewport.Width = vpWidth
	vpHeight := height - 14
	if vpHeight < 5 {
		vpHeight = 5
	}
	m.viewport.Height = vpHeight
	composerWidth := vpWidth - 4
	if composerWidth < 20 {
		composerWidth = 20
	}
	m.composer.Width = composerWidth
	m.refreshReport()
}
