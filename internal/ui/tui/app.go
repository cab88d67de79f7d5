package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/caiohportella/skillglyph/internal/domain"
	"github.com/caiohportella/skillglyph/internal/usecase"
)

type screen int

const (
	screenHome screen = iota
	screenIcons
	screenResolver
	screenShowcase
	screenSettings
)

// searchLimit caps the icon browser result list.
const searchLimit = 50

type menuItem struct {
	title string
	desc  string
	scr   screen
	quit  bool
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type model struct {
	theme Theme
	deps  Deps

	scr    screen
	menu   list.Model
	height int

	cwd            string
	workspaceFound bool
	workspaceRoot  string

	search    *usecase.SearchIcons
	query     textinput.Model
	searchSeq int
	results   []domain.Icon
	cursor    int
	// selected is the icon id picked in the browser; the playground uses it as the explicit icon.
	selected string

	skill      textinput.Model
	resolution domain.Resolution
	resolved   bool

	showcase domain.Showcase
	loading  bool

	toast string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	items := []list.Item{
		menuItem{title: "Icons", desc: "Search the icon registry and pick an icon", scr: screenIcons},
		menuItem{title: "Resolver", desc: "Type a skill name and see which icon it gets", scr: screenResolver},
		menuItem{title: "Showcase", desc: "Skills from the workspace catalog, grouped by category", scr: screenShowcase},
		menuItem{title: "Settings", desc: "Workspace and defaults", scr: screenSettings},
		menuItem{title: "Quit", desc: "Exit skillglyph", quit: true},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "skillglyph"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	q := textinput.New()
	q.Placeholder = "search icons (e.g. react, database)"
	q.Prompt = "/ "
	q.CharLimit = 64

	s := textinput.New()
	s.Placeholder = "skill name (e.g. Apache Kafka)"
	s.Prompt = "> "
	s.CharLimit = 80

	m := model{
		theme: t,
		deps:  deps,
		scr:   screenHome,
		menu:  l,
		query: q,
		skill: s,
	}
	if deps.Resolver != nil {
		m.search = usecase.NewSearchIcons(deps.Resolver.Registry())
	}
	return m
}

func (m model) Init() tea.Cmd { return cmdRefreshWorkspace(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.height = h
		m.menu.SetSize(w-4, h-10)
		m.query.Width = w - 12
		m.skill.Width = w - 12
		return m, nil

	case workspaceRefreshedMsg:
		m.cwd = msg.cwd
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace initialized at " + msg.root
		return m, cmdRefreshWorkspace(m.deps)

	case searchDebouncedMsg:
		if msg.seq != m.searchSeq {
			return m, nil
		}
		m.runSearch()
		return m, nil

	case showcaseLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.showcase = msg.showcase
		m.toast = ""
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.scr {
		case screenHome:
			return m.updateHome(msg)
		case screenIcons:
			return m.updateIcons(msg)
		case screenResolver:
			return m.updateResolver(msg)
		case screenShowcase, screenSettings:
			return m.updateStatic(msg)
		}
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.menu.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "enter":
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		if it.quit {
			return m, tea.Quit
		}
		return m.open(it.scr)
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) open(s screen) (tea.Model, tea.Cmd) {
	m.scr = s
	m.toast = ""

	switch s {
	case screenIcons:
		m.skill.Blur()
		cmd := m.query.Focus()
		return m, cmd
	case screenResolver:
		m.query.Blur()
		m.refreshResolution()
		cmd := m.skill.Focus()
		return m, cmd
	case screenShowcase:
		if !m.workspaceFound {
			m.toast = "No workspace found. Create one in Settings."
			return m, nil
		}
		m.loading = true
		return m, cmdLoadShowcase(m.deps, m.workspaceRoot)
	}
	return m, nil
}

func (m model) home() model {
	m.scr = screenHome
	m.query.Blur()
	m.skill.Blur()
	return m
}

func (m model) updateIcons(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.home(), nil
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "ctrl+n":
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		m.toggleSelected()
		return m, nil
	}

	before := m.query.Value()
	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	if m.query.Value() == before {
		return m, cmd
	}

	m.searchSeq++
	return m, tea.Batch(cmd, cmdDebounceSearch(m.searchSeq))
}

func (m *model) runSearch() {
	m.cursor = 0
	if m.search == nil {
		m.results = nil
		return
	}
	m.results = m.search.Execute(m.query.Value(), searchLimit)
}

// toggleSelected picks the icon under the cursor, or clears it when it is already picked.
// A pick also resets the search box; any pending debounce tick goes stale.
func (m *model) toggleSelected() {
	if m.cursor < 0 || m.cursor >= len(m.results) {
		return
	}
	id := m.results[m.cursor].ID
	if m.selected == id {
		m.selected = ""
		return
	}
	m.selected = id
	m.query.SetValue("")
	m.results = nil
	m.cursor = 0
	m.searchSeq++
}

func (m model) updateResolver(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.home(), nil
	case "ctrl+x":
		m.selected = ""
		m.refreshResolution()
		return m, nil
	}

	var cmd tea.Cmd
	m.skill, cmd = m.skill.Update(msg)
	m.refreshResolution()
	return m, cmd
}

func (m *model) refreshResolution() {
	if m.deps.Resolver == nil {
		m.resolved = false
		return
	}
	m.resolution = m.deps.Resolver.Explain(m.skill.Value(), m.selected)
	m.resolved = true
}

func (m model) updateStatic(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b":
		return m.home(), nil
	case "q":
		return m.home(), nil
	case "r":
		if m.scr == screenShowcase {
			return m.open(screenShowcase)
		}
	case "enter":
		if m.scr == screenSettings {
			root := m.cwd
			if m.workspaceFound {
				root = m.workspaceRoot
			}
			if root == "" {
				root = "."
			}
			return m, cmdInitWorkspaceHere(m.deps, root)
		}
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("skillglyph") + "\n" +
		m.theme.Subtitle.Render("Portfolio skill icons: browse, resolve, showcase") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Help.Render("No workspace (defaults). Create one in Settings.")
	}

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Error.Render(m.toast)
	}

	var body, help string
	switch m.scr {
	case screenHome:
		body = m.menu.View()
		help = "↑/↓ navigate • enter open • / filter • q quit"

	case screenIcons:
		ic, picked := m.selectedIcon()
		body = m.theme.Title.Render("Icons") + "\n\n" + m.query.View() + "\n\n" +
			renderIconRows(m.theme, m.results, m.cursor, m.selected, m.query.Value(), m.visibleRows()) +
			"\n\n" + renderSelected(m.theme, ic, picked)
		help = "type to search • ↑/↓ move • enter select/unselect • esc back"

	case screenResolver:
		body = m.theme.Title.Render("Resolver") + "\n\n" + m.skill.View() + "\n\n"
		if m.resolved {
			body += renderResolution(m.theme, m.resolution, m.selected)
		} else {
			body += "Resolver not configured."
		}
		help = "type a skill name • ctrl+x clear picked icon • esc back"

	case screenShowcase:
		body = m.theme.Title.Render("Showcase") + "\n\n"
		switch {
		case m.loading:
			body += "Loading…"
		case m.showcase.SkillCount() == 0:
			body += "(no skills)"
		default:
			body += renderShowcase(m.theme, m.showcase)
		}
		help = "r reload • esc/b back"

	case screenSettings:
		body = m.theme.Title.Render("Settings") + "\n\n" + renderSettings(m)
		help = "enter init workspace • esc/b back"

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}

	return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.theme.Card.Render(body) + toast + "\n" + m.theme.Help.Render(help))
}

func (m model) visibleRows() int {
	rows := m.height - 18
	if rows < 5 {
		return 10
	}
	return rows
}

func (m model) selectedIcon() (domain.Icon, bool) {
	if m.selected == "" || m.deps.Resolver == nil {
		return domain.Icon{}, false
	}
	return m.deps.Resolver.Registry().Lookup(m.selected)
}

func renderSettings(m model) string {
	var b strings.Builder
	if m.workspaceFound {
		b.WriteString("Workspace: " + m.workspaceRoot + "\n")
	} else {
		b.WriteString("Workspace: (none)\n")
	}
	b.WriteString("Locale:    " + m.deps.Locale + "\n")
	if m.deps.Resolver != nil {
		b.WriteString(fmt.Sprintf("Default:   %s\n", m.deps.Resolver.DefaultIcon().ID))
		b.WriteString(fmt.Sprintf("Icons:     %d\n", m.deps.Resolver.Registry().Len()))
	}
	b.WriteString("\nenter scaffolds skillglyph.yaml, skills/ and showcase/ here (existing files are kept).")
	return b.String()
}
