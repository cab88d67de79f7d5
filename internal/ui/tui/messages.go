package tui

import "github.com/caiohportella/skillglyph/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

// searchDebouncedMsg fires after the search input has been idle; seq identifies the keystroke that scheduled it.
type searchDebouncedMsg struct {
	seq int
}

type showcaseLoadedMsg struct {
	showcase domain.Showcase
	err      error
}
