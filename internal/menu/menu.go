// Package menu defines the static navigation data for the vtpod UI: the
// closed set of screens, the prompt origins that bind input submissions to
// actions, and the ordered entry lists for every list screen. The package is
// pure data so the UI's transition logic can be tested without any I/O.
package menu

// TargetKind discriminates what selecting a menu entry does.
type TargetKind int

const (
	// TargetGoto replaces the current screen.
	TargetGoto TargetKind = iota
	// TargetQuit terminates the program.
	TargetQuit
	// TargetPrompt opens the input screen bound to an origin.
	TargetPrompt
	// TargetCommand dispatches a captured external command.
	TargetCommand
)

// CommandID names a captured command bound directly to a menu entry.
type CommandID string

const (
	CommandVTSwitch   CommandID = "vt:switch"
	CommandPodmanList CommandID = "podman:list"
)

// Target describes the effect of selecting an entry. Exactly the fields for
// the given Kind are meaningful.
type Target struct {
	Kind    TargetKind
	Screen  ScreenKind
	Prompt  string
	Origin  PromptOrigin
	Command CommandID
	Arg     string
}

// Entry is a selectable row on a list screen. Detail is a short annotation
// rendered in a second column.
type Entry struct {
	ID     string
	Label  string
	Detail string
	Target Target
}

type screenDef struct {
	Title   string
	Entries []Entry
}

// Definition is the read-only mapping from list screens to their entries.
// Built once at startup and never mutated.
type Definition struct {
	screens map[ScreenKind]screenDef
}

func goTo(k ScreenKind) Target {
	return Target{Kind: TargetGoto, Screen: k}
}

func prompt(text string, origin PromptOrigin) Target {
	return Target{Kind: TargetPrompt, Prompt: text, Origin: origin}
}

func command(id CommandID, arg string) Target {
	return Target{Kind: TargetCommand, Command: id, Arg: arg}
}

// Default returns the standard menu tree.
func Default() *Definition {
	return &Definition{screens: map[ScreenKind]screenDef{
		ScreenMain: {
			Title: "Main Menu",
			Entries: []Entry{
				{ID: "vt", Label: "VT Menu", Detail: "virtual terminal tools", Target: goTo(ScreenVT)},
				{ID: "podman", Label: "Podman Menu", Detail: "container tools", Target: goTo(ScreenPodman)},
				{ID: "quit", Label: "Quit", Detail: "leave the menu", Target: Target{Kind: TargetQuit}},
			},
		},
		ScreenVT: {
			Title: "VT Menu",
			Entries: []Entry{
				{ID: "vt:change", Label: "Change VT", Detail: "ask for a number", Target: prompt("Enter VT number (e.g. 1..12)", OriginChangeVT)},
				{ID: "vt:desktops", Label: "Desktops", Detail: "known desktop VTs", Target: goTo(ScreenDesktops)},
				{ID: "vt:back", Label: "Back to Main Menu", Target: goTo(ScreenMain)},
			},
		},
		ScreenDesktops: {
			Title: "Desktops",
			Entries: []Entry{
				{ID: "desktop:x11", Label: "Known: X11 VT", Detail: "chvt 7", Target: command(CommandVTSwitch, "7")},
				{ID: "desktop:wayland", Label: "Known: Wayland VT", Detail: "chvt 8", Target: command(CommandVTSwitch, "8")},
				{ID: "desktop:back", Label: "Back to VT Menu", Target: goTo(ScreenVT)},
			},
		},
		ScreenPodman: {
			Title: "Podman Menu",
			Entries: []Entry{
				{ID: "podman:list", Label: "List containers", Detail: "podman ps -a", Target: command(CommandPodmanList, "")},
				{ID: "podman:start", Label: "Start container", Detail: "id or name", Target: prompt("Start container (id or name)", OriginPodmanStart)},
				{ID: "podman:stop", Label: "Stop container", Detail: "id or name", Target: prompt("Stop container (id or name)", OriginPodmanStop)},
				{ID: "podman:shell", Label: "Open shell in container", Detail: "podman exec -it", Target: prompt("Open shell in container (id or name)", OriginPodmanShell)},
				{ID: "podman:back", Label: "Back to Main Menu", Target: goTo(ScreenMain)},
			},
		},
		ScreenOutput: {Title: "Output"},
	}}
}

// Title returns the display title for a screen kind.
func (d *Definition) Title(k ScreenKind) string {
	return d.screens[k].Title
}

// Entries returns the ordered entry list for a screen. Nil for screens
// without a list.
func (d *Definition) Entries(k ScreenKind) []Entry {
	return d.screens[k].Entries
}

// Len returns the number of entries on a screen.
func (d *Definition) Len(k ScreenKind) int {
	return len(d.screens[k].Entries)
}

// Entry returns the entry at index on the given screen.
func (d *Definition) Entry(k ScreenKind, index int) (Entry, bool) {
	entries := d.screens[k].Entries
	if index < 0 || index >= len(entries) {
		return Entry{}, false
	}
	return entries[index], true
}
