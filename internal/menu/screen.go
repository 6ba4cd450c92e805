package menu

import "strings"

// ScreenKind identifies one of the closed set of screens. Keeping the set
// closed lets every switch over kinds stay exhaustive as screens are added.
type ScreenKind int

const (
	ScreenMain ScreenKind = iota
	ScreenVT
	ScreenDesktops
	ScreenPodman
	ScreenOutput
	ScreenInput
)

// PromptOrigin identifies which action consumes a submitted input value.
type PromptOrigin int

const (
	OriginChangeVT PromptOrigin = iota
	OriginPodmanStart
	OriginPodmanStop
	OriginPodmanShell
)

// Screen is a tagged variant. Prompt and Origin are meaningful only when
// Kind == ScreenInput.
type Screen struct {
	Kind   ScreenKind
	Prompt string
	Origin PromptOrigin
}

func (k ScreenKind) String() string {
	switch k {
	case ScreenMain:
		return "main"
	case ScreenVT:
		return "vt"
	case ScreenDesktops:
		return "desktops"
	case ScreenPodman:
		return "podman"
	case ScreenOutput:
		return "output"
	case ScreenInput:
		return "input"
	}
	return "unknown"
}

// IsList reports whether the screen kind carries a selectable item list.
func (k ScreenKind) IsList() bool {
	switch k {
	case ScreenMain, ScreenVT, ScreenDesktops, ScreenPodman:
		return true
	}
	return false
}

// Parent returns the screen reached by Esc. Output always returns to the
// podman menu regardless of which screen produced the output.
func (k ScreenKind) Parent() ScreenKind {
	switch k {
	case ScreenVT:
		return ScreenMain
	case ScreenDesktops:
		return ScreenVT
	case ScreenPodman:
		return ScreenMain
	case ScreenOutput:
		return ScreenPodman
	}
	return ScreenMain
}

func (o PromptOrigin) String() string {
	switch o {
	case OriginChangeVT:
		return "vt:change"
	case OriginPodmanStart:
		return "podman:start"
	case OriginPodmanStop:
		return "podman:stop"
	case OriginPodmanShell:
		return "podman:shell"
	}
	return "unknown"
}

// Parent returns the screen an input prompt cancels back to.
func (o PromptOrigin) Parent() ScreenKind {
	if o == OriginChangeVT {
		return ScreenVT
	}
	return ScreenPodman
}

// KindFromName resolves a user-supplied screen name for the root override
// flag. Only list screens are addressable.
func KindFromName(name string) (ScreenKind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "main":
		return ScreenMain, true
	case "vt":
		return ScreenVT, true
	case "desktops":
		return ScreenDesktops, true
	case "podman":
		return ScreenPodman, true
	}
	return ScreenMain, false
}
