package menu

import "testing"

func TestDefaultDefinitionIntegrity(t *testing.T) {
	def := Default()

	cases := []struct {
		kind  ScreenKind
		title string
		ids   []string
	}{
		{ScreenMain, "Main Menu", []string{"vt", "podman", "quit"}},
		{ScreenVT, "VT Menu", []string{"vt:change", "vt:desktops", "vt:back"}},
		{ScreenDesktops, "Desktops", []string{"desktop:x11", "desktop:wayland", "desktop:back"}},
		{ScreenPodman, "Podman Menu", []string{"podman:list", "podman:start", "podman:stop", "podman:shell", "podman:back"}},
	}
	for _, tc := range cases {
		if got := def.Title(tc.kind); got != tc.title {
			t.Errorf("%s title = %q, want %q", tc.kind, got, tc.title)
		}
		entries := def.Entries(tc.kind)
		if len(entries) != len(tc.ids) {
			t.Fatalf("%s has %d entries, want %d", tc.kind, len(entries), len(tc.ids))
		}
		for i, id := range tc.ids {
			if entries[i].ID != id {
				t.Errorf("%s entry %d = %q, want %q", tc.kind, i, entries[i].ID, id)
			}
			if entries[i].Label == "" {
				t.Errorf("%s entry %q has empty label", tc.kind, id)
			}
		}
	}

	if def.Title(ScreenOutput) != "Output" {
		t.Errorf("output title = %q, want Output", def.Title(ScreenOutput))
	}
	if def.Len(ScreenOutput) != 0 {
		t.Errorf("output screen should have no entries")
	}
}

func TestEntryBounds(t *testing.T) {
	def := Default()
	if _, ok := def.Entry(ScreenMain, -1); ok {
		t.Error("negative index should not resolve")
	}
	if _, ok := def.Entry(ScreenMain, def.Len(ScreenMain)); ok {
		t.Error("index past the end should not resolve")
	}
	entry, ok := def.Entry(ScreenMain, 0)
	if !ok || entry.ID != "vt" {
		t.Errorf("Entry(main, 0) = %+v, %v", entry, ok)
	}
}

func TestDesktopEntriesCarryVTArguments(t *testing.T) {
	def := Default()
	x11, _ := def.Entry(ScreenDesktops, 0)
	if x11.Target.Kind != TargetCommand || x11.Target.Command != CommandVTSwitch || x11.Target.Arg != "7" {
		t.Errorf("x11 target = %+v", x11.Target)
	}
	wayland, _ := def.Entry(ScreenDesktops, 1)
	if wayland.Target.Arg != "8" {
		t.Errorf("wayland target arg = %q, want 8", wayland.Target.Arg)
	}
}

func TestScreenParents(t *testing.T) {
	cases := map[ScreenKind]ScreenKind{
		ScreenVT:       ScreenMain,
		ScreenDesktops: ScreenVT,
		ScreenPodman:   ScreenMain,
		ScreenOutput:   ScreenPodman,
	}
	for child, want := range cases {
		if got := child.Parent(); got != want {
			t.Errorf("%s parent = %s, want %s", child, got, want)
		}
	}
}

func TestPromptOriginParents(t *testing.T) {
	if OriginChangeVT.Parent() != ScreenVT {
		t.Errorf("change VT prompt should cancel back to the VT menu")
	}
	for _, origin := range []PromptOrigin{OriginPodmanStart, OriginPodmanStop, OriginPodmanShell} {
		if origin.Parent() != ScreenPodman {
			t.Errorf("%s should cancel back to the podman menu", origin)
		}
	}
}

func TestKindFromName(t *testing.T) {
	cases := map[string]ScreenKind{
		"main":     ScreenMain,
		"vt":       ScreenVT,
		"desktops": ScreenDesktops,
		"podman":   ScreenPodman,
	}
	for name, want := range cases {
		kind, ok := KindFromName(name)
		if !ok || kind != want {
			t.Errorf("KindFromName(%q) = %v, %v", name, kind, ok)
		}
	}
	for _, name := range []string{"output", "input", "bogus", ""} {
		if _, ok := KindFromName(name); ok {
			t.Errorf("KindFromName(%q) should fail", name)
		}
	}
}

func TestIsList(t *testing.T) {
	for _, kind := range []ScreenKind{ScreenMain, ScreenVT, ScreenDesktops, ScreenPodman} {
		if !kind.IsList() {
			t.Errorf("%s should be a list screen", kind)
		}
	}
	for _, kind := range []ScreenKind{ScreenOutput, ScreenInput} {
		if kind.IsList() {
			t.Errorf("%s should not be a list screen", kind)
		}
	}
}
