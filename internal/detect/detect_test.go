package detect

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// stubProvider returns canned answers for window probes.
type stubProvider struct {
	browserPath string
	editorTitle string
}

func (s *stubProvider) FocusedBrowserPath(context.Context) string { return s.browserPath }
func (s *stubProvider) EditorWindowTitle(context.Context) string  { return s.editorTitle }

func mkdir(t *testing.T, parts ...string) string {
	t.Helper()
	path := filepath.Join(parts...)
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDetect_BrowserPathWinsWhenItExists(t *testing.T) {
	dir := t.TempDir()
	d := &Detector{
		Provider: &stubProvider{browserPath: dir, editorTitle: "x - ignored - Visual Studio Code"},
	}

	if got := d.Detect(context.Background()); got != dir {
		t.Errorf("Detect = %q, want browser path %q", got, dir)
	}
}

func TestDetect_NonexistentBrowserPathFallsThrough(t *testing.T) {
	root := t.TempDir()
	project := mkdir(t, root, "my-api")

	d := &Detector{
		Provider: &stubProvider{
			browserPath: filepath.Join(root, "vanished"),
			editorTitle: "server.js - my-api - Visual Studio Code",
		},
		Roots: []string{root},
	}

	if got := d.Detect(context.Background()); got != project {
		t.Errorf("Detect = %q, want editor-title match %q", got, project)
	}
}

func TestDetect_FallsBackToCwd(t *testing.T) {
	d := &Detector{
		Provider: &stubProvider{},
		Roots:    []string{t.TempDir()},
		Getwd:    func() (string, error) { return "/fallback/cwd", nil },
	}

	if got := d.Detect(context.Background()); got != "/fallback/cwd" {
		t.Errorf("Detect = %q, want cwd fallback", got)
	}
}

func TestDetect_NilProviderNeverPanics(t *testing.T) {
	d := &Detector{Getwd: func() (string, error) { return "/cwd", nil }}
	if got := d.Detect(context.Background()); got != "/cwd" {
		t.Errorf("Detect = %q, want /cwd", got)
	}
}

func TestProjectName(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"server.js - my-api - Visual Studio Code", "my-api"},
		{"● server.js - my-api - Visual Studio Code", "my-api"},
		{"my-api - Visual Studio Code", "my-api"},
		{"main.rs - backend - Cursor", "backend"},
		{"backend - Zed", "backend"},
		{"plain-title", "plain-title"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := ProjectName(tc.title); got != tc.want {
			t.Errorf("ProjectName(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestResolveName_UniqueCaseInsensitiveMatch(t *testing.T) {
	root := t.TempDir()
	project := mkdir(t, root, "My-API")
	mkdir(t, root, "unrelated")

	if got := ResolveName([]string{root}, "my-api"); got != project {
		t.Errorf("ResolveName = %q, want %q", got, project)
	}
}

func TestResolveName_ExactMatchPreferredOverContains(t *testing.T) {
	root := t.TempDir()
	mkdir(t, root, "api-gateway")
	exact := mkdir(t, root, "api")

	if got := ResolveName([]string{root}, "API"); got != exact {
		t.Errorf("ResolveName = %q, want exact match %q", got, exact)
	}
}

func TestResolveName_FirstRootOrderBreaksTies(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()
	first := mkdir(t, rootA, "api-one")
	mkdir(t, rootB, "api-two")

	if got := ResolveName([]string{rootA, rootB}, "api"); got != first {
		t.Errorf("ResolveName = %q, want first-root match %q", got, first)
	}
}

func TestResolveName_NoMatch(t *testing.T) {
	root := t.TempDir()
	mkdir(t, root, "something")

	if got := ResolveName([]string{root}, "absent"); got != "" {
		t.Errorf("ResolveName = %q, want empty", got)
	}
}

func TestResolveName_UnreadableRootIsSkipped(t *testing.T) {
	root := t.TempDir()
	project := mkdir(t, root, "demo")

	got := ResolveName([]string{filepath.Join(root, "does-not-exist"), root}, "demo")
	if got != project {
		t.Errorf("ResolveName = %q, want %q", got, project)
	}
}
