package mdlayout

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

const goldenRoot = "testdata/layout"

// goldenSource maps a flattened golden base name back to its Markdown file.
// Nested fixtures are flattened with "__", the way cmd/gen-golden names them.
func goldenSource(base string) string {
	return filepath.Join(goldenRoot, filepath.FromSlash(strings.ReplaceAll(base, "__", "/"))+".md")
}

// TestLayoutGolden compares every testdata/layout/<name>.w<width>.yaml with
// the layout of <name>.md at that width. Regenerate with cmd/gen-golden.
func TestLayoutGolden(t *testing.T) {
	goldens, err := filepath.Glob(filepath.Join(goldenRoot, "*.w*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, goldens)

	checked := map[string]bool{}
	for _, golden := range goldens {
		name := strings.TrimSuffix(filepath.Base(golden), ".yaml")
		idx := strings.LastIndex(name, ".w")
		require.Positive(t, idx, "golden %s", golden)
		width, err := strconv.Atoi(name[idx+2:])
		require.NoError(t, err, "golden %s", golden)
		source := goldenSource(name[:idx])
		checked[filepath.ToSlash(source)] = true

		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(source)
			require.NoError(t, err)
			f, err := os.Open(golden)
			require.NoError(t, err)
			defer f.Close()
			want, err := ReadYAML(f)
			require.NoError(t, err)

			got := Layout(string(src), WithWidth(width))
			if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("layout mismatch (-want +got):\n%s", diff)
			}
		})
	}

	// Every fixture, nested ones included, needs at least one golden.
	err = filepath.WalkDir(goldenRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && strings.HasSuffix(path, ".md") && !checked[filepath.ToSlash(path)] {
			t.Errorf("fixture %s has no golden; run cmd/gen-golden", path)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestGoldenSourceUnflattensNestedNames(t *testing.T) {
	require.Equal(t, filepath.Join(goldenRoot, "basic.md"), goldenSource("basic"))
	require.Equal(t, filepath.Join(goldenRoot, "lists", "loose.md"), goldenSource("lists__loose"))
}
