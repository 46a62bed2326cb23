package swift

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"gopkg.in/yaml.v3"
)

type goldenCase struct {
	Name        string `yaml:"name"`
	Mangled     string `yaml:"mangled"`
	Demangled   string `yaml:"demangled"`
	Sugar       bool   `yaml:"sugar"`
	NoFieldType bool   `yaml:"no_field_type"`
}

type goldenSuite struct {
	Cases []goldenCase `yaml:"cases"`
}

func (c *goldenCase) options() DemangleOptions {
	opts := DefaultOptions()
	opts.SynthesizeSugarOnTypes = c.Sugar
	if c.NoFieldType {
		opts.DisplayTypeOfIVarFieldOffset = false
	}
	return opts
}

func loadGoldenSuite(t *testing.T) *goldenSuite {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "symbols.yaml"))
	if err != nil {
		t.Fatalf("failed to read golden corpus: %v", err)
	}
	var suite goldenSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		t.Fatalf("failed to parse golden corpus: %v", err)
	}
	if len(suite.Cases) == 0 {
		t.Fatal("golden corpus is empty")
	}
	return &suite
}

func TestGoldenCorpus(t *testing.T) {
	suite := loadGoldenSuite(t)
	for _, tc := range suite.Cases {
		t.Run(tc.Name, func(t *testing.T) {
			got := Demangle(tc.Mangled, tc.options())
			if diff := cmp.Diff(tc.Demangled, got); diff != "" {
				dmp := diffpatch.New()
				pretty := dmp.DiffPrettyText(dmp.DiffMain(tc.Demangled, got, false))
				t.Errorf("Demangle(%q) mismatch (-want +got):\n%s\n%s", tc.Mangled, diff, pretty)
			}
		})
	}
}

// Every corpus entry renders identically across repeated decodes.
func TestGoldenCorpusDeterminism(t *testing.T) {
	suite := loadGoldenSuite(t)
	for _, tc := range suite.Cases {
		opts := tc.options()
		first := Demangle(tc.Mangled, opts)
		for i := 0; i < 3; i++ {
			if got := Demangle(tc.Mangled, opts); got != first {
				t.Fatalf("rendering of %q is unstable: %q vs %q", tc.Mangled, first, got)
			}
		}
	}
}

// Every corpus entry decodes to a tree whose ownership links agree with its
// child sequences.
func TestGoldenCorpusOwnership(t *testing.T) {
	suite := loadGoldenSuite(t)
	for _, tc := range suite.Cases {
		root := DemangleToTree(tc.Mangled, tc.options())
		if !root.IsUnlinked() {
			t.Errorf("root of %q is linked", tc.Mangled)
		}
		root.Walk(func(n *Node, depth int) bool {
			i := 0
			for c := range n.Children() {
				if c.Parent() != n {
					t.Errorf("child %d of %s in %q has a different parent", i, n.Kind(), tc.Mangled)
				}
				if c.PrevSibling() != childAt(n, i-1) {
					t.Errorf("child %d of %s in %q disagrees about its previous sibling", i, n.Kind(), tc.Mangled)
				}
				i++
			}
			return true
		})
	}
}
