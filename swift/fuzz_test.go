package swift

import (
	"testing"
	"unicode/utf8"
)

func FuzzDemangle(f *testing.F) {
	// Seed with one symbol per production family
	seeds := []string{
		// Entities
		"_TF4main3fooFT_T_",
		"_TFC4main3Foo3barfS0_FT_Si",
		"_TFSsoi1pFTSiSi_Si",
		"_TFC4main3FooCfMS0_FT_S0_",
		"_TFC4main3FooD",
		"_Tv1M1xSig",
		"_TFZF4main3fooFT_T_L0_3barFT_T_",

		// Metadata and witnesses
		"_TMdSi",
		"_TMPdGSaSi_",
		"_TwalSS",
		"_TWVSi",
		"_TWvdvC4main3Foo1xSi",
		"_TWPV4main3BarSs9Equatable4main",
		"_TTWV4main3BarSs9Equatable4mainFS_3fooFT_T_",
		"_TToF1M1fFT_T_",
		"_TTbFTSi_T_",

		// Types
		"_TtSi",
		"_TtGSaGSqSi__",
		"_TtT3fooSi3barSS_",
		"_TttSi_",
		"_TtP4main8Drawable4main8Hashable_",
		"_TtUx_FQ_Q_",
		"_TtQd1_2_",
		"_TtQaQ_7Element",
		"_TtA4Si",
		"_TtXwC4main3Foo",
		"_TtTCC4main5Outer5InnerS0__",

		// Malformed
		"",
		"_T",
		"_Tq",
		"_TtS9_",
		"main.foo",
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, mangled string) {
		// Primary target: decoding must not panic and must return a tree
		root := DemangleToTree(mangled, DefaultOptions())
		if root == nil {
			t.Fatal("DemangleToTree returned nil")
		}

		// A failed decode retains the input verbatim
		if root.Kind() == KindFailure && root.Text() != mangled {
			t.Fatalf("Failure root retains %q, want %q", root.Text(), mangled)
		}

		// Secondary: rendering must not panic and must be deterministic
		opts := DemangleOptions{SynthesizeSugarOnTypes: true, DisplayTypeOfIVarFieldOffset: true}
		first := NodeToString(root, opts)
		if second := NodeToString(root, opts); second != first {
			t.Fatalf("renderings differ: %q vs %q", first, second)
		}

		// Tertiary: a decoded tree survives a JSON round trip. Text
		// payloads are input slices, and JSON encoding rewrites invalid
		// UTF-8, so the comparison only holds for valid input.
		if !utf8.ValidString(mangled) {
			return
		}
		data, err := root.MarshalJSON()
		if err != nil {
			t.Fatalf("MarshalJSON: %v", err)
		}
		var back Node
		if err := back.UnmarshalJSON(data); err != nil {
			t.Fatalf("UnmarshalJSON: %v", err)
		}
		if !Equal(root, &back) {
			t.Fatal("JSON round trip changed the tree")
		}
	})
}
