package nfa

import (
	"strings"
	"testing"
)

// compileUnfolded builds a Program with the same token classification as
// Compile but no folding pass, as a semantic reference: folding must never
// change which names match.
func compileUnfolded(pattern string, sep rune) (*Program, bool) {
	p := &Program{sep: sep, sepStr: string(sep)}
	for _, token := range strings.Split(pattern, string(sep)) {
		switch token {
		case "*":
			p.steps = append(p.steps, WildcardStep(false, true))
		case "+":
			p.steps = append(p.steps, WildcardStep(false, false))
		case "**":
			p.steps = append(p.steps, WildcardStep(true, true))
		case "**+":
			p.steps = append(p.steps, WildcardStep(true, false))
		default:
			if strings.ContainsAny(token, "*+") {
				return nil, false
			}
			p.steps = append(p.steps, StaticStep(token))
		}
	}
	return p, true
}

var foldCorpusNames = []string{
	"",
	"a", "b", "x",
	"a.a", "a.b", "b.a", "x.x",
	"a.a.a", "a.b.a", "a.a.b", "b.a.a", "x.x.x",
	"a.a.a.a", "a.b.a.b", "x.x.x.x",
	"a.a.a.a.a", "x.x.x.x.x",
	"a.a.a.a.a.a",
}

var foldCorpusPatterns = []string{
	"**.**",
	"**.+",
	"+.**",
	"**+.*",
	"*.**+",
	"+.*",
	"*.+",
	"**+.+",
	"+.**+",
	"**+.**+",
	"**+.+.**+",
	"**.**.**.**.**",
	"a.**.**.b",
	"a.**.+.b",
	"**+.*.a",
	"*.*.+.**",
	"a.+.**+.b",
	"**.a.**",
	"+.+.+",
	"**.*.**",
	"*.**.*",
}

// TestFold_PreservesSemantics checks folded and unfolded compilations of
// the same pattern agree on every corpus name.
func TestFold_PreservesSemantics(t *testing.T) {
	for _, pattern := range foldCorpusPatterns {
		t.Run(pattern, func(t *testing.T) {
			folded := mustCompile(t, pattern, '.')
			unfolded, ok := compileUnfolded(pattern, '.')
			if !ok {
				t.Fatalf("reference compile rejected %q", pattern)
			}
			if folded.NumSteps() > unfolded.NumSteps() {
				t.Errorf("folding grew %q: %d > %d steps", pattern, folded.NumSteps(), unfolded.NumSteps())
			}
			for _, name := range foldCorpusNames {
				if got, want := folded.Matches(name), unfolded.Matches(name); got != want {
					t.Errorf("pattern %q, name %q: folded = %t, unfolded = %t", pattern, name, got, want)
				}
			}
		})
	}
}

// FuzzFold_PreservesSemantics fuzzes pattern/name pairs, comparing the
// folded compilation against the unfolded reference and the ToOwned copy.
func FuzzFold_PreservesSemantics(f *testing.F) {
	for _, pattern := range foldCorpusPatterns {
		f.Add(pattern, "a.b.a")
	}
	f.Add("**+.domain.tld", "sub.domain.tld")
	f.Add("", "")

	f.Fuzz(func(t *testing.T, pattern, name string) {
		folded, err := Compile(pattern, '.')
		unfolded, ok := compileUnfolded(pattern, '.')
		if (err == nil) != ok {
			t.Fatalf("compile disagreement for %q: err=%v ok=%t", pattern, err, ok)
		}
		if err != nil {
			return
		}

		want := unfolded.Matches(name)
		if got := folded.Matches(name); got != want {
			t.Errorf("pattern %q, name %q: folded = %t, unfolded = %t", pattern, name, got, want)
		}
		if got := folded.ToOwned().Matches(name); got != want {
			t.Errorf("pattern %q, name %q: ToOwned = %t, unfolded = %t", pattern, name, got, want)
		}
	})
}
