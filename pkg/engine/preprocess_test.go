package engine

import (
	"testing"

	zygo "github.com/glycerine/zygomys/zygo"
)

func TestPreprocessKeywords(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "simple keyword",
			input:  `(brick "1x1" :at (vec3 0 0 0))`,
			expect: `(brick "1x1" "__kw_at" (vec3 0 0 0))`,
		},
		{
			name:   "multiple keywords",
			input:  `(brick "2x1" :at (vec3 1 0 0) :rot 1 :color "#E67E22")`,
			expect: `(brick "2x1" "__kw_at" (vec3 1 0 0) "__kw_rot" 1 "__kw_color" "#E67E22")`,
		},
		{
			name:   "keywords inside strings preserved",
			input:  `(def s ":at is not a keyword here")`,
			expect: `(def s ":at is not a keyword here")`,
		},
		{
			name:   "assignment operator preserved",
			input:  `(def x := 5)`,
			expect: `(def x := 5)`,
		},
		{
			name:   "kebab-case call",
			input:  `(brick-count)`,
			expect: `(brick_count)`,
		},
		{
			name:   "minus operator untouched",
			input:  `(- 5 3)`,
			expect: `(- 5 3)`,
		},
		{
			name:   "negative literal untouched",
			input:  `(vec3 -1 0 0)`,
			expect: `(vec3 -1 0 0)`,
		},
		{
			name:   "kebab type id in string preserved",
			input:  `(brick "1x1-tall" :at (vec3 0 0 0))`,
			expect: `(brick "1x1-tall" "__kw_at" (vec3 0 0 0))`,
		},
		{
			name:   "semicolon comment converted",
			input:  "; build the base\n(brick-count)",
			expect: "// build the base\n(brick_count)",
		},
		{
			name:   "doubled semicolons collapse",
			input:  ";; header\n(vec3 0 0 0)",
			expect: "// header\n(vec3 0 0 0)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := preprocessSource(tt.input); got != tt.expect {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestParseArgs(t *testing.T) {
	// parseArgs sees values the way zygomys passes them after
	// preprocessing: keyword markers are plain strings.
	pos := &zygo.SexpStr{S: "1x1"}
	kwAt := &zygo.SexpStr{S: "__kw_at"}
	val := &zygo.SexpInt{Val: 7}

	parsed := parseArgs([]zygo.Sexp{pos, kwAt, val})

	if len(parsed.positional) != 1 || parsed.positional[0] != pos {
		t.Fatalf("positional = %v, want just the type id", parsed.positional)
	}
	if got, ok := parsed.kw["at"]; !ok || got != val {
		t.Errorf("kw[at] = %v, ok=%v, want the value following the keyword", got, ok)
	}
}

func TestParseArgsTrailingKeyword(t *testing.T) {
	parsed := parseArgs([]zygo.Sexp{&zygo.SexpStr{S: "__kw_flag"}})
	if got, ok := parsed.kw["flag"]; !ok || got != zygo.SexpNull {
		t.Errorf("trailing keyword = %v, ok=%v, want null flag", got, ok)
	}
}

func TestIsKW(t *testing.T) {
	if name, ok := isKW(&zygo.SexpStr{S: "__kw_color"}); !ok || name != "color" {
		t.Errorf("isKW(__kw_color) = %q, %v", name, ok)
	}
	if _, ok := isKW(&zygo.SexpStr{S: "plain"}); ok {
		t.Error("plain string reported as keyword")
	}
	if _, ok := isKW(&zygo.SexpInt{Val: 1}); ok {
		t.Error("non-string reported as keyword")
	}
}
