package naming

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/thoreinstein/syncopener/internal/errors"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		file string
		want NamingFormat
	}{
		{"camel", "myComponent.ts", NamingFormat{"", Camel}},
		{"pascal", "MyWidget.tsx", NamingFormat{"", Pascal}},
		{"kebab", "user-card.scss", NamingFormat{"", Kebab}},
		{"snake", "user_card.scss", NamingFormat{"", Snake}},
		{"underscore prefix", "_MyWidget.tsx", NamingFormat{"_", Pascal}},
		{"dot prefix", ".hidden-file.css", NamingFormat{".", Kebab}},
		{"multi-char prefix", "__tests__.js", NamingFormat{"__", Unknown}},
		{"single letter prefers camel", "a.ts", NamingFormat{"", Camel}},
		{"single word prefers camel", "button.ts", NamingFormat{"", Camel}},
		{"digits are unknown", "card2.ts", NamingFormat{"", Unknown}},
		{"digits and hyphens are unknown", "my-card2.ts", NamingFormat{"", Unknown}},
		{"leading digit", "123abc.ts", NamingFormat{"", Unknown}},
		{"no extension", "README", NamingFormat{"", Unknown}},
		{"dotted stem", "my.component.ts", NamingFormat{"", Unknown}},
		{"mixed separators", "my-user_card.ts", NamingFormat{"", Unknown}},
		{"only symbols", "--.", NamingFormat{"--.", Unknown}},
		{"empty", "", NamingFormat{"", Unknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.file); got != tt.want {
				t.Errorf("Detect(%q) = %+v, want %+v", tt.file, got, tt.want)
			}
		})
	}
}

func TestDetect_PrefixNeverHoldsAlphanumerics(t *testing.T) {
	names := []string{
		"myComponent.ts", "_MyWidget.tsx", "._a-b.css", "$$x.js", "-9lives.ts",
		"@scope.ts", "__init__.js", "  spaced.ts", "Ünïcode.ts", "",
	}

	for _, n := range names {
		got := Detect(n)
		for i := 0; i < len(got.Prefix); i++ {
			if isAlnum(got.Prefix[i]) {
				t.Errorf("Detect(%q).Prefix = %q contains %q", n, got.Prefix, got.Prefix[i])
			}
		}
		if !strings.HasPrefix(n, got.Prefix) {
			t.Errorf("Detect(%q).Prefix = %q is not a prefix of the name", n, got.Prefix)
		}
		if again := Detect(n); again != got {
			t.Errorf("Detect(%q) not stable: %+v then %+v", n, got, again)
		}
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		file string
		src  NamingFormat
		dst  NamingFormat
		ext  string
		want string
	}{
		{
			name: "camel to kebab",
			file: "myComponent.ts",
			src:  NamingFormat{"", Camel},
			dst:  NamingFormat{"", Kebab},
			ext:  ".html",
			want: "my-component.html",
		},
		{
			name: "pascal to snake keeping prefix",
			file: "_MyWidget.tsx",
			src:  NamingFormat{"_", Pascal},
			dst:  NamingFormat{"_", Snake},
			ext:  ".scss",
			want: "_my_widget.scss",
		},
		{
			name: "pascal to kebab",
			file: "UserCard.tsx",
			src:  NamingFormat{"", Pascal},
			dst:  NamingFormat{"", Kebab},
			ext:  ".scss",
			want: "user-card.scss",
		},
		{
			name: "kebab to pascal",
			file: "user-card.scss",
			src:  NamingFormat{"", Kebab},
			dst:  NamingFormat{"", Pascal},
			ext:  ".tsx",
			want: "UserCard.tsx",
		},
		{
			name: "snake to camel",
			file: "user_card.ts",
			src:  NamingFormat{"", Snake},
			dst:  NamingFormat{"", Camel},
			ext:  ".ts",
			want: "userCard.ts",
		},
		{
			name: "kebab to snake",
			file: "user-card.scss",
			src:  NamingFormat{"", Kebab},
			dst:  NamingFormat{"", Snake},
			ext:  ".scss",
			want: "user_card.scss",
		},
		{
			name: "camel to pascal",
			file: "myComponent.ts",
			src:  NamingFormat{"", Camel},
			dst:  NamingFormat{"", Pascal},
			ext:  ".tsx",
			want: "MyComponent.tsx",
		},
		{
			name: "pascal to camel lower-cases first",
			file: "UserCard.tsx",
			src:  NamingFormat{"", Pascal},
			dst:  NamingFormat{"", Camel},
			ext:  ".ts",
			want: "usercard.ts",
		},
		{
			name: "adds prefix",
			file: "button.ts",
			src:  NamingFormat{"", Camel},
			dst:  NamingFormat{".", Camel},
			ext:  ".ts",
			want: ".button.ts",
		},
		{
			name: "drops prefix",
			file: "_MyWidget.tsx",
			src:  NamingFormat{"_", Pascal},
			dst:  NamingFormat{"", Kebab},
			ext:  ".scss",
			want: "my-widget.scss",
		},
		{
			name: "trailing separators collapse for camel",
			file: "ab--.ts",
			src:  NamingFormat{"", Unknown},
			dst:  NamingFormat{"", Camel},
			ext:  ".ts",
			want: "ab-.ts",
		},
		{
			name: "spaces become kebab separators",
			file: "user  card.ts",
			src:  NamingFormat{"", Unknown},
			dst:  NamingFormat{"", Kebab},
			ext:  ".css",
			want: "user-card.css",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Convert(tt.file, tt.src, tt.dst, tt.ext); got != tt.want {
				t.Errorf("Convert(%q, %v, %v, %q) = %q, want %q", tt.file, tt.src, tt.dst, tt.ext, got, tt.want)
			}
		})
	}
}

func TestConvert_IdentityOnEqualFormats(t *testing.T) {
	names := []string{"myComponent.ts", "UserCard.tsx", "user-card.scss", "user_card.css", "_MyWidget.tsx"}

	for _, n := range names {
		f := Detect(n)
		ext := n[strings.LastIndexByte(n, '.'):]
		if got := Convert(n, f, f, ext); got != n {
			t.Errorf("Convert(%q, same, same) = %q, want unchanged", n, got)
		}
	}
}

func TestConvert_UnknownTargetIsNoop(t *testing.T) {
	tests := []struct {
		file string
		dst  Format
	}{
		{"myComponent.ts", Unknown},
		{"UserCard.tsx", Format("title-case")},
		{"user-card.scss", ""},
	}

	for _, tt := range tests {
		got := Convert(tt.file, Detect(tt.file), NamingFormat{Format: tt.dst}, ".html")
		if got != tt.file {
			t.Errorf("Convert(%q, -> %q) = %q, want unchanged", tt.file, tt.dst, got)
		}
	}
}

func TestConvert_ResultDetectsAsTarget(t *testing.T) {
	sources := []string{"myComponent.ts", "UserCard.tsx", "user-card.scss", "user_card.css"}
	targets := []Format{Pascal, Kebab, Snake}

	for _, n := range sources {
		for _, f := range targets {
			dst := NamingFormat{Format: f}
			got := Convert(n, Detect(n), dst, ".js")
			if d := Detect(got); d.Format != f {
				t.Errorf("Detect(Convert(%q -> %s)) = %s (%q)", n, f, d.Format, got)
			}
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"camel-case", Camel, false},
		{"camel", Camel, false},
		{"camelCase", Camel, false},
		{"PascalCase", Pascal, false},
		{"KEBAB_CASE", Kebab, false},
		{" snake ", Snake, false},
		{"unknown", Unknown, false},
		{"title-case", Unknown, true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("ParseFormat(%q) error = %v, want ErrUnknownFormat", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNamingFormat_JSON(t *testing.T) {
	var nf NamingFormat
	if err := json.Unmarshal([]byte(`{"prefix":"_","format":"snake"}`), &nf); err != nil {
		t.Fatal(err)
	}
	if nf != (NamingFormat{"_", Snake}) {
		t.Errorf("unmarshal = %+v", nf)
	}

	data, err := json.Marshal(nf)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"prefix":"_","format":"snake-case"}` {
		t.Errorf("marshal = %s", data)
	}

	if err := json.Unmarshal([]byte(`{"format":"title"}`), &nf); err != nil {
		t.Fatalf("unknown names should be kept, got error %v", err)
	}
	if nf.Format.Known() {
		t.Errorf("Format %q should not be known", nf.Format)
	}
}
