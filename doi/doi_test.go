package doi_test

import (
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/jsamuelsen11/identifiers/doi"
)

// strs converts DOIs to their string form for easy comparison.
func strs(dois []doi.DOI) []string {
	out := make([]string, 0, len(dois))
	for _, d := range dois {
		out = append(out, d.String())
	}
	return out
}

// --- Parse ---

func TestParse_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "exact DOI",
			input: "10.1234/foobar",
			want:  "10.1234/foobar",
		},
		{
			name:  "dotted suffix",
			input: "10.1038/nplants.2015.3",
			want:  "10.1038/nplants.2015.3",
		},
		{
			name:  "nine digit registrant",
			input: "10.123456789/abc",
			want:  "10.123456789/abc",
		},
		{
			name:  "leading context is discarded",
			input: "doi:10.1038/nplants.2015.3",
			want:  "10.1038/nplants.2015.3",
		},
		{
			name:  "resolver URL",
			input: "https://doi.org/10.1000/xyz123",
			want:  "10.1000/xyz123",
		},
		{
			name:  "first of several wins",
			input: "see 10.1111/first and 10.2222/second",
			want:  "10.1111/first",
		},
		{
			name:  "trailing punctuation is dropped",
			input: "(10.1234/abc).",
			want:  "10.1234/abc",
		},
		{
			name:  "inner punctuation is kept",
			input: "10.1002/(SICI)1097-4571(199806)49:8<693::AID-ASI4>3.0.CO;2-0",
			want:  "10.1002/(SICI)1097-4571(199806)49:8<693::AID-ASI4>3.0.CO;2-0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := doi.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v, want nil", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got.String(), tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "prose", input: "not a DOI"},
		{name: "empty", input: ""},
		{name: "three digit registrant", input: "10.123/abc"},
		{name: "ten digit registrant", input: "10.1234567890/abc"},
		{name: "missing suffix", input: "10.1234/"},
		{name: "suffix without word characters", input: "10.1234/!!"},
		{name: "whitespace after slash", input: "10.1234/ abc"},
		{name: "wrong directory indicator", input: "11.1234/abc"},
		{name: "no boundary before prefix", input: "x10.1234/abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := doi.Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", tt.input, got.String())
			}
			if !errors.Is(err, doi.ErrInvalid) {
				t.Errorf("errors.Is(err, ErrInvalid) = false, got %v", err)
			}

			var ierr *doi.InvalidError
			if !errors.As(err, &ierr) {
				t.Fatalf("errors.As(err, *InvalidError) = false, got %T", err)
			}
			if ierr.Text != tt.input {
				t.Errorf("InvalidError.Text = %q, want %q", ierr.Text, tt.input)
			}
			if !got.IsZero() {
				t.Errorf("Parse(%q) returned non-zero DOI %q alongside error", tt.input, got.String())
			}
		})
	}
}

func TestInvalidError_Message(t *testing.T) {
	t.Parallel()

	_, err := doi.Parse("not a DOI")
	if err == nil {
		t.Fatal("Parse(\"not a DOI\") error = nil, want error")
	}
	if got, want := err.Error(), "not a DOI is not a valid DOI"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"10.1234/foobar", "10.1038/nplants.2015.3", "10.5555/a-b_c"} {
		d, err := doi.Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", s, err)
		}
		if d.String() != s {
			t.Errorf("Parse(%q).String() = %q, want %q", s, d.String(), s)
		}
	}
}

func TestParse_Equality(t *testing.T) {
	t.Parallel()

	a := doi.MustParse("10.1038/nplants.2015.3")
	b := doi.MustParse("I love 10.1038/nplants.2015.3")
	if a != b {
		t.Errorf("DOIs from the same match differ: %q != %q", a, b)
	}

	upper := doi.MustParse("10.1234/ABC")
	lower := doi.MustParse("10.1234/abc")
	if upper == lower {
		t.Error("DOIs differing only in case compare equal, want case-sensitive equality")
	}
}

func TestMustParse_Panics(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustParse(\"nope\") did not panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, doi.ErrInvalid) {
			t.Errorf("panic value = %v, want error wrapping ErrInvalid", r)
		}
	}()

	doi.MustParse("nope")
}

// --- Extract ---

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "single DOI",
			input: "I love 10.1038/nplants.2015.3",
			want:  []string{"10.1038/nplants.2015.3"},
		},
		{
			name:  "multiple DOIs",
			input: "I love 10.1038/nplants.2015.3 and 10.1038/nplants.2015.4",
			want:  []string{"10.1038/nplants.2015.3", "10.1038/nplants.2015.4"},
		},
		{
			name:  "no DOIs",
			input: "No DOIs here",
			want:  []string{},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
		{
			name:  "accented suffix",
			input: "see 10.1234/café now",
			want:  []string{"10.1234/café"},
		},
		{
			name:  "greek suffix",
			input: "10.1234/αβγ",
			want:  []string{"10.1234/αβγ"},
		},
		{
			name:  "arabic-indic registrant digits",
			input: "ref 10.١٢٣٤/foo.",
			want:  []string{"10.١٢٣٤/foo"},
		},
		{
			name:  "no-break space ends the suffix",
			input: "10.1234/foo\u00a0bar",
			want:  []string{"10.1234/foo"},
		},
		{
			name:  "vertical tab ends the suffix",
			input: "10.1234/foo\vbar",
			want:  []string{"10.1234/foo"},
		},
		{
			name:  "next line ends the suffix",
			input: "10.1234/foo\u0085bar",
			want:  []string{"10.1234/foo"},
		},
		{
			name:  "ideographic space ends the suffix",
			input: "10.1234/foo\u3000bar",
			want:  []string{"10.1234/foo"},
		},
		{
			name:  "letter before the prefix",
			input: "é10.1234/foo",
			want:  []string{},
		},
		{
			name:  "digit before the prefix",
			input: "110.1234/foo",
			want:  []string{},
		},
		{
			name:  "combining mark before the prefix",
			input: "x\u030110.1234/foo",
			want:  []string{},
		},
		{
			name:  "symbol before the prefix",
			input: "→10.1234/foo",
			want:  []string{"10.1234/foo"},
		},
		{
			name:  "suffix of only punctuation",
			input: "10.1234/!! then 10.5678/ok",
			want:  []string{"10.5678/ok"},
		},
		{
			name:  "too many registrant digits",
			input: "10.1234567890/abc",
			want:  []string{},
		},
		{
			name:  "comma separated list",
			input: "10.1234/abc, 10.5678/def.",
			want:  []string{"10.1234/abc", "10.5678/def"},
		},
		{
			name:  "punctuation followed by word character is captured",
			input: "see 10.1234/a,b for details",
			want:  []string{"10.1234/a,b"},
		},
		{
			name:  "adjacent DOIs without whitespace form one match",
			input: "10.1234/a10.5678/b",
			want:  []string{"10.1234/a10.5678/b"},
		},
		{
			name:  "tabs and newlines separate matches",
			input: "10.1111/one\t10.2222/two\n10.3333/three\n",
			want:  []string{"10.1111/one", "10.2222/two", "10.3333/three"},
		},
		{
			name:  "invalid candidates are skipped",
			input: "10.12/short 10.1234/ok 10.1234567890/long",
			want:  []string{"10.1234/ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := doi.Extract(tt.input)
			if got == nil {
				t.Fatalf("Extract(%q) = nil, want non-nil slice", tt.input)
			}
			if !slices.Equal(strs(got), tt.want) {
				t.Errorf("Extract(%q) = %q, want %q", tt.input, strs(got), tt.want)
			}
		})
	}
}

func TestExtract_ConcatenatedPhrases(t *testing.T) {
	t.Parallel()

	want := []string{"10.1000/a1", "10.2000/b2", "10.3000/c3", "10.4000/d4", "10.5000/e5"}

	var b strings.Builder
	for i, s := range want {
		if i > 0 {
			b.WriteString(" and then ")
		}
		b.WriteString("cited as " + s)
	}

	got := strs(doi.Extract(b.String()))
	if !slices.Equal(got, want) {
		t.Errorf("Extract() = %q, want %q", got, want)
	}
}

func TestExtract_Idempotent(t *testing.T) {
	t.Parallel()

	text := "I love 10.1038/nplants.2015.3 and 10.1038/nplants.2015.4"

	first := doi.Extract(text)
	second := doi.Extract(text)
	if !slices.Equal(first, second) {
		t.Errorf("Extract() not deterministic: %q then %q", strs(first), strs(second))
	}
}

func TestExtract_AgreesWithParse(t *testing.T) {
	t.Parallel()

	text := "prefix 10.1234/first then 10.5678/second"

	parsed, err := doi.Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	extracted := doi.Extract(text)
	if len(extracted) == 0 || extracted[0] != parsed {
		t.Errorf("Extract()[0] = %v, want %q", strs(extracted), parsed.String())
	}
}

func TestExtract_ConcurrentCallers(t *testing.T) {
	t.Parallel()

	const workers = 16
	text := "I love 10.1038/nplants.2015.3 and 10.1038/nplants.2015.4"
	want := strs(doi.Extract(text))

	var wg sync.WaitGroup
	errs := make(chan string, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := strs(doi.Extract(text)); !slices.Equal(got, want) {
				errs <- strings.Join(got, ",")
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Errorf("concurrent Extract() = %q, want %q", got, want)
	}
}

// --- Accessors ---

func TestDOI_PrefixSuffix(t *testing.T) {
	t.Parallel()

	d := doi.MustParse("10.1038/nplants.2015.3")
	if d.Prefix() != "10.1038" {
		t.Errorf("Prefix() = %q, want %q", d.Prefix(), "10.1038")
	}
	if d.Suffix() != "nplants.2015.3" {
		t.Errorf("Suffix() = %q, want %q", d.Suffix(), "nplants.2015.3")
	}

	// Only the first slash separates prefix from suffix.
	d = doi.MustParse("10.1000/a/b/c")
	if d.Suffix() != "a/b/c" {
		t.Errorf("Suffix() = %q, want %q", d.Suffix(), "a/b/c")
	}
}

func TestDOI_IsZero(t *testing.T) {
	t.Parallel()

	var zero doi.DOI
	if !zero.IsZero() {
		t.Error("zero DOI IsZero() = false, want true")
	}
	if doi.MustParse("10.1234/x").IsZero() {
		t.Error("parsed DOI IsZero() = true, want false")
	}
}

// --- Text marshalling ---

func TestDOI_JSON(t *testing.T) {
	t.Parallel()

	type citation struct {
		DOI doi.DOI `json:"doi"`
	}

	data, err := json.Marshal(citation{DOI: doi.MustParse("10.1234/foobar")})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if got, want := string(data), `{"doi":"10.1234/foobar"}`; got != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}

	var c citation
	if err := json.Unmarshal([]byte(`{"doi":"https://doi.org/10.5555/abc"}`), &c); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if c.DOI.String() != "10.5555/abc" {
		t.Errorf("unmarshalled DOI = %q, want %q", c.DOI.String(), "10.5555/abc")
	}
}

func TestDOI_UnmarshalTextInvalid(t *testing.T) {
	t.Parallel()

	var d doi.DOI
	err := d.UnmarshalText([]byte("not a DOI"))
	if !errors.Is(err, doi.ErrInvalid) {
		t.Fatalf("UnmarshalText() error = %v, want ErrInvalid", err)
	}
	if !d.IsZero() {
		t.Errorf("UnmarshalText() modified receiver on failure: %q", d.String())
	}
}
