package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// TestChoiceResolvesSelectors covers numeric ordinals, unique prefix
// matches, and rejection cycles for empty or ambiguous selectors.
func TestChoiceResolvesSelectors(t *testing.T) {
	t.Parallel()

	colors := []string{"Red", "Green", "Blue"}

	cases := []struct {
		name        string
		options     []string
		input       string
		want        int
		wantNotices int
	}{
		{"ordinal", colors, "2\n", 1, 0},
		{"prefixFirstOption", colors, "r\n", 0, 0},
		{"prefixSecondOption", colors, "g\n", 1, 0},
		{"fullOptionCaseFolded", colors, "blue\n", 2, 0},
		{"emptyThenFullOption", colors, "\nBlue\n", 2, 1},
		{"ambiguousThenExact", []string{"Red", "Rose"}, "r\nred\n", 0, 1},
		{"noMatchThenOrdinal", colors, "purple\n1\n", 0, 1},
		{"outOfRangeThenValid", colors, "4\n3\n", 2, 1},
		{"whitespaceTolerated", colors, " 2 \n", 1, 0},
		{"outOfRangeNumberMatchesAsPrefix", []string{"9 lives", "cat"}, "9\n", 0, 0},
		{"ordinalBeatsPrefix", []string{"2nd", "1st"}, "2\n", 1, 0},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			got, err := New(strings.NewReader(testCase.input), &out).Choice(testCase.options, "Pick one.")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != testCase.want {
				t.Fatalf("got index %d want %d", got, testCase.want)
			}
			if notices := strings.Count(out.String(), "Sorry,"); notices != testCase.wantNotices {
				t.Fatalf("got %d rejection notices, want %d\noutput: %q", notices, testCase.wantNotices, out.String())
			}
		})
	}
}

// TestChoiceMenuRendering checks the heading, numbering, and prompt
// label, and that a rejection does not re-list the menu.
func TestChoiceMenuRendering(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if _, err := New(strings.NewReader("nope\n1\n"), &out).Choice([]string{"Red", "Green"}, "Here are a few options."); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Here are a few options.\n",
		"Please choose one of the following options:\n",
		"    1. Red\n",
		"    2. Green\n",
		"Type the number or the option: ",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%q", want, got)
		}
	}

	if listings := strings.Count(got, "    1. Red"); listings != 1 {
		t.Fatalf("menu listed %d times, want 1", listings)
	}
}

// TestChoiceWithoutMessage verifies no heading is printed for an empty
// message.
func TestChoiceWithoutMessage(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if _, err := New(strings.NewReader("1\n"), &out).Choice([]string{"Red"}, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out.String(), "Please choose one of the following options:\n") {
		t.Fatalf("unexpected heading: %q", out.String())
	}
}

// TestChoiceEmptyOptions asserts the caller error fires before any
// output.
func TestChoiceEmptyOptions(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	_, err := New(strings.NewReader("1\n"), &out).Choice(nil, "Pick one.")
	if !errors.Is(err, ErrNoOptions) {
		t.Fatalf("got %v want ErrNoOptions", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

// TestChoiceAbortPropagates asserts end-of-input during the selector
// read surfaces as ErrAborted.
func TestChoiceAbortPropagates(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if _, err := New(strings.NewReader(""), &out).Choice([]string{"Red"}, ""); !errors.Is(err, ErrAborted) {
		t.Fatalf("got %v want ErrAborted", err)
	}
}

// TestResolveSelector exercises the resolution rules directly.
func TestResolveSelector(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		options  []string
		selector string
		want     int
		wantErr  error
	}{
		{"ordinalLow", []string{"a", "b"}, "1", 0, nil},
		{"ordinalHigh", []string{"a", "b"}, "2", 1, nil},
		{"ordinalZero", []string{"a", "b"}, "0", 0, errNoMatch},
		{"negativeOrdinal", []string{"a", "b"}, "-1", 0, errNoMatch},
		{"empty", []string{"a", "b"}, "", 0, errNoMatch},
		{"whitespaceOnly", []string{"a", "b"}, "   ", 0, errNoMatch},
		{"uniquePrefix", []string{"Red", "Green"}, "gR", 1, nil},
		{"ambiguousPrefix", []string{"Red", "Rose"}, "R", 0, errAmbiguous},
		{"disambiguatedPrefix", []string{"Red", "Rose"}, "re", 0, nil},
		{"noMatch", []string{"Red", "Rose"}, "blue", 0, errNoMatch},
		{"wholeWordNotRequired", []string{"The first option"}, "the fir", 0, nil},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveSelector(testCase.options, testCase.selector)
			if !errors.Is(err, testCase.wantErr) {
				t.Fatalf("got error %v want %v", err, testCase.wantErr)
			}
			if err == nil && got != testCase.want {
				t.Fatalf("got %d want %d", got, testCase.want)
			}
		})
	}
}
