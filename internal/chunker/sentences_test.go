package chunker

import (
	"reflect"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"simple sentences",
			"The sky is blue. Water is wet. Fire is hot.",
			[]string{"The sky is blue.", "Water is wet.", "Fire is hot."},
		},
		{
			"mixed terminators",
			"Really? Yes! Good.",
			[]string{"Really?", "Yes!", "Good."},
		},
		{
			"no terminal punctuation",
			"a fragment without an ending",
			[]string{"a fragment without an ending"},
		},
		{
			"closing quote after period",
			`He said "stop." Then he left.`,
			[]string{`He said "stop."`, "Then he left."},
		},
		{
			"empty",
			"",
			nil,
		},
		{
			"whitespace only",
			"  \n\t ",
			nil,
		},
		{
			"newline as boundary whitespace",
			"First line.\nSecond line.",
			[]string{"First line.", "Second line."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitSentences(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSplitSentencesNoDecimalSplit(t *testing.T) {
	// A period not followed by whitespace does not end a sentence.
	got := SplitSentences("Version 1.2 shipped. Done.")
	want := []string{"Version 1.2 shipped.", "Done."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}
