package annotation

import "testing"

// TestSplitDocument verifies delimiter handling.
func TestSplitDocument(t *testing.T) {
	tests := []struct {
		name       string
		doc        string
		wantInline string
		wantBack   string
	}{
		{
			"basic split",
			"inline text\n\n--- BACKMATTER ---\n[1] stuff\n",
			"inline text\n\n",
			"[1] stuff\n",
		},
		{
			"no delimiter",
			"just inline text\n",
			"just inline text\n",
			"",
		},
		{
			"delimiter with surrounding whitespace",
			"a\n  --- BACKMATTER ---  \nb\n",
			"a\n",
			"b\n",
		},
		{
			"first delimiter wins",
			"a\n--- BACKMATTER ---\nb\n--- BACKMATTER ---\nc\n",
			"a\n",
			"b\n--- BACKMATTER ---\nc\n",
		},
		{
			"marker embedded in a line is not a delimiter",
			"see --- BACKMATTER --- here\n",
			"see --- BACKMATTER --- here\n",
			"",
		},
		{
			"leading blank lines stripped from backmatter",
			"a\n--- BACKMATTER ---\n\n\n[1] x\n",
			"a\n",
			"[1] x\n",
		},
		{
			"delimiter at start",
			"--- BACKMATTER ---\nb",
			"",
			"b",
		},
		{
			"case-sensitive marker",
			"a\n--- backmatter ---\nb\n",
			"a\n--- backmatter ---\nb\n",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inline, back := SplitDocument(tt.doc)
			if inline != tt.wantInline {
				t.Errorf("inline = %q, want %q", inline, tt.wantInline)
			}
			if back != tt.wantBack {
				t.Errorf("backmatter = %q, want %q", back, tt.wantBack)
			}
		})
	}
}

// TestComposeDocumentRoundTrip verifies composed documents split back into
// their parts.
func TestComposeDocumentRoundTrip(t *testing.T) {
	doc := ComposeDocument("The [cat::1] sat.", `[1] REPLACE "dog" -> "cat" [WORD](species)`)

	inline, back := SplitDocument(doc)
	if got := inline; got != "The [cat::1] sat.\n\n" {
		t.Errorf("inline = %q", got)
	}
	if back != `[1] REPLACE "dog" -> "cat" [WORD](species)`+"\n" {
		t.Errorf("backmatter = %q", back)
	}
}

// TestComposeDocumentBlankBackmatter verifies a blank backmatter block
// composes to the bare inline text.
func TestComposeDocumentBlankBackmatter(t *testing.T) {
	if got := ComposeDocument("text\n", "  \n"); got != "text\n" {
		t.Errorf("ComposeDocument = %q, want %q", got, "text\n")
	}
}
