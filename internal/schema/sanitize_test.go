package schema

import "testing"

func TestStripTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "Just text", "Just text"},
		{"tags removed", "<p>Hello <b>world</b></p>", "Hello world"},
		{"whitespace collapsed", "a  lot\n\nof\t space", "a lot of space"},
		{"entities folded back", "Ben &amp; Jerry", "Ben & Jerry"},
		{"quotes survive", `say "hi"`, `say "hi"`},
		{"empty stays empty", "", ""},
		{"script content dropped", "<script>alert(1)</script>safe", "safe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripTags(tt.in); got != tt.want {
				t.Errorf("StripTags(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
