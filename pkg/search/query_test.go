package search

import "testing"

func TestParseObjectQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"single pair", "type:Laadpaal", "type__exact__Laadpaal"},
		{
			"multiple pairs with spaces in value",
			"adres:Utrechtsestraat 41, type:Laadpaal",
			"adres__exact__Utrechtsestraat 41,type__exact__Laadpaal",
		},
		{"bare term filters on name", "Acme", "name__exact__Acme"},
		{"mixed bare and keyed", "Acme, type:Laadpaal", "name__exact__Acme,type__exact__Laadpaal"},
		{"trailing comma ignored", "type:Laadpaal,", "type__exact__Laadpaal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseObjectQuery(tt.query); got != tt.want {
				t.Errorf("ParseObjectQuery(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}
