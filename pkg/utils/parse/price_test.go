package parse

import "testing"

func TestPrice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		none  bool
	}{
		{name: "comma decimal", input: "2,49", want: 2.49},
		{name: "dot decimal", input: "0.69", want: 0.69},
		{name: "with euro sign", input: "3,99 €", want: 3.99},
		{name: "with non-breaking space", input: "3,99 €", want: 3.99},
		{name: "single decimal digit", input: "2,5", want: 2.5},
		{name: "integer only", input: "12 €", want: 12},
		{name: "embedded in label", input: "Prix : 4,15 €", want: 4.15},
		{name: "no digits", input: "prix indisponible", none: true},
		{name: "empty", input: "", none: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Price(tt.input)
			if tt.none {
				if got != nil {
					t.Errorf("Price(%q) = %v, want nil", tt.input, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("Price(%q) = nil, want %v", tt.input, tt.want)
			}
			if *got != tt.want {
				t.Errorf("Price(%q) = %v, want %v", tt.input, *got, tt.want)
			}
		})
	}
}
