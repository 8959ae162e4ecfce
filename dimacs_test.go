package satgo

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseDIMACS(t *testing.T) {
	for _, tt := range []struct {
		name    string
		text    string
		want    [][]int
		wantErr bool
	}{
		{
			name: "comment and problem line skipped",
			text: `c a trivial problem
p cnf 2 2
1 2 0
-1 -2 0
`,
			want: [][]int{{1, 2}, {-1, -2}},
		},
		{
			name: "percent trailer line skipped",
			text: `1 0
%
some trailer junk that isn't CNF at all
`,
			want: [][]int{{1}},
		},
		{
			name: "bare zero-prefixed line is skipped entirely, not just the terminator",
			text: `01 2 0
1 2 0
`,
			// "01 2 0" begins with the rune '0', so the whole line is
			// dropped by the leading-character check, not parsed as the
			// clause {1, 2}.
			want: [][]int{{1, 2}},
		},
		{
			name: "clause split across lines",
			text: `1 2
3 0
`,
			want: [][]int{{1, 2, 3}},
		},
		{
			name:    "empty post-parse clause rejected",
			text:    "1 0 0\n",
			wantErr: true,
		},
		{
			name:    "no clauses at all rejected",
			text:    "c only comments\np cnf 3 0\n",
			wantErr: true,
		},
		{
			name:    "non-integer literal rejected",
			text:    "1 x 0\n",
			wantErr: true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDIMACS(strings.NewReader(tt.text))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDIMACS(%q) = %v, want error", tt.text, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDIMACS(%q) returned error: %v", tt.text, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseDIMACS(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}
