package arg

import "testing"

func TestHandleQuery(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		expect  string
		wantErr bool
	}{
		{name: "single word", args: []string{"git"}, expect: "git"},
		{name: "joined words", args: []string{"git", "notes"}, expect: "git notes"},
		{name: "trimmed", args: []string{"  docker "}, expect: "docker"},
		{name: "empty", args: nil, wantErr: true},
		{name: "blank", args: []string{" ", ""}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := HandleQuery(tc.args)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("HandleQuery(%v) expected an error", tc.args)
				}
				return
			}
			if err != nil {
				t.Fatalf("HandleQuery(%v) unexpected error: %v", tc.args, err)
			}
			if got != tc.expect {
				t.Fatalf("HandleQuery(%v) = %q, want %q", tc.args, got, tc.expect)
			}
		})
	}
}
