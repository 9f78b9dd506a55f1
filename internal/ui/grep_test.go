package ui

import (
	"errors"
	"testing"
)

func TestSplitGrepArgs(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantPattern string
		wantOpts    []string
		wantErr     bool
	}{
		{name: "pattern only", args: []string{"todo"}, wantPattern: "todo"},
		{name: "options after pattern", args: []string{"todo", "-i", "-C3"}, wantPattern: "todo", wantOpts: []string{"-i", "-C3"}},
		{name: "options before pattern", args: []string{"-i", "todo"}, wantPattern: "todo", wantOpts: []string{"-i"}},
		{name: "extra positionals pass through", args: []string{"todo", "done"}, wantPattern: "todo", wantOpts: []string{"done"}},
		{name: "no pattern", args: []string{"-i"}, wantErr: true},
		{name: "empty", args: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern, opts, err := splitGrepArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %t", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if pattern != tt.wantPattern {
				t.Errorf("pattern = %q, want %q", pattern, tt.wantPattern)
			}
			if len(opts) != len(tt.wantOpts) {
				t.Fatalf("opts = %v, want %v", opts, tt.wantOpts)
			}
			for i := range opts {
				if opts[i] != tt.wantOpts[i] {
					t.Errorf("opts[%d] = %q, want %q", i, opts[i], tt.wantOpts[i])
				}
			}
		})
	}
}

func TestSplitGrepArgsHelp(t *testing.T) {
	_, _, err := splitGrepArgs([]string{"--help"})
	if !errors.Is(err, errHelpRequested) {
		t.Errorf("expected errHelpRequested, got %v", err)
	}
}
