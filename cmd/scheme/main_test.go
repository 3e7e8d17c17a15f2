package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunLua(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr bool
	}{
		{
			name: "parse and format",
			src: `
local scheme = require("scheme")
local v, rest, err = scheme.parse("#f tail")
assert(err == nil)
assert(v.bool == false)
assert(rest == " tail")
assert(scheme.format(v) == "#f")
`,
		},
		{
			name:    "failing assertion",
			src:     `assert(require("scheme").parse("1").number == 2)`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "script.lua")
			if err := os.WriteFile(path, []byte(tt.src), 0o644); err != nil {
				t.Fatal(err)
			}
			if err := runLua(path); (err != nil) != tt.wantErr {
				t.Errorf("runLua() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
