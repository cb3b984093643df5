package mcp

import (
	"encoding/json"
	"testing"
)

func TestFlexBoolUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    bool
		wantErr bool
	}{
		{"bool true", `true`, true, false},
		{"bool false", `false`, false, false},
		{"string true", `"true"`, true, false},
		{"string false", `"false"`, false, false},
		{"string one", `"1"`, true, false},
		{"string yes", `"yes"`, true, false},
		{"string other", `"nope"`, false, false},
		{"number", `5`, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var fb FlexBool
			err := json.Unmarshal([]byte(tc.input), &fb)
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error for %s", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal %s: %v", tc.input, err)
			}
			if bool(fb) != tc.want {
				t.Errorf("FlexBool(%s) = %v, want %v", tc.input, fb, tc.want)
			}
		})
	}
}

func TestFlexIntUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"int", `42`, 42, false},
		{"zero", `0`, 0, false},
		{"string int", `"17"`, 17, false},
		{"string junk", `"abc"`, 0, true},
		{"bool", `true`, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var fi FlexInt
			err := json.Unmarshal([]byte(tc.input), &fi)
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error for %s", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal %s: %v", tc.input, err)
			}
			if int(fi) != tc.want {
				t.Errorf("FlexInt(%s) = %d, want %d", tc.input, fi, tc.want)
			}
		})
	}
}

func TestFlexArgsInToolPayload(t *testing.T) {
	var args CoverageArgs
	if err := json.Unmarshal([]byte(`{"uncovered": "true"}`), &args); err != nil {
		t.Fatalf("unmarshal args: %v", err)
	}
	if !bool(args.Uncovered) {
		t.Error("expected uncovered to be true")
	}

	var runs RunsArgs
	if err := json.Unmarshal([]byte(`{"limit": "5"}`), &runs); err != nil {
		t.Fatalf("unmarshal runs args: %v", err)
	}
	if int(runs.Limit) != 5 {
		t.Errorf("limit = %d, want 5", runs.Limit)
	}
}
