package scenario

import (
	"strings"
	"testing"
)

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}

	tests := []struct {
		name    string
		s       Scenario
		wantErr bool
	}{
		{"valid", Scenario{Situation: "A client sold stock.", Question: "What is the gain?"}, false},
		{"empty situation", Scenario{Situation: "  ", Question: "What is the gain?"}, true},
		{"empty question", Scenario{Situation: "A client sold stock.", Question: ""}, true},
		{"no question mark", Scenario{Situation: "A client sold stock.", Question: "State the gain."}, true},
		{"situation too long", Scenario{Situation: strings.Repeat("x", 3001), Question: "Why?"}, true},
		{"question too long", Scenario{Situation: "ok", Question: strings.Repeat("y", 600) + "?"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.s, Input{})
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if err != nil && !err.Retryable {
				t.Error("structural failures should be retryable")
			}
		})
	}
}
