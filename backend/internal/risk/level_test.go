package risk

import (
	"encoding/json"
	"testing"
)

func TestLevelOrdering(t *testing.T) {
	if !(None < Low && Low < Medium && Medium < High && High < Critical) {
		t.Fatal("level ordering broken")
	}
}

func TestEscalateClampsAtCritical(t *testing.T) {
	tests := []struct {
		start Level
		steps int
		want  Level
	}{
		{None, 1, Low},
		{Low, 2, High},
		{Medium, 2, Critical},
		{High, 5, Critical},
		{Critical, 1, Critical},
		{Low, 0, Low},
	}
	for _, tt := range tests {
		if got := tt.start.Escalate(tt.steps); got != tt.want {
			t.Errorf("%s.Escalate(%d) = %s, want %s", tt.start, tt.steps, got, tt.want)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(Low, High) != High {
		t.Error("Max(Low, High) should be High")
	}
	if Max(Critical, Medium) != Critical {
		t.Error("Max(Critical, Medium) should be Critical")
	}
	if Max(None, None) != None {
		t.Error("Max(None, None) should be None")
	}
}

func TestLevelJSONRoundTrip(t *testing.T) {
	for _, l := range []Level{None, Low, Medium, High, Critical} {
		data, err := json.Marshal(l)
		if err != nil {
			t.Fatalf("marshal %s: %v", l, err)
		}
		var back Level
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if back != l {
			t.Errorf("round trip %s came back as %s", l, back)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	if _, err := Parse("severe"); err == nil {
		t.Error("expected error for unknown level name")
	}
}
