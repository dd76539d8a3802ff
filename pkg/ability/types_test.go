package ability

import (
	"strings"
	"testing"
)

func TestTypeForAlias(t *testing.T) {
	tests := []struct {
		alias string
		want  TargetType
	}{
		{"sa", SA},
		{"SA", SA},
		{"support", SA},
		{"sa-global", SAGlobal},
		{"SA_GLOBAL_LAST", SAGlobalLast},
		{"aa", AA},
		{"aa-global", AAGlobal},
	}
	for _, tc := range tests {
		got, err := TypeForAlias(tc.alias)
		if err != nil || got != tc.want {
			t.Errorf("TypeForAlias(%q) = %v, %v; want %v", tc.alias, got, err, tc.want)
		}
	}

	if _, err := TypeForAlias("bogus"); err == nil {
		t.Error("expected error for unknown alias")
	}
}

func TestTypeExample(t *testing.T) {
	for _, info := range DefaultTypes() {
		ex := TypeExample(info.Key)
		if ex == "" {
			t.Errorf("no example for %s", info.Key)
			continue
		}
		if !strings.HasPrefix(ex, "EXAMPLE:\n>") {
			t.Errorf("example for %s should show a header line, got %q", info.Key, ex[:20])
		}
	}
	if TypeExample("NOPE") != "" {
		t.Error("unknown type should yield an empty example")
	}
}

func TestScopesFor(t *testing.T) {
	if got := ScopesFor(SA); len(got) == 0 {
		t.Error("SA should have scopes")
	}
	if got := ScopesFor(SAGlobalEnemy); len(got) != 1 || got[0].Key != "Ability" {
		t.Errorf("SAGlobalEnemy scopes = %v", got)
	}
	if got := ScopesFor("NOPE"); len(got) != 0 {
		t.Errorf("unknown type scopes = %v, want none", got)
	}
}

func TestBlocksFor(t *testing.T) {
	got := BlocksFor([]string{"Condition", "Unknown", "MPCost"})
	if len(got) != 2 || got[0].Key != "Condition" || got[1].Key != "MPCost" {
		t.Errorf("BlocksFor = %v", got)
	}
	if len(Blocks()) == 0 {
		t.Error("Blocks should list the registry")
	}
}
