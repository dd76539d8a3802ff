package template

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

const sampleSetJSON = `{
  "name": "spells",
  "templates": {
    "  Damage ": [
      {"template_id": "single_hit", "label": "Single hit", "body": "SFX = {sfx_1}"},
      null,
      {"label": ""}
    ],
    "": [
      {"template_id": "orphan", "label": "Orphan", "body": ""}
    ],
    "Support": []
  }
}`

func TestUnmarshalSetNormalizes(t *testing.T) {
	set, err := UnmarshalSet([]byte(sampleSetJSON))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if set.Name != "spells" {
		t.Errorf("Name = %q", set.Name)
	}
	// Blank category and empty groups dropped, key trimmed.
	if len(set.Templates) != 1 {
		t.Fatalf("categories = %d, want 1", len(set.Templates))
	}
	group, ok := set.Templates["Damage"]
	if !ok {
		t.Fatalf("trimmed category missing, have %v", set.Categories())
	}
	if len(group) != 2 {
		t.Fatalf("group = %d templates, want 2 (nil dropped)", len(group))
	}
	// Hand-edited files get defaults filled in.
	if group[1].ID != "custom" || group[1].Label != "Unnamed template" {
		t.Errorf("defaults not applied: %+v", group[1])
	}
	if group[1].Placeholders == nil {
		t.Error("Placeholders should never be nil after decode")
	}
}

func TestUnmarshalSetBadJSON(t *testing.T) {
	if _, err := UnmarshalSet([]byte("{not json")); err == nil {
		t.Error("want decode error")
	}
}

func TestCategoriesSortedCaseInsensitive(t *testing.T) {
	set := &Set{Templates: map[Category][]*Template{
		"zeta":  {{ID: "z"}},
		"Alpha": {{ID: "a"}},
		"beta":  {{ID: "b"}},
	}}
	got := set.Categories()
	want := []Category{"Alpha", "beta", "zeta"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Categories() = %v, want %v", got, want)
		}
	}
}

func TestFind(t *testing.T) {
	set := &Set{Templates: map[Category][]*Template{
		"Damage":  {{ID: "single_hit", Label: "Single hit"}},
		"Support": {{ID: "buff", Label: "Buff"}},
	}}
	tpl, cat, ok := set.Find("buff")
	if !ok || cat != "Support" || tpl.Label != "Buff" {
		t.Errorf("Find(buff) = %v, %q, %v", tpl, cat, ok)
	}
	if _, _, ok := set.Find("nope"); ok {
		t.Error("unknown id should miss")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := &Template{
		ID:           "single_hit",
		Placeholders: map[string]string{"sfx_1": "SFX identifier"},
		Blocks:       []string{"SFX"},
	}
	cp := orig.Clone()
	cp.Placeholders["sfx_1"] = "changed"
	cp.Blocks[0] = "changed"
	if orig.Placeholders["sfx_1"] != "SFX identifier" || orig.Blocks[0] != "SFX" {
		t.Error("Clone should not alias the original's maps or slices")
	}
}

func TestSetFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spells.json")
	set := &Set{
		Name: "spells",
		Templates: map[Category][]*Template{
			"Damage": {{
				ID:           "single_hit",
				Label:        "Single hit",
				Body:         "SFX = {sfx_1}",
				Placeholders: map[string]string{"sfx_1": "SFX identifier"},
			}},
		},
	}
	if err := SaveSet(set, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := LoadSet(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Name != "spells" || got.Len() != 1 {
		t.Errorf("loaded set = %q with %d templates", got.Name, got.Len())
	}
	tpl, _, ok := got.Find("single_hit")
	if !ok || tpl.Body != "SFX = {sfx_1}" {
		t.Errorf("loaded template = %+v, %v", tpl, ok)
	}
}

func TestLoadSetMissing(t *testing.T) {
	_, err := LoadSet(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadSet() = %v, want fs.ErrNotExist", err)
	}
}
