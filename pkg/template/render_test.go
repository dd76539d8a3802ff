package template

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractPlaceholders(t *testing.T) {
	got := ExtractPlaceholders("SFX = {sfx_1}; Anim = {anim_1}; SFX = {sfx_1}")
	want := []string{"sfx_1", "anim_1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractPlaceholders() = %v, want %v", got, want)
	}
	if got := ExtractPlaceholders("no placeholders here"); got != nil {
		t.Errorf("plain text = %v, want nil", got)
	}
	// Braced digits are not placeholders.
	if got := ExtractPlaceholders("frame {12}"); got != nil {
		t.Errorf("numeric brace = %v, want nil", got)
	}
}

func TestRender(t *testing.T) {
	tpl := &Template{Body: "SFX = {sfx_1}\nAnim = {anim_1}\n"}

	text, missing := Render(tpl, map[string]string{"sfx_1": "1234", "anim_1": "run"})
	if text != "SFX = 1234\nAnim = run\n" || missing != nil {
		t.Errorf("full render = %q, missing %v", text, missing)
	}

	text, missing = Render(tpl, map[string]string{"sfx_1": "1234"})
	if text != "SFX = 1234\nAnim = {anim_1}\n" {
		t.Errorf("partial render = %q, unfilled placeholder must stay literal", text)
	}
	if !reflect.DeepEqual(missing, []string{"anim_1"}) {
		t.Errorf("missing = %v, want [anim_1]", missing)
	}
}

func TestParameterize(t *testing.T) {
	script := "PlaySFX: SFX = 1234; Time = 10\nPlaySFX: SFX = 5678\nPlayAnim: Anim = MP_RUN\nMessage: Text = Fire!\n"
	body, placeholders := Parameterize(script)

	for _, want := range []string{"SFX = {sfx_1}", "SFX = {sfx_2}", "Anim = {anim_1}", "Text = {text_1}"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
	if strings.Contains(body, "1234") || strings.Contains(body, "MP_RUN") {
		t.Errorf("literal values should be lifted out:\n%s", body)
	}
	// Untouched arguments survive.
	if !strings.Contains(body, "Time = 10") {
		t.Errorf("non-parameterized argument lost:\n%s", body)
	}

	want := map[string]string{
		"sfx_1":  "SFX identifier (was 1234)",
		"sfx_2":  "SFX identifier (was 5678)",
		"anim_1": "Animation identifier (was MP_RUN)",
		"text_1": "Message text (was Fire!)",
	}
	if !reflect.DeepEqual(placeholders, want) {
		t.Errorf("placeholders = %v, want %v", placeholders, want)
	}
}

func TestParameterizeNoArguments(t *testing.T) {
	body, placeholders := Parameterize("Wait: Time = 5\n")
	if body != "Wait: Time = 5\n" {
		t.Errorf("body = %q, want unchanged", body)
	}
	if len(placeholders) != 0 {
		t.Errorf("placeholders = %v, want none", placeholders)
	}
}
