// Package ui is the legacy terminal browser for snippet templates.
package ui

import (
	"context"
	"fmt"
	"strings"

	tui "github.com/marcusolsson/tui-go"

	"github.com/memoria-modding/memkit/pkg/ability"
	"github.com/memoria-modding/memkit/pkg/template"
)

// UI browses one template set: categories on the left, templates on the
// right, with a target-type reference popup on 'k'.
type UI struct {
	Set *template.Set

	categories []template.Category

	dirty string

	index      *tui.Table
	indexTitle string
	indexView  *tui.Box

	templates     *tui.Table
	templatesView *tui.Box
	templateTitle string

	detail *tui.Label
}

func (d *UI) Do(ctx context.Context) error {
	iTable := tui.NewTable(1, 0)

	index := tui.NewVBox(
		iTable,
		tui.NewSpacer(),
	)
	index.SetBorder(true)
	index.SetSizePolicy(tui.Preferred, tui.Expanding)

	tTable := tui.NewTable(1, 0)
	tTable.SetFocused(true)
	tTable.SetSizePolicy(tui.Expanding, tui.Maximum)

	status := tui.NewStatusBar("")
	status.SetPermanentText(`Use left or right arrows to navigate, ENTER to view, 'k' for type reference, ESC or 'q' to QUIT`)

	templates := tui.NewVBox(tTable)
	templates.SetBorder(true)
	templates.SetSizePolicy(tui.Expanding, tui.Maximum)

	detail := tui.NewLabel("")
	detail.SetWordWrap(true)
	detailView := tui.NewVBox(detail, tui.NewSpacer())
	detailView.SetBorder(true)
	detailView.SetTitle("template")

	selector := tui.NewHBox(index, templates)

	root := tui.NewVBox(
		selector,
		tui.NewSpacer(),
		status,
	)

	types := typesUI()
	types.SetBorder(true)
	types.SetTitle("target types")

	popup := tui.NewVBox(
		tui.NewHBox(types, tui.NewSpacer()),
		tui.NewSpacer(),
		status,
	)

	detailRoot := tui.NewVBox(
		detailView,
		tui.NewSpacer(),
		status,
	)

	ui, err := tui.New(root)
	if err != nil {
		return err
	}

	d.index = iTable
	d.indexTitle = "categories"
	d.indexView = index
	d.templates = tTable
	d.templatesView = templates
	d.detail = detail
	d.categories = d.Set.Categories()

	d.populateIndex()

	showingDetail := false
	tTable.OnItemActivated(func(t *tui.Table) {
		if tpl := d.selectedTemplate(); tpl != nil {
			d.detail.SetText(detailText(tpl))
			ui.SetWidget(detailRoot)
			showingDetail = true
		}
	})

	iTable.OnSelectionChanged(func(table *tui.Table) {
		d.populateTemplates()
	})

	isTypes := false
	ui.SetKeybinding("k", func() {
		if isTypes {
			ui.SetWidget(root)
			isTypes = false
		} else {
			ui.SetWidget(popup)
			isTypes = true
		}
	})

	ui.SetKeybinding("Left", func() {
		d.focusIndex()
	})

	ui.SetKeybinding("Right", func() {
		d.focusTemplates()
	})

	ui.SetKeybinding("Esc", func() {
		if showingDetail || isTypes {
			ui.SetWidget(root)
			showingDetail = false
			isTypes = false
			return
		}
		ui.Quit()
	})
	ui.SetKeybinding("q", func() { ui.Quit() })

	d.populateTemplates()
	d.focusTemplates()

	if err := ui.Run(); err != nil {
		return err
	}
	return nil
}

func (d *UI) focusIndex() {
	d.index.SetFocused(true)
	d.indexView.SetTitle(strings.ToUpper(d.indexTitle))

	d.templates.SetFocused(false)
	d.templatesView.SetTitle("")
}

func (d *UI) focusTemplates() {
	d.index.SetFocused(false)
	d.indexView.SetTitle(d.indexTitle)

	d.templates.SetFocused(true)
	d.templatesView.SetTitle(d.templateTitle)
}

func (d *UI) populateIndex() {
	d.index.RemoveRows()
	d.index.Select(0)

	for _, c := range d.categories {
		d.index.AppendRow(tui.NewLabel(string(c)))
	}
}

func (d *UI) selectedCategory() template.Category {
	if d.index.Selected() < 0 || d.index.Selected() >= len(d.categories) {
		return ""
	}
	return d.categories[d.index.Selected()]
}

func (d *UI) selectedTemplate() *template.Template {
	cat := d.selectedCategory()
	if cat == "" {
		return nil
	}
	tpls := d.Set.Templates[cat]
	sel := d.templates.Selected()
	if sel < 0 || sel >= len(tpls) {
		return nil
	}
	return tpls[sel]
}

func (d *UI) populateTemplates() {
	selected := string(d.selectedCategory())

	if d.dirty != selected {
		d.templates.RemoveRows()
		d.templateTitle = selected
		for _, t := range d.Set.Templates[template.Category(selected)] {
			d.templates.AppendRow(tui.NewLabel(t.Label))
		}
		d.dirty = selected
	}
}

func detailText(t *template.Template) string {
	var b strings.Builder
	b.WriteString(t.Label)
	b.WriteString("\n\n")
	if t.Description != "" {
		b.WriteString(t.Description)
		b.WriteString("\n\n")
	}
	b.WriteString(t.Body)
	if len(t.Placeholders) > 0 {
		b.WriteString("\n")
		for _, name := range template.ExtractPlaceholders(t.Body) {
			b.WriteString(fmt.Sprintf("{%s}  %s\n", name, t.Placeholders[name]))
		}
	}
	return b.String()
}

func typesUI() *tui.Box {
	rows := make([]tui.Widget, 0)
	rows = append(rows, tui.NewLabel("Target types"))

	for _, info := range ability.DefaultTypes() {
		rows = append(rows, tui.NewLabel(fmt.Sprintf("%-18s %s", info.Label, info.Tooltip)))
	}
	rows = append(rows, tui.NewSpacer())

	return tui.NewVBox(rows...)
}
