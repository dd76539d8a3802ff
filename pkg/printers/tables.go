package printers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/memoria-modding/memkit/pkg/sequence"
	"github.com/memoria-modding/memkit/pkg/template"
)

// Folders renders the effect folders of a sequence directory with their
// file counts.
func (pp *PrettyPrint) Folders(folders ...*sequence.Folder) {
	if len(folders) == 0 {
		pp.none()
		return
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Folder"), bold.Sprint("Sequences"))
	for _, fo := range folders {
		tbl.AddRow(fo.Name(), len(fo.Files))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Files renders sequence files of one folder.
func (pp *PrettyPrint) Files(files ...*sequence.File) {
	if len(files) == 0 {
		pp.none()
		return
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Sequence"), bold.Sprint("Folder"))
	for _, f := range files {
		tbl.AddRow(f.Filename, filepath.Base(f.FolderPath))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Templates renders a template set grouped by category.
func (pp *PrettyPrint) Templates(set *template.Set) {
	if set == nil || set.Len() == 0 {
		pp.none()
		return
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow(bold.Sprint("Category"), bold.Sprint("ID"), bold.Sprint("Label"), bold.Sprint("Placeholders"))
	for _, cat := range set.Categories() {
		for _, t := range set.Templates[cat] {
			tbl.AddRow(string(cat), t.ID, t.Label, strings.Join(template.ExtractPlaceholders(t.Body), ", "))
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Template renders one template in full.
func (pp *PrettyPrint) Template(t *template.Template) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	_, _ = bold.Printf("%s", t.Label)
	_, _ = faint.Printf("  (%s)\n", t.ID)
	if t.Description != "" {
		fmt.Println(t.Description)
	}
	pp.NewLine()
	fmt.Println(strings.TrimRight(t.Body, "\n"))
	if len(t.Placeholders) > 0 {
		pp.NewLine()
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow(bold.Sprint("Placeholder"), bold.Sprint("Meaning"))
		for _, name := range template.ExtractPlaceholders(t.Body) {
			tbl.AddRow("{"+name+"}", t.Placeholders[name])
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
	}
	if t.Notes != "" {
		pp.NewLine()
		_, _ = faint.Println(t.Notes)
	}
}
