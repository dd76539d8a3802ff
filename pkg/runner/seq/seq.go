// Package seq provides the CLI verbs for battle-SFX sequence
// directories.
package seq

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/memoria-modding/memkit/pkg/app"
	"github.com/memoria-modding/memkit/pkg/printers"
	"github.com/memoria-modding/memkit/pkg/template"
)

// List prints the effect folders of a root, or the files of one folder.
type List struct {
	Root    string
	Folder  string
	Service *app.Service
}

func (l *List) Do(ctx context.Context) error {
	doc, err := l.Service.OpenSequences(l.Root)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")

	if l.Folder != "" {
		folder, ok := doc.FolderMap()[l.Folder]
		if !ok {
			return fmt.Errorf("no folder named %q under %s", l.Folder, l.Root)
		}
		pp.TitleWithCount(l.Folder, len(folder.Files), "sequence")
		pp.Files(folder.SortedFiles()...)
		return nil
	}

	pp.TitleWithCount(l.Root, len(doc.Folders), "folder")
	pp.Folders(doc.Folders...)
	return nil
}

// Show prints one sequence script.
type Show struct {
	Root     string
	Folder   string
	Filename string
	Copy     bool
	Service  *app.Service
}

func (s *Show) Do(ctx context.Context) error {
	doc, err := s.Service.OpenSequences(s.Root)
	if err != nil {
		return err
	}

	f := doc.FindFile(s.Folder, s.Filename)
	if f == nil {
		return fmt.Errorf("no sequence %s/%s under %s", s.Folder, s.Filename, s.Root)
	}
	text, err := f.ReadText(false)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(f.Identifier())
	pp.Text(text)

	if s.Copy {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("copy sequence: %w", err)
		}
		pp.Successf("copied %s to clipboard", f.Identifier())
	}
	return nil
}

// Create makes a new effect folder, or a new sequence file when a
// filename is given. An empty folder name asks for a suggestion.
type Create struct {
	Root     string
	Folder   string
	Filename string
	Body     string
	Template string
	Service  *app.Service
}

func (c *Create) Do(ctx context.Context) error {
	if _, err := c.Service.OpenSequences(c.Root); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}

	folder := c.Folder
	if folder == "" {
		suggested, err := c.Service.SuggestFolder("ef")
		if err != nil {
			return err
		}
		folder = suggested
	}

	if c.Filename == "" {
		path, err := c.Service.CreateFolder(folder)
		if err != nil {
			return err
		}
		pp.Successf("created folder %s", path)
		return nil
	}

	body := c.Body
	if c.Template != "" {
		t, err := c.Service.FindTemplate("", c.Template)
		if err != nil {
			return err
		}
		rendered, missing := template.Render(t, nil)
		if len(missing) > 0 {
			pp.Warnf("unfilled placeholders: %s", strings.Join(missing, ", "))
		}
		body = rendered
	}

	f, err := c.Service.CreateSequence(folder, c.Filename, body)
	if err != nil {
		return err
	}
	pp.Successf("created %s", f.Identifier())
	return nil
}

// Rename renames a sequence file, or the folder itself when no filename
// is given. The action lands on the undo stack.
type Rename struct {
	Root     string
	Folder   string
	Filename string
	NewName  string
	Service  *app.Service
}

func (r *Rename) Do(ctx context.Context) error {
	doc, err := r.Service.OpenSequences(r.Root)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}

	if r.Filename == "" {
		if err := r.Service.RenameFolder(r.Folder, r.NewName); err != nil {
			return err
		}
		pp.Successf("renamed folder %s to %s", r.Folder, r.NewName)
		return nil
	}

	f := doc.FindFile(r.Folder, r.Filename)
	if f == nil {
		return fmt.Errorf("no sequence %s/%s under %s", r.Folder, r.Filename, r.Root)
	}
	if err := r.Service.RenameSequence(f, r.NewName); err != nil {
		return err
	}
	pp.Successf("renamed to %s", f.Identifier())
	return nil
}
