package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/spf13/pflag"

	"github.com/eringen/staticpress/scaffold"
)

// scaffoldData holds the template variables passed to every scaffold template.
type scaffoldData struct {
	ProjectName string
	SiteName    string
	Lang        string
	Date        string
}

func runNew(args []string, out io.Writer) error {
	flags := pflag.NewFlagSet("new", pflag.ContinueOnError)
	lang := flags.String("lang", "ja", "document language of the new site")
	if ok, err := parseFlags(flags, args); !ok {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("usage: staticpress new <project-name>")
	}
	return scaffoldProject(flags.Arg(0), *lang, out)
}

// scaffoldProject creates dir from the embedded templates.
func scaffoldProject(dir, lang string, out io.Writer) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %q already exists", dir)
	}
	name := filepath.Base(filepath.Clean(dir))
	data := scaffoldData{
		ProjectName: name,
		SiteName:    toTitle(name),
		Lang:        lang,
		Date:        time.Now().Format("2006-01-02"),
	}

	fmt.Fprintf(out, "Creating new staticpress project: %s\n\n", dir)

	const root = "templates"
	err := fs.WalkDir(scaffold.Templates, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		outPath := filepath.Join(dir, relPath)
		outPath = strings.TrimSuffix(outPath, ".tmpl")
		// Dotfiles are stored as dot<name> so that embed picks them up
		// under any pattern.
		if base := filepath.Base(outPath); strings.HasPrefix(base, "dot") {
			outPath = filepath.Join(filepath.Dir(outPath), "."+strings.TrimPrefix(base, "dot"))
		}

		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		src, err := scaffold.Templates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		tmpl, err := template.New(filepath.Base(path)).Parse(string(src))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return err
		}
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()
		if err := tmpl.Execute(f, data); err != nil {
			return fmt.Errorf("execute template %s: %w", path, err)
		}

		fmt.Fprintf(out, "  created %s\n", outPath)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Done! Next steps:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  cd %s\n", dir)
	fmt.Fprintln(out, "  staticpress serve")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Write posts in posts/*.mdx, then run 'staticpress build' to render dist/.")
	return nil
}

// toTitle converts a hyphenated or lowercase name to a title-case string.
// e.g. "my-blog" -> "My Blog", "myblog" -> "Myblog"
func toTitle(s string) string {
	parts := strings.Split(s, "-")
	for i, p := range parts {
		if len(p) > 0 {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
