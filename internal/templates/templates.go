package templates

import (
	"embed"
	"fmt"
	"io"
	"text/template"
)

//go:embed *.tmpl
var templatesFS embed.FS

// Get returns the content of the specified template file.
func Get(name string) (string, error) {
	content, err := templatesFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return string(content), nil
}

// Execute parses the named template with funcMap and renders data into w.
func Execute(w io.Writer, name string, data any, funcMap template.FuncMap) error {
	content, err := Get(name)
	if err != nil {
		return err
	}

	if funcMap == nil {
		funcMap = template.FuncMap{}
	}

	t, err := template.New(name).Funcs(funcMap).Parse(content)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	return t.Execute(w, data)
}
