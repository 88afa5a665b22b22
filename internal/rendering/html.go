// Package rendering turns a merged resume into the HTML document handed to
// the PDF exporter. The template is embedded so the binary is self-contained.
package rendering

import (
	"embed"
	"html/template"
	"sort"
	"strings"

	"github.com/jonathan/resume-forge/internal/types"
)

//go:embed resume.html
var templateFiles embed.FS

var resumeTmpl = template.Must(
	template.New("resume.html").Funcs(template.FuncMap{
		"join": strings.Join,
	}).ParseFS(templateFiles, "resume.html"),
)

// templateData wraps the merged resume with a deterministically ordered
// skills view. Ranging a map directly would reorder categories run to run.
type templateData struct {
	*types.MergedResume
	Skills []skillCategory
}

type skillCategory struct {
	Name  string
	Items []string
}

// Render produces the final HTML document for a merged resume.
func Render(resume *types.MergedResume) (string, error) {
	var sb strings.Builder
	if err := resumeTmpl.Execute(&sb, newTemplateData(resume)); err != nil {
		return "", &RenderError{Message: "failed to execute resume template", Cause: err}
	}
	return sb.String(), nil
}

func newTemplateData(resume *types.MergedResume) templateData {
	categories := make([]skillCategory, 0, len(resume.Skills))
	for name, items := range resume.Skills {
		categories = append(categories, skillCategory{Name: name, Items: items})
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return templateData{MergedResume: resume, Skills: categories}
}
