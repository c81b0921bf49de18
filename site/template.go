package site

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Placeholders replaced in a page template.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// ErrMissingPlaceholder is returned for a template without a content
// placeholder.
var ErrMissingPlaceholder = errors.New("template has no " + ContentPlaceholder + " placeholder")

// Template is a page skeleton with title and content placeholders.
type Template struct {
	text string
}

// ParseTemplate checks text for the content placeholder.
func ParseTemplate(text []byte) (*Template, error) {
	t := &Template{text: string(text)}
	if !strings.Contains(t.text, ContentPlaceholder) {
		return nil, errors.WithStack(ErrMissingPlaceholder)
	}
	if !strings.Contains(t.text, TitlePlaceholder) {
		tracer().Infof("template has no %s placeholder", TitlePlaceholder)
	}
	return t, nil
}

// ReadTemplate parses the template file at path.
func ReadTemplate(path string) (*Template, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read template")
	}
	t, err := ParseTemplate(text)
	if err != nil {
		return nil, errors.Wrapf(err, "template %s", path)
	}
	return t, nil
}

// Execute replaces every placeholder. Substituted text is not scanned for
// placeholders again.
func (t *Template) Execute(title, content string) string {
	r := strings.NewReplacer(TitlePlaceholder, title, ContentPlaceholder, content)
	return r.Replace(t.text)
}
