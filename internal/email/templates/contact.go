package templates

import (
	_ "embed"
	"html/template"
	"strings"
)

//go:embed contact.html
var contactHTML string

var contactTmpl = template.Must(template.New("contact").Parse(contactHTML))

// ContactData holds the fields rendered into the contact-form email body.
type ContactData struct {
	Name    string
	Email   string
	Message string
}

// RenderContactEmail renders the HTML body for a contact-form message.
// The message is escaped and its newlines become <br> so multi-paragraph
// messages survive the trip into HTML.
func RenderContactEmail(data ContactData) (string, error) {
	escaped := template.HTMLEscapeString(data.Message)
	body := struct {
		Name        string
		Email       string
		MessageHTML template.HTML
	}{
		Name:        data.Name,
		Email:       data.Email,
		MessageHTML: template.HTML(strings.ReplaceAll(escaped, "\n", "<br>")),
	}

	var buf strings.Builder
	err := contactTmpl.Execute(&buf, body)
	return buf.String(), err
}
