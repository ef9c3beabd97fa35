package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/summitinspect/leadgate/internal/models"
)

// HTML bodies are rendered with html/template so user-supplied field values
// are always escaped.

var inspectionAdminTmpl = template.Must(template.New("inspectionAdmin").Parse(`
<h2>New inspection request</h2>
<table cellpadding="4">
  <tr><td><b>Name</b></td><td>{{.Name}}</td></tr>
  <tr><td><b>Address</b></td><td>{{.Address}}</td></tr>
  <tr><td><b>Email</b></td><td>{{.Email}}</td></tr>
  {{if .Phone}}<tr><td><b>Phone</b></td><td>{{.Phone}}</td></tr>{{end}}
  {{if .Notes}}<tr><td><b>Notes</b></td><td>{{.Notes}}</td></tr>{{end}}
</table>
<p>Reply to the customer to confirm a time.</p>
`))

var contactAdminTmpl = template.Must(template.New("contactAdmin").Parse(`
<h2>New contact message</h2>
<table cellpadding="4">
  <tr><td><b>Name</b></td><td>{{.Name}}</td></tr>
  <tr><td><b>Email</b></td><td>{{.Email}}</td></tr>
  {{if .Phone}}<tr><td><b>Phone</b></td><td>{{.Phone}}</td></tr>{{end}}
</table>
<p>{{.Message}}</p>
`))

var checklistTmpl = template.Must(template.New("checklist").Parse(`
<h2>Your home inspection checklist</h2>
<p>Hi {{.Name}}, here is the preparation checklist you requested from {{.Business}}.</p>
{{range .Checklist.Categories}}
<h3>{{.Name}}</h3>
<ul>
  {{range .Items}}<li>{{.}}</li>{{end}}
</ul>
{{end}}
<p>Questions? Just reply to this email.</p>
`))

var checklistAdminTmpl = template.Must(template.New("checklistAdmin").Parse(`
<h2>New checklist lead</h2>
<p><b>{{.Name}}</b> ({{.Email}}) requested their generated checklist by email.</p>
`))

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("mailer: render %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}

// InspectionAdminEmail notifies the business of a new inspection request.
func InspectionAdminEmail(to, business string, req models.InspectionRequest) (Email, error) {
	html, err := render(inspectionAdminTmpl, req)
	if err != nil {
		return Email{}, err
	}
	return Email{
		To:      to,
		Subject: fmt.Sprintf("[%s] New inspection request from %s", business, req.Name),
		HTML:    html,
	}, nil
}

// ContactAdminEmail notifies the business of a new contact message.
func ContactAdminEmail(to, business string, req models.ContactRequest) (Email, error) {
	html, err := render(contactAdminTmpl, req)
	if err != nil {
		return Email{}, err
	}
	return Email{
		To:      to,
		Subject: fmt.Sprintf("[%s] New contact message from %s", business, req.Name),
		HTML:    html,
	}, nil
}

// ChecklistEmail delivers a generated checklist to the submitter.
func ChecklistEmail(to, business, name string, c *models.Checklist) (Email, error) {
	html, err := render(checklistTmpl, map[string]any{
		"Name":      name,
		"Business":  business,
		"Checklist": c,
	})
	if err != nil {
		return Email{}, err
	}
	return Email{
		To:      to,
		Subject: fmt.Sprintf("Your inspection checklist from %s", business),
		HTML:    html,
	}, nil
}

// ChecklistAdminEmail notifies the business of a new checklist lead.
func ChecklistAdminEmail(to string, lead models.ChecklistLead) (Email, error) {
	html, err := render(checklistAdminTmpl, lead)
	if err != nil {
		return Email{}, err
	}
	return Email{
		To:      to,
		Subject: fmt.Sprintf("New checklist lead: %s", lead.Name),
		HTML:    html,
	}, nil
}
