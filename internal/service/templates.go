package service

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/pkordes/trip-planner/internal/domain"
)

// longDate matches how dates read in a sentence: "June 1, 2030".
const longDate = "January 2, 2006"

const emailLayout = `<div style="font-family: sans-serif; font-size: 16px; line-height: 1.6;">
{{template "body" .}}
<p>If you don't know what this email is about, just ignore it.</p>
</div>`

var ownerConfirmationTmpl = mustTemplate("owner", `{{define "body"}}
<p>You asked to create a trip to <strong>{{.Destination}}</strong> from <strong>{{.StartsAt}}</strong> to <strong>{{.EndsAt}}</strong>.</p>
<p>To confirm your trip, click the link below:</p>
<p><a href="{{.Link}}">Confirm trip</a></p>
{{end}}`)

var participantInvitationTmpl = mustTemplate("participant", `{{define "body"}}
<p>You were invited to a trip to <strong>{{.Destination}}</strong> from <strong>{{.StartsAt}}</strong> to <strong>{{.EndsAt}}</strong>.</p>
<p>To confirm your attendance, click the link below:</p>
<p><a href="{{.Link}}">Confirm attendance</a></p>
{{end}}`)

type emailData struct {
	Destination string
	StartsAt    string
	EndsAt      string
	Link        string
}

func newEmailData(trip domain.Trip, link string) emailData {
	return emailData{
		Destination: trip.Destination,
		StartsAt:    trip.StartsAt.Format(longDate),
		EndsAt:      trip.EndsAt.Format(longDate),
		Link:        link,
	}
}

func subjectFor(trip domain.Trip) string {
	return fmt.Sprintf("Confirm your trip to %s", trip.Destination)
}

func mustTemplate(name, body string) *template.Template {
	return template.Must(template.Must(template.New(name).Parse(emailLayout)).Parse(body))
}

func render(t *template.Template, data emailData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s email: %w", t.Name(), err)
	}
	return strings.TrimSpace(buf.String()), nil
}
