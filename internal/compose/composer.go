package compose

import (
	"fmt"
	"html/template"
	"strings"

	"outreach/internal/recipients"
)

// Message is the composed outbound mail, handed to the send capability and
// then discarded.
type Message struct {
	To      string
	CC      string
	Subject string
	Body    string
}

const bodyTemplate = `<html>
<body>
<p>Hello <b>{{.Name}}</b>,</p>
<p>Thank you for completing the form! Here is some information to support your
upskilling and certification journey.</p>
<p>{{.Generated}}</p>
<p>These resources will help you develop your skills in the fields you're most
passionate about. Feel free to explore the available materials, and don't
hesitate to reach out to your local community leads if you have any questions
or need further support.</p>
<p style="margin-top: 20px;"><b>Testing Technical Communities: Collaboration &amp; Knowledge Hub</b></p>
</body>
</html>
`

// Composer renders messages from the fixed template and subject line.
type Composer struct {
	subject string
	ccCoach bool
	tmpl    *template.Template
}

// NewComposer builds a composer with the campaign subject. When ccCoach is
// set, the recipient's coach address is carried on CC.
func NewComposer(subject string, ccCoach bool) *Composer {
	return &Composer{
		subject: subject,
		ccCoach: ccCoach,
		tmpl:    template.Must(template.New("campaign").Parse(bodyTemplate)),
	}
}

// Compose merges the recipient and the generated fragment into a Message.
func (c *Composer) Compose(r recipients.Recipient, generated string) (Message, error) {
	var body strings.Builder
	data := struct {
		Name      string
		Generated string
	}{
		Name:      r.Name,
		Generated: strings.TrimSpace(generated),
	}
	if err := c.tmpl.Execute(&body, data); err != nil {
		return Message{}, fmt.Errorf("render message body: %w", err)
	}

	msg := Message{
		To:      r.Email,
		Subject: c.subject,
		Body:    body.String(),
	}
	if c.ccCoach && usableAddress(r.CoachEmail) {
		msg.CC = r.CoachEmail
	}
	return msg, nil
}

func usableAddress(address string) bool {
	trimmed := strings.TrimSpace(address)
	return trimmed != "" && trimmed != recipients.Placeholder && strings.Contains(trimmed, "@")
}
