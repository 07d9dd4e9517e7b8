package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/cockroachdb/errors"
	"github.com/nikunj436/cricketAuction/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

type Config struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// SMTPMailer delivers roster summary emails over SMTP. Port 465 dials
// TLS directly; any other port upgrades with STARTTLS.
type SMTPMailer struct {
	cfg  Config
	tmpl *template.Template
}

const rosterSummaryTemplate = `<html>
<body>
<p>Hello {{.OwnerName}},</p>
<p>The auction for <strong>{{.SeasonName}}</strong> has wrapped up. Here is the final squad for <strong>{{.TeamName}}</strong>:</p>
<table border="1" cellpadding="6" cellspacing="0">
  <tr><th>Player</th><th>Role</th><th>Price</th></tr>
  {{range .Players}}
  <tr>
    <td>{{.Player.FullName}}</td>
    <td>{{.Player.Role}}</td>
    <td>{{if .IconPlayer}}Icon Player{{else}}{{.Price}}{{end}}</td>
  </tr>
  {{end}}
</table>
<p>Players bought: {{.Overview.CurrentPlayers}}/{{.Overview.MaxPlayers}}<br>
Budget left: {{.Overview.Remaining}} of {{.Overview.TotalBudget}}</p>
</body>
</html>`

func NewSMTPMailer(cfg Config) (*SMTPMailer, error) {
	tmpl, err := template.New("roster_summary").Parse(rosterSummaryTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "parse roster summary template")
	}

	return &SMTPMailer{cfg: cfg, tmpl: tmpl}, nil
}

func (m *SMTPMailer) SendRosterSummary(ctx context.Context, summary usecase.RosterSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	subject := fmt.Sprintf("%s auction: final squad for %s", summary.SeasonName, summary.TeamName)
	_, _ = buf.WriteString("To: " + summary.OwnerEmail + "\r\n")
	_, _ = buf.WriteString("From: " + m.cfg.From + "\r\n")
	_, _ = buf.WriteString("Subject: " + subject + "\r\n")
	_, _ = buf.WriteString("MIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n")

	if err := m.tmpl.Execute(buf, summary); err != nil {
		return errors.Wrap(err, "render roster summary")
	}
	_, _ = buf.WriteString("\r\n")

	return m.send(summary.OwnerEmail, buf.Bytes())
}

func (m *SMTPMailer) send(to string, msg []byte) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	tlsCfg := &tls.Config{ServerName: m.cfg.Host}

	var client *smtp.Client
	if m.cfg.Port == 465 {
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return errors.Wrap(err, "dial smtp over tls")
		}
		client, err = smtp.NewClient(conn, m.cfg.Host)
		if err != nil {
			conn.Close()
			return errors.Wrap(err, "create smtp client")
		}
	} else {
		c, err := smtp.Dial(addr)
		if err != nil {
			return errors.Wrap(err, "dial smtp")
		}
		client = c
		if err := client.StartTLS(tlsCfg); err != nil {
			client.Close()
			return errors.Wrap(err, "starttls")
		}
	}
	defer client.Quit()

	if m.cfg.User != "" {
		auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return errors.Wrap(err, "smtp auth")
		}
	}

	if err := client.Mail(m.cfg.From); err != nil {
		return errors.Wrap(err, "mail from")
	}
	if err := client.Rcpt(to); err != nil {
		return errors.Wrap(err, "rcpt to")
	}

	w, err := client.Data()
	if err != nil {
		return errors.Wrap(err, "data")
	}
	if _, err := w.Write(msg); err != nil {
		return errors.Wrap(err, "write message")
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "close data")
	}

	return nil
}
