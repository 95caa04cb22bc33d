package services

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/arcanosig/arcano/backend/internal/models"
)

const emailLayout = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>{{.Title}}</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: #1b2a41; padding: 24px; border-radius: 8px 8px 0 0; text-align: center;">
        <h1 style="color: white; margin: 0;">ARCANO</h1>
    </div>
    <div style="background: #f9f9f9; padding: 24px; border-radius: 0 0 8px 8px; border: 1px solid #e0e0e0; border-top: none;">
        <h2 style="margin-top: 0;">{{.Title}}</h2>
        {{range .Paragraphs}}<p>{{.}}</p>{{end}}
        {{if .Items}}<ul>{{range .Items}}<li>{{.}}</li>{{end}}</ul>{{end}}
        {{if .ActionURL}}
        <div style="text-align: center; margin: 30px 0;">
            <a href="{{.ActionURL}}" style="background: #1b2a41; color: white; padding: 14px 28px; text-decoration: none; border-radius: 5px; font-weight: bold; display: inline-block;">{{.ActionLabel}}</a>
        </div>
        <p style="color: #999; font-size: 12px;">Se o botão não funcionar, copie e cole este endereço no navegador:<br>
        <a href="{{.ActionURL}}" style="color: #1b2a41;">{{.ActionURL}}</a></p>
        {{end}}
    </div>
</body>
</html>
`

var emailTmpl = template.Must(template.New("email").Parse(emailLayout))

type emailContent struct {
	Title       string
	Paragraphs  []string
	Items       []string
	ActionURL   string
	ActionLabel string
}

// Email is a rendered message ready for the mail queue.
type Email struct {
	To      string
	Subject string
	Body    string
}

func render(to, subject string, c emailContent) (Email, error) {
	var body bytes.Buffer
	if err := emailTmpl.Execute(&body, c); err != nil {
		return Email{}, fmt.Errorf("failed to execute email template: %w", err)
	}
	return Email{To: to, Subject: subject, Body: body.String()}, nil
}

func frontendLink(base string, parts ...string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.Join(parts, "/") + "/"
}

func activationEmail(u *models.User, frontendURL string) (Email, error) {
	return render(u.Email, "Ative sua conta no ARCANO", emailContent{
		Title:       "Ativação de conta",
		Paragraphs:  []string{fmt.Sprintf("Olá, %s. Sua conta foi criada e precisa ser ativada.", u.Name), "Após a ativação, um administrador irá analisar e aprovar o seu acesso."},
		ActionURL:   frontendLink(frontendURL, "ativar", u.UUID, u.ActivationToken),
		ActionLabel: "Ativar conta",
	})
}

func approvalRequestEmail(admin, pending *models.User, frontendURL string) (Email, error) {
	return render(admin.Email, "Novo usuário aguardando aprovação", emailContent{
		Title:      "Novo usuário aguardando aprovação",
		Paragraphs: []string{"Um novo usuário ativou a conta e aguarda aprovação:"},
		Items: []string{
			"Nome: " + pending.Name,
			"E-mail: " + pending.Email,
			"Patente: " + string(pending.Patent),
		},
		ActionURL:   frontendLink(frontendURL, "usuarios", "pendentes"),
		ActionLabel: "Revisar cadastros",
	})
}

func approvedEmail(u *models.User, frontendURL string) (Email, error) {
	return render(u.Email, "Sua conta foi aprovada", emailContent{
		Title:       "Conta aprovada",
		Paragraphs:  []string{fmt.Sprintf("Olá, %s. Seu acesso ao ARCANO foi aprovado.", u.Name)},
		ActionURL:   frontendLink(frontendURL, "login"),
		ActionLabel: "Acessar o sistema",
	})
}

func passwordResetEmail(u *models.User, token, frontendURL string) (Email, error) {
	return render(u.Email, "Redefinição de senha", emailContent{
		Title:       "Redefinição de senha",
		Paragraphs:  []string{"Recebemos um pedido para redefinir a sua senha. O link expira em 1 hora.", "Se você não fez este pedido, ignore esta mensagem."},
		ActionURL:   frontendLink(frontendURL, "redefinir-senha", u.UUID, token),
		ActionLabel: "Redefinir senha",
	})
}

// newReportSubject is the subject line of the new-report announcement.
func newReportSubject(kind models.ReportKind) string {
	return fmt.Sprintf("Novo Relatório %s de Inteligência Adicionado", kind.Label())
}

func newReportEmail(to string, r *models.Report, analystName, frontendURL string) (Email, error) {
	items := make([]string, 0, 13)
	for _, c := range r.Counts.NonZero() {
		items = append(items, fmt.Sprintf("%s: %d", c.Label, c.Value))
	}
	paragraphs := []string{fmt.Sprintf("O relatório %s nº %s foi adicionado por %s.", strings.ToLower(r.Kind.Label()), r.NumberYear, analystName)}
	if len(items) > 0 {
		paragraphs = append(paragraphs, "Ocorrências registradas:")
	}
	return render(to, newReportSubject(r.Kind), emailContent{
		Title:       newReportSubject(r.Kind),
		Paragraphs:  paragraphs,
		Items:       items,
		ActionURL:   frontendLink(frontendURL, "sac", "relatorios", r.ID),
		ActionLabel: "Abrir relatório",
	})
}
