package mailer

import (
	"bytes"
	"embed"
	"fmt"
	htmltmpl "html/template"
	"net/mail"
	texttmpl "text/template"

	"academyhub.app/server/internal/model"
)

//go:embed templates/*.txt templates/*.gohtml
var templateFS embed.FS

const (
	TemplateVerificationApproved = "verification_approved"
	TemplateVerificationRejected = "verification_rejected"
)

var subjects = map[string]string{
	TemplateVerificationApproved: "사업자 인증이 승인되었습니다",
	TemplateVerificationRejected: "사업자 인증이 반려되었습니다",
}

var (
	textTemplates = texttmpl.Must(texttmpl.New("").Option("missingkey=error").ParseFS(templateFS, "templates/*.txt"))
	htmlTemplates = htmltmpl.Must(htmltmpl.New("").Option("missingkey=error").ParseFS(templateFS, "templates/*.gohtml"))
)

// VerificationData feeds the verification templates.
type VerificationData struct {
	Name           string
	BusinessName   string
	BusinessNumber string
	Reason         string
	DashboardURL   string
}

// Render executes the text and html variants of a named template.
func Render(name string, data any) (text, html string, err error) {
	var tb, hb bytes.Buffer
	if err := textTemplates.ExecuteTemplate(&tb, name+".txt", data); err != nil {
		return "", "", fmt.Errorf("rendering %s.txt: %w", name, err)
	}
	if err := htmlTemplates.ExecuteTemplate(&hb, name+".gohtml", data); err != nil {
		return "", "", fmt.Errorf("rendering %s.gohtml: %w", name, err)
	}
	return tb.String(), hb.String(), nil
}

// VerificationMessage renders the review outcome email for a reviewed
// verification. Pending verifications have nothing to announce.
func VerificationMessage(v *model.BusinessVerification, user *model.User, dashboardURL string) (Message, error) {
	var name string
	switch v.Status {
	case model.VerificationStatusApproved:
		name = TemplateVerificationApproved
	case model.VerificationStatusRejected:
		name = TemplateVerificationRejected
	default:
		return Message{}, fmt.Errorf("verification %d is %s, not reviewed", v.ID, v.Status)
	}

	data := VerificationData{
		Name:           user.Name,
		BusinessName:   v.BusinessName,
		BusinessNumber: v.BusinessNumber,
		DashboardURL:   dashboardURL,
	}
	if v.RejectReason != nil {
		data.Reason = *v.RejectReason
	}

	text, html, err := Render(name, data)
	if err != nil {
		return Message{}, err
	}

	return Message{
		To:      mail.Address{Name: user.Name, Address: user.Email},
		Subject: subjects[name],
		Text:    text,
		HTML:    html,
	}, nil
}
