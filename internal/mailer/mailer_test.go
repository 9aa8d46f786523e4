package mailer_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/mail"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"academyhub.app/server/internal/mailer"
	"academyhub.app/server/internal/model"
)

var _ = Describe("VerificationMessage", func() {
	user := &model.User{ID: 5, Name: "이한빛", Email: "owner@example.com"}

	It("renders the approval email", func() {
		v := &model.BusinessVerification{
			ID:             1,
			BusinessName:   "한빛수학학원",
			BusinessNumber: "124-81-00998",
			Status:         model.VerificationStatusApproved,
		}

		msg, err := mailer.VerificationMessage(v, user, "https://academyhub.app")
		Expect(err).NotTo(HaveOccurred())
		Expect(msg.To.Address).To(Equal("owner@example.com"))
		Expect(msg.Subject).To(ContainSubstring("승인"))
		Expect(msg.Text).To(ContainSubstring("124-81-00998"))
		Expect(msg.Text).To(ContainSubstring("https://academyhub.app/academies/new"))
		Expect(msg.HTML).To(ContainSubstring("<strong>한빛수학학원</strong>"))
	})

	It("includes the reject reason and escapes it in html", func() {
		v := &model.BusinessVerification{
			ID:             1,
			BusinessName:   "한빛수학학원",
			BusinessNumber: "124-81-00998",
			Status:         model.VerificationStatusRejected,
			RejectReason:   strPtr("서류가 <흐립니다>"),
		}

		msg, err := mailer.VerificationMessage(v, user, "https://academyhub.app")
		Expect(err).NotTo(HaveOccurred())
		Expect(msg.Subject).To(ContainSubstring("반려"))
		Expect(msg.Text).To(ContainSubstring("반려 사유: 서류가 <흐립니다>"))
		Expect(msg.HTML).To(ContainSubstring("서류가 &lt;흐립니다&gt;"))
	})

	It("refuses pending verifications", func() {
		v := &model.BusinessVerification{ID: 1, Status: model.VerificationStatusPending}

		_, err := mailer.VerificationMessage(v, user, "https://academyhub.app")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("SendGridMailer", func() {
	var (
		server   *httptest.Server
		status   int
		received map[string]any
		auth     string
	)

	BeforeEach(func() {
		status = http.StatusAccepted
		received = nil
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Expect(r.URL.Path).To(Equal("/v3/mail/send"))
			auth = r.Header.Get("Authorization")
			body, err := io.ReadAll(r.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(json.Unmarshal(body, &received)).To(Succeed())
			w.WriteHeader(status)
		}))
	})

	AfterEach(func() {
		server.Close()
	})

	msg := mailer.Message{
		To:      mail.Address{Name: "이한빛", Address: "owner@example.com"},
		Subject: "사업자 인증이 승인되었습니다",
		Text:    "본문",
		HTML:    "<p>본문</p>",
	}

	It("posts a v3 mail with both content types", func() {
		m := mailer.NewSendGridMailer("SG.test", "학원찾기", "no-reply@academyhub.app").WithHost(server.URL)

		Expect(m.Send(context.Background(), msg)).To(Succeed())
		Expect(auth).To(Equal("Bearer SG.test"))
		Expect(received["from"]).To(HaveKeyWithValue("email", "no-reply@academyhub.app"))
		Expect(received["content"]).To(HaveLen(2))

		personalizations := received["personalizations"].([]any)
		Expect(personalizations[0]).To(HaveKeyWithValue("subject", "[학원찾기] 사업자 인증이 승인되었습니다"))
	})

	It("fails on error statuses", func() {
		status = http.StatusUnauthorized
		m := mailer.NewSendGridMailer("SG.bad", "학원찾기", "no-reply@academyhub.app").WithHost(server.URL)

		Expect(m.Send(context.Background(), msg)).To(MatchError(ContainSubstring("401")))
	})
})

var _ = Describe("ConsoleMailer", func() {
	It("records what it sends", func() {
		m := mailer.NewConsoleMailer()
		Expect(m.Send(context.Background(), mailer.Message{Subject: "hello"})).To(Succeed())
		Expect(m.Sent()).To(HaveLen(1))
	})
})

func strPtr(s string) *string {
	return &s
}
