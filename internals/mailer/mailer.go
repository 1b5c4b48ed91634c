// file: internals/mailer/mailer.go
package mailer

import (
	"log"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"campustrack_backend/internals/configs"
)

const (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// SendBestEffort mengirim email plain-text ke satu penerima lewat goroutine.
// Kegagalan hanya dicatat di log dan TIDAK pernah dipropagasi ke caller:
// pembuatan notifikasi / alur workflow tidak boleh gagal gara-gara email.
func SendBestEffort(toEmail, subject, body string) {
	if toEmail == "" {
		return
	}
	if configs.SendgridAPIKey == "" {
		// email dimatikan, cukup log sekali per kirim
		log.Printf("[INFO] Email dilewati (SENDGRID_API_KEY kosong): %s", subject)
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[ERROR] Panic saat kirim email: %v", r)
			}
		}()
		if err := send(toEmail, subject, body); err != nil {
			log.Printf("[ERROR] Gagal kirim email ke %s: %v", toEmail, err)
		}
	}()
}

// SendBestEffortMany kirim ke banyak penerima, satu pesan per alamat.
func SendBestEffortMany(emails []string, subject, body string) {
	for _, to := range emails {
		SendBestEffort(to, subject, body)
	}
}

func send(toEmail, subject, body string) error {
	from := sgmail.NewEmail(configs.MailFromName, configs.MailFromAddress)
	to := sgmail.NewEmail("", toEmail)
	msg := sgmail.NewSingleEmail(from, "["+configs.MailFromName+"] "+subject, to, body, "")

	req := sendgrid.GetRequest(configs.SendgridAPIKey, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(msg)

	resp, err := sendgrid.API(req)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		log.Printf("[WARN] SendGrid status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
