package utils

import (
	"io"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// Mail is one outbound message handed off to the worker. Delivery is
// fire-and-forget: reservation operations never wait on it and never
// fail because of it.
type Mail struct {
	To       string
	Subject  string
	TextBody string
	HtmlBody string
	// QR PNG attached as reservation.png when non-nil
	Attachment []byte
}

var mailQueue = make(chan Mail, 256)

// sendMail is swapped out in tests
var sendMail = dialAndSend

// QueueMail hands a message to the mail worker without blocking the
// caller. A full queue drops the mail with a log line.
func QueueMail(m Mail) {
	select {
	case mailQueue <- m:
	default:
		log.Printf("mail queue full, dropping mail to %s (%s)", m.To, m.Subject)
	}
}

// StartMailWorker drains the queue on a single goroutine.
func StartMailWorker() {
	go func() {
		for m := range mailQueue {
			if err := sendMail(m); err != nil {
				log.Printf("failed to send mail to %s: %v", m.To, err)
			}
		}
	}()
}

func dialAndSend(mail Mail) error {
	host := os.Getenv("SMTP_HOST")
	portStr := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")

	port, _ := strconv.Atoi(portStr)

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", mail.To)
	m.SetHeader("Subject", mail.Subject)
	m.SetBody("text/plain", mail.TextBody)
	if mail.HtmlBody != "" {
		m.AddAlternative("text/html", mail.HtmlBody)
	}
	if mail.Attachment != nil {
		m.Attach("reservation.png", gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(mail.Attachment)
			return err
		}))
	}

	d := gomail.NewDialer(host, port, username, password)
	return d.DialAndSend(m)
}
