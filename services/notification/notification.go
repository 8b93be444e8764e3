package notification

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"time"

	"jatomogu/constants"

	"github.com/olahol/melody"
)

// JourneyStatusNotification is the payload handed to the mail collaborator
// when a booking's journey status changes.
type JourneyStatusNotification struct {
	RecipientEmail    string
	RecipientName     string
	RecipientRole     constants.Role
	GuestName         string
	GuestPhone        string
	AccommodationName string
	JourneyStatus     constants.JourneyStatus
	ArrivalDate       time.Time
}

// Sender delivers a journey notification to one recipient
type Sender interface {
	Send(n JourneyStatusNotification) error
}

// SMTPSender sends notifications over plain SMTP
type SMTPSender struct{}

func NewSMTPSender() *SMTPSender {
	return &SMTPSender{}
}

func (s *SMTPSender) Send(n JourneyStatusNotification) error {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	subject := fmt.Sprintf("Journey update: %s", n.JourneyStatus)
	body := fmt.Sprintf(
		"Hello %s,\r\n\r\nGuest %s (%s) for %s is now %s.\r\nArrival date: %s.\r\n",
		n.RecipientName, n.GuestName, n.GuestPhone, n.AccommodationName,
		n.JourneyStatus, n.ArrivalDate.Format("02/01/2006"))

	msg := []byte("To: " + n.RecipientEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" + body)

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, []string{n.RecipientEmail}, msg)
}

// Broadcaster pushes journey updates to the ops dashboard socket
type Broadcaster struct {
	m *melody.Melody
}

func NewBroadcaster(m *melody.Melody) *Broadcaster {
	return &Broadcaster{m: m}
}

func (b *Broadcaster) Broadcast(message string) error {
	if b.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return b.m.Broadcast([]byte(message))
}

// Dispatcher fans a journey notification out to mail and the dashboard.
// Delivery is best-effort: Dispatch returns before anything is sent and
// failures are only logged, so a slow mail server can never stall or roll
// back a state transition.
type Dispatcher struct {
	sender      Sender
	broadcaster *Broadcaster
}

func NewDispatcher(sender Sender, broadcaster *Broadcaster) *Dispatcher {
	return &Dispatcher{sender: sender, broadcaster: broadcaster}
}

func (d *Dispatcher) Dispatch(notifications []JourneyStatusNotification) {
	go func() {
		for _, n := range notifications {
			if d.sender != nil {
				if err := d.sender.Send(n); err != nil {
					log.Printf("journey notification to %s failed: %v", n.RecipientEmail, err)
				}
			}
		}
		if d.broadcaster != nil && len(notifications) > 0 {
			n := notifications[0]
			msg := fmt.Sprintf("🔔 %s: guest %s is now %s", n.AccommodationName, n.GuestName, n.JourneyStatus)
			if err := d.broadcaster.Broadcast(msg); err != nil {
				log.Printf("journey broadcast failed: %v", err)
			}
		}
	}()
}
