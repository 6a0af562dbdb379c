package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log"
	"strings"

	"gopkg.in/gomail.v2"

	"lounge_booking/config"
	"lounge_booking/constants"
	"lounge_booking/helper"
	"lounge_booking/model"
)

const checkInImage = "checkin.png"

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`
<h2>Nova reserva confirmada</h2>
<p><strong>{{.Spot}}</strong> · {{.Day}}</p>
<p>Cliente: {{.Name}} ({{.Age}} anos)<br>Telefone: {{.Phone}}<br>CPF: {{.Cpf}}</p>
<p>Valor: {{.Price}}</p>
{{if .Guests}}<p>Convidados ({{len .Guests}}):</p><ul>{{range .Guests}}<li>{{.}}</li>{{end}}</ul>{{end}}
<p>Check-in:</p>
<img src="cid:` + checkInImage + `" alt="QR check-in">
`))

type confirmationData struct {
	Spot   string
	Day    string
	Name   string
	Age    string
	Phone  string
	Cpf    string
	Price  string
	Guests []string
}

// MailNotifier e-mails staff about every confirmed booking.
type MailNotifier struct {
	from   string
	to     string
	dialer *gomail.Dialer
}

func NewMailNotifier(cfg config.Settings) *MailNotifier {
	return &MailNotifier{
		from:   cfg.SMTPFrom,
		to:     cfg.NotifyEmail,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
	}
}

// ReservationConfirmed sends in the background; failures are only logged.
func (n *MailNotifier) ReservationConfirmed(res model.Reservation) {
	go func() {
		m, err := BuildConfirmationMessage(n.from, n.to, res)
		if err != nil {
			log.Printf("build confirmation e-mail for %s: %v", res.ID, err)
			return
		}
		if err := n.dialer.DialAndSend(m); err != nil {
			log.Printf("send confirmation e-mail for %s: %v", res.ID, err)
		}
	}()
}

func BuildConfirmationMessage(from, to string, res model.Reservation) (*gomail.Message, error) {
	spot := res.Spot()
	data := confirmationData{
		Spot:  strings.ToUpper(constants.TYPE_LABELS[spot.Type]) + " #" + spot.Number,
		Day:   constants.DAY_LABELS[spot.Day],
		Price: helper.FormatPrice(res.Price),
	}
	if c := res.CustomerData(); c != nil {
		data.Name = c.FullName
		data.Age = c.Age
		data.Phone = c.Phone
		data.Cpf = c.Cpf
		data.Guests = c.Guests
	}

	var body bytes.Buffer
	if err := confirmationTemplate.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}
	qr, err := CheckInQR(res)
	if err != nil {
		return nil, fmt.Errorf("check-in qr: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Reserva confirmada · %s · %s", data.Day, data.Spot))
	m.SetBody("text/html", body.String())
	m.Embed(checkInImage, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(qr)
		return err
	}))
	return m, nil
}
