package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"resto_back_end/internal/models"

	"github.com/wneessen/go-mail"
)

// EmailConfigured indique si l'envoi SMTP est paramétré.
// Sans configuration, l'envoi de reçu est simplement sauté (best effort).
func EmailConfigured() bool {
	return os.Getenv("SMTP_HOST") != "" && os.Getenv("SMTP_USERNAME") != ""
}

// SendReceiptEmail envoie le reçu HTML au client
func SendReceiptEmail(to, subject, htmlBody string) error {
	msg := mail.NewMsg()

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@resto.local"
	}
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		port = p
	}

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi du reçu par e-mail à", to)
	return client.DialAndSend(msg)
}

// GenerateReceiptHTML génère le HTML du reçu envoyé par e-mail
func GenerateReceiptHTML(order *models.Order, subtotal, tax, tip, total float64, qrBase64 string) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%d</td>
				<td>%.2f€</td>
				<td>%.2f€</td>
			</tr>`, item.Name, item.Quantity, item.Price, item.Subtotal())
	}

	qrHTML := ""
	if qrBase64 != "" {
		qrHTML = fmt.Sprintf(`<p>Réglez par virement en scannant ce QR :</p><img src="%s" alt="QR paiement" />`, qrBase64)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
	<h2>Merci pour votre visite !</h2>
	<p>Commande <strong>%s</strong> — table %s</p>
	<table border="1" cellpadding="6" cellspacing="0">
		<tr><th>Article</th><th>Qté</th><th>Prix</th><th>Total</th></tr>
		%s
	</table>
	<p>Sous-total : %.2f€<br/>
	Taxe : %.2f€<br/>
	Pourboire : %.2f€<br/>
	<strong>Total : %.2f€</strong></p>
	%s
</body>
</html>`, order.OrderID, order.CustomerID, itemsHTML, subtotal, tax, tip, total, qrHTML)
}
