package utils

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/wneessen/go-mail"

	"sajhnaa_back_end/internal/models"
)

// SendEmail envoie un email HTML, avec pièce jointe PDF optionnelle.
func SendEmail(to, subject, htmlBody string, pdfAttachment []byte) error {
	msg := mail.NewMsg()

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@sajhnaa.in"
	}
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if pdfAttachment != nil {
		msg.AttachReader("facture_sajhnaa.pdf", bytes.NewReader(pdfAttachment))
	}

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📧 Envoi de l'e-mail à", to)
	return client.DialAndSend(msg)
}

// SendOrderConfirmationEmail envoie la confirmation de commande avec facture.
func SendOrderConfirmationEmail(order models.Order) error {
	if order.CustomerEmail == "" {
		return nil
	}
	html := GenerateOrderConfirmationHTML(order)

	pdf, err := GenerateInvoicePDF(order)
	if err != nil {
		// La facture est un bonus: l'email part quand même.
		log.Printf("⚠️ Facture PDF de %s non générée: %v", order.ID, err)
		pdf = nil
	}

	subject := fmt.Sprintf("✨ Votre commande %s est confirmée", order.ID)
	return SendEmail(order.CustomerEmail, subject, html, pdf)
}

// SendOrderStatusEmail prévient le client d'un changement de statut.
func SendOrderStatusEmail(order models.Order) error {
	if order.CustomerEmail == "" {
		return nil
	}
	subject := fmt.Sprintf("📦 Commande %s : %s", order.ID, statusLabel(order.Status))
	return SendEmail(order.CustomerEmail, subject, GenerateOrderStatusHTML(order), nil)
}

func statusLabel(status string) string {
	switch status {
	case models.OrderStatusShipped:
		return "expédiée"
	case models.OrderStatusDelivered:
		return "livrée"
	case models.OrderStatusCancelled:
		return "annulée"
	default:
		return "en préparation"
	}
}
