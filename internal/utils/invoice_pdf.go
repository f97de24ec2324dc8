package utils

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"sajhnaa_back_end/internal/models"
)

// GenerateInvoicePDF imprime la page facture du front en PDF, avec le QR de
// suivi passé en query.
func GenerateInvoicePDF(order models.Order) ([]byte, error) {
	qrBase64, err := GenerateTrackingQRBase64(order.ID)
	if err != nil {
		return nil, fmt.Errorf("erreur génération QR: %v", err)
	}
	return renderInvoicePDF(frontendInvoiceBaseURL(), order.ID, qrBase64)
}

// renderInvoicePDF charge la page facture côté serveur et l'imprime en PDF.
// frontendURL doit ressembler à: http://localhost:3000/invoice
func renderInvoicePDF(frontendURL, orderID, qrBase64 string) ([]byte, error) {
	q := url.Values{}
	q.Set("id", orderID)
	q.Set("qr", qrBase64)

	fullURL := fmt.Sprintf("%s?%s", frontendURL, q.Encode())

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	// timeout pour éviter de bloquer
	ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var pdfBuf []byte

	err := chromedp.Run(ctx,
		chromedp.Navigate(fullURL),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}

func frontendInvoiceBaseURL() string {
	u := os.Getenv("FRONTEND_INVOICE_URL")
	if u == "" {
		return "http://localhost:3000/invoice"
	}
	return u
}
