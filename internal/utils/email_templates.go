package utils

import (
	"fmt"

	"sajhnaa_back_end/internal/models"
)

// GenerateOrderConfirmationHTML génère le HTML de confirmation de commande
func GenerateOrderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		variant := ""
		if item.SelectedSize != "" {
			variant += " · taille " + item.SelectedSize
		}
		if item.SelectedColor != "" {
			variant += " · " + item.SelectedColor
		}
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td style="padding: 10px; border: 1px solid #eee;">%s%s</td>
				<td style="padding: 10px; border: 1px solid #eee;">%d</td>
				<td style="padding: 10px; border: 1px solid #eee;">₹%.2f</td>
				<td style="padding: 10px; border: 1px solid #eee;">₹%.2f</td>
			</tr>`, item.Name, variant, item.Quantity, item.Price, item.Price*float64(item.Quantity))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Confirmation de commande</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #faf7f2; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #9a7b4f;">✨ Merci pour votre commande, %s !</h2>
		<p>Votre commande <strong>%s</strong> du %s a bien été enregistrée.</p>

		<h3>Détails de la commande</h3>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f5efe6;">
					<th style="padding: 10px; text-align: left; border: 1px solid #eee;">Bijou</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #eee;">Quantité</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #eee;">Prix unitaire</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #eee;">Total</th>
				</tr>
			</thead>
			<tbody>
				%s
			</tbody>
			<tfoot>
				<tr>
					<td colspan="3" style="padding: 10px; text-align: right; font-weight: bold;">Total:</td>
					<td style="padding: 10px; font-weight: bold;">₹%.2f</td>
				</tr>
			</tfoot>
		</table>

		<p style="margin-top: 30px; color: #555;">
			Avec tout notre éclat,<br>
			<strong>L'équipe Sajhnaa</strong>
		</p>
	</div>
</body>
</html>`, order.CustomerName, order.ID, order.Date, itemsHTML, order.Total)
}

// GenerateOrderStatusHTML génère le HTML d'un changement de statut.
func GenerateOrderStatusHTML(order models.Order) string {
	stepsHTML := ""
	for _, step := range order.TrackingSteps {
		mark := "○"
		color := "#bbb"
		if step.Completed {
			mark = "●"
			color = "#9a7b4f"
		}
		date := step.Date
		if date == "" {
			date = "—"
		}
		stepsHTML += fmt.Sprintf(`
			<tr>
				<td style="padding: 6px; color: %s; font-size: 18px;">%s</td>
				<td style="padding: 6px;">%s</td>
				<td style="padding: 6px; color: #777;">%s</td>
			</tr>`, color, mark, step.Label, date)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<title>Suivi de commande</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #faf7f2; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #9a7b4f;">Commande %s : %s</h2>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			%s
		</table>
		<p style="margin-top: 30px; color: #555;">
			Avec tout notre éclat,<br>
			<strong>L'équipe Sajhnaa</strong>
		</p>
	</div>
</body>
</html>`, order.ID, statusLabel(order.Status), stepsHTML)
}
