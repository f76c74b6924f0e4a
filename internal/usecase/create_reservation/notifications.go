package create_reservation

import (
	"context"
	"fmt"

	"github.com/zohoustanley/barbeshop/internal/domain"
	"github.com/zohoustanley/barbeshop/internal/integrations/mailer"
)

// NotificationConfig параметры писем о новой записи
type NotificationConfig struct {
	SalonName  string
	OwnerName  string
	OwnerEmail string
}

// notify отправляет письма о созданной записи владельцу салона и клиенту.
// Любая ошибка отправки логируется и не влияет на результат бронирования.
func (uc *UseCase) notify(ctx context.Context, res *domain.Reservation, prestation *domain.Prestation) {
	when := fmt.Sprintf("%s à %s", res.Date.Format("02/01/2006"), res.StartTime)

	ownerBody := fmt.Sprintf(
		"<p>Nouvelle réservation :</p>"+
			"<p><b>%s</b><br>%s<br>%s — %s</p>"+
			"<p>Téléphone : %s<br>Email : %s</p>",
		prestation.Title,
		when,
		res.ClientName,
		staffLabel(res.StaffID),
		phoneLabel(res.ClientPhone),
		res.ClientEmail,
	)

	err := uc.mailer.Send(ctx, mailer.Message{
		To:       uc.notifications.OwnerEmail,
		ToName:   uc.notifications.OwnerName,
		Subject:  fmt.Sprintf("Nouvelle réservation — %s", when),
		HTMLBody: ownerBody,
		Headers:  map[string]string{"Reply-To": res.ClientEmail},
	})
	if err != nil {
		uc.logger.Error("CreateReservation: failed to notify owner about reservation id=%d: %v", res.ID, err)
	}

	clientBody := fmt.Sprintf(
		"<p>Bonjour %s,</p>"+
			"<p>Votre demande de réservation chez %s est bien enregistrée :</p>"+
			"<p><b>%s</b><br>%s</p>"+
			"<p>Nous vous confirmerons le rendez-vous rapidement.</p>",
		res.ClientName,
		uc.notifications.SalonName,
		prestation.Title,
		when,
	)

	err = uc.mailer.Send(ctx, mailer.Message{
		To:       res.ClientEmail,
		ToName:   res.ClientName,
		Subject:  fmt.Sprintf("%s — votre réservation du %s", uc.notifications.SalonName, when),
		HTMLBody: clientBody,
	})
	if err != nil {
		uc.logger.Error("CreateReservation: failed to notify client about reservation id=%d: %v", res.ID, err)
	}
}

func staffLabel(staffID int64) string {
	if staffID == domain.NoPreferenceStaffID {
		return "sans préférence"
	}
	return fmt.Sprintf("intervenant #%d", staffID)
}

func phoneLabel(phone *string) string {
	if phone == nil || *phone == "" {
		return "non renseigné"
	}
	return *phone
}
