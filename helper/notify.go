package helper

import (
	"fmt"
	"log"
	"os"
	"venue_booking/model"
	"venue_booking/utils"
)

func manageLink(code string) string {
	return fmt.Sprintf("%s/bookings/%s", os.Getenv("FRONTEND_URL"), code)
}

// SendReservationConfirmation queues the confirmation mail with the
// manage link, plus a QR of the same link for walk-in checks.
func SendReservationConfirmation(r *model.Reservation) {
	link := manageLink(r.PublicCode)
	qr, err := utils.GenerateQRCode(link, 256)
	if err != nil {
		log.Printf("failed to render reservation QR: %v", err)
	}
	when := r.ReservationTime.Format("Mon, 02 Jan 2006 15:04")
	utils.QueueMail(utils.Mail{
		To:       r.GuestEmail,
		Subject:  "Booking Confirmation",
		TextBody: fmt.Sprintf("Hi %s, your booking is confirmed for %s.", r.GuestName, when),
		HtmlBody: fmt.Sprintf(`<p>Your booking is confirmed for %s with a duration of %s for %d guests.</p>
       <p><a href='%s'>Modify or Cancel Booking</a></p>`, when, r.Duration, r.Guests, link),
		Attachment: qr,
	})
}

func SendReservationUpdated(r *model.Reservation) {
	link := manageLink(r.PublicCode)
	when := r.ReservationTime.Format("Mon, 02 Jan 2006 15:04")
	utils.QueueMail(utils.Mail{
		To:       r.GuestEmail,
		Subject:  "Booking Updated",
		TextBody: fmt.Sprintf("Hi %s, your booking has been modified.", r.GuestName),
		HtmlBody: fmt.Sprintf(`<p>Your updated booking is for %s with %d guests.</p>
      <p><a href='%s'>Modify or Cancel Booking</a></p>`, when, r.Guests, link),
	})
}

func SendReservationCancelled(r *model.Reservation) {
	when := r.ReservationTime.Format("Mon, 02 Jan 2006 15:04")
	utils.QueueMail(utils.Mail{
		To:       r.GuestEmail,
		Subject:  "Booking Cancelled",
		TextBody: fmt.Sprintf("Hi %s, your booking at %s has been successfully cancelled.", r.GuestName, when),
		HtmlBody: fmt.Sprintf("<p>Your booking for %s has been cancelled.</p>", when),
	})
}

func SendReservationReminder(r *model.Reservation) {
	when := r.ReservationTime.Format("Mon, 02 Jan 2006 15:04")
	utils.QueueMail(utils.Mail{
		To:       r.GuestEmail,
		Subject:  "Upcoming Booking Reminder",
		TextBody: fmt.Sprintf("Hi %s, this is a reminder for your booking at %s.", r.GuestName, when),
		HtmlBody: fmt.Sprintf("<p>Your reservation is approaching soon at %s.</p>", when),
	})
}
