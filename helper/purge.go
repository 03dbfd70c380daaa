package helper

import (
	"log"
	"time"
	"venue_booking/database"
	"venue_booking/model"
	"venue_booking/utils"

	"github.com/go-co-op/gocron/v2"
)

var purgeScheduler gocron.Scheduler

// ReservationRetention is how long an elapsed reservation is kept
// before the nightly purge removes it.
const ReservationRetention = 90 * 24 * time.Hour

// PurgeElapsedReservations deletes reservations whose interval ended
// longer than the retention window ago. The margin uses the longest
// resolvable duration so nothing still inside retention is touched.
func PurgeElapsedReservations() {
	log.Println("[CRON] PurgeElapsedReservations triggered")

	cutoff := utils.Now().Add(-ReservationRetention - DefaultDuration)
	result := database.DB.
		Where("reservation_time < ?", cutoff).
		Delete(&model.Reservation{})

	if result.Error != nil {
		log.Printf("failed to purge elapsed reservations: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("purged %d elapsed reservations", result.RowsAffected)
	}
}

func StartPurgeScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	purgeScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(3, 30, 0),
			),
		),
		gocron.NewTask(PurgeElapsedReservations),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Reservation purge scheduler started (03:30)")
}

func StopPurgeScheduler() {
	if purgeScheduler != nil {
		_ = purgeScheduler.Shutdown()
	}
}
