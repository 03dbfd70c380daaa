package helper

import (
	"context"
	"fmt"
	"log"
	"time"
	"venue_booking/database"
	"venue_booking/model"
	"venue_booking/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

var reminderCron *cron.Cron

// ReminderLookahead is the window the hourly sweep scans for upcoming
// reservations.
const ReminderLookahead = time.Hour

// reminderDedupTTL keeps the per-reservation dedup key alive long
// enough to cover adjacent sweeps.
const reminderDedupTTL = 2 * time.Hour

func StartReminderScheduler() {
	reminderCron = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	// Top of every hour, same schedule the booking frontend expects
	_, err := reminderCron.AddFunc("0 * * * *", SendUpcomingReminders)
	if err != nil {
		log.Printf("failed to start reminder scheduler: %v", err)
		return
	}

	reminderCron.Start()
	log.Println("Reminder scheduler started (hourly)")
}

func StopReminderScheduler() {
	if reminderCron != nil {
		reminderCron.Stop()
		log.Println("Reminder scheduler stopped")
	}
}

// UpcomingReservations returns every reservation starting within
// [now, now + lookahead].
func UpcomingReservations(db *gorm.DB, now time.Time) ([]model.Reservation, error) {
	upcoming := []model.Reservation{}
	err := db.
		Where("reservation_time >= ? AND reservation_time <= ?", now, now.Add(ReminderLookahead)).
		Find(&upcoming).Error
	return upcoming, err
}

// SendUpcomingReminders mails every reservation starting within the
// lookahead window. Reads only, never touches venue capacity state.
// Re-sending after a missed dedup is acceptable.
func SendUpcomingReminders() {
	upcoming, err := UpcomingReservations(database.DB, utils.Now())
	if err != nil {
		log.Printf("failed to scan upcoming reservations: %v", err)
		return
	}

	for _, r := range upcoming {
		if alreadyReminded(r) {
			continue
		}
		SendReservationReminder(&r)
	}
}

// alreadyReminded claims the dedup key for this reservation slot.
// Without redis we fall back to sending, at-least-once is fine here.
func alreadyReminded(r model.Reservation) bool {
	if database.Redis == nil {
		return false
	}
	key := fmt.Sprintf("reminder:%d:%d", r.ID, r.ReservationTime.Unix())
	ok, err := database.Redis.SetNX(context.Background(), key, 1, reminderDedupTTL).Result()
	if err != nil {
		log.Printf("reminder dedup unavailable: %v", err)
		return false
	}
	return !ok
}
