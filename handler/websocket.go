package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"
	"venue_booking/database"
	"venue_booking/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

// ReservationEvent is pushed to every watcher of a venue whenever a
// reservation commits, so booking UIs can re-poll the affected window.
type ReservationEvent struct {
	VenueId uint      `json:"venueId"`
	Action  string    `json:"action"`
	Start   time.Time `json:"start"`
	Guests  int       `json:"guests"`
}

// BroadcastReservationEvent publishes a committed lifecycle change on
// the venue's redis channel. Called after commit, never inside the
// capacity transaction.
func BroadcastReservationEvent(venueId uint, action string, r *model.Reservation) {
	if database.Redis == nil {
		return
	}
	payload, err := json.Marshal(ReservationEvent{
		VenueId: venueId,
		Action:  action,
		Start:   r.ReservationTime,
		Guests:  r.Guests,
	})
	if err != nil {
		return
	}
	if err := database.Redis.Publish(context.Background(), fmt.Sprintf("venue:%d", venueId), payload).Err(); err != nil {
		log.Printf("failed to publish reservation event: %v", err)
	}
}

// AvailabilityWebsocket streams reservation events for one venue. Each
// connection holds its own subscription and writes only to itself, so
// every watcher sees each event exactly once.
func AvailabilityWebsocket(c *websocket.Conn) {
	venueId := uint(c.Locals("inputId").(int))
	defer c.Close()

	if database.Redis == nil {
		return
	}

	pubsub := database.Redis.Subscribe(
		context.Background(),
		fmt.Sprintf("venue:%d", venueId),
	)
	defer pubsub.Close()

	pumpEvents(pubsub.Channel(), func(payload []byte) error {
		return c.WriteMessage(websocket.TextMessage, payload)
	})
}

// pumpEvents forwards each published payload to one writer, stopping
// on channel close or the first write failure.
func pumpEvents(events <-chan *redis.Message, write func([]byte) error) {
	for msg := range events {
		if err := write([]byte(msg.Payload)); err != nil {
			return
		}
	}
}
