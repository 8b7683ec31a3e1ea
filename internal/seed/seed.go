package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/stagewatch/sleepchart/internal/domain"
	"gorm.io/gorm"
)

const seededDays = 40

// Run seeds the database with sample users and sleep samples. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.SleepSample{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam"},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York"},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo"},
		{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Australia/Sydney"},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, user := range users {
		if err := seedSamplesForUser(db, user, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

// seedSamplesForUser writes one night per day: an in_bed envelope with
// stage cycles inside it and an occasional brief awakening.
func seedSamplesForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := 0; i < seededDays; i++ {
		date := now.AddDate(0, 0, -i)
		bedtime := time.Date(date.Year(), date.Month(), date.Day(), 22+rng.Intn(2), rng.Intn(60), 0, 0, time.UTC)
		wakeup := bedtime.Add(time.Duration(7+rng.Intn(3)) * time.Hour)

		night := buildNight(user.ID, bedtime, wakeup, rng, fmt.Sprintf("seed-%s-%d", user.ID, i))
		for _, sample := range night {
			if err := db.Where("client_request_id = ?", *sample.ClientRequestID).FirstOrCreate(&sample).Error; err != nil {
				return fmt.Errorf("failed to create sleep sample: %w", err)
			}
		}
	}
	return nil
}

func buildNight(userID uuid.UUID, bedtime, wakeup time.Time, rng *rand.Rand, prefix string) []domain.SleepSample {
	mk := func(stage domain.SleepStage, start, end time.Time, suffix string) domain.SleepSample {
		id := fmt.Sprintf("%s-%s", prefix, suffix)
		return domain.SleepSample{
			UserID:          userID,
			Stage:           stage,
			StartAt:         start,
			EndAt:           end,
			ClientRequestID: &id,
		}
	}

	samples := []domain.SleepSample{
		mk(domain.StageInBed, bedtime, wakeup, "inbed"),
	}

	// Sleep onset a few minutes after getting into bed, then roughly
	// hour-long blocks rotating through core, deep and REM until wakeup.
	cursor := bedtime.Add(time.Duration(5+rng.Intn(15)) * time.Minute)
	stages := []domain.SleepStage{domain.StageAsleepCore, domain.StageAsleepDeep, domain.StageAsleepREM}
	cycle := 0
	for cursor.Before(wakeup) {
		stage := stages[cycle%len(stages)]
		end := cursor.Add(time.Duration(60+rng.Intn(60)) * time.Minute)
		if end.After(wakeup) {
			end = wakeup
		}
		samples = append(samples, mk(stage, cursor, end, fmt.Sprintf("cycle-%d", cycle)))
		cursor = end

		// Occasional brief awakening between cycles
		if cursor.Before(wakeup) && rng.Float32() < 0.25 {
			awakeEnd := cursor.Add(time.Duration(2+rng.Intn(8)) * time.Minute)
			if awakeEnd.After(wakeup) {
				awakeEnd = wakeup
			}
			samples = append(samples, mk(domain.StageAwake, cursor, awakeEnd, fmt.Sprintf("awake-%d", cycle)))
			cursor = awakeEnd
		}
		cycle++
	}

	return samples
}
