package db

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/domain"
)

var seedInterestNames = []string{
	"hiking", "cooking", "movies", "travel", "music",
	"photography", "reading", "gaming", "yoga", "coffee",
}

var seedCities = []string{"Warsaw", "Krakow", "Gdansk", "Wroclaw", "Poznan"}

// SeedTestData resets the database and populates it with demo data.
//
// Behavior:
//  1. Clears matches, swipes, profiles, preferences, interests and users.
//  2. Creates 20 users (10 male, 10 female) aged 20-45 with hashed
//     passwords, profiles (bio, coordinates near their city, 2-4 interests,
//     a primary photo) and preferences for the opposite gender.
//  3. Generates swipes with ~70% likes, forcing a reciprocal like on every
//     3rd pair so the demo data contains matches.
//
// Compatible with both MySQL and SQLite.
func SeedTestData(db *gorm.DB) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// --- Fresh start ---
	for _, table := range []string{"matches", "swipes", "profile_interests", "photos", "profiles", "preferences", "interests", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	switch db.Dialector.Name() {
	case "mysql":
		for _, table := range []string{"matches", "swipes", "photos", "interests", "users"} {
			db.Exec("ALTER TABLE " + table + " AUTO_INCREMENT = 1")
		}
	case "sqlite":
		db.Exec("DELETE FROM sqlite_sequence WHERE name IN ('matches','swipes','photos','interests','users')")
	}

	log.Println("Cleared existing data")

	// --- Interests ---
	interests := make([]Interest, 0, len(seedInterestNames))
	for _, name := range seedInterestNames {
		interests = append(interests, Interest{Name: name})
	}
	if err := db.Create(&interests).Error; err != nil {
		return fmt.Errorf("failed to seed interests: %w", err)
	}

	// --- Users with profiles and preferences ---
	thisYear := time.Now().Year()
	for i := 1; i <= 20; i++ {
		hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		gender, wants := domain.GenderMale, domain.GenderFemale
		if i > 10 {
			gender, wants = domain.GenderFemale, domain.GenderMale
		}

		age := 20 + r.Intn(26)
		city := seedCities[r.Intn(len(seedCities))]

		user := User{
			Username:     fmt.Sprintf("user%d", i),
			Email:        fmt.Sprintf("user%d@example.com", i),
			PasswordHash: string(hash),
			Gender:       gender,
			BirthDate:    time.Date(thisYear-age, time.Month(1+r.Intn(12)), 1+r.Intn(28), 0, 0, 0, 0, time.UTC),
			City:         city,
			Active:       true,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}

		lat := 52.0 + r.Float64()*2 - 1
		lng := 19.0 + r.Float64()*2 - 1
		profile := Profile{
			UserID:     user.ID,
			Bio:        fmt.Sprintf("Hi, I'm user%d from %s.", i, city),
			Latitude:   &lat,
			Longitude:  &lng,
			Occupation: "engineer",
			Education:  "university",
		}
		for _, idx := range r.Perm(len(interests))[:2+r.Intn(3)] {
			profile.AddInterest(interests[idx])
		}
		profile.AddPhoto(Photo{
			URL:       fmt.Sprintf("https://photos.example.com/u%d/main.jpg", i),
			IsPrimary: true,
		})
		if err := db.Create(&profile).Error; err != nil {
			return fmt.Errorf("failed to seed profile: %w", err)
		}

		pref := Preference{
			UserID:          user.ID,
			PreferredGender: wants,
			MinAge:          18,
			MaxAge:          55,
			MaxDistanceKm:   100,
		}
		if err := db.Create(&pref).Error; err != nil {
			return fmt.Errorf("failed to seed preference: %w", err)
		}
	}
	log.Println("Seeded 20 users with profiles and preferences.")

	// --- Swipes ---
	var users []User
	if err := db.Order("id ASC").Find(&users).Error; err != nil {
		return err
	}
	counter := 0
	for _, actor := range users {
		for j := 0; j < 8; j++ {
			target := users[r.Intn(len(users))]
			if target.ID == actor.ID || target.Gender == actor.Gender {
				continue
			}

			swipeType := domain.SwipeLike
			if r.Intn(100) >= 70 {
				swipeType = domain.SwipePass
			}

			// guarantee a reciprocal like on every 3rd pair
			if counter%3 == 0 {
				swipeType = domain.SwipeLike
				db.Create(&Swipe{SwiperID: target.ID, SwipedID: actor.ID, Type: domain.SwipeLike})
			}

			if err := db.Create(&Swipe{SwiperID: actor.ID, SwipedID: target.ID, Type: swipeType}).Error; err != nil {
				// duplicate pair from the random walk, skip
				continue
			}

			// materialize matches for reciprocal likes
			if swipeType.Positive() {
				var reverse Swipe
				if err := db.First(&reverse, "swiper_id = ? AND swiped_id = ?", target.ID, actor.ID).Error; err == nil && reverse.Type.Positive() {
					a, b := domain.CanonicalPair(actor.ID, target.ID)
					db.Create(&Match{UserAID: a, UserBID: b, Active: true, MatchedAt: time.Now()})
				}
			}

			counter++
		}
	}
	log.Println("Seeded swipes and matches.")

	return nil
}
