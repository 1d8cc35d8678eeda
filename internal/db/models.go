package db

import (
	"time"

	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/domain"
)

// User table. Age is derived from BirthDate, never stored. The Active flag is
// owned by account management and only read here.
type User struct {
	ID           uint64        `gorm:"primaryKey;autoIncrement"`
	Username     string        `gorm:"uniqueIndex;size:64;not null"`
	Email        string        `gorm:"uniqueIndex;size:128;not null"`
	PasswordHash string        `gorm:"size:255;not null"`
	Gender       domain.Gender `gorm:"size:16;not null"`
	BirthDate    time.Time     `gorm:"not null"`
	City         string        `gorm:"size:64"`
	Active       bool          `gorm:"default:true"`
	CreatedAt    time.Time     `gorm:"autoCreateTime;index:idx_users_registered,sort:desc"`
	UpdatedAt    time.Time     `gorm:"autoUpdateTime"`
}

// Profile is the 1:1 aggregate owning a user's bio, coordinates, interests
// and photos. Mutations to the owned collections go through the methods
// below so collection invariants hold in one place.
type Profile struct {
	UserID     uint64   `gorm:"primaryKey"`
	Bio        string   `gorm:"size:1024"`
	Latitude   *float64 `gorm:"type:double"`
	Longitude  *float64 `gorm:"type:double"`
	Occupation string   `gorm:"size:128"`
	Education  string   `gorm:"size:128"`

	Interests []Interest `gorm:"many2many:profile_interests;"`
	Photos    []Photo    `gorm:"foreignKey:ProfileID"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// IsComplete reports whether the profile qualifies for the completeness
// scoring bonus: non-empty bio, at least one photo, at least one interest.
func (p *Profile) IsComplete() bool {
	return p.Bio != "" && len(p.Photos) > 0 && len(p.Interests) > 0
}

// Coordinates returns the profile's location, or ok=false when either
// coordinate is unset.
func (p *Profile) Coordinates() (lat, lng float64, ok bool) {
	if p.Latitude == nil || p.Longitude == nil {
		return 0, 0, false
	}
	return *p.Latitude, *p.Longitude, true
}

// AddInterest appends an interest unless it is already present.
func (p *Profile) AddInterest(in Interest) {
	for _, have := range p.Interests {
		if have.ID == in.ID {
			return
		}
	}
	p.Interests = append(p.Interests, in)
}

// RemoveInterest drops an interest by ID.
func (p *Profile) RemoveInterest(interestID uint64) {
	for i, have := range p.Interests {
		if have.ID == interestID {
			p.Interests = append(p.Interests[:i], p.Interests[i+1:]...)
			return
		}
	}
}

// AddPhoto appends a photo. At most one photo may be primary: marking the
// new photo primary demotes any existing primary.
func (p *Profile) AddPhoto(photo Photo) {
	if photo.IsPrimary {
		for i := range p.Photos {
			p.Photos[i].IsPrimary = false
		}
	}
	photo.ProfileID = p.UserID
	p.Photos = append(p.Photos, photo)
}

// RemovePhoto drops a photo by ID. If the removed photo was primary, the
// first remaining photo is promoted.
func (p *Profile) RemovePhoto(photoID uint64) {
	for i, have := range p.Photos {
		if have.ID == photoID {
			wasPrimary := have.IsPrimary
			p.Photos = append(p.Photos[:i], p.Photos[i+1:]...)
			if wasPrimary && len(p.Photos) > 0 {
				p.Photos[0].IsPrimary = true
			}
			return
		}
	}
}

// Interest is a shared tag referenced by profiles.
type Interest struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"uniqueIndex;size:64;not null"`
}

// Photo belongs to a profile. DisplayOrder drives gallery ordering;
// IsPrimary marks the headline photo (at most one per profile, enforced by
// the Profile mutators).
type Photo struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	ProfileID    uint64 `gorm:"not null;index"`
	URL          string `gorm:"size:512;not null"`
	IsPrimary    bool   `gorm:"default:false"`
	DisplayOrder int    `gorm:"default:0"`
}

// Preference holds a user's discovery criteria. PreferredGender "other"
// means any. MaxDistanceKm is informational only and never applied as a
// hard filter.
type Preference struct {
	UserID          uint64        `gorm:"primaryKey"`
	PreferredGender domain.Gender `gorm:"size:16;not null"`
	MinAge          int           `gorm:"not null"`
	MaxAge          int           `gorm:"not null"`
	MaxDistanceKm   int           `gorm:"default:0"`
	CreatedAt       time.Time     `gorm:"autoCreateTime"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime"`
}

// Swipe is the immutable directional edge swiper -> swiped.
//
// Unique index on (swiper_id, swiped_id): a pair is evaluated exactly once;
// a second attempt is rejected, never overwritten.
//
// idx_swipes_received(swiped_id, type) backs the "who liked me" count and
// the reverse-swipe lookup during match detection.
type Swipe struct {
	ID        uint64           `gorm:"primaryKey;autoIncrement"`
	SwiperID  uint64           `gorm:"not null;uniqueIndex:idx_swipes_pair,priority:1"`
	SwipedID  uint64           `gorm:"not null;uniqueIndex:idx_swipes_pair,priority:2;index:idx_swipes_received,priority:1"`
	Type      domain.SwipeType `gorm:"size:16;not null;index:idx_swipes_received,priority:2"`
	CreatedAt time.Time        `gorm:"autoCreateTime"`
}

// Match is the undirected relationship unlocked by reciprocal positive
// swipes. UserAID is always the numerically smaller ID; the unique index on
// the canonical pair is what makes concurrent reciprocal swipes collapse to
// a single row.
type Match struct {
	ID          uint64     `gorm:"primaryKey;autoIncrement"`
	UserAID     uint64     `gorm:"not null;uniqueIndex:idx_matches_pair,priority:1"`
	UserBID     uint64     `gorm:"not null;uniqueIndex:idx_matches_pair,priority:2"`
	Active      bool       `gorm:"default:true"`
	MatchedAt   time.Time  `gorm:"not null"`
	UnmatchedAt *time.Time
}

// OtherUser returns the counterpart of userID in the match, or ok=false when
// userID is not a member.
func (m *Match) OtherUser(userID uint64) (uint64, bool) {
	switch userID {
	case m.UserAID:
		return m.UserBID, true
	case m.UserBID:
		return m.UserAID, true
	}
	return 0, false
}
