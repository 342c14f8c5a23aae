package storage

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"

	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
)

// TestDataGenerator produces realistic user profiles for storage tests.
// Seeding makes a failing run reproducible.
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64

	nextID sharedtypes.UserID
}

func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}
	return &TestDataGenerator{
		faker:  gofakeit.New(uint64(s)),
		seed:   s,
		nextID: 1000,
	}
}

func (g *TestDataGenerator) Seed() int64 {
	return g.seed
}

// GenerateProfile returns a profile with a unique user id and a faked
// username and name pair.
func (g *TestDataGenerator) GenerateProfile() sharedtypes.UserProfile {
	g.nextID++
	return sharedtypes.UserProfile{
		UserID:    g.nextID,
		Username:  g.faker.Username(),
		FirstName: g.faker.FirstName(),
		LastName:  g.faker.LastName(),
	}
}

// GenerateProfiles returns n distinct profiles.
func (g *TestDataGenerator) GenerateProfiles(n int) []sharedtypes.UserProfile {
	profiles := make([]sharedtypes.UserProfile, n)
	for i := range profiles {
		profiles[i] = g.GenerateProfile()
	}
	return profiles
}
