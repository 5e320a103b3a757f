package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wada-stylist/internal/domain/entities"
	domainrepos "wada-stylist/internal/domain/repositories"
	"wada-stylist/internal/domain/valueobjects"
)

func newRedisSessions(t *testing.T, ttl time.Duration) (domainrepos.SessionRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisSessionRepository(client, ttl), mr
}

func TestRedisSessionRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, mr := newRedisSessions(t, 2*time.Hour)

	image := newPNG(t)
	combination := 5

	session := entities.NewAnalysisSession("abc")
	session.Gender = valueobjects.GenderFemale
	session.Detected = []entities.DetectedColor{{Clothing: "Shirt", Name: "Scarlet", Hex: "#f0341b", RGB: "240, 52, 27", Index: 2}}
	session.Recommendations = []entities.Combination{{Index: 5, Names: []string{"Scarlet", "Red"}, Codes: []string{"R:240 / G:52 / B:27", "R:210 / G:37 / B:46"}}}
	session.Selection = session.Selection.ToggleGarment("Shirt").WithCombination(&combination)
	session.SetImage(image)

	require.NoError(t, repo.Save(ctx, session))
	assert.Equal(t, 2*time.Hour, mr.TTL("wada:sess:abc"))

	found, err := repo.FindByID(ctx, "abc")
	require.NoError(t, err)

	assert.Equal(t, valueobjects.GenderFemale, found.Gender)
	assert.Equal(t, session.Detected, found.Detected)
	assert.Equal(t, session.Recommendations, found.Recommendations)
	assert.True(t, found.Selection.IsGarmentSelected("Shirt"))
	require.NotNil(t, found.Selection.SelectedCombination)
	assert.Equal(t, 5, *found.Selection.SelectedCombination)

	restored, err := found.Image()
	require.NoError(t, err)
	assert.Equal(t, image.Data(), restored.Data())
	assert.Equal(t, "image/png", restored.MimeType())
}

func TestRedisSessionRepository_Expiry(t *testing.T) {
	ctx := context.Background()
	repo, mr := newRedisSessions(t, time.Hour)

	require.NoError(t, repo.Save(ctx, entities.NewAnalysisSession("abc")))

	mr.FastForward(59 * time.Minute)
	_, err := repo.FindByID(ctx, "abc")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)
	_, err = repo.FindByID(ctx, "abc")
	assert.ErrorIs(t, err, domainrepos.ErrSessionNotFound)
}

func TestRedisSessionRepository_NotFoundAndDelete(t *testing.T) {
	ctx := context.Background()
	repo, mr := newRedisSessions(t, time.Hour)

	_, err := repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, domainrepos.ErrSessionNotFound)

	require.NoError(t, repo.Save(ctx, entities.NewAnalysisSession("abc")))
	require.NoError(t, repo.Delete(ctx, "abc"))
	assert.False(t, mr.Exists("wada:sess:abc"))

	_, err = repo.FindByID(ctx, "abc")
	assert.ErrorIs(t, err, domainrepos.ErrSessionNotFound)

	// 壊れた値は見つからない扱いにしない
	require.NoError(t, mr.Set("wada:sess:broken", "{"))
	_, err = repo.FindByID(ctx, "broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainrepos.ErrSessionNotFound)
}
