package leads

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestNormalize_RejectsMissingOrUnknownType(t *testing.T) {
	cases := map[string]RawSubmission{
		"nil":        nil,
		"missing":    {"name": "Kim"},
		"empty":      {"type": ""},
		"unknown":    {"type": "email"},
		"wrong case": {"type": "Online"},
		"padded":     {"type": " phone"},
		"not string": {"type": 1.0},
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Normalize(raw, fixedNow)
			require.ErrorIs(t, err, ErrInvalidType)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestNormalize_DefaultsAndTrimming(t *testing.T) {
	s, err := Normalize(RawSubmission{
		"type":  "phone",
		"name":  "  Kim ",
		"phone": "010-12345678",
	}, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, RequestTypePhone, s.Type)
	assert.Equal(t, DefaultSite, s.Site)
	assert.Equal(t, "Kim", s.Name)
	assert.Equal(t, "010-12345678", s.Phone)
	assert.Equal(t, "2024-01-01T00:00:00.000Z", s.RequestedAt)
	assert.Empty(t, s.PetName)
	assert.Empty(t, s.RRNFull)
	assert.Empty(t, s.Notes)
}

func TestNormalize_BlankSiteDefaults(t *testing.T) {
	s, err := Normalize(RawSubmission{"type": "online", "site": "   "}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "unknown", s.Site)
}

func TestNormalize_KeepsCallerRequestedAt(t *testing.T) {
	s, err := Normalize(RawSubmission{
		"type":        "online",
		"requestedAt": "2023-05-05T10:00:00.000Z",
	}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "2023-05-05T10:00:00.000Z", s.RequestedAt)
}

func TestNormalize_StringifiesScalarsAndDropsUnknownKeys(t *testing.T) {
	s, err := Normalize(RawSubmission{
		"type":         "online",
		"petBirthDate": 20200101.0,
		"petNeutered":  true,
		"petName":      nil,
		"headers":      map[string]any{"x": "y"},
	}, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, "20200101", s.PetBirthDate)
	assert.Equal(t, "true", s.PetNeutered)
	assert.Empty(t, s.PetName)
}
