package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	for _, valid := range []string{"", "en", "fr", "de", "es"} {
		lang, err := ParseLanguage(valid)
		require.NoError(t, err)
		assert.Equal(t, Language(valid), lang)
	}

	_, err := ParseLanguage("it")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Error(), "it")
}

func TestParseDistanceUnit(t *testing.T) {
	for _, valid := range []string{"", "kms", "miles"} {
		_, err := ParseDistanceUnit(valid)
		require.NoError(t, err)
	}

	_, err := ParseDistanceUnit("leagues")
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestParseElevationUnit(t *testing.T) {
	for _, valid := range []string{"", "meters", "feet"} {
		_, err := ParseElevationUnit(valid)
		require.NoError(t, err)
	}

	_, err := ParseElevationUnit("fathoms")
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestParams_EmptyValuesSkipped(t *testing.T) {
	p := newParams().
		set("location", "").
		setInt("radius", nil).
		setBool("topAirports", false).
		set("countrycode", "FR")

	assert.Equal(t, "countrycode=FR", p.encode())
}

func TestParams_ExplicitZeroIsSent(t *testing.T) {
	zero := 0
	p := newParams().setInt("radius", &zero)

	assert.Equal(t, "radius=0", p.encode())
}

func TestEnvelope_Records(t *testing.T) {
	t.Run("list payload", func(t *testing.T) {
		env := &Envelope{Data: []byte(`[{"name":"a"},{"name":"b"}]`)}
		records, err := env.Records()
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("single object payload", func(t *testing.T) {
		env := &Envelope{Data: []byte(`{"distance":5834,"unit":"kms"}`)}
		records, err := env.Records()
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "kms", records[0]["unit"])
	})

	t.Run("empty payload", func(t *testing.T) {
		env := &Envelope{}
		records, err := env.Records()
		require.NoError(t, err)
		assert.Nil(t, records)
	})
}
