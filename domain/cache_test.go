package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBundle(t *testing.T) {
	tests := map[string]struct {
		payload           string
		wantErr           error
		expectedHeadlines int
		expectedTicker    string
		expectedSummaries int
	}{
		"object_envelope": {
			payload: `{
				"headlines":[{"title":"One","url":"https://example.com/1","section":"Tech"}],
				"ticker":"[Tech] One",
				"summaries":{"https://example.com/1":"A summary"}
			}`,
			expectedHeadlines: 1,
			expectedTicker:    "[Tech] One",
			expectedSummaries: 1,
		},
		"legacy_bare_array": {
			payload:           `[{"title":"Old","url":"https://example.com/old"}]`,
			expectedHeadlines: 1,
		},
		"skips_incomplete_entries": {
			payload: `{"headlines":[
				{"title":"Kept","url":"https://example.com/kept"},
				{"title":"","url":"https://example.com/untitled"},
				{"title":"No link","url":""},
				"not an object"
			]}`,
			expectedHeadlines: 1,
		},
		"drops_blank_ticker_and_summaries": {
			payload:           `{"headlines":[{"title":"A","url":"https://example.com/a"}],"ticker":"   ","summaries":{"k":"  ","":"orphan"}}`,
			expectedHeadlines: 1,
		},
		"scalar_payload": {
			payload: `42`,
			wantErr: ErrMalformedPayload,
		},
		"empty_payload": {
			payload: "   ",
			wantErr: ErrMalformedPayload,
		},
		"truncated_json": {
			payload: `{"headlines":[`,
			wantErr: ErrMalformedPayload,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			bundle, err := DecodeBundle([]byte(tc.payload))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Len(t, bundle.Headlines, tc.expectedHeadlines)
			assert.Equal(t, tc.expectedTicker, bundle.TickerText)
			assert.Len(t, bundle.Summaries, tc.expectedSummaries)
		})
	}
}

func TestDecodeBundleAppliesDefaultSection(t *testing.T) {
	bundle, err := DecodeBundle([]byte(`[{"title":"Sectionless","url":"https://example.com/s"}]`))
	require.NoError(t, err)
	assert.Equal(t, DefaultSection, bundle.Headlines[0].Section)
}

func TestLimited(t *testing.T) {
	bundle := NewHeadlineCache([]Headline{
		{Title: "A", URL: "https://example.com/a"},
		{Title: "B", URL: "https://example.com/b"},
		{Title: "C", URL: "https://example.com/c"},
	}, "ticker", map[string]string{"k": "v"})

	capped := bundle.Limited(2)
	assert.Len(t, capped.Headlines, 2)
	assert.Equal(t, "ticker", capped.TickerText)
	assert.Len(t, capped.Summaries, 1)

	assert.Same(t, bundle, bundle.Limited(0))
	assert.Same(t, bundle, bundle.Limited(-1))
	assert.Same(t, bundle, bundle.Limited(3))
	assert.Same(t, bundle, bundle.Limited(10))
}

func TestHeadlineKeyLowercasesTitleOnly(t *testing.T) {
	a := Headline{Title: "Big News", URL: "https://example.com/A"}
	b := Headline{Title: "BIG NEWS", URL: "https://example.com/A"}
	c := Headline{Title: "Big News", URL: "https://example.com/a"}

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}
