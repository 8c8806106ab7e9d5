package handlers

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/buscaminas/internal/mines"
)

func newTestHandler(maxCells int) *DumpHandler {
	log, _ := test.NewNullLogger()
	return NewDumpHandler(log, rand.New(rand.NewPCG(1, 2)), maxCells)
}

func get(h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func seededBoard(t *testing.T, rows, cols, mineCount int, seed uint64) *mines.Board {
	t.Helper()
	b, err := mines.Make(rows, cols, mineCount, mines.WithSeed(seed))
	require.NoError(t, err)
	b.Shuffle()
	return b
}

func TestDumpCoverText(t *testing.T) {
	h := newTestHandler(0)

	rec := get(h.Dump, "/dump?rows=3&cols=3&mines=3&seed=5")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "###\n###\n###\n", rec.Body.String())
	assert.Equal(t, "5", rec.Header().Get("X-Board-Seed"))
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestDumpUncoverMatchesEngine(t *testing.T) {
	h := newTestHandler(0)

	rec := get(h.Dump, "/dump?rows=4&cols=6&mines=7&seed=99&view=uncover")
	require.Equal(t, http.StatusOK, rec.Code)

	want := seededBoard(t, 4, 6, 7, 99).DumpUncover().String()
	assert.Equal(t, want, rec.Body.String())
	assert.Equal(t, 7, strings.Count(rec.Body.String(), "*"))
}

func TestDumpSplitWithOpenCells(t *testing.T) {
	h := newTestHandler(0)

	rec := get(h.Dump, "/dump?rows=3&cols=3&mines=3&seed=5&view=split&open=0:0&open=2:2")
	require.Equal(t, http.StatusOK, rec.Code)

	b := seededBoard(t, 3, 3, 3, 5)
	require.NoError(t, b.Open(0, 0))
	require.NoError(t, b.Open(2, 2))
	assert.Equal(t, b.DumpSplit().String(), rec.Body.String())
}

func TestDumpJSON(t *testing.T) {
	h := newTestHandler(0)

	rec := get(h.Dump, "/dump?rows=2&cols=5&mines=3&seed=18446744073709551615&format=json&open=1:4")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "18446744073709551615", rec.Header().Get("X-Board-Seed"))

	var dto DumpDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, 2, dto.Rows)
	assert.Equal(t, 5, dto.Cols)
	assert.Equal(t, 3, dto.Mines)
	assert.Equal(t, "18446744073709551615", dto.Seed)
	assert.Equal(t, "cover", dto.View)
	require.Len(t, dto.Lines, 2)
	assert.Equal(t, "#####", dto.Lines[0])
	assert.Equal(t, byte('#'), dto.Lines[1][0])
	assert.NotEqual(t, byte('#'), dto.Lines[1][4])
}

func TestDumpWithoutSeedIsReproducibleFromHeader(t *testing.T) {
	h := newTestHandler(0)

	first := get(h.Dump, "/dump?rows=5&cols=5&mines=6&view=uncover")
	require.Equal(t, http.StatusOK, first.Code)
	seed := first.Header().Get("X-Board-Seed")
	require.NotEmpty(t, seed)

	again := get(h.Dump, "/dump?rows=5&cols=5&mines=6&view=uncover&seed="+seed)
	assert.Equal(t, first.Body.String(), again.Body.String())
}

func TestDumpBadRequests(t *testing.T) {
	h := newTestHandler(400)

	testCases := []struct {
		name  string
		query string
	}{
		{"missing mines", "rows=3&cols=3"},
		{"not a number", "rows=three&cols=3&mines=1"},
		{"too many mines", "rows=3&cols=3&mines=10"},
		{"zero rows", "rows=0&cols=3&mines=0"},
		{"negative mines", "rows=3&cols=3&mines=-1"},
		{"unknown view", "rows=3&cols=3&mines=1&view=xray"},
		{"unknown format", "rows=3&cols=3&mines=1&format=xml"},
		{"malformed open", "rows=3&cols=3&mines=1&open=1-1"},
		{"open out of range", "rows=3&cols=3&mines=1&open=3:0"},
		{"too large", "rows=21&cols=20&mines=1"},
		{"overflowing", "rows=4611686018427387904&cols=4&mines=1"},
	}
	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			rec := get(h.Dump, "/dump?"+test.query)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestStatus(t *testing.T) {
	h := newTestHandler(0)
	rec := get(h.Status, "/status")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSendJSONStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	_, err := SendJSONStatus(rec, http.StatusTeapot, map[string]int{"n": 1})
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"n":1}`, rec.Body.String())

	rec = httptest.NewRecorder()
	_, err = SendJSONStatus(rec, http.StatusBadRequest, func() {})
	assert.Error(t, err)
	assert.False(t, rec.Flushed)
	assert.Empty(t, rec.Body.String())
	assert.Empty(t, rec.Header().Get("Content-Type"))
}
