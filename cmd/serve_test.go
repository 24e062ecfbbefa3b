package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/model"
	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"
)

func newTestRouter(t *testing.T) http.Handler {
	router, err := NewRouter(2)
	if err != nil {
		t.Fatal(err)
	}
	return router
}

func post(t *testing.T, router http.Handler, path string, body string) *http.Response {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Result()
}

func decode[A any](t *testing.T, resp *http.Response) A {
	var res A
	body, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(body, &res); err != nil {
		t.Fatalf("could not decode %q: %v", body, err)
	}
	return res
}

func TestTransposeEndpoint(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{`{"note": "C", "delta": 1}`, `{"note":"C#"}`},
		{`{"note": "D", "delta": -1}`, `{"note":"Db"}`},
		{`{"note": "C", "delta": 26}`, `{"note":"D"}`},
		{`{"note": "C major", "delta": 1}`, `{"note":"C major"}`},
		{`{"note": "", "delta": 1}`, `{"note":""}`},
		{`{"note": null, "delta": 1}`, `{"note":null}`},
		{`{"delta": 1}`, `{"note":null}`},
		{`{"note": "F#m7 (b5)", "delta": 1, "symbol": true}`, `{"note":"Gm7 (b5)"}`},
	}

	router := newTestRouter(t)
	for _, c := range cases {
		t.Run(c.body, func(t *testing.T) {
			resp := post(t, router, "/transpose", c.body)
			body, _ := io.ReadAll(resp.Body)

			assert := assert.New(t)
			assert.Equal(http.StatusOK, resp.StatusCode)
			assert.JSONEq(c.want, string(body))
			assert.NotEmpty(resp.Header.Get("X-Request-Id"))
		})
	}
}

func TestSymbolsEndpoint(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{`{"query": "Cm7 Eb7"}`, `{"symbols":["Cm7","Eb7"]}`},
		{`{"query": "C      major   F#m7    (b5) G"}`, `{"symbols":["C major","F#m7 (b5)","G"]}`},
		{`{"query": null}`, `{"symbols":null}`},
		{`{"query": "   "}`, `{"symbols":null}`},
		{`{"query": "Cm7 Eb7", "octave": 0}`, `{"symbols":["Cm7","Eb7"],"keys":[1,4]}`},
		{`{"query": "Cm7 Eb7", "transpose": -1}`, `{"symbols":["Bm7","D7"]}`},
		{`{"query": "no roots", "octave": 0}`, `{"symbols":null}`},
	}

	router := newTestRouter(t)
	for _, c := range cases {
		t.Run(c.body, func(t *testing.T) {
			resp := post(t, router, "/symbols", c.body)
			body, _ := io.ReadAll(resp.Body)

			assert := assert.New(t)
			assert.Equal(http.StatusOK, resp.StatusCode)
			assert.JSONEq(c.want, string(body))
		})
	}
}

func TestSymbolsEndpointRejectsOctaveOffKeyboard(t *testing.T) {
	resp := post(t, newTestRouter(t), "/symbols", `{"query": "C", "octave": 9}`)
	res := decode[model.ErrorResponse](t, resp)

	assert := assert.New(t)
	assert.Equal(http.StatusBadRequest, resp.StatusCode)
	assert.Contains(res.Error, "octave 9")
}

func TestMalformedBodies(t *testing.T) {
	router := newTestRouter(t)
	for _, path := range []string{"/transpose", "/symbols"} {
		t.Run(path, func(t *testing.T) {
			resp := post(t, router, path, `{"query": `)
			res := decode[model.ErrorResponse](t, resp)

			assert := assert.New(t)
			assert.Equal(http.StatusBadRequest, resp.StatusCode)
			assert.Contains(res.Error, "Could not unmarshal request body")
		})
	}
}

func TestScanEndpoint(t *testing.T) {
	var tr smf.Track
	tr.Add(0, smf.MetaMarker("A: Dm7 G7 C"))
	tr.Close(0)
	s := smf.New()
	if err := s.Add(tr); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}

	resp := post(t, newTestRouter(t), "/scan", buf.String())
	res := decode[[]model.TimedSymbols](t, resp)

	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)
	if assert.Len(res, 1) {
		assert.Equal([]string{"A:", "Dm7", "G7", "C"}, res[0].Symbols)
		assert.Equal(model.Marker, res[0].Kind)
	}
}

func TestScanEndpointRejectsGarbage(t *testing.T) {
	resp := post(t, newTestRouter(t), "/scan", "not midi")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestScanEndpointRejectsOversizeBody(t *testing.T) {
	body := strings.Repeat("x", constants.MaxMidiUploadSize+1)
	resp := post(t, newTestRouter(t), "/scan", body)
	res := decode[model.ErrorResponse](t, resp)

	assert := assert.New(t)
	assert.Equal(http.StatusRequestEntityTooLarge, resp.StatusCode)
	assert.Contains(res.Error, "larger than")
}

func TestHealthzAndMethods(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert := assert.New(t)
	assert.Equal(http.StatusOK, w.Code)
	assert.Equal("ok", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/transpose", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(http.StatusMethodNotAllowed, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:5173")
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/symbols", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewRouterRejectsEmptyKeyboard(t *testing.T) {
	_, err := NewRouter(0)
	assert.Error(t, err)
}
