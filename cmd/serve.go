package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/keyboard"
	"github.com/jsphweid/chordex/midi"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/note"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var servePort string

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", constants.GetPort(), "port to listen on (env PORT)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the JSON API",
	Long:  `Serves POST /transpose, POST /symbols and POST /scan.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		serve(servePort)
	},
}

type server struct {
	keyboard *keyboard.Keyboard
}

// NewRouter builds the API handler with CORS and request logging.
func NewRouter(octaves int) (http.Handler, error) {
	kb, err := keyboard.New(octaves)
	if err != nil {
		return nil, err
	}
	s := &server{keyboard: kb}

	router := mux.NewRouter().StrictSlash(true)
	router.Use(logRequests)
	router.HandleFunc("/healthz", handleHealthz).Methods("GET")
	router.HandleFunc("/transpose", HandleTranspose).Methods("POST")
	router.HandleFunc("/symbols", s.HandleSymbols).Methods("POST")
	router.HandleFunc("/scan", HandleScan).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins: constants.GetAllowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(router), nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		log.Printf("%v %v %v %v %v", id, r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Could not encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, model.ErrorResponse{Error: detail})
}

func readJSON(r *http.Request, v any) error {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(reqBody, v)
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func HandleTranspose(w http.ResponseWriter, r *http.Request) {
	var input model.TransposeRequestBody
	if err := readJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "Could not unmarshal request body: "+err.Error())
		return
	}

	var res model.TransposeResponse
	if input.Symbol && input.Note != nil {
		transposed := chord.Transpose(*input.Note, input.Delta)
		res.Note = &transposed
	} else {
		res.Note = note.TransposeOptional(input.Note, input.Delta)
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *server) HandleSymbols(w http.ResponseWriter, r *http.Request) {
	var input model.SymbolsRequestBody
	if err := readJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "Could not unmarshal request body: "+err.Error())
		return
	}

	var res model.SymbolsResponse
	if input.Query != nil {
		res.Symbols = analyze(*input.Query, input.Transpose)
	}
	if input.Octave != nil && res.Symbols != nil {
		keys, err := s.keyboard.Highlight(res.Symbols, *input.Octave)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		res.Keys = keys
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleScan answers 413 for bodies over MaxMidiUploadSize and 400 for
// anything that isn't a readable midi file.
func HandleScan(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, constants.MaxMidiUploadSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("midi file is larger than %v bytes", tooLarge.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, "Could not read request body: "+err.Error())
		return
	}

	s, err := midi.ReadMidi(bytes.NewReader(data))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := midi.FindSymbols(s)
	if res == nil {
		res = []model.TimedSymbols{}
	}
	writeJSON(w, http.StatusOK, res)
}

func serve(port string) {
	router, err := NewRouter(constants.GetKeyboardOctaves())
	if err != nil {
		log.Fatal(err)
	}

	addr := ":" + port
	log.Printf("listening on %v", addr)
	log.Fatal(http.ListenAndServe(addr, router))
}
