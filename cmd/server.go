package cmd

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/musika/chord"
	"github.com/jsphweid/musika/constants"
	"github.com/jsphweid/musika/model"
	"github.com/jsphweid/musika/note"
	"github.com/jsphweid/musika/scale"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

// NewRouter wires every route behind request ids and CORS. Note names with
// a sharp must be escaped in paths, e.g. /chords/F%23/minor7.
func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(withRequestId)
	router.HandleFunc("/notes/{note}", handleNote).Methods("GET")
	router.HandleFunc("/shapes", handleShapes).Methods("GET")
	router.HandleFunc("/chords/{root}", handleChords).Methods("GET")
	router.HandleFunc("/chords/{root}/{shape}", handleChord).Methods("GET")
	router.HandleFunc("/scales/{tonic}/{kind}", handleScale).Methods("GET")
	router.HandleFunc("/find", HandleFind).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins: strings.Split(constants.GetCorsOrigins(), ","),
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})
	return c.Handler(router)
}

func withRequestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(constants.RequestIdHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(constants.RequestIdHeader, id)
		log.WithFields(logrus.Fields{
			"request_id": id,
			"method":     r.Method,
			"path":       r.URL.Path,
		}).Debug("request")
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("could not encode response")
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, chord.ErrUnknownShape) || errors.Is(err, scale.ErrUnknownKind) {
		status = http.StatusNotFound
	}
	log.WithError(err).WithField("status", status).Info("rejected request")
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func handleNote(w http.ResponseWriter, r *http.Request) {
	n, err := note.Parse(mux.Vars(r)["note"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.NewNoteView(n))
}

func handleShapes(w http.ResponseWriter, r *http.Request) {
	var views []model.ShapeView
	for _, s := range chord.Shapes() {
		views = append(views, model.NewShapeView(s))
	}
	writeJSON(w, http.StatusOK, views)
}

func handleChords(w http.ResponseWriter, r *http.Request) {
	root, err := note.Parse(mux.Vars(r)["root"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.NewChordViews(chord.All(root)))
}

func handleChord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	root, err := note.Parse(vars["root"])
	if err != nil {
		writeError(w, err)
		return
	}
	shape, err := chord.ShapeByKey(vars["shape"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.NewChordView(shape.Build(root)))
}

func handleScale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tonic, err := note.Parse(vars["tonic"])
	if err != nil {
		writeError(w, err)
		return
	}
	kind, err := scale.KindByKey(vars["kind"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.NewScaleView(scale.New(kind, tonic)))
}

func HandleFind(w http.ResponseWriter, r *http.Request) {
	var input model.FindRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, errors.Wrap(err, "could not decode request body"))
		return
	}

	root, err := note.Parse(input.Root)
	if err != nil {
		writeError(w, err)
		return
	}
	query, err := note.ParseAll(input.Notes)
	if err != nil {
		writeError(w, err)
		return
	}

	found := chord.FindContaining(root, query...)
	res := model.FindResponse{
		Root:    root.String(),
		Query:   make([]string, 0, len(query)),
		Matches: model.NewChordViews(found),
	}
	for _, n := range query {
		res.Query = append(res.Query, n.String())
	}
	writeJSON(w, http.StatusOK, res)
}
