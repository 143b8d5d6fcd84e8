//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jsphweid/musika/cmd"
	"github.com/jsphweid/musika/model"
	"github.com/stretchr/testify/assert"
)

var server *httptest.Server

func TestMain(m *testing.M) {
	server = httptest.NewServer(cmd.NewRouter())

	exitVal := m.Run()

	server.Close()
	os.Exit(exitVal)
}

func createFindReqBody(root string, notes []string) io.Reader {
	data, err := json.Marshal(model.FindRequestBody{Root: root, Notes: notes})
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func TestFindThenRenderE2E(t *testing.T) {
	resp, err := http.Post(server.URL+"/find", "application/json", createFindReqBody("D", []string{"F", "C"}))
	if err != nil {
		panic(err.Error())
	}
	defer resp.Body.Close()

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var found model.FindResponse
	err = json.NewDecoder(resp.Body).Decode(&found)
	if err != nil {
		panic(err.Error())
	}
	var names []string
	for _, m := range found.Matches {
		names = append(names, m.Name)
	}
	assert.Equal([]string{"Dm7", "Dm7(b5)", "Dm9", "Dm11", "Dm13"}, names)

	// every match can be fetched again by its catalog key
	resp, err = http.Get(server.URL + "/chords/D/minor7")
	if err != nil {
		panic(err.Error())
	}
	defer resp.Body.Close()

	var view model.ChordView
	err = json.NewDecoder(resp.Body).Decode(&view)
	if err != nil {
		panic(err.Error())
	}
	assert.Equal(found.Matches[0], view)
	assert.Equal("Dm7 [D, F, A, C]", view.Sharp)
}

func TestSharpRootInPathE2E(t *testing.T) {
	resp, err := http.Get(server.URL + "/scales/F%23/major")
	if err != nil {
		panic(err.Error())
	}
	defer resp.Body.Close()

	var view model.ScaleView
	err = json.NewDecoder(resp.Body).Decode(&view)
	if err != nil {
		panic(err.Error())
	}
	assert.Equal(t, "F# major [F#, G#, A#, B, C#, D#, F, F#]", view.Sharp)
	assert.Equal(t, "F# major [Gb, Ab, Bb, B, Db, Eb, F, Gb]", view.Flat)
}
