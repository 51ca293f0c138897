package cmd

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/mux"
	"github.com/jsphweid/fretcast/constants"
	"github.com/jsphweid/fretcast/model"
	"github.com/jsphweid/fretcast/util"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves converted JSON over HTTP",
	Long:  `Serves converted JSON over HTTP for the browser visualizer.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func handleListSongs(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(constants.GetOutputDir())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
		return
	}

	overviews := make([]model.SongOverview, 0)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		overviews = append(overviews, model.SongOverview{
			Name: util.Stem(entry.Name()),
			File: entry.Name(),
		})
	}
	json.NewEncoder(w).Encode(overviews)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/songs", handleListSongs).Methods("GET")
	router.PathPrefix("/songs/").Handler(
		http.StripPrefix("/songs/", http.FileServer(http.Dir(constants.GetOutputDir()))))

	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":8080", handler))
}
