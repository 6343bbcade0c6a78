package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// pathID reads the {id} route variable
func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

// queryInt reads an optional integer query parameter; missing or malformed values yield 0
func queryInt(r *http.Request, name string) int {
	v, _ := strconv.Atoi(r.URL.Query().Get(name))
	return v
}

// queryIntPtr reads an optional integer query parameter, reporting malformed input
func queryIntPtr(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
