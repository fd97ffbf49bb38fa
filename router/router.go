// Package router is a thin veneer over julienschmidt/httprouter with
// method-named registration helpers.
package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type Router struct {
	*httprouter.Router
}

func New() *Router {
	return &Router{httprouter.New()}
}

func (r *Router) Get(path string, handler http.Handler) {
	r.Handler(http.MethodGet, path, handler)
}

func (r *Router) Post(path string, handler http.Handler) {
	r.Handler(http.MethodPost, path, handler)
}
