package router

import (
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/liveiq-reports/pkg/apiErrors"
	"github.com/vfg2006/liveiq-reports/pkg/middleware"
)

// Route liga método e caminho a um handler. Rotas Protected só respondem com
// sessão aberta; Middlewares rodam dentro da verificação de sessão.
type Route struct {
	Method      string
	Path        string
	Handler     http.Handler
	Protected   bool
	Middlewares []func(http.Handler) http.Handler
}

type ConfigRouter func(router *Router)

func WithRoutes(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

type Router struct {
	mux    *httprouter.Router
	routes []string
}

func New(configs ...ConfigRouter) *Router {
	mux := httprouter.New()
	mux.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Rota não encontrada", map[string]string{"path": r.URL.Path})
	})
	mux.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não suportado nesta rota",
			map[string]string{"method": r.Method, "allow": w.Header().Get("Allow")})
	})

	router := &Router{mux: mux}
	for _, config := range configs {
		config(router)
	}

	return router
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler

		// o primeiro middleware da lista é o mais externo
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}
		if route.Protected {
			handler = middleware.RequireSession()(handler)
		}

		r.mux.Handler(route.Method, route.Path, handler)
		r.routes = append(r.routes, route.Method+" "+route.Path)
	}
}

// Routes lista "MÉTODO caminho" de tudo que foi registrado, em ordem alfabética
func (r *Router) Routes() []string {
	out := append([]string(nil), r.routes...)
	sort.Strings(out)
	return out
}
