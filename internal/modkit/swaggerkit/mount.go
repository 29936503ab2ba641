// Package swaggerkit serves the registered OpenAPI document and a Swagger UI over it
package swaggerkit

import (
	"net/http"
	"path"

	phttp "cubewars/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Site places one swag instance on the router
type Site struct {
	Instance string // swag registry name
	Root     string // UI root; the document is Root/doc.json
	BasePath string // advertised as the only server
}

// API is the dashboard API document under /api/docs
var API = Site{Instance: "api", Root: "/api/docs", BasePath: "/api"}

// Mount mounts API when enabled
func Mount(r phttp.Router, enabled bool) {
	if enabled {
		API.Mount(r)
	}
}

// Mount serves Root (redirecting to Root/), Root/doc.json and the UI assets
func (s Site) Mount(r phttp.Router) {
	doc := path.Join(s.Root, "doc.json")
	r.Get(s.Root, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, s.Root+"/", http.StatusPermanentRedirect)
	})
	r.Get(doc, serveDocJSON(s.Instance, s.BasePath))
	r.Handle(s.Root+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName(s.Instance),
		httpSwagger.URL(doc),
	))
}
