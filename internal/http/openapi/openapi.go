// Package openapi embeds the API description served at /openapi.yaml.
package openapi

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"net/http"
)

//go:embed openapi.yaml
var YAML []byte

var etag = func() string {
	sum := sha256.Sum256(YAML)
	return `"` + hex.EncodeToString(sum[:8]) + `"`
}()

// Handler serves the document with a content-hash ETag so clients can
// revalidate with If-None-Match.
func Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ETag", etag)
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(YAML)
	})
}
