// Package route classifies incoming requests. Classification depends only on
// the method and the URL path, so it is evaluated before any I/O.
package route

import (
	"net/http"
	"strings"
)

const (
	AdminPath     = "/admin"
	APIPrefix     = "/api"
	APIAddPath    = "/api/add"
	APIDeletePath = "/api/delete"
	APIListPath   = "/api/list"
)

// Class is the kind of a request.
type Class int

const (
	Unmatched Class = iota
	Redirect
	AdminUI
	APIAdd
	APIDelete
	APIList
)

func (c Class) String() string {
	switch c {
	case Redirect:
		return "redirect"
	case AdminUI:
		return "admin_ui"
	case APIAdd:
		return "api_add"
	case APIDelete:
		return "api_delete"
	case APIList:
		return "api_list"
	default:
		return "unmatched"
	}
}

// RequiresAuth reports whether requests of this class must pass the auth gate.
func (c Class) RequiresAuth() bool {
	return c != Redirect
}

// IsPublic reports whether path is served without credentials: anything
// other than /admin and the /api prefix.
func IsPublic(path string) bool {
	return path != AdminPath && !strings.HasPrefix(path, APIPrefix)
}

// Classify maps a request to exactly one class.
func Classify(method, path string) Class {
	if IsPublic(path) {
		return Redirect
	}

	switch {
	case path == AdminPath:
		return AdminUI
	case path == APIAddPath && method == http.MethodPost:
		return APIAdd
	case path == APIDeletePath && method == http.MethodPost:
		return APIDelete
	case path == APIListPath:
		return APIList
	}

	return Unmatched
}
