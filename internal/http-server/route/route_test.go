package route

import (
	"net/http"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		want   Class
	}{
		{name: "Root", method: http.MethodGet, path: "/", want: Redirect},
		{name: "Slug", method: http.MethodGet, path: "/yt", want: Redirect},
		{name: "Slug with POST", method: http.MethodPost, path: "/yt", want: Redirect},
		{name: "Admin sub path is a slug", method: http.MethodGet, path: "/admin/", want: Redirect},
		{name: "Admin prefix is a slug", method: http.MethodGet, path: "/administrator", want: Redirect},
		{name: "Nested slug", method: http.MethodGet, path: "/a/b", want: Redirect},
		{name: "Admin UI", method: http.MethodGet, path: "/admin", want: AdminUI},
		{name: "Admin UI any method", method: http.MethodPost, path: "/admin", want: AdminUI},
		{name: "Add", method: http.MethodPost, path: "/api/add", want: APIAdd},
		{name: "Add with GET", method: http.MethodGet, path: "/api/add", want: Unmatched},
		{name: "Delete", method: http.MethodPost, path: "/api/delete", want: APIDelete},
		{name: "Delete with GET", method: http.MethodGet, path: "/api/delete", want: Unmatched},
		{name: "List", method: http.MethodGet, path: "/api/list", want: APIList},
		{name: "List any method", method: http.MethodPost, path: "/api/list", want: APIList},
		{name: "API root", method: http.MethodGet, path: "/api", want: Unmatched},
		{name: "API prefix without slash", method: http.MethodGet, path: "/apix", want: Unmatched},
		{name: "Unknown API", method: http.MethodPost, path: "/api/rename", want: Unmatched},
		{name: "Trailing slash on API", method: http.MethodPost, path: "/api/add/", want: Unmatched},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Classify(tt.method, tt.path); got != tt.want {
				t.Errorf("Classify(%q, %q) = %v, want %v", tt.method, tt.path, got, tt.want)
			}
		})
	}
}

func TestRequiresAuthMatchesIsPublic(t *testing.T) {
	paths := []string{"/", "/x", "/admin", "/admin/", "/api", "/api/add", "/api/list", "/apix", "/API/add"}
	methods := []string{http.MethodGet, http.MethodPost, http.MethodDelete}

	for _, path := range paths {
		for _, method := range methods {
			class := Classify(method, path)
			if class.RequiresAuth() == IsPublic(path) {
				t.Errorf("Classify(%q, %q) = %v: RequiresAuth() = %v, IsPublic() = %v",
					method, path, class, class.RequiresAuth(), IsPublic(path))
			}
		}
	}
}

func TestClassString(t *testing.T) {
	want := map[Class]string{
		Unmatched: "unmatched",
		Redirect:  "redirect",
		AdminUI:   "admin_ui",
		APIAdd:    "api_add",
		APIDelete: "api_delete",
		APIList:   "api_list",
	}

	for class, name := range want {
		if class.String() != name {
			t.Errorf("Class(%d).String() = %q, want %q", int(class), class.String(), name)
		}
	}
}
