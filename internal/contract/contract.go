// Package contract is the single source of truth for the HTTP API surface:
// every operation's method, path template, auth requirement, and the status
// codes it may answer with. Route registration and tests both consume it.
package contract

import (
	"fmt"
	"net/http"
	"strings"
)

type Operation struct {
	Name    string
	Method  string
	Path    string
	Guarded bool

	// Success is the status of the happy path; Statuses lists every code
	// the operation is allowed to answer with.
	Success  int
	Statuses []int
}

var (
	AuthLogin = Operation{
		Name: "auth.login", Method: http.MethodPost, Path: "/api/auth/login",
		Success: http.StatusOK, Statuses: []int{200, 400, 401, 500},
	}
	AuthLogout = Operation{
		Name: "auth.logout", Method: http.MethodPost, Path: "/api/auth/logout",
		Success: http.StatusOK, Statuses: []int{200},
	}

	ClientsList = Operation{
		Name: "clients.list", Method: http.MethodGet, Path: "/api/clients", Guarded: true,
		Success: http.StatusOK, Statuses: []int{200, 401, 500},
	}
	ClientsGet = Operation{
		Name: "clients.get", Method: http.MethodGet, Path: "/api/clients/:id", Guarded: true,
		Success: http.StatusOK, Statuses: []int{200, 401, 404, 500},
	}
	ClientsCreate = Operation{
		Name: "clients.create", Method: http.MethodPost, Path: "/api/clients", Guarded: true,
		Success: http.StatusCreated, Statuses: []int{201, 400, 401, 500},
	}
	ClientsUpdate = Operation{
		Name: "clients.update", Method: http.MethodPut, Path: "/api/clients/:id", Guarded: true,
		Success: http.StatusOK, Statuses: []int{200, 400, 401, 404, 500},
	}
	ClientsDelete = Operation{
		Name: "clients.delete", Method: http.MethodDelete, Path: "/api/clients/:id", Guarded: true,
		Success: http.StatusNoContent, Statuses: []int{204, 401, 500},
	}

	DevelopersList = Operation{
		Name: "developers.list", Method: http.MethodGet, Path: "/api/developers", Guarded: true,
		Success: http.StatusOK, Statuses: []int{200, 401, 500},
	}
	DevelopersGet = Operation{
		Name: "developers.get", Method: http.MethodGet, Path: "/api/developers/:id", Guarded: true,
		Success: http.StatusOK, Statuses: []int{200, 401, 404, 500},
	}
	DevelopersCreate = Operation{
		Name: "developers.create", Method: http.MethodPost, Path: "/api/developers", Guarded: true,
		Success: http.StatusCreated, Statuses: []int{201, 400, 401, 500},
	}
	DevelopersDelete = Operation{
		Name: "developers.delete", Method: http.MethodDelete, Path: "/api/developers/:id", Guarded: true,
		Success: http.StatusNoContent, Statuses: []int{204, 401, 500},
	}
)

func Operations() []Operation {
	return []Operation{
		AuthLogin, AuthLogout,
		ClientsList, ClientsGet, ClientsCreate, ClientsUpdate, ClientsDelete,
		DevelopersList, DevelopersGet, DevelopersCreate, DevelopersDelete,
	}
}

// BuildURL substitutes :param placeholders by plain string replacement.
// Values are stringified as-is; no escaping is applied.
func BuildURL(path string, params map[string]any) string {
	url := path
	for key, value := range params {
		placeholder := ":" + key
		if strings.Contains(url, placeholder) {
			url = strings.Replace(url, placeholder, fmt.Sprint(value), 1)
		}
	}
	return url
}
