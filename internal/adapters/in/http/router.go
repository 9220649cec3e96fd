// Package http exposes the application over a hand-rolled HTTP routing
// engine. Routes are compiled into slash-split segment lists and matched
// linearly in registration order; parameter segments start with ':' and bind
// URL-decoded values. No routing library sits underneath, the engine is an
// http.Handler hosted by the standard net/http server.
package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// maxBodyBytes caps JSON request bodies at 1 MB.
const maxBodyBytes = 1 << 20

// Params holds the path parameters captured during route matching,
// keyed by the name after the ':' marker.
type Params map[string]string

// Request bundles the inbound request with the bindings the router produced:
// captured path parameters and, for body-carrying methods, the raw JSON body
// already checked for size and syntax.
type Request struct {
	*http.Request
	Params Params
	Body   []byte
}

// Bind unmarshals the request body into v. An empty body leaves v untouched.
func (r *Request) Bind(v any) error {
	if len(r.Body) == 0 {
		return nil
	}
	return json.Unmarshal(r.Body, v)
}

// HandlerFunc handles a matched request.
type HandlerFunc func(w http.ResponseWriter, r *Request)

type segment struct {
	literal string
	param   string
}

type route struct {
	method   string
	segments []segment
	handler  HandlerFunc
}

// Router is a linear route table over slash-split path segments. Matching is
// case-sensitive on literals, ignores a trailing slash and resolves pattern
// overlaps by registration order, so more specific routes must be registered
// before parameterized ones ("/orders/summary" before "/orders/:id").
type Router struct {
	routes []route
	logger *slog.Logger
}

// NewRouter creates an empty route table.
func NewRouter(logger *slog.Logger) *Router {
	return &Router{
		logger: logger.With("component", "router"),
	}
}

// Handle registers a handler for the method and path pattern.
func (rt *Router) Handle(method, pattern string, handler HandlerFunc) {
	rt.routes = append(rt.routes, route{
		method:   method,
		segments: compilePattern(pattern),
		handler:  handler,
	})
}

func compilePattern(pattern string) []segment {
	parts := splitPath(pattern)
	segments := make([]segment, len(parts))
	for i, part := range parts {
		if strings.HasPrefix(part, ":") {
			segments[i] = segment{param: part[1:]}
			continue
		}
		segments[i] = segment{literal: part}
	}
	return segments
}

// splitPath splits a path into segments, ignoring the leading and any
// trailing slash. "/" yields zero segments.
func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// match returns the first registered route whose method and segments match,
// binding captured parameters. Matching never modifies the route table, so
// concurrent requests dispatch in parallel.
func (rt *Router) match(method, path string) (HandlerFunc, Params, bool) {
	parts := splitPath(path)

	for _, candidate := range rt.routes {
		if candidate.method != method || len(candidate.segments) != len(parts) {
			continue
		}

		params := Params{}
		matched := true
		for i, seg := range candidate.segments {
			if seg.param != "" {
				decoded, err := url.PathUnescape(parts[i])
				if err != nil {
					decoded = parts[i]
				}
				params[seg.param] = decoded
				continue
			}
			if seg.literal != parts[i] {
				matched = false
				break
			}
		}

		if matched {
			return candidate.handler, params, true
		}
	}

	return nil, nil, false
}

// ServeHTTP dispatches the request: CORS preflight, route match, body
// parsing for body-carrying methods, then the handler under panic recovery.
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeCORSHeaders(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	// Match on the escaped path so encoded characters survive until the
	// per-segment decode, e.g. an encoded slash inside a parameter.
	handler, params, ok := rt.match(r.Method, r.URL.EscapedPath())
	if !ok {
		writeError(w, http.StatusNotFound, "route not found")
		return
	}

	req := &Request{Request: r, Params: params}

	if hasBody(r.Method) {
		body, err := readJSONBody(w, r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		req.Body = body
	}

	defer func() {
		if rec := recover(); rec != nil {
			rt.logger.Error("handler panicked",
				"method", r.Method,
				"path", r.URL.Path,
				"panic", rec,
			)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
	}()

	handler(w, req)
}

func hasBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

// readJSONBody reads at most maxBodyBytes and verifies the payload is valid
// JSON. An empty body is allowed; routes requiring fields reject it later.
func readJSONBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errors.New("request body exceeds 1 MB limit")
		}
		return nil, errors.New("failed to read request body")
	}

	if len(body) > 0 && !json.Valid(body) {
		return nil, errors.New("invalid JSON in request body")
	}

	return body, nil
}

func writeCORSHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
}
