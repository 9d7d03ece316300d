// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// methodNotAllowed answers 404 for a known path called with an unregistered
// method, so probing callers cannot enumerate the import routes. It must be
// installed before sub-routers are mounted for chi to propagate it.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	http.NotFound(w, r)
}
