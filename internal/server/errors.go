// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoListenAddress is returned by NewServer when the HTTP listen address
// is empty.
var errNoListenAddress = errors.New("server address is not configured")
