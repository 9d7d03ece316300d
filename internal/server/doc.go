// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP import API until SIGINT, SIGTERM or SIGQUIT
// and then shuts it down gracefully.
package server
