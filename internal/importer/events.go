// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package importer

import (
	"context"
	"sort"

	"github.com/MKhiriev/go-vault-import/internal/logger"
)

// Event names emitted during a run.
const (
	EventRunStarted      = "import.started"
	EventRunFinished     = "import.finished"
	EventFormatDetected  = "import.format"
	EventRecordImported  = "import.record"
	EventRecordSkipped   = "import.skipped"
	EventWarning         = "import.warning"
	EventDirectoryFound  = "directory.found"
	EventDirectorySynced = "directory.synced"
	EventDirectoryError  = "directory.error"
)

// EventLevel tells a [Notifier] which channel an event belongs to.
type EventLevel int

const (
	LevelProgress EventLevel = iota
	LevelWarning
	LevelError
)

// Event is a single notification of a run.
type Event struct {
	Name    string
	Level   EventLevel
	Details map[string]any
}

// LogNotifier writes events to the run logger found in the context.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(ctx context.Context, event Event) {
	log := logger.FromContext(ctx)

	e := log.Info()
	switch event.Level {
	case LevelWarning:
		e = log.Warn()
	case LevelError:
		e = log.Error()
	}

	keys := make([]string, 0, len(event.Details))
	for k := range event.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		e = e.Interface(k, event.Details[k])
	}

	e.Str("event", event.Name).Msg("import event")
}

// NopNotifier discards every event.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, Event) {}
