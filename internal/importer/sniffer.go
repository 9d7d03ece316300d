// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package importer

import (
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/beevik/etree"
)

type mediaKind int

const (
	mediaCSV mediaKind = iota + 1
	mediaXML
)

// acceptedMediaTypes is the allow-list of declared content types. Legacy
// office types are accepted here but carry no generator marker, so they are
// rejected at generator detection.
var acceptedMediaTypes = map[string]mediaKind{
	"text/plain":                mediaCSV,
	"text/csv":                  mediaCSV,
	"text/x-csv":                mediaCSV,
	"text/xml":                  mediaXML,
	"application/xml":           mediaXML,
	"application/vnd.ms-excel":  mediaXML,
	"application/msexcel":       mediaXML,
	"application/x-msexcel":     mediaXML,
	"application/vnd.ms-office": mediaXML,
	"application/vnd.oasis.opendocument.spreadsheet": mediaXML,
}

// Generator marker values, lowercased.
const (
	generatorNative  = "syspass"
	generatorKeePass = "keepass"
)

// Sniff selects the import strategy for a file from its declared content
// type and, for XML, from the generator marker of the document. The body is
// rewound before returning so the strategy reads it from the start.
func Sniff(file FileHandle) (Strategy, error) {
	mediaType, _, err := mime.ParseMediaType(file.ContentType)
	if err != nil {
		return nil, fmt.Errorf("%w: content type %q: %w", ErrUnsupportedFormat, file.ContentType, err)
	}

	kind, ok := acceptedMediaTypes[strings.ToLower(mediaType)]
	if !ok {
		return nil, fmt.Errorf("%w: content type %q is not accepted", ErrUnsupportedFormat, mediaType)
	}

	if kind == mediaCSV {
		if _, err = file.Body.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("rewind %s: %w", file.Name, err)
		}
		return CSVStrategy{Body: file.Body}, nil
	}

	doc := etree.NewDocument()
	if _, err = doc.ReadFrom(file.Body); err != nil {
		return nil, fmt.Errorf("%w: unable to guess the originating application: %w", ErrUnsupportedFormat, err)
	}
	if _, err = file.Body.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind %s: %w", file.Name, err)
	}

	marker := doc.FindElement("//Generator")
	if marker == nil {
		return nil, fmt.Errorf("%w: unable to guess the originating application", ErrUnsupportedFormat)
	}

	switch strings.ToLower(strings.TrimSpace(marker.Text())) {
	case generatorNative:
		return NativeXMLStrategy{Doc: doc}, nil
	case generatorKeePass:
		return ForeignXMLStrategy{Doc: doc}, nil
	default:
		return nil, fmt.Errorf("%w: unable to guess the originating application", ErrUnsupportedFormat)
	}
}
