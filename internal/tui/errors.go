// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

// Substrings of transport-level failures that mean the server simply cannot
// be reached rather than a real API error.
var unreachableMarkers = []string{
	"connection refused",
	"dial tcp",
	"no such host",
	"network is unreachable",
	"i/o timeout",
	"context deadline exceeded",
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	for _, marker := range unreachableMarkers {
		if strings.Contains(s, marker) {
			return "Отсутствует сеть или Сервер недоступен"
		}
	}

	return err.Error()
}
