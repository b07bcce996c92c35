// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package logger provides a slog constructor with textual level parsing.
package logger

import (
	"fmt"
	"io"
	"log/slog"
)

// New returns a JSON slog logger writing to w at the given level. An empty
// level defaults to info.
func New(w io.Writer, levelText string) (*slog.Logger, error) {
	if levelText == "" {
		levelText = slog.LevelInfo.String()
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(levelText)); err != nil {
		return nil, fmt.Errorf("unrecognized log level %q: %w", levelText, err)
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler), nil
}
