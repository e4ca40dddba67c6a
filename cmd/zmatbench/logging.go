// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
)

// newLogger builds a text slog.Logger writing to w at the named level
// (debug, info, warn, error; case-insensitive, offsets like "info+2" allowed).
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
