package command

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/term"
)

// newLogger writes human-readable text when w is a terminal and JSON
// otherwise.
func newLogger(w *os.File, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(w.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// openPool connects to dsn and verifies the database is reachable.
func openPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	// New() does not open connections immediately; the ping does.
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return pool, nil
}

// prompt reads one line from stdin. On a terminal the input is not echoed.
func prompt(stdin *os.File, stderr io.Writer, text string) (string, error) {
	fd := int(stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	if _, err := io.WriteString(stderr, text); err != nil {
		return "", err
	}
	b, err := term.ReadPassword(fd)
	_, _ = io.WriteString(stderr, "\n")
	return string(b), err
}
