package repo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"unicode/utf8"
)

// ErrRemoteUnavailable is returned when the origin remote URL cannot be read.
var ErrRemoteUnavailable = errors.New("origin remote unavailable")

// RemoteError describes a failed attempt to read the origin remote.
type RemoteError struct {
	// Root is the repository the lookup ran in.
	Root string
	// Stderr is git's error output, if any.
	Stderr string
	// Err is the underlying cause.
	Err error
}

func (e *RemoteError) Error() string {
	msg := fmt.Sprintf("reading origin remote of %s: %v", e.Root, e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}

	return msg
}

// Is reports whether target is ErrRemoteUnavailable.
func (e *RemoteError) Is(target error) bool {
	return target == ErrRemoteUnavailable
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

var errInvalidOutput = errors.New("remote URL is not valid UTF-8")

// Resolver reads remote configuration by running git.
type Resolver struct {
	// GitBinary is the git executable; empty means "git" from PATH.
	GitBinary string
	logger    *slog.Logger
}

// NewResolver creates a Resolver that runs git from PATH.
func NewResolver(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}

	return &Resolver{GitBinary: "git", logger: logger}
}

// RemoteURL returns the configured URL of the origin remote of the repository at root.
func (r *Resolver) RemoteURL(ctx context.Context, root string) (string, error) {
	bin := r.GitBinary
	if bin == "" {
		bin = "git"
	}

	var stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, bin, "-C", root, "remote", "get-url", "origin")
	cmd.Stderr = &stderr

	r.log().Debug("reading origin remote", "root", root)

	out, err := cmd.Output()
	if err != nil {
		return "", &RemoteError{Root: root, Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}

	if !utf8.Valid(out) {
		return "", &RemoteError{Root: root, Err: errInvalidOutput}
	}

	return strings.TrimSpace(string(out)), nil
}

// RemoteName returns the repository name derived from the origin remote URL.
// The name may be empty when the URL ends in a slash.
func (r *Resolver) RemoteName(ctx context.Context, root string) (string, error) {
	url, err := r.RemoteURL(ctx, root)
	if err != nil {
		return "", err
	}

	name := ParseRepoName(url)
	if name == "" {
		r.log().Warn("origin remote URL has no repository name", "url", url)
	}

	return name, nil
}

func (r *Resolver) log() *slog.Logger {
	if r.logger == nil {
		return slog.Default()
	}

	return r.logger
}

// RemoteName returns the origin repository name using git from PATH.
func RemoteName(ctx context.Context, root string) (string, error) {
	return NewResolver(nil).RemoteName(ctx, root)
}

// ParseRepoName extracts the repository name from a remote URL: the text after
// the last "/" with any ".git" suffix removed. For example,
// "git@bitbucket.org:acme/myrepo.git" and "https://host/acme/myrepo" both give
// "myrepo". A URL ending in "/" gives "".
func ParseRepoName(url string) string {
	url = strings.TrimSpace(url)
	name := url[strings.LastIndex(url, "/")+1:]

	return strings.TrimSuffix(name, ".git")
}
