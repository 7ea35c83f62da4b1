package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// DefaultRemotePath is where Android keeps the critical event log.
const DefaultRemotePath = "/data/misc/critical-events/critical_event_log.pb"

// ADB pulls the log from a connected device. The zero value uses "adb" from
// PATH, any single connected device, and DefaultRemotePath.
type ADB struct {
	Path       string // adb binary; "adb" when empty
	Serial     string // device serial for -s; empty targets the default device
	RemotePath string // on-device path; DefaultRemotePath when empty
}

// Pull copies the remote log into a temp file and returns its path along
// with a cleanup func that removes it. The caller owns the file until it
// calls cleanup; cleanup is safe to call even after the pull succeeded and
// the file was already read.
func (a ADB) Pull(ctx context.Context) (string, func(), error) {
	bin := a.Path
	if bin == "" {
		bin = "adb"
	}
	remote := a.RemotePath
	if remote == "" {
		remote = DefaultRemotePath
	}

	tmp, err := os.CreateTemp("", "cevlog-*.pb")
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}
	tmp.Close()
	cleanup := func() {
		if err := os.Remove(tmp.Name()); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to clean up pulled log", "path", tmp.Name(), "error", err)
		}
	}

	args := []string{}
	if a.Serial != "" {
		args = append(args, "-s", a.Serial)
	}
	args = append(args, "pull", remote, tmp.Name())

	out, err := exec.CommandContext(ctx, bin, args...).CombinedOutput()
	if err != nil {
		cleanup()
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return "", nil, fmt.Errorf("adb pull %s: %w: %s", remote, err, msg)
		}
		return "", nil, fmt.Errorf("adb pull %s: %w", remote, err)
	}
	return tmp.Name(), cleanup, nil
}
