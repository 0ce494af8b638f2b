package audio

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// Player plays a single audio file to completion. Play blocks until playback
// finishes, fails or the context is cancelled. Stop silences any active
// playback and is idempotent when nothing is playing.
type Player interface {
	Play(ctx context.Context, path string) error
	Stop()
}

// ExecPlayer shells out to a host audio player binary. mpg123 is the default;
// any player that takes the file path as its last argument works.
type ExecPlayer struct {
	command string
	args    []string

	mu     sync.Mutex
	active *exec.Cmd
}

// NewExecPlayer builds a player around the given binary. An empty command
// selects mpg123 in quiet mode.
func NewExecPlayer(command string, args ...string) *ExecPlayer {
	if command == "" {
		command = "mpg123"
		args = []string{"-q"}
	}
	return &ExecPlayer{command: command, args: args}
}

// Play runs the player process and waits for it to exit. Cancelling ctx kills
// the process.
func (p *ExecPlayer) Play(ctx context.Context, path string) error {
	args := append(append([]string{}, p.args...), path)
	cmd := exec.CommandContext(ctx, p.command, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	p.mu.Lock()
	p.active = cmd
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		p.active = nil
		p.mu.Unlock()
	}()

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%s failed: %v (%s)", p.command, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// Stop kills the active player process, if any.
func (p *ExecPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active != nil && p.active.Process != nil {
		_ = p.active.Process.Kill()
	}
}
