package scrapers

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// BrowserController drives the single headless-browser session used for
// dynamically rendered providers. The session is exclusive: exactly one
// caller at a time, which the orchestrator guarantees by serializing the
// browser lane. Do not add a second caller.
type BrowserController interface {
	Open(ctx context.Context, url string) error
	Snapshot(ctx context.Context) (string, error)
	Close(ctx context.Context) error
}

// ExecBrowser shells out to a browser-automation CLI exposing
// open/snapshot/close subcommands. Open gets a longer timeout because the
// initial page load is the slow part.
type ExecBrowser struct {
	Bin         string
	Args        []string // fixed args preceding the subcommand
	OpenTimeout time.Duration
	CmdTimeout  time.Duration
}

func NewExecBrowser(bin string, args ...string) *ExecBrowser {
	return &ExecBrowser{
		Bin:         bin,
		Args:        args,
		OpenTimeout: 30 * time.Second,
		CmdTimeout:  10 * time.Second,
	}
}

func (b *ExecBrowser) Open(ctx context.Context, url string) error {
	_, err := b.run(ctx, b.OpenTimeout, "open", url)
	return err
}

func (b *ExecBrowser) Snapshot(ctx context.Context) (string, error) {
	// -i includes invisible text, -c compacts the accessibility tree.
	return b.run(ctx, b.CmdTimeout, "snapshot", "-i", "-c")
}

func (b *ExecBrowser) Close(ctx context.Context) error {
	_, err := b.run(ctx, b.CmdTimeout, "close")
	return err
}

func (b *ExecBrowser) run(ctx context.Context, timeout time.Duration, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, b.Bin, append(append([]string{}, b.Args...), args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s %s: %w: %s", b.Bin, args[0], err, msg)
		}
		return "", fmt.Errorf("%s %s: %w", b.Bin, args[0], err)
	}
	return stdout.String(), nil
}
