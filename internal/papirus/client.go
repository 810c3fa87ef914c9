// Package papirus runs the papirus-folders tool: it asks which folder color
// is active and applies a new one with the terminal handed over to the tool.
package papirus

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"foldercolor/internal/config"
	"foldercolor/internal/errors"
	"foldercolor/internal/log"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTool is the executable looked up on PATH when none is configured.
const DefaultTool = "papirus-folders"

// Client runs papirus-folders for one icon theme.
type Client struct {
	Tool  string
	Theme string
	Sudo  bool
	Log   *log.Logger

	// Where the tool's output is echoed during an apply. Nil means the
	// process stdout and stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a client from the tool section of cfg.
func New(cfg *config.Config) *Client {
	c := &Client{Tool: DefaultTool, Log: log.Default()}
	if cfg != nil {
		if cfg.Tool.Path != "" {
			c.Tool = cfg.Tool.Path
		}
		c.Theme = cfg.Tool.Theme
		c.Sudo = cfg.Tool.Sudo
	}
	return c
}

func (c *Client) logger() *log.Logger {
	if c.Log == nil {
		return log.Default()
	}
	return c.Log
}

// Current reports the active folder color by running "<tool> -l".
// A usable answer in stdout is returned even if the tool exits non-zero.
func (c *Client) Current(ctx context.Context) (string, error) {
	args := append([]string{"-l"}, c.themeArgs()...)
	cmd := exec.CommandContext(ctx, c.Tool, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.logger().Debugf("running %s", strings.Join(cmd.Args, " "))
	runErr := cmd.Run()

	if name, ok := ParseActive(stdout.String()); ok {
		if runErr != nil {
			c.logger().Warnf("%s -l exited with %v, using reported color %q", c.Tool, runErr, name)
		}
		return name, nil
	}
	if runErr != nil {
		return "", c.Classify(runErr, stderr.String()+stdout.String())
	}
	return "", errors.ErrNoActiveColor
}

// ParseActive finds the active color in "-l" output: the first line that,
// once trimmed, starts with '>'.
func ParseActive(output string) (string, bool) {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, ">") {
			name := strings.TrimSpace(strings.TrimPrefix(line, ">"))
			return name, name != ""
		}
	}
	return "", false
}

// Command builds the apply invocation for name.
func (c *Client) Command(name string) *exec.Cmd {
	args := append([]string{"-C", name}, c.themeArgs()...)
	if c.Sudo {
		return exec.Command("sudo", append([]string{c.Tool}, args...)...)
	}
	return exec.Command(c.Tool, args...)
}

func (c *Client) themeArgs() []string {
	if c.Theme == "" {
		return nil
	}
	return []string{"--theme", c.Theme}
}

// Apply suspends the program, runs the apply command in the foreground and
// reports the classified result through done.
func (c *Client) Apply(name string, done func(error) tea.Msg) tea.Cmd {
	if err := c.checkTool(); err != nil {
		return func() tea.Msg { return done(err) }
	}
	cmd, finish := c.applyCmd(name)
	c.logger().Debugf("running %s", strings.Join(cmd.Args, " "))
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return done(finish(err))
	})
}

// checkTool looks the tool up before a sudo run, where a missing tool would
// otherwise surface as sudo's own exit status.
func (c *Client) checkTool() error {
	if !c.Sudo {
		return nil
	}
	if _, err := exec.LookPath(c.Tool); err != nil {
		return c.Classify(err, "")
	}
	return nil
}

// applyCmd wires the tool's output to the terminal and to capture buffers.
// finish turns the run error into the error shown to the user.
func (c *Client) applyCmd(name string) (*exec.Cmd, func(error) error) {
	cmd := c.Command(name)

	stdoutW, stderrW := c.Stdout, c.Stderr
	if stdoutW == nil {
		stdoutW = os.Stdout
	}
	if stderrW == nil {
		stderrW = os.Stderr
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdoutW, &stdout)
	cmd.Stderr = io.MultiWriter(stderrW, &stderr)

	return cmd, func(err error) error {
		return c.Classify(err, stderr.String()+stdout.String())
	}
}

// Classify maps a run error to a tool error. Launch failures become
// ToolNotFound, non-zero exits become ToolFailed carrying output.
func (c *Client) Classify(err error, output string) error {
	if err == nil {
		return nil
	}
	output = strings.TrimSpace(output)

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		msg := fmt.Sprintf("exited with status %d", exitErr.ExitCode())
		return errors.NewToolError(msg, c.Tool, output, errors.ToolFailed, err)
	}

	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrPermission) || errors.Is(err, syscall.ENOEXEC) {
		return errors.NewToolError("executable not found or not runnable", c.Tool, "", errors.ToolNotFound, err)
	}

	return errors.NewToolError(err.Error(), c.Tool, output, errors.Unknown, err)
}
