package oracle

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// invokes an external command-line process: the prompt is written to
// stdin and stdout is returned as the reply
type CommandOracle struct {
	command string
	args    []string
}

func NewCommandOracle(command string, args ...string) (*CommandOracle, error) {
	if strings.TrimSpace(command) == "" {
		return nil, fmt.Errorf("oracle command is required")
	}
	return &CommandOracle{command: command, args: args}, nil
}

func (o *CommandOracle) Invoke(ctx context.Context, prompt string) (string, error) {
	cmd := exec.CommandContext(ctx, o.command, o.args...)
	cmd.Stdin = strings.NewReader(prompt)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrOracle, o.command, ctx.Err())
		}
		diag := strings.TrimSpace(stderr.String())
		if diag == "" {
			diag = err.Error()
		}
		return "", fmt.Errorf("%w: %s: %s", ErrOracle, o.command, diag)
	}

	return stdout.String(), nil
}
