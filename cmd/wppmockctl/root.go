package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/matheus3301/wppmock/internal/session"
	"github.com/matheus3301/wppmock/internal/tui/client"
	"github.com/spf13/cobra"
)

// cli carries the global flags shared by every subcommand.
type cli struct {
	out         io.Writer
	sessionFlag string
	jsonOut     bool
	timeout     time.Duration
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out}

	root := &cobra.Command{
		Use:           "wppmockctl",
		Short:         "Control a running wppmock daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&c.sessionFlag, "session", "", "session name (overrides WPPMOCK_SESSION and config default)")
	root.PersistentFlags().BoolVar(&c.jsonOut, "json", false, "output in JSON format")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 10*time.Second, "per-call timeout")

	root.AddCommand(
		c.statusCmd(),
		c.sessionsCmd(),
		c.chatsCmd(),
		c.tabCmd(),
		c.searchCmd(),
		c.readAllCmd(),
		c.openCmd(),
		c.closeCmd(),
		c.showCmd(),
		c.sendCmd(),
		c.stickerCmd(),
		c.imageCmd(),
		c.watchCmd(),
	)
	return root
}

func (c *cli) sessionName() (string, error) {
	name := session.Resolve(c.sessionFlag)
	if err := session.ValidateName(name); err != nil {
		return "", err
	}
	return name, nil
}

// call dials the session daemon and runs fn with a timeout-bound context.
func (c *cli) call(cmd *cobra.Command, fn func(ctx context.Context, cl *client.Client) error) error {
	name, err := c.sessionName()
	if err != nil {
		return err
	}
	cl, err := client.New(session.SocketPath(name))
	if err != nil {
		return fmt.Errorf("cannot connect to daemon for session %q: %w", name, err)
	}
	defer func() { _ = cl.Close() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), c.timeout)
	defer cancel()
	return fn(ctx, cl)
}
