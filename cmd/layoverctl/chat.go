package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"layover-os/internal/concierge"
)

const switchCommand = "/airport"

func newChatCmd() *cobra.Command {
	var (
		sessionID string
		airport   string
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the concierge from the terminal",
		Long: "Starts an interactive session. Type " + switchCommand + " XXX to change airport, " +
			"quit or exit to leave.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			container, err := loadContainer()
			if err != nil {
				return err
			}
			defer container.Close(ctx)

			if airport == "" {
				airport = container.Config().Concierge.DefaultLocation
			}

			uc, err := container.ConciergeUseCase(ctx)
			if err != nil {
				return err
			}

			r := repl{uc: uc, sessionID: sessionID, airport: strings.ToUpper(airport)}
			return r.run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&sessionID, "session", "s", uuid.NewString(), "session (thread) ID to resume")
	cmd.Flags().StringVarP(&airport, "airport", "a", "", "airport code for a new session")
	return cmd
}

type repl struct {
	uc        concierge.UseCase
	sessionID string
	airport   string
}

func (r *repl) run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "LayoverOS session %s at %s\n", r.sessionID, r.airport)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "quit" || line == "exit":
			return nil
		case strings.HasPrefix(line, switchCommand):
			r.switchAirport(ctx, out, strings.TrimSpace(strings.TrimPrefix(line, switchCommand)))
			continue
		}

		output, err := r.uc.Chat(ctx, concierge.ChatInput{
			SessionID:       r.sessionID,
			Text:            line,
			InitialLocation: r.airport,
		})
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}

		r.airport = output.Session.LocationContext
		fmt.Fprintf(out, "%s\n[%s @ %s]\n", output.Reply, output.Intent, r.airport)
	}
}

func (r *repl) switchAirport(ctx context.Context, out io.Writer, code string) {
	state, err := r.uc.SwitchLocation(ctx, concierge.SwitchLocationInput{SessionID: r.sessionID, Code: code})
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	r.airport = state.LocationContext
	fmt.Fprintf(out, "Now at %s\n", r.airport)
}
