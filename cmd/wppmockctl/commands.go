package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	wppmockv1 "github.com/matheus3301/wppmock/gen/wppmock/v1"
	"github.com/matheus3301/wppmock/internal/api"
	"github.com/matheus3301/wppmock/internal/session"
	"github.com/matheus3301/wppmock/internal/tui/client"
	"github.com/matheus3301/wppmock/internal/tui/model"
	"github.com/spf13/cobra"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

func (c *cli) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show daemon status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.call(cmd, func(ctx context.Context, cl *client.Client) error {
				resp, err := cl.Session.GetStatus(ctx, &wppmockv1.GetStatusRequest{})
				if err != nil {
					return err
				}
				return c.print(resp, func(w io.Writer) { printStatus(w, resp) })
			})
		},
	}
}

func (c *cli) sessionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List known sessions and whether their daemon runs",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			list, err := session.List()
			if err != nil {
				return err
			}
			return c.print(list, func(w io.Writer) {
				if len(list) == 0 {
					fmt.Fprintln(w, "No sessions found.")
					return
				}
				for _, s := range list {
					running := "stopped"
					if s.Running {
						running = fmt.Sprintf("running, pid %d", s.PID)
					}
					fmt.Fprintf(w, "%-20s %s (%s)\n", s.Name, s.Path, running)
				}
			})
		},
	}
}

func (c *cli) chatsCmd() *cobra.Command {
	var tab, query string
	cmd := &cobra.Command{
		Use:   "chats",
		Short: "Print the chat list (current tab, or peek at another tab and query)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.call(cmd, func(ctx context.Context, cl *client.Client) error {
				return c.printList(cl.Chat.ListChats(ctx, &wppmockv1.ListChatsRequest{Tab: tab, Query: query}))
			})
		},
	}
	cmd.Flags().StringVar(&tab, "tab", "", "tab to list without switching (chats, unread, favorites, groups, status, calls)")
	cmd.Flags().StringVar(&query, "query", "", "filter by name or last message without changing the search")
	return cmd
}

func (c *cli) tabCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tab <name>",
		Short: "Switch the current tab",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, cl *client.Client) error {
				return c.printList(cl.Chat.SwitchTab(ctx, &wppmockv1.SwitchTabRequest{Tab: args[0]}))
			})
		},
	}
}

func (c *cli) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Set the chat list query; no query clears it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, cl *client.Client) error {
				return c.printList(cl.Chat.Search(ctx, &wppmockv1.SearchRequest{Query: strings.Join(args, " ")}))
			})
		},
	}
}

func (c *cli) readAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read-all",
		Short: "Mark every chat read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.call(cmd, func(ctx context.Context, cl *client.Client) error {
				return c.printList(cl.Chat.MarkAllRead(ctx, &wppmockv1.MarkAllReadRequest{}))
			})
		},
	}
}

func (c *cli) openCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <chat-id>",
		Short: "Open a conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid chat id %q", args[0])
			}
			return c.call(cmd, func(ctx context.Context, cl *client.Client) error {
				return c.printConversation(cl.Conversation.OpenChat(ctx, &wppmockv1.OpenChatRequest{ChatId: id}))
			})
		},
	}
}

func (c *cli) closeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close",
		Short: "Close the open conversation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.call(cmd, func(ctx context.Context, cl *client.Client) error {
				return c.printConversation(cl.Conversation.CloseChat(ctx, &wppmockv1.CloseChatRequest{}))
			})
		},
	}
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the open conversation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.call(cmd, func(ctx context.Context, cl *client.Client) error {
				return c.printConversation(cl.Conversation.GetConversation(ctx, &wppmockv1.GetConversationRequest{}))
			})
		},
	}
}

func (c *cli) sendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <text>...",
		Short: "Send a text message to the open conversation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, cl *client.Client) error {
				return c.printSent(cl.Conversation.SendText(ctx, &wppmockv1.SendTextRequest{Text: strings.Join(args, " ")}))
			})
		},
	}
}

func (c *cli) stickerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sticker <glyph>",
		Short: "Send a sticker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, cl *client.Client) error {
				return c.printSent(cl.Conversation.SendSticker(ctx, &wppmockv1.SendStickerRequest{Glyph: args[0]}))
			})
		},
	}
}

func (c *cli) imageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "image <path>",
		Short: "Send a picture from disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := model.LoadImage(args[0])
			if err != nil {
				return err
			}
			return c.call(cmd, func(ctx context.Context, cl *client.Client) error {
				return c.printSent(cl.Conversation.SendImage(ctx, &wppmockv1.SendImageRequest{Mime: img.MIME, Data: img.Data}))
			})
		},
	}
}

func (c *cli) watchCmd() *cobra.Command {
	var namespace string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream daemon events until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, err := c.sessionName()
			if err != nil {
				return err
			}
			cl, err := client.New(session.SocketPath(name))
			if err != nil {
				return fmt.Errorf("cannot connect to daemon for session %q: %w", name, err)
			}
			defer func() { _ = cl.Close() }()

			ctx := cmd.Context()
			stream, err := cl.Conversation.WatchEvents(ctx, &wppmockv1.WatchEventsRequest{Namespace: namespace})
			if err != nil {
				return err
			}
			for {
				env, err := stream.Recv()
				if errors.Is(err, io.EOF) || ctx.Err() != nil || grpcstatus.Code(err) == codes.Canceled {
					return nil
				}
				if err != nil {
					return err
				}
				payload, err := eventPayload(env)
				if err != nil {
					return err
				}
				line := eventJSON{
					EventID:          env.EventId,
					Session:          env.Session,
					Kind:             env.Kind,
					OccurredAtUnixMs: env.OccurredAtUnixMs,
					Payload:          payload,
				}
				if err := c.print(line, func(w io.Writer) { printEvent(w, env, payload) }); err != nil {
					return err
				}
			}
		},
	}
	cmd.Flags().StringVar(&namespace, "namespace", "", `kind prefix to stream, e.g. "conversation." (default everything)`)
	return cmd
}

func (c *cli) printList(list *wppmockv1.ChatList, err error) error {
	if err != nil {
		return err
	}
	return c.print(list, func(w io.Writer) {
		view := api.ChatListFromProto(list)
		printChatList(w, &view)
	})
}

func (c *cli) printConversation(conv *wppmockv1.Conversation, err error) error {
	if err != nil {
		return err
	}
	return c.print(conv, func(w io.Writer) {
		snap := api.ConversationFromProto(conv)
		printConversation(w, &snap)
	})
}

func (c *cli) printSent(resp *wppmockv1.SendResponse, err error) error {
	if err != nil {
		return err
	}
	return c.print(resp, func(w io.Writer) {
		e := resp.GetEntry()
		fmt.Fprintf(w, "sent %s %s at %s\n", e.GetKind(), e.GetId(), e.GetTime())
	})
}

// print writes v as JSON with --json, otherwise runs text. Wire messages
// are encoded with protojson.
func (c *cli) print(v any, text func(io.Writer)) error {
	if !c.jsonOut {
		text(c.out)
		return nil
	}
	if m, ok := v.(proto.Message); ok {
		return outputProto(c.out, m)
	}
	return outputJSON(c.out, v)
}
