package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	wppmockv1 "github.com/matheus3301/wppmock/gen/wppmock/v1"
	"github.com/matheus3301/wppmock/internal/api"
	"github.com/matheus3301/wppmock/internal/chat"
	"github.com/matheus3301/wppmock/internal/conversation"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// outputProto writes a wire message as indented JSON with proto field names.
func outputProto(w io.Writer, m proto.Message) error {
	data, err := protojson.MarshalOptions{
		Multiline:       true,
		Indent:          "  ",
		UseProtoNames:   true,
		EmitUnpopulated: true,
	}.Marshal(m)
	if err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printStatus(w io.Writer, resp *wppmockv1.GetStatusResponse) {
	transcripts := "session only"
	if resp.PersistTranscripts {
		transcripts = "persisted"
	}
	fmt.Fprintf(w, "Session:     %s\n", resp.Session)
	fmt.Fprintf(w, "Status:      %s\n", resp.Status)
	fmt.Fprintf(w, "Uptime:      %s\n", (time.Duration(resp.UptimeMs) * time.Millisecond).Round(time.Second))
	fmt.Fprintf(w, "Chats:       %d\n", resp.ChatCount)
	fmt.Fprintf(w, "Entries:     %d (%s)\n", resp.EntryCount, transcripts)
	if resp.OpenChatId != 0 {
		fmt.Fprintf(w, "Open chat:   %d\n", resp.OpenChatId)
	}
	fmt.Fprintf(w, "Stickers:    %s\n", strings.Join(resp.Stickers, " "))
}

func printChatList(w io.Writer, view *api.ChatList) {
	tabs := make([]string, 0, len(chat.Tabs))
	for _, t := range chat.Tabs {
		label := string(t)
		if n := view.Counts[t]; n > 0 {
			label = fmt.Sprintf("%s(%d)", label, n)
		}
		if t == view.Tab {
			label = "[" + label + "]"
		}
		tabs = append(tabs, label)
	}
	fmt.Fprintln(w, strings.Join(tabs, " "))
	if view.Query != "" {
		fmt.Fprintf(w, "filter: %q\n", view.Query)
	}

	if view.Empty || len(view.Records) == 0 {
		notice := view.Notice
		if notice == "" {
			notice = fmt.Sprintf("No %s found", view.Tab)
		}
		fmt.Fprintln(w, notice)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tLAST MESSAGE\tTIME\tUNREAD\tFLAGS")
	for _, r := range view.Records {
		unread := ""
		if r.Unread > 0 {
			unread = fmt.Sprintf("%d", r.Unread)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.Name, r.Preview, r.Time, unread, flags(r))
	}
	_ = tw.Flush()
}

func flags(r chat.Record) string {
	var f []string
	if r.IsOnline {
		f = append(f, "online")
	}
	if r.IsGroup {
		f = append(f, "group")
	}
	if r.IsFavorite {
		f = append(f, "favorite")
	}
	return strings.Join(f, ",")
}

func printConversation(w io.Writer, snap *api.Conversation) {
	if snap.Chat == nil {
		fmt.Fprintf(w, "%s, no chat open\n", snap.State)
	} else {
		fmt.Fprintf(w, "%s: %s (%d), %s\n", snap.State, snap.Chat.Name, snap.Chat.ID, snap.Chat.Status())
	}
	for _, e := range snap.Entries {
		fmt.Fprintf(w, "%s %s %s\n", e.Time, arrow(e.Direction), entryBody(e))
	}
	if snap.Typing {
		fmt.Fprintln(w, "... typing")
	}
	if snap.Pending > 0 {
		fmt.Fprintf(w, "(%d pending)\n", snap.Pending)
	}
}

func arrow(d conversation.Direction) string {
	if d == conversation.Outgoing {
		return ">"
	}
	return "<"
}

func entryBody(e conversation.Entry) string {
	switch e.Kind {
	case conversation.KindSticker:
		return "sticker " + e.Text
	case conversation.KindImage:
		if e.Image == nil {
			return "image"
		}
		return fmt.Sprintf("image %s (%d bytes)", e.Image.MIME, len(e.Image.Data))
	default:
		return e.Text
	}
}

// eventJSON is one --json line of watch output.
type eventJSON struct {
	EventID          string          `json:"event_id"`
	Session          string          `json:"session"`
	Kind             string          `json:"kind"`
	OccurredAtUnixMs int64           `json:"occurred_at_unix_ms"`
	Payload          json.RawMessage `json:"payload,omitempty"`
}

// eventPayload renders an envelope payload as compact JSON. Unknown kinds
// render as nothing.
func eventPayload(env *wppmockv1.EventEnvelope) (json.RawMessage, error) {
	msg, err := api.DecodePayload(env)
	if err != nil {
		if errors.Is(err, api.ErrUnknownEvent) {
			return nil, nil
		}
		return nil, err
	}
	return protojson.MarshalOptions{UseProtoNames: true}.Marshal(msg)
}

func printEvent(w io.Writer, env *wppmockv1.EventEnvelope, payload json.RawMessage) {
	at := time.UnixMilli(env.OccurredAtUnixMs).Format("15:04:05.000")
	fmt.Fprintf(w, "%s %-30s %s\n", at, env.Kind, string(payload))
}
