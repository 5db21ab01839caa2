package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gdamore/tcell/v2"
	wppmockv1 "github.com/matheus3301/wppmock/gen/wppmock/v1"
	"github.com/matheus3301/wppmock/internal/chat"
	"github.com/matheus3301/wppmock/internal/conversation"
	"github.com/matheus3301/wppmock/internal/tui/client"
	"github.com/matheus3301/wppmock/internal/tui/keys"
	"github.com/matheus3301/wppmock/internal/tui/model"
	"github.com/matheus3301/wppmock/internal/tui/ui"
	"github.com/matheus3301/wppmock/internal/tui/views"
	"github.com/rivo/tview"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

const (
	pageChats    = "chats"
	pageThread   = "thread"
	pageDetails  = "details"
	pageStickers = "stickers"
	pageLink     = "link"
	pageHelp     = "help"

	rpcTimeout    = 5 * time.Second
	statusRefresh = 5 * time.Second
	maxBackoff    = 30 * time.Second
)

// App is the main TUI application shell.
type App struct {
	app      *tview.Application
	theme    *ui.Theme
	clock    clock.Clock
	vm       *model.ViewModel
	grpc     *client.Client
	registry *keys.Registry

	root        *tview.Flex
	header      *tview.Flex
	pages       *ui.Pages
	components  map[string]ui.Component
	sessionInfo *ui.SessionInfo
	menu        *ui.Menu
	logo        *ui.Logo
	prompt      *ui.Prompt
	crumbs      *ui.Crumbs
	flashBar    *ui.FlashBar
	statusBar   *views.StatusBar

	chatList *views.ChatList
	thread   *views.MessageThread
	details  *views.ChatInfo
	stickers *views.StickerPicker
	link     *views.LinkView
	help     *views.HelpView

	promptVisible bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp creates the TUI application.
func NewApp(c *client.Client, sessionName string) *App {
	ctx, cancel := context.WithCancel(context.Background())
	clk := clock.New()
	theme := ui.DefaultTheme()

	a := &App{
		app:         tview.NewApplication(),
		theme:       theme,
		clock:       clk,
		vm:          model.NewViewModel(c, clk),
		grpc:        c,
		registry:    keys.NewRegistry(),
		pages:       ui.NewPages(),
		sessionInfo: ui.NewSessionInfo(theme),
		menu:        ui.NewMenu(theme),
		logo:        ui.NewLogo(theme),
		prompt:      ui.NewPrompt(theme),
		crumbs:      ui.NewCrumbs(theme),
		flashBar:    ui.NewFlashBar(theme),
		statusBar:   views.NewStatusBar(clk),
		chatList:    views.NewChatList(theme),
		thread:      views.NewMessageThread(theme),
		details:     views.NewChatInfo(theme),
		stickers:    views.NewStickerPicker(theme),
		link:        views.NewLinkView(theme),
		help:        views.NewHelpView(theme),
		ctx:         ctx,
		cancel:      cancel,
	}

	a.statusBar.SetSession(sessionName)
	a.setupPages()
	a.setupBindings()
	a.setupCallbacks()
	a.setupLayout()
	a.pages.Push(pageChats)

	return a
}

func (a *App) setupPages() {
	a.components = map[string]ui.Component{
		pageChats:    a.chatList,
		pageThread:   a.thread,
		pageDetails:  a.details,
		pageStickers: a.stickers,
		pageLink:     a.link,
		pageHelp:     a.help,
	}
	a.pages.AddPage(pageChats, a.chatList, true, false)
	a.pages.AddPage(pageThread, a.thread, true, false)
	a.pages.AddPage(pageDetails, a.details, true, false)
	a.pages.AddPage(pageStickers, a.stickers, true, false)
	a.pages.AddPage(pageLink, a.link, true, false)
	a.pages.AddPage(pageHelp, a.help, true, false)
	for _, c := range a.components {
		c.Init()
	}
	a.pages.SetOnChange(a.onStackChange)
}

func (a *App) setupBindings() {
	a.registry.AddGlobal("command", &keys.Action{
		Rune: ':', Key: tcell.KeyRune,
		Label: ":", Description: "Command mode", Visible: true,
		Handler: func() { a.showPrompt(ui.PromptCommand) },
	})
	a.registry.AddGlobal("help", &keys.Action{
		Rune: '?', Key: tcell.KeyRune,
		Label: "?", Description: "Help", Visible: true,
		Handler: a.showHelp,
	})
	a.registry.AddGlobal("quit", &keys.Action{
		Rune: 'q', Key: tcell.KeyRune,
		Label: "q", Description: "Back, or quit from the chat list", Visible: true,
		Handler: func() {
			if a.pages.Depth() > 1 {
				a.back()
				return
			}
			a.Stop()
		},
	})

	a.registry.AddView(pageChats, "filter", &keys.Action{
		Rune: '/', Key: tcell.KeyRune,
		Label: "/", Description: "Filter by name or last message", Visible: true,
		Handler: func() { a.showPrompt(ui.PromptFilter) },
	})
	a.registry.AddView(pageChats, "read-all", &keys.Action{
		Rune: 'a', Key: tcell.KeyRune,
		Label: "a", Description: "Mark all read", Visible: true,
		Handler: a.markAllRead,
	})
	a.registry.AddView(pageChats, "next-tab", &keys.Action{
		Key:   tcell.KeyTab,
		Label: "Tab", Description: "Next tab", Visible: true,
		Handler: func() { a.cycleTab(1) },
	})
	a.registry.AddView(pageChats, "prev-tab", &keys.Action{
		Key:   tcell.KeyBacktab,
		Label: "S-Tab", Description: "Previous tab", Visible: true,
		Handler: func() { a.cycleTab(-1) },
	})
	for i, tab := range chat.Tabs {
		r := rune('1' + i)
		a.registry.AddView(pageChats, "tab-"+string(tab), &keys.Action{
			Rune: r, Key: tcell.KeyRune,
			Label: string(r), Description: tab.Title(), Visible: true,
			Handler: func() { a.switchTab(string(tab)) },
		})
	}
	a.registry.AddView(pageChats, "link", &keys.Action{
		Rune: 'l', Key: tcell.KeyRune,
		Label: "l", Description: "Link a device", Visible: true,
		Handler: a.showLink,
	})

	a.registry.AddView(pageThread, "compose", &keys.Action{
		Rune: 'i', Key: tcell.KeyRune,
		Label: "i", Description: "Focus composer", Visible: true,
		Handler: func() { a.app.SetFocus(a.thread.Composer()) },
	})
	a.registry.AddView(pageThread, "sticker", &keys.Action{
		Rune: 's', Key: tcell.KeyRune,
		Label: "s", Description: "Pick a sticker", Visible: true,
		Handler: a.showStickers,
	})
	a.registry.AddView(pageThread, "details", &keys.Action{
		Rune: 'd', Key: tcell.KeyRune,
		Label: "d", Description: "Chat details", Visible: true,
		Handler: func() { a.pages.Push(pageDetails) },
	})

	a.registry.AddView(pageLink, "refresh", &keys.Action{
		Rune: 'r', Key: tcell.KeyRune,
		Label: "r", Description: "New pairing code", Visible: true,
		Handler: a.link.Refresh,
	})
}

func (a *App) setupCallbacks() {
	a.chatList.SetSelectedFunc(a.openChat)

	a.thread.SetOnSend(func(text string) {
		a.run("Send failed", func(ctx context.Context) error {
			return a.vm.SendText(ctx, text)
		}, nil)
	})
	a.thread.SetOnLeaveComposer(func() {
		a.app.SetFocus(a.thread.Messages())
	})

	a.stickers.SetOnPick(func(glyph string) {
		a.pages.Pop()
		a.sendSticker(glyph)
	})

	a.prompt.SetOnSubmit(func(mode ui.PromptMode, text string) {
		a.hidePrompt()
		switch mode {
		case ui.PromptFilter:
			a.search(text)
		case ui.PromptCommand:
			a.runCommand(ParseCommand(text))
		}
	})
	a.prompt.SetOnCancel(a.hidePrompt)
}

func (a *App) setupLayout() {
	a.header = tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(a.sessionInfo, 36, 0, false).
		AddItem(a.menu, 0, 1, false).
		AddItem(a.logo, 30, 0, false)

	a.root = tview.NewFlex().SetDirection(tview.FlexRow)
	a.layout()

	a.app.SetRoot(a.root, true)
	a.app.SetInputCapture(a.handleKey)
}

// layout rebuilds the root flex; the prompt row only exists while active.
func (a *App) layout() {
	a.root.Clear()
	a.root.AddItem(a.header, 6, 0, false)
	if a.promptVisible {
		a.root.AddItem(a.prompt, 3, 0, true)
	}
	a.root.
		AddItem(a.pages, 0, 1, !a.promptVisible).
		AddItem(a.crumbs, 1, 0, false).
		AddItem(a.statusBar, 1, 0, false).
		AddItem(a.flashBar, 1, 0, false)
}

func (a *App) handleKey(event *tcell.EventKey) *tcell.EventKey {
	// Text input widgets handle every key themselves, Esc included.
	if a.promptVisible {
		return event
	}
	if _, ok := a.app.GetFocus().(*tview.InputField); ok {
		return event
	}

	if event.Key() == tcell.KeyEscape {
		a.back()
		return nil
	}
	if a.registry.HandleEvent(a.pages.Current(), event) {
		return nil
	}
	return event
}

func (a *App) onStackChange(stack []string) {
	a.updateCrumbs(stack)
	if c, ok := a.components[a.pages.Current()]; ok {
		c.Start()
		a.menu.Update(c.Hints())
	}
	a.focusCurrent()
}

// updateCrumbs renders the stack with component names, which follow the
// open chat and current tab.
func (a *App) updateCrumbs(stack []string) {
	names := make([]string, len(stack))
	for i, page := range stack {
		names[i] = a.components[page].Name()
	}
	a.crumbs.Update(names)
	a.statusBar.SetWhere(strings.Join(names, " / "))
}

func (a *App) focusCurrent() {
	switch a.pages.Current() {
	case pageChats:
		a.app.SetFocus(a.chatList.Table())
	case pageThread:
		a.app.SetFocus(a.thread.Messages())
	case pageDetails:
		a.app.SetFocus(a.details)
	case pageStickers:
		a.app.SetFocus(a.stickers)
	case pageLink:
		a.app.SetFocus(a.link)
	case pageHelp:
		a.app.SetFocus(a.help)
	}
}

// back pops one page. Leaving the thread closes the conversation; Esc on the
// chat list clears an active filter.
func (a *App) back() {
	if a.pages.Depth() <= 1 {
		if a.vm.ChatList().Query != "" {
			a.search("")
		}
		return
	}
	if c, ok := a.components[a.pages.Current()]; ok {
		c.Stop()
	}
	if a.pages.Pop() == pageThread {
		a.closeChat()
	}
}

func (a *App) showPrompt(mode ui.PromptMode) {
	a.prompt.Activate(mode)
	if mode == ui.PromptFilter {
		a.prompt.SetText(a.vm.ChatList().Query)
	}
	a.promptVisible = true
	a.layout()
	a.app.SetFocus(a.prompt)
}

func (a *App) hidePrompt() {
	a.promptVisible = false
	a.layout()
	a.focusCurrent()
}

func (a *App) showHelp() {
	if a.pages.Current() == pageHelp {
		return
	}
	a.help.Update([]views.HelpSection{
		{Title: "Global Keys", Hints: append(a.registry.GlobalHints(), keys.Hint{Key: "Esc", Description: "Cancel / Go back"})},
		{Title: "Chat List", Hints: append(a.registry.ViewHints(pageChats), keys.Hint{Key: "Enter", Description: "Open chat"})},
		{Title: "Conversation", Hints: append(a.registry.ViewHints(pageThread), keys.Hint{Key: "Enter", Description: "Send (in composer)"})},
		{Title: "Link a Device", Hints: a.registry.ViewHints(pageLink)},
	})
	a.pages.Push(pageHelp)
}

func (a *App) showLink() {
	a.pages.Push(pageLink)
}

func (a *App) showStickers() {
	set := a.vm.Stickers()
	if len(set) == 0 {
		a.vm.Flash.Warn("No stickers available")
		return
	}
	a.stickers.Update(set)
	a.pages.Push(pageStickers)
}

func (a *App) runCommand(cmd Command) {
	switch cmd.Name {
	case "":
	case CmdTab:
		if cmd.Args == "" {
			a.vm.Flash.Warn("usage: tab <chats|unread|favorites|groups|status|calls>")
			return
		}
		a.switchTab(cmd.Args)
	case CmdReadAll:
		a.markAllRead()
	case CmdSearch:
		a.search(cmd.Args)
	case CmdOpen:
		id, err := strconv.ParseInt(cmd.Args, 10, 64)
		if err != nil {
			a.vm.Flash.Warn("usage: open <chat id>")
			return
		}
		a.openChat(id)
	case CmdClose:
		if a.pages.Current() == pageThread {
			a.back()
			return
		}
		a.closeChat()
	case CmdSticker:
		if cmd.Args != "" {
			a.sendSticker(cmd.Args)
			return
		}
		a.showStickers()
	case CmdImage:
		if cmd.Args == "" {
			a.vm.Flash.Warn("usage: image <path>")
			return
		}
		path := cmd.Args
		a.run("Image not sent", func(ctx context.Context) error {
			return a.vm.SendImage(ctx, path)
		}, nil)
	case CmdLink:
		a.showLink()
	case CmdHelp:
		a.showHelp()
	case CmdQuit:
		a.Stop()
	default:
		a.vm.Flash.Warn(fmt.Sprintf("unknown command %q", cmd.Name))
	}
}

func (a *App) switchTab(name string) {
	a.run("Switch tab failed", func(ctx context.Context) error {
		return a.vm.SwitchTab(ctx, name)
	}, nil)
}

func (a *App) cycleTab(step int) {
	a.run("Switch tab failed", func(ctx context.Context) error {
		return a.vm.CycleTab(ctx, step)
	}, nil)
}

func (a *App) search(query string) {
	a.run("Search failed", func(ctx context.Context) error {
		return a.vm.Search(ctx, query)
	}, nil)
}

func (a *App) markAllRead() {
	a.run("Mark all read failed", a.vm.MarkAllRead, func() {
		a.vm.Flash.Info("All chats marked read")
	})
}

func (a *App) openChat(id int64) {
	a.run("Open failed", func(ctx context.Context) error {
		return a.vm.OpenChat(ctx, id)
	}, func() {
		a.pages.Raise(pageThread)
	})
}

func (a *App) closeChat() {
	a.run("Close failed", a.vm.CloseChat, nil)
}

func (a *App) sendSticker(glyph string) {
	a.run("Sticker not sent", func(ctx context.Context) error {
		return a.vm.SendSticker(ctx, glyph)
	}, nil)
}

// run calls fn off the UI goroutine and reports failures on the flash bar.
// then runs on the UI goroutine after a successful call.
func (a *App) run(what string, fn func(ctx context.Context) error, then func()) {
	go func() {
		ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
		defer cancel()
		err := fn(ctx)
		a.app.QueueUpdateDraw(func() {
			if err != nil {
				a.flashError(what, err)
				return
			}
			if then != nil {
				then()
			}
			a.refresh()
		})
	}()
}

func (a *App) flashError(what string, err error) {
	st := grpcstatus.Convert(err)
	msg := fmt.Sprintf("%s: %s", what, st.Message())
	switch st.Code() {
	case codes.InvalidArgument, codes.NotFound, codes.Unknown:
		a.vm.Flash.Warn(msg)
	default:
		a.vm.Flash.Err(fmt.Errorf("%s", msg))
	}
}

// refresh redraws every view from the view model. Must run on the UI goroutine.
func (a *App) refresh() {
	conv := a.vm.Conversation()
	a.chatList.Update(a.vm.ChatList())
	a.thread.Update(conv)
	a.details.Update(conv)

	if data := a.vm.SessionData(); data != nil {
		a.sessionInfo.Update(data)
		a.statusBar.SetStatus(data.Status)
	}

	// The conversation was closed elsewhere (e.g. from the control CLI).
	if conv.State == conversation.Closed && a.inThread() {
		a.pages.Reset(pageChats)
		return
	}
	a.updateCrumbs(a.pages.Stack())
}

func (a *App) inThread() bool {
	return a.pages.Contains(pageThread)
}

// Run starts the TUI application.
func (a *App) Run() error {
	go func() {
		a.reload()
		go a.watchEvents()
		go a.refreshLoop()
		go a.flashLoop()
	}()

	return a.app.Run()
}

// reload fetches status, the chat list and the open conversation.
func (a *App) reload() {
	ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
	defer cancel()

	var firstErr error
	for _, load := range []func(context.Context) error{a.vm.LoadStatus, a.vm.LoadChats, a.vm.LoadConversation} {
		if err := load(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	a.app.QueueUpdateDraw(func() {
		if firstErr != nil {
			a.flashError("Daemon unreachable", firstErr)
		}
		a.refresh()
		if a.vm.Conversation().State == conversation.Open && a.pages.Current() == pageChats {
			a.pages.Push(pageThread)
		}
	})
}

// watchEvents streams daemon events into the view model, reconnecting with
// backoff until the app stops.
func (a *App) watchEvents() {
	backoff := time.Second
	for a.ctx.Err() == nil {
		stream, err := a.grpc.Conversation.WatchEvents(a.ctx, &wppmockv1.WatchEventsRequest{})
		if err == nil {
			a.setLive(true)
			backoff = time.Second
			err = a.consume(stream)
		}
		a.setLive(false)
		if a.ctx.Err() != nil {
			return
		}
		a.vm.Flash.Warn("Live updates lost: " + grpcstatus.Convert(err).Message())

		select {
		case <-a.clock.After(backoff):
		case <-a.ctx.Done():
			return
		}
		backoff = min(backoff*2, maxBackoff)
		a.reload()
	}
}

func (a *App) consume(stream wppmockv1.ConversationService_WatchEventsClient) error {
	for {
		env, err := stream.Recv()
		if err != nil {
			return err
		}
		if _, err := a.vm.Apply(env); err != nil {
			a.vm.Flash.Warn(err.Error())
			continue
		}
		// Archived transcripts are only in the snapshot, not in the event.
		if env.Kind == conversation.EventOpened {
			ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
			_ = a.vm.LoadConversation(ctx)
			cancel()
		}
	}
}

func (a *App) setLive(live bool) {
	a.app.QueueUpdateDraw(func() { a.statusBar.SetLive(live) })
}

// refreshLoop redraws on view model changes, ticks the clock and polls status.
func (a *App) refreshLoop() {
	tick := a.clock.Ticker(time.Second)
	defer tick.Stop()
	lastStatus := a.clock.Now()

	for {
		select {
		case <-a.vm.RefreshCh():
			a.app.QueueUpdateDraw(a.refresh)
		case now := <-tick.C:
			if now.Sub(lastStatus) >= statusRefresh {
				lastStatus = now
				ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
				_ = a.vm.LoadStatus(ctx)
				cancel()
			}
			a.app.QueueUpdateDraw(func() {
				a.statusBar.Tick()
				if data := a.vm.SessionData(); data != nil {
					a.sessionInfo.Update(data)
				}
				a.flashBar.Update(a.vm.Flash.GetMessage())
			})
		case <-a.ctx.Done():
			return
		}
	}
}

func (a *App) flashLoop() {
	for {
		select {
		case <-a.vm.Flash.Watch():
			a.app.QueueUpdateDraw(func() {
				a.flashBar.Update(a.vm.Flash.GetMessage())
			})
		case <-a.ctx.Done():
			return
		}
	}
}

// Stop gracefully shuts down the TUI.
func (a *App) Stop() {
	a.cancel()
	a.app.Stop()
}
