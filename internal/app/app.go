// Package app contains the root application model.
package app

import (
	"context"
	"errors"

	bubbleshelp "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/signup/internal/account"
	"github.com/zjrosen/signup/internal/config"
	"github.com/zjrosen/signup/internal/form"
	"github.com/zjrosen/signup/internal/i18n"
	"github.com/zjrosen/signup/internal/keys"
	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/pubsub"
	"github.com/zjrosen/signup/internal/ui/help"
	"github.com/zjrosen/signup/internal/ui/markdown"
	"github.com/zjrosen/signup/internal/ui/modal"
	"github.com/zjrosen/signup/internal/ui/regform"
	"github.com/zjrosen/signup/internal/ui/styles"
	"github.com/zjrosen/signup/internal/ui/terms"
	"github.com/zjrosen/signup/internal/ui/toaster"
	"github.com/zjrosen/signup/internal/watcher"
)

// maxFormWidth caps the form on wide terminals.
const maxFormWidth = 64

// Config holds what the root model needs from the command layer.
type Config struct {
	Controller *form.Controller
	Creator    account.Creator
	Catalog    *i18n.Catalog
	// ConfigPath receives the locale when the user switches language.
	// Empty disables persistence.
	ConfigPath string
	// MessagesFile is re-applied on top of the catalog after a locale switch.
	MessagesFile string
	// MarkdownStyle is passed to the terms renderer; empty means auto.
	MarkdownStyle string
	// Watcher, when set, reports edits to MessagesFile so the catalog is
	// reloaded in place. The caller starts and stops it.
	Watcher *watcher.Watcher
}

// Model is the root application state.
type Model struct {
	cfg     Config
	ctx     context.Context
	cancel  context.CancelFunc
	catalog *i18n.Catalog
	keys    keys.KeyMap

	form     regform.Model
	toaster  toaster.Model
	terms    terms.Model
	helpView help.Model
	short    bubbleshelp.Model
	confirm  modal.Model

	showTerms   bool
	showHelp    bool
	showConfirm bool

	listener         *pubsub.ContinuousListener[form.Event]
	messagesListener *pubsub.ContinuousListener[watcher.Event]

	width  int
	height int
}

// New creates the root model. The controller's events drive the toasts.
func New(cfg Config) Model {
	if cfg.Catalog == nil {
		cfg.Catalog = i18n.MustLoad(i18n.DefaultLocale)
	}
	if cfg.Controller == nil {
		cfg.Controller = form.NewController(form.WithValidator(cfg.Catalog.Validator()))
	}
	if cfg.MarkdownStyle == "" {
		cfg.MarkdownStyle = markdown.StyleAuto
	}

	ctx, cancel := context.WithCancel(context.Background())
	km := keys.DefaultKeyMap().Localize(cfg.Catalog.Get)

	short := bubbleshelp.New()
	short.Styles.ShortKey = styles.HintStyle.Bold(true)
	short.Styles.ShortDesc = styles.HintStyle
	short.Styles.ShortSeparator = styles.HintStyle

	m := Model{
		cfg:     cfg,
		ctx:     ctx,
		cancel:  cancel,
		catalog: cfg.Catalog,
		keys:    km,
		form: regform.New(regform.Config{
			Controller: cfg.Controller,
			Creator:    cfg.Creator,
			Catalog:    cfg.Catalog,
			Context:    ctx,
		}),
		toaster:  toaster.New(),
		helpView: help.New(km, cfg.Catalog.Get),
		short:    short,
		listener: pubsub.NewContinuousListener[form.Event](ctx, cfg.Controller),
	}
	if cfg.Watcher != nil {
		m.messagesListener = pubsub.NewContinuousListener[watcher.Event](ctx, cfg.Watcher.Broker())
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.form.Init(), m.listener.Listen()}
	if m.messagesListener != nil {
		cmds = append(cmds, m.messagesListener.Listen())
	}
	return tea.Batch(cmds...)
}

// Locale returns the active catalog locale.
func (m Model) Locale() string {
	return m.catalog.Locale()
}

// Form returns the form component.
func (m Model) Form() regform.Model {
	return m.form
}

// Toast returns the visible toast text, or "".
func (m Model) Toast() string {
	if !m.toaster.Visible() {
		return ""
	}
	return m.toaster.Message()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form = m.form.SetWidth(min(msg.Width-4, maxFormWidth))
		m.helpView = m.helpView.SetSize(msg.Width, msg.Height)
		m.confirm = m.confirm.SetSize(msg.Width, msg.Height)
		if m.showTerms {
			m.terms = m.terms.SetSize(msg.Width, msg.Height)
		}
		m.short.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.showTerms || m.showHelp || m.showConfirm {
			return m, nil
		}

	case terms.CloseMsg:
		m.showTerms = false
		return m, nil

	case modal.SubmitMsg:
		return m.quit()

	case modal.CancelMsg:
		m.showConfirm = false
		return m, nil

	case pubsub.Event[form.Event]:
		return m.handleFormEvent(msg)

	case pubsub.Event[watcher.Event]:
		return m.handleWatcherEvent(msg)

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil
	}

	// Spinner ticks, blinks and submit results belong to the form even while
	// an overlay is up.
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		if m.showConfirm || m.cfg.Controller.Input().IsZero() {
			return m.quit()
		}
		m.confirm = modal.New(modal.Config{
			Title:          m.catalog.Get("quit.title"),
			Message:        m.catalog.Get("quit.message"),
			ConfirmText:    m.catalog.Get("quit.confirm"),
			CancelText:     m.catalog.Get("quit.cancel"),
			ConfirmVariant: modal.ButtonDanger,
		}).SetSize(m.width, m.height)
		m.showConfirm = true
		return m, nil
	}

	if m.showConfirm {
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return m, cmd
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Escape) {
			m.showHelp = false
		}
		return m, nil
	}

	if m.showTerms {
		var cmd tea.Cmd
		m.terms, cmd = m.terms.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Terms):
		m.terms = m.newTerms()
		m.showTerms = true
		return m, nil

	case key.Matches(msg, m.keys.Locale):
		return m.switchLocale()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	log.Info(log.CatUI, "quit")
	m.cancel()
	return m, tea.Quit
}

func (m Model) newTerms() terms.Model {
	return terms.New(terms.Config{
		Title:    m.catalog.Get("terms.title"),
		Footer:   m.catalog.Get("terms.footer"),
		Document: m.catalog.Terms(),
		Style:    m.cfg.MarkdownStyle,
	}).SetSize(m.width, m.height)
}

// switchLocale cycles to the next built-in locale and persists the choice.
func (m Model) switchLocale() (tea.Model, tea.Cmd) {
	next := i18n.Next(m.catalog.Locale())
	c, err := i18n.Load(next, m.cfg.MessagesFile)
	if err != nil {
		log.ErrorErr(log.CatI18n, "switch locale", err, "locale", next)
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Show(err.Error(), toaster.StyleError, toaster.DefaultDuration)
		return m, cmd
	}

	m = m.applyCatalog(c)
	log.Info(log.CatI18n, "locale switched", "locale", next)

	if m.cfg.ConfigPath != "" {
		if err := config.SaveLocale(m.cfg.ConfigPath, next); err != nil {
			log.Warn(log.CatConfig, "locale not saved", "path", m.cfg.ConfigPath, "error", err)
		}
	}

	var cmd tea.Cmd
	m.toaster, cmd = m.toaster.Show(c.Get("notice.locale"), toaster.StyleInfo, toaster.DefaultDuration)
	return m, cmd
}

// applyCatalog swaps the catalog everywhere text is rendered.
func (m Model) applyCatalog(c *i18n.Catalog) Model {
	m.catalog = c
	m.keys = keys.DefaultKeyMap().Localize(c.Get)
	m.form = m.form.SetCatalog(c)
	m.helpView = help.New(m.keys, c.Get).SetSize(m.width, m.height)
	if m.showTerms {
		m.terms = m.newTerms()
	}
	return m
}

func (m Model) handleWatcherEvent(ev pubsub.Event[watcher.Event]) (tea.Model, tea.Cmd) {
	if ev.Type != watcher.FileChanged {
		log.Warn(log.CatI18n, "messages watcher", "type", ev.Type, "error", ev.Payload.Error)
		return m, m.messagesListener.Listen()
	}

	var toastCmd tea.Cmd
	c, err := i18n.Load(m.catalog.Locale(), m.cfg.MessagesFile)
	if err != nil {
		log.ErrorErr(log.CatI18n, "reload messages", err, "path", ev.Payload.Path)
		m.toaster, toastCmd = m.toaster.Show(err.Error(), toaster.StyleError, toaster.DefaultDuration)
		return m, tea.Batch(toastCmd, m.messagesListener.Listen())
	}

	m = m.applyCatalog(c)
	log.Info(log.CatI18n, "messages reloaded", "path", ev.Payload.Path)
	m.toaster, toastCmd = m.toaster.Show(c.Get("notice.reloaded"), toaster.StyleInfo, toaster.DefaultDuration)
	return m, tea.Batch(toastCmd, m.messagesListener.Listen())
}

func (m Model) handleFormEvent(ev pubsub.Event[form.Event]) (tea.Model, tea.Cmd) {
	var toastCmd tea.Cmd
	switch ev.Type {
	case form.RegisteredEvent:
		m.toaster, toastCmd = m.toaster.Show(m.catalog.Get("notice.registered"), toaster.StyleSuccess, toaster.DefaultDuration)

	case form.SubmitFailedEvent:
		notice := "notice.failed"
		if errors.Is(ev.Payload.Err, account.ErrDuplicateEmail) {
			notice = "notice.duplicate"
		}
		m.toaster, toastCmd = m.toaster.Show(m.catalog.Get(notice), toaster.StyleError, toaster.DefaultDuration)

	default:
		log.Debug(log.CatUI, "form event", "type", ev.Type)
	}
	return m, tea.Batch(toastCmd, m.listener.Listen())
}

// View implements tea.Model.
func (m Model) View() string {
	footer := styles.HintStyle.Render(m.catalog.Get("footer.have_account")) + " " +
		styles.LinkStyle.Render(m.catalog.Get("footer.login"))

	content := lipgloss.JoinVertical(lipgloss.Center,
		m.form.View(),
		"",
		footer,
		"",
		m.short.View(m.keys),
	)

	if m.width == 0 || m.height == 0 {
		return zone.Scan(content)
	}

	view := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top,
		lipgloss.NewStyle().PaddingTop(1).Render(content))

	switch {
	case m.showConfirm:
		view = m.confirm.Overlay(view)
	case m.showTerms:
		view = m.terms.Overlay(view)
	case m.showHelp:
		view = m.helpView.Overlay(view)
	}
	view = m.toaster.Overlay(view, m.width, m.height)
	return zone.Scan(view)
}
