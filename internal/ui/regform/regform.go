// Package regform is the registration form component: text inputs, the
// gender radio, the terms checkbox, inline errors, the password strength
// meter and the submit button.
//
// The component keeps no record of its own. Every edit is pushed into a
// form.Controller and the view is rendered from the controller's record and
// validation result.
package regform

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/signup/internal/account"
	"github.com/zjrosen/signup/internal/form"
	"github.com/zjrosen/signup/internal/i18n"
	"github.com/zjrosen/signup/internal/keys"
	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/ui/styles"
)

const (
	defaultWidth = 56
	minWidth     = 30
)

// focusButton is the focus index of the submit button, after every field.
var focusButton = len(registration.Fields)

// textFields are the fields edited through a textinput.
var textFields = []registration.Field{
	registration.FieldName,
	registration.FieldEmail,
	registration.FieldPhone,
	registration.FieldAge,
	registration.FieldPassword,
	registration.FieldConfirmPassword,
}

// SubmitDoneMsg carries the outcome of a submission started by the form.
type SubmitDoneMsg struct {
	Receipt account.Receipt
	Err     error
}

// Config wires the form to its collaborators.
type Config struct {
	Controller *form.Controller
	Creator    account.Creator
	Catalog    *i18n.Catalog
	// Context bounds submissions; defaults to context.Background.
	Context context.Context
}

// Model is the form component state.
type Model struct {
	ctx     context.Context
	ctrl    *form.Controller
	creator account.Creator
	catalog *i18n.Catalog
	keys    keys.KeyMap

	inputs       map[registration.Field]*textinput.Model
	focus        int
	genderCursor int
	touched      map[registration.Field]bool

	spinner spinner.Model
	width   int
}

// New creates the form with focus on the first field.
func New(cfg Config) Model {
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	if cfg.Catalog == nil {
		cfg.Catalog = i18n.MustLoad(i18n.DefaultLocale)
	}
	if cfg.Controller == nil {
		cfg.Controller = form.NewController(form.WithValidator(cfg.Catalog.Validator()))
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	m := Model{
		ctx:     cfg.Context,
		ctrl:    cfg.Controller,
		creator: cfg.Creator,
		inputs:  make(map[registration.Field]*textinput.Model, len(textFields)),
		touched: make(map[registration.Field]bool),
		spinner: sp,
		width:   defaultWidth,
	}
	for _, f := range textFields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.TextPlaceholderColor)
		if f == registration.FieldPassword || f == registration.FieldConfirmPassword {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		m.inputs[f] = &ti
	}
	m = m.SetCatalog(cfg.Catalog)
	m = m.SetWidth(defaultWidth)
	m.syncInputs()
	m.focusIndex(0)
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// SetCatalog switches display text and validation messages to c.
func (m Model) SetCatalog(c *i18n.Catalog) Model {
	m.catalog = c
	m.keys = keys.DefaultKeyMap().Localize(c.Get)
	for f, ti := range m.inputs {
		ti.Placeholder = c.Placeholder(f)
	}
	m.ctrl.SetValidator(c.Validator())
	return m
}

// SetWidth sets the total width of the form.
func (m Model) SetWidth(width int) Model {
	m.width = max(width, minWidth)
	for _, ti := range m.inputs {
		// section border and one cell of padding on each side
		ti.Width = m.width - 5
	}
	return m
}

// Width returns the form width.
func (m Model) Width() int {
	return m.width
}

// Focused returns the focused field and false, or true when the submit
// button has focus.
func (m Model) Focused() (registration.Field, bool) {
	if m.focus == focusButton {
		return 0, true
	}
	return registration.Fields[m.focus], false
}

// Touched reports whether the user has edited f since the last reset.
func (m Model) Touched(f registration.Field) bool {
	return m.touched[f]
}

// Controller returns the controller the form writes to.
func (m Model) Controller() *form.Controller {
	return m.ctrl
}

// Update handles keys, clicks, spinner ticks and submit results.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease {
			return m.handleClick(msg)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.ctrl.Submitting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case SubmitDoneMsg:
		return m.handleSubmitDone(msg)
	}

	// Blink and other textinput messages go to the focused input.
	if ti := m.focusedInput(); ti != nil {
		var cmd tea.Cmd
		*ti, cmd = ti.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Next):
		return m, m.focusIndex(m.focus + 1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.focusIndex(m.focus - 1)
	}

	if m.focus == focusButton {
		if key.Matches(msg, m.keys.Enter) {
			return m.submit()
		}
		return m, nil
	}

	switch registration.Fields[m.focus] {
	case registration.FieldGender:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.genderCursor = (m.genderCursor + len(registration.Genders) - 1) % len(registration.Genders)
			m.selectGender(m.genderCursor)
		case key.Matches(msg, m.keys.Right):
			m.genderCursor = (m.genderCursor + 1) % len(registration.Genders)
			m.selectGender(m.genderCursor)
		case key.Matches(msg, m.keys.Toggle), key.Matches(msg, m.keys.Enter):
			m.selectGender(m.genderCursor)
		}
		return m, nil

	case registration.FieldTerms:
		if key.Matches(msg, m.keys.Toggle) || key.Matches(msg, m.keys.Enter) {
			m.toggleTerms()
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Enter) {
		return m, m.focusIndex(m.focus + 1)
	}
	return m, m.updateInput(msg)
}

// updateInput forwards msg to the focused input and pushes any change to
// the controller.
func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	ti := m.focusedInput()
	if ti == nil {
		return nil
	}
	field := registration.Fields[m.focus]
	before := ti.Value()

	var cmd tea.Cmd
	*ti, cmd = ti.Update(msg)

	if after := ti.Value(); after != before {
		if err := m.ctrl.Set(field, after); err != nil {
			log.ErrorErr(log.CatUI, "set field", err, "field", field)
		}
		m.touched[field] = true
	}
	return cmd
}

func (m *Model) selectGender(i int) {
	m.ctrl.SetGender(registration.Genders[i])
	m.touched[registration.FieldGender] = true
}

func (m *Model) toggleTerms() {
	m.ctrl.SetTerms(!m.ctrl.Input().Terms)
	m.touched[registration.FieldTerms] = true
}

// submit claims the submission inside the update loop, so a second press
// sees it in flight. Only the collaborator call runs in the command.
func (m Model) submit() (Model, tea.Cmd) {
	if m.creator == nil {
		log.Warn(log.CatUI, "submit without account creator")
		return m, nil
	}

	in, err := m.ctrl.Begin()
	if err != nil {
		log.Debug(log.CatUI, "submit blocked", "error", err)
		var invalid *form.InvalidError
		if errors.As(err, &invalid) && !invalid.Result.Valid() {
			return m, m.focusIndex(int(invalid.Result.Fields()[0]))
		}
		return m, nil
	}

	ctx, ctrl, creator := m.ctx, m.ctrl, m.creator
	run := func() tea.Msg {
		receipt, err := ctrl.Complete(ctx, creator, in)
		return SubmitDoneMsg{Receipt: receipt, Err: err}
	}
	return m, tea.Batch(run, m.spinner.Tick)
}

// handleSubmitDone clears the form after a registration. On failure the
// values stay for a retry.
func (m Model) handleSubmitDone(msg SubmitDoneMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		log.Debug(log.CatUI, "submit finished with error", "error", msg.Err)
		return m, nil
	}
	cmd := m.reset()
	return m, cmd
}

// reset clears touched state and the inputs after a successful submit.
func (m *Model) reset() tea.Cmd {
	m.touched = make(map[registration.Field]bool)
	m.genderCursor = 0
	m.syncInputs()
	return m.focusIndex(0)
}

// syncInputs copies the controller's record into the text inputs.
func (m *Model) syncInputs() {
	in := m.ctrl.Input()
	for f, ti := range m.inputs {
		ti.SetValue(in.Value(f))
	}
	for i, g := range registration.Genders {
		if g == in.Gender {
			m.genderCursor = i
		}
	}
}

func (m *Model) focusedInput() *textinput.Model {
	if m.focus == focusButton {
		return nil
	}
	return m.inputs[registration.Fields[m.focus]]
}

// focusIndex moves focus to i, wrapping around, and returns the blink
// command when a text input gains focus.
func (m *Model) focusIndex(i int) tea.Cmd {
	n := focusButton + 1
	i = ((i % n) + n) % n

	if ti := m.focusedInput(); ti != nil {
		ti.Blur()
	}
	m.focus = i
	if ti := m.focusedInput(); ti != nil {
		return ti.Focus()
	}
	return nil
}

func (m Model) handleClick(msg tea.MouseMsg) (Model, tea.Cmd) {
	if z := zone.Get(zoneSubmit); z != nil && z.InBounds(msg) {
		m.focusIndex(focusButton)
		return m.submit()
	}
	for i, g := range registration.Genders {
		if z := zone.Get(genderZoneID(g)); z != nil && z.InBounds(msg) {
			m.focusIndex(int(registration.FieldGender))
			m.genderCursor = i
			m.selectGender(i)
			return m, nil
		}
	}
	if z := zone.Get(zoneTerms); z != nil && z.InBounds(msg) {
		m.focusIndex(int(registration.FieldTerms))
		m.toggleTerms()
		return m, nil
	}
	for i, f := range registration.Fields {
		if z := zone.Get(fieldZoneID(f)); z != nil && z.InBounds(msg) {
			return m, m.focusIndex(i)
		}
	}
	return m, nil
}
