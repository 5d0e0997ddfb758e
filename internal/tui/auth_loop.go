package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/skillfade/internal/adapter"
	"github.com/MKhiriev/skillfade/models"
)

type authScreen int

const (
	authScreenWelcome authScreen = iota
	authScreenLogin
	authScreenRegister
)

// authModel drives the welcome/login/register screens. A successful login or
// registration stores the user ID and quits the program so that the caller
// can start the main loop.
type authModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	currentScreen authScreen
	menuIdx       int

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	quitByUser   bool
	resultUserID int64
}

func newAuthModel(ctx context.Context, server adapter.ServerAdapter) authModel {
	return authModel{
		ctx:           ctx,
		server:        server,
		currentScreen: authScreenWelcome,
	}
}

func newCredentialInputs() []textinput.Model {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	usernameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return []textinput.Model{usernameInput, passwordInput}
}

func (m authModel) Init() tea.Cmd {
	return nil
}

func (m authModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.resultUserID = msg.userID
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitByUser = true
			return m, tea.Quit
		}
	}

	switch m.currentScreen {
	case authScreenWelcome:
		return m.updateWelcome(msg)
	default:
		return m.updateCredentialsForm(msg)
	}
}

func (m authModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q":
		m.quitByUser = true
		return m, tea.Quit
	case "up", "k":
		if m.menuIdx > 0 {
			m.menuIdx--
		}
	case "down", "j":
		if m.menuIdx < 1 {
			m.menuIdx++
		}
	case "enter":
		if m.menuIdx == 0 {
			m.currentScreen = authScreenLogin
		} else {
			m.currentScreen = authScreenRegister
		}
		m.inputs = newCredentialInputs()
		m.focus = 0
		m.errMsg = ""
		return m, textinput.Blink
	}

	return m, nil
}

func (m authModel) updateCredentialsForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.currentScreen = authScreenWelcome
			m.submitting = false
			m.errMsg = ""
			return m, nil
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			username := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if username == "" || password == "" {
				m.errMsg = "Логин и пароль обязательны"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			if m.currentScreen == authScreenLogin {
				return m, m.cmdLogin(username, password)
			}
			return m, m.cmdRegister(username, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m authModel) View() string {
	switch m.currentScreen {
	case authScreenLogin:
		return m.viewCredentialsForm("ВХОД", "Войти")
	case authScreenRegister:
		return m.viewCredentialsForm("РЕГИСТРАЦИЯ", "Зарегистрироваться")
	default:
		return m.viewWelcome()
	}
}

func (m authModel) viewWelcome() string {
	items := []string{"Войти", "Зарегистрироваться"}

	var b strings.Builder
	b.WriteString("Выберите действие:\n\n")
	for i, item := range items {
		cursor := "  "
		if i == m.menuIdx {
			cursor = "> "
		}
		b.WriteString(cursor + item + "\n")
	}

	return renderPage("skillfade", strings.TrimRight(b.String(), "\n"), "enter: выбрать │ q: выход")
}

func (m authModel) viewCredentialsForm(title, submitLabel string) string {
	var b strings.Builder
	b.WriteString("Логин   │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Пароль  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[" + submitLabel + "...]\n")
	} else {
		b.WriteString("\n[" + submitLabel + "]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Ошибка: "+m.errMsg) + "\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m authModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		user, err := server.Login(ctx, models.User{Username: username, Password: password})
		return authDoneMsg{userID: user.UserID, err: err}
	}
}

func (m authModel) cmdRegister(username, password string) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		user, err := server.Register(ctx, models.User{Username: username, Password: password})
		return authDoneMsg{userID: user.UserID, err: err}
	}
}

func (m *authModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *authModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
