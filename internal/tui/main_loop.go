package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/skillfade/internal/adapter"
	"github.com/MKhiriev/skillfade/internal/decay"
	"github.com/MKhiriev/skillfade/models"
)

type mainScreen int

const (
	mainScreenList mainScreen = iota
	mainScreenForm
	mainScreenReport
)

type mainLoopModel struct {
	ctx    context.Context
	server adapter.ServerAdapter
	userID int64

	currentScreen mainScreen

	skills  []models.Skill
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	errMsg  string

	formInputs     []textinput.Model
	formFocus      int
	formSubmitting bool
	formEditing    bool

	report        models.SkillReport
	reportLoading bool

	showConfirm   bool
	pendingDelete string

	logout bool
}

func newMainLoopModel(ctx context.Context, server adapter.ServerAdapter, userID int64) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return mainLoopModel{
		ctx:     ctx,
		server:  server,
		userID:  userID,
		spinner: s,
		loading: true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadSkills(), m.spinner.Tick)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case skillsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.skills = msg.skills
		if m.idx >= len(m.skills) {
			m.idx = len(m.skills) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case skillSavedMsg:
		m.formSubmitting = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.status = "Навык сохранён"
		m.errMsg = ""
		m.currentScreen = mainScreenList
		m.loading = true
		return m, m.cmdLoadSkills()
	case skillDeletedMsg:
		m.pendingDelete = ""
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка удаления: %v", msg.err)
			return m, nil
		}
		m.status = "Навык удалён"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadSkills()
	case reportLoadedMsg:
		m.reportLoading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			m.currentScreen = mainScreenList
			return m, nil
		}
		m.errMsg = ""
		m.report = msg.report
		m.currentScreen = mainScreenReport
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case mainScreenForm:
		return m.updateForm(msg)
	case mainScreenReport:
		return m.updateReport(msg)
	default:
		return m.updateList(msg)
	}
}

func (m mainLoopModel) View() string {
	if m.showConfirm {
		return m.viewConfirm()
	}

	switch m.currentScreen {
	case mainScreenForm:
		return m.viewForm()
	case mainScreenReport:
		return m.viewReport()
	default:
		return m.viewList()
	}
}

// ---- list screen ----

func (m mainLoopModel) currentSkill() (models.Skill, bool) {
	if len(m.skills) == 0 || m.idx < 0 || m.idx >= len(m.skills) {
		return models.Skill{}, false
	}
	return m.skills[m.idx], true
}

func (m mainLoopModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "l":
		m.logout = true
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.skills)-1 {
			m.idx++
		}
	case "r":
		m.loading = true
		m.status = ""
		return m, m.cmdLoadSkills()
	case "n":
		m.openForm(models.Skill{}, false)
		return m, textinput.Blink
	case "e":
		if skill, ok := m.currentSkill(); ok {
			m.openForm(skill, true)
			return m, textinput.Blink
		}
	case "d":
		if skill, ok := m.currentSkill(); ok {
			m.showConfirm = true
			m.pendingDelete = skill.Name
		}
	case "enter":
		if skill, ok := m.currentSkill(); ok {
			m.reportLoading = true
			m.status = ""
			return m, m.cmdLoadReport(skill.Name)
		}
	}

	return m, nil
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View() + " Загрузка...\n")
	} else if len(m.skills) == 0 {
		b.WriteString("Нет навыков. Нажмите n, чтобы добавить первый.\n")
	} else {
		b.WriteString(fmt.Sprintf("%-24s │ %-12s │ %s\n", "Навык", "Практика", "Скорость забывания"))
		b.WriteString("─────────────────────────┼──────────────┼───────────────────\n")
		for i, skill := range m.skills {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-22s │ %-12s │ %.2f\n",
				cursor, fitText(skill.Name, 22), skill.LastPractice.String(), skill.DecayRate))
		}
	}

	if m.reportLoading {
		b.WriteString("\n" + m.spinner.View() + " Загрузка отчёта...\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Ошибка: "+m.errMsg) + "\n")
	}

	hotKeys := "enter: отчёт │ n: новый │ e: изменить │ d: удалить │ r: обновить │ l: перелогин │ q: выход"
	return renderPage("МОИ НАВЫКИ", strings.TrimRight(b.String(), "\n"), hotKeys)
}

// ---- skill form screen ----

func (m *mainLoopModel) openForm(skill models.Skill, editing bool) {
	nameInput := textinput.New()
	nameInput.Placeholder = "Machine Learning"
	nameInput.CharLimit = 64
	nameInput.Width = 40
	nameInput.SetValue(skill.Name)
	nameInput.Focus()

	dateInput := textinput.New()
	dateInput.Placeholder = "2026-08-31"
	dateInput.CharLimit = 10
	dateInput.Width = 40
	if !skill.LastPractice.IsZero() {
		dateInput.SetValue(skill.LastPractice.String())
	}

	rateInput := textinput.New()
	rateInput.Placeholder = "0.05"
	rateInput.CharLimit = 6
	rateInput.Width = 40
	if skill.DecayRate != 0 {
		rateInput.SetValue(strconv.FormatFloat(skill.DecayRate, 'f', -1, 64))
	}

	m.formInputs = []textinput.Model{nameInput, dateInput, rateInput}
	m.formFocus = 0
	m.formEditing = editing
	m.formSubmitting = false
	m.currentScreen = mainScreenForm
	m.errMsg = ""
	m.status = ""
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.currentScreen = mainScreenList
			m.formSubmitting = false
			m.errMsg = ""
			return m, nil
		case "tab":
			m.formInputs[m.formFocus].Blur()
			m.formFocus = (m.formFocus + 1) % len(m.formInputs)
			m.formInputs[m.formFocus].Focus()
			return m, nil
		case "shift+tab":
			m.formInputs[m.formFocus].Blur()
			m.formFocus = (m.formFocus - 1 + len(m.formInputs)) % len(m.formInputs)
			m.formInputs[m.formFocus].Focus()
			return m, nil
		case "enter":
			if m.formSubmitting {
				return m, nil
			}

			skill, err := m.parseForm()
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}

			m.errMsg = ""
			m.formSubmitting = true
			return m, m.cmdSaveSkill(skill)
		}
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) parseForm() (models.Skill, error) {
	name := strings.TrimSpace(m.formInputs[0].Value())
	if name == "" {
		return models.Skill{}, fmt.Errorf("название навыка обязательно")
	}

	lastPractice, err := models.ParseDate(strings.TrimSpace(m.formInputs[1].Value()))
	if err != nil {
		return models.Skill{}, fmt.Errorf("дата практики должна быть в формате ГГГГ-ММ-ДД")
	}

	rate, err := strconv.ParseFloat(strings.TrimSpace(m.formInputs[2].Value()), 64)
	if err != nil {
		return models.Skill{}, fmt.Errorf("скорость забывания должна быть числом")
	}
	if rate < 0.01 || rate > 0.1 {
		return models.Skill{}, fmt.Errorf("скорость забывания должна быть в пределах [0.01, 0.1]")
	}

	return models.Skill{
		Name:         name,
		LastPractice: lastPractice,
		DecayRate:    rate,
	}, nil
}

func (m mainLoopModel) viewForm() string {
	title := "НОВЫЙ НАВЫК"
	if m.formEditing {
		title = "ИЗМЕНИТЬ НАВЫК"
	}

	var b strings.Builder
	b.WriteString("Навык                │ [")
	b.WriteString(m.formInputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Последняя практика   │ [")
	b.WriteString(m.formInputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Скорость забывания   │ [")
	b.WriteString(m.formInputs[2].View())
	b.WriteString("]\n")

	if m.formSubmitting {
		b.WriteString("\n[Сохранить...]\n")
	} else {
		b.WriteString("\n[Сохранить]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Ошибка: "+m.errMsg) + "\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: сохранить")
}

// ---- report screen ----

func (m mainLoopModel) updateReport(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q", "enter":
		m.currentScreen = mainScreenList
		return m, nil
	case "r":
		m.reportLoading = true
		return m, m.cmdLoadReport(m.report.Skill.Name)
	}

	return m, nil
}

func (m mainLoopModel) viewReport() string {
	r := m.report

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Навык:              %s\n", r.Skill.Name))
	b.WriteString(fmt.Sprintf("Последняя практика: %s (%d дн. назад)\n", r.Skill.LastPractice.String(), r.DaysElapsed))
	b.WriteString(fmt.Sprintf("Текущий уровень:    %.2f%%\n", r.Score))
	b.WriteString(fmt.Sprintf("Статус:             %s\n", renderStatus(r.Status)))
	b.WriteString(fmt.Sprintf("Рекомендация:       %s\n", r.Advice))

	b.WriteString("\nКривая забывания (день 0 → сегодня):\n")
	b.WriteString(renderCurveSparkline(r.Curve))
	b.WriteString("\n")

	if r.Stale {
		b.WriteString("\n" + warningStyle.Render("⚠ Навык не практиковался больше недели") + "\n")
	}
	if r.Critical {
		b.WriteString(criticalStyle.Render("‼ Критический уровень — нужна немедленная практика") + "\n")
	}

	if len(r.Adjacent) > 0 {
		b.WriteString("\nСмежные навыки: " + strings.Join(r.Adjacent, ", ") + "\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Ошибка: "+m.errMsg) + "\n")
	}

	return renderPage("ОТЧЁТ", strings.TrimRight(b.String(), "\n"), "esc: назад │ r: обновить")
}

func renderStatus(status string) string {
	switch status {
	case decay.StatusHealthy:
		return healthyStyle.Render(status)
	case decay.StatusNeedsAttention:
		return warningStyle.Render(status)
	case decay.StatusCritical:
		return criticalStyle.Render(status)
	default:
		return status
	}
}

// ---- delete confirmation ----

func (m mainLoopModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "y":
		m.showConfirm = false
		if m.pendingDelete == "" {
			return m, nil
		}
		return m, m.cmdDeleteSkill(m.pendingDelete)
	case "n", "esc":
		m.showConfirm = false
		m.pendingDelete = ""
	}
	return m, nil
}

func (m mainLoopModel) viewConfirm() string {
	data := fmt.Sprintf("Удалить навык %q?", m.pendingDelete)
	return renderPage("ПОДТВЕРЖДЕНИЕ", data, "y: да │ n: нет")
}

// ---- commands ----

func (m mainLoopModel) cmdLoadSkills() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		skills, err := server.ListSkills(ctx)
		return skillsLoadedMsg{skills: skills, err: err}
	}
}

func (m mainLoopModel) cmdSaveSkill(skill models.Skill) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		_, err := server.SaveSkill(ctx, skill)
		return skillSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteSkill(name string) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		return skillDeletedMsg{err: server.DeleteSkill(ctx, name)}
	}
}

func (m mainLoopModel) cmdLoadReport(name string) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		report, err := server.GetReport(ctx, name)
		return reportLoadedMsg{report: report, err: err}
	}
}
