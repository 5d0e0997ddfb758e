package tui

import (
	"github.com/MKhiriev/skillfade/models"
)

type authDoneMsg struct {
	userID int64
	err    error
}

type skillsLoadedMsg struct {
	skills []models.Skill
	err    error
}

type skillSavedMsg struct {
	err error
}

type skillDeletedMsg struct {
	err error
}

type reportLoadedMsg struct {
	report models.SkillReport
	err    error
}
