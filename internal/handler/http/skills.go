package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/skillfade/internal/logger"
	"github.com/MKhiriev/skillfade/internal/utils"
	"github.com/MKhiriev/skillfade/models"
)

// saveSkill creates or overwrites the skill named in the request body.
// The upsert key is (user, skill name): posting an existing name replaces
// its last-practice date and decay rate.
func (h *Handler) saveSkill(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.saveSkill").Msg("no userID in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var skill models.Skill
	if err := json.NewDecoder(r.Body).Decode(&skill); err != nil {
		log.Err(err).Str("func", "*Handler.saveSkill").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	skill.UserID = userID

	saved, err := h.services.SkillService.SaveSkill(r.Context(), skill)
	if err != nil {
		log.Err(err).Str("func", "*Handler.saveSkill").Msg("error saving skill")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) listSkills(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.listSkills").Msg("no userID in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	skills, err := h.services.SkillService.ListSkills(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listSkills").Msg("error listing skills")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, skills, http.StatusOK)
}

func (h *Handler) getSkill(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.getSkill").Msg("no userID in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	name := chi.URLParam(r, "name")

	skill, err := h.services.SkillService.GetSkill(r.Context(), userID, name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getSkill").Str("skill", name).Msg("error getting skill")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, skill, http.StatusOK)
}

// deleteSkill removes the named skill. The response is 204 whether or not
// the skill existed: after the call it is gone either way.
func (h *Handler) deleteSkill(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.deleteSkill").Msg("no userID in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	name := chi.URLParam(r, "name")

	if err := h.services.SkillService.DeleteSkill(r.Context(), userID, name); err != nil {
		log.Err(err).Str("func", "*Handler.deleteSkill").Str("skill", name).Msg("error deleting skill")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) skillReport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.skillReport").Msg("no userID in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	name := chi.URLParam(r, "name")

	report, err := h.services.SkillService.BuildReport(r.Context(), userID, name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.skillReport").Str("skill", name).Msg("error building skill report")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}
