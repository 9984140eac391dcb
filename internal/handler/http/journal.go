package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/utils"
	"github.com/MKhiriev/go-journal/internal/view"
	"github.com/MKhiriev/go-journal/models"
)

// Form field names posted by the journal page.
const (
	entryIDField        = "journal-entry-id"
	entryTitleField     = "journal-entry-title"
	entryTextField      = "journal-entry-text"
	newEntryTitleField  = "new-entry-title"
	newEntryTextField   = "new-entry-text"
	editButtonTitle     = "edit-button-title"
	editButtonText      = "edit-button-text"
	editEntryTitleField = "edit-entry-title"
	editEntryTextField  = "edit-entry-text"
)

func (h *Handler) journal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	state, err := sessionFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		utils.SeeOther(w, r, loginPath)
		return
	}

	// failures are only logged; the browser lands on the login page
	journalView, newState, err := h.services.JournalService.ListEntries(ctx, state)
	if err != nil {
		log.Err(err).Msg("listing journal entries failed")
		utils.SeeOther(w, r, loginPath)
		return
	}

	if newState != state {
		if err := h.sessions.Save(w, newState); err != nil {
			log.Err(err).Msg("saving session failed")
		}
	}

	h.render(w, r, view.PageJournal, journalView)
}

func (h *Handler) selectEntry(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "select entry", func(r *http.Request, state models.SessionState) (models.SessionState, error) {
		ref := entryRefFromForm(r, entryTitleField, entryTextField)
		return h.services.JournalService.SelectEntry(r.Context(), state, ref)
	})
}

func (h *Handler) newEntry(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "create entry", func(r *http.Request, state models.SessionState) (models.SessionState, error) {
		return h.services.JournalService.CreateEntry(r.Context(), state, r.FormValue(newEntryTitleField), r.FormValue(newEntryTextField))
	})
}

func (h *Handler) startEditing(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "start editing", func(r *http.Request, state models.SessionState) (models.SessionState, error) {
		ref := entryRefFromForm(r, editButtonTitle, editButtonText)
		return h.services.JournalService.StartEditing(r.Context(), state, ref)
	})
}

func (h *Handler) cancelEditing(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "cancel editing", func(r *http.Request, state models.SessionState) (models.SessionState, error) {
		return h.services.JournalService.CancelEditing(r.Context(), state), nil
	})
}

func (h *Handler) finishEditing(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "finish editing", func(r *http.Request, state models.SessionState) (models.SessionState, error) {
		return h.services.JournalService.FinishEditing(r.Context(), state, r.FormValue(editEntryTitleField), r.FormValue(editEntryTextField))
	})
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "delete entry", func(r *http.Request, state models.SessionState) (models.SessionState, error) {
		return h.services.JournalService.DeleteEntry(r.Context(), state)
	})
}

// mutate runs op with the request's session, stores whatever state op
// returns and redirects to the journal. Errors are logged only; the journal
// page is shown in every case.
func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, name string, op func(*http.Request, models.SessionState) (models.SessionState, error)) {
	log := logger.FromRequest(r)

	state, err := sessionFromRequest(r)
	if err != nil {
		log.Err(err).Str("operation", name).Send()
		utils.SeeOther(w, r, loginPath)
		return
	}

	newState, err := op(r, state)
	if err != nil {
		log.Err(err).Str("operation", name).Msg("journal operation failed")
	}

	if err := h.sessions.Save(w, newState); err != nil {
		log.Err(err).Str("operation", name).Msg("saving session failed")
	}

	utils.SeeOther(w, r, journalPath)
}

// entryRefFromForm reads the hidden entry id plus the given title and text
// fields. A missing or malformed id leaves the reference content-only.
func entryRefFromForm(r *http.Request, titleField, textField string) models.EntryRef {
	id, err := strconv.ParseInt(r.FormValue(entryIDField), 10, 64)
	if err != nil || id < 0 {
		id = 0
	}

	return models.EntryRef{
		ID:    id,
		Title: r.FormValue(titleField),
		Text:  r.FormValue(textField),
	}
}
