package transfers

import (
	"errors"
	"net/http"

	"github.com/chris/multicurrency-wallet/pkg/appdata"
	"github.com/chris/multicurrency-wallet/pkg/handlers/render"
	"github.com/chris/multicurrency-wallet/pkg/i18n"
	"github.com/chris/multicurrency-wallet/pkg/toast"
	"github.com/chris/multicurrency-wallet/pkg/transfer"
	"github.com/go-chi/chi/v5"
)

// TransfersHandler holds the dependencies for the transfer wizard handlers.
type TransfersHandler struct {
	Sessions *transfer.Sessions
	State    *appdata.State
	Notifier *toast.Notifier
}

// NewTransfersHandler creates a new TransfersHandler.
func NewTransfersHandler(sessions *transfer.Sessions, state *appdata.State, notifier *toast.Notifier) *TransfersHandler {
	return &TransfersHandler{Sessions: sessions, State: state, Notifier: notifier}
}

// Routes mounts the handlers on r.
func (h *TransfersHandler) Routes(r chi.Router) {
	r.Get("/transfers/countries", h.ListCountries)
	r.Post("/transfers", h.StartTransfer)
	r.Get("/transfers/{id}", h.GetTransfer)
	r.Patch("/transfers/{id}", h.UpdateTransfer)
	r.Delete("/transfers/{id}", h.DeleteTransfer)
	r.Post("/transfers/{id}/next", h.NextStep)
	r.Post("/transfers/{id}/back", h.PreviousStep)
	r.Post("/transfers/{id}/submit", h.SubmitTransfer)
}

func (h *TransfersHandler) ListCountries(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, http.StatusOK, transfer.Countries)
}

// StartTransfer opens a new wizard on its first step.
func (h *TransfersHandler) StartTransfer(w http.ResponseWriter, r *http.Request) {
	f := h.Sessions.Start()
	render.JSON(w, http.StatusCreated, f.State())
}

func (h *TransfersHandler) GetTransfer(w http.ResponseWriter, r *http.Request) {
	f, ok := h.flow(w, r)
	if !ok {
		return
	}
	render.JSON(w, http.StatusOK, f.State())
}

// UpdateTransfer merges the fields present in the body into the form.
func (h *TransfersHandler) UpdateTransfer(w http.ResponseWriter, r *http.Request) {
	f, ok := h.flow(w, r)
	if !ok {
		return
	}

	form := f.State().Form
	if err := render.Decode(r, &form); err != nil {
		render.Error(w, http.StatusBadRequest, "%v", err)
		return
	}
	if err := f.SetForm(form); err != nil {
		render.Error(w, http.StatusConflict, "%v", err)
		return
	}
	render.JSON(w, http.StatusOK, f.State())
}

func (h *TransfersHandler) DeleteTransfer(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Delete(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// NextStep advances the wizard when the current step is valid.
func (h *TransfersHandler) NextStep(w http.ResponseWriter, r *http.Request) {
	f, ok := h.flow(w, r)
	if !ok {
		return
	}

	if err := f.Next(); err != nil {
		var verr *transfer.ValidationError
		if errors.As(err, &verr) {
			render.Validation(w, h.language(r), verr)
			return
		}
		render.Error(w, http.StatusInternalServerError, "Failed to advance transfer: %v", err)
		return
	}
	render.JSON(w, http.StatusOK, f.State())
}

func (h *TransfersHandler) PreviousStep(w http.ResponseWriter, r *http.Request) {
	f, ok := h.flow(w, r)
	if !ok {
		return
	}
	f.Back()
	render.JSON(w, http.StatusOK, f.State())
}

// SubmitTransfer sends the transfer. It returns once the scheduler has accepted it.
func (h *TransfersHandler) SubmitTransfer(w http.ResponseWriter, r *http.Request) {
	f, ok := h.flow(w, r)
	if !ok {
		return
	}
	lang := h.language(r)

	tx, err := f.Submit(r.Context())
	if err != nil {
		var verr *transfer.ValidationError
		switch {
		case errors.As(err, &verr):
			render.Validation(w, lang, verr)
		case errors.Is(err, transfer.ErrNotFinalStep):
			render.Error(w, http.StatusConflict, "%v", err)
		case errors.Is(err, transfer.ErrSubmitInProgress):
			render.Error(w, http.StatusConflict, "%s", i18n.T(lang, i18n.TransferInProgress))
		default:
			h.Notifier.Error(r.Context(), i18n.T(lang, i18n.TransferFailed))
			render.Error(w, http.StatusBadGateway, "%s", i18n.T(lang, i18n.TransferFailed))
		}
		return
	}

	h.Notifier.Success(r.Context(), i18n.T(lang, i18n.TransferSent))
	render.JSON(w, http.StatusAccepted, tx)
}

func (h *TransfersHandler) flow(w http.ResponseWriter, r *http.Request) (*transfer.Flow, bool) {
	id := chi.URLParam(r, "id")
	f, err := h.Sessions.Get(id)
	if err != nil {
		render.Error(w, http.StatusNotFound, "transfer %s not found", id)
		return nil, false
	}
	return f, true
}

func (h *TransfersHandler) language(r *http.Request) i18n.Language {
	return render.Language(r, h.State.Language())
}
