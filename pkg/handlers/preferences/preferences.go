package preferences

import (
	"net/http"

	"github.com/chris/multicurrency-wallet/pkg/appdata"
	"github.com/chris/multicurrency-wallet/pkg/handlers/render"
	"github.com/chris/multicurrency-wallet/pkg/i18n"
	"github.com/chris/multicurrency-wallet/pkg/models"
	"github.com/chris/multicurrency-wallet/pkg/toast"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// PreferencesHandler holds the dependencies for preference, language and theme handlers.
type PreferencesHandler struct {
	State    *appdata.State
	Notifier *toast.Notifier
}

// NewPreferencesHandler creates a new PreferencesHandler.
func NewPreferencesHandler(state *appdata.State, notifier *toast.Notifier) *PreferencesHandler {
	return &PreferencesHandler{State: state, Notifier: notifier}
}

// Routes mounts the handlers on r.
func (h *PreferencesHandler) Routes(r chi.Router) {
	r.Get("/preferences", h.GetPreferences)
	r.Put("/preferences", h.PutPreferences)
	r.Post("/preferences/balances/toggle", h.ToggleBalances)
	r.Get("/language", h.GetLanguage)
	r.Put("/language", h.PutLanguage)
	r.Get("/languages", h.ListLanguages)
	r.Get("/translations", h.GetTranslations)
	r.Get("/theme", h.GetTheme)
	r.Put("/theme", h.PutTheme)
}

// LanguageBody is the request and response body of the language endpoints.
type LanguageBody struct {
	Language string `json:"language"`
}

// ThemeBody is the request and response body of the theme endpoints.
type ThemeBody struct {
	Theme models.Theme `json:"theme"`
}

func (h *PreferencesHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, http.StatusOK, h.State.Preferences())
}

// PutPreferences replaces the preferences. The language must be supported.
func (h *PreferencesHandler) PutPreferences(w http.ResponseWriter, r *http.Request) {
	var prefs models.UserPreferences
	if err := render.Decode(r, &prefs); err != nil {
		render.Error(w, http.StatusBadRequest, "%v", err)
		return
	}
	if _, ok := i18n.Parse(prefs.Language); !ok {
		render.Error(w, http.StatusUnprocessableEntity, "unsupported language %q", prefs.Language)
		return
	}

	h.State.SetPreferences(r.Context(), prefs)
	render.JSON(w, http.StatusOK, prefs)
}

// ToggleBalances shows or hides balances and tells the clients which.
func (h *PreferencesHandler) ToggleBalances(w http.ResponseWriter, r *http.Request) {
	shown := h.State.ToggleBalances(r.Context())

	lang := render.Language(r, h.State.Language())
	msg := i18n.BalancesHidden
	if shown {
		msg = i18n.BalancesShown
	}
	h.Notifier.Success(r.Context(), i18n.T(lang, msg))

	render.JSON(w, http.StatusOK, h.State.Preferences())
}

func (h *PreferencesHandler) GetLanguage(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, http.StatusOK, LanguageBody{Language: string(render.Language(r, h.State.Language()))})
}

func (h *PreferencesHandler) PutLanguage(w http.ResponseWriter, r *http.Request) {
	var body LanguageBody
	if err := render.Decode(r, &body); err != nil {
		render.Error(w, http.StatusBadRequest, "%v", err)
		return
	}
	lang, ok := i18n.Parse(body.Language)
	if !ok {
		render.Error(w, http.StatusUnprocessableEntity, "unsupported language %q", body.Language)
		return
	}

	h.State.SetLanguage(r.Context(), string(lang))
	render.JSON(w, http.StatusOK, body)
}

func (h *PreferencesHandler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, http.StatusOK, i18n.Available())
}

// GetTranslations returns the translation table of the lang query parameter, or of the
// current language when it is absent.
func (h *PreferencesHandler) GetTranslations(w http.ResponseWriter, r *http.Request) {
	var code string
	if err := runtime.BindQueryParameter("form", true, false, "lang", r.URL.Query(), &code); err != nil {
		render.Error(w, http.StatusBadRequest, "Invalid format for parameter lang: %v", err)
		return
	}

	lang := render.Language(r, h.State.Language())
	if code != "" {
		var ok bool
		if lang, ok = i18n.Parse(code); !ok {
			render.Error(w, http.StatusNotFound, "unsupported language %q", code)
			return
		}
	}
	render.JSON(w, http.StatusOK, i18n.Table(lang))
}

func (h *PreferencesHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, http.StatusOK, ThemeBody{Theme: h.State.Theme()})
}

func (h *PreferencesHandler) PutTheme(w http.ResponseWriter, r *http.Request) {
	var body ThemeBody
	if err := render.Decode(r, &body); err != nil {
		render.Error(w, http.StatusBadRequest, "%v", err)
		return
	}
	if !body.Theme.Valid() {
		render.Error(w, http.StatusUnprocessableEntity, "unsupported theme %q", body.Theme)
		return
	}

	h.State.SetTheme(r.Context(), body.Theme)
	render.JSON(w, http.StatusOK, body)
}
