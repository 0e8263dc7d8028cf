package handler

import (
	"context"
	"net/http"

	"github.com/forgo/phonebook/internal/model"
)

// infoTimeLayout renders timestamps like "Tue Mar 03 2026 10:04:05 GMT+0200 (EET)"
const infoTimeLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

// PersonService is the phonebook behavior the handler depends on.
// *service.PhonebookService satisfies it.
type PersonService interface {
	List(ctx context.Context) ([]*model.Person, error)
	Get(ctx context.Context, id string) (*model.Person, error)
	Create(ctx context.Context, req *model.CreatePersonRequest) (*model.Person, error)
	UpdateNumber(ctx context.Context, id string, req *model.UpdateNumberRequest) (*model.Person, error)
	Delete(ctx context.Context, id string) error
	Info(ctx context.Context) (*model.PhonebookInfo, error)
}

// PersonHandler handles phonebook endpoints
type PersonHandler struct {
	personService PersonService
}

// NewPersonHandler creates a new person handler
func NewPersonHandler(personService PersonService) *PersonHandler {
	return &PersonHandler{
		personService: personService,
	}
}

// RegisterRoutes registers the phonebook routes on the mux
func (h *PersonHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/persons", h.List)
	mux.HandleFunc("POST /api/persons", h.Create)
	mux.HandleFunc("GET /api/persons/{id}", h.Get)
	mux.HandleFunc("PUT /api/persons/{id}", h.Update)
	mux.HandleFunc("DELETE /api/persons/{id}", h.Delete)

	mux.HandleFunc("GET /info", h.Info)
}

// List handles GET /api/persons - list every person
func (h *PersonHandler) List(w http.ResponseWriter, r *http.Request) {
	people, err := h.personService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, people)
}

// Get handles GET /api/persons/{id} - get one person
func (h *PersonHandler) Get(w http.ResponseWriter, r *http.Request) {
	person, err := h.personService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, person)
}

// Create handles POST /api/persons - add a person
func (h *PersonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePersonRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError(model.MsgMalformattedBody))
		return
	}

	person, err := h.personService.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, person)
}

// Update handles PUT /api/persons/{id} - change a person's number
func (h *PersonHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := model.ParsePersonID(id); !ok {
		WriteError(w, model.NewMalformattedIDError())
		return
	}

	var req model.UpdateNumberRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError(model.MsgMalformattedBody))
		return
	}

	person, err := h.personService.UpdateNumber(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, person)
}

// Delete handles DELETE /api/persons/{id} - remove a person
func (h *PersonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.personService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteNoContent(w)
}

// Info handles GET /info - phonebook size as an HTML snippet
func (h *PersonHandler) Info(w http.ResponseWriter, r *http.Request) {
	info, err := h.personService.Info(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteHTML(w, "<p>Phonebook has info for %d people</p>\n<p>%s</p>",
		info.Count, info.GeneratedAt.Format(infoTimeLayout))
}
