package handlers

import (
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"toyland-backend/internal/errs"
	"toyland-backend/internal/middleware"
	"toyland-backend/internal/models"
	"toyland-backend/internal/respond"
	"toyland-backend/internal/validation"
)

type ToyHandler struct {
	toys ToyStore
}

func NewToyHandler(toys ToyStore) *ToyHandler {
	return &ToyHandler{
		toys: toys,
	}
}

// --- Request types ---

type CreateToyRequest struct {
	ToyName     string  `json:"toyName" validate:"required,max=200"`
	SellerName  string  `json:"sellerName" validate:"max=200"`
	PostedBy    string  `json:"postedBy" validate:"required,email"`
	Category    string  `json:"category" validate:"max=100"`
	Price       float64 `json:"price" validate:"gte=0"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
	Quantity    int64   `json:"quantity" validate:"gte=0"`
	Description string  `json:"description" validate:"max=5000"`
	URL         string  `json:"url" validate:"omitempty,url"`

	// Extra holds every other body field; it is stored alongside the listing.
	Extra map[string]interface{} `json:"-" validate:"-"`
}

var createToyFields = map[string]struct{}{
	"toyName": {}, "sellerName": {}, "postedBy": {}, "category": {}, "price": {},
	"rating": {}, "quantity": {}, "description": {}, "url": {},
}

func (req *CreateToyRequest) UnmarshalJSON(data []byte) error {
	type fields CreateToyRequest
	if err := json.Unmarshal(data, (*fields)(req)); err != nil {
		return err
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	for key := range doc {
		_, known := createToyFields[key]
		_, serverOwned := models.ToyFields[key]
		if known || serverOwned {
			delete(doc, key)
		}
	}
	if len(doc) > 0 {
		req.Extra = doc
	}
	return nil
}

// extraFieldErrors rejects extra keys MongoDB cannot store as field names.
func (req *CreateToyRequest) extraFieldErrors() []errs.FieldError {
	var fields []errs.FieldError
	for key := range req.Extra {
		if key == "" || strings.HasPrefix(key, "$") || strings.Contains(key, ".") {
			fields = append(fields, errs.FieldError{Field: key, Error: "is not allowed"})
		}
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })
	return fields
}

func (req *CreateToyRequest) toModel() *models.Toy {
	return &models.Toy{
		Name:        req.ToyName,
		SellerName:  req.SellerName,
		PostedBy:    req.PostedBy,
		Category:    req.Category,
		Price:       models.Number(req.Price),
		Rating:      models.Number(req.Rating),
		Quantity:    models.Count(req.Quantity),
		Description: req.Description,
		URL:         req.URL,
		Extra:       req.Extra,
	}
}

// UpdateToyRequest carries the five fields an edit overwrites.
type UpdateToyRequest struct {
	ToyName     string  `json:"toyName" validate:"required,max=200"`
	Description string  `json:"description" validate:"max=5000"`
	Price       float64 `json:"price" validate:"gte=0"`
	Quantity    int64   `json:"quantity" validate:"gte=0"`
	URL         string  `json:"url" validate:"omitempty,url"`
}

func (req *UpdateToyRequest) toModel() models.ToyUpdate {
	return models.ToyUpdate{
		Name:        req.ToyName,
		Description: req.Description,
		Price:       models.Number(req.Price),
		Quantity:    models.Count(req.Quantity),
		URL:         req.URL,
	}
}

// --- GET /toys ---

func (h *ToyHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := models.NewToyPage(q.Get("page"), q.Get("limit"), q.Get("category"))

	toys, err := h.toys.List(r.Context(), page)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toys)
}

// --- GET /toysTitle/{text} ---

func (h *ToyHandler) Search(w http.ResponseWriter, r *http.Request) {
	toys, err := h.toys.SearchByName(r.Context(), pathParam(r, "text"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toys)
}

// --- GET /toys/{id} and GET /updateToy/{id} ---

func (h *ToyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	toy, err := h.toys.FindByID(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if toy == nil {
		respond.Error(w, r, errs.NewNotFoundError("toy not found"))
		return
	}
	respond.JSON(w, http.StatusOK, toy)
}

// --- GET /totalToys ---

func (h *ToyHandler) Count(w http.ResponseWriter, r *http.Request) {
	n, err := h.toys.EstimatedCount(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, models.CountResult{TotalItems: n})
}

// --- GET /myToys/{email} ---

func (h *ToyHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	toys, err := h.toys.FindByOwner(r.Context(), pathParam(r, "email"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toys)
}

// --- POST /toys ---

func (h *ToyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateToyRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	// With the write guard on, listings are always posted as the caller.
	if caller := middleware.GetEmail(r.Context()); caller != "" {
		if req.PostedBy == "" {
			req.PostedBy = caller
		} else if !strings.EqualFold(req.PostedBy, caller) {
			respond.Error(w, r, errs.NewForbiddenError("postedBy must match the authenticated user"))
			return
		}
	}

	if err := validation.Struct(&req); err != nil {
		respond.Error(w, r, err)
		return
	}
	if fields := req.extraFieldErrors(); len(fields) > 0 {
		respond.Error(w, r, errs.ValidationError(fields))
		return
	}

	result, err := h.toys.Create(r.Context(), req.toModel())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, result)
}

// --- PUT /updateToy/{id} ---

func (h *ToyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req UpdateToyRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}
	if err := validation.Struct(&req); err != nil {
		respond.Error(w, r, err)
		return
	}

	result, err := h.toys.Upsert(r.Context(), id, req.toModel())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, result)
}

// --- DELETE /updateToy/{id} ---

func (h *ToyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	result, err := h.toys.Delete(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, result)
}

// pathParam returns the decoded value of a chi path parameter. chi matches on
// RawPath when the request has one, so only then is the value still escaped.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return raw
	}
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
