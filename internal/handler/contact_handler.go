package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/VETechnologiesCo/VPCO/internal/model"
	"github.com/VETechnologiesCo/VPCO/internal/service"
)

// maxContactBody matches the 100kb default body limit of common JSON
// middleware.
const maxContactBody = 100 << 10

const (
	msgContactSubmitted = "Contact form submitted successfully"
	msgInvalidBody      = "Invalid request body"
	msgBodyTooLarge     = "Request body too large"
)

// ContactHandler handles contact form submission and listing.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest holds the three submitted fields as text.
type submitRequest struct {
	Name    string
	Email   string
	Message string
}

type submitResponse struct {
	ID int64 `json:"id"`
}

// Submit handles POST /api/contact.
// Accepts JSON or URL-encoded form bodies; name, email and message are required.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)

	req, err := decodeSubmitRequest(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
			return
		}
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	c, err := h.contactService.Submit(r.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			writeError(w, http.StatusBadRequest, ve.Message)
			return
		}
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, envelope{
		Success: true,
		Message: msgContactSubmitted,
		Data:    submitResponse{ID: c.ID},
	})
}

// errNonScalarField rejects objects and arrays in place of a field value.
var errNonScalarField = errors.New("contact field must be a string, number or boolean")

// decodeSubmitRequest reads an application/json or URL-encoded form body.
// Any other Content-Type, or an empty body, decodes to an empty request so
// that validation reports the missing fields.
func decodeSubmitRequest(r *http.Request) (submitRequest, error) {
	var req submitRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return req, err
		}
		req.Name = r.PostForm.Get("name")
		req.Email = r.PostForm.Get("email")
		req.Message = r.PostForm.Get("message")
		return req, nil
	case "application/json":
	default:
		return req, nil
	}

	// Keys are matched exactly, unlike encoding/json struct decoding.
	var body map[string]any
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return req, nil
		}
		return req, err
	}

	var err error
	if req.Name, err = fieldText(body["name"]); err != nil {
		return req, err
	}
	if req.Email, err = fieldText(body["email"]); err != nil {
		return req, err
	}
	if req.Message, err = fieldText(body["message"]); err != nil {
		return req, err
	}
	return req, nil
}

// fieldText converts a decoded JSON value to field text. Falsy scalars
// (null, false, zero) become "" and so count as missing.
func fieldText(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		if !v {
			return "", nil
		}
		return "true", nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return "", err
		}
		if f == 0 {
			return "", nil
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	default:
		return "", errNonScalarField
	}
}

// List handles GET /api/contacts.
// Supports optional query params limit and offset; by default every
// submission is returned, oldest first.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	var opts model.ContactListOptions
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			opts.Limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	contacts, err := h.contactService.List(r.Context(), opts)
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	if contacts == nil {
		contacts = []*model.ContactSubmission{}
	}
	writeData(w, http.StatusOK, contacts)
}
