package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/advert-generator/internal/form"
	"github.com/jonathan/advert-generator/internal/rendering"
	"github.com/jonathan/advert-generator/internal/schemas"
	"github.com/jonathan/advert-generator/internal/session"
	"github.com/jonathan/advert-generator/internal/types"
)

// maxBodyBytes bounds form and JSON request bodies.
const maxBodyBytes int64 = 1 << 20

// Form field names and the submit action
const (
	fieldJobTitle   = "job_title"
	fieldLocation   = "location"
	fieldRelocation = "relocation_applicable"
	fieldRawNotes   = "raw_notes"
	fieldAction     = "action"
	actionGenerate  = "generate"
)

const rateLimitNotice = "Too many generation requests. Please try again later."

// StateResponse represents the response for /api/state
type StateResponse struct {
	Form           types.JobFormInput     `json:"form"`
	ShowRelocation bool                   `json:"show_relocation"`
	CanSubmit      bool                   `json:"can_submit"`
	Result         types.GenerationResult `json:"result"`
}

// handlePage renders the form page with the current session state
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusOK, "")
}

// handleFormPost applies the posted fields to the session and, when the
// generate button was pressed, runs a generation before re-rendering.
func (s *Server) handleFormPost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		s.renderPage(w, r, http.StatusBadRequest, "Invalid form submission.")
		return
	}

	if err := s.session.Update(func(f *form.State) error {
		return applyFormValues(f, r)
	}); err != nil {
		s.renderPage(w, r, HTTPStatus(err), userNotice(err))
		return
	}

	if r.PostFormValue(fieldAction) != actionGenerate {
		s.renderPage(w, r, http.StatusOK, "")
		return
	}

	if err := validateSubmission(s.session.Form()); err != nil {
		s.renderPage(w, r, HTTPStatus(err), userNotice(err))
		return
	}

	if s.session.CanSubmit() {
		if allowed, info := s.allowGeneration(r); !allowed {
			s.setRateLimitHeaders(w, info)
			s.markRateLimited(w, r, info)
			s.renderPage(w, r, http.StatusTooManyRequests, rateLimitNotice)
			return
		}
	}

	if _, err := s.session.Submit(r.Context()); err != nil {
		s.requestLogger(r).Info("submission rejected", zap.Error(err))
		s.renderPage(w, r, HTTPStatus(err), userNotice(err))
		return
	}

	s.renderPage(w, r, http.StatusOK, "")
}

// applyFormValues runs the posted fields through the form setters in field order.
func applyFormValues(f *form.State, r *http.Request) error {
	f.SetJobTitle(r.PostFormValue(fieldJobTitle))

	if raw := r.PostFormValue(fieldLocation); raw != "" {
		loc, err := types.ParseLocation(raw)
		if err != nil {
			return &ErrValidation{Field: fieldLocation, Message: "Please choose Budapest, Denver or Remote."}
		}
		if err := f.SetLocation(loc); err != nil {
			return &ErrValidation{Field: fieldLocation, Message: err.Error()}
		}
	}

	f.SetRelocationApplicable(r.PostFormValue(fieldRelocation) == "true")
	f.SetRawNotes(r.PostFormValue(fieldRawNotes))
	return nil
}

// validateSubmission checks field limits on a form that is about to be
// submitted. Incomplete forms are left to the session, which rejects them.
func validateSubmission(input types.JobFormInput) error {
	if !form.CanSubmit(input) {
		return nil
	}
	if err := input.Validate(); err != nil {
		return validationFromValidator(err)
	}
	return nil
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, notice string) {
	data, err := rendering.NewPageData(s.session.Form(), s.session.CanSubmit(), s.session.Result())
	if err != nil {
		s.requestLogger(r).Error("failed to render advert markdown", zap.Error(err))
	}
	data.Notice = notice

	var buf bytes.Buffer
	if err := rendering.RenderPage(&buf, data); err != nil {
		s.requestLogger(r).Error("failed to render page", zap.Error(err))
		http.Error(w, session.UnexpectedErrorMessage, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		s.requestLogger(r).Debug("failed to write page", zap.Error(err))
	}
}

// handleAdvertMarkdown returns the last successful advert as raw markdown
func (s *Server) handleAdvertMarkdown(w http.ResponseWriter, r *http.Request) {
	result := s.session.Result()
	if result.Status != types.StatusSuccess {
		s.errorResponse(w, http.StatusNotFound, "No advert has been generated yet")
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", `inline; filename="advert.md"`)
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, result.Content); err != nil {
		s.requestLogger(r).Debug("failed to write markdown", zap.Error(err))
	}
}

// handleGenerate runs one stateless generation from a JSON form input.
// Generation failures are reported in the result with status 200.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	input, err := s.decodeJobForm(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	sess, err := session.NewWithInput(s.generator, s.logger.Named("session"), input)
	if err != nil {
		s.writeError(w, &ErrValidation{Field: fieldLocation, Message: err.Error()})
		return
	}

	if err := validateSubmission(sess.Form()); err != nil {
		s.writeError(w, err)
		return
	}

	result, err := sess.Submit(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// decodeJobForm validates the body against the job form schema and decodes
// it on top of the form defaults.
func (s *Server) decodeJobForm(w http.ResponseWriter, r *http.Request) (types.JobFormInput, error) {
	input := types.DefaultJobFormInput()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return input, &ErrBodyTooLarge{Limit: tooLarge.Limit}
		}
		return input, &ErrValidation{Field: "body", Message: "failed to read request body"}
	}

	if err := schemas.ValidateJobForm(body); err != nil {
		return input, err
	}
	if err := json.Unmarshal(body, &input); err != nil {
		return input, &ErrValidation{Field: "body", Message: "Invalid request body: " + err.Error()}
	}
	return input, nil
}

// writeError maps err to a status and writes a JSON error body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)

	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		s.jsonResponse(w, status, map[string]any{
			"error":   "invalid request body",
			"details": schemaErr.Errors,
		})
		return
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("unexpected request error", zap.Error(err))
		s.errorResponse(w, status, session.UnexpectedErrorMessage)
		return
	}
	s.errorResponse(w, status, err.Error())
}

// handleState returns the page session as JSON
func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	input := s.session.Form()
	s.jsonResponse(w, http.StatusOK, StateResponse{
		Form:           input,
		ShowRelocation: input.Location.OffersRelocation(),
		CanSubmit:      s.session.CanSubmit(),
		Result:         s.session.Result(),
	})
}
