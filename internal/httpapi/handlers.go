package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/roach88/dashview/internal/aggregate"
	"github.com/roach88/dashview/internal/model"
	"github.com/roach88/dashview/internal/pipeline"
	"github.com/roach88/dashview/internal/seed"
)

// PageView is the visible page plus the inputs that produced it.
type PageView struct {
	pipeline.Page
	HasPrev bool               `json:"has_prev"`
	HasNext bool               `json:"has_next"`
	Query   string             `json:"query"`
	Sort    *pipeline.SortSpec `json:"sort,omitempty"`
}

// OwnerView is the account owner with the initials shown in the account panel.
type OwnerView struct {
	seed.Owner
	Initials string `json:"initials"`
}

type queryRequest struct {
	Query string `json:"query"`
}

type sortRequest struct {
	Key string `json:"key"`
}

type pageRequest struct {
	Page int `json:"page"`
}

type pageSizeRequest struct {
	PageSize int `json:"page_size"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeOK(w, map[string]string{"session": s.sess.ID()})
}

func (s *Server) state(w http.ResponseWriter, _ *http.Request) {
	writeOK(w, s.sess.State())
}

func (s *Server) page(w http.ResponseWriter, _ *http.Request) {
	s.writePage(w)
}

func (s *Server) aggregates(w http.ResponseWriter, r *http.Request) {
	scope, err := aggregate.ParseScope(r.URL.Query().Get("scope"))
	if err != nil {
		s.fail(w, err)
		return
	}
	writeOK(w, s.sess.Aggregates(scope))
}

func (s *Server) getOwner(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	owner := s.owner
	s.mu.Unlock()
	if owner == nil {
		writeError(w, http.StatusNotFound, codeNotFound, "no owner profile")
		return
	}
	writeOK(w, OwnerView{Owner: *owner, Initials: owner.Initials()})
}

func (s *Server) setQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.sess.SetQuery(req.Query)
	s.writePage(w)
}

func (s *Server) requestSort(w http.ResponseWriter, r *http.Request) {
	var req sortRequest
	if !s.decode(w, r, &req) {
		return
	}
	if _, err := s.sess.RequestSort(model.Field(req.Key)); err != nil {
		s.reject(w, err)
		return
	}
	s.writePage(w)
}

func (s *Server) clearSort(w http.ResponseWriter, _ *http.Request) {
	s.sess.ClearSort()
	s.writePage(w)
}

func (s *Server) goToPage(w http.ResponseWriter, r *http.Request) {
	var req pageRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.sess.GoToPage(req.Page); err != nil {
		s.reject(w, err)
		return
	}
	s.writePage(w)
}

func (s *Server) setPageSize(w http.ResponseWriter, r *http.Request) {
	var req pageSizeRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.sess.SetPageSize(req.PageSize); err != nil {
		s.reject(w, err)
		return
	}
	s.writePage(w)
}

// replaceRecords accepts a seed document: a bare list of pharmacies or an
// object with a pharmacies key. The collection is persisted before the
// session changes, so a failed save leaves the session as it was.
func (s *Server) replaceRecords(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, fmt.Sprintf("failed to read body: %v", err))
		return
	}

	doc, err := seed.Parse(data)
	if err != nil {
		if model.IsInvalidInput(err) {
			s.reject(w, err)
			return
		}
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	if s.saver != nil {
		if err := s.saver.SaveCollection(r.Context(), doc.Pharmacies); err != nil {
			s.logger.Error("failed to persist collection", "records", len(doc.Pharmacies), "error", err)
			writeError(w, http.StatusInternalServerError, codeInternal, "failed to persist collection")
			return
		}
	}
	if err := s.sess.ReplaceCollection(doc.Pharmacies); err != nil {
		s.reject(w, err)
		return
	}
	if doc.SearchTerm != "" {
		s.sess.SetQuery(doc.SearchTerm)
	}
	if doc.Owner != nil {
		s.mu.Lock()
		s.owner = doc.Owner
		s.mu.Unlock()
	}
	s.writePage(w)
}

func (s *Server) writePage(w http.ResponseWriter) {
	view, err := s.sess.View()
	if err != nil {
		s.fail(w, err)
		return
	}
	writeOK(w, PageView{
		Page:    view.Page,
		HasPrev: view.Page.HasPrev(),
		HasNext: view.Page.HasNext(),
		Query:   view.Query,
		Sort:    view.Sort,
	})
}

// decode reads a JSON body into v. Unknown fields are rejected.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		msg := fmt.Sprintf("invalid request body: %v", err)
		if errors.Is(err, io.EOF) {
			msg = "request body is required"
		}
		writeError(w, http.StatusBadRequest, codeBadRequest, msg)
		return false
	}
	return true
}

// reject writes a refused mutation and counts it.
func (s *Server) reject(w http.ResponseWriter, err error) {
	if code, ok := model.CodeOf(err); ok {
		s.metrics.Rejected(string(code))
	}
	s.fail(w, err)
}

// fail writes err without counting it as a rejected mutation.
func (s *Server) fail(w http.ResponseWriter, err error) {
	if !writeModelError(w, err) {
		s.logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, codeInternal, err.Error())
	}
}
