package api

import (
	"net/http"
	"time"
)

type bookingCreateRequest struct {
	ItemID int64     `json:"item_id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

func (s *Server) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	bookerID, err := userID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var body bookingCreateRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	booking, err := s.bookings.Create(r.Context(), bookerID, body.ItemID, body.Start, body.End)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (s *Server) handleApproveBooking(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	bookingID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	approvedRaw := r.URL.Query().Get("approved")
	if approvedRaw != "true" && approvedRaw != "false" {
		writeError(w, http.StatusBadRequest, "approved query parameter is required")
		return
	}

	booking, err := s.bookings.Approve(r.Context(), ownerID, bookingID, approvedRaw == "true")
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (s *Server) handleGetBooking(w http.ResponseWriter, r *http.Request) {
	viewerID, err := userID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	bookingID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	booking, err := s.bookings.GetByID(r.Context(), viewerID, bookingID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (s *Server) handleBookerBookings(w http.ResponseWriter, r *http.Request) {
	bookerID, err := userID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	from, size := paging(r)
	bookings, err := s.bookings.GetByBookerID(r.Context(), bookerID, stateParam(r), from, size)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (s *Server) handleOwnerBookings(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	from, size := paging(r)
	bookings, err := s.bookings.GetByOwnerID(r.Context(), ownerID, stateParam(r), from, size)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (s *Server) handleExportBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := s.allRepo.GetAllBookings(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	path, err := s.reporter.WriteBookings(bookings)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="bookings.xlsx"`)
	http.ServeFile(w, r, path)
}
