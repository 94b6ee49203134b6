package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/paperpress/paperpress-server/internal/bank"
)

// ListQuestionsHandler serves filtered slices of the question bank.
func ListQuestionsHandler(store bank.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		f := bank.Filter{
			ClassID:    q.Get("class"),
			Subject:    q.Get("subject"),
			Type:       bank.QuestionType(q.Get("type")),
			Difficulty: q.Get("difficulty"),
		}
		if v := q.Get("chapter"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "chapter must be an integer")
				return
			}
			f.Chapter = n
		}
		if v := q.Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "limit must be an integer")
				return
			}
			f.Limit = n
		}
		if v := q.Get("offset"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "offset must be an integer")
				return
			}
			f.Offset = n
		}

		qs, err := store.ListQuestions(r.Context(), f)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if qs == nil {
			qs = []bank.Question{}
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"questions": qs, "count": len(qs)})
	}
}

// BulkUpsertQuestionsHandler ingests a JSON array of bank questions.
func BulkUpsertQuestionsHandler(store bank.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var qs []bank.Question
		if err := json.NewDecoder(r.Body).Decode(&qs); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if len(qs) == 0 {
			writeError(w, http.StatusBadRequest, "no questions supplied")
			return
		}
		n, err := store.PutQuestions(r.Context(), qs)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"written": n})
	}
}
