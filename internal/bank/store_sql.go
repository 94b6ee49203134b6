package bank

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store is the narrow surface handlers talk to.
type Store interface {
	ListQuestions(ctx context.Context, f Filter) ([]Question, error)
	PutQuestions(ctx context.Context, qs []Question) (int, error)
	Count(ctx context.Context) (int, error)
}

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

const defaultListLimit = 200

func (s *SQLStore) ListQuestions(ctx context.Context, f Filter) ([]Question, error) {
	var (
		where []string
		args  []interface{}
	)
	add := func(clause string, v interface{}) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}
	if f.ClassID != "" {
		add("class_id=$%d", f.ClassID)
	}
	if f.Subject != "" {
		add("subject=$%d", f.Subject)
	}
	if f.Type != "" {
		add("type=$%d", string(f.Type))
	}
	if f.Difficulty != "" {
		add("difficulty=$%d", f.Difficulty)
	}
	if f.Chapter > 0 {
		add("chapter_number=$%d", f.Chapter)
	}

	q := `SELECT id,class_id,subject,chapter_number,chapter_name,type,question_text,options_json,correct_option,difficulty,marks FROM questions`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY class_id, subject, chapter_number, id"

	limit := f.Limit
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	args = append(args, limit)
	q += fmt.Sprintf(" LIMIT $%d", len(args))
	if f.Offset > 0 {
		args = append(args, f.Offset)
		q += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Question
	for rows.Next() {
		var (
			qu       Question
			optsJSON sql.NullString
			correct  sql.NullInt64
		)
		if err := rows.Scan(&qu.ID, &qu.ClassID, &qu.Subject, &qu.ChapterNumber, &qu.ChapterName,
			&qu.Type, &qu.QuestionText, &optsJSON, &correct, &qu.Difficulty, &qu.Marks); err != nil {
			return nil, err
		}
		if optsJSON.Valid && optsJSON.String != "" {
			if err := json.Unmarshal([]byte(optsJSON.String), &qu.Options); err != nil {
				return nil, fmt.Errorf("question %s: bad options json: %w", qu.ID, err)
			}
		}
		if correct.Valid {
			c := int(correct.Int64)
			qu.CorrectOption = &c
		}
		out = append(out, qu)
	}
	return out, rows.Err()
}

// PutQuestions upserts a batch in one transaction. Questions without an id get
// one assigned. Returns the number of rows written.
func (s *SQLStore) PutQuestions(ctx context.Context, qs []Question) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	const stmt = `INSERT INTO questions
		(id,class_id,subject,chapter_number,chapter_name,type,question_text,options_json,correct_option,difficulty,marks,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (id) DO UPDATE SET
			class_id=EXCLUDED.class_id, subject=EXCLUDED.subject,
			chapter_number=EXCLUDED.chapter_number, chapter_name=EXCLUDED.chapter_name,
			type=EXCLUDED.type, question_text=EXCLUDED.question_text,
			options_json=EXCLUDED.options_json, correct_option=EXCLUDED.correct_option,
			difficulty=EXCLUDED.difficulty, marks=EXCLUDED.marks`

	now := time.Now().Unix()
	written := 0
	for _, q := range qs {
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		if q.Difficulty == "" {
			q.Difficulty = "medium"
		}
		var optsJSON interface{}
		if q.Type == TypeMCQ {
			b, err := json.Marshal(q.Options)
			if err != nil {
				return written, err
			}
			optsJSON = string(b)
		}
		var correct interface{}
		if q.CorrectOption != nil {
			correct = *q.CorrectOption
		}
		if _, err := tx.ExecContext(ctx, stmt,
			q.ID, q.ClassID, q.Subject, q.ChapterNumber, q.ChapterName,
			string(q.Type), q.QuestionText, optsJSON, correct, q.Difficulty, q.Marks, now); err != nil {
			return written, fmt.Errorf("question %s: %w", q.ID, err)
		}
		written++
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return written, nil
}

func (s *SQLStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&n)
	return n, err
}
