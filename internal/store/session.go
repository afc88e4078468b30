package store

import (
	"context"
	"fmt"

	"github.com/abhisek/studiz/ent"
	"github.com/abhisek/studiz/ent/studysession"
)

// sessionRepo implements SessionRepo backed by ent.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Create(ctx context.Context, data CreateSessionData) (*StudySession, error) {
	builder := r.client.StudySession.Create().
		SetTopic(data.Topic).
		SetDurationMinutes(data.DurationMinutes).
		SetCompleted(data.Completed).
		SetNotes(data.Notes)

	if !data.Date.IsZero() {
		builder = builder.SetDate(data.Date)
	}
	if data.DifficultyRating != 0 {
		builder = builder.SetDifficultyRating(data.DifficultyRating)
	}
	if data.FocusLevel != 0 {
		builder = builder.SetFocusLevel(data.FocusLevel)
	}

	ss, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save study session: %w", err)
	}
	return sessionFromEnt(ss), nil
}

func (r *sessionRepo) Get(ctx context.Context, id int) (*StudySession, error) {
	ss, err := r.client.StudySession.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get study session %d: %w", id, err)
	}
	return sessionFromEnt(ss), nil
}

func (r *sessionRepo) List(ctx context.Context, opts SessionQueryOpts) ([]StudySession, error) {
	q := r.client.StudySession.Query().
		Order(ent.Desc(studysession.FieldDate), ent.Desc(studysession.FieldID))

	if opts.Topic != "" {
		q = q.Where(studysession.Topic(opts.Topic))
	}
	if opts.CompletedOnly {
		q = q.Where(studysession.Completed(true))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list study sessions: %w", err)
	}

	sessions := make([]StudySession, len(rows))
	for i, ss := range rows {
		sessions[i] = *sessionFromEnt(ss)
	}
	return sessions, nil
}

func (r *sessionRepo) Update(ctx context.Context, id int, upd SessionUpdate) (*StudySession, error) {
	builder := r.client.StudySession.UpdateOneID(id)

	if upd.Completed != nil {
		builder = builder.SetCompleted(*upd.Completed)
	}
	if upd.Notes != nil {
		builder = builder.SetNotes(*upd.Notes)
	}
	if upd.DifficultyRating != nil {
		builder = builder.SetDifficultyRating(*upd.DifficultyRating)
	}
	if upd.FocusLevel != nil {
		builder = builder.SetFocusLevel(*upd.FocusLevel)
	}

	ss, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update study session %d: %w", id, err)
	}
	return sessionFromEnt(ss), nil
}

func (r *sessionRepo) Delete(ctx context.Context, id int) error {
	if err := r.client.StudySession.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("delete study session %d: %w", id, err)
	}
	return nil
}

func sessionFromEnt(ss *ent.StudySession) *StudySession {
	return &StudySession{
		ID:               ss.ID,
		Topic:            ss.Topic,
		DurationMinutes:  ss.DurationMinutes,
		Completed:        ss.Completed,
		Date:             ss.Date,
		Notes:            ss.Notes,
		DifficultyRating: ss.DifficultyRating,
		FocusLevel:       ss.FocusLevel,
	}
}
