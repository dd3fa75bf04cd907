package store

import (
	"context"
	"fmt"

	"github.com/abhisek/stresswatch/ent"
	"github.com/abhisek/stresswatch/ent/ingestevent"
)

func (r *eventRepo) AppendIngest(ctx context.Context, data IngestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.IngestEvent.Create().
		SetSequence(seqNum).
		SetEventID(data.EventID).
		SetStudentID(data.StudentID).
		SetKind(data.Kind).
		SetDetail(data.Detail).
		SetRiskBefore(data.RiskBefore).
		SetRiskAfter(data.RiskAfter).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save ingest event: %w", err)
	}

	return nil
}

func (r *eventRepo) RecentIngests(ctx context.Context, opts QueryOpts) ([]IngestEventRecord, error) {
	q := r.client.IngestEvent.Query()

	if opts.StudentID != 0 {
		q = q.Where(ingestevent.StudentID(opts.StudentID))
	}
	if opts.After > 0 {
		q = q.Where(ingestevent.SequenceGT(opts.After))
	}

	q = q.Order(ent.Desc(ingestevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query ingest events: %w", err)
	}

	out := make([]IngestEventRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, IngestEventRecord{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			IngestEventData: IngestEventData{
				EventID:    row.EventID,
				StudentID:  row.StudentID,
				Kind:       row.Kind,
				Detail:     row.Detail,
				RiskBefore: row.RiskBefore,
				RiskAfter:  row.RiskAfter,
			},
		})
	}
	return out, nil
}
