package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAssessment(ctx context.Context, data AssessmentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AssessmentEvent.Create().
		SetSequence(seqNum).
		SetStudentID(data.StudentID).
		SetFinalScore(data.FinalScore).
		SetFinalLevel(data.FinalLevel).
		SetRuleScore(data.RuleScore).
		SetTriggeredCount(data.TriggeredCount).
		SetMlUsed(data.MLUsed).
		SetCollapseScore(data.CollapseScore).
		SetCollapseLevel(data.CollapseLevel).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}

	return nil
}
