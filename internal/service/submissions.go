package service

import (
	"context"
	"fmt"
	"math"

	"tracking_service/internal/access"
	"tracking_service/internal/errdefs"
	"tracking_service/internal/events"
	"tracking_service/internal/model"
)

func (s *TrackingService) ResolveVisibleSubmissions(ctx context.Context, actor *model.Actor, filter *model.SubmissionFilter) ([]*model.Submission, error) {
	if filter != nil && filter.Status != nil && !filter.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", errdefs.ErrInvalidArgument, *filter.Status)
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	return tx.ListSubmissions(ctx, access.SubmissionScope(actor), filter)
}

func (s *TrackingService) GetSubmission(ctx context.Context, actor *model.Actor, id int64) (*model.Submission, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	ownership, err := tx.GetSubmissionOwnership(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanSeeSubmission(actor, ownership) {
		return nil, errdefs.ErrPermissionDenied
	}
	return ownership.Submission, nil
}

// CreateSubmission files the actor's document for a deadline. The student and
// deadline rows stay share-locked until commit, so a concurrent cascade either
// waits for this submission or removes them first and this call sees NotFound.
func (s *TrackingService) CreateSubmission(ctx context.Context, actor *model.Actor, deadlineId int64, file model.FileRef) (*model.Submission, error) {
	if err := access.CanCreateSubmission(actor, actor.Id); err != nil {
		return nil, err
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	student, err := tx.LockUserForShare(ctx, actor.Id)
	if err != nil {
		return nil, err
	}
	deadline, err := tx.LockDeadlineForShare(ctx, deadlineId)
	if err != nil {
		return nil, err
	}
	if !access.CanSeeDeadline(student, deadline) {
		return nil, fmt.Errorf("%w: deadline %d is not assigned to student", errdefs.ErrPermissionDenied, deadlineId)
	}

	exists, err := tx.SubmissionExists(ctx, student.Id, deadline.Id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: deadline %d already has a submission", errdefs.ErrAlreadyExists, deadlineId)
	}

	submission, err := tx.CreateSubmission(ctx, &model.RepositoryCreateSubmissionInput{
		StudentId:  student.Id,
		DeadlineId: deadline.Id,
		FileUrl:    file.FileUrl,
		FileName:   file.FileName,
		Status:     model.SubmissionStatusPending,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.publish(ctx, events.New(events.SubmissionCreated, actor.Id, submission.Id, submission))
	return submission, nil
}

func validateReview(input *model.ReviewSubmissionInput) error {
	if !input.Status.IsTerminal() {
		return fmt.Errorf("%w: review status must be reviewed, approved or rejected, got %q", errdefs.ErrInvalidArgument, input.Status)
	}
	if input.Grade != nil {
		g := *input.Grade
		if math.IsNaN(g) || g < model.MinGrade || g > model.MaxGrade {
			return fmt.Errorf("%w: grade %v is outside [%v, %v]", errdefs.ErrInvalidArgument, g, model.MinGrade, model.MaxGrade)
		}
		// grade is stored as NUMERIC(4, 2).
		if scaled := g * 100; math.Abs(scaled-math.Round(scaled)) > 1e-6 {
			return fmt.Errorf("%w: grade %v has more than two decimals", errdefs.ErrInvalidArgument, g)
		}
	}
	return nil
}

// ReviewSubmission moves a pending submission into a terminal state. Ownership
// is checked against the row locked for the update.
func (s *TrackingService) ReviewSubmission(ctx context.Context, actor *model.Actor, id int64, input *model.ReviewSubmissionInput) (*model.Submission, error) {
	if err := access.RequireStaff(actor); err != nil {
		return nil, err
	}
	if err := validateReview(input); err != nil {
		return nil, err
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	ownership, err := tx.LockSubmissionOwnership(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.CanReview(actor, ownership); err != nil {
		return nil, err
	}
	if ownership.Submission.Status != model.SubmissionStatusPending {
		return nil, fmt.Errorf("%w: submission %d is already %s", errdefs.ErrAlreadyExists, id, ownership.Submission.Status)
	}

	now := s.now()
	reviewerId := actor.Id
	submission, err := tx.ReviewSubmission(ctx, id, &model.RepositoryReviewSubmissionInput{
		Status:     input.Status,
		Grade:      input.Grade,
		Feedback:   input.Feedback,
		ReviewedAt: &now,
		ReviewedBy: &reviewerId,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.publish(ctx, events.New(events.SubmissionReviewed, actor.Id, submission.Id, submission))
	return submission, nil
}

// ReopenSubmission is the administrative way back to pending. It clears every
// review field.
func (s *TrackingService) ReopenSubmission(ctx context.Context, actor *model.Actor, id int64) (*model.Submission, error) {
	if err := access.CanReopen(actor); err != nil {
		return nil, err
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	ownership, err := tx.LockSubmissionOwnership(ctx, id)
	if err != nil {
		return nil, err
	}
	if ownership.Submission.Status == model.SubmissionStatusPending {
		return nil, fmt.Errorf("%w: submission %d is already pending", errdefs.ErrAlreadyExists, id)
	}

	submission, err := tx.ReopenSubmission(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.publish(ctx, events.New(events.SubmissionReopened, actor.Id, submission.Id, submission))
	return submission, nil
}

func (s *TrackingService) DeleteSubmission(ctx context.Context, actor *model.Actor, id int64) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer rollback(ctx, tx)

	ownership, err := tx.LockSubmissionOwnership(ctx, id)
	if err != nil {
		return err
	}
	if err := access.CanDeleteSubmission(actor, ownership); err != nil {
		return err
	}

	if err := tx.DeleteSubmission(ctx, id); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	s.publish(ctx, events.New(events.SubmissionDeleted, actor.Id, id, ownership.Submission))
	return nil
}
