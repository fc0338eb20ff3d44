// Package access decides what an actor may see and change. Every function is
// pure: callers load the rows, access only looks at them.
package access

import (
	"fmt"

	"tracking_service/internal/errdefs"
	"tracking_service/internal/model"
)

func denied(reason string) error {
	return fmt.Errorf("%w: %s", errdefs.ErrPermissionDenied, reason)
}

// DeadlineScope returns the deadlines an actor may read. An orphan student
// reads every deadline until a teacher adopts them.
func DeadlineScope(actor *model.Actor) model.DeadlineScope {
	switch actor.Role {
	case model.RoleAdmin:
		return model.DeadlineScope{All: true}
	case model.RoleTeacher:
		id := actor.Id
		return model.DeadlineScope{TeacherId: &id}
	case model.RoleStudent:
		if actor.TeacherId == nil {
			return model.DeadlineScope{All: true}
		}
		teacherId := *actor.TeacherId
		return model.DeadlineScope{TeacherId: &teacherId}
	}
	return model.DeadlineScope{}
}

// SubmissionScope returns the submissions an actor may read. Students have no
// orphan fallback here.
func SubmissionScope(actor *model.Actor) model.SubmissionScope {
	id := actor.Id
	switch actor.Role {
	case model.RoleAdmin:
		return model.SubmissionScope{All: true}
	case model.RoleTeacher:
		return model.SubmissionScope{TeacherId: &id}
	case model.RoleStudent:
		return model.SubmissionScope{StudentId: &id}
	}
	return model.SubmissionScope{}
}

func CanSeeDeadline(actor *model.Actor, deadline *model.Deadline) bool {
	scope := DeadlineScope(actor)
	if scope.All {
		return true
	}
	return scope.TeacherId != nil && *scope.TeacherId == deadline.TeacherId
}

// ownsSubmission reports whether a teacher reaches the submission through
// either ownership path.
func ownsSubmission(teacherId int64, o *model.SubmissionOwnership) bool {
	if o.DeadlineTeacherId == teacherId {
		return true
	}
	return o.StudentTeacherId != nil && *o.StudentTeacherId == teacherId
}

func CanSeeSubmission(actor *model.Actor, o *model.SubmissionOwnership) bool {
	switch actor.Role {
	case model.RoleAdmin:
		return true
	case model.RoleTeacher:
		return ownsSubmission(actor.Id, o)
	case model.RoleStudent:
		return o.Submission.StudentId == actor.Id
	}
	return false
}

func RequireAdmin(actor *model.Actor) error {
	if !actor.IsAdmin() {
		return denied("admin role required")
	}
	return nil
}

// RequireStaff admits teachers and admins.
func RequireStaff(actor *model.Actor) error {
	if !actor.IsAdmin() && !actor.IsTeacher() {
		return denied("teacher or admin role required")
	}
	return nil
}

func CanCreateDeadline(actor *model.Actor) error {
	return RequireStaff(actor)
}

func CanManageDeadline(actor *model.Actor, deadline *model.Deadline) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.IsTeacher() && deadline.TeacherId == actor.Id {
		return nil
	}
	return denied("deadline is owned by another teacher")
}

func CanCreateClass(actor *model.Actor) error {
	return RequireStaff(actor)
}

func CanManageClass(actor *model.Actor, class *model.Class) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.IsTeacher() && class.TeacherId == actor.Id {
		return nil
	}
	return denied("class is owned by another teacher")
}

// CanCreateSubmission checks that a student submits for themselves only.
func CanCreateSubmission(actor *model.Actor, studentId int64) error {
	if !actor.IsStudent() {
		return denied("only students submit documents")
	}
	if actor.Id != studentId {
		return denied("students submit for themselves only")
	}
	return nil
}

// CanReview is evaluated against the row locked for the review, so ownership
// is checked at review time and not only when the submission was listed.
func CanReview(actor *model.Actor, o *model.SubmissionOwnership) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.IsTeacher() && ownsSubmission(actor.Id, o) {
		return nil
	}
	return denied("submission is not owned by reviewer")
}

func CanReopen(actor *model.Actor) error {
	return RequireAdmin(actor)
}

// CanDeleteSubmission lets the owning student withdraw a pending submission,
// and the owning teacher or an admin remove it in any state.
func CanDeleteSubmission(actor *model.Actor, o *model.SubmissionOwnership) error {
	switch actor.Role {
	case model.RoleAdmin:
		return nil
	case model.RoleTeacher:
		if ownsSubmission(actor.Id, o) {
			return nil
		}
	case model.RoleStudent:
		if o.Submission.StudentId != actor.Id {
			break
		}
		if o.Submission.Status != model.SubmissionStatusPending {
			return denied("submission has already been reviewed")
		}
		return nil
	}
	return denied("submission is not owned by actor")
}

// CanManageStudent admits admins and the teacher the student is linked to.
func CanManageStudent(actor *model.Actor, student *model.Actor) error {
	if !student.IsStudent() {
		return fmt.Errorf("%w: user %d is not a student", errdefs.ErrNotFound, student.Id)
	}
	if actor.IsAdmin() {
		return nil
	}
	if actor.IsTeacher() && student.OwnedBy(actor.Id) {
		return nil
	}
	return denied("student is linked to another teacher")
}

// CanSeeStudent extends CanManageStudent with a student reading their own row.
func CanSeeStudent(actor *model.Actor, student *model.Actor) error {
	if actor.IsStudent() && actor.Id == student.Id {
		return nil
	}
	return CanManageStudent(actor, student)
}

// CanPurge validates a bulk student deletion. Admins pick any scope, a teacher
// may only purge their own students.
func CanPurge(actor *model.Actor, scope model.PurgeScope) error {
	if scope.All == (scope.TeacherId != nil) {
		return fmt.Errorf("%w: purge scope needs exactly one of teacher_id or all", errdefs.ErrInvalidArgument)
	}
	if actor.IsAdmin() {
		return nil
	}
	if actor.IsTeacher() && scope.TeacherId != nil && *scope.TeacherId == actor.Id {
		return nil
	}
	return denied("purge scope exceeds actor ownership")
}
