package events

import (
	"strconv"
	"time"
)

type Type string

const (
	SubmissionCreated  Type = "submission.created"
	SubmissionReviewed Type = "submission.reviewed"
	SubmissionReopened Type = "submission.reopened"
	SubmissionDeleted  Type = "submission.deleted"
	StudentsPurged     Type = "students.purged"
	TeacherDeleted     Type = "teacher.deleted"
	ClassesSynced      Type = "classes.synced"
)

// Event is published once the transaction that produced it has committed.
type Event struct {
	Type       Type      `json:"type"`
	Key        string    `json:"key"`
	ActorId    int64     `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}

func New(t Type, actorId int64, entityId int64, payload any) Event {
	return Event{
		Type:       t,
		Key:        strconv.FormatInt(entityId, 10),
		ActorId:    actorId,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}
