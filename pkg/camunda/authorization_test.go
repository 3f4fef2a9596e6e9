package camunda

import (
	"testing"

	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/model"
)

var (
	alice = model.User{Username: "alice", Groups: []string{"behandelaars"}}
	bob   = model.User{Username: "bob"}
	anon  = model.User{}
)

func TestIsTaskAssignedToUser(t *testing.T) {
	tests := []struct {
		name     string
		assignee *model.Assignee
		user     model.User
		want     bool
	}{
		{"unassigned", nil, alice, false},
		{"assigned to user", &model.Assignee{Username: "alice"}, alice, true},
		{"assigned to other user", &model.Assignee{Username: "bob"}, alice, false},
		{"assigned to user's group", &model.Assignee{Name: "behandelaars"}, alice, true},
		{"assigned to other group", &model.Assignee{Name: "beheerders"}, alice, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := model.Task{ID: "t1", Name: "Taak", Assignee: tt.assignee}
			if got := IsTaskAssignedToUser(task, tt.user); got != tt.want {
				t.Errorf("IsTaskAssignedToUser = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsUserAllowedToExecuteTask(t *testing.T) {
	unassigned := model.Task{ID: "t1", Name: "Taak"}
	if !IsUserAllowedToExecuteTask(unassigned, alice) {
		t.Error("unassigned task must be executable")
	}

	mine := model.Task{ID: "t2", Name: "Taak", Assignee: &model.Assignee{Username: "alice"}}
	if !IsUserAllowedToExecuteTask(mine, alice) {
		t.Error("own task must be executable")
	}

	theirs := model.Task{ID: "t3", Name: "Taak", Assignee: &model.Assignee{Username: "bob"}}
	if IsUserAllowedToExecuteTask(theirs, alice) {
		t.Error("someone else's task must not be executable")
	}
}

func TestIsUserAllowedToAssignTask_ReviewTasks(t *testing.T) {
	for _, name := range []string{"Accorderen", "Adviseren"} {
		unassigned := model.Task{ID: "t1", Name: name}
		if !IsUserAllowedToAssignTask(unassigned, alice) {
			t.Errorf("%s: unassigned review task must be claimable", name)
		}
		if IsUserAllowedToAssignTask(unassigned, anon) {
			t.Errorf("%s: anonymous user must not claim a review task", name)
		}

		assigned := model.Task{ID: "t2", Name: name, Assignee: &model.Assignee{Username: "bob"}}
		if IsUserAllowedToAssignTask(assigned, alice) {
			t.Errorf("%s: assigned review task must not be reassignable", name)
		}
	}
}

func TestIsUserAllowedToAssignTask_RegularTasks(t *testing.T) {
	assigned := model.Task{ID: "t1", Name: "Document toevoegen", Assignee: &model.Assignee{Username: "bob"}}
	if !IsUserAllowedToAssignTask(assigned, alice) {
		t.Error("regular tasks are always reassignable")
	}
}

func TestIsTaskActionableByUser(t *testing.T) {
	// An assigned review task belonging to someone else offers no
	// action: no execute, no assign.
	task := model.Task{ID: "t1", Name: "Accorderen", Assignee: &model.Assignee{Username: "bob"}}
	if IsTaskActionableByUser(task, alice) {
		t.Error("assigned review task of another user must not be actionable")
	}
	if !IsTaskActionableByUser(task, bob) {
		t.Error("assignee must be able to act on their own task")
	}
}
