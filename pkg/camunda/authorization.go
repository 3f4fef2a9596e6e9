package camunda

import "github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/model"

// Task names that represent review handling. These may only be claimed,
// never reassigned away from their reviewer.
const (
	taskAccorderen = "Accorderen"
	taskAdviseren  = "Adviseren"
)

// IsTaskAssigned reports whether the task has an assignee.
func IsTaskAssigned(task model.Task) bool {
	return task.Assignee != nil && (task.Assignee.Username != "" || task.Assignee.Name != "")
}

// IsTaskAssignedToUser reports whether the task is assigned to the user
// directly or to one of the user's groups.
func IsTaskAssignedToUser(task model.Task, user model.User) bool {
	if task.Assignee == nil {
		return false
	}
	if task.Assignee.Username != "" {
		return task.Assignee.Username == user.Username
	}
	for _, group := range user.Groups {
		if task.Assignee.Name == group {
			return true
		}
	}
	return false
}

// IsUserAllowedToExecuteTask reports whether the user may open and
// submit the task form: the task is unassigned or assigned to the user.
func IsUserAllowedToExecuteTask(task model.Task, user model.User) bool {
	if !IsTaskAssigned(task) {
		return true
	}
	return IsTaskAssignedToUser(task, user)
}

// IsUserAllowedToAssignTask reports whether the user may (re)assign the
// task. Review tasks can only be claimed while unassigned by an
// authenticated user; every other task is freely reassignable.
func IsUserAllowedToAssignTask(task model.Task, user model.User) bool {
	if task.Name == taskAccorderen || task.Name == taskAdviseren {
		return user.Username != "" && !IsTaskAssigned(task)
	}
	return true
}

// IsTaskActionableByUser reports whether the task offers the user any
// action at all, execution or assignment.
func IsTaskActionableByUser(task model.Task, user model.User) bool {
	return IsUserAllowedToExecuteTask(task, user) || IsUserAllowedToAssignTask(task, user)
}
